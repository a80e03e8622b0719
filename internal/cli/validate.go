package cli

import (
	stderrors "errors"

	"github.com/spf13/cobra"

	"github.com/matzehuels/pinboard/pkg/errors"
)

func (c *CLI) validateCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "validate",
		Short: "Check the graph for disallowed edges and detached annotations",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			sess, err := c.session(cmd)
			if err != nil {
				return err
			}
			g := sess.Current()
			out := cmd.OutOrStdout()

			err = g.Validate()
			if err == nil {
				st := g.Stats()
				printSuccess(out, "Graph is valid")
				printStats(out,
					count{st.Documents, "document"},
					count{st.Annotations, "annotation"},
					count{st.Entities, "entity"},
					count{st.Edges, "edge"},
				)
				return nil
			}

			var list errors.List
			if !stderrors.As(err, &list) {
				return err
			}
			for _, e := range list {
				printError(out, "%s %s", StyleWarning.Render(string(e.Code)), e.Message)
			}
			return errors.New(errors.ErrCodeInvalidInput, "%s", count{len(list), "violation"})
		},
	}
}
