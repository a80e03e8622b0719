package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/matzehuels/pinboard/pkg/errors"
	"github.com/matzehuels/pinboard/pkg/render/nodelink"
)

func (c *CLI) renderCommand() *cobra.Command {
	var (
		output   string
		format   string
		pinned   bool
		detailed bool
		flags    layoutFlags
	)

	cmd := &cobra.Command{
		Use:   "render",
		Short: "Render the graph with Graphviz",
		Long: `Render the graph as a Graphviz diagram.

By default Graphviz arranges the nodes itself. With --pinned, nodes are
fixed at the positions computed by 'pinboard layout', so the picture matches
the JSON layout exactly.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			format = strings.ToLower(format)
			if err := errors.ValidateFormat(format, nodelink.Formats...); err != nil {
				return err
			}
			sess, err := c.session(cmd)
			if err != nil {
				return err
			}
			opts, err := c.layoutOptions(cmd, &flags)
			if err != nil {
				return err
			}

			var dot string
			if pinned {
				el, err := sess.Layout(cmd.Context(), opts)
				if err != nil {
					return fmt.Errorf("compute layout: %w", err)
				}
				dot = nodelink.FromElements(el)
			} else {
				dot = nodelink.ToDOT(sess.Current(), nodelink.Options{
					Direction: opts.Direction,
					Detailed:  detailed,
				})
			}

			prog := newProgress(c.Logger)
			data, err := nodelink.Render(cmd.Context(), dot, format)
			if err != nil {
				return err
			}
			prog.done("Rendered " + format)

			return writeOutput(cmd, output, data)
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "output file (default: stdout)")
	cmd.Flags().StringVarP(&format, "format", "f", nodelink.FormatSVG, "output format: svg, dot")
	cmd.Flags().BoolVar(&pinned, "pinned", false, "pin nodes at the computed layout positions")
	cmd.Flags().BoolVar(&detailed, "detailed", false, "include URLs, notes and ids in labels")
	flags.register(cmd)

	return cmd
}
