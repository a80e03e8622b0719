package cli

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/matzehuels/pinboard/pkg/layout"
)

// layoutFlags are the flags shared by commands that compute a layout.
type layoutFlags struct {
	direction string
	jitter    bool
	seed      uint64
}

func (f *layoutFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&f.direction, "direction", "d", "", "flow direction: TB (default), LR")
	cmd.Flags().BoolVar(&f.jitter, "jitter", false, "offset x coordinates by a tiny random amount")
	cmd.Flags().Uint64Var(&f.seed, "seed", 0, "random seed for --jitter (0 = random)")
}

// layoutOptions merges the configured layout settings with the flags given.
func (c *CLI) layoutOptions(cmd *cobra.Command, f *layoutFlags) (layout.Options, error) {
	opts := c.cfg.LayoutOptions(c.Logger)
	if cmd.Flags().Changed("direction") {
		dir, err := layout.ParseDirection(f.direction)
		if err != nil {
			return layout.Options{}, err
		}
		opts.Direction = dir
	}
	if f.jitter && opts.Jitter == 0 {
		opts.Jitter = layout.DefaultJitter
	}
	if cmd.Flags().Changed("seed") {
		opts.Seed = f.seed
	}
	return opts, nil
}

func (c *CLI) layoutCommand() *cobra.Command {
	var (
		output string
		flags  layoutFlags
	)

	cmd := &cobra.Command{
		Use:   "layout",
		Short: "Compute node positions and edges as JSON",
		Long: `Compute a layered layout of the graph.

Documents are placed on the last rank, entities on the first and annotations
in between. The output is a JSON array of node and edge elements, each tagged
with "kind", ready for a diagram front end.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			sess, err := c.session(cmd)
			if err != nil {
				return err
			}
			opts, err := c.layoutOptions(cmd, &flags)
			if err != nil {
				return err
			}

			prog := newProgress(c.Logger)
			el, err := sess.Layout(cmd.Context(), opts)
			if err != nil {
				return fmt.Errorf("compute layout: %w", err)
			}
			prog.done(fmt.Sprintf("Laid out %d nodes and %d edges", len(el.Nodes), len(el.Edges)))

			data, err := json.MarshalIndent(el, "", "  ")
			if err != nil {
				return fmt.Errorf("encode layout: %w", err)
			}
			return writeOutput(cmd, output, append(data, '\n'))
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "output file (default: stdout)")
	flags.register(cmd)

	return cmd
}
