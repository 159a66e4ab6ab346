package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/lixenwraith/tint/gradient"
	"github.com/lixenwraith/tint/terminal"
)

func newMixCmd(opts *options) *cobra.Command {
	var steps int

	cmd := &cobra.Command{
		Use:   "mix FROM TO",
		Short: "Print each step of a two-color gradient with its hex code",
		Example: `  tint mix black white --steps 5
  tint mix "#ff0000" "#0000ff" --blend lab`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			if steps < 1 {
				return fmt.Errorf("--steps must be positive, got %d", steps)
			}
			from, err := terminal.ParseColor(args[0])
			if err != nil {
				return fmt.Errorf("FROM: %w", err)
			}
			to, err := terminal.ParseColor(args[1])
			if err != nil {
				return fmt.Errorf("TO: %w", err)
			}
			mode, err := opts.blendMode()
			if err != nil {
				return err
			}

			g := gradient.New(from, to, steps).WithBlend(mode)
			out := cmd.OutOrStdout()
			i := 0
			for c := range g.All() {
				line := fmt.Sprintf("%3d %s", i, c.Hex())
				d := gradient.Text(line, gradient.Solid(c)).Target(opts.target())
				if err := opts.write(out, d, true); err != nil {
					return err
				}
				i++
			}
			return nil
		},
	}

	cmd.Flags().IntVarP(&steps, "steps", "n", 11, "number of colors including both ends")
	return cmd
}
