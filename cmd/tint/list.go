package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/lixenwraith/tint/gradient"
)

const (
	swatchGlyph = "▇"
	shortSwatch = 10
	nameWidth   = 15
)

func newListCmd(opts *options) *cobra.Command {
	var width int

	cmd := &cobra.Command{
		Use:   "list",
		Short: "Show every built-in and configured gradient as a swatch",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if width < 1 {
				return fmt.Errorf("--width must be positive, got %d", width)
			}
			mode, err := opts.blendMode()
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			for _, e := range opts.cfg.All() {
				stops := e.Stops
				if opts.reverse {
					stops = gradient.Reversed(stops)
				}
				short := swatch(stops, shortSwatch).Target(opts.target()).Blend(mode)
				long := swatch(stops, width).Target(opts.target()).Blend(mode)

				fmt.Fprintf(out, " %-*s ", nameWidth, e.Name)
				if err := opts.write(out, short, false); err != nil {
					return err
				}
				io.WriteString(out, " ")
				if err := opts.write(out, long, true); err != nil {
					return err
				}
			}
			return nil
		},
	}

	cmd.Flags().IntVarP(&width, "width", "w", 100, "cells in the long swatch")
	return cmd
}

func swatch(stops gradient.Stops, cells int) gradient.Display {
	return gradient.Text(strings.Repeat(swatchGlyph, cells), stops)
}
