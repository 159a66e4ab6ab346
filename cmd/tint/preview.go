package main

import (
	"context"
	"fmt"
	"os/signal"
	"syscall"

	"github.com/gdamore/tcell/v2"
	"github.com/spf13/cobra"

	"github.com/lixenwraith/tint/preview"
)

const previewSample = "The quick brown fox jumps over the lazy dog"

func newPreviewCmd(opts *options) *cobra.Command {
	var sample string

	cmd := &cobra.Command{
		Use:   "preview",
		Short: "Browse gradients interactively",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			mode, err := opts.blendMode()
			if err != nil {
				return err
			}

			screen, err := tcell.NewScreen()
			if err != nil {
				return fmt.Errorf("open screen: %w", err)
			}
			if err := screen.Init(); err != nil {
				return fmt.Errorf("init screen: %w", err)
			}
			defer screen.Fini()

			ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGTERM)
			defer stop()

			b := preview.New(screen, opts.cfg.All(), sample)
			b.SetTarget(opts.target())
			b.SetBlend(mode)
			b.SetReverse(opts.reverse)

			if err := b.Run(ctx); err != nil && err != context.Canceled {
				return err
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&sample, "sample", previewSample, "text rendered under the list")
	return cmd
}
