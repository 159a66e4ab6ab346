package main

import (
	"context"
	"fmt"
	"io"
	"log"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/cobra"
)

const (
	watchDebounce = 100 * time.Millisecond
	clearScreen   = "\x1b[H\x1b[2J"
)

func newWatchCmd(opts *options) *cobra.Command {
	var debounce time.Duration

	cmd := &cobra.Command{
		Use:   "watch FILE",
		Short: "Re-render a file every time it changes",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := args[0]
			out := cmd.OutOrStdout()
			color := opts.colorEnabled(out)

			show := func() error {
				data, err := os.ReadFile(path)
				if err != nil {
					return err
				}
				d, err := opts.display(string(data))
				if err != nil {
					return err
				}
				if color {
					io.WriteString(out, clearScreen)
				}
				return opts.write(out, d, false)
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			err := watchFile(ctx, path, debounce, show, func(err error) {
				log.Printf("watch %s: %v", path, err)
				fmt.Fprintf(cmd.ErrOrStderr(), "tint: %v\n", err)
			})
			if err == context.Canceled {
				return nil
			}
			return err
		},
	}

	cmd.Flags().DurationVar(&debounce, "debounce", watchDebounce, "quiet period before re-rendering")
	return cmd
}

// watchFile calls onChange once, then again after each burst of writes to path
// settles for debounce. It returns when ctx is done. The parent directory is
// watched so editors that replace the file by rename are still seen.
func watchFile(ctx context.Context, path string, debounce time.Duration, onChange func() error, onError func(error)) error {
	if err := onChange(); err != nil {
		return err
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("create watcher: %w", err)
	}
	defer watcher.Close()

	if err := watcher.Add(filepath.Dir(path)); err != nil {
		return fmt.Errorf("watch %s: %w", path, err)
	}
	if debounce <= 0 {
		debounce = watchDebounce
	}

	absPath, _ := filepath.Abs(path)
	baseName := filepath.Base(path)

	var timer *time.Timer
	var fire <-chan time.Time

	for {
		select {
		case <-ctx.Done():
			if timer != nil {
				timer.Stop()
			}
			return ctx.Err()

		case ev, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			evAbs, _ := filepath.Abs(ev.Name)
			if filepath.Base(ev.Name) != baseName && evAbs != absPath {
				continue
			}
			if !ev.Has(fsnotify.Write) && !ev.Has(fsnotify.Create) && !ev.Has(fsnotify.Rename) {
				continue
			}
			log.Printf("watch: %s", ev)

			if timer != nil {
				timer.Stop()
			}
			timer = time.NewTimer(debounce)
			fire = timer.C

		case <-fire:
			timer, fire = nil, nil
			if err := onChange(); err != nil {
				onError(err)
			}

		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			onError(err)
		}
	}
}
