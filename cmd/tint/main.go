// Command tint renders text with 24-bit terminal color gradients.
package main

import (
	"fmt"
	"io"
	"log"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/lixenwraith/tint/config"
	"github.com/lixenwraith/tint/gradient"
	"github.com/lixenwraith/tint/render"
	"github.com/lixenwraith/tint/terminal"
)

const defaultPreset = gradient.Atlast

// options holds every flag value shared by the commands
type options struct {
	preset     string
	stops      []string
	solid      string
	background bool
	blend      string
	reverse    bool
	color      string
	configPath string
	debug      bool

	logFile *os.File
	cfg     *config.Config
}

func newRootCmd() *cobra.Command {
	opts := &options{}

	root := &cobra.Command{
		Use:   "tint [text...]",
		Short: "Render text with perceptual multi-stop color gradients",
		Long: `tint colors every character of its input with a 24-bit gradient.

Each line restarts the gradient, spread across the width of the longest line,
so stacked lines share one horizontal color progression.

Example:
  tint --preset rainbow "hello world"
  figlet tint | tint --stops "#ff0000,#00ff00,#0000ff"
  tint --solid tomato --background " alert "`,
		Args:         cobra.ArbitraryArgs,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if err := validateColor(opts.color); err != nil {
				return err
			}
			opts.logFile = setupLogging(opts.debug)
			cfg, err := config.Load(opts.configPath)
			if err != nil {
				return err
			}
			opts.cfg = cfg
			if cfg.Source != "" {
				log.Printf("loaded config %s (%d gradients)", cfg.Source, len(cfg.Gradients))
			}
			return nil
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if opts.logFile != nil {
				opts.logFile.Close()
				opts.logFile = nil
			}
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			text, err := readInput(cmd.InOrStdin(), args)
			if err != nil {
				return err
			}
			d, err := opts.display(text)
			if err != nil {
				return err
			}
			return opts.write(cmd.OutOrStdout(), d, len(args) > 0)
		},
	}

	pf := root.PersistentFlags()
	pf.StringVarP(&opts.preset, "preset", "p", "", "named gradient (built-in preset or config entry)")
	pf.StringSliceVarP(&opts.stops, "stops", "s", nil, "gradient stops as hex or color names, comma separated")
	pf.StringVar(&opts.solid, "solid", "", "single color for every character")
	pf.BoolVarP(&opts.background, "background", "b", false, "color the background instead of the text")
	pf.StringVar(&opts.blend, "blend", "", "interpolation: "+blendChoices())
	pf.BoolVarP(&opts.reverse, "reverse", "r", false, "walk the gradient from last stop to first")
	pf.StringVar(&opts.color, "color", "auto", "when to emit color: auto, always, never")
	pf.StringVar(&opts.configPath, "config", "", "config file (default $XDG_CONFIG_HOME/tint/config.toml)")
	pf.BoolVar(&opts.debug, "debug", false, "write debug log to logs/tint.log")

	root.AddCommand(
		newListCmd(opts),
		newMixCmd(opts),
		newPreviewCmd(opts),
		newWatchCmd(opts),
	)
	return root
}

func blendChoices() string {
	names := make([]string, 0, len(render.BlendModes()))
	for _, m := range render.BlendModes() {
		names = append(names, m.String())
	}
	return strings.Join(names, ", ")
}

// readInput joins args with spaces, or reads all of r when there are none
func readInput(r io.Reader, args []string) (string, error) {
	if len(args) > 0 {
		return strings.Join(args, " "), nil
	}
	data, err := io.ReadAll(r)
	if err != nil {
		return "", fmt.Errorf("read input: %w", err)
	}
	return string(data), nil
}

// resolveStops picks the stop list from flags and config
func (o *options) resolveStops() (gradient.Stops, error) {
	set := 0
	for _, v := range []bool{o.preset != "", len(o.stops) > 0, o.solid != ""} {
		if v {
			set++
		}
	}
	if set > 1 {
		return nil, fmt.Errorf("--preset, --stops and --solid are mutually exclusive")
	}

	var stops gradient.Stops
	switch {
	case o.preset != "":
		s, err := o.cfg.Lookup(o.preset)
		if err != nil {
			return nil, err
		}
		stops = s
	case len(o.stops) > 0:
		s, err := gradient.ParseStops(o.stops...)
		if err != nil {
			return nil, err
		}
		if len(s) == 0 {
			return nil, fmt.Errorf("--stops: no colors given")
		}
		stops = s
	case o.solid != "":
		c, err := terminal.ParseColor(o.solid)
		if err != nil {
			return nil, fmt.Errorf("--solid: %w", err)
		}
		stops = gradient.Solid(c)
	default:
		stops = defaultPreset
	}

	if o.reverse {
		stops = gradient.Reversed(stops)
	}
	return stops, nil
}

// target applies --background over the config default
func (o *options) target() terminal.Target {
	if o.background {
		return terminal.Background
	}
	return o.cfg.Target
}

// blendMode applies --blend over the config default
func (o *options) blendMode() (render.BlendMode, error) {
	if o.blend == "" {
		return o.cfg.Blend, nil
	}
	return render.ParseBlendMode(o.blend)
}

func (o *options) display(text string) (gradient.Display, error) {
	stops, err := o.resolveStops()
	if err != nil {
		return gradient.Display{}, err
	}
	mode, err := o.blendMode()
	if err != nil {
		return gradient.Display{}, err
	}
	return gradient.Text(text, stops).Target(o.target()).Blend(mode), nil
}

// colorEnabled resolves --color for w; only an *os.File can be a terminal
func (o *options) colorEnabled(w io.Writer) bool {
	f, _ := w.(*os.File)
	return terminal.ShouldColor(o.color, f)
}

// write emits d, or its plain text when color is disabled
func (o *options) write(w io.Writer, d gradient.Display, newline bool) error {
	var err error
	if o.colorEnabled(w) {
		_, err = d.WriteTo(w)
	} else {
		_, err = io.WriteString(w, d.Plain())
	}
	if err == nil && newline {
		_, err = io.WriteString(w, "\n")
	}
	return err
}

func validateColor(setting string) error {
	switch setting {
	case "auto", "always", "never":
		return nil
	}
	return fmt.Errorf("--color must be auto, always or never, got %q", setting)
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
