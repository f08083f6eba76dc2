// ABOUTME: Root command: resolves settings from config, env and flags, then runs the TUI
// ABOUTME: Flags override the config file; the startup plugin failing to load is not fatal

package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/mauromedda/pichat/internal/app"
	"github.com/mauromedda/pichat/internal/config"
	"github.com/mauromedda/pichat/internal/journal"
	"github.com/mauromedda/pichat/internal/log"
	"github.com/mauromedda/pichat/internal/plugin"
	"github.com/mauromedda/pichat/internal/render"
	"github.com/mauromedda/pichat/pkg/tui/terminal"
	"github.com/mauromedda/pichat/pkg/tui/theme"
)

type cliArgs struct {
	configPath    string
	plugin        string
	pluginsDir    string
	journal       string
	markdown      bool
	noLineNumbers bool
	debug         string
}

func newRootCmd(term terminal.Terminal) *cobra.Command {
	var args cliArgs

	cmd := &cobra.Command{
		Use:   "pichat",
		Short: "Terminal chat front-end for pluggable prompt handlers",
		Long: `pichat splits the terminal into a transcript and an editor.
Type a prompt, press Ctrl+R to send it to the active plugin and read the
answer in the transcript. Lines starting with / are commands (/help).`,
		Version:       fmt.Sprintf("%s (%s) built %s", version, commit, date),
		SilenceUsage:  true,
		SilenceErrors: true,
		Args:          cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			s, err := resolveSettings(cmd, args)
			if err != nil {
				return err
			}
			return runTUI(cmd.Context(), term, s)
		},
	}
	cmd.SetVersionTemplate(`{{printf "pichat %s\n" .Version}}`)

	f := cmd.PersistentFlags()
	f.StringVar(&args.configPath, "config", config.ConfigFile(), "Config file")
	f.StringVar(&args.pluginsDir, "plugins-dir", "", "Directory holding plugin descriptors")

	lf := cmd.Flags()
	lf.StringVarP(&args.plugin, "plugin", "p", "", "Plugin descriptor to load at startup")
	lf.StringVar(&args.journal, "journal", "", `Journal file ("off" disables it)`)
	lf.BoolVar(&args.markdown, "markdown", false, "Render plugin output as markdown")
	lf.BoolVar(&args.noLineNumbers, "no-line-numbers", false, "Hide the editor line numbers")
	lf.StringVar(&args.debug, "debug", "", "Write debug logs to this file")

	cmd.AddCommand(newPluginsCmd(&args))
	return cmd
}

// resolveSettings loads the config file and applies the flags that were set.
func resolveSettings(cmd *cobra.Command, args cliArgs) (*config.Settings, error) {
	s, err := config.Load(config.ExpandHome(args.configPath))
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	flags := cmd.Flags()
	if flags.Changed("plugin") {
		s.Plugin = args.plugin
	}
	if flags.Changed("plugins-dir") {
		s.PluginsDir = config.ExpandHome(args.pluginsDir)
	}
	if flags.Changed("journal") {
		s.Journal = config.ExpandHome(args.journal)
		if args.journal == "off" {
			s.Journal = ""
		}
	}
	if flags.Changed("markdown") {
		s.Markdown = args.markdown
	}
	if flags.Changed("no-line-numbers") {
		s.LineNumbers = !args.noLineNumbers
	}
	if flags.Changed("debug") {
		s.DebugLog = config.ExpandHome(args.debug)
	}
	return s, nil
}

// runTUI wires the settings into a controller and runs it on term.
func runTUI(ctx context.Context, term terminal.Terminal, s *config.Settings) error {
	if s.DebugLog != "" {
		f, err := log.OpenFile(s.DebugLog)
		if err != nil {
			return err
		}
		defer f.Close()
		log.SetLevel(slog.LevelDebug)
	}

	if err := theme.Use(s.Theme); err != nil {
		log.Warn("%v; using default theme", err)
	}

	if err := plugin.EnsureDefaults(s.PluginsDir); err != nil {
		log.Warn("seeding plugins: %v", err)
	}

	opts := app.Options{
		Loader:      plugin.NewLoader(s.PluginsDir),
		LineNumbers: s.LineNumbers,
	}
	if s.Markdown {
		opts.Markdown = render.NewMarkdown()
	}
	if s.Journal != "" {
		j, err := journal.Open(s.Journal)
		if err != nil {
			log.Warn("journal disabled: %v", err)
		} else {
			defer j.Close()
			opts.Journal = j
		}
	}

	c := app.New(opts)
	if s.Plugin != "" {
		// The transcript reports "No plugin loaded." on the first prompt.
		_ = c.LoadPlugin(s.Plugin)
	}

	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	log.Info("pichat %s starting, plugin %q", version, c.ActivePlugin())
	if err := c.Run(ctx, term); !app.Quit(err) {
		return err
	}
	return nil
}
