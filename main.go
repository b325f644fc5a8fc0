package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"strings"

	"pathtree/internal/app"
	"pathtree/internal/config"
	"pathtree/internal/logging"
	"pathtree/internal/model"
	"pathtree/internal/tui"
	"pathtree/internal/web"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"github.com/tcnksm/go-latest"
)

// flags holds the raw command-line values before they are merged with the
// config file.
type flags struct {
	configPath  string
	compact     bool
	color       config.ColorMode
	plain       bool
	summary     bool
	verbose     bool
	git         string
	interactive bool
	serve       string
	checkUpdate bool
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	f := &flags{color: config.ColorNever}

	cmd := &cobra.Command{
		Use:   "pathtree [flags] < paths",
		Short: "Render a list of paths as a directory tree",
		Long: `pathtree reads newline-delimited paths from standard input and prints them
as a tree. Lines in "git status --porcelain" form keep their status code,
which selects the file color when color is enabled.`,
		Example: `  git ls-files | pathtree --compact
  git status --porcelain | pathtree --color
  pathtree --git --color=auto`,
		Version:      model.Version,
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd, f)
		},
	}

	cmd.PersistentFlags().StringVar(&f.configPath, "config", "", "config file (default $XDG_CONFIG_HOME/pathtree/config.toml)")

	fs := cmd.Flags()
	fs.BoolVarP(&f.compact, "compact", "c", false, "collapse chains of single-child directories")
	fs.Var(&f.color, "color", "colorize output: auto, always or never")
	fs.Lookup("color").NoOptDefVal = string(config.ColorAlways)
	fs.BoolVar(&f.plain, "plain", false, "treat every line as a path, ignoring status codes")
	fs.BoolVarP(&f.summary, "summary", "s", false, `append a "N directories, M files" line`)
	fs.BoolVarP(&f.verbose, "verbose", "v", false, "log debug details to stderr")
	fs.StringVar(&f.git, "git", "", "render git status of this directory instead of stdin")
	fs.Lookup("git").NoOptDefVal = "."
	fs.BoolVarP(&f.interactive, "interactive", "i", false, "browse the tree in a scrollable viewer")
	fs.StringVar(&f.serve, "serve", "", "serve the HTTP API on this address (e.g. :8080)")
	fs.BoolVar(&f.checkUpdate, "check-update", false, "check GitHub for a newer release")

	cmd.AddCommand(newConfigCmd(f))
	return cmd
}

// resolve merges the config file with the flags the user actually set.
func resolve(cmd *cobra.Command, f *flags) (*config.Config, error) {
	path, required := f.configPath, f.configPath != ""
	if path == "" {
		p, err := config.DefaultPath()
		if err != nil {
			return nil, err
		}
		path = p
	}

	cfg, err := config.Load(path, required)
	if err != nil {
		return nil, err
	}

	changed := cmd.Flags().Changed
	if changed("compact") {
		cfg.Compact = f.compact
	}
	if changed("color") {
		cfg.Color = f.color
	}
	if changed("plain") {
		cfg.Plain = f.plain
	}
	if changed("summary") {
		cfg.Summary = f.summary
	}
	if f.verbose {
		cfg.LogLevel = "debug"
	}
	return cfg, nil
}

func run(cmd *cobra.Command, f *flags) error {
	if f.checkUpdate {
		src, err := githubTag(updateRepo)
		if err != nil {
			return err
		}
		return checkUpdate(cmd.OutOrStdout(), src, model.Version)
	}

	cfg, err := resolve(cmd, f)
	if err != nil {
		return err
	}

	level, err := logging.ParseLevel(cfg.LogLevel)
	if err != nil {
		return err
	}
	logger := logging.New(cmd.ErrOrStderr(), level)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	out := cmd.OutOrStdout()
	outFile, _ := out.(*os.File)

	opts := app.Options{
		Compact: cfg.Compact,
		Color:   cfg.Color.Enabled(outFile),
		Plain:   cfg.Plain,
		Summary: cfg.Summary,
		GitDir:  f.git,
	}
	logger.Debug("resolved options", "compact", opts.Compact, "color", opts.Color, "plain", opts.Plain, "git", opts.GitDir)

	switch {
	case f.serve != "":
		return web.NewServer(logger).ListenAndServe(ctx, f.serve)
	case f.interactive:
		return runTuiMode(ctx, logger, cfg, opts, cmd.InOrStdin())
	default:
		return app.Run(ctx, logger, opts, cmd.InOrStdin(), out)
	}
}

func runTuiMode(ctx context.Context, logger *slog.Logger, cfg *config.Config, opts app.Options, in io.Reader) error {
	entries, err := app.LoadEntries(ctx, logger, opts, in)
	if err != nil {
		return err
	}

	// Stdin is usually the path list, so the viewer needs the terminal.
	tty, err := os.Open("/dev/tty")
	if err != nil {
		return fmt.Errorf("opening terminal: %w", err)
	}
	defer tty.Close()

	// Inside the viewer auto means on: it always draws to a terminal.
	color := cfg.Color != config.ColorNever
	m := tui.InitialModel(entries, opts.Compact, color)
	p := tea.NewProgram(m, tea.WithAltScreen(), tea.WithInput(tty), tea.WithContext(ctx))
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("running viewer: %w", err)
	}
	return nil
}

func newConfigCmd(f *flags) *cobra.Command {
	configCmd := &cobra.Command{
		Use:   "config",
		Short: "Manage the configuration file",
	}

	configPath := func() (string, error) {
		if f.configPath != "" {
			return f.configPath, nil
		}
		return config.DefaultPath()
	}

	configCmd.AddCommand(&cobra.Command{
		Use:   "init",
		Short: "Write a config file with the default settings",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			path, err := configPath()
			if err != nil {
				return err
			}
			if err := config.Init(path, config.Default()); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Configuration initialized at %s\n", path)
			return nil
		},
	})

	configCmd.AddCommand(&cobra.Command{
		Use:   "show",
		Short: "Print the effective configuration",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			path, err := configPath()
			if err != nil {
				return err
			}
			cfg, err := config.Load(path, f.configPath != "")
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "# %s\n", path)
			return (&config.Manager{}).Write(cmd.OutOrStdout(), cfg)
		},
	})

	return configCmd
}

// updateRepo is the GitHub "owner/name" polled by --check-update. Release
// builds set it with -ldflags "-X main.updateRepo=owner/name".
var updateRepo = ""

// githubTag returns the release source for repo.
func githubTag(repo string) (*latest.GithubTag, error) {
	owner, name, ok := strings.Cut(repo, "/")
	if !ok || owner == "" || name == "" || strings.Contains(name, "/") {
		return nil, fmt.Errorf("update check is not configured for this build (repository %q)", repo)
	}
	return &latest.GithubTag{Owner: owner, Repository: name}, nil
}

func checkUpdate(w io.Writer, src latest.Source, currentVer string) error {
	res, err := latest.Check(src, currentVer)
	if err != nil {
		return fmt.Errorf("checking for updates: %w", err)
	}

	if res.Outdated {
		fmt.Fprintf(w, "A new version is available: %s (you have %s)\n", res.Current, currentVer)
	} else {
		fmt.Fprintf(w, "You are using the latest version: %s\n", currentVer)
	}
	return nil
}
