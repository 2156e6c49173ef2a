// Package cmd implements the aria CLI commands.
//
// The root command loads configuration and sets up logging once, before any
// subcommand runs (decorate, inspect, preview, config, version).
package cmd

import (
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/go-drift/aria/internal/config"
	"github.com/go-drift/aria/pkg/blocks"
	"github.com/go-drift/aria/pkg/errors"
	"github.com/go-drift/aria/pkg/ids"
	"github.com/go-drift/aria/pkg/widgets"
)

// Version information set at build time.
var (
	Version   = "0.1.0-dev"
	BuildTime = "unknown"
)

// app is the state shared by subcommands after PersistentPreRunE.
type app struct {
	configPath string
	verbose    bool

	cfg config.Config
	log *logrus.Logger
}

// NewRootCmd builds the command tree.
func NewRootCmd() *cobra.Command {
	a := &app{}
	root := &cobra.Command{
		Use:   "aria",
		Short: "Accessible widgets for static HTML blocks",
		Long: `aria turns plain HTML blocks (accordion, tabs, treeview, breadcrumb)
into accessible widgets with ARIA roles, states and roving focus.

Configuration is read from aria.yaml (see "aria config") and ARIA_*
environment variables.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.setup(cmd)
		},
	}
	root.PersistentFlags().StringVar(&a.configPath, "config", "", "config file (default: ./aria.yaml or $HOME/.config/aria/aria.yaml)")
	root.PersistentFlags().BoolVarP(&a.verbose, "verbose", "v", false, "enable debug logging")

	root.AddCommand(
		newDecorateCmd(a),
		newInspectCmd(a),
		newPreviewCmd(a),
		newConfigCmd(a),
		newVersionCmd(),
	)
	return root
}

// Execute runs the CLI with os.Args.
func Execute() error {
	return NewRootCmd().Execute()
}

func (a *app) setup(cmd *cobra.Command) error {
	cfg, err := config.Load(a.configPath)
	if err != nil {
		return err
	}
	a.cfg = cfg

	logger := logrus.New()
	logger.SetOutput(cmd.ErrOrStderr())
	level, _ := cfg.LogLevel()
	if a.verbose {
		level = logrus.DebugLevel
	}
	logger.SetLevel(level)
	a.log = logger

	errors.SetHandler(&errors.LogHandler{Logger: logger, Verbose: a.verbose})
	if cfg.File != "" {
		logger.WithField("file", cfg.File).Debug("loaded config")
	}
	return nil
}

// idGenerator returns the configured identifier generator.
func (a *app) idGenerator() ids.Generator {
	if a.cfg.IDs.Deterministic {
		return &ids.Sequence{}
	}
	return ids.Random{}
}

// env builds the bootstrap environment for a page.
func (a *app) env(opts widgets.Options, page string) blocks.Env {
	if page == "" {
		page = a.cfg.Page.Path
	}
	if opts.IDs == nil {
		opts.IDs = a.idGenerator()
	}
	return blocks.Env{
		Options:          opts,
		Animated:         a.cfg.Animated,
		Page:             page,
		ExpandAllLabel:   a.cfg.Labels.ExpandAll,
		CollapseAllLabel: a.cfg.Labels.CollapseAll,
		Log:              a.log,
	}
}
