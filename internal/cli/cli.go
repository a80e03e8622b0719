// Package cli implements the pinboard command-line interface.
package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/matzehuels/pinboard/pkg/board"
	"github.com/matzehuels/pinboard/pkg/buildinfo"
	"github.com/matzehuels/pinboard/pkg/config"
	"github.com/matzehuels/pinboard/pkg/errors"
	"github.com/matzehuels/pinboard/pkg/pinboard"
	"github.com/matzehuels/pinboard/pkg/record"
	"github.com/matzehuels/pinboard/pkg/session"
)

// =============================================================================
// Constants
// =============================================================================

// appName is the application name used for display.
const appName = "pinboard"

// Log levels exported for use in main.go.
const (
	LogDebug = log.DebugLevel
	LogInfo  = log.InfoLevel
)

// =============================================================================
// CLI - Central CLI State
// =============================================================================

// CLI holds shared state for all commands.
type CLI struct {
	Logger *log.Logger

	flags   globalFlags
	cfg     config.Config
	factory *record.Factory
	sess    *session.Session
}

// globalFlags are the persistent flags shared by every command.
type globalFlags struct {
	configPath string
	board      string
	idSource   string
	noSeed     bool
	verbose    bool
}

// New creates a new CLI instance with a default logger.
func New(w io.Writer, level log.Level) *CLI {
	return &CLI{Logger: newLogger(w, level)}
}

// SetLogLevel updates the logger's level.
func (c *CLI) SetLogLevel(level log.Level) {
	c.Logger.SetLevel(level)
}

// RootCommand creates the root cobra command with all subcommands registered.
func (c *CLI) RootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:   appName,
		Short: "Pinboard links documents, annotations and people",
		Long: `Pinboard keeps a graph of reference documents, the annotations quoted from
them and the people those annotations mention, and lays it out for display.

The graph starts from a small built-in seed. A board file (TOML or YAML)
adds further records on top.`,
		Version:      buildinfo.Version,
		SilenceUsage: true,
	}

	root.SetVersionTemplate(buildinfo.Template())

	pf := root.PersistentFlags()
	pf.StringVar(&c.flags.configPath, "config", "", "config file (default: $XDG_CONFIG_HOME/pinboard/config.toml)")
	pf.StringVarP(&c.flags.board, "board", "b", "", "board file applied on top of the seed graph")
	pf.StringVar(&c.flags.idSource, "id-source", "", "record id generator: uuid, nanoid, sequence")
	pf.BoolVar(&c.flags.noSeed, "no-seed", false, "start from an empty graph")
	pf.BoolVarP(&c.flags.verbose, "verbose", "v", false, "enable verbose logging")

	root.AddCommand(c.documentsCommand())
	root.AddCommand(c.annotationsCommand())
	root.AddCommand(c.entitiesCommand())
	root.AddCommand(c.showCommand())
	root.AddCommand(c.layoutCommand())
	root.AddCommand(c.renderCommand())
	root.AddCommand(c.validateCommand())
	root.AddCommand(c.completionCommand())

	return root
}

// =============================================================================
// Graph Loading
// =============================================================================

// session returns the session for this invocation, building it on first use:
// configuration, then the seed graph, then the board file.
func (c *CLI) session(cmd *cobra.Command) (*session.Session, error) {
	if c.sess != nil {
		return c.sess, nil
	}
	if err := c.loadConfig(cmd); err != nil {
		return nil, err
	}

	g := pinboard.New()
	if !c.cfg.NoSeed {
		g = pinboard.Seed(c.factory)
	}
	sess, err := session.New(g, session.WithLogger(c.Logger))
	if err != nil {
		return nil, fmt.Errorf("create session: %w", err)
	}

	if c.cfg.Board != "" {
		prog := newProgress(c.Logger)
		f, err := board.Load(cmd.Context(), c.cfg.Board)
		if err != nil {
			return nil, err
		}
		sess.Update(cmd.Context(), f.Ops(c.factory)...)
		prog.done(fmt.Sprintf("Loaded %d facts from %s", f.Facts(), c.cfg.Board))
	}

	c.sess = sess
	return sess, nil
}

// loadConfig merges config sources and applies the flags given on the
// command line, which take precedence over everything else.
func (c *CLI) loadConfig(cmd *cobra.Command) error {
	cfg, err := config.Loader{Path: c.flags.configPath, Logger: c.Logger}.Load()
	if err != nil {
		return err
	}

	flags := cmd.Flags()
	if flags.Changed("board") {
		cfg.Board = c.flags.board
	}
	if flags.Changed("id-source") {
		cfg.IDSource = c.flags.idSource
	}
	if flags.Changed("no-seed") {
		cfg.NoSeed = c.flags.noSeed
	}
	if flags.Changed("verbose") {
		cfg.Verbose = c.flags.verbose
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	if cfg.Verbose {
		c.SetLogLevel(LogDebug)
	}
	factory, err := cfg.Factory()
	if err != nil {
		return err
	}

	c.cfg, c.factory = cfg, factory
	c.Logger.Debug("configuration loaded", "direction", cfg.Direction, "id_source", cfg.IDSource, "board", cfg.Board, "seed", !cfg.NoSeed)
	return nil
}

// =============================================================================
// Output
// =============================================================================

// writeOutput writes data to path, or to the command's stdout if path is empty.
func writeOutput(cmd *cobra.Command, path string, data []byte) error {
	if path == "" {
		_, err := cmd.OutOrStdout().Write(data)
		return err
	}
	if err := errors.ValidatePath(path); err != nil {
		return err
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return errors.Wrap(errors.ErrCodeInvalidPath, err, "write %s", path)
	}
	out := cmd.OutOrStdout()
	printSuccess(out, "Wrote %d bytes", len(data))
	printFile(out, path)
	return nil
}
