package main

import (
	"fmt"
	"io"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"git.sr.ht/~jakintosh/wordhunt/internal/config"
	"git.sr.ht/~jakintosh/wordhunt/internal/parser"
	"git.sr.ht/~jakintosh/wordhunt/internal/scoring"
	"git.sr.ht/~jakintosh/wordhunt/internal/search"
	"git.sr.ht/~jakintosh/wordhunt/internal/version"
)

// app carries state resolved once per invocation and shared by subcommands.
type app struct {
	configFile string
	verbose    bool

	cfg    *config.Config
	engine *search.Engine
}

func newRootCmd() *cobra.Command {
	a := &app{}

	root := &cobra.Command{
		Use:           "wordhunt",
		Short:         "Find dictionary words on a grid of letter tiles",
		Version:       version.Data().String(),
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			setupLogging(a.verbose, cmd.ErrOrStderr())
			if cmd.Name() == "version" {
				return nil
			}
			return a.load(cmd)
		},
	}

	flags := root.PersistentFlags()
	flags.StringVar(&a.configFile, "config", "", "config file (default: ./wordhunt.yaml)")
	flags.BoolVarP(&a.verbose, "verbose", "v", false, "use verbose output")
	flags.String("dict", config.DefaultDictionary, "newline-delimited word list")
	flags.String("board", "", "file of whitespace-separated tiles in row-major order")
	flags.String("tiles", "", `inline tiles in row-major order, e.g. "E E C A A L E P H N B O Q T T Y"`)
	flags.Int("min", config.DefaultMinLength, "minimum word length")
	flags.String("rule", scoring.DefaultExpression, `scoring expression over "length" and "minimum", or "classic"`)

	root.AddCommand(
		newSolveCmd(a),
		newLocateCmd(a),
		newScoreCmd(a),
		newPlayCmd(a),
		newVersionCmd(),
	)
	return root
}

// load resolves configuration and builds the engine it describes.
func (a *app) load(cmd *cobra.Command) error {
	cfg, err := config.Load(a.configFile, cmd.Flags())
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	engine := search.NewEngine()

	rule, err := scoring.NewRule(cfg.Rule)
	if err != nil {
		return err
	}
	engine.SetRule(rule)

	if err := engine.LoadLexiconFile(cfg.Dictionary); err != nil {
		return err
	}
	summary := engine.Summary()
	log.Info().Str("dictionary", cfg.Dictionary).Int("words", summary.Words).Msg("lexicon loaded")
	for _, issue := range summary.Issues {
		log.Debug().Str("stage", issue.Stage).Int("line", issue.Line).Msg(issue.Message)
	}

	var tiles []string
	switch {
	case cfg.BoardFile != "":
		tiles, err = parser.ParseBoardFile(cfg.BoardFile)
		if err != nil {
			return fmt.Errorf("read board: %w", err)
		}
	case cfg.Tiles != "":
		tiles = parser.ParseTiles(cfg.Tiles)
	}
	if cfg.BoardFile != "" || cfg.Tiles != "" {
		if err := engine.SetBoard(tiles); err != nil {
			return fmt.Errorf("set board: %w", err)
		}
	}

	a.cfg = cfg
	a.engine = engine
	return nil
}

func setupLogging(verbose bool, w io.Writer) {
	level := zerolog.InfoLevel
	if verbose {
		level = zerolog.DebugLevel
	}
	log.Logger = zerolog.New(zerolog.ConsoleWriter{Out: w, TimeFormat: time.Kitchen}).
		Level(level).
		With().
		Timestamp().
		Logger()
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print build information",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			info := version.Data()
			fmt.Fprintf(cmd.OutOrStdout(), "wordhunt %s\ncommit: %s\nbuilt:  %s\n", info.Version, info.Commit, info.BuildDate)
		},
	}
}
