package main

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"git.sr.ht/~jakintosh/wordhunt/internal/tui"
)

func newSolveCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "solve",
		Short: "List every dictionary word on the board",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			results, err := a.engine.FindAllWordsContext(cmd.Context(), a.cfg.MinLength)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "%s\n\n", a.engine.Board())
			for _, word := range results.Words() {
				fmt.Fprintln(out, word)
			}
			fmt.Fprintf(out, "\n%d words of %d or more letters\n", results.Len(), a.cfg.MinLength)
			return nil
		},
	}
}

func newLocateCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "locate WORD...",
		Short: "Show where words occur on the board",
		Long: `Show the tile positions spelling each word. Positions are numbered
from zero in row-major order. Dictionary membership is not required.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			for _, word := range args {
				path, err := a.engine.Locate(word)
				if err != nil {
					return fmt.Errorf("locate %q: %w", word, err)
				}
				if path == nil {
					fmt.Fprintf(out, "%s: not on board\n", strings.ToUpper(word))
					continue
				}
				fmt.Fprintf(out, "%s: %s\n", strings.ToUpper(word), joinInts(path))
			}
			return nil
		},
	}
}

func newScoreCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "score WORD...",
		Short: "Score a set of words against the board",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			score, err := a.engine.Score(args, a.cfg.MinLength)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "score: %d\n", score)
			return nil
		},
	}
}

func newPlayCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "play",
		Short: "Play an interactive game in the terminal",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			// Log lines would corrupt the alternate screen.
			log.Logger = zerolog.Nop()

			model := tui.NewModel(a.engine, a.cfg.MinLength)
			program := tea.NewProgram(model, tea.WithAltScreen(), tea.WithContext(cmd.Context()))
			if _, err := program.Run(); err != nil {
				return fmt.Errorf("TUI error: %w", err)
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Found %d words for %d points.\n", len(model.Found()), model.Score())
			return nil
		},
	}
}

func joinInts(values []int) string {
	parts := make([]string, len(values))
	for i, v := range values {
		parts[i] = fmt.Sprint(v)
	}
	return strings.Join(parts, " ")
}
