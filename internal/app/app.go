// Package app drives a life board from the command line: pacing, periodic
// checkpoints and analysis reports.
package app

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"cli-life/internal/core"
	"cli-life/internal/settings"
	"cli-life/pkg/sims/life"
)

// Session runs a board generation by generation.
type Session struct {
	board *life.Board
	pacer *core.FixedStep
	out   io.Writer

	statePath  string
	checkpoint int
}

// New constructs a Session for the provided board.
func New(board *life.Board, cfg *Config, out io.Writer) *Session {
	return &Session{
		board:      board,
		pacer:      core.NewFixedStep(cfg.TPS),
		out:        out,
		statePath:  cfg.State,
		checkpoint: cfg.Checkpoint,
	}
}

// OpenBoard returns the board a run starts from: the state file named by
// cfg.Load when it exists, otherwise a fresh random board from s.
func OpenBoard(cfg *Config, s settings.Settings) (*life.Board, error) {
	if cfg.Load != "" {
		b, err := life.LoadState(cfg.Load)
		if err == nil || !errors.Is(err, os.ErrNotExist) {
			return b, err
		}
	}
	boardCfg := s.Board()
	if cfg.Seed != 0 {
		boardCfg.Seed = cfg.Seed
	}
	return life.NewWithConfig(boardCfg)
}

// Board exposes the board being run.
func (s *Session) Board() *life.Board { return s.board }

// StatePath returns where checkpoints save the board, or "" when they only
// report.
func (s *Session) StatePath() string { return s.statePath }

// Update advances the board one generation.
func (s *Session) Update() { s.board.Advance() }

// Checkpoint saves the board to the state path and writes a report.
func (s *Session) Checkpoint() error {
	if s.statePath != "" {
		if err := s.board.SaveState(s.statePath); err != nil {
			return err
		}
	}
	return WriteReport(s.out, s.board)
}

// Run advances the board for the given number of generations, or until ctx
// is done when generations is zero. It checkpoints every s.checkpoint
// generations and once more before returning.
func (s *Session) Run(ctx context.Context, generations int) error {
	for done := 0; generations <= 0 || done < generations; {
		if err := s.pacer.Wait(ctx); err != nil {
			break
		}
		s.Update()
		done++
		if s.checkpoint > 0 && s.board.Generation()%s.checkpoint == 0 {
			if err := s.Checkpoint(); err != nil {
				return err
			}
		}
	}
	return s.Checkpoint()
}

// WriteReport prints the generation, live cells, clusters and still-life
// counts of b.
func WriteReport(w io.Writer, b *life.Board) error {
	if _, err := fmt.Fprintf(w, "generation %d: %d live, %d clusters\n",
		b.Generation(), b.CountLiveCells(), b.CountClusters()); err != nil {
		return err
	}
	counts := b.CountPatterns()
	if _, err := io.WriteString(w, "patterns:"); err != nil {
		return err
	}
	for _, name := range life.StandardLibrary().Names() {
		if _, err := fmt.Fprintf(w, " %s=%d", name, counts[name]); err != nil {
			return err
		}
	}
	_, err := io.WriteString(w, "\n")
	return err
}

// RunExperiments runs the density batch from s, saves the table to dataPath
// and echoes it to w.
func RunExperiments(w io.Writer, s settings.Settings, dataPath string) (*life.Experiment, error) {
	exp, err := life.RunExperiments(s.Experiment())
	if err != nil {
		return nil, err
	}
	if dataPath != "" {
		if err := exp.SaveTable(dataPath); err != nil {
			return nil, err
		}
	}
	if err := exp.WriteTable(w); err != nil {
		return nil, err
	}
	return exp, nil
}
