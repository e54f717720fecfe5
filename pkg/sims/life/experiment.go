package life

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"slices"
	"strconv"
	"strings"
)

// ExperimentConfig describes a batch of runs, one board per density.
type ExperimentConfig struct {
	Width       int
	Height      int
	Generations int
	Densities   []float64
	// Seed is the base seed; the board for Densities[i] uses Seed+i.
	Seed int64
}

// DefaultExperimentConfig returns the standard batch.
func DefaultExperimentConfig() ExperimentConfig {
	return ExperimentConfig{
		Width:       50,
		Height:      20,
		Generations: 100,
		Densities:   []float64{0.1, 0.2, 0.3, 0.4, 0.5},
		Seed:        42,
	}
}

// Validate reports whether the batch can run.
func (c ExperimentConfig) Validate() error {
	if c.Width <= 0 || c.Height <= 0 {
		return fmt.Errorf("%w: experiment board %dx%d", ErrConfig, c.Width, c.Height)
	}
	if c.Generations < 0 {
		return fmt.Errorf("%w: negative generation count %d", ErrConfig, c.Generations)
	}
	if len(c.Densities) == 0 {
		return fmt.Errorf("%w: no experiment densities", ErrConfig)
	}
	for i, d := range c.Densities {
		if !(d >= 0 && d <= 1) {
			return fmt.Errorf("%w: density %g outside [0,1]", ErrConfig, d)
		}
		if slices.Contains(c.Densities[:i], d) {
			return fmt.Errorf("%w: density %g listed twice", ErrConfig, d)
		}
	}
	return nil
}

// BoardSeed returns the seed used for the board at position i of Densities.
func (c ExperimentConfig) BoardSeed(i int) int64 { return c.Seed + int64(i) }

// Experiment holds the live-cell count of every generation for each density.
type Experiment struct {
	densities   []float64
	counts      [][]int
	generations int
}

// RunExperiments builds a fresh board per density and records its live-cell
// count before each advance, so entry 0 is the initial population.
func RunExperiments(cfg ExperimentConfig) (*Experiment, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	exp := &Experiment{
		densities:   slices.Clone(cfg.Densities),
		counts:      make([][]int, len(cfg.Densities)),
		generations: cfg.Generations,
	}
	for i, density := range cfg.Densities {
		board, err := New(cfg.Width, cfg.Height, density, cfg.BoardSeed(i))
		if err != nil {
			return nil, err
		}
		series := make([]int, cfg.Generations)
		for gen := range series {
			series[gen] = board.CountLiveCells()
			board.Advance()
		}
		exp.counts[i] = series
	}
	return exp, nil
}

// Densities returns the densities in run order.
func (e *Experiment) Densities() []float64 { return slices.Clone(e.densities) }

// Generations returns the length of every series.
func (e *Experiment) Generations() int { return e.generations }

// Series returns the live-cell counts recorded for density.
func (e *Experiment) Series(density float64) ([]int, bool) {
	i := slices.Index(e.densities, density)
	if i < 0 {
		return nil, false
	}
	return slices.Clone(e.counts[i]), true
}

// WriteTable writes the series as semicolon-separated text: a header
// "gen;<density>..." followed by one "g;<count>..." row per generation.
func (e *Experiment) WriteTable(w io.Writer) error {
	bw := bufio.NewWriter(w)
	bw.WriteString("gen")
	for _, d := range e.densities {
		bw.WriteByte(';')
		bw.WriteString(strconv.FormatFloat(d, 'f', -1, 64))
	}
	bw.WriteByte('\n')
	for gen := 0; gen < e.generations; gen++ {
		bw.WriteString(strconv.Itoa(gen))
		for _, series := range e.counts {
			bw.WriteByte(';')
			bw.WriteString(strconv.Itoa(series[gen]))
		}
		bw.WriteByte('\n')
	}
	return bw.Flush()
}

// Table returns the WriteTable output as a string.
func (e *Experiment) Table() string {
	var sb strings.Builder
	_ = e.WriteTable(&sb)
	return sb.String()
}

// SaveTable writes the table to path.
func (e *Experiment) SaveTable(path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("%w: save table: %w", ErrIO, err)
	}
	if err := e.WriteTable(f); err != nil {
		f.Close()
		return fmt.Errorf("%w: save table: %w", ErrIO, err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("%w: save table: %w", ErrIO, err)
	}
	return nil
}
