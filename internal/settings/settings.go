// Package settings loads the run configuration from a YAML or JSON file.
package settings

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"cli-life/internal/core"
	"cli-life/pkg/sims/life"

	"gopkg.in/yaml.v3"
)

// Settings is the run configuration. Width and Height are in pixels and
// divided by CellSize to get the grid size.
type Settings struct {
	Width       int       `yaml:"width"`
	Height      int       `yaml:"height"`
	LiveDensity float64   `yaml:"liveDensity"`
	CellSize    int       `yaml:"cellSize"`
	Seed        int64     `yaml:"seed"`
	Generations int       `yaml:"generations"`
	Densities   []float64 `yaml:"densities"`
}

// file mirrors Settings with optional fields so required keys can be told
// apart from zero values.
type file struct {
	Width       *int      `yaml:"width"`
	Height      *int      `yaml:"height"`
	LiveDensity *float64  `yaml:"liveDensity"`
	CellSize    *int      `yaml:"cellSize"`
	Seed        *int64    `yaml:"seed"`
	Generations *int      `yaml:"generations"`
	Densities   []float64 `yaml:"densities"`
}

// DefaultSettings returns the standard configuration.
func DefaultSettings() Settings {
	board := life.DefaultConfig()
	exp := life.DefaultExperimentConfig()
	return Settings{
		Width:       board.Width,
		Height:      board.Height,
		LiveDensity: board.LiveDensity,
		CellSize:    board.CellSize,
		Seed:        board.Seed,
		Generations: exp.Generations,
		Densities:   exp.Densities,
	}
}

// Load reads and validates the settings file at path.
func Load(path string) (Settings, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Settings{}, fmt.Errorf("%w: settings: %w", life.ErrIO, err)
	}
	s, err := Parse(data)
	if err != nil {
		return Settings{}, fmt.Errorf("settings %s: %w", path, err)
	}
	return s, nil
}

// Parse decodes settings from YAML (JSON documents are accepted as well).
// width, height and liveDensity are required; other keys fall back to
// DefaultSettings.
func Parse(data []byte) (Settings, error) {
	var raw file
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&raw); err != nil && !errors.Is(err, io.EOF) {
		return Settings{}, fmt.Errorf("%w: %w", life.ErrConfig, err)
	}

	var missing []string
	s := DefaultSettings()
	if raw.Width == nil {
		missing = append(missing, "width")
	} else {
		s.Width = *raw.Width
	}
	if raw.Height == nil {
		missing = append(missing, "height")
	} else {
		s.Height = *raw.Height
	}
	if raw.LiveDensity == nil {
		missing = append(missing, "liveDensity")
	} else {
		s.LiveDensity = *raw.LiveDensity
	}
	if len(missing) > 0 {
		return Settings{}, fmt.Errorf("%w: missing %s", life.ErrConfig, strings.Join(missing, ", "))
	}

	if raw.CellSize != nil {
		s.CellSize = *raw.CellSize
	}
	if raw.Seed != nil {
		s.Seed = *raw.Seed
	}
	if raw.Generations != nil {
		s.Generations = *raw.Generations
	}
	if raw.Densities != nil {
		s.Densities = raw.Densities
	}
	return s, s.Validate()
}

// Override applies flag-style key/value pairs on top of the settings.
func (s *Settings) Override(kv map[string]string) error {
	for key, v := range kv {
		var err error
		switch key {
		case "width":
			s.Width, err = strconv.Atoi(v)
		case "height":
			s.Height, err = strconv.Atoi(v)
		case "cellSize":
			s.CellSize, err = strconv.Atoi(v)
		case "liveDensity":
			s.LiveDensity, err = strconv.ParseFloat(v, 64)
		case "seed":
			s.Seed, err = strconv.ParseInt(v, 10, 64)
		case "generations":
			s.Generations, err = strconv.Atoi(v)
		case "densities":
			s.Densities, err = parseFloats(v)
		default:
			return fmt.Errorf("%w: unknown setting %q", life.ErrConfig, key)
		}
		if err != nil {
			return fmt.Errorf("%w: %s=%q: %w", life.ErrConfig, key, v, err)
		}
	}
	return s.Validate()
}

func parseFloats(v string) ([]float64, error) {
	var out []float64
	for _, field := range strings.Split(v, ",") {
		f, err := strconv.ParseFloat(strings.TrimSpace(field), 64)
		if err != nil {
			return nil, err
		}
		out = append(out, f)
	}
	return out, nil
}

// Validate checks the settings against what the board and the experiment
// runner accept.
func (s Settings) Validate() error {
	if s.Width <= 0 || s.Height <= 0 {
		return fmt.Errorf("%w: width and height must be positive, got %dx%d", life.ErrConfig, s.Width, s.Height)
	}
	if err := s.Board().Validate(); err != nil {
		return err
	}
	return s.Experiment().Validate()
}

// Board returns the configuration for a single board.
func (s Settings) Board() life.Config {
	return life.Config{
		Width:       s.Width,
		Height:      s.Height,
		CellSize:    s.CellSize,
		LiveDensity: s.LiveDensity,
		Seed:        s.Seed,
	}
}

// Experiment returns the batch configuration. Board dimensions are in cells.
func (s Settings) Experiment() life.ExperimentConfig {
	cols, rows := s.Width, s.Height
	if s.CellSize > 0 {
		cols, rows = s.Width/s.CellSize, s.Height/s.CellSize
	}
	return life.ExperimentConfig{
		Width:       cols,
		Height:      rows,
		Generations: s.Generations,
		Densities:   append([]float64(nil), s.Densities...),
		Seed:        s.Seed,
	}
}

// Parameters describes the settings for the run report.
func (s Settings) Parameters() core.ParameterSnapshot {
	densities := make([]string, len(s.Densities))
	for i, d := range s.Densities {
		densities[i] = strconv.FormatFloat(d, 'f', -1, 64)
	}
	return core.ParameterSnapshot{Groups: []core.ParameterGroup{
		{
			Name: "Board",
			Params: []core.Parameter{
				intParam("width", "Width", s.Width),
				intParam("height", "Height", s.Height),
				intParam("cellSize", "Cell size", s.CellSize),
				floatParam("liveDensity", "Live density", s.LiveDensity),
				{Key: "seed", Label: "Seed", Type: core.ParamTypeInt, Value: strconv.FormatInt(s.Seed, 10)},
			},
		},
		{
			Name: "Experiments",
			Params: []core.Parameter{
				intParam("generations", "Generations", s.Generations),
				{Key: "densities", Label: "Densities", Type: core.ParamTypeList, Value: strings.Join(densities, ",")},
			},
		},
	}}
}

func intParam(key, label string, value int) core.Parameter {
	return core.Parameter{
		Key:   key,
		Label: label,
		Type:  core.ParamTypeInt,
		Value: strconv.Itoa(value),
	}
}

func floatParam(key, label string, value float64) core.Parameter {
	return core.Parameter{
		Key:   key,
		Label: label,
		Type:  core.ParamTypeFloat,
		Value: strconv.FormatFloat(value, 'f', -1, 64),
	}
}
