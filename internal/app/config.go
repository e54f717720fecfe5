package app

import (
	"flag"
	"fmt"
	"strings"
)

// Config represents the command-line parameters for the application.
type Config struct {
	Settings    string
	Load        string
	State       string
	Data        string
	Generations int
	Checkpoint  int
	TPS         int
	Seed        int64
	Experiment  bool
	Overrides   KVList
}

// NewConfig returns a Config populated with sensible defaults.
func NewConfig() *Config {
	return &Config{
		Settings: "settings.json",
		State:    "pause_state.txt",
		Data:     "data.txt",
		TPS:      1,
	}
}

// Bind attaches the configuration to the provided FlagSet.
func (c *Config) Bind(fs *flag.FlagSet) {
	fs.StringVar(&c.Settings, "settings", c.Settings, "settings file (YAML or JSON); empty uses defaults")
	fs.StringVar(&c.Load, "load", c.Load, "state file to start from instead of a random board")
	fs.StringVar(&c.State, "state", c.State, "where checkpoints save the board")
	fs.StringVar(&c.Data, "data", c.Data, "where experiments write their table")
	fs.IntVar(&c.Generations, "generations", c.Generations, "generations to run; 0 runs until interrupted")
	fs.IntVar(&c.Checkpoint, "checkpoint", c.Checkpoint, "save and report every N generations; 0 only at exit")
	fs.IntVar(&c.TPS, "tps", c.TPS, "generations per second; 0 runs unpaced")
	fs.Int64Var(&c.Seed, "seed", c.Seed, "seed for the random board; 0 keeps the settings seed")
	fs.BoolVar(&c.Experiment, "experiment", c.Experiment, "run the density experiments after the simulation")
	fs.Var(&c.Overrides, "set", "setting override in key=value form (repeatable)")
}

// KVList collects repeated key=value flags.
type KVList []string

func (l *KVList) String() string {
	return strings.Join(*l, ",")
}

// Set appends one key=value pair.
func (l *KVList) Set(value string) error {
	if !strings.Contains(value, "=") {
		return fmt.Errorf("expected key=value, got %q", value)
	}
	*l = append(*l, value)
	return nil
}

// Map returns the pairs as a map; later keys win.
func (l KVList) Map() map[string]string {
	out := make(map[string]string, len(l))
	for _, kv := range l {
		parts := strings.SplitN(kv, "=", 2)
		out[parts[0]] = parts[1]
	}
	return out
}
