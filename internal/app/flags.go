package app

import "flag"

// Config represents the command-line parameters for the viewer.
type Config struct {
	Cols  int
	Rows  int
	Scale int
	TPS   int
	Seed  int64
	Stage int
}

// NewConfig returns a Config populated with sensible defaults.
func NewConfig() *Config {
	return &Config{Cols: 60, Rows: 40, Scale: 12, TPS: 60, Seed: 42, Stage: 1}
}

// Bind attaches the configuration to the provided FlagSet.
func (c *Config) Bind(fs *flag.FlagSet) {
	fs.IntVar(&c.Cols, "cols", c.Cols, "grid columns")
	fs.IntVar(&c.Rows, "rows", c.Rows, "grid rows")
	fs.IntVar(&c.Scale, "scale", c.Scale, "pixel scale multiplier")
	fs.IntVar(&c.TPS, "tps", c.TPS, "ticks per second")
	fs.Int64Var(&c.Seed, "seed", c.Seed, "seed for level generation")
	fs.IntVar(&c.Stage, "stage", c.Stage, "stage used to scale terrain tuning")
}
