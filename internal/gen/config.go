package gen

import "strconv"

// Params holds the per-type cluster tuning for one level.
type Params struct {
	MeadowClusters int
	MeadowSizeMin  int
	MeadowSizeMax  int

	ForestClusters int
	ForestSizeMin  int
	ForestSizeMax  int

	BushClusters int
	BushSizeMin  int
	BushSizeMax  int

	SwampClusters int
	SwampSizeMin  int
	SwampSizeMax  int

	UndergrowthChance float64

	TrailStep  float64
	StreamStep float64
}

// Config controls one generation pass.
type Config struct {
	Cols     int
	Rows     int
	TileSize int

	Seed  int64
	Stage int

	Params Params

	// Logf, when set, receives placement-exhaustion notices during
	// generation. Left nil by library consumers that do not care.
	Logf func(format string, args ...any)
}

// DefaultConfig returns the stage-1 tuning.
func DefaultConfig() Config {
	return Config{
		Cols:     60,
		Rows:     40,
		TileSize: 32,
		Seed:     1337,
		Stage:    1,
		Params: Params{
			MeadowClusters: 6,
			MeadowSizeMin:  20,
			MeadowSizeMax:  40,

			ForestClusters: 4,
			ForestSizeMin:  12,
			ForestSizeMax:  28,

			BushClusters: 5,
			BushSizeMin:  4,
			BushSizeMax:  10,

			SwampClusters: 2,
			SwampSizeMin:  8,
			SwampSizeMax:  18,

			UndergrowthChance: 0.35,

			TrailStep:  2,
			StreamStep: 2,
		},
	}
}

// ForStage scales the tuning for the given 1-based stage. Counts grow
// roughly linearly; size ranges grow slowly so later stages get denser
// rather than uniformly bigger features.
func (c Config) ForStage(stage int) Config {
	if stage < 1 {
		stage = 1
	}
	c.Stage = stage
	extra := stage - 1
	p := &c.Params
	p.ForestClusters += extra
	p.BushClusters += extra
	p.SwampClusters += extra / 2
	p.ForestSizeMax += 2 * extra
	p.SwampSizeMax += extra
	return c
}

// FromMap populates the config from a string map (flag-style key/value pairs).
func FromMap(cfg map[string]string) Config {
	c := DefaultConfig()
	if cfg == nil {
		return c
	}
	if v, ok := cfg["cols"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			c.Cols = parsed
		}
	}
	if v, ok := cfg["rows"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			c.Rows = parsed
		}
	}
	if v, ok := cfg["tile_size"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			c.TileSize = parsed
		}
	}
	if v, ok := cfg["seed"]; ok {
		if parsed, err := strconv.ParseInt(v, 10, 64); err == nil {
			c.Seed = parsed
		}
	}
	if v, ok := cfg["stage"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			c = c.ForStage(parsed)
		}
	}
	if v, ok := cfg["undergrowth_chance"]; ok {
		if parsed, err := strconv.ParseFloat(v, 64); err == nil && parsed >= 0 {
			c.Params.UndergrowthChance = parsed
		}
	}
	return c
}
