// Package solver — the open config bag and its typed decoding.
//
// UI collaborators speak in an untyped string-keyed bag; the heuristics
// speak in typed option structs. The conversion happens exactly once, at
// the registry boundary: unknown keys are ignored, missing keys fall back
// to the heuristic's declared default, and numeric values are clamped to
// the declared [min,max] range so an out-of-range slider value can never
// reach an algorithm body.
package solver

import "strconv"

// Config is the open per-run option bag supplied by the caller. Values
// are numbers (any Go numeric type) or strings; everything else is
// ignored. Config itself is never retained by a solver.
type Config map[string]any

// Clone returns a deep, non-aliased copy of the bag (values are scalars,
// so a key-by-key copy is deep). A nil bag clones to nil.
func (c Config) Clone() Config {
	if c == nil {
		return nil
	}
	out := make(Config, len(c))
	for k, v := range c {
		out[k] = v
	}

	return out
}

// number extracts a numeric option, falling back to def when the key is
// missing or non-numeric, and clamping the result into [min,max].
func (c Config) number(key string, def, min, max float64) float64 {
	v, ok := c[key]
	if !ok {
		return clamp(def, min, max)
	}

	var f float64
	switch t := v.(type) {
	case float64:
		f = t
	case float32:
		f = float64(t)
	case int:
		f = float64(t)
	case int32:
		f = float64(t)
	case int64:
		f = float64(t)
	case uint:
		f = float64(t)
	case string:
		parsed, err := strconv.ParseFloat(t, 64)
		if err != nil {
			return clamp(def, min, max)
		}
		f = parsed
	default:
		return clamp(def, min, max)
	}

	return clamp(f, min, max)
}

// integer is number truncated to int.
func (c Config) integer(key string, def, min, max int) int {
	return int(c.number(key, float64(def), float64(min), float64(max)))
}

// seed extracts the conventional "seed" key (unclamped: any int64 is a
// valid stream identifier; 0 keeps the default-stream policy).
func (c Config) seed() int64 {
	v, ok := c["seed"]
	if !ok {
		return 0
	}
	switch t := v.(type) {
	case int64:
		return t
	case int:
		return int64(t)
	case float64:
		return int64(t)
	case string:
		parsed, err := strconv.ParseInt(t, 10, 64)
		if err != nil {
			return 0
		}

		return parsed
	default:
		return 0
	}
}

func clamp(v, min, max float64) float64 {
	if v < min {
		return min
	}
	if v > max {
		return max
	}

	return v
}

// Option-bag decoders, one per configurable heuristic. Each starts from
// the heuristic's defaults and overlays recognized keys with clamping.

func kOptOptionsFromConfig(cfg Config) KOptOptions {
	o := DefaultKOptOptions()
	o.K = cfg.integer("k", o.K, 2, 5)

	return o
}

func annealOptionsFromConfig(cfg Config) AnnealOptions {
	o := DefaultAnnealOptions()
	o.InitialTemperature = cfg.number("initialTemperature", o.InitialTemperature, 1, 1e9)
	o.CoolingRate = cfg.number("coolingRate", o.CoolingRate, 0.5, 0.999999)
	o.MinTemperature = cfg.number("minTemperature", o.MinTemperature, 1e-9, 1e6)
	o.MaxIterations = cfg.integer("maxIterations", o.MaxIterations, 1, 100000000)
	o.Seed = cfg.seed()

	return o
}

func geneticOptionsFromConfig(cfg Config) GeneticOptions {
	o := DefaultGeneticOptions()
	o.PopulationSize = cfg.integer("populationSize", o.PopulationSize, 2, 10000)
	o.Generations = cfg.integer("generations", o.Generations, 1, 1000000)
	o.MutationRate = cfg.number("mutationRate", o.MutationRate, 0, 1)
	o.CrossoverRate = cfg.number("crossoverRate", o.CrossoverRate, 0, 1)
	o.EliteCount = cfg.integer("eliteCount", o.EliteCount, 0, 10000)
	o.Seed = cfg.seed()

	return o
}

func antColonyOptionsFromConfig(cfg Config) AntColonyOptions {
	o := DefaultAntColonyOptions()
	o.AntCount = cfg.integer("antCount", o.AntCount, 1, 10000)
	o.Iterations = cfg.integer("iterations", o.Iterations, 1, 1000000)
	o.Alpha = cfg.number("alpha", o.Alpha, 0, 10)
	o.Beta = cfg.number("beta", o.Beta, 0, 10)
	o.EvaporationRate = cfg.number("evaporationRate", o.EvaporationRate, 0, 0.999999)
	o.Q = cfg.number("q", o.Q, 1e-9, 1e9)
	o.Seed = cfg.seed()

	return o
}

func graspOptionsFromConfig(cfg Config) GRASPOptions {
	o := DefaultGRASPOptions()
	o.Alpha = cfg.number("alpha", o.Alpha, 0, 1)
	o.Iterations = cfg.integer("iterations", o.Iterations, 1, 1000000)
	o.LocalSearchMaxIterations = cfg.integer("localSearchMaxIterations", o.LocalSearchMaxIterations, 1, 100000000)
	o.Seed = cfg.seed()

	return o
}
