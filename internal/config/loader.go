package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
)

type SourceKind string

const (
	SourceDefault SourceKind = "default"
	SourceEnv     SourceKind = "env"
)

// Source records where a setting's value came from. Name is the environment
// variable for SourceEnv.
type Source struct {
	Kind SourceKind
	Name string
}

// String renders the source as "default" or "env:NAME".
func (s Source) String() string {
	if s.Kind == SourceEnv && s.Name != "" {
		return string(s.Kind) + ":" + s.Name
	}
	return string(s.Kind)
}

type LoadResult struct {
	Config  *Config
	Sources map[string]Source // setting path -> source
}

const (
	EnvMinWindowSize = "MONCYCLE_MIN_SIZE"
	EnvLogLevel      = "MONCYCLE_LOG_LEVEL"
	EnvBackend       = "MONCYCLE_BACKEND"
)

// Load reads overrides from the process environment.
func Load() (*LoadResult, error) {
	return LoadFromEnv(os.LookupEnv)
}

// LoadFromEnv applies overrides found through lookup on top of the defaults
// and validates the result. Empty values are treated as unset.
func LoadFromEnv(lookup func(string) (string, bool)) (*LoadResult, error) {
	cfg := DefaultConfig()
	sources := map[string]Source{
		"min_window_size": {Kind: SourceDefault},
		"log_level":       {Kind: SourceDefault},
		"backend":         {Kind: SourceDefault},
	}

	get := func(name string) (string, bool) {
		v, ok := lookup(name)
		v = strings.TrimSpace(v)
		return v, ok && v != ""
	}

	if v, ok := get(EnvMinWindowSize); ok {
		src := Source{Kind: SourceEnv, Name: EnvMinWindowSize}
		n, err := strconv.Atoi(v)
		if err != nil {
			return nil, &ValidationError{Path: "min_window_size", Source: src, Err: fmt.Errorf("not an integer: %q", v)}
		}
		cfg.MinWindowSize = n
		sources["min_window_size"] = src
	}
	if v, ok := get(EnvLogLevel); ok {
		cfg.LogLevel = normalizeLevel(v)
		sources["log_level"] = Source{Kind: SourceEnv, Name: EnvLogLevel}
	}
	if v, ok := get(EnvBackend); ok {
		cfg.Backend = strings.ToLower(v)
		sources["backend"] = Source{Kind: SourceEnv, Name: EnvBackend}
	}

	if err := cfg.Validate(); err != nil {
		return nil, attachSourceContext(err, sources)
	}

	return &LoadResult{Config: cfg, Sources: sources}, nil
}

func normalizeLevel(v string) string {
	v = strings.ToLower(v)
	if v == "warn" {
		return "warning"
	}
	return v
}

func attachSourceContext(err error, sources map[string]Source) error {
	verr, ok := err.(*ValidationError)
	if !ok || verr == nil {
		return err
	}
	if src, ok := sources[verr.Path]; ok {
		verr.Source = src
	}
	return verr
}
