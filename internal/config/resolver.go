package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/BurntSushi/toml"
)

const (
	// DefaultFile is the config file consulted after the environment.
	DefaultFile = "config/default.toml"

	// DefaultExpirationSeconds is used whenever jwt_expiration is absent or
	// not a valid integer. A malformed lifetime only affects token freshness,
	// so it is never fatal.
	DefaultExpirationSeconds = 3600
)

// Source is a single lookup strategy for one setting. It reports the value
// and whether the setting was present; an empty value counts as absent.
type Source func() (string, bool)

// Resolve tries each source in priority order and returns the first hit.
func Resolve(sources ...Source) (string, bool) {
	for _, src := range sources {
		if v, ok := src(); ok {
			return v, true
		}
	}
	return "", false
}

// EnvVar is a Source reading the named environment variable.
func EnvVar(name string) Source {
	return func() (string, bool) {
		v, ok := os.LookupEnv(name)
		return v, ok && v != ""
	}
}

// File exposes the top-level key/value table of one TOML file as sources.
// The file is read at most once per File; a missing or unreadable file is
// not an error, every lookup simply misses.
type File struct {
	path   string
	loaded bool
	values map[string]interface{}
}

func NewFile(path string) *File {
	return &File{path: path}
}

// Key is a Source reading the named top-level key from the file.
func (f *File) Key(name string) Source {
	return func() (string, bool) {
		if !f.loaded {
			f.loaded = true
			_, _ = toml.DecodeFile(f.path, &f.values)
		}
		v, ok := f.values[name]
		if !ok || v == nil {
			return "", false
		}
		// TOML integers are legal here (jwt_expiration = 7200); stringify so
		// file values behave exactly like environment values.
		s := fmt.Sprint(v)
		return s, s != ""
	}
}

// Settings is the resolved issuer configuration.
type Settings struct {
	Secret            string
	ExpirationSeconds int
}

// Load resolves the signing secret and token lifetime. For each setting the
// namespaced environment variable wins, then the legacy one, then the config
// file at path. It reports false when no secret could be found anywhere; no
// token may ever be issued with an empty or default secret.
func Load(path string) (Settings, bool) {
	file := NewFile(path)

	secret, ok := Resolve(
		EnvVar("APP__JWT_SECRET"),
		EnvVar("JWT_SECRET"),
		file.Key("jwt_secret"),
	)
	if !ok {
		return Settings{}, false
	}

	settings := Settings{Secret: secret, ExpirationSeconds: DefaultExpirationSeconds}
	if raw, ok := Resolve(
		EnvVar("APP__JWT_EXPIRATION"),
		EnvVar("JWT_EXPIRATION"),
		file.Key("jwt_expiration"),
	); ok {
		if n, err := strconv.Atoi(raw); err == nil {
			settings.ExpirationSeconds = n
		}
	}
	return settings, true
}
