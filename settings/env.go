package settings

import (
	"time"

	"github.com/caarlos0/env/v11"

	"github.com/wippyai/khiin-bridge/errors"
	"github.com/wippyai/khiin-bridge/protocol"
)

// Env is the process configuration read from the environment. Command-line
// flags override it.
type Env struct {
	DB          string        `env:"KHIIN_DB"`
	Socket      string        `env:"KHIIN_SOCKET"`
	Settings    string        `env:"KHIIN_SETTINGS"`
	LogLevel    string        `env:"KHIIN_LOG_LEVEL"    envDefault:"info"`
	IdleTimeout time.Duration `env:"KHIIN_IDLE_TIMEOUT" envDefault:"300s"`
	MaxFrame    int           `env:"KHIIN_MAX_FRAME"`
}

// ParseEnv loads Env from the process environment.
func ParseEnv() (Env, error) {
	var e Env
	if err := env.Parse(&e); err != nil {
		return Env{}, errors.ParseFailed("env", err)
	}
	return e.normalize(), nil
}

// ParseEnvFrom loads Env from the given variables instead of the process
// environment.
func ParseEnvFrom(vars map[string]string) (Env, error) {
	var e Env
	if err := env.ParseWithOptions(&e, env.Options{Environment: vars}); err != nil {
		return Env{}, errors.ParseFailed("env", err)
	}
	return e.normalize(), nil
}

func (e Env) normalize() Env {
	if e.MaxFrame <= 0 {
		e.MaxFrame = protocol.DefaultMaxFrame
	}
	return e
}
