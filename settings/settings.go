// Package settings holds user preferences and process configuration.
//
// User preferences live in a YAML file:
//
//	input_mode: continuous
//	telex_enabled: false
//	ime_enabled: true
//
// Process configuration comes from KHIIN_* environment variables, see Env.
package settings

import (
	"bytes"
	stderrors "errors"
	"io"
	"io/fs"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/wippyai/khiin-bridge/errors"
	"github.com/wippyai/khiin-bridge/protocol"
)

// Settings are the user preferences applied to an engine after load.
type Settings struct {
	InputMode    string `yaml:"input_mode"`
	TelexEnabled *bool  `yaml:"telex_enabled,omitempty"`
	IMEEnabled   *bool  `yaml:"ime_enabled,omitempty"`
}

// Default returns continuous mode with the IME enabled.
func Default() *Settings {
	return &Settings{
		InputMode:    protocol.ModeContinuous.String(),
		TelexEnabled: protocol.Bool(false),
		IMEEnabled:   protocol.Bool(true),
	}
}

// Load reads the settings file at path. A missing file yields Default.
func Load(path string) (*Settings, error) {
	f, err := os.Open(path)
	if err != nil {
		if stderrors.Is(err, fs.ErrNotExist) {
			return Default(), nil
		}
		return nil, errors.Wrap(errors.PhaseConfig, errors.KindNotFound, err, "open settings")
	}
	defer f.Close()
	return Read(f)
}

// Read parses settings from r on top of Default. Unknown keys are rejected.
func Read(r io.Reader) (*Settings, error) {
	s := Default()
	d := yaml.NewDecoder(r)
	d.KnownFields(true)
	if err := d.Decode(s); err != nil && err != io.EOF {
		return nil, errors.ParseFailed("settings", err)
	}
	if err := s.Validate(); err != nil {
		return nil, err
	}
	return s, nil
}

// Validate checks that the input mode is known.
func (s *Settings) Validate() error {
	if s.InputMode == "" {
		return nil
	}
	if _, ok := protocol.ParseInputMode(s.InputMode); !ok {
		return errors.New(errors.PhaseConfig, errors.KindInvalidInput).
			Path("input_mode").
			Value(s.InputMode).
			Detail("unknown input mode %q", s.InputMode).
			Build()
	}
	return nil
}

// Save writes the settings to path, creating parent directories.
func (s *Settings) Save(path string) error {
	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(s); err != nil {
		return errors.Wrap(errors.PhaseConfig, errors.KindInvalidData, err, "encode settings")
	}
	if err := enc.Close(); err != nil {
		return errors.Wrap(errors.PhaseConfig, errors.KindInvalidData, err, "encode settings")
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return errors.Wrap(errors.PhaseConfig, errors.KindInvalidData, err, "create settings directory")
	}
	if err := os.WriteFile(path, buf.Bytes(), 0o644); err != nil {
		return errors.Wrap(errors.PhaseConfig, errors.KindInvalidData, err, "write settings")
	}
	return nil
}

// ToAppConfig converts the settings to the config carried by
// CMD_SET_CONFIG.
func (s *Settings) ToAppConfig() *protocol.AppConfig {
	cfg := &protocol.AppConfig{}
	if m, ok := protocol.ParseInputMode(s.InputMode); ok {
		cfg.InputMode = m
	}
	if s.TelexEnabled != nil {
		cfg.TelexEnabled = protocol.Bool(*s.TelexEnabled)
	}
	if s.IMEEnabled != nil {
		cfg.IMEEnabled = protocol.Bool(*s.IMEEnabled)
	}
	return cfg
}

// Apply records the fields set in cfg, typically an engine's config echo.
func (s *Settings) Apply(cfg *protocol.AppConfig) {
	if cfg == nil {
		return
	}
	if cfg.InputMode != protocol.ModeUnspecified {
		s.InputMode = cfg.InputMode.String()
	}
	if cfg.TelexEnabled != nil {
		s.TelexEnabled = protocol.Bool(*cfg.TelexEnabled)
	}
	if cfg.IMEEnabled != nil {
		s.IMEEnabled = protocol.Bool(*cfg.IMEEnabled)
	}
}
