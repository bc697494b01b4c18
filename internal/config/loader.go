package config

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/hdlman/hdlman/internal/hardware"
)

// Load resolves the defaults from the config file and then the environment,
// which takes precedence. It never fails: an unreadable or malformed file is
// logged and ignored, and so is any value that is not a known identifier.
func Load(logger *slog.Logger) *Config {
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}

	var e envConfig
	if err := ParseEnv(&e); err != nil {
		logger.Warn("ignoring environment overrides", "error", err)
		e = envConfig{}
	}

	path := e.ConfigPath
	if path == "" {
		p, err := DefaultPath()
		if err != nil {
			logger.Debug("no default config path", "error", err)
		}
		path = p
	}

	cfg := &Config{}
	if path != "" {
		loaded, err := LoadFile(path, logger)
		if err != nil {
			logger.Warn("ignoring config file", "path", path, "error", err)
		} else {
			cfg = loaded
		}
	}

	applyTarget(cfg, e.DefaultTarget, envDefaultTarget, logger)
	applyDevBoard(cfg, e.DefaultDevBoard, envDefaultDevBoard, logger)
	return cfg
}

// LoadFile reads the config file at path. A missing file yields an empty
// Config and no error. Invalid YAML yields ErrMalformedConfig. Fields holding
// unknown identifiers are logged and left unset.
func LoadFile(path string, logger *slog.Logger) (*Config, error) {
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return &Config{}, nil
		}
		return nil, fmt.Errorf("read %s: %w", path, err)
	}

	var fc fileConfig
	if err := yaml.Unmarshal(data, &fc); err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrMalformedConfig, path, err)
	}

	cfg := &Config{}
	applyTarget(cfg, fc.DefaultTarget, path, logger)
	applyDevBoard(cfg, fc.DefaultDevBoard, path, logger)
	return cfg, nil
}

// applyTarget sets the default target from raw unless raw is empty or unknown.
func applyTarget(cfg *Config, raw, source string, logger *slog.Logger) {
	if raw == "" {
		return
	}
	t, err := hardware.ParseTarget(raw)
	if err != nil {
		logger.Warn("ignoring default target", "source", source, "error", err)
		return
	}
	cfg.DefaultTarget = t
	cfg.TargetSource = source
}

// applyDevBoard sets the default dev-board from raw unless raw is empty or unknown.
func applyDevBoard(cfg *Config, raw, source string, logger *slog.Logger) {
	if raw == "" {
		return
	}
	b, err := hardware.ParseDevBoard(raw)
	if err != nil {
		logger.Warn("ignoring default dev-board", "source", source, "error", err)
		return
	}
	cfg.DefaultDevBoard = b
	cfg.DevBoardSource = source
}
