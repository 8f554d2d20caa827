// Package config manages persistent user settings for the aiassisted CLI,
// stored as YAML under the user's home directory.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"github.com/spf13/afero"
	"github.com/spf13/viper"

	"github.com/rstlix0x0/aiassisted/pkg/constants"
	"github.com/rstlix0x0/aiassisted/pkg/errors"
	"github.com/rstlix0x0/aiassisted/pkg/skills"
)

// Settings holds every user-tunable option.
type Settings struct {
	// DefaultTool is the tool used when --tool is not given.
	DefaultTool string `mapstructure:"default_tool" yaml:"default_tool"`

	// Verbosity is the log verbosity level, 0 to 2.
	Verbosity int `mapstructure:"verbosity" yaml:"verbosity"`

	// AutoUpdate enables downloading updates during check.
	AutoUpdate bool `mapstructure:"auto_update" yaml:"auto_update"`

	// PreferProject prefers project-local content over global content.
	PreferProject bool `mapstructure:"prefer_project" yaml:"prefer_project"`
}

// Default returns the settings used when no config file exists.
func Default() Settings {
	return Settings{
		DefaultTool:   skills.ToolAuto.String(),
		Verbosity:     1,
		AutoUpdate:    true,
		PreferProject: true,
	}
}

// Keys lists every valid settings key, in display order.
func Keys() []string {
	return []string{"default_tool", "verbosity", "auto_update", "prefer_project"}
}

// DefaultPath returns the config file location under the user's home
// directory.
func DefaultPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", errors.WrapIO("resolve", "home directory", err)
	}
	return filepath.Join(home, constants.SourceDir, "config.yaml"), nil
}

// Store reads and writes settings at a fixed path.
type Store struct {
	fs   afero.Fs
	path string
}

// NewStore creates a store over the filesystem at path.
func NewStore(fs afero.Fs, path string) *Store {
	return &Store{fs: fs, path: path}
}

// Path returns the config file location.
func (s *Store) Path() string {
	return s.path
}

// Load reads the settings file, applying defaults for anything unset. A
// missing file yields pure defaults.
func (s *Store) Load() (Settings, error) {
	v := s.viper()

	if exists, _ := afero.Exists(s.fs, s.path); exists {
		if err := v.ReadInConfig(); err != nil {
			return Settings{}, errors.WrapParse("yaml", s.path, err)
		}
	}

	var settings Settings
	if err := v.Unmarshal(&settings); err != nil {
		return Settings{}, errors.WrapParse("yaml", s.path, err)
	}
	if err := validate(&settings); err != nil {
		return Settings{}, err
	}
	return settings, nil
}

// Get returns one settings value rendered as a string.
func (s *Store) Get(key string) (string, error) {
	settings, err := s.Load()
	if err != nil {
		return "", err
	}

	switch key {
	case "default_tool":
		return settings.DefaultTool, nil
	case "verbosity":
		return strconv.Itoa(settings.Verbosity), nil
	case "auto_update":
		return strconv.FormatBool(settings.AutoUpdate), nil
	case "prefer_project":
		return strconv.FormatBool(settings.PreferProject), nil
	default:
		return "", errors.NewValidationError("", "key", "unknown configuration key: "+key)
	}
}

// Set parses and stores one settings value, then persists the full file.
func (s *Store) Set(key, value string) error {
	settings, err := s.Load()
	if err != nil {
		return err
	}

	switch key {
	case "default_tool":
		tool, err := skills.ParseTool(value)
		if err != nil {
			return err
		}
		settings.DefaultTool = tool.String()
	case "verbosity":
		n, err := strconv.Atoi(value)
		if err != nil {
			return errors.NewValidationError("", "verbosity", "invalid verbosity value: "+value)
		}
		settings.Verbosity = n
	case "auto_update":
		b, err := strconv.ParseBool(value)
		if err != nil {
			return errors.NewValidationError("", "auto_update", "invalid boolean value: "+value)
		}
		settings.AutoUpdate = b
	case "prefer_project":
		b, err := strconv.ParseBool(value)
		if err != nil {
			return errors.NewValidationError("", "prefer_project", "invalid boolean value: "+value)
		}
		settings.PreferProject = b
	default:
		return errors.NewValidationError("", "key", "unknown configuration key: "+key)
	}

	return s.Save(settings)
}

// Save validates and writes the full settings file.
func (s *Store) Save(settings Settings) error {
	if err := validate(&settings); err != nil {
		return err
	}

	if dir := filepath.Dir(s.path); dir != "." {
		if err := s.fs.MkdirAll(dir, constants.DirPermissions); err != nil {
			return errors.WrapIO("mkdir", dir, err)
		}
	}

	v := s.viper()
	v.Set("default_tool", settings.DefaultTool)
	v.Set("verbosity", settings.Verbosity)
	v.Set("auto_update", settings.AutoUpdate)
	v.Set("prefer_project", settings.PreferProject)

	if err := v.WriteConfigAs(s.path); err != nil {
		return errors.WrapIO("write", s.path, err)
	}
	return nil
}

// Reset restores defaults and persists them.
func (s *Store) Reset() error {
	return s.Save(Default())
}

func (s *Store) viper() *viper.Viper {
	v := viper.New()
	v.SetFs(s.fs)
	v.SetConfigFile(s.path)
	v.SetConfigType("yaml")

	defaults := Default()
	v.SetDefault("default_tool", defaults.DefaultTool)
	v.SetDefault("verbosity", defaults.Verbosity)
	v.SetDefault("auto_update", defaults.AutoUpdate)
	v.SetDefault("prefer_project", defaults.PreferProject)

	return v
}

func validate(settings *Settings) error {
	if settings.Verbosity < 0 || settings.Verbosity > 2 {
		return errors.NewValidationError("", "verbosity",
			fmt.Sprintf("invalid verbosity level: %d. Must be 0-2", settings.Verbosity))
	}
	if _, err := skills.ParseTool(settings.DefaultTool); err != nil {
		return err
	}
	return nil
}
