package storage

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/go-playground/validator/v10"
	"github.com/sirupsen/logrus"
	"gopkg.in/yaml.v3"

	"resttime/internal/core/model"
)

const settingsFileName = "settings.yaml"

const (
	workIntervalRule = "min=1,max=3600"
	restIntervalRule = "min=1,max=600"
)

var (
	validatorOnce sync.Once
	validatorInst *validator.Validate
)

func validate() *validator.Validate {
	validatorOnce.Do(func() {
		validatorInst = validator.New(validator.WithRequiredStructEnabled())
	})
	return validatorInst
}

// yamlSettings mirrors the four persisted slots. Pointers distinguish an
// absent key from a zero value.
type yamlSettings struct {
	WorkInterval     *int  `yaml:"work_interval,omitempty"`
	RestInterval     *int  `yaml:"rest_interval,omitempty"`
	WarningVibration *bool `yaml:"warning_vibration,omitempty"`
	Overrunable      *bool `yaml:"overrunable,omitempty"`
}

// Store reads and writes the interval settings file.
type Store struct {
	path string
}

// NewStore returns a store backed by the given file path.
func NewStore(path string) *Store {
	return &Store{path: path}
}

// NewDefaultStore returns a store in the user configuration directory.
func NewDefaultStore(appName string) (*Store, error) {
	configPath, err := resolveConfigPath(appName)
	if err != nil {
		return nil, err
	}
	return NewStore(configPath), nil
}

// Path returns the settings file location.
func (store *Store) Path() string {
	return store.path
}

// Load reads the interval settings.
// If the file does not exist, default settings are returned.
func (store *Store) Load() (model.IntervalConfig, error) {
	settings := model.DefaultIntervalConfig()

	rawData, err := os.ReadFile(store.path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return settings, nil
		}
		return settings, fmt.Errorf("read settings file: %w", err)
	}

	var fileData yamlSettings
	if err := yaml.Unmarshal(rawData, &fileData); err != nil {
		return settings, fmt.Errorf("parse settings yaml: %w", err)
	}

	applyYamlSettings(&settings, fileData)
	return settings, nil
}

// Save writes the interval settings, creating parent directories.
func (store *Store) Save(settings model.IntervalConfig) error {
	if err := os.MkdirAll(filepath.Dir(store.path), 0o755); err != nil {
		return fmt.Errorf("create config directory: %w", err)
	}

	serialized, err := Encode(settings)
	if err != nil {
		return fmt.Errorf("marshal settings yaml: %w", err)
	}

	if err := os.WriteFile(store.path, serialized, 0o644); err != nil {
		return fmt.Errorf("write settings file: %w", err)
	}

	return nil
}

// Encode renders settings in the on-disk format.
func Encode(settings model.IntervalConfig) ([]byte, error) {
	return yaml.Marshal(yamlSettings{
		WorkInterval:     &settings.WorkSeconds,
		RestInterval:     &settings.RestSeconds,
		WarningVibration: &settings.WarningVibration,
		Overrunable:      &settings.Overrun,
	})
}

func resolveConfigPath(appName string) (string, error) {
	configDir, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("resolve user config dir: %w", err)
	}
	return filepath.Join(configDir, appName, settingsFileName), nil
}

func applyYamlSettings(settings *model.IntervalConfig, fileData yamlSettings) {
	if fileData.WorkInterval != nil {
		if err := validate().Var(*fileData.WorkInterval, workIntervalRule); err != nil {
			logrus.WithField("work_interval", *fileData.WorkInterval).Warn("ignoring out of range setting")
		} else {
			settings.WorkSeconds = *fileData.WorkInterval
		}
	}
	if fileData.RestInterval != nil {
		if err := validate().Var(*fileData.RestInterval, restIntervalRule); err != nil {
			logrus.WithField("rest_interval", *fileData.RestInterval).Warn("ignoring out of range setting")
		} else {
			settings.RestSeconds = *fileData.RestInterval
		}
	}
	if fileData.WarningVibration != nil {
		settings.WarningVibration = *fileData.WarningVibration
	}
	if fileData.Overrunable != nil {
		settings.Overrun = *fileData.Overrunable
	}
}
