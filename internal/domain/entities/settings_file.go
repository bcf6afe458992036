package entities

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	toml "github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"
)

const (
	configNamespace     = "codependence"
	packageManifestName = "package.json"
)

// configFileNames is the search order used when no config path is given.
//
//nolint:gochecknoglobals // fixed search order
var configFileNames = []string{
	packageManifestName,
	".codependencerc",
	".codependencerc.json",
	".codependencerc.yaml",
	".codependencerc.yml",
	".codependencerc.toml",
	"codependence.config.json",
}

var errConfigNotFound = errors.New("config file not found in default locations")

// FindConfigFile searches each directory in order for a known config file
// name. A package.json only counts when it carries a "codependence" property.
func FindConfigFile(dirs ...string) (string, error) {
	for _, dir := range dirs {
		for _, name := range configFileNames {
			candidate := filepath.Join(dir, name)
			if _, err := os.Stat(candidate); err != nil {
				continue
			}
			if name == packageManifestName && !hasNamespace(candidate) {
				continue
			}
			return candidate, nil
		}
	}
	return "", errConfigNotFound
}

// IsConfigNotFound reports whether err came from an unsuccessful search.
func IsConfigNotFound(err error) bool {
	return errors.Is(err, errConfigNotFound)
}

// LoadSettingsLayer reads a config file and converts it into a layer. The
// content may be namespaced under a "codependence" key.
func LoadSettingsLayer(path string) (SettingsLayer, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return SettingsLayer{}, fmt.Errorf("failed to read config file %q: %w", path, err)
	}

	raw, err := decodeConfig(path, data)
	if err != nil {
		return SettingsLayer{}, fmt.Errorf("failed to parse config file %q: %w", path, err)
	}

	if namespaced, ok := raw[configNamespace].(map[string]any); ok {
		raw = namespaced
	} else if filepath.Base(path) == packageManifestName {
		return SettingsLayer{}, nil
	}

	layer, err := settingsLayerFromMap(raw)
	if err != nil {
		return SettingsLayer{}, fmt.Errorf("invalid config file %q: %w", path, err)
	}
	return layer, nil
}

func decodeConfig(path string, data []byte) (map[string]any, error) {
	raw := map[string]any{}
	if len(strings.TrimSpace(string(data))) == 0 {
		return raw, nil
	}

	var err error
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		err = json.Unmarshal(data, &raw)
	case ".toml":
		err = toml.Unmarshal(data, &raw)
	default:
		// YAML also accepts the JSON flavour of extensionless rc files.
		err = yaml.Unmarshal(data, &raw)
	}
	if err != nil {
		return nil, err
	}
	return raw, nil
}

func hasNamespace(path string) bool {
	data, err := os.ReadFile(path)
	if err != nil {
		return false
	}
	var raw map[string]json.RawMessage
	if unmarshalErr := json.Unmarshal(data, &raw); unmarshalErr != nil {
		return false
	}
	_, ok := raw[configNamespace]
	return ok
}

//nolint:gocognit,cyclop // flat key dispatch
func settingsLayerFromMap(raw map[string]any) (SettingsLayer, error) {
	var layer SettingsLayer

	for key, value := range raw {
		var err error
		switch key {
		case "codependencies":
			var values []any
			if values, err = anyList(value); err == nil {
				layer.Codependencies = TrackedPackagesFromValues(values)
			}
		case "files":
			layer.Files, err = stringList(value)
		case "ignore":
			layer.Ignore, err = stringList(value)
		case "rootDir":
			layer.RootDir, err = stringPointer(value)
		case "source", "versionSource":
			layer.VersionSource, err = stringPointer(value)
		case "registry":
			layer.RegistryURL, err = stringPointer(value)
		case "update":
			layer.Update, err = boolPointer(value)
		case "debug":
			layer.Debug, err = boolPointer(value)
		case "silent":
			layer.Silent, err = boolPointer(value)
		case "isTesting", "dryRun":
			layer.IsTesting, err = boolPointer(value)
		case "timeout":
			layer.Timeout, err = durationPointer(value)
		case "concurrency":
			var number int
			if number, err = intValue(value); err == nil {
				layer.Concurrency = &number
			}
		}
		if err != nil {
			return SettingsLayer{}, fmt.Errorf("key %q: %w", key, err)
		}
	}
	return layer, nil
}

func anyList(value any) ([]any, error) {
	switch typed := value.(type) {
	case []any:
		return typed, nil
	case string, map[string]any:
		return []any{typed}, nil
	default:
		return nil, fmt.Errorf("expected a list, got %T", value)
	}
}

func stringList(value any) ([]string, error) {
	values, err := anyList(value)
	if err != nil {
		return nil, err
	}
	result := make([]string, 0, len(values))
	for _, item := range values {
		text, ok := item.(string)
		if !ok {
			return nil, fmt.Errorf("expected a string, got %T", item)
		}
		result = append(result, text)
	}
	return result, nil
}

func stringPointer(value any) (*string, error) {
	text, ok := value.(string)
	if !ok {
		return nil, fmt.Errorf("expected a string, got %T", value)
	}
	return &text, nil
}

func boolPointer(value any) (*bool, error) {
	flag, ok := value.(bool)
	if !ok {
		return nil, fmt.Errorf("expected a boolean, got %T", value)
	}
	return &flag, nil
}

func intValue(value any) (int, error) {
	switch typed := value.(type) {
	case int:
		return typed, nil
	case int64:
		return int(typed), nil
	case float64:
		return int(typed), nil
	default:
		return 0, fmt.Errorf("expected a number, got %T", value)
	}
}

// durationPointer accepts Go duration strings ("45s") or plain seconds.
func durationPointer(value any) (*time.Duration, error) {
	if text, ok := value.(string); ok {
		duration, err := time.ParseDuration(text)
		if err != nil {
			return nil, err
		}
		return &duration, nil
	}

	seconds, err := intValue(value)
	if err != nil {
		return nil, err
	}
	duration := time.Duration(seconds) * time.Second
	return &duration, nil
}
