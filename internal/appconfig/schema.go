// internal/appconfig/schema.go
package appconfig

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/xeipuuv/gojsonschema"
)

// configSchema constrains the shape of the JSON configuration file so typos
// and wrong types are reported up front instead of surfacing mid-run.
var configSchema = map[string]any{
	"type":                 "object",
	"additionalProperties": false,
	"properties": map[string]any{
		"size":            map[string]any{"type": "string"},
		"iterations":      map[string]any{"type": "integer", "minimum": 1},
		"warmup":          map[string]any{"type": "integer", "minimum": 0},
		"encoding":        map[string]any{"type": "string"},
		"seed":            map[string]any{"type": "integer"},
		"candidateBinary": map[string]any{"type": "string"},
		"jsonOutput":      map[string]any{"type": "boolean"},
		"output":          map[string]any{"type": "string"},
		"debug":           map[string]any{"type": "boolean"},
		"logFile":         map[string]any{"type": "string"},
	},
}

// loadFromPath reads, schema-validates, and decodes a configuration file.
// Settings the file omits fall back to the built-in defaults.
func loadFromPath(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, err
	}

	if err := validateConfigDocument(data); err != nil {
		return Config{}, err
	}

	config := defaultConfig()
	if err := json.Unmarshal(data, &config); err != nil {
		return Config{}, err
	}
	return config, nil
}

// validateConfigDocument checks raw config JSON against configSchema.
func validateConfigDocument(data []byte) error {
	schemaLoader := gojsonschema.NewGoLoader(configSchema)
	documentLoader := gojsonschema.NewBytesLoader(data)

	result, err := gojsonschema.Validate(schemaLoader, documentLoader)
	if err != nil {
		return fmt.Errorf("config schema validation: %w", err)
	}
	if !result.Valid() {
		var problems []string
		for _, desc := range result.Errors() {
			problems = append(problems, desc.String())
		}
		return fmt.Errorf("invalid configuration: %s", strings.Join(problems, "; "))
	}
	return nil
}
