// Package spec loads declarative command manifests: a YAML document
// describing the application, its global schema and its commands, validated
// against an embedded JSON schema before anything is built from it.
package spec

import (
	"bytes"
	_ "embed"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/santhosh-tekuri/jsonschema/v6"
	"gopkg.in/yaml.v3"
)

//go:embed manifest.schema.json
var schemaBytes []byte

// Manifest is the canonical declarative form of a console application.
type Manifest struct {
	Version       int       `yaml:"version"`
	App           App       `yaml:"app"`
	GlobalFlags   []Flag    `yaml:"global_flags"`
	GlobalOptions []Option  `yaml:"global_options"`
	Commands      []Command `yaml:"commands"`
}

// App configures the top-level application.
type App struct {
	Name    string `yaml:"name"`
	Summary string `yaml:"summary"`
}

// Flag describes a boolean or stackable flag.
type Flag struct {
	Name        string `yaml:"name"`
	Alias       string `yaml:"alias"`
	Description string `yaml:"description"`
	Stackable   bool   `yaml:"stackable"`
}

// Option describes a valued option.
type Option struct {
	Name        string  `yaml:"name"`
	Alias       string  `yaml:"alias"`
	Description string  `yaml:"description"`
	Required    bool    `yaml:"required"`
	Default     *string `yaml:"default"`
}

// Arg describes a positional argument.
type Arg struct {
	Name        string  `yaml:"name"`
	Description string  `yaml:"description"`
	Required    bool    `yaml:"required"`
	Variadic    bool    `yaml:"variadic"`
	Default     *string `yaml:"default"`
}

// Command describes one command and its schema.
type Command struct {
	Name        string   `yaml:"name"`
	ID          string   `yaml:"id"`
	Summary     string   `yaml:"summary"`
	Description string   `yaml:"description"`
	Flags       []Flag   `yaml:"flags"`
	Options     []Option `yaml:"options"`
	Args        []Arg    `yaml:"args"`
}

// EffectiveID returns the handler key for the command, defaulting to its
// name.
func (c Command) EffectiveID() string {
	if id := strings.TrimSpace(c.ID); id != "" {
		return id
	}
	return strings.TrimSpace(c.Name)
}

// Parse loads a manifest from YAML bytes and validates it against the
// embedded schema.
func Parse(data []byte) (*Manifest, error) {
	if len(bytes.TrimSpace(data)) == 0 {
		return nil, errors.New("manifest is empty")
	}
	manifest := &Manifest{}
	if err := yaml.Unmarshal(data, manifest); err != nil {
		return nil, fmt.Errorf("parse manifest yaml: %w", err)
	}
	if err := Validate(data); err != nil {
		return nil, err
	}
	return manifest, nil
}

// Validate checks the YAML document against the embedded JSON schema.
func Validate(data []byte) error {
	if len(bytes.TrimSpace(data)) == 0 {
		return errors.New("manifest is empty")
	}
	var schemaDoc any
	if err := json.Unmarshal(schemaBytes, &schemaDoc); err != nil {
		return fmt.Errorf("parse embedded schema: %w", err)
	}
	compiler := jsonschema.NewCompiler()
	if err := compiler.AddResource("manifest.schema.json", schemaDoc); err != nil {
		return fmt.Errorf("load schema: %w", err)
	}
	schema, err := compiler.Compile("manifest.schema.json")
	if err != nil {
		return fmt.Errorf("compile schema: %w", err)
	}
	payload, err := yamlToJSON(data)
	if err != nil {
		return fmt.Errorf("serialize manifest: %w", err)
	}
	var payloadDoc any
	if err := json.Unmarshal(payload, &payloadDoc); err != nil {
		return fmt.Errorf("parse manifest json: %w", err)
	}
	if err := schema.Validate(payloadDoc); err != nil {
		return fmt.Errorf("manifest schema validation: %w", err)
	}
	return nil
}

func yamlToJSON(data []byte) ([]byte, error) {
	var raw any
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("parse yaml: %w", err)
	}
	normalized, err := normalizeYAML(raw)
	if err != nil {
		return nil, err
	}
	payload, err := json.Marshal(normalized)
	if err != nil {
		return nil, fmt.Errorf("marshal json: %w", err)
	}
	return payload, nil
}

func normalizeYAML(value any) (any, error) {
	switch typed := value.(type) {
	case map[string]any:
		out := make(map[string]any, len(typed))
		for key, val := range typed {
			normalized, err := normalizeYAML(val)
			if err != nil {
				return nil, err
			}
			out[key] = normalized
		}
		return out, nil
	case map[any]any:
		out := make(map[string]any, len(typed))
		for key, val := range typed {
			strKey, ok := key.(string)
			if !ok {
				return nil, fmt.Errorf("invalid yaml map key: %T", key)
			}
			normalized, err := normalizeYAML(val)
			if err != nil {
				return nil, err
			}
			out[strKey] = normalized
		}
		return out, nil
	case []any:
		out := make([]any, len(typed))
		for i, val := range typed {
			normalized, err := normalizeYAML(val)
			if err != nil {
				return nil, err
			}
			out[i] = normalized
		}
		return out, nil
	default:
		return value, nil
	}
}
