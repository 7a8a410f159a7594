package encoding

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

// ParseYAML unmarshals YAML data into the provided type.
func ParseYAML[T any](data []byte) (*T, error) {
	var result T
	if err := yaml.Unmarshal(data, &result); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}

	return &result, nil
}

// ToYAML marshals a value to YAML bytes.
func ToYAML[T any](value T) ([]byte, error) {
	return yaml.Marshal(value)
}
