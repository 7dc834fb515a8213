package builder

import (
	"errors"
	"fmt"

	"gopkg.in/yaml.v3"
)

// ErrNotMapping is returned when a YAML document is not a mapping of field names.
var ErrNotMapping = errors.New("yaml document is not a mapping")

// ParseFields decodes a YAML mapping into fields in document order. Nested
// mappings become map[string]any and sequences []any. An empty document has no
// fields.
func ParseFields(data []byte) (Fields, error) {
	var doc yaml.Node
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("failed to parse fields: %w", err)
	}

	root := &doc
	if root.Kind == yaml.DocumentNode && len(root.Content) > 0 {
		root = root.Content[0]
	}

	switch root.Kind {
	case 0, yaml.DocumentNode:
		return nil, nil
	case yaml.MappingNode:
	default:
		return nil, fmt.Errorf("%w at line %d", ErrNotMapping, root.Line)
	}

	fields := make(Fields, 0, len(root.Content)/2)
	for i := 0; i+1 < len(root.Content); i += 2 {
		var f Field

		if err := root.Content[i].Decode(&f.Name); err != nil {
			return nil, fmt.Errorf("failed to decode field name at line %d: %w", root.Content[i].Line, err)
		}

		if err := root.Content[i+1].Decode(&f.Value); err != nil {
			return nil, fmt.Errorf("failed to decode field %q: %w", f.Name, err)
		}

		fields = append(fields, f)
	}

	return fields, nil
}

// FromYAML returns a builder for T holding the fields of a YAML mapping.
func FromYAML[T any](data []byte) (*Builder[T], error) {
	fields, err := ParseFields(data)
	if err != nil {
		return nil, err
	}

	return New[T](fields...), nil
}
