// Package scene turns declarative scene descriptions into live scene objects.
package scene

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Description is the declarative input a host supplies. JSON documents are
// accepted unchanged since they are valid YAML.
type Description struct {
	Title       string      `yaml:"title,omitempty"`
	Description string      `yaml:"description,omitempty"`
	Elements    []ShapeSpec `yaml:"elements"`
}

// ShapeSpec describes one object. Vector fields are scene-unit triples;
// missing entries fall back to the defaults applied by Build.
type ShapeSpec struct {
	Shape     string         `yaml:"shape"`
	Position  []float64      `yaml:"position,omitempty"`
	Rotation  []float64      `yaml:"rotation,omitempty"`
	Scale     []float64      `yaml:"scale,omitempty"`
	Color     string         `yaml:"color,omitempty"`
	Opacity   *float64       `yaml:"opacity,omitempty"`
	Label     string         `yaml:"label,omitempty"`
	Teeth     int            `yaml:"teeth,omitempty"`
	Coils     int            `yaml:"coils,omitempty"`
	Animation *AnimationSpec `yaml:"animation,omitempty"`
}

// AnimationSpec is the raw animation block of a ShapeSpec
type AnimationSpec struct {
	Type      string  `yaml:"type"`
	Axis      string  `yaml:"axis,omitempty"`
	Speed     float64 `yaml:"speed,omitempty"`
	Amplitude float64 `yaml:"amplitude,omitempty"`
}

// Parse decodes a scene description. The document may be an object with an
// "elements" list or a bare list of shape specs.
func Parse(data []byte) (*Description, error) {
	var root yaml.Node
	if err := yaml.Unmarshal(data, &root); err != nil {
		return nil, fmt.Errorf("failed to parse scene: %w", err)
	}

	desc := &Description{}
	if len(root.Content) == 0 {
		return desc, nil
	}

	doc := root.Content[0]
	switch doc.Kind {
	case yaml.SequenceNode:
		if err := doc.Decode(&desc.Elements); err != nil {
			return nil, fmt.Errorf("failed to decode scene elements: %w", err)
		}
	case yaml.MappingNode:
		if err := doc.Decode(desc); err != nil {
			return nil, fmt.Errorf("failed to decode scene: %w", err)
		}
	default:
		return nil, fmt.Errorf("scene must be a mapping or a list, got %s", nodeKind(doc.Kind))
	}
	return desc, nil
}

// LoadFile reads and parses a scene description file
func LoadFile(path string) (*Description, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read scene file: %w", err)
	}
	desc, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return desc, nil
}

// Marshal encodes the description as YAML
func (d *Description) Marshal() ([]byte, error) {
	return yaml.Marshal(d)
}

func nodeKind(k yaml.Kind) string {
	switch k {
	case yaml.ScalarNode:
		return "scalar"
	case yaml.AliasNode:
		return "alias"
	case yaml.DocumentNode:
		return "document"
	default:
		return "unknown node"
	}
}
