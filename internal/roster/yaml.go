package roster

import (
	"context"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/thenoetrevino/rosterpick/internal/models"
)

// document is the on-disk roster format
type document struct {
	Items []models.Item `yaml:"items"`
}

// ParseYAML decodes a roster document with a top-level items list.
func ParseYAML(data []byte) ([]models.Item, error) {
	var doc document
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("failed to parse roster: %w", err)
	}
	if doc.Items == nil {
		doc.Items = []models.Item{}
	}
	return doc.Items, nil
}

// MarshalYAML encodes items as a roster document.
func MarshalYAML(items []models.Item) ([]byte, error) {
	return yaml.Marshal(document{Items: items})
}

// YAMLSource reads a roster from a YAML file.
type YAMLSource struct {
	path string
}

// NewYAMLSource creates a source reading the file at path.
func NewYAMLSource(path string) *YAMLSource {
	return &YAMLSource{path: path}
}

// Name returns the source description
func (s *YAMLSource) Name() string {
	return "yaml file " + s.path
}

// Load reads and parses the file.
func (s *YAMLSource) Load(_ context.Context) ([]models.Item, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		return nil, err
	}
	return ParseYAML(data)
}
