package models

// Item represents a single selectable entry in a roster.
// Items are supplied once at startup and never mutated.
type Item struct {
	ID   int    `yaml:"id" json:"id"`
	Name string `yaml:"name" json:"name"`
}

// GetID returns the item ID
func (i Item) GetID() int {
	return i.ID
}
