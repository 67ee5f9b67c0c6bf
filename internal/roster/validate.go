package roster

import (
	"fmt"
	"strings"

	"github.com/thenoetrevino/rosterpick/internal/models"
)

// Validate checks that item ids are unique and names are not blank.
func Validate(items []models.Item) error {
	seen := make(map[int]int, len(items))
	for i, item := range items {
		if strings.TrimSpace(item.Name) == "" {
			return fmt.Errorf("item %d at position %d: %w", item.ID, i, models.ErrEmptyItemName)
		}
		if prev, ok := seen[item.ID]; ok {
			return fmt.Errorf("id %d at positions %d and %d: %w", item.ID, prev, i, models.ErrDuplicateItemID)
		}
		seen[item.ID] = i
	}
	return nil
}
