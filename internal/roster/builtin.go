package roster

import (
	"context"
	_ "embed"

	"github.com/thenoetrevino/rosterpick/internal/models"
)

//go:embed roster.yaml
var builtinRoster []byte

type builtinSource struct{}

// Builtin returns the source for the bundled Street Fighter 6 roster.
func Builtin() Source {
	return builtinSource{}
}

func (builtinSource) Name() string {
	return "builtin"
}

func (builtinSource) Load(_ context.Context) ([]models.Item, error) {
	return ParseYAML(builtinRoster)
}
