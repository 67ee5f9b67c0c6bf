package app

import (
	"math/rand/v2"

	"github.com/thenoetrevino/rosterpick/internal/models"
	"github.com/thenoetrevino/rosterpick/internal/roster"
)

// Option is a functional option for configuring App initialization
type Option func(*appConfig)

// appConfig holds the configuration for App initialization
type appConfig struct {
	rng    *rand.Rand
	opener roster.DBOpener
	items  []models.Item
}

// WithRand sets the random source used for random picks
func WithRand(rng *rand.Rand) Option {
	return func(cfg *appConfig) {
		cfg.rng = rng
	}
}

// WithDBOpener overrides how the sqlite roster database is opened
func WithDBOpener(opener roster.DBOpener) Option {
	return func(cfg *appConfig) {
		cfg.opener = opener
	}
}

// WithRoster supplies the roster directly instead of loading it from the configured source
func WithRoster(items []models.Item) Option {
	return func(cfg *appConfig) {
		cfg.items = items
	}
}
