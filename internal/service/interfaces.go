// Package service defines the interfaces for all application services.
package service

import (
	"context"
	"time"

	"github.com/speiseplan/mensabot/internal/model"
)

// MenuSource is the contract for the upstream menu provider.
type MenuSource interface {
	// AvailableDates lists the dates the provider has published data for.
	// The result is not guaranteed to be sorted.
	AvailableDates(ctx context.Context) ([]time.Time, error)

	// MenuFor fetches the published menus for one date, one entry per canteen.
	MenuFor(ctx context.Context, date time.Time) ([]model.MenuDay, error)
}

// RetryOptions configures retry behavior for operations.
// A MaxAttempts of zero or less retries until the context is cancelled.
type RetryOptions struct {
	MaxAttempts  int
	InitialDelay time.Duration
	MaxDelay     time.Duration
	Multiplier   float64
}
