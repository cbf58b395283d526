package out

import (
	"context"

	"examtrack/internal/modules/settings/domain"
)

type Store interface {
	// Load returns the defaults when nothing has been saved yet. Fields
	// missing from a saved document keep their default values.
	Load(ctx context.Context) (domain.Settings, error)
	Save(ctx context.Context, settings domain.Settings) error
}
