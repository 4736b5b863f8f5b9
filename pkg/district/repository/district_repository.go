package repository

import (
	"context"

	"agrosense/pkg/district"
)

type DatasetRepository interface {
	// Load returns the cached table, reading the backing file on first success.
	// A missing file is apperr.KindUnavailable and is retried on the next call.
	Load(ctx context.Context) (*district.Table, error)
}
