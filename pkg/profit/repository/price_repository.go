package repository

import (
	"context"

	"agrosense/entities"
)

type PriceRepository interface {
	// Find returns the first reference row for a lowercase crop, nil when the crop
	// or the whole reference file is absent.
	Find(ctx context.Context, crop string) (*entities.PriceCostEntry, error)
}
