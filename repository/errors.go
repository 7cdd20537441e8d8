package repository

import (
	"fmt"

	"github.com/GeraldTgit/magingwais/models"
)

// storeErr tags a failed persistence call with models.ErrStoreUnavailable
// so callers can distinguish store outages from domain errors. The
// original driver error is carried as text; repositories log it in full
// before wrapping.
func storeErr(op string, err error) error {
	return fmt.Errorf("failed to %s: %w: %v", op, models.ErrStoreUnavailable, err)
}
