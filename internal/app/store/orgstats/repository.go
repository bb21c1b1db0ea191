// internal/app/store/orgstats/repository.go
package orgstatstore

import (
	"context"
	"errors"

	"github.com/dalemusser/mediaindex/internal/domain/models"
)

// ErrNotFound is returned by Latest when no record has been stored yet.
var ErrNotFound = errors.New("organization stat not found")

// Repository is the persistence contract for organization stats.
//
// Ordering is always newest first: created_at descending, ties broken by
// ID descending. Implementations persist records as given; callers compute
// TechnicalIndex before calling Save.
type Repository interface {
	// Save inserts the record when its ID is zero and overwrites the record
	// with the same ID otherwise. The stored record is returned.
	Save(ctx context.Context, stat models.OrganizationStat) (models.OrganizationStat, error)

	// Latest returns the most recently created record, or ErrNotFound.
	Latest(ctx context.Context) (models.OrganizationStat, error)

	// Recent returns at most n records, newest first.
	Recent(ctx context.Context, n int) ([]models.OrganizationStat, error)

	// Count returns the number of stored records.
	Count(ctx context.Context) (int64, error)

	// Ping reports whether the backing store is reachable.
	Ping(ctx context.Context) error
}

var (
	_ Repository = (*Store)(nil)
	_ Repository = (*SQLStore)(nil)
	_ Repository = (*MemStore)(nil)
)
