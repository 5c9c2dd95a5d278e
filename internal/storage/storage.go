// Package storage persists the history of version comparisons.
package storage

import (
	"context"
	"time"
)

// ComparisonRecord is one recorded version comparison.
type ComparisonRecord struct {
	ID          string
	Subject     string // what was compared, e.g. an image reference or "semantic"
	Grammar     string // "semantic" or "jenkins"
	FromVersion string
	ToVersion   string
	Kinds       []string // detected update kinds, severity order preserved
	Greatest    string   // highest-severity kind, empty when nothing changed
	CreatedAt   time.Time
}

// Storage defines the persistence interface for comparison history.
type Storage interface {
	// RecordComparison persists one comparison result.
	RecordComparison(ctx context.Context, rec ComparisonRecord) error

	// ListComparisons returns the most recent comparisons, newest first,
	// up to limit entries. A non-positive limit applies a default.
	ListComparisons(ctx context.Context, limit int) ([]ComparisonRecord, error)

	// Close releases the underlying database resources.
	Close() error
}
