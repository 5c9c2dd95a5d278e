package storage

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

// defaultListLimit bounds ListComparisons when the caller passes no limit.
const defaultListLimit = 20

// RecordComparison implements Storage.RecordComparison. A missing ID or
// timestamp is filled in before the insert.
func (s *SQLiteStorage) RecordComparison(ctx context.Context, rec ComparisonRecord) error {
	if rec.ID == "" {
		rec.ID = uuid.NewString()
	}
	if rec.CreatedAt.IsZero() {
		rec.CreatedAt = time.Now().UTC()
	}

	return s.retryWithBackoff(ctx, func() error {
		query := `
			INSERT INTO comparison_history
			(id, subject, grammar, from_version, to_version, kinds, greatest, created_at)
			VALUES (?, ?, ?, ?, ?, ?, ?, ?)
		`

		_, err := s.db.ExecContext(ctx, query,
			rec.ID, rec.Subject, rec.Grammar, rec.FromVersion, rec.ToVersion,
			strings.Join(rec.Kinds, ","), rec.Greatest, rec.CreatedAt)
		if err != nil {
			return fmt.Errorf("failed to record comparison: %w", err)
		}

		s.log.Debug("recorded comparison %s: %s -> %s [%s]",
			rec.ID, rec.FromVersion, rec.ToVersion, rec.Greatest)
		return nil
	})
}

// ListComparisons implements Storage.ListComparisons.
func (s *SQLiteStorage) ListComparisons(ctx context.Context, limit int) ([]ComparisonRecord, error) {
	if limit <= 0 {
		limit = defaultListLimit
	}

	var records []ComparisonRecord
	err := s.retryWithBackoff(ctx, func() error {
		query := `
			SELECT id, subject, grammar, from_version, to_version, kinds, greatest, created_at
			FROM comparison_history
			ORDER BY created_at DESC, id
			LIMIT ?
		`

		rows, err := s.db.QueryContext(ctx, query, limit)
		if err != nil {
			return fmt.Errorf("failed to query comparison history: %w", err)
		}
		defer rows.Close()

		records = records[:0]
		for rows.Next() {
			var rec ComparisonRecord
			var kinds string
			if err := rows.Scan(&rec.ID, &rec.Subject, &rec.Grammar,
				&rec.FromVersion, &rec.ToVersion, &kinds, &rec.Greatest, &rec.CreatedAt); err != nil {
				return fmt.Errorf("failed to scan comparison row: %w", err)
			}
			if kinds != "" {
				rec.Kinds = strings.Split(kinds, ",")
			}
			records = append(records, rec)
		}

		return rows.Err()
	})
	if err != nil {
		return nil, err
	}

	return records, nil
}
