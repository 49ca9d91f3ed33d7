package catalog

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"
)

// AppendMergeLog writes one audit record for an executed merge. Entries are
// append-only; there is no update or delete path.
func (s *Store) AppendMergeLog(ctx context.Context, entry *MergeLogEntry) error {
	if entry == nil {
		return errors.New("merge log entry is nil")
	}
	if strings.TrimSpace(entry.MergeID) == "" {
		return errors.New("merge log entry requires a merge id")
	}

	sourceJSON, err := json.Marshal(entry.SourceNames)
	if err != nil {
		return fmt.Errorf("marshal source names: %w", err)
	}
	affectedJSON, err := json.Marshal(entry.AffectedMovies)
	if err != nil {
		return fmt.Errorf("marshal affected movies: %w", err)
	}

	timestamp := entry.Timestamp
	if timestamp.IsZero() {
		timestamp = time.Now().UTC()
	}

	_, err = s.db.ExecContext(
		ctx,
		`INSERT INTO merge_log (
            merge_id, created_at, source_names, target_name,
            affected_movies, preserved_analytics
        ) VALUES (?, ?, ?, ?, ?, ?)`,
		entry.MergeID,
		timestamp.UTC().Format(time.RFC3339Nano),
		string(sourceJSON),
		entry.TargetName,
		string(affectedJSON),
		boolToInt(entry.PreservedAnalytics),
	)
	if err != nil {
		return fmt.Errorf("append merge log: %w", err)
	}
	return nil
}

// MergeLog returns audit entries newest first, bounded by limit when
// positive.
func (s *Store) MergeLog(ctx context.Context, limit int) ([]*MergeLogEntry, error) {
	query := `SELECT merge_id, created_at, source_names, target_name, affected_movies, preserved_analytics
        FROM merge_log ORDER BY created_at DESC, merge_id`
	var args []any
	if limit > 0 {
		query += ` LIMIT ?`
		args = append(args, limit)
	}

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query merge log: %w", err)
	}
	defer rows.Close()

	var entries []*MergeLogEntry
	for rows.Next() {
		var (
			mergeID      string
			createdRaw   string
			sourceJSON   string
			targetName   string
			affectedJSON string
			preserved    int
		)
		if err := rows.Scan(&mergeID, &createdRaw, &sourceJSON, &targetName, &affectedJSON, &preserved); err != nil {
			return nil, fmt.Errorf("scan merge log row: %w", err)
		}

		entry := &MergeLogEntry{
			MergeID:            mergeID,
			TargetName:         targetName,
			PreservedAnalytics: preserved != 0,
		}
		if timestamp, err := parseTimeString(createdRaw); err == nil {
			entry.Timestamp = timestamp
		}
		if err := json.Unmarshal([]byte(sourceJSON), &entry.SourceNames); err != nil {
			return nil, fmt.Errorf("unmarshal source names: %w", err)
		}
		if err := json.Unmarshal([]byte(affectedJSON), &entry.AffectedMovies); err != nil {
			return nil, fmt.Errorf("unmarshal affected movies: %w", err)
		}
		entries = append(entries, entry)
	}
	return entries, rows.Err()
}

func boolToInt(value bool) int {
	if value {
		return 1
	}
	return 0
}
