package journal

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/sigerhq/fieldreport/internal/dbx"
)

type SQLiteRepository struct {
	db dbx.DBTX
}

func NewSQLiteRepository(db dbx.DBTX) *SQLiteRepository {
	return &SQLiteRepository{db: db}
}

func (r *SQLiteRepository) Append(ctx context.Context, subActivityID, reportDate, mode string) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO journal (id, sub_activity_id, report_date, mode, submitted_at)
		VALUES (?, ?, ?, ?, ?)
	`, uuid.NewString(), subActivityID, reportDate, mode, time.Now().UTC().Format(time.RFC3339))
	if err != nil {
		return fmt.Errorf("failed to append journal entry: %w", err)
	}
	return nil
}

func (r *SQLiteRepository) Recent(ctx context.Context, limit int) ([]Entry, error) {
	if limit <= 0 {
		limit = 20
	}

	rows, err := r.db.QueryContext(ctx, `
		SELECT id, sub_activity_id, report_date, mode, submitted_at
		FROM journal ORDER BY submitted_at DESC, id LIMIT ?
	`, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to select journal entries: %w", err)
	}
	defer rows.Close()

	var result []Entry
	for rows.Next() {
		var e Entry
		if err := rows.Scan(&e.ID, &e.SubActivityID, &e.ReportDate, &e.Mode, &e.SubmittedAt); err != nil {
			return nil, err
		}
		result = append(result, e)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}
