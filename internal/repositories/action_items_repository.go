package repositories

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	intconfig "tripboard/internal/config"
	intdb "tripboard/internal/db"
	"tripboard/internal/domain/models"
)

const actionItemsTable = "action_items"

type ActionItemsRepository struct {
	DB *sql.DB
}

func (r ActionItemsRepository) db() *sql.DB {
	if r.DB != nil {
		return r.DB
	}
	return intconfig.DB
}

// ListActionItems returns all action items in insertion order.
func (r ActionItemsRepository) ListActionItems(ctx context.Context) ([]models.ActionItem, error) {
	db := r.db()
	if db == nil || !intdb.HasTable(ctx, db, actionItemsTable) {
		return []models.ActionItem{}, nil
	}

	cols := []string{
		"id",
		"COALESCE(title,'')",
		intdb.ColumnOr(ctx, db, actionItemsTable, "group_id", "group_id", "NULL"),
		"COALESCE(priority,'')",
		"due_date",
		"COALESCE(status,'pending')",
	}

	query := fmt.Sprintf("SELECT %s FROM %s ORDER BY id ASC", strings.Join(cols, ", "), actionItemsTable)
	rows, err := db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list action items: %w", err)
	}
	defer rows.Close()

	out := []models.ActionItem{}
	for rows.Next() {
		var (
			it       models.ActionItem
			groupID  sql.NullInt64
			priority string
			status   string
			due      sql.NullTime
		)
		if err := rows.Scan(&it.ID, &it.Title, &groupID, &priority, &due, &status); err != nil {
			return out, fmt.Errorf("scan action item: %w", err)
		}
		if groupID.Valid {
			id := groupID.Int64
			it.GroupID = &id
		}
		if due.Valid {
			d := due.Time
			it.DueDate = &d
		}
		it.Priority = models.Priority(strings.ToLower(strings.TrimSpace(priority)))
		it.Status = models.ActionItemStatus(strings.ToLower(strings.TrimSpace(status)))
		out = append(out, it)
	}
	return out, rows.Err()
}
