package repositories

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"github.com/rs/zerolog/log"

	intconfig "tripboard/internal/config"
	intdb "tripboard/internal/db"
	"tripboard/internal/domain/models"
)

const groupsTable = "groups"

// GroupsRepository reads group trips for the dashboard. Writes belong to the
// groups API and are not done here.
type GroupsRepository struct {
	DB *sql.DB
}

func (r GroupsRepository) db() *sql.DB {
	if r.DB != nil {
		return r.DB
	}
	return intconfig.DB
}

// ListTrips returns every group trip ordered by start date. Rows with a missing
// or inverted date range are rejected here so the dashboard never sees them.
func (r GroupsRepository) ListTrips(ctx context.Context) ([]models.Trip, error) {
	db := r.db()
	if db == nil || !intdb.HasTable(ctx, db, groupsTable) {
		return []models.Trip{}, nil
	}

	cols := []string{
		"id",
		"COALESCE(group_name,'')",
		intdb.ColumnOr(ctx, db, groupsTable, "school_name", "COALESCE(school_name,'')", "''"),
		intdb.ColumnOr(ctx, db, groupsTable, "location", "COALESCE(location,'')", "''"),
		"start_date",
		"end_date",
		"total_travelers",
		"COALESCE(contract_signed,0)",
		intdb.ColumnOr(ctx, db, groupsTable, "status", "COALESCE(status,'')", "''"),
	}

	query := fmt.Sprintf("SELECT %s FROM `%s` ORDER BY start_date ASC, id ASC", strings.Join(cols, ", "), groupsTable)
	rows, err := db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list groups: %w", err)
	}
	defer rows.Close()

	out := []models.Trip{}
	for rows.Next() {
		var (
			t          models.Trip
			status     string
			start, end sql.NullTime
			travelers  sql.NullInt64
		)
		if err := rows.Scan(
			&t.ID,
			&t.GroupName,
			&t.SchoolName,
			&t.Location,
			&start,
			&end,
			&travelers,
			&t.ContractSigned,
			&status,
		); err != nil {
			return out, fmt.Errorf("scan group: %w", err)
		}

		if !start.Valid || !end.Valid || start.Time.After(end.Time) {
			log.Warn().Str("module", "groups").Int64("group_id", t.ID).Msg("skipping group with invalid date range")
			continue
		}
		t.StartDate = start.Time
		t.EndDate = end.Time
		if travelers.Valid {
			n := int(travelers.Int64)
			t.TotalTravelers = &n
		}
		t.Status = models.TripStatus(strings.TrimSpace(status))
		t.GroupName = strings.TrimSpace(t.GroupName)
		out = append(out, t)
	}
	return out, rows.Err()
}
