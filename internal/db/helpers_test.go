package db

import (
	"context"
	"errors"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
)

func TestHasTable(t *testing.T) {
	conn, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}
	defer conn.Close()

	mock.ExpectQuery("information_schema\\.tables").WithArgs("groups").
		WillReturnRows(sqlmock.NewRows([]string{"table_name"}).AddRow("groups"))
	mock.ExpectQuery("information_schema\\.tables").WithArgs("rooming").
		WillReturnRows(sqlmock.NewRows([]string{"table_name"}))
	mock.ExpectQuery("information_schema\\.tables").WithArgs("meals").
		WillReturnError(errors.New("bad connection"))

	ctx := context.Background()
	if !HasTable(ctx, conn, "groups") {
		t.Fatalf("expected groups table to exist")
	}
	if HasTable(ctx, conn, "rooming") {
		t.Fatalf("expected rooming table to be missing")
	}
	if HasTable(ctx, conn, "meals") {
		t.Fatalf("lookup error should count as missing")
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestColumnOr(t *testing.T) {
	conn, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}
	defer conn.Close()

	mock.ExpectQuery("information_schema\\.columns").WithArgs("groups", "location").
		WillReturnRows(sqlmock.NewRows([]string{"column_name"}).AddRow("location"))
	mock.ExpectQuery("information_schema\\.columns").WithArgs("groups", "status").
		WillReturnRows(sqlmock.NewRows([]string{"column_name"}))

	ctx := context.Background()
	if got := ColumnOr(ctx, conn, "groups", "location", "COALESCE(location,'')", "''"); got != "COALESCE(location,'')" {
		t.Fatalf("unexpected expr %q", got)
	}
	if got := ColumnOr(ctx, conn, "groups", "status", "COALESCE(status,'')", "''"); got != "''" {
		t.Fatalf("unexpected fallback %q", got)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}
