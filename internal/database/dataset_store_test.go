package database_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"

	"github.com/PnX-SI/gn-mobile-core-sub003/internal/database"
	"github.com/PnX-SI/gn-mobile-core-sub003/internal/domain"
)

func newMockDB(t *testing.T) (*sqlx.DB, sqlmock.Sqlmock) {
	t.Helper()

	mockDB, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("failed to create sqlmock: %v", err)
	}
	t.Cleanup(func() { _ = mockDB.Close() })

	return sqlx.NewDb(mockDB, database.DriverName), mock
}

func TestDatasetStore_FindByID(t *testing.T) {
	t.Parallel()

	db, mock := newMockDB(t)
	store := database.NewDatasetStore(db)
	createdAt := time.Date(2019, 10, 30, 22, 32, 16, 0, time.UTC)

	mock.ExpectQuery("SELECT (.+) FROM datasets").
		WithArgs(int64(1), "occtax").
		WillReturnRows(
			sqlmock.NewRows([]string{"id", "module", "label", "description", "active", "created_at"}).
				AddRow(1, "occtax", "Dataset #1", "Description", true, createdAt),
		)

	dataset, err := store.FindByID(context.Background(), 1, "occtax")
	if err != nil {
		t.Fatalf("FindByID() error = %v", err)
	}

	if dataset.Label != "Dataset #1" || !dataset.Active || !dataset.CreatedAt.Equal(createdAt) {
		t.Errorf("unexpected dataset: %+v", dataset)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unfulfilled expectations: %v", err)
	}
}

func TestDatasetStore_FindByID_NotFound(t *testing.T) {
	t.Parallel()

	db, mock := newMockDB(t)
	store := database.NewDatasetStore(db)

	mock.ExpectQuery("SELECT (.+) FROM datasets").
		WithArgs(int64(42), "occtax").
		WillReturnRows(sqlmock.NewRows([]string{"id", "module", "label", "description", "active", "created_at"}))

	_, err := store.FindByID(context.Background(), 42, "occtax")

	var notFound *database.NotFoundError
	if !errors.As(err, &notFound) {
		t.Fatalf("expected NotFoundError, got %v", err)
	}
	if notFound.Entity != database.EntityDataset || notFound.Key != "occtax/42" {
		t.Errorf("unexpected not found error: %+v", notFound)
	}
	if !errors.Is(err, database.ErrNotFound) {
		t.Error("expected error to match ErrNotFound")
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unfulfilled expectations: %v", err)
	}
}

func TestDatasetStore_FindByID_DriverError(t *testing.T) {
	t.Parallel()

	db, mock := newMockDB(t)
	store := database.NewDatasetStore(db)
	driverErr := errors.New("database is locked")

	mock.ExpectQuery("SELECT (.+) FROM datasets").
		WithArgs(int64(1), "occtax").
		WillReturnError(driverErr)

	_, err := store.FindByID(context.Background(), 1, "occtax")
	if !errors.Is(err, driverErr) {
		t.Fatalf("expected wrapped driver error, got %v", err)
	}
	if errors.Is(err, database.ErrNotFound) {
		t.Error("driver error must not look like not found")
	}
}

func TestDatasetStore_Upsert_RollsBackOnError(t *testing.T) {
	t.Parallel()

	db, mock := newMockDB(t)
	store := database.NewDatasetStore(db)

	mock.ExpectBegin()
	mock.ExpectExec("INSERT INTO datasets").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec("INSERT INTO datasets").
		WillReturnError(errors.New("constraint failed"))
	mock.ExpectRollback()

	err := store.Upsert(context.Background(), []domain.Dataset{
		{ID: 1, Module: "occtax"},
		{ID: 2, Module: "occtax"},
	})
	if err == nil {
		t.Fatal("expected error")
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unfulfilled expectations: %v", err)
	}
}

func TestDatasetStore_Upsert_Empty(t *testing.T) {
	t.Parallel()

	db, mock := newMockDB(t)
	store := database.NewDatasetStore(db)

	if err := store.Upsert(context.Background(), nil); err != nil {
		t.Fatalf("Upsert() error = %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unexpected queries: %v", err)
	}
}
