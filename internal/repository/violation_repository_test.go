package repository

import (
	"context"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/ostrovskiy/construction-supervision-api/internal/models"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func setupMockDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	t.Helper()

	sqlDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() {
		sqlDB.Close()
	})

	db, err := gorm.Open(mysql.New(mysql.Config{
		Conn:                      sqlDB,
		SkipInitializeWithVersion: true,
	}), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	return db, mock
}

func TestViolationRepository_UpdateStatus(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := NewViolationRepository(db)

	mock.ExpectBegin()
	mock.ExpectExec("UPDATE `violations` SET").
		WithArgs("CLOSED", sqlmock.AnyArg(), uint64(7)).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	err := repo.UpdateStatus(context.Background(), 7, models.StatusClosed)
	require.NoError(t, err)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestViolationRepository_UpdateStatus_UnknownIDIsNoOp(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := NewViolationRepository(db)

	mock.ExpectBegin()
	mock.ExpectExec("UPDATE `violations` SET").
		WithArgs("OPEN", sqlmock.AnyArg(), uint64(999)).
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectCommit()

	// Zero affected rows is not an error at this layer
	err := repo.UpdateStatus(context.Background(), 999, models.StatusOpen)
	require.NoError(t, err)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestViolationRepository_Delete(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := NewViolationRepository(db)

	// Soft delete writes deleted_at rather than removing the row
	mock.ExpectBegin()
	mock.ExpectExec("UPDATE `violations` SET `deleted_at`").
		WithArgs(sqlmock.AnyArg(), uint64(7)).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	err := repo.Delete(context.Background(), 7)
	require.NoError(t, err)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestViolationRepository_ListByContractor(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := NewViolationRepository(db)

	rows := sqlmock.NewRows([]string{"id", "description", "location", "resolution_status", "contractor_id", "supervisor_id", "construction_object_id", "violation_classifier"}).
		AddRow(1, "unsafe scaffolding", "east wing", "OPEN", 5, 9, 1, "safety").
		AddRow(2, "missing signage", "gate", "CLOSED", 5, 9, 1, "order")

	mock.ExpectQuery("SELECT \\* FROM `violations` WHERE contractor_id = \\?").
		WithArgs(uint64(5)).
		WillReturnRows(rows)

	violations, err := repo.ListByContractor(context.Background(), 5, nil)
	require.NoError(t, err)
	require.Len(t, violations, 2)
	require.EqualValues(t, 5, violations[0].ContractorID)
	require.Equal(t, models.StatusOpen, violations[0].ResolutionStatus)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestViolationRepository_ListByConstructionObject(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := NewViolationRepository(db)

	rows := sqlmock.NewRows([]string{"id", "description", "construction_object_id"}).
		AddRow(3, "cracked beam", 2)

	mock.ExpectQuery("SELECT \\* FROM `violations` WHERE construction_object_id = \\?").
		WithArgs(uint64(2)).
		WillReturnRows(rows)

	violations, err := repo.ListByConstructionObject(context.Background(), 2, nil)
	require.NoError(t, err)
	require.Len(t, violations, 1)
	require.EqualValues(t, 2, violations[0].ConstructionObjectID)
	require.NoError(t, mock.ExpectationsWereMet())
}
