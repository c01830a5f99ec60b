package postgres_test

import (
	"context"
	"errors"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"

	"vehicle-rental-api/internal/repository"
	"vehicle-rental-api/internal/repository/postgres"
)

func TestTxManager_WithinTx(t *testing.T) {
	ctx := context.Background()

	t.Run("Commits when fn returns nil", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		if err != nil {
			t.Fatalf("error opening mock database: %v", err)
		}
		defer db.Close()

		v := sampleVehicle()

		mock.ExpectBegin()
		mock.ExpectQuery("SELECT (.+) FROM vehicles WHERE id = \\$1 FOR UPDATE").
			WithArgs(v.ID).
			WillReturnRows(vehicleRows(v))
		mock.ExpectExec("UPDATE vehicles SET").
			WillReturnResult(sqlmock.NewResult(0, 1))
		mock.ExpectCommit()

		txm := postgres.NewTxManager(db)
		err = txm.WithinTx(ctx, func(uow *repository.UnitOfWork) error {
			got, err := uow.Vehicles.GetByIDForUpdate(ctx, v.ID)
			if err != nil {
				return err
			}
			return uow.Vehicles.Update(ctx, got)
		})
		assert.NoError(t, err)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Rolls back when fn fails", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		if err != nil {
			t.Fatalf("error opening mock database: %v", err)
		}
		defer db.Close()

		boom := errors.New("boom")

		mock.ExpectBegin()
		mock.ExpectRollback()

		txm := postgres.NewTxManager(db)
		err = txm.WithinTx(ctx, func(uow *repository.UnitOfWork) error {
			return boom
		})
		assert.ErrorIs(t, err, boom)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}
