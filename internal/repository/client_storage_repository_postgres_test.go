package repository

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

var storedValueColumns = []string{"client_id", "key", "value", "updated_at"}

func newMockPostgres(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	sqlDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { sqlDB.Close() })

	db, err := gorm.Open(postgres.New(postgres.Config{Conn: sqlDB}), &gorm.Config{
		SkipDefaultTransaction: true,
		Logger:                 logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	return db, mock
}

func TestPostgresClientStorage_Get(t *testing.T) {
	db, mock := newMockPostgres(t)
	storage := NewPostgresClientStorage(db)
	ctx := context.Background()

	mock.ExpectQuery(`SELECT \* FROM "client_storage" WHERE client_id = \$1 AND key = \$2`).
		WillReturnRows(sqlmock.NewRows(storedValueColumns).
			AddRow("client-a", "invoiceNumber", "INV-1", time.Now()))

	value, found, err := storage.Get(ctx, "client-a", "invoiceNumber")
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, "INV-1", value)

	// no row is reported as missing, not as an error
	mock.ExpectQuery(`SELECT \* FROM "client_storage" WHERE client_id = \$1 AND key = \$2`).
		WillReturnRows(sqlmock.NewRows(storedValueColumns))

	_, found, err = storage.Get(ctx, "client-a", "receiptId")
	require.NoError(t, err)
	assert.False(t, found)

	mock.ExpectQuery(`SELECT \* FROM "client_storage"`).
		WillReturnError(errors.New("connection reset"))

	_, _, err = storage.Get(ctx, "client-a", "receiptId")
	assert.ErrorContains(t, err, "connection reset")

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgresClientStorage_SetUpserts(t *testing.T) {
	db, mock := newMockPostgres(t)
	storage := NewPostgresClientStorage(db)

	mock.ExpectExec(`INSERT INTO "client_storage" .* ON CONFLICT \("client_id","key"\) DO UPDATE SET "value"="excluded"."value","updated_at"="excluded"."updated_at"`).
		WithArgs("client-a", "invoiceNumber", "INV-2", sqlmock.AnyArg()).
		WillReturnResult(sqlmock.NewResult(0, 1))

	require.NoError(t, storage.Set(context.Background(), "client-a", "invoiceNumber", "INV-2"))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgresClientStorage_SetIfAbsentReadsBackWinner(t *testing.T) {
	db, mock := newMockPostgres(t)
	storage := NewPostgresClientStorage(db)

	mock.ExpectExec(`INSERT INTO "client_storage" .* ON CONFLICT DO NOTHING`).
		WithArgs("client-a", "receiptId", "RCP-2", sqlmock.AnyArg()).
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectQuery(`SELECT \* FROM "client_storage" WHERE client_id = \$1 AND key = \$2`).
		WillReturnRows(sqlmock.NewRows(storedValueColumns).
			AddRow("client-a", "receiptId", "RCP-1", time.Now()))

	stored, err := storage.SetIfAbsent(context.Background(), "client-a", "receiptId", "RCP-2")
	require.NoError(t, err)
	assert.Equal(t, "RCP-1", stored)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgresClientStorage_Delete(t *testing.T) {
	db, mock := newMockPostgres(t)
	storage := NewPostgresClientStorage(db)
	ctx := context.Background()

	mock.ExpectExec(`DELETE FROM "client_storage" WHERE client_id = \$1 AND key IN \(\$2,\$3\)`).
		WithArgs("client-a", "invoiceNumber", "receiptId").
		WillReturnResult(sqlmock.NewResult(0, 2))

	require.NoError(t, storage.Delete(ctx, "client-a", "invoiceNumber", "receiptId"))

	// nothing to delete issues no statement
	require.NoError(t, storage.Delete(ctx, "client-a"))
	assert.NoError(t, mock.ExpectationsWereMet())
}
