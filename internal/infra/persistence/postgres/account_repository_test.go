package postgres

import (
	"context"
	"testing"
	"time"

	"wallet/internal/domain/entity"
	domainerrors "wallet/internal/domain/errors"
	"wallet/internal/domain/repository"
	"wallet/internal/errors"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAccountRepository_FindByID(t *testing.T) {
	gormDB, mock := newGormWithMock(t)
	repo := NewAccountRepository(gormDB)

	now := time.Now()
	rows := sqlmock.NewRows([]string{"id", "balance", "created_at", "updated_at"}).
		AddRow(int64(3), 100.0, now, now)

	mock.ExpectQuery(`SELECT \* FROM "accounts" WHERE "accounts"\."id" = \$1`).
		WithArgs(int64(3), 1).
		WillReturnRows(rows)

	account, err := repo.FindByID(context.Background(), 3)
	require.NoError(t, err)
	assert.Equal(t, int64(3), account.ID)
	assert.InDelta(t, 100.0, account.Balance, 1e-9)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestAccountRepository_FindByID_NotFound(t *testing.T) {
	gormDB, mock := newGormWithMock(t)
	repo := NewAccountRepository(gormDB)

	mock.ExpectQuery(`SELECT \* FROM "accounts" WHERE "accounts"\."id" = \$1`).
		WithArgs(int64(404), 1).
		WillReturnRows(sqlmock.NewRows([]string{"id", "balance", "created_at", "updated_at"}))

	account, err := repo.FindByID(context.Background(), 404)
	require.Error(t, err)
	assert.Nil(t, account)
	assert.ErrorIs(t, err, repository.ErrAccountNotFound)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestAccountRepository_Create(t *testing.T) {
	gormDB, mock := newGormWithMock(t)
	repo := NewAccountRepository(gormDB)

	mock.ExpectQuery(`INSERT INTO "accounts"`).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(int64(5)))

	account := &entity.Account{Balance: 100.0}
	err := repo.Create(context.Background(), account)
	require.NoError(t, err)
	assert.Equal(t, int64(5), account.ID)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestAccountRepository_Create_DBError(t *testing.T) {
	gormDB, mock := newGormWithMock(t)
	repo := NewAccountRepository(gormDB)

	mock.ExpectQuery(`INSERT INTO "accounts"`).
		WillReturnError(errors.New("connection refused"))

	err := repo.Create(context.Background(), &entity.Account{Balance: 100.0})
	require.Error(t, err)

	var dbErr *domainerrors.DatabaseExecuteError
	assert.ErrorAs(t, err, &dbErr)

	assert.NoError(t, mock.ExpectationsWereMet())
}
