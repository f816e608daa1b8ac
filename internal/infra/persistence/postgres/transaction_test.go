package postgres

import (
	"context"
	"testing"

	"wallet/internal/domain/entity"
	domainerrors "wallet/internal/domain/errors"
	"wallet/internal/errors"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"wallet/internal/domain/repository"
)

func TestTransactionManager_Commit(t *testing.T) {
	gormDB, mock := newGormWithMock(t)
	tm := NewTransactionManager(gormDB)

	mock.ExpectBegin()
	mock.ExpectQuery(`INSERT INTO "accounts"`).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(int64(3)))
	mock.ExpectQuery(`INSERT INTO "users"`).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(int64(7)))
	mock.ExpectCommit()

	err := tm.Execute(context.Background(), func(f repository.RepositoryFactory) error {
		account := &entity.Account{Balance: 100.0}
		if err := f.AccountRepo().Create(context.Background(), account); err != nil {
			return err
		}

		user := &entity.User{Username: "alice", PasswordHash: "h", AccountID: account.ID}

		return f.UserRepo().Create(context.Background(), user)
	})
	require.NoError(t, err)

	assert.NoError(t, mock.ExpectationsWereMet())
}

// A failed user insert after a successful account insert must roll the whole
// transaction back and surface the original business error unchanged.
func TestTransactionManager_RollbackOnBusinessError(t *testing.T) {
	gormDB, mock := newGormWithMock(t)
	tm := NewTransactionManager(gormDB)

	mock.ExpectBegin()
	mock.ExpectQuery(`INSERT INTO "accounts"`).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(int64(3)))
	mock.ExpectQuery(`INSERT INTO "users"`).
		WillReturnError(errors.New(`ERROR: duplicate key value violates unique constraint "idx_users_username" (SQLSTATE 23505)`))
	mock.ExpectRollback()

	err := tm.Execute(context.Background(), func(f repository.RepositoryFactory) error {
		account := &entity.Account{Balance: 100.0}
		if err := f.AccountRepo().Create(context.Background(), account); err != nil {
			return err
		}

		return f.UserRepo().Create(context.Background(), &entity.User{Username: "alice", PasswordHash: "h", AccountID: account.ID})
	})
	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrUsernameUnavailable)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestTransactionManager_RollbackOnPanic(t *testing.T) {
	gormDB, mock := newGormWithMock(t)
	tm := NewTransactionManager(gormDB)

	mock.ExpectBegin()
	mock.ExpectRollback()

	assert.Panics(t, func() {
		_ = tm.Execute(context.Background(), func(repository.RepositoryFactory) error {
			panic("boom")
		})
	})

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestTransactionManager_BeginError(t *testing.T) {
	gormDB, mock := newGormWithMock(t)
	tm := NewTransactionManager(gormDB)

	mock.ExpectBegin().WillReturnError(errors.New("connection closed"))

	err := tm.Execute(context.Background(), func(repository.RepositoryFactory) error {
		t.Fatal("callback must not run when Begin fails")

		return nil
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to begin transaction")

	assert.NoError(t, mock.ExpectationsWereMet())
}
