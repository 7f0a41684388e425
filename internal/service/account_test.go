package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"taskdeck/internal/database"
	"taskdeck/internal/model"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/require"
)

func TestRegisterUser(t *testing.T) {
	ctx := context.Background()
	db := &database.FakeDB{}

	t.Run("duplicate email", func(t *testing.T) {
		t.Cleanup(restoreGlobals)
		getUserByEmail = func(context.Context, database.DB, string) (*model.User, error) {
			return &model.User{ID: 1, Email: "ann@x.com"}, nil
		}
		_, _, err := RegisterUser(ctx, db, "Ann", "ann@x.com", "secret1")
		require.ErrorIs(t, err, ErrDuplicateAccount)
	})

	t.Run("lookup failure bubbles", func(t *testing.T) {
		t.Cleanup(restoreGlobals)
		getUserByEmail = func(context.Context, database.DB, string) (*model.User, error) {
			return nil, errors.New("db down")
		}
		_, _, err := RegisterUser(ctx, db, "Ann", "ann@x.com", "secret1")
		require.Error(t, err)
		require.NotErrorIs(t, err, ErrDuplicateAccount)
	})

	t.Run("hash failure", func(t *testing.T) {
		t.Cleanup(restoreGlobals)
		getUserByEmail = func(context.Context, database.DB, string) (*model.User, error) {
			return nil, pgx.ErrNoRows
		}
		hashPassword = func(string) (string, error) { return "", errors.New("hash") }
		_, _, err := RegisterUser(ctx, db, "Ann", "ann@x.com", "secret1")
		require.Error(t, err)
	})

	t.Run("unique violation on insert maps to duplicate", func(t *testing.T) {
		t.Cleanup(restoreGlobals)
		getUserByEmail = func(context.Context, database.DB, string) (*model.User, error) {
			return nil, pgx.ErrNoRows
		}
		hashPassword = func(string) (string, error) { return "h", nil }
		createUser = func(context.Context, database.DB, *model.User) (*model.User, error) {
			return nil, &pgconn.PgError{Code: "23505"}
		}
		_, _, err := RegisterUser(ctx, db, "Ann", "ann@x.com", "secret1")
		require.ErrorIs(t, err, ErrDuplicateAccount)
	})

	t.Run("token failure", func(t *testing.T) {
		t.Cleanup(restoreGlobals)
		getUserByEmail = func(context.Context, database.DB, string) (*model.User, error) {
			return nil, pgx.ErrNoRows
		}
		hashPassword = func(string) (string, error) { return "h", nil }
		createUser = func(_ context.Context, _ database.DB, u *model.User) (*model.User, error) {
			u.ID = 1
			return u, nil
		}
		issueAccessToken = func(model.User, time.Duration) (string, error) {
			return "", errors.New("sign")
		}
		_, _, err := RegisterUser(ctx, db, "Ann", "ann@x.com", "secret1")
		require.Error(t, err)
	})

	t.Run("ok", func(t *testing.T) {
		t.Cleanup(restoreGlobals)
		getUserByEmail = func(context.Context, database.DB, string) (*model.User, error) {
			return nil, pgx.ErrNoRows
		}
		hashPassword = func(string) (string, error) { return "hashed", nil }
		var stored model.User
		createUser = func(_ context.Context, _ database.DB, u *model.User) (*model.User, error) {
			u.ID = 1
			u.CreatedAt = time.Now()
			stored = *u
			return u, nil
		}
		issueAccessToken = func(u model.User, ttl time.Duration) (string, error) {
			require.Equal(t, 1, u.ID)
			require.Equal(t, AccessTokenTTL, ttl)
			return "tok", nil
		}
		user, token, err := RegisterUser(ctx, db, "Ann", "ann@x.com", "secret1")
		require.NoError(t, err)
		require.Equal(t, "tok", token)
		require.Equal(t, 1, user.ID)
		require.Equal(t, "hashed", stored.PasswordHash)
	})
}

func TestLoginUser(t *testing.T) {
	ctx := context.Background()
	db := &database.FakeDB{}

	t.Run("unknown email and wrong password yield the same error", func(t *testing.T) {
		t.Cleanup(restoreGlobals)
		getUserByEmail = func(context.Context, database.DB, string) (*model.User, error) {
			return nil, pgx.ErrNoRows
		}
		_, _, errUnknown := LoginUser(ctx, db, "none@x.com", "pw")
		require.ErrorIs(t, errUnknown, ErrInvalidCredentials)

		getUserByEmail = func(context.Context, database.DB, string) (*model.User, error) {
			return &model.User{ID: 1, Email: "ann@x.com", PasswordHash: "h"}, nil
		}
		authenticateUser = func(context.Context, model.User, string) error {
			return errors.New("invalid password")
		}
		_, _, errWrongPw := LoginUser(ctx, db, "ann@x.com", "bad")
		require.ErrorIs(t, errWrongPw, ErrInvalidCredentials)

		// 兩種情況錯誤文案完全一致，避免洩漏帳號是否存在
		require.Equal(t, errUnknown.Error(), errWrongPw.Error())
	})

	t.Run("storage failure bubbles", func(t *testing.T) {
		t.Cleanup(restoreGlobals)
		getUserByEmail = func(context.Context, database.DB, string) (*model.User, error) {
			return nil, errors.New("db down")
		}
		_, _, err := LoginUser(ctx, db, "ann@x.com", "pw")
		require.Error(t, err)
		require.NotErrorIs(t, err, ErrInvalidCredentials)
	})

	t.Run("ok", func(t *testing.T) {
		t.Cleanup(restoreGlobals)
		getUserByEmail = func(context.Context, database.DB, string) (*model.User, error) {
			return &model.User{ID: 2, Email: "ann@x.com", PasswordHash: "h"}, nil
		}
		authenticateUser = func(context.Context, model.User, string) error { return nil }
		issueAccessToken = func(u model.User, _ time.Duration) (string, error) { return "tok", nil }
		user, token, err := LoginUser(ctx, db, "ann@x.com", "pw")
		require.NoError(t, err)
		require.Equal(t, 2, user.ID)
		require.Equal(t, "tok", token)
	})
}

func TestResolveUser(t *testing.T) {
	ctx := context.Background()
	db := &database.FakeDB{}

	t.Run("unknown identity", func(t *testing.T) {
		t.Cleanup(restoreGlobals)
		getUserByID = func(context.Context, database.DB, int) (*model.User, error) {
			return nil, pgx.ErrNoRows
		}
		_, err := ResolveUser(ctx, db, 9)
		require.ErrorIs(t, err, ErrUnknownIdentity)
	})

	t.Run("storage failure bubbles", func(t *testing.T) {
		t.Cleanup(restoreGlobals)
		getUserByID = func(context.Context, database.DB, int) (*model.User, error) {
			return nil, errors.New("db down")
		}
		_, err := ResolveUser(ctx, db, 9)
		require.Error(t, err)
		require.NotErrorIs(t, err, ErrUnknownIdentity)
	})

	t.Run("ok", func(t *testing.T) {
		t.Cleanup(restoreGlobals)
		getUserByID = func(_ context.Context, _ database.DB, id int) (*model.User, error) {
			return &model.User{ID: id}, nil
		}
		user, err := ResolveUser(ctx, db, 9)
		require.NoError(t, err)
		require.Equal(t, 9, user.ID)
	})
}
