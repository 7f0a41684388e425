// File: internal/service/account.go
package service

import (
	"context"
	"errors"
	"time"

	"taskdeck/internal/database"
	"taskdeck/internal/model"
	"taskdeck/internal/store"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

// AccessTokenTTL 存取令牌有效期間
const AccessTokenTTL = 24 * time.Hour

// 帳號相關的穩定錯誤種類；InvalidCredentials 對未知 Email 與密碼錯誤一律同文案
var (
	ErrDuplicateAccount   = errors.New("user with this email already exists")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrUnknownIdentity    = errors.New("user not found")
)

// 測試可覆寫下列變數
var (
	getUserByEmail   = store.GetUserByEmail
	getUserByID      = store.GetUserByID
	createUser       = store.CreateUser
	hashPassword     = HashPassword
	authenticateUser = AuthenticateUser
	issueAccessToken = IssueAccessToken
)

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "23505"
}

// RegisterUser 建立新帳號並簽發存取令牌；Email 已存在時回傳 ErrDuplicateAccount
func RegisterUser(ctx context.Context, db database.DB, name, email, password string) (*model.User, string, error) {
	if _, err := getUserByEmail(ctx, db, email); err == nil {
		return nil, "", ErrDuplicateAccount
	} else if !errors.Is(err, pgx.ErrNoRows) {
		return nil, "", err
	}

	hash, err := hashPassword(password)
	if err != nil {
		return nil, "", err
	}

	user, err := createUser(ctx, db, &model.User{
		Name:         name,
		Email:        email,
		PasswordHash: hash,
	})
	if err != nil {
		// 併發註冊撞上唯一索引時同樣視為重複帳號
		if isUniqueViolation(err) {
			return nil, "", ErrDuplicateAccount
		}
		return nil, "", err
	}

	token, err := issueAccessToken(*user, AccessTokenTTL)
	if err != nil {
		return nil, "", err
	}
	return user, token, nil
}

// LoginUser 驗證帳密並簽發存取令牌
// 未知 Email 與密碼不符回傳完全相同的 ErrInvalidCredentials，不洩漏帳號是否存在
func LoginUser(ctx context.Context, db database.DB, email, password string) (*model.User, string, error) {
	user, err := getUserByEmail(ctx, db, email)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, "", ErrInvalidCredentials
		}
		return nil, "", err
	}

	if err := authenticateUser(ctx, *user, password); err != nil {
		return nil, "", ErrInvalidCredentials
	}

	token, err := issueAccessToken(*user, AccessTokenTTL)
	if err != nil {
		return nil, "", err
	}
	return user, token, nil
}

// ResolveUser 將令牌主體還原為使用者；ID 已不存在時回傳 ErrUnknownIdentity
func ResolveUser(ctx context.Context, db database.DB, userID int) (*model.User, error) {
	user, err := getUserByID(ctx, db, userID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrUnknownIdentity
		}
		return nil, err
	}
	return user, nil
}
