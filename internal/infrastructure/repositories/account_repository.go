package repositories

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"

	"github.com/Heisenberg-Vader/Auction-Website/domain"
)

// AccountRepositoryImpl implements domain.AccountRepository using GORM
type AccountRepositoryImpl struct {
	db *gorm.DB
}

// DBAccount represents the database model for Account (with GORM tags)
type DBAccount struct {
	ID                uint       `gorm:"primaryKey"`
	Email             string     `gorm:"uniqueIndex;size:255"`
	PasswordHash      string     `gorm:"column:password"`
	UserType          string     `gorm:"size:32"`
	Verified          bool       `gorm:"index"`
	VerificationToken *string    `gorm:"index;size:128"`
	LoginAttempts     int        `gorm:"not null;default:0"`
	LockUntil         *time.Time
	IsLoggedIn        bool
	CreatedAt         time.Time
	UpdatedAt         time.Time
}

// TableName returns the table name for GORM
func (DBAccount) TableName() string {
	return "accounts"
}

// NewAccountRepository creates a new account repository
func NewAccountRepository(db *gorm.DB) domain.AccountRepository {
	return &AccountRepositoryImpl{db: db}
}

// Create implements domain.AccountRepository. A unique-key violation on the
// normalized email maps to domain.ErrDuplicateAccount.
func (r *AccountRepositoryImpl) Create(ctx context.Context, account *domain.Account) error {
	dbAccount := r.domainToDB(account)
	if err := r.db.WithContext(ctx).Create(dbAccount).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return domain.ErrDuplicateAccount
		}
		return err
	}
	account.ID = dbAccount.ID
	return nil
}

// FindByEmail implements domain.AccountRepository. Callers pass the
// normalized (lowercased) email.
func (r *AccountRepositoryImpl) FindByEmail(ctx context.Context, email string) (*domain.Account, error) {
	var dbAccount DBAccount
	err := r.db.WithContext(ctx).Where("email = ?", email).First(&dbAccount).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrAccountNotFound
		}
		return nil, err
	}
	return r.dbToDomain(&dbAccount), nil
}

// FindByVerificationToken implements domain.AccountRepository
func (r *AccountRepositoryImpl) FindByVerificationToken(ctx context.Context, token string) (*domain.Account, error) {
	var dbAccount DBAccount
	err := r.db.WithContext(ctx).Where("verification_token = ?", token).First(&dbAccount).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrTokenNotFound
		}
		return nil, err
	}
	return r.dbToDomain(&dbAccount), nil
}

// FindByID implements domain.AccountRepository
func (r *AccountRepositoryImpl) FindByID(ctx context.Context, id uint) (*domain.Account, error) {
	var dbAccount DBAccount
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&dbAccount).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrAccountNotFound
		}
		return nil, err
	}
	return r.dbToDomain(&dbAccount), nil
}

// UpdateFields implements domain.AccountRepository
func (r *AccountRepositoryImpl) UpdateFields(ctx context.Context, id uint, fields map[string]any) error {
	res := r.db.WithContext(ctx).Model(&DBAccount{}).Where("id = ?", id).Updates(fields)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return domain.ErrAccountNotFound
	}
	return nil
}

// RecordFailedLogin implements domain.AccountRepository. The increment runs
// SQL-side and the lock is armed by a guarded update that matches only when
// the threshold is reached and no live lock exists, so the lock arms exactly
// once per threshold crossing even under concurrent failures.
func (r *AccountRepositoryImpl) RecordFailedLogin(ctx context.Context, id uint, threshold int, lockFor time.Duration) (int, *time.Time, error) {
	var attempts int
	var lockUntil *time.Time

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		res := tx.Model(&DBAccount{}).Where("id = ?", id).
			UpdateColumn("login_attempts", gorm.Expr("login_attempts + 1"))
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return domain.ErrAccountNotFound
		}

		now := time.Now()
		until := now.Add(lockFor)
		res = tx.Model(&DBAccount{}).
			Where("id = ? AND login_attempts >= ? AND (lock_until IS NULL OR lock_until <= ?)", id, threshold, now).
			UpdateColumn("lock_until", until)
		if res.Error != nil {
			return res.Error
		}

		var dbAccount DBAccount
		if err := tx.Where("id = ?", id).First(&dbAccount).Error; err != nil {
			return err
		}
		attempts = dbAccount.LoginAttempts
		lockUntil = dbAccount.LockUntil
		return nil
	})
	if err != nil {
		return 0, nil, err
	}
	return attempts, lockUntil, nil
}

// ResetLoginState implements domain.AccountRepository
func (r *AccountRepositoryImpl) ResetLoginState(ctx context.Context, id uint) error {
	return r.UpdateFields(ctx, id, map[string]any{
		"login_attempts": 0,
		"lock_until":     nil,
		"is_logged_in":   true,
	})
}

// RedeemVerificationToken implements domain.AccountRepository. The guarded
// update matches on the token itself, so of two concurrent redemptions only
// one observes a row.
func (r *AccountRepositoryImpl) RedeemVerificationToken(ctx context.Context, token string) (*domain.Account, error) {
	var account *domain.Account

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var dbAccount DBAccount
		if err := tx.Where("verification_token = ?", token).First(&dbAccount).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return domain.ErrTokenNotFound
			}
			return err
		}

		res := tx.Model(&DBAccount{}).
			Where("id = ? AND verification_token = ?", dbAccount.ID, token).
			Updates(map[string]any{
				"verified":           true,
				"verification_token": nil,
			})
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return domain.ErrTokenNotFound
		}

		dbAccount.Verified = true
		dbAccount.VerificationToken = nil
		account = r.dbToDomain(&dbAccount)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return account, nil
}

// domainToDB converts a domain account to a database account
func (r *AccountRepositoryImpl) domainToDB(account *domain.Account) *DBAccount {
	dbAccount := &DBAccount{
		ID:            account.ID,
		Email:         account.Email,
		PasswordHash:  account.PasswordHash,
		UserType:      account.UserType,
		Verified:      account.Verified,
		LoginAttempts: account.LoginAttempts,
		LockUntil:     account.LockUntil,
		IsLoggedIn:    account.IsLoggedIn,
	}
	if account.VerificationToken != "" {
		token := account.VerificationToken
		dbAccount.VerificationToken = &token
	}
	return dbAccount
}

// dbToDomain converts a database account to a domain account
func (r *AccountRepositoryImpl) dbToDomain(dbAccount *DBAccount) *domain.Account {
	account := &domain.Account{
		ID:            dbAccount.ID,
		Email:         dbAccount.Email,
		PasswordHash:  dbAccount.PasswordHash,
		UserType:      dbAccount.UserType,
		Verified:      dbAccount.Verified,
		LoginAttempts: dbAccount.LoginAttempts,
		LockUntil:     dbAccount.LockUntil,
		IsLoggedIn:    dbAccount.IsLoggedIn,
		CreatedAt:     dbAccount.CreatedAt,
		UpdatedAt:     dbAccount.UpdatedAt,
	}
	if dbAccount.VerificationToken != nil {
		account.VerificationToken = *dbAccount.VerificationToken
	}
	return account
}
