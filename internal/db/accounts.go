package db

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/quillpress/quillpress/internal/models"
)

// AccountRepository provides account-related database operations
type AccountRepository struct {
	*Repository
}

// NewAccountRepository creates a new account repository
func NewAccountRepository(repo *Repository) *AccountRepository {
	return &AccountRepository{Repository: repo}
}

// GetByID retrieves an account by ID
func (r *AccountRepository) GetByID(ctx context.Context, id string) (*models.Account, error) {
	var account models.Account
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&account).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &account, nil
}

// ListAll retrieves all accounts
func (r *AccountRepository) ListAll(ctx context.Context) ([]*models.Account, error) {
	var accounts []*models.Account
	if err := r.db.WithContext(ctx).Order("display_name ASC").Find(&accounts).Error; err != nil {
		return nil, err
	}
	return accounts, nil
}

// Create creates a new account
func (r *AccountRepository) Create(ctx context.Context, account *models.Account) error {
	return r.db.WithContext(ctx).Create(account).Error
}
