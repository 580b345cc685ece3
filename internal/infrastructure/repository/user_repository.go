package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/softcrates/fieldsync/internal/domain/entity"
	domainRepo "github.com/softcrates/fieldsync/internal/domain/repository"
)

type userRepository struct {
	db *gorm.DB
}

// NewUserRepository creates a new user repository
func NewUserRepository(db *gorm.DB) domainRepo.UserRepository {
	return &userRepository{db: db}
}

func (r *userRepository) GetByUsername(ctx context.Context, username string) (*entity.User, error) {
	var user entity.User
	err := r.db.WithContext(ctx).
		Where("UPPER(TRIM(name)) = UPPER(TRIM(?))", username).
		First(&user).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *userRepository) ReplaceAll(ctx context.Context, users []entity.User) (int, error) {
	return replaceAll(ctx, r.db, users)
}
