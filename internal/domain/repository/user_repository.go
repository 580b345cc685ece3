package repository

import (
	"context"

	"github.com/softcrates/fieldsync/internal/domain/entity"
)

// UserRepository defines local access to the mirrored user table backing
// offline login
type UserRepository interface {
	// GetByUsername matches case-insensitively on the trimmed name.
	GetByUsername(ctx context.Context, username string) (*entity.User, error)
	ReplaceAll(ctx context.Context, users []entity.User) (int, error)
}
