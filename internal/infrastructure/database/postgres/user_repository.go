package postgres

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"gorm.io/gorm"

	domainUser "contact-manager/internal/domain/user"
	"contact-manager/internal/infrastructure/database/postgres/models"
)

// UserRepository implements the user domain repository on gorm.
type UserRepository struct {
	db *DB
}

func NewUserRepository(db *DB) domainUser.Repository {
	return &UserRepository{db: db}
}

func (r *UserRepository) Create(ctx context.Context, u *domainUser.User) error {
	dbModel := toUserModel(u)
	if err := r.db.DB.WithContext(ctx).Create(dbModel).Error; err != nil {
		if strings.Contains(err.Error(), "duplicate key value") {
			return domainUser.ErrUserAlreadyExists
		}
		return fmt.Errorf("failed to create user: %w", err)
	}
	return nil
}

func (r *UserRepository) CountByUsername(ctx context.Context, username string) (int64, error) {
	var count int64
	err := r.db.DB.WithContext(ctx).
		Model(&models.UserModel{}).
		Where("username = ?", username).
		Count(&count).Error
	if err != nil {
		return 0, fmt.Errorf("failed to count users: %w", err)
	}
	return count, nil
}

func (r *UserRepository) GetByUsername(ctx context.Context, username string) (*domainUser.User, error) {
	var dbModel models.UserModel
	err := r.db.DB.WithContext(ctx).
		Where("username = ?", username).
		First(&dbModel).Error

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, domainUser.ErrUserNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get user: %w", err)
	}

	return toUserEntity(&dbModel), nil
}

func (r *UserRepository) GetByToken(ctx context.Context, token string) (*domainUser.User, error) {
	var dbModel models.UserModel
	err := r.db.DB.WithContext(ctx).
		Where("token = ?", token).
		First(&dbModel).Error

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, domainUser.ErrUserNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get user by token: %w", err)
	}

	return toUserEntity(&dbModel), nil
}

// Update overwrites name, password and token for the given username. The
// token column is written unconditionally so a nil token clears the session.
func (r *UserRepository) Update(ctx context.Context, u *domainUser.User) error {
	result := r.db.DB.WithContext(ctx).
		Model(&models.UserModel{}).
		Where("username = ?", u.Username).
		Updates(map[string]interface{}{
			"name":     u.Name,
			"password": u.PasswordHash,
			"token":    u.Token,
		})

	if result.Error != nil {
		return fmt.Errorf("failed to update user: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return domainUser.ErrUserNotFound
	}

	return nil
}

func toUserModel(u *domainUser.User) *models.UserModel {
	return &models.UserModel{
		Username:     u.Username,
		Name:         u.Name,
		PasswordHash: u.PasswordHash,
		Token:        u.Token,
	}
}

func toUserEntity(m *models.UserModel) *domainUser.User {
	return &domainUser.User{
		Username:     m.Username,
		Name:         m.Name,
		PasswordHash: m.PasswordHash,
		Token:        m.Token,
	}
}
