package repositories

import (
	"context"
	"errors"
	"strings"

	"gorm.io/gorm"
	"lifediary/internal/models/db_models"
)

type UserRepositoryInterface interface {
	Insert(ctx context.Context, user *db_models.DiaryUser) error
	FindByID(ctx context.Context, id uint) (*db_models.DiaryUser, error)
	FindByEmail(ctx context.Context, email string) (*db_models.DiaryUser, error)
	FindByEmailAndName(ctx context.Context, email, name string) (*db_models.DiaryUser, error)
	ListUsers(ctx context.Context) ([]db_models.DiaryUser, error)
}

func NewUserRepository(db *gorm.DB) UserRepositoryInterface {
	return &userRepository{db: db}
}

type userRepository struct {
	db *gorm.DB
}

func (r *userRepository) Insert(ctx context.Context, user *db_models.DiaryUser) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		return tx.WithContext(ctx).Create(user).Error
	})
}

func (r *userRepository) FindByID(ctx context.Context, id uint) (*db_models.DiaryUser, error) {
	var user db_models.DiaryUser
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&user).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &user, nil
}

func (r *userRepository) FindByEmail(ctx context.Context, email string) (*db_models.DiaryUser, error) {
	var user db_models.DiaryUser
	err := r.db.WithContext(ctx).Where("email = ?", strings.ToLower(email)).First(&user).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &user, nil
}

func (r *userRepository) FindByEmailAndName(ctx context.Context, email, name string) (*db_models.DiaryUser, error) {
	var user db_models.DiaryUser
	err := r.db.WithContext(ctx).
		Where("email = ? AND name = ?", strings.ToLower(email), name).
		First(&user).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &user, nil
}

func (r *userRepository) ListUsers(ctx context.Context) ([]db_models.DiaryUser, error) {
	var users []db_models.DiaryUser
	if err := r.db.WithContext(ctx).Order("id").Find(&users).Error; err != nil {
		return nil, err
	}
	return users, nil
}
