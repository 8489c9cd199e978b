package usermodel

import (
	"errors"
	"log/slog"

	"github.com/sinaridesa/sinari-api/type/shared/model"
	"gorm.io/gorm"
)

var ErrUserNotFound = errors.New("user not found")

type UserRepository struct {
	db *gorm.DB
}

func NewUserRepository(db *gorm.DB) *UserRepository {
	return &UserRepository{db: db}
}

func (r *UserRepository) GetAll() ([]*model.User, error) {
	var users []*model.User

	if queryErr := r.db.Order("created_at DESC").Find(&users).Error; queryErr != nil {
		slog.Error("User GetAll", "error", queryErr)
		return nil, queryErr
	}

	return users, nil
}

func (r *UserRepository) GetById(id int32) (*model.User, error) {
	user := new(model.User)

	queryErr := r.db.Where("id = ?", id).First(user).Error
	if queryErr != nil {
		if errors.Is(queryErr, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		slog.Error("User GetById", "error", queryErr, "user_id", id)
		return nil, queryErr
	}

	return user, nil
}

func (r *UserRepository) Update(id int32, updates map[string]any) (*model.User, error) {
	user := new(model.User)

	queryErr := r.db.Where("id = ?", id).First(user).Error
	if queryErr != nil {
		if errors.Is(queryErr, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		slog.Error("User Update find", "error", queryErr, "user_id", id)
		return nil, queryErr
	}

	if len(updates) == 0 {
		return user, nil
	}

	if updateErr := r.db.Model(user).Updates(updates).Error; updateErr != nil {
		slog.Error("User Update", "error", updateErr, "user_id", id)
		return nil, updateErr
	}

	updated := new(model.User)
	if fetchErr := r.db.Where("id = ?", id).First(updated).Error; fetchErr != nil {
		slog.Error("User Update fetch", "error", fetchErr, "user_id", id)
		return nil, fetchErr
	}

	return updated, nil
}

func (r *UserRepository) Delete(id int32) error {
	user := new(model.User)

	queryErr := r.db.Where("id = ?", id).First(user).Error
	if queryErr != nil {
		if errors.Is(queryErr, gorm.ErrRecordNotFound) {
			return ErrUserNotFound
		}
		slog.Error("User Delete find", "error", queryErr, "user_id", id)
		return queryErr
	}

	if deleteErr := r.db.Delete(user).Error; deleteErr != nil {
		slog.Error("User Delete", "error", deleteErr, "user_id", id)
		return deleteErr
	}

	return nil
}
