package usermodel

import (
	"github.com/sinaridesa/sinari-api/type/shared/model"
)

// IUserRepository defines the interface for user repository operations
type IUserRepository interface {
	GetAll() ([]*model.User, error)
	GetById(id int32) (*model.User, error)
	Update(id int32, updates map[string]any) (*model.User, error)
	Delete(id int32) error
}

var _ IUserRepository = (*UserRepository)(nil)

// MockUserRepository is a mock implementation for testing
type MockUserRepository struct {
	GetAllFunc  func() ([]*model.User, error)
	GetByIdFunc func(id int32) (*model.User, error)
	UpdateFunc  func(id int32, updates map[string]any) (*model.User, error)
	DeleteFunc  func(id int32) error
}

var _ IUserRepository = (*MockUserRepository)(nil)

func NewMockUserRepository() *MockUserRepository {
	return &MockUserRepository{}
}

func (m *MockUserRepository) GetAll() ([]*model.User, error) {
	if m.GetAllFunc != nil {
		return m.GetAllFunc()
	}
	return nil, nil
}

func (m *MockUserRepository) GetById(id int32) (*model.User, error) {
	if m.GetByIdFunc != nil {
		return m.GetByIdFunc(id)
	}
	return nil, nil
}

func (m *MockUserRepository) Update(id int32, updates map[string]any) (*model.User, error) {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(id, updates)
	}
	return nil, nil
}

func (m *MockUserRepository) Delete(id int32) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(id)
	}
	return nil
}
