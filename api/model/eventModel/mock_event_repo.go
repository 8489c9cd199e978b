package eventmodel

import (
	"github.com/sinaridesa/sinari-api/type/shared/model"
)

// IEventRepository defines the interface for event repository operations
type IEventRepository interface {
	Create(event *model.Event) (*model.Event, error)
	GetAll() ([]*model.Event, error)
	GetById(id int32) (*model.Event, error)
	Update(id int32, updates map[string]any) (*model.Event, error)
	Delete(id int32) error
}

var _ IEventRepository = (*EventRepository)(nil)

// MockEventRepository is a mock implementation for testing
type MockEventRepository struct {
	CreateFunc  func(event *model.Event) (*model.Event, error)
	GetAllFunc  func() ([]*model.Event, error)
	GetByIdFunc func(id int32) (*model.Event, error)
	UpdateFunc  func(id int32, updates map[string]any) (*model.Event, error)
	DeleteFunc  func(id int32) error
}

var _ IEventRepository = (*MockEventRepository)(nil)

func NewMockEventRepository() *MockEventRepository {
	return &MockEventRepository{}
}

func (m *MockEventRepository) Create(event *model.Event) (*model.Event, error) {
	if m.CreateFunc != nil {
		return m.CreateFunc(event)
	}
	return nil, nil
}

func (m *MockEventRepository) GetAll() ([]*model.Event, error) {
	if m.GetAllFunc != nil {
		return m.GetAllFunc()
	}
	return nil, nil
}

func (m *MockEventRepository) GetById(id int32) (*model.Event, error) {
	if m.GetByIdFunc != nil {
		return m.GetByIdFunc(id)
	}
	return nil, nil
}

func (m *MockEventRepository) Update(id int32, updates map[string]any) (*model.Event, error) {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(id, updates)
	}
	return nil, nil
}

func (m *MockEventRepository) Delete(id int32) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(id)
	}
	return nil
}
