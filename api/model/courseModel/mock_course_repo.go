package coursemodel

import (
	"github.com/sinaridesa/sinari-api/type/shared/model"
)

// ICourseRepository defines the interface for course repository operations
type ICourseRepository interface {
	Create(course *model.Course) (*model.Course, error)
	GetAll() ([]*model.Course, error)
	GetById(id int32) (*model.Course, error)
	Update(id int32, updates map[string]any) (*model.Course, error)
	Delete(id int32) error
}

var _ ICourseRepository = (*CourseRepository)(nil)

// MockCourseRepository is a mock implementation for testing
type MockCourseRepository struct {
	CreateFunc  func(course *model.Course) (*model.Course, error)
	GetAllFunc  func() ([]*model.Course, error)
	GetByIdFunc func(id int32) (*model.Course, error)
	UpdateFunc  func(id int32, updates map[string]any) (*model.Course, error)
	DeleteFunc  func(id int32) error
}

var _ ICourseRepository = (*MockCourseRepository)(nil)

func NewMockCourseRepository() *MockCourseRepository {
	return &MockCourseRepository{}
}

func (m *MockCourseRepository) Create(course *model.Course) (*model.Course, error) {
	if m.CreateFunc != nil {
		return m.CreateFunc(course)
	}
	return nil, nil
}

func (m *MockCourseRepository) GetAll() ([]*model.Course, error) {
	if m.GetAllFunc != nil {
		return m.GetAllFunc()
	}
	return nil, nil
}

func (m *MockCourseRepository) GetById(id int32) (*model.Course, error) {
	if m.GetByIdFunc != nil {
		return m.GetByIdFunc(id)
	}
	return nil, nil
}

func (m *MockCourseRepository) Update(id int32, updates map[string]any) (*model.Course, error) {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(id, updates)
	}
	return nil, nil
}

func (m *MockCourseRepository) Delete(id int32) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(id)
	}
	return nil
}
