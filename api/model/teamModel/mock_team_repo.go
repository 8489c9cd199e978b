package teammodel

import (
	"github.com/sinaridesa/sinari-api/type/shared/model"
)

// ITeamRepository defines the interface for team repository operations
type ITeamRepository interface {
	Create(team *model.Team, skillNames []string) (*model.Team, error)
	List(page int, limit int, search string) ([]*model.Team, int64, error)
	GetById(id int32) (*model.Team, error)
	Update(id int32, updates map[string]any, skillNames []string) (*model.Team, error)
	Delete(id int32) error
}

var _ ITeamRepository = (*TeamRepository)(nil)

// MockTeamRepository is a mock implementation for testing
type MockTeamRepository struct {
	CreateFunc  func(team *model.Team, skillNames []string) (*model.Team, error)
	ListFunc    func(page int, limit int, search string) ([]*model.Team, int64, error)
	GetByIdFunc func(id int32) (*model.Team, error)
	UpdateFunc  func(id int32, updates map[string]any, skillNames []string) (*model.Team, error)
	DeleteFunc  func(id int32) error
}

var _ ITeamRepository = (*MockTeamRepository)(nil)

func NewMockTeamRepository() *MockTeamRepository {
	return &MockTeamRepository{}
}

func (m *MockTeamRepository) Create(team *model.Team, skillNames []string) (*model.Team, error) {
	if m.CreateFunc != nil {
		return m.CreateFunc(team, skillNames)
	}
	return nil, nil
}

func (m *MockTeamRepository) List(page int, limit int, search string) ([]*model.Team, int64, error) {
	if m.ListFunc != nil {
		return m.ListFunc(page, limit, search)
	}
	return nil, 0, nil
}

func (m *MockTeamRepository) GetById(id int32) (*model.Team, error) {
	if m.GetByIdFunc != nil {
		return m.GetByIdFunc(id)
	}
	return nil, nil
}

func (m *MockTeamRepository) Update(id int32, updates map[string]any, skillNames []string) (*model.Team, error) {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(id, updates, skillNames)
	}
	return nil, nil
}

func (m *MockTeamRepository) Delete(id int32) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(id)
	}
	return nil
}
