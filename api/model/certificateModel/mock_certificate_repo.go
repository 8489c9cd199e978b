package certificatemodel

import (
	"github.com/sinaridesa/sinari-api/type/payload"
	"github.com/sinaridesa/sinari-api/type/shared/model"
)

// ICertificateRepository defines the interface for certificate repository operations
type ICertificateRepository interface {
	Create(certData payload.CreateCertificatePayload) (*model.Certificate, error)
	CreateBatch(names []string, eventID int32) ([]*model.Certificate, error)
	GetAll() ([]*model.Certificate, error)
	GetById(id int32) (*model.Certificate, error)
	GetByHash(hash string) (*model.Certificate, error)
	Search(query string) ([]*model.Certificate, error)
	Update(id int32, certData payload.UpdateCertificatePayload) (*model.Certificate, error)
	Revoke(id int32) (*model.Certificate, error)
	Delete(id int32) (*model.Certificate, error)
}

// Ensure CertificateRepository implements ICertificateRepository
var _ ICertificateRepository = (*CertificateRepository)(nil)

// MockCertificateRepository is a mock implementation for testing
type MockCertificateRepository struct {
	CreateFunc      func(certData payload.CreateCertificatePayload) (*model.Certificate, error)
	CreateBatchFunc func(names []string, eventID int32) ([]*model.Certificate, error)
	GetAllFunc      func() ([]*model.Certificate, error)
	GetByIdFunc     func(id int32) (*model.Certificate, error)
	GetByHashFunc   func(hash string) (*model.Certificate, error)
	SearchFunc      func(query string) ([]*model.Certificate, error)
	UpdateFunc      func(id int32, certData payload.UpdateCertificatePayload) (*model.Certificate, error)
	RevokeFunc      func(id int32) (*model.Certificate, error)
	DeleteFunc      func(id int32) (*model.Certificate, error)
}

// Ensure MockCertificateRepository implements ICertificateRepository
var _ ICertificateRepository = (*MockCertificateRepository)(nil)

// NewMockCertificateRepository creates a new mock repository
func NewMockCertificateRepository() *MockCertificateRepository {
	return &MockCertificateRepository{}
}

func (m *MockCertificateRepository) Create(certData payload.CreateCertificatePayload) (*model.Certificate, error) {
	if m.CreateFunc != nil {
		return m.CreateFunc(certData)
	}
	return nil, nil
}

func (m *MockCertificateRepository) CreateBatch(names []string, eventID int32) ([]*model.Certificate, error) {
	if m.CreateBatchFunc != nil {
		return m.CreateBatchFunc(names, eventID)
	}
	return nil, nil
}

func (m *MockCertificateRepository) GetAll() ([]*model.Certificate, error) {
	if m.GetAllFunc != nil {
		return m.GetAllFunc()
	}
	return nil, nil
}

func (m *MockCertificateRepository) GetById(id int32) (*model.Certificate, error) {
	if m.GetByIdFunc != nil {
		return m.GetByIdFunc(id)
	}
	return nil, nil
}

func (m *MockCertificateRepository) GetByHash(hash string) (*model.Certificate, error) {
	if m.GetByHashFunc != nil {
		return m.GetByHashFunc(hash)
	}
	return nil, nil
}

func (m *MockCertificateRepository) Search(query string) ([]*model.Certificate, error) {
	if m.SearchFunc != nil {
		return m.SearchFunc(query)
	}
	return nil, nil
}

func (m *MockCertificateRepository) Update(id int32, certData payload.UpdateCertificatePayload) (*model.Certificate, error) {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(id, certData)
	}
	return nil, nil
}

func (m *MockCertificateRepository) Revoke(id int32) (*model.Certificate, error) {
	if m.RevokeFunc != nil {
		return m.RevokeFunc(id)
	}
	return nil, nil
}

func (m *MockCertificateRepository) Delete(id int32) (*model.Certificate, error) {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(id)
	}
	return nil, nil
}
