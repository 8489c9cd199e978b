package certificatemodel

import (
	"errors"
	"log/slog"
	"time"

	"github.com/sinaridesa/sinari-api/common/util"
	"github.com/sinaridesa/sinari-api/type/payload"
	"github.com/sinaridesa/sinari-api/type/shared/model"
	"gorm.io/gorm"
)

var (
	ErrCertificateNotFound = errors.New("certificate not found")
	ErrAlreadyRevoked      = errors.New("certificate has already been revoked")
)

// CertificateRepository owns certificate persistence: code/hash generation on
// create, atomic batch issuance, revocation and hash lookup for verification.
type CertificateRepository struct {
	db *gorm.DB
}

func NewCertificateRepository(db *gorm.DB) *CertificateRepository {
	return &CertificateRepository{db: db}
}

func (r *CertificateRepository) Create(certData payload.CreateCertificatePayload) (*model.Certificate, error) {
	now := time.Now()
	code := util.CertificateCode(now)

	cert := &model.Certificate{
		Name:            certData.Name,
		CertificateCode: code,
		Hash:            util.CertificateHash(code),
		EventID:         certData.EventID,
		IssuedAt:        now,
	}

	if createErr := r.db.Create(cert).Error; createErr != nil {
		slog.Error("Certificate Create", "error", createErr, "name", certData.Name, "event_id", certData.EventID)
		return nil, createErr
	}

	return cert, nil
}

// CreateBatch issues one certificate per name inside a single transaction.
// Either every row commits or none do: a partial batch would leave the caller
// unable to reconcile a recipient roster against issued certificates.
func (r *CertificateRepository) CreateBatch(names []string, eventID int32) ([]*model.Certificate, error) {
	now := time.Now()
	codes := util.BatchCertificateCodes(now, len(names))

	certs := make([]*model.Certificate, len(names))
	for i, name := range names {
		certs[i] = &model.Certificate{
			Name:            name,
			CertificateCode: codes[i],
			Hash:            util.CertificateHash(codes[i]),
			EventID:         eventID,
			IssuedAt:        now,
		}
	}

	txErr := r.db.Transaction(func(tx *gorm.DB) error {
		for _, cert := range certs {
			if err := tx.Create(cert).Error; err != nil {
				return err
			}
		}
		return nil
	})

	if txErr != nil {
		slog.Error("Certificate CreateBatch rolled back", "error", txErr, "count", len(names), "event_id", eventID)
		return nil, txErr
	}

	return certs, nil
}

func (r *CertificateRepository) GetAll() ([]*model.Certificate, error) {
	var certs []*model.Certificate

	queryErr := r.db.Order("updated_at DESC").Find(&certs).Error
	if queryErr != nil {
		slog.Error("Certificate GetAll", "error", queryErr)
		return nil, queryErr
	}

	return certs, nil
}

func (r *CertificateRepository) GetById(id int32) (*model.Certificate, error) {
	cert := new(model.Certificate)

	queryErr := r.db.Where("id = ?", id).First(cert).Error
	if queryErr != nil {
		if errors.Is(queryErr, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		slog.Error("Certificate GetById", "error", queryErr, "cert_id", id)
		return nil, queryErr
	}

	return cert, nil
}

// GetByHash is the verification lookup. The event is preloaded for display
// context; a missing record comes back as (nil, nil) so the caller can
// distinguish not-found from store failure.
func (r *CertificateRepository) GetByHash(hash string) (*model.Certificate, error) {
	cert := new(model.Certificate)

	queryErr := r.db.Preload("Event").Where("hash = ?", hash).First(cert).Error
	if queryErr != nil {
		if errors.Is(queryErr, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		slog.Error("Certificate GetByHash", "error", queryErr)
		return nil, queryErr
	}

	return cert, nil
}

func (r *CertificateRepository) Search(query string) ([]*model.Certificate, error) {
	var certs []*model.Certificate

	pattern := "%" + query + "%"
	queryErr := r.db.
		Where("name ILIKE ? OR certificate_code ILIKE ?", pattern, pattern).
		Order("updated_at DESC").
		Find(&certs).Error

	if queryErr != nil {
		slog.Error("Certificate Search", "error", queryErr, "query", query)
		return nil, queryErr
	}

	return certs, nil
}

// Update applies a partial field update. Note that a revoked value in the
// payload is written as-is, without the already-revoked guard the dedicated
// Revoke transition enforces.
func (r *CertificateRepository) Update(id int32, certData payload.UpdateCertificatePayload) (*model.Certificate, error) {
	cert := new(model.Certificate)

	queryErr := r.db.Where("id = ?", id).First(cert).Error
	if queryErr != nil {
		if errors.Is(queryErr, gorm.ErrRecordNotFound) {
			return nil, ErrCertificateNotFound
		}
		slog.Error("Certificate Update find", "error", queryErr, "cert_id", id)
		return nil, queryErr
	}

	updates := make(map[string]any)
	if certData.Name != nil {
		updates["name"] = *certData.Name
	}
	if certData.EventID != nil {
		updates["event_id"] = *certData.EventID
	}
	if certData.Revoked != nil {
		updates["revoked"] = *certData.Revoked
	}

	if len(updates) == 0 {
		return cert, nil
	}

	if updateErr := r.db.Model(cert).Updates(updates).Error; updateErr != nil {
		slog.Error("Certificate Update", "error", updateErr, "cert_id", id)
		return nil, updateErr
	}

	updated := new(model.Certificate)
	if fetchErr := r.db.Where("id = ?", id).First(updated).Error; fetchErr != nil {
		slog.Error("Certificate Update fetch", "error", fetchErr, "cert_id", id)
		return nil, fetchErr
	}

	return updated, nil
}

// Revoke is the one-way invalidation transition. Revoking a certificate that
// is already revoked fails with ErrAlreadyRevoked so callers get an explicit
// idempotency signal rather than a silent no-op.
func (r *CertificateRepository) Revoke(id int32) (*model.Certificate, error) {
	cert := new(model.Certificate)

	queryErr := r.db.Where("id = ?", id).First(cert).Error
	if queryErr != nil {
		if errors.Is(queryErr, gorm.ErrRecordNotFound) {
			return nil, ErrCertificateNotFound
		}
		slog.Error("Certificate Revoke find", "error", queryErr, "cert_id", id)
		return nil, queryErr
	}

	if cert.Revoked {
		return nil, ErrAlreadyRevoked
	}

	if updateErr := r.db.Model(cert).Update("revoked", true).Error; updateErr != nil {
		slog.Error("Certificate Revoke", "error", updateErr, "cert_id", id)
		return nil, updateErr
	}

	revoked := new(model.Certificate)
	if fetchErr := r.db.Where("id = ?", id).First(revoked).Error; fetchErr != nil {
		slog.Error("Certificate Revoke fetch", "error", fetchErr, "cert_id", id)
		return nil, fetchErr
	}

	return revoked, nil
}

func (r *CertificateRepository) Delete(id int32) (*model.Certificate, error) {
	cert := new(model.Certificate)

	queryErr := r.db.Where("id = ?", id).First(cert).Error
	if queryErr != nil {
		if errors.Is(queryErr, gorm.ErrRecordNotFound) {
			return nil, ErrCertificateNotFound
		}
		slog.Error("Certificate Delete find", "error", queryErr, "cert_id", id)
		return nil, queryErr
	}

	if deleteErr := r.db.Delete(cert).Error; deleteErr != nil {
		slog.Error("Certificate Delete", "error", deleteErr, "cert_id", id)
		return nil, deleteErr
	}

	return cert, nil
}
