package certificate_controller

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	certificatemodel "github.com/sinaridesa/sinari-api/api/model/certificateModel"
	eventmodel "github.com/sinaridesa/sinari-api/api/model/eventModel"
	"github.com/sinaridesa/sinari-api/common/util"
	"github.com/sinaridesa/sinari-api/type/payload"
	"github.com/sinaridesa/sinari-api/type/shared/model"
)

func newTestApp(certRepo certificatemodel.ICertificateRepository) *fiber.App {
	ctrl := NewCertificateController(certRepo, eventmodel.NewMockEventRepository())

	app := fiber.New()
	app.Post("/certificates", ctrl.Create)
	app.Post("/certificates/batch", ctrl.CreateBatch)
	app.Get("/certificates/verify/:hash", ctrl.Verify)
	app.Patch("/certificates/:id/revoke", ctrl.Revoke)
	app.Get("/certificates/:id", ctrl.GetById)
	app.Delete("/certificates/:id", ctrl.Delete)
	return app
}

func issuedCertificate(id int32) *model.Certificate {
	code := util.CertificateCode(time.Now().Add(time.Duration(id) * time.Millisecond))
	return &model.Certificate{
		ID:              id,
		Name:            "Siti Rahma",
		CertificateCode: code,
		Hash:            util.CertificateHash(code),
		EventID:         1,
		IssuedAt:        time.Now(),
	}
}

func jsonRequest(method, target string, body any) *http.Request {
	var reader io.Reader
	if body != nil {
		raw, _ := json.Marshal(body)
		reader = bytes.NewReader(raw)
	}
	req := httptest.NewRequest(method, target, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	return req
}

func decodeBody(t *testing.T, resp *http.Response) map[string]any {
	t.Helper()
	decoded := make(map[string]any)
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&decoded))
	return decoded
}

func TestCreate_ReturnsIssuedCertificate(t *testing.T) {
	mockRepo := certificatemodel.NewMockCertificateRepository()
	mockRepo.CreateFunc = func(certData payload.CreateCertificatePayload) (*model.Certificate, error) {
		cert := issuedCertificate(1)
		cert.Name = certData.Name
		cert.EventID = certData.EventID
		return cert, nil
	}

	app := newTestApp(mockRepo)

	resp, err := app.Test(jsonRequest(http.MethodPost, "/certificates", fiber.Map{
		"name":    "Siti Rahma",
		"eventId": 7,
	}))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusCreated, resp.StatusCode)

	body := decodeBody(t, resp)
	assert.Equal(t, "Siti Rahma", body["name"])
	assert.Regexp(t, `^SINARI-\d{4}-\d+$`, body["certificate_code"])
	assert.Regexp(t, `^[0-9a-f]{64}$`, body["hash"])
	assert.Equal(t, false, body["revoked"])
}

func TestCreate_MissingName(t *testing.T) {
	mockRepo := certificatemodel.NewMockCertificateRepository()
	app := newTestApp(mockRepo)

	resp, err := app.Test(jsonRequest(http.MethodPost, "/certificates", fiber.Map{"eventId": 7}))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)

	body := decodeBody(t, resp)
	assert.Contains(t, body, "error")
}

func TestCreateBatch_ReturnsAllCertificates(t *testing.T) {
	mockRepo := certificatemodel.NewMockCertificateRepository()
	mockRepo.CreateBatchFunc = func(names []string, eventID int32) ([]*model.Certificate, error) {
		now := time.Now()
		codes := util.BatchCertificateCodes(now, len(names))
		certs := make([]*model.Certificate, len(names))
		for i, name := range names {
			certs[i] = &model.Certificate{
				ID:              int32(i + 1),
				Name:            name,
				CertificateCode: codes[i],
				Hash:            util.CertificateHash(codes[i]),
				EventID:         eventID,
				IssuedAt:        now,
			}
		}
		return certs, nil
	}

	app := newTestApp(mockRepo)

	resp, err := app.Test(jsonRequest(http.MethodPost, "/certificates/batch", fiber.Map{
		"names":   []string{"Andi", "Budi", "Citra"},
		"eventId": 7,
	}))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusCreated, resp.StatusCode)

	var certs []map[string]any
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&certs))
	require.Len(t, certs, 3)

	seen := make(map[string]bool)
	for _, cert := range certs {
		code, _ := cert["certificate_code"].(string)
		assert.False(t, seen[code], "Duplicate code in batch response: %s", code)
		seen[code] = true
	}
}

func TestCreateBatch_EmptyNames(t *testing.T) {
	mockRepo := certificatemodel.NewMockCertificateRepository()
	app := newTestApp(mockRepo)

	for _, names := range [][]string{nil, {}} {
		resp, err := app.Test(jsonRequest(http.MethodPost, "/certificates/batch", fiber.Map{
			"names":   names,
			"eventId": 7,
		}))
		require.NoError(t, err)
		assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)

		body := decodeBody(t, resp)
		assert.Equal(t, `Invalid request body. "names" must be a non-empty array.`, body["error"])
	}
}

func TestVerify_Outcomes(t *testing.T) {
	valid := issuedCertificate(1)
	revoked := issuedCertificate(2)
	revoked.Revoked = true

	mockRepo := certificatemodel.NewMockCertificateRepository()
	mockRepo.GetByHashFunc = func(hash string) (*model.Certificate, error) {
		switch hash {
		case valid.Hash:
			return valid, nil
		case revoked.Hash:
			return revoked, nil
		default:
			return nil, nil
		}
	}

	app := newTestApp(mockRepo)

	tests := []struct {
		name       string
		hash       string
		wantStatus int
		check      func(t *testing.T, body map[string]any)
	}{
		{
			name:       "valid certificate",
			hash:       valid.Hash,
			wantStatus: fiber.StatusOK,
			check: func(t *testing.T, body map[string]any) {
				assert.Equal(t, true, body["valid"])
				assert.NotNil(t, body["certificate"])
			},
		},
		{
			name:       "revoked certificate",
			hash:       revoked.Hash,
			wantStatus: fiber.StatusBadRequest,
			check: func(t *testing.T, body map[string]any) {
				assert.Equal(t, "Certificate has been revoked", body["error"])
			},
		},
		{
			name:       "unknown hash",
			hash:       "deadbeef",
			wantStatus: fiber.StatusNotFound,
			check: func(t *testing.T, body map[string]any) {
				assert.Equal(t, false, body["valid"])
				assert.Equal(t, "Certificate not found", body["error"])
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/certificates/verify/"+tt.hash, nil))
			require.NoError(t, err)
			assert.Equal(t, tt.wantStatus, resp.StatusCode)
			tt.check(t, decodeBody(t, resp))
		})
	}
}

func TestRevoke_Transitions(t *testing.T) {
	cert := issuedCertificate(1)

	mockRepo := certificatemodel.NewMockCertificateRepository()
	mockRepo.RevokeFunc = func(id int32) (*model.Certificate, error) {
		if id != cert.ID {
			return nil, certificatemodel.ErrCertificateNotFound
		}
		if cert.Revoked {
			return nil, certificatemodel.ErrAlreadyRevoked
		}
		cert.Revoked = true
		return cert, nil
	}

	app := newTestApp(mockRepo)

	resp, err := app.Test(jsonRequest(http.MethodPatch, "/certificates/1/revoke", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	body := decodeBody(t, resp)
	assert.Equal(t, true, body["revoked"])

	// Revoking twice must fail explicitly.
	resp, err = app.Test(jsonRequest(http.MethodPatch, "/certificates/1/revoke", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)

	body = decodeBody(t, resp)
	assert.Equal(t, "Certificate has already been revoked", body["error"])

	resp, err = app.Test(jsonRequest(http.MethodPatch, "/certificates/42/revoke", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)
}

// TestRevoke_MountedOnPatch pins the route method: the revoke transition is
// reachable with PATCH and with nothing else.
func TestRevoke_MountedOnPatch(t *testing.T) {
	cert := issuedCertificate(1)

	mockRepo := certificatemodel.NewMockCertificateRepository()
	mockRepo.RevokeFunc = func(id int32) (*model.Certificate, error) {
		cert.Revoked = true
		return cert, nil
	}

	app := newTestApp(mockRepo)

	resp, err := app.Test(jsonRequest(http.MethodPatch, "/certificates/1/revoke", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	resp, err = app.Test(jsonRequest(http.MethodPost, "/certificates/1/revoke", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusMethodNotAllowed, resp.StatusCode)
}

func TestGetById_NotFound(t *testing.T) {
	mockRepo := certificatemodel.NewMockCertificateRepository()
	app := newTestApp(mockRepo)

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/certificates/99", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)

	body := decodeBody(t, resp)
	assert.Equal(t, "Certificate not found", body["error"])
}

func TestDelete_Responses(t *testing.T) {
	cert := issuedCertificate(1)

	mockRepo := certificatemodel.NewMockCertificateRepository()
	mockRepo.DeleteFunc = func(id int32) (*model.Certificate, error) {
		if id != cert.ID {
			return nil, certificatemodel.ErrCertificateNotFound
		}
		return cert, nil
	}

	app := newTestApp(mockRepo)

	resp, err := app.Test(httptest.NewRequest(http.MethodDelete, "/certificates/1", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusNoContent, resp.StatusCode)

	resp, err = app.Test(httptest.NewRequest(http.MethodDelete, "/certificates/42", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)
}
