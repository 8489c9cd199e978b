package integration

import (
	"errors"
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	certificatemodel "github.com/sinaridesa/sinari-api/api/model/certificateModel"
	"github.com/sinaridesa/sinari-api/common/util"
	"github.com/sinaridesa/sinari-api/test/helpers"
	"github.com/sinaridesa/sinari-api/type/payload"
	"github.com/sinaridesa/sinari-api/type/shared/model"
)

var certificateCodePattern = regexp.MustCompile(`^SINARI-\d{4}-\d+(-[a-z0-9]{6})?$`)

// TestCertificate_IssueGeneratesCodeAndHash checks that issuance derives the
// code and hash server-side and that the hash resolves back to the record.
func TestCertificate_IssueGeneratesCodeAndHash(t *testing.T) {
	container := helpers.SetupTestDatabase(t)
	repo := certificatemodel.NewCertificateRepository(container.DB)

	event := helpers.SeedTestEvent(t, container.DB)

	cert, err := repo.Create(payload.CreateCertificatePayload{
		Name:    "Siti Rahma",
		EventID: event.ID,
	})
	require.NoError(t, err, "Failed to issue certificate")

	assert.Regexp(t, certificateCodePattern, cert.CertificateCode)
	assert.Equal(t, util.CertificateHash(cert.CertificateCode), cert.Hash)
	assert.False(t, cert.Revoked)
	assert.False(t, cert.IssuedAt.IsZero())

	// The verification lookup must return the same record with its event.
	found, err := repo.GetByHash(cert.Hash)
	require.NoError(t, err)
	require.NotNil(t, found, "Issued certificate not found by hash")

	assert.Equal(t, cert.ID, found.ID)
	assert.Equal(t, "Siti Rahma", found.Name)
	require.NotNil(t, found.Event, "Event should be preloaded on hash lookup")
	assert.Equal(t, event.Title, found.Event.Title)
}

// TestCertificate_BatchIssuesDistinctCodes checks that a batch persists one
// certificate per name with pairwise distinct codes and hashes.
func TestCertificate_BatchIssuesDistinctCodes(t *testing.T) {
	container := helpers.SetupTestDatabase(t)
	repo := certificatemodel.NewCertificateRepository(container.DB)

	event := helpers.SeedTestEvent(t, container.DB)

	names := []string{"Andi", "Budi", "Citra", "Dewi", "Eko"}
	certs, err := repo.CreateBatch(names, event.ID)
	require.NoError(t, err, "Failed to issue batch")
	require.Len(t, certs, len(names))

	seenCodes := make(map[string]bool)
	seenHashes := make(map[string]bool)
	for i, cert := range certs {
		assert.Equal(t, names[i], cert.Name)
		assert.Regexp(t, certificateCodePattern, cert.CertificateCode)
		assert.Equal(t, util.CertificateHash(cert.CertificateCode), cert.Hash)
		assert.False(t, seenCodes[cert.CertificateCode], "Duplicate code in batch: %s", cert.CertificateCode)
		assert.False(t, seenHashes[cert.Hash], "Duplicate hash in batch: %s", cert.Hash)
		seenCodes[cert.CertificateCode] = true
		seenHashes[cert.Hash] = true

		helpers.AssertRecordExists(t, container.DB, &model.Certificate{}, "certificate_code = ?", cert.CertificateCode)
	}
}

// TestCertificate_BatchRollsBackOnFailure fails the insert of the last row
// only, after the earlier rows have already been written inside the
// transaction, and checks that none of them survive the rollback.
func TestCertificate_BatchRollsBackOnFailure(t *testing.T) {
	container := helpers.SetupTestDatabase(t)
	repo := certificatemodel.NewCertificateRepository(container.DB)

	event := helpers.SeedTestEvent(t, container.DB)

	names := []string{"Fajar", "Gita", "Hadi"}

	inserts := 0
	err := container.DB.Callback().Create().Before("gorm:create").Register("failLastCertificateInsert", func(tx *gorm.DB) {
		if _, ok := tx.Statement.Dest.(*model.Certificate); !ok {
			return
		}
		inserts++
		if inserts == len(names) {
			tx.AddError(errors.New("storage failure on final row"))
		}
	})
	require.NoError(t, err)
	t.Cleanup(func() {
		if removeErr := container.DB.Callback().Create().Remove("failLastCertificateInsert"); removeErr != nil {
			t.Logf("Failed to remove create callback: %v", removeErr)
		}
	})

	certs, batchErr := repo.CreateBatch(names, event.ID)

	require.Error(t, batchErr, "Batch should fail when the last insert fails")
	assert.Nil(t, certs)
	assert.Equal(t, len(names), inserts, "Failure should have hit the last row, not an earlier one")

	// The first rows were inserted before the failure; the rollback must
	// take them back out.
	for _, name := range names {
		helpers.AssertRecordNotExists(t, container.DB, &model.Certificate{}, "name = ?", name)
	}
}

// TestCertificate_VerifyOutcomes covers the three verification results:
// unknown hash, revoked certificate, valid certificate.
func TestCertificate_VerifyOutcomes(t *testing.T) {
	container := helpers.SetupTestDatabase(t)
	repo := certificatemodel.NewCertificateRepository(container.DB)

	event := helpers.SeedTestEvent(t, container.DB)

	// Unknown hash resolves to (nil, nil), not an error.
	missing, err := repo.GetByHash("deadbeef")
	require.NoError(t, err)
	assert.Nil(t, missing)

	valid, err := repo.Create(payload.CreateCertificatePayload{Name: "Intan", EventID: event.ID})
	require.NoError(t, err)

	revoked, err := repo.Create(payload.CreateCertificatePayload{Name: "Joko", EventID: event.ID})
	require.NoError(t, err)
	_, err = repo.Revoke(revoked.ID)
	require.NoError(t, err)

	found, err := repo.GetByHash(valid.Hash)
	require.NoError(t, err)
	require.NotNil(t, found)
	assert.False(t, found.Revoked)

	found, err = repo.GetByHash(revoked.Hash)
	require.NoError(t, err)
	require.NotNil(t, found)
	assert.True(t, found.Revoked, "Revocation must be visible to verification")
}

// TestCertificate_RevokeIsOneWay checks the already-revoked guard.
func TestCertificate_RevokeIsOneWay(t *testing.T) {
	container := helpers.SetupTestDatabase(t)
	repo := certificatemodel.NewCertificateRepository(container.DB)

	event := helpers.SeedTestEvent(t, container.DB)

	cert, err := repo.Create(payload.CreateCertificatePayload{Name: "Kartika", EventID: event.ID})
	require.NoError(t, err)

	revoked, err := repo.Revoke(cert.ID)
	require.NoError(t, err, "First revocation should succeed")
	assert.True(t, revoked.Revoked)

	// The returned record reflects stored state, audit timestamp included.
	stored, err := repo.GetById(cert.ID)
	require.NoError(t, err)
	require.NotNil(t, stored)
	assert.True(t, revoked.UpdatedAt.Equal(stored.UpdatedAt), "Revoke should return the post-update record")

	_, err = repo.Revoke(cert.ID)
	require.ErrorIs(t, err, certificatemodel.ErrAlreadyRevoked)

	_, err = repo.Revoke(999999)
	require.ErrorIs(t, err, certificatemodel.ErrCertificateNotFound)
}

// TestCertificate_DeleteRemovesRecord checks hard deletion and the missing-id
// sentinel.
func TestCertificate_DeleteRemovesRecord(t *testing.T) {
	container := helpers.SetupTestDatabase(t)
	repo := certificatemodel.NewCertificateRepository(container.DB)

	event := helpers.SeedTestEvent(t, container.DB)

	cert, err := repo.Create(payload.CreateCertificatePayload{Name: "Lestari", EventID: event.ID})
	require.NoError(t, err)

	deleted, err := repo.Delete(cert.ID)
	require.NoError(t, err)
	assert.Equal(t, cert.ID, deleted.ID)

	helpers.AssertRecordNotExists(t, container.DB, &model.Certificate{}, "id = ?", cert.ID)

	_, err = repo.Delete(cert.ID)
	require.ErrorIs(t, err, certificatemodel.ErrCertificateNotFound)
}
