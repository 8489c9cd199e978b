package integration

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	coursemodel "github.com/sinaridesa/sinari-api/api/model/courseModel"
	eventmodel "github.com/sinaridesa/sinari-api/api/model/eventModel"
	"github.com/sinaridesa/sinari-api/test/helpers"
	"github.com/sinaridesa/sinari-api/type/shared/model"
)

func newTestEvent(title string) *model.Event {
	return &model.Event{
		Title:        title,
		Date:         time.Now(),
		Location:     "Desa Sinar",
		Participants: 25,
		Thumbnail:    "https://storage.example.com/uploads/events/thumb.jpg",
	}
}

// TestEventSlug_ConflictGetsNumericSuffix checks that colliding titles get
// slug, slug-2, slug-3 in creation order.
func TestEventSlug_ConflictGetsNumericSuffix(t *testing.T) {
	container := helpers.SetupTestDatabase(t)
	repo := eventmodel.NewEventRepository(container.DB)

	first, err := repo.Create(newTestEvent("Pelatihan Digital Desa"))
	require.NoError(t, err)
	assert.Equal(t, "pelatihan-digital-desa", first.Slug)

	second, err := repo.Create(newTestEvent("Pelatihan Digital Desa"))
	require.NoError(t, err)
	assert.Equal(t, "pelatihan-digital-desa-2", second.Slug)

	third, err := repo.Create(newTestEvent("Pelatihan Digital Desa"))
	require.NoError(t, err)
	assert.Equal(t, "pelatihan-digital-desa-3", third.Slug)

	assert.NotEqual(t, first.ID, second.ID)
	assert.NotEqual(t, second.ID, third.ID)
}

// TestEventSlug_EmptyTitleFallsBack checks the fallback base for titles that
// slugify to nothing.
func TestEventSlug_EmptyTitleFallsBack(t *testing.T) {
	container := helpers.SetupTestDatabase(t)
	repo := eventmodel.NewEventRepository(container.DB)

	created, err := repo.Create(newTestEvent("!!!"))
	require.NoError(t, err)
	assert.Equal(t, "event", created.Slug)

	again, err := repo.Create(newTestEvent("???"))
	require.NoError(t, err)
	assert.Equal(t, "event-2", again.Slug)
}

// TestCourseSlug_ConflictGetsNumericSuffix checks the same policy on courses.
func TestCourseSlug_ConflictGetsNumericSuffix(t *testing.T) {
	container := helpers.SetupTestDatabase(t)
	repo := coursemodel.NewCourseRepository(container.DB)

	author := &model.User{
		Email:    "author@sinaridesa.id",
		Name:     "Penulis",
		Password: "not-a-real-hash",
	}
	require.NoError(t, container.DB.Create(author).Error)

	first, err := repo.Create(&model.Course{
		Title:    "Belajar Pertanian Organik",
		Uploader: "Penulis",
		AuthorID: author.ID,
	})
	require.NoError(t, err)
	assert.Equal(t, "belajar-pertanian-organik", first.Slug)

	second, err := repo.Create(&model.Course{
		Title:    "Belajar Pertanian Organik",
		Uploader: "Penulis",
		AuthorID: author.ID,
	})
	require.NoError(t, err)
	assert.Equal(t, "belajar-pertanian-organik-2", second.Slug)
}
