package dashboardmodel

import (
	"log/slog"
	"time"

	"github.com/sinaridesa/sinari-api/type/payload"
	"github.com/sinaridesa/sinari-api/type/shared/model"
	"golang.org/x/sync/errgroup"
	"gorm.io/gorm"
)

// IDashboardRepository defines the interface for dashboard aggregate queries
type IDashboardRepository interface {
	Stats() (*payload.DashboardStats, error)
}

type DashboardRepository struct {
	db *gorm.DB
}

var _ IDashboardRepository = (*DashboardRepository)(nil)

func NewDashboardRepository(db *gorm.DB) *DashboardRepository {
	return &DashboardRepository{db: db}
}

// Stats collects entity counts for the admin dashboard. The twelve counts are
// independent lookups, so they are issued concurrently and awaited jointly.
func (r *DashboardRepository) Stats() (*payload.DashboardStats, error) {
	now := time.Now()
	sevenDaysAgo := now.AddDate(0, 0, -7)
	thirtyDaysAgo := now.AddDate(0, 0, -30)
	ninetyDaysAgo := now.AddDate(0, 0, -90)

	stats := new(payload.DashboardStats)

	count := func(dst *int64, entity any, since *time.Time) func() error {
		return func() error {
			query := r.db.Model(entity)
			if since != nil {
				query = query.Where("created_at >= ?", *since)
			}
			return query.Count(dst).Error
		}
	}

	g := new(errgroup.Group)

	g.Go(count(&stats.Total.Teams, &model.Team{}, nil))
	g.Go(count(&stats.Total.Courses, &model.Course{}, nil))
	g.Go(count(&stats.Total.Events, &model.Event{}, nil))

	g.Go(count(&stats.Last7Days.Teams, &model.Team{}, &sevenDaysAgo))
	g.Go(count(&stats.Last7Days.Courses, &model.Course{}, &sevenDaysAgo))
	g.Go(count(&stats.Last7Days.Events, &model.Event{}, &sevenDaysAgo))

	g.Go(count(&stats.Last30Days.Teams, &model.Team{}, &thirtyDaysAgo))
	g.Go(count(&stats.Last30Days.Courses, &model.Course{}, &thirtyDaysAgo))
	g.Go(count(&stats.Last30Days.Events, &model.Event{}, &thirtyDaysAgo))

	g.Go(count(&stats.Last90Days.Teams, &model.Team{}, &ninetyDaysAgo))
	g.Go(count(&stats.Last90Days.Courses, &model.Course{}, &ninetyDaysAgo))
	g.Go(count(&stats.Last90Days.Events, &model.Event{}, &ninetyDaysAgo))

	if waitErr := g.Wait(); waitErr != nil {
		slog.Error("Dashboard Stats", "error", waitErr)
		return nil, waitErr
	}

	return stats, nil
}

// MockDashboardRepository is a mock implementation for testing
type MockDashboardRepository struct {
	StatsFunc func() (*payload.DashboardStats, error)
}

var _ IDashboardRepository = (*MockDashboardRepository)(nil)

func NewMockDashboardRepository() *MockDashboardRepository {
	return &MockDashboardRepository{}
}

func (m *MockDashboardRepository) Stats() (*payload.DashboardStats, error) {
	if m.StatsFunc != nil {
		return m.StatsFunc()
	}
	return nil, nil
}
