package dashboard

import (
	"context"

	"golang.org/x/sync/errgroup"

	"github.com/tabacalera-hn/attendance-backend/internal/domain/dashboard"
	"github.com/tabacalera-hn/attendance-backend/internal/pkg/clock"
)

const recentActivityLimit = 5

type Service struct {
	dashboardRepo dashboard.Repository
	clock         clock.Clock
}

func NewService(dashboardRepo dashboard.Repository, clk clock.Clock) *Service {
	return &Service{dashboardRepo: dashboardRepo, clock: clk}
}

// Stats gathers the dashboard counters. The queries run in parallel;
// the counters are informational and do not need a shared snapshot.
func (s *Service) Stats(ctx context.Context) (*dashboard.Stats, error) {
	now := s.clock.Now()
	today := clock.Today(s.clock)
	weekAgo := now.AddDate(0, 0, -6).Format("2006-01-02")

	stats := &dashboard.Stats{}

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		count, err := s.dashboardRepo.CountActiveEmployees(gctx)
		stats.ActiveEmployees = count
		return err
	})

	g.Go(func() error {
		count, err := s.dashboardRepo.CountAttendanceByDate(gctx, today)
		stats.TodayAttendance = count
		return err
	})

	g.Go(func() error {
		count, err := s.dashboardRepo.CountPendingExits(gctx, today)
		stats.PendingExits = count
		return err
	})

	g.Go(func() error {
		employees, hours, err := s.dashboardRepo.WeekActivity(gctx, weekAgo, today)
		stats.WeekEmployees = employees
		stats.WeekTotalHours = hours
		return err
	})

	g.Go(func() error {
		activity, err := s.dashboardRepo.RecentActivity(gctx, today, recentActivityLimit)
		stats.RecentActivity = activity
		return err
	})

	if err := g.Wait(); err != nil {
		return nil, err
	}

	if stats.RecentActivity == nil {
		stats.RecentActivity = []dashboard.Activity{}
	}

	return stats, nil
}
