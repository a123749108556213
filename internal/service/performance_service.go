package service

import (
	"cmp"
	"context"
	"errors"
	"fmt"
	"slices"
	"strings"
	"time"

	"circus-admin/internal/model"
	"circus-admin/internal/repository"
	"circus-admin/internal/security"
	apperrors "circus-admin/pkg/app_errors"
	"circus-admin/pkg/logger"

	"go.uber.org/zap"
)

type PerformanceService interface {
	// List 先更新過期演出的狀態，再依角色、日期區間、營收排序
	List(ctx context.Context, principal *security.Principal, query model.PerformanceListQuery) ([]*model.Performance, error)
	FindByID(ctx context.Context, id int64) (*model.Performance, error)
	Save(ctx context.Context, performance *model.Performance) (*model.Performance, error)
	Delete(ctx context.Context, id int64) error
	// Revenue 即時加總該場演出所有票券的 total_price
	Revenue(ctx context.Context, id int64) (int64, error)
	// RefreshStatuses marks every past-due scheduled performance as done.
	RefreshStatuses(ctx context.Context) (int64, error)
}

type PerformanceServiceImpl struct {
	repo    repository.PerformanceRepository
	tickets repository.TicketRepository
	loc     *time.Location
	now     func() time.Time
}

func NewPerformanceService(repo repository.PerformanceRepository, tickets repository.TicketRepository, loc *time.Location) PerformanceService {
	return NewPerformanceServiceWithClock(repo, tickets, loc, time.Now)
}

// NewPerformanceServiceWithClock is NewPerformanceService with an explicit clock.
func NewPerformanceServiceWithClock(repo repository.PerformanceRepository, tickets repository.TicketRepository, loc *time.Location, now func() time.Time) PerformanceService {
	if loc == nil {
		loc = time.UTC
	}
	return &PerformanceServiceImpl{
		repo:    repo,
		tickets: tickets,
		loc:     loc,
		now:     now,
	}
}

// localNow 以設定時區的牆上時間表示現在，與 date_time 欄位同樣不帶時區
func (s *PerformanceServiceImpl) localNow() time.Time {
	t := s.now().In(s.loc)
	return time.Date(t.Year(), t.Month(), t.Day(), t.Hour(), t.Minute(), t.Second(), t.Nanosecond(), time.UTC)
}

var localDateTimeLayouts = []string{
	model.LocalDateTimeLayout,
	"2006-01-02T15:04:05",
	"2006-01-02T15:04:05.999999999",
}

// ParseLocalDateTime parses an ISO-8601 local date-time without zone.
func ParseLocalDateTime(value string) (time.Time, error) {
	value = strings.TrimSpace(value)
	var lastErr error
	for _, layout := range localDateTimeLayouts {
		t, err := time.Parse(layout, value)
		if err == nil {
			return t, nil
		}
		lastErr = err
	}
	return time.Time{}, lastErr
}

// dateRange returns the optional bounds; ok is false when any given bound is malformed.
func dateRange(query model.PerformanceListQuery) (from, to *time.Time, ok bool) {
	if strings.TrimSpace(query.FromDate) != "" {
		t, err := ParseLocalDateTime(query.FromDate)
		if err != nil {
			return nil, nil, false
		}
		from = &t
	}
	if strings.TrimSpace(query.ToDate) != "" {
		t, err := ParseLocalDateTime(query.ToDate)
		if err != nil {
			return nil, nil, false
		}
		to = &t
	}
	return from, to, true
}

func (s *PerformanceServiceImpl) RefreshStatuses(ctx context.Context) (int64, error) {
	return s.repo.MarkPastAsDone(ctx, s.localNow())
}

func (s *PerformanceServiceImpl) List(ctx context.Context, principal *security.Principal, query model.PerformanceListQuery) ([]*model.Performance, error) {
	log := logger.WithComponent("service")

	updated, err := s.RefreshStatuses(ctx)
	if err != nil {
		return nil, err
	}
	if updated > 0 {
		log.Info("Marked past performances as done", zap.Int64("count", updated))
	}

	// 未登入者與觀眾只看得到尚未演出的場次
	filter := repository.PerformanceFilter{
		UpcomingOnly: principal == nil || principal.IsVisitorOnly(),
	}
	if from, to, ok := dateRange(query); ok {
		filter.From, filter.To = from, to
	} else {
		log.Warn("Ignoring malformed date range",
			zap.String("from_date", query.FromDate),
			zap.String("to_date", query.ToDate))
	}

	performances, err := s.repo.List(ctx, filter)
	if err != nil {
		return nil, err
	}

	switch query.SortBy {
	case model.SortRevenueAsc:
		slices.SortStableFunc(performances, func(a, b *model.Performance) int {
			return cmp.Compare(a.Revenue, b.Revenue)
		})
	case model.SortRevenueDesc:
		slices.SortStableFunc(performances, func(a, b *model.Performance) int {
			return cmp.Compare(b.Revenue, a.Revenue)
		})
	}
	return performances, nil
}

func (s *PerformanceServiceImpl) FindByID(ctx context.Context, id int64) (*model.Performance, error) {
	return s.repo.FindByID(ctx, id)
}

func validatePerformance(p *model.Performance) error {
	switch {
	case strings.TrimSpace(p.Name) == "":
		return fmt.Errorf("%w: name is required", apperrors.ErrInvalidInput)
	case p.DateTime.IsZero():
		return fmt.Errorf("%w: date and time are required", apperrors.ErrInvalidInput)
	case p.DurationMinutes < 1:
		return fmt.Errorf("%w: duration must be at least one minute", apperrors.ErrInvalidInput)
	case p.MainArtistID <= 0:
		return fmt.Errorf("%w: main artist is required", apperrors.ErrInvalidInput)
	}
	return nil
}

func (s *PerformanceServiceImpl) Save(ctx context.Context, performance *model.Performance) (*model.Performance, error) {
	if err := validatePerformance(performance); err != nil {
		return nil, err
	}
	var (
		saved *model.Performance
		err   error
	)
	if performance.ID == 0 {
		// 新演出一律從 scheduled 開始
		performance.Status = false
		saved, err = s.repo.Create(ctx, performance)
	} else {
		saved, err = s.repo.Update(ctx, performance)
	}
	if errors.Is(err, apperrors.ErrEmployeeNotFound) {
		return nil, fmt.Errorf("%w: main artist %d does not exist", apperrors.ErrInvalidInput, performance.MainArtistID)
	}
	return saved, err
}

func (s *PerformanceServiceImpl) Delete(ctx context.Context, id int64) error {
	return s.repo.Delete(ctx, id)
}

func (s *PerformanceServiceImpl) Revenue(ctx context.Context, id int64) (int64, error) {
	if _, err := s.repo.FindByID(ctx, id); err != nil {
		return 0, err
	}
	return s.tickets.SumTotalPriceByPerformance(ctx, id)
}
