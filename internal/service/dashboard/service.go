// internal/service/dashboard/service.go
package dashboard

import (
	"context"
	"fmt"
	"time"

	"farepass-service/internal/domain/booking"
	"farepass-service/internal/repository/postgres"
	"farepass-service/internal/service/analytics"
	"farepass-service/internal/service/currency"
	"farepass-service/internal/service/customer"

	"go.uber.org/zap"
)

// Stats is the dashboard payload: headline numbers with trend labels against
// the prior period, plus the monthly revenue series and latest orders.
type Stats struct {
	Revenue        float64                  `json:"revenue"`
	RevenueChange  string                   `json:"revenue_change"`
	Orders         int                      `json:"orders"`
	OrdersChange   string                   `json:"orders_change"`
	Customers      int                      `json:"customers"`
	PendingReviews int64                    `json:"pending_reviews"`
	MonthlyRevenue []analytics.MonthRevenue `json:"monthly_revenue"`
	RecentBookings []booking.Booking        `json:"recent_bookings"`
}

type DashboardService struct {
	bookingRepo  *postgres.BookingRepository
	documentRepo *postgres.DocumentRepository
	customerSvc  *customer.CustomerService
	currencySvc  *currency.CurrencyService
	logger       *zap.Logger
}

func NewDashboardService(bookingRepo *postgres.BookingRepository, documentRepo *postgres.DocumentRepository, customerSvc *customer.CustomerService, currencySvc *currency.CurrencyService, logger *zap.Logger) *DashboardService {
	return &DashboardService{
		bookingRepo:  bookingRepo,
		documentRepo: documentRepo,
		customerSvc:  customerSvc,
		currencySvc:  currencySvc,
		logger:       logger,
	}
}

// GetStats resolves the requested period and aggregates everything the
// dashboard shows in one pass over the live bookings.
func (s *DashboardService) GetStats(ctx context.Context, key analytics.RangeKey, custom *analytics.CustomRange) (*Stats, error) {
	now := time.Now()

	rng, err := analytics.Resolve(key, custom, now)
	if err != nil {
		return nil, err
	}

	bookings, err := s.bookingRepo.ListAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load bookings: %w", err)
	}

	rates, err := s.currencySvc.Table(ctx)
	if err != nil {
		s.logger.Warn("rate table unavailable, revenue falls back to raw amounts", zap.Error(err))
		rates = nil
	}

	current := analytics.Summarize(analytics.FilterByRange(bookings, rng.CurrentStart, rng.CurrentEnd), rates)

	var previous analytics.Summary
	if rng.HasComparison() {
		previous = analytics.Summarize(analytics.FilterByRange(bookings, rng.PrevStart, rng.PrevEnd), rates)
	}
	// A custom window has no comparison period but is still bounded, so it
	// takes the zero-previous change labels rather than "Lifetime".
	lifetime := rng.Lifetime()

	customers, err := s.customerSvc.CountCustomers(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to count customers: %w", err)
	}

	pending, err := s.documentRepo.CountPending(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to count pending documents: %w", err)
	}

	recent, _, err := s.bookingRepo.List(ctx, &booking.BookingListFilters{Page: 1, PageSize: 5})
	if err != nil {
		return nil, fmt.Errorf("failed to load recent bookings: %w", err)
	}

	return &Stats{
		Revenue:        current.Revenue,
		RevenueChange:  analytics.PercentChange(current.Revenue, previous.Revenue, lifetime),
		Orders:         current.OrderCount,
		OrdersChange:   analytics.PercentChange(float64(current.OrderCount), float64(previous.OrderCount), lifetime),
		Customers:      customers,
		PendingReviews: pending,
		MonthlyRevenue: analytics.MonthlyBreakdown(bookings, rates, now.Year()),
		RecentBookings: recent,
	}, nil
}
