// internal/service/customer/service.go
package customer

import (
	"bytes"
	"context"
	"encoding/csv"
	"fmt"
	"sort"
	"strconv"
	"strings"
	"time"

	"farepass-service/internal/domain/customer"
	"farepass-service/internal/repository/postgres"
	"farepass-service/internal/service/currency"

	"go.uber.org/zap"
)

type CustomerService struct {
	profileRepo *postgres.ProfileRepository
	bookingRepo *postgres.BookingRepository
	currencySvc *currency.CurrencyService
	logger      *zap.Logger
}

func NewCustomerService(profileRepo *postgres.ProfileRepository, bookingRepo *postgres.BookingRepository, currencySvc *currency.CurrencyService, logger *zap.Logger) *CustomerService {
	return &CustomerService{
		profileRepo: profileRepo,
		bookingRepo: bookingRepo,
		currencySvc: currencySvc,
		logger:      logger,
	}
}

// ListCustomers merges profiles with their bookings and returns the filtered,
// sorted, paginated result.
func (s *CustomerService) ListCustomers(ctx context.Context, filters *customer.CustomerListFilters) (*customer.CustomerListResponse, error) {
	customers, err := s.rollup(ctx)
	if err != nil {
		return nil, err
	}

	customers = filterCustomers(customers, filters.Search)
	sortCustomers(customers, filters.SortBy, filters.SortOrder)

	if filters.Page < 1 {
		filters.Page = 1
	}
	if filters.PageSize < 1 {
		filters.PageSize = 20
	}
	if filters.PageSize > 100 {
		filters.PageSize = 100
	}

	total := len(customers)
	totalPages := total / filters.PageSize
	if total%filters.PageSize > 0 {
		totalPages++
	}

	start := (filters.Page - 1) * filters.PageSize
	if start > total {
		start = total
	}
	end := start + filters.PageSize
	if end > total {
		end = total
	}

	return &customer.CustomerListResponse{
		Customers:  customers[start:end],
		Total:      total,
		Page:       filters.Page,
		PageSize:   filters.PageSize,
		TotalPages: totalPages,
	}, nil
}

// CountCustomers returns the number of distinct customers with a profile.
func (s *CustomerService) CountCustomers(ctx context.Context) (int, error) {
	profiles, err := s.profileRepo.ListAll(ctx)
	if err != nil {
		return 0, err
	}
	return len(profiles), nil
}

// GetProfile retrieves one raw profile by identity key.
func (s *CustomerService) GetProfile(ctx context.Context, key string) (*customer.UserProfile, error) {
	return s.profileRepo.FindByKey(ctx, key)
}

// UpdateProfile rewrites the editable profile fields.
func (s *CustomerService) UpdateProfile(ctx context.Context, key string, req *customer.UpdateProfileRequest) (*customer.UserProfile, error) {
	p, err := s.profileRepo.FindByKey(ctx, key)
	if err != nil {
		return nil, err
	}

	applyNullable := func(dst *string, valid *bool, v *string) {
		if v != nil {
			*dst = *v
			*valid = *v != ""
		}
	}
	applyNullable(&p.FirstName.String, &p.FirstName.Valid, req.FirstName)
	applyNullable(&p.LastName.String, &p.LastName.Valid, req.LastName)
	applyNullable(&p.Email.String, &p.Email.Valid, req.Email)
	applyNullable(&p.PhoneNumber.String, &p.PhoneNumber.Valid, req.PhoneNumber)
	applyNullable(&p.City.String, &p.City.Valid, req.City)
	applyNullable(&p.Country.String, &p.Country.Valid, req.Country)

	if err := s.profileRepo.Update(ctx, key, p); err != nil {
		s.logger.Error("failed to update profile", zap.Error(err))
		return nil, err
	}

	s.logger.Info("profile updated", zap.String("profile_id", p.ID))
	return p, nil
}

// DeleteProfile removes a profile. Bookings keep their user id and fall out
// of the customer list on the next rollup.
func (s *CustomerService) DeleteProfile(ctx context.Context, key string) error {
	p, err := s.profileRepo.FindByKey(ctx, key)
	if err != nil {
		return err
	}
	if err := s.profileRepo.Delete(ctx, key); err != nil {
		return err
	}
	s.logger.Info("profile deleted", zap.String("profile_id", p.ID))
	return nil
}

// ExportCSV renders the full customer rollup as a CSV document.
func (s *CustomerService) ExportCSV(ctx context.Context) ([]byte, string, error) {
	customers, err := s.rollup(ctx)
	if err != nil {
		return nil, "", err
	}
	sortCustomers(customers, "join_date", "desc")

	var buf bytes.Buffer
	w := csv.NewWriter(&buf)

	header := []string{"Name", "Email", "Phone", "City", "Country", "Orders", "Spent (USD)", "Join Date"}
	if err := w.Write(header); err != nil {
		return nil, "", fmt.Errorf("failed to write csv header: %w", err)
	}

	for i := range customers {
		c := &customers[i]
		row := []string{
			c.DisplayName,
			c.Email,
			c.PhoneNumber,
			c.City,
			c.Country,
			strconv.Itoa(c.Orders),
			strconv.FormatFloat(c.SpentUSD, 'f', 2, 64),
			c.JoinDate.Format("2006-01-02"),
		}
		if err := w.Write(row); err != nil {
			return nil, "", fmt.Errorf("failed to write csv row: %w", err)
		}
	}

	w.Flush()
	if err := w.Error(); err != nil {
		return nil, "", fmt.Errorf("failed to flush csv: %w", err)
	}

	filename := fmt.Sprintf("customers-%s.csv", time.Now().Format("2006-01-02"))
	return buf.Bytes(), filename, nil
}

func (s *CustomerService) rollup(ctx context.Context) ([]customer.Customer, error) {
	profiles, err := s.profileRepo.ListAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load profiles: %w", err)
	}
	bookings, err := s.bookingRepo.ListAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load bookings: %w", err)
	}
	rates, err := s.currencySvc.Table(ctx)
	if err != nil {
		s.logger.Warn("rate table unavailable, spend falls back to raw amounts", zap.Error(err))
		rates = nil
	}
	return Rollup(profiles, bookings, rates), nil
}

func filterCustomers(customers []customer.Customer, search string) []customer.Customer {
	search = strings.ToLower(strings.TrimSpace(search))
	if search == "" {
		return customers
	}
	out := customers[:0]
	for _, c := range customers {
		if strings.Contains(strings.ToLower(c.DisplayName), search) ||
			strings.Contains(strings.ToLower(c.Email), search) ||
			strings.Contains(strings.ToLower(c.PhoneNumber), search) {
			out = append(out, c)
		}
	}
	return out
}

func sortCustomers(customers []customer.Customer, sortBy, order string) {
	desc := order != "asc"
	less := func(i, j int) bool {
		switch sortBy {
		case "spent_usd":
			return customers[i].SpentUSD < customers[j].SpentUSD
		case "orders":
			return customers[i].Orders < customers[j].Orders
		default: // join_date
			return customers[i].JoinDate.Before(customers[j].JoinDate)
		}
	}
	if desc {
		sort.SliceStable(customers, func(i, j int) bool { return less(j, i) })
	} else {
		sort.SliceStable(customers, less)
	}
}
