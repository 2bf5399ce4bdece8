// internal/service/customer/rollup.go
package customer

import (
	"strings"

	"farepass-service/internal/domain/booking"
	"farepass-service/internal/domain/currency"
	"farepass-service/internal/domain/customer"
)

// Rollup merges profiles with the bookings that reference them into one
// Customer per identity. A booking whose user_id matches no profile is
// dropped rather than synthesized into a ghost row, so deleted users never
// reappear in the customer list.
func Rollup(profiles []customer.UserProfile, bookings []booking.Booking, rates currency.RateTable) []customer.Customer {
	byKey := make(map[string]*customer.Customer, len(profiles))
	order := make([]string, 0, len(profiles))

	for i := range profiles {
		p := &profiles[i]
		key := p.IdentityKey()
		if _, seen := byKey[key]; seen {
			continue
		}
		byKey[key] = &customer.Customer{
			Key:         key,
			DisplayName: DisplayName(p.FirstName.String, p.LastName.String),
			Email:       p.Email.String,
			PhoneNumber: p.PhoneNumber.String,
			City:        p.City.String,
			Country:     p.Country.String,
			AvatarURL:   p.AvatarURL.String,
			JoinDate:    p.CreatedAt,
		}
		order = append(order, key)
	}

	for _, b := range bookings {
		c, ok := byKey[b.UserID]
		if !ok {
			continue
		}
		c.Orders++
		c.SpentUSD += rates.ConvertToUSD(b.Amount, b.Currency)
		// An old booking predating the profile row pulls the join date back;
		// earliest activity wins.
		if b.CreatedAt.Before(c.JoinDate) {
			c.JoinDate = b.CreatedAt
		}
	}

	out := make([]customer.Customer, 0, len(order))
	for _, key := range order {
		out = append(out, *byKey[key])
	}
	return out
}

// DisplayName applies the profile naming fallbacks: a last name that is empty
// or duplicates the first name is dropped, and an empty or placeholder result
// falls back to "Customer".
func DisplayName(firstName, lastName string) string {
	first := strings.TrimSpace(firstName)
	last := strings.TrimSpace(lastName)

	name := first
	if last != "" && !strings.EqualFold(first, last) {
		name = strings.TrimSpace(first + " " + last)
	}

	if name == "" || strings.EqualFold(name, "unknown") {
		return "Customer"
	}
	return name
}
