// internal/domain/booking/passenger.go
package booking

import (
	"encoding/json"
	"fmt"
	"strings"
)

// Passenger is the canonical passenger record. The stored passenger_details
// column has accumulated several shapes over time: a JSON object, a JSON
// array of objects, or either of those wrapped in a JSON string, with both
// camelCase and snake_case field names. NormalizePassengers maps every
// observed shape to this one.
type Passenger struct {
	FirstName  string `json:"first_name"`
	LastName   string `json:"last_name"`
	Email      string `json:"email,omitempty"`
	Phone      string `json:"phone,omitempty"`
	City       string `json:"city,omitempty"`
	FlightDate string `json:"flight_date,omitempty"`
}

// rawPassenger accepts every field-name variant seen in stored rows.
type rawPassenger struct {
	FirstName  string `json:"firstName"`
	FirstSnake string `json:"first_name"`
	LastName   string `json:"lastName"`
	LastSnake  string `json:"last_name"`
	Email      string `json:"email"`
	Phone      string `json:"phone"`
	PhoneAlt   string `json:"phoneNumber"`
	City       string `json:"city"`
	FlightDate string `json:"flightDate"`
	DateSnake  string `json:"flight_date"`
	TravelDate string `json:"travelDate"`
}

func (r rawPassenger) canonical() Passenger {
	p := Passenger{
		FirstName:  firstNonEmpty(r.FirstName, r.FirstSnake),
		LastName:   firstNonEmpty(r.LastName, r.LastSnake),
		Email:      r.Email,
		Phone:      firstNonEmpty(r.Phone, r.PhoneAlt),
		City:       r.City,
		FlightDate: firstNonEmpty(r.FlightDate, r.DateSnake, r.TravelDate),
	}
	return p
}

// NormalizePassengers decodes a passenger_details payload into canonical
// passenger records. Malformed input is an explicit error; callers that want
// the old degrade-to-empty behavior handle it at their boundary.
func NormalizePassengers(data []byte) ([]Passenger, error) {
	trimmed := strings.TrimSpace(string(data))
	if trimmed == "" || trimmed == "null" {
		return nil, nil
	}

	// Double-encoded rows store the JSON value inside a JSON string.
	if strings.HasPrefix(trimmed, `"`) {
		var inner string
		if err := json.Unmarshal([]byte(trimmed), &inner); err != nil {
			return nil, fmt.Errorf("failed to unwrap passenger details string: %w", err)
		}
		return NormalizePassengers([]byte(inner))
	}

	switch {
	case strings.HasPrefix(trimmed, "["):
		var raws []rawPassenger
		if err := json.Unmarshal([]byte(trimmed), &raws); err != nil {
			return nil, fmt.Errorf("failed to parse passenger details array: %w", err)
		}
		passengers := make([]Passenger, 0, len(raws))
		for _, r := range raws {
			passengers = append(passengers, r.canonical())
		}
		return passengers, nil

	case strings.HasPrefix(trimmed, "{"):
		var r rawPassenger
		if err := json.Unmarshal([]byte(trimmed), &r); err != nil {
			return nil, fmt.Errorf("failed to parse passenger details object: %w", err)
		}
		return []Passenger{r.canonical()}, nil

	default:
		return nil, fmt.Errorf("unrecognized passenger details payload")
	}
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
