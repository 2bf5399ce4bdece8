package booking

import "testing"

func TestNormalizePassengersShapes(t *testing.T) {
	cases := []struct {
		name  string
		input string
		want  []Passenger
	}{
		{
			name:  "single object camelCase",
			input: `{"firstName":"Ada","lastName":"Lovelace","email":"ada@example.com"}`,
			want:  []Passenger{{FirstName: "Ada", LastName: "Lovelace", Email: "ada@example.com"}},
		},
		{
			name:  "single object snake_case",
			input: `{"first_name":"Ada","last_name":"Lovelace","phone":"+100"}`,
			want:  []Passenger{{FirstName: "Ada", LastName: "Lovelace", Phone: "+100"}},
		},
		{
			name:  "array of objects",
			input: `[{"firstName":"Ada"},{"first_name":"Grace","city":"NYC"}]`,
			want:  []Passenger{{FirstName: "Ada"}, {FirstName: "Grace", City: "NYC"}},
		},
		{
			name:  "double encoded string",
			input: `"{\"firstName\":\"Ada\",\"phoneNumber\":\"+100\"}"`,
			want:  []Passenger{{FirstName: "Ada", Phone: "+100"}},
		},
		{
			name:  "travel date variants",
			input: `{"firstName":"Ada","travelDate":"2024-03-15"}`,
			want:  []Passenger{{FirstName: "Ada", FlightDate: "2024-03-15"}},
		},
		{
			name:  "empty payload",
			input: ``,
			want:  nil,
		},
		{
			name:  "null payload",
			input: `null`,
			want:  nil,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := NormalizePassengers([]byte(tc.input))
			if err != nil {
				t.Fatalf("NormalizePassengers returned error: %v", err)
			}
			if len(got) != len(tc.want) {
				t.Fatalf("got %d passengers, want %d", len(got), len(tc.want))
			}
			for i := range got {
				if got[i] != tc.want[i] {
					t.Errorf("passenger %d = %+v, want %+v", i, got[i], tc.want[i])
				}
			}
		})
	}
}

func TestNormalizePassengersMalformed(t *testing.T) {
	cases := []string{
		`{"firstName":`,
		`[{"firstName"}]`,
		`not json at all`,
		`"{\"broken\"`,
	}

	for _, input := range cases {
		if _, err := NormalizePassengers([]byte(input)); err == nil {
			t.Errorf("NormalizePassengers(%q) = nil error, want failure", input)
		}
	}
}
