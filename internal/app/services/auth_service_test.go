package services

import "testing"

func TestValidCampusEmail(t *testing.T) {
	tests := []struct {
		name   string
		email  string
		domain string
		want   bool
	}{
		{"campus address", "asha@iitmandi.ac.in", "iitmandi.ac.in", true},
		{"mixed case", "Asha@IITMandi.AC.IN", "iitmandi.ac.in", true},
		{"surrounding whitespace", "  asha@iitmandi.ac.in ", "iitmandi.ac.in", true},
		{"foreign domain", "asha@gmail.com", "iitmandi.ac.in", false},
		{"subdomain is foreign", "asha@students.iitmandi.ac.in", "iitmandi.ac.in", false},
		{"domain as suffix trick", "asha@eviliitmandi.ac.in", "iitmandi.ac.in", false},
		{"no at sign", "iitmandi.ac.in", "iitmandi.ac.in", false},
		{"empty local part", "@iitmandi.ac.in", "iitmandi.ac.in", false},
		{"empty email", "", "iitmandi.ac.in", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ValidCampusEmail(tt.email, tt.domain); got != tt.want {
				t.Errorf("ValidCampusEmail(%q, %q) = %v, want %v", tt.email, tt.domain, got, tt.want)
			}
		})
	}
}
