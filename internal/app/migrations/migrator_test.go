package migrations

import "testing"

func TestVersionOf(t *testing.T) {
	tests := []struct {
		name string
		file string
		want string
	}{
		{"baseline", "0001_baseline.sql", "0001"},
		{"multiple underscores", "0002_add_clubs_tables.sql", "0002"},
		{"no underscore", "0003.sql", "0003.sql"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := versionOf(tt.file); got != tt.want {
				t.Errorf("versionOf(%q) = %q, want %q", tt.file, got, tt.want)
			}
		})
	}
}
