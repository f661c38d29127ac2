package statsparser

import "testing"

func TestParseCount(t *testing.T) {
	tests := []struct {
		input    string
		expected int
	}{
		{"1.2K", 1200},
		{"1.5M", 1500000},
		{"123", 123},
		{"12,345", 12345},
		{"1 234", 1234},
		{"100K", 100000},
		{"2.3M", 2300000},
		{"0", 0},
		{"", 0},
		{"no number", 0},
		{"42k", 42000},
		{"3.14k", 3140},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			result := parseCount(tt.input)
			if result != tt.expected {
				t.Errorf("parseCount(%q) = %d, want %d", tt.input, result, tt.expected)
			}
		})
	}
}

func TestExtractFollowers(t *testing.T) {
	tests := []struct {
		input    string
		expected int
	}{
		{"1.2M Followers, 340 Following, 512 Posts - jane", 1200000},
		{"120K followers", 120000},
		{"3,450 Followers", 3450},
		{"UCxyz - 890K subscribers", 890000},
		{"12.5M Fans", 12500000},
		{"no counts here", 0},
		{"", 0},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			result := extractFollowers(tt.input)
			if result != tt.expected {
				t.Errorf("extractFollowers(%q) = %d, want %d", tt.input, result, tt.expected)
			}
		})
	}
}
