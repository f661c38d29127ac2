package models

import (
	"reflect"
	"testing"
)

func TestNormalizeCategories(t *testing.T) {
	tests := []struct {
		name string
		in   []string
		want []string
	}{
		{"nil", nil, []string{}},
		{"lowercase and trim", []string{" Fashion ", "TECH"}, []string{"fashion", "tech"}},
		{"dedupe keeps first", []string{"food", "Food", "travel", "food"}, []string{"food", "travel"}},
		{"drops empty", []string{"", "  ", "beauty"}, []string{"beauty"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := NormalizeCategories(tt.in); !reflect.DeepEqual(got, tt.want) {
				t.Errorf("NormalizeCategories(%v) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}

func TestNormalizeCategoriesCap(t *testing.T) {
	in := make([]string, 0, 30)
	for i := 0; i < 30; i++ {
		in = append(in, string(rune('a'+i)))
	}
	got := NormalizeCategories(in)
	if len(got) != maxCategories {
		t.Errorf("expected %d categories, got %d", maxCategories, len(got))
	}
}

func TestNormalizeHandle(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"@jane", "jane"},
		{"  @Jane_Doe ", "Jane_Doe"},
		{"plain", "plain"},
		{"", ""},
	}
	for _, tt := range tests {
		if got := NormalizeHandle(tt.in); got != tt.want {
			t.Errorf("NormalizeHandle(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestTotalFollowers(t *testing.T) {
	ig, tt2, yt := 1000, 2500, 400
	c := Creator{InstagramFollowers: &ig, TiktokFollowers: &tt2, YoutubeFollowers: &yt}
	if got := c.TotalFollowers(); got != 3900 {
		t.Errorf("TotalFollowers() = %d, want 3900", got)
	}
	empty := Creator{}
	if got := empty.TotalFollowers(); got != 0 {
		t.Errorf("TotalFollowers() on empty = %d, want 0", got)
	}
}
