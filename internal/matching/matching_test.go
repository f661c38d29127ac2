package matching

import (
	"testing"

	"github.com/creator-marketplace/backend/internal/models"
)

func creator(username string, ig int, engagement float64, categories ...string) *models.Creator {
	c := &models.Creator{
		Username:           username,
		InstagramFollowers: &ig,
		Categories:         models.NormalizeCategories(categories),
	}
	if engagement > 0 {
		c.AvgEngagementRate = &engagement
	}
	return c
}

func TestReachScore(t *testing.T) {
	tests := []struct {
		name    string
		creator *models.Creator
		want    float64
	}{
		{"no engagement", creator("a", 1000, 0), 1000},
		{"with engagement", creator("b", 1000, 5), 1050},
		{"zero followers", creator("c", 0, 10), 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ReachScore(tt.creator); got != tt.want {
				t.Errorf("ReachScore() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestMatches(t *testing.T) {
	min, max := 500, 2000
	tests := []struct {
		name    string
		creator *models.Creator
		crit    Criteria
		want    bool
	}{
		{"empty criteria", creator("a", 100, 0), Criteria{}, true},
		{"below min", creator("a", 100, 0, "tech"), Criteria{MinFollowers: &min}, false},
		{"above max", creator("a", 5000, 0), Criteria{MaxFollowers: &max}, false},
		{"in range", creator("a", 1000, 0), Criteria{MinFollowers: &min, MaxFollowers: &max}, true},
		{"category overlap", creator("a", 1000, 0, "tech", "gaming"), Criteria{Categories: []string{"Tech"}}, true},
		{"no category overlap", creator("a", 1000, 0, "fashion"), Criteria{Categories: []string{"tech"}}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Matches(tt.creator, tt.crit); got != tt.want {
				t.Errorf("Matches() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestRankOrderAndStability(t *testing.T) {
	a := creator("a", 1000, 0)
	b := creator("b", 1000, 10) // 1100
	c := creator("c", 1000, 0)  // ties with a, keeps input order
	d := creator("d", 10, 0)

	min := 100
	got := Rank([]*models.Creator{a, b, c, d}, Criteria{MinFollowers: &min})

	if len(got) != 3 {
		t.Fatalf("expected 3 ranked creators, got %d", len(got))
	}
	order := []string{"b", "a", "c"}
	for i, want := range order {
		if got[i].Creator.Username != want {
			t.Errorf("rank[%d] = %s, want %s", i, got[i].Creator.Username, want)
		}
	}
}
