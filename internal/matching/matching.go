// Package matching ranks creators for campaigns by estimated reach.
package matching

import (
	"sort"

	"github.com/creator-marketplace/backend/internal/models"
)

// ReachScore estimates a creator's effective audience: total followers
// weighted by engagement rate. A creator with no engagement data scores
// their raw follower count.
func ReachScore(c *models.Creator) float64 {
	total := float64(c.TotalFollowers())
	if c.AvgEngagementRate != nil {
		total *= 1 + *c.AvgEngagementRate/100
	}
	return total
}

// Criteria narrows the candidate pool before ranking.
type Criteria struct {
	Categories   []string
	MinFollowers *int
	MaxFollowers *int
}

// FromCampaign derives matching criteria from a campaign's targeting fields.
func FromCampaign(campaign *models.Campaign) Criteria {
	return Criteria{
		Categories:   campaign.PreferredCategories,
		MinFollowers: campaign.MinFollowers,
		MaxFollowers: campaign.MaxFollowers,
	}
}

// Matches reports whether a creator satisfies the criteria. Category
// matching requires at least one overlap; an empty criteria category
// list matches everyone.
func Matches(c *models.Creator, crit Criteria) bool {
	total := c.TotalFollowers()
	if crit.MinFollowers != nil && total < *crit.MinFollowers {
		return false
	}
	if crit.MaxFollowers != nil && total > *crit.MaxFollowers {
		return false
	}
	if len(crit.Categories) == 0 {
		return true
	}
	want := make(map[string]struct{}, len(crit.Categories))
	for _, cat := range models.NormalizeCategories(crit.Categories) {
		want[cat] = struct{}{}
	}
	for _, cat := range c.Categories {
		if _, ok := want[cat]; ok {
			return true
		}
	}
	return false
}

// ScoredCreator pairs a creator with their computed reach score.
type ScoredCreator struct {
	Creator *models.Creator `json:"creator"`
	Score   float64         `json:"score"`
}

// Rank filters creators by the criteria and returns them sorted by reach
// score, highest first. Ties keep the input order.
func Rank(creators []*models.Creator, crit Criteria) []ScoredCreator {
	scored := make([]ScoredCreator, 0, len(creators))
	for _, c := range creators {
		if !Matches(c, crit) {
			continue
		}
		scored = append(scored, ScoredCreator{Creator: c, Score: ReachScore(c)})
	}
	sort.SliceStable(scored, func(i, j int) bool {
		return scored[i].Score > scored[j].Score
	})
	return scored
}
