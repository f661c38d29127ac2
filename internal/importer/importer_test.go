package importer

import (
	"testing"

	"github.com/creator-marketplace/backend/internal/models"
)

func strp(s string) *string { return &s }
func intp(n int) *int       { return &n }

func TestApplyMergesFields(t *testing.T) {
	im := &Importer{}

	c := &models.Creator{
		Username:    "janedoe",
		DisplayName: "Jane",
		Categories:  []string{"fashion"},
	}

	im.apply(c, Row{
		DisplayName:        "Jane Doe",
		Bio:                strp("travel & food"),
		InstagramHandle:    strp("@jane.doe"),
		InstagramFollowers: intp(12000),
		Categories:         []string{"Travel", "fashion"},
	})

	if c.DisplayName != "Jane Doe" {
		t.Errorf("DisplayName = %q, want %q", c.DisplayName, "Jane Doe")
	}
	if c.Bio == nil || *c.Bio != "travel & food" {
		t.Errorf("Bio = %v, want %q", c.Bio, "travel & food")
	}
	if c.InstagramHandle == nil || *c.InstagramHandle != "jane.doe" {
		t.Errorf("InstagramHandle = %v, want stripped handle", c.InstagramHandle)
	}
	if c.InstagramFollowers == nil || *c.InstagramFollowers != 12000 {
		t.Errorf("InstagramFollowers = %v, want 12000", c.InstagramFollowers)
	}
	want := []string{"fashion", "travel"}
	if len(c.Categories) != len(want) {
		t.Fatalf("Categories = %v, want %v", c.Categories, want)
	}
	for i := range want {
		if c.Categories[i] != want[i] {
			t.Errorf("Categories[%d] = %q, want %q", i, c.Categories[i], want[i])
		}
	}
}

func TestApplyKeepsExistingWhenRowEmpty(t *testing.T) {
	im := &Importer{}

	bio := "original bio"
	followers := 500
	c := &models.Creator{
		Username:           "janedoe",
		DisplayName:        "Jane",
		Bio:                &bio,
		InstagramFollowers: &followers,
	}

	im.apply(c, Row{Username: "janedoe"})

	if c.DisplayName != "Jane" {
		t.Errorf("DisplayName = %q, want %q", c.DisplayName, "Jane")
	}
	if c.Bio == nil || *c.Bio != "original bio" {
		t.Errorf("Bio changed: %v", c.Bio)
	}
	if c.InstagramFollowers == nil || *c.InstagramFollowers != 500 {
		t.Errorf("InstagramFollowers changed: %v", c.InstagramFollowers)
	}
}

func TestRandomHashNotEmpty(t *testing.T) {
	h1 := randomHash(4)
	h2 := randomHash(4)
	if h1 == "" || h2 == "" {
		t.Fatal("randomHash returned empty string")
	}
	if h1 == h2 {
		t.Error("randomHash returned the same hash twice")
	}
}
