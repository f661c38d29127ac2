package repositories

import "testing"

// A nil slice reaches postgres as NULL, not as an empty array, so every
// insert into a NOT NULL text[] column must go through textArray.
func TestTextArrayNeverNil(t *testing.T) {
	tests := []struct {
		name string
		in   []string
		want []string
	}{
		{"nil becomes empty", nil, []string{}},
		{"empty stays empty", []string{}, []string{}},
		{"values pass through", []string{"a", "b"}, []string{"a", "b"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := textArray(tt.in)
			if got == nil {
				t.Fatal("textArray returned nil")
			}
			if len(got) != len(tt.want) {
				t.Fatalf("len = %d, want %d", len(got), len(tt.want))
			}
			for i := range got {
				if got[i] != tt.want[i] {
					t.Errorf("got[%d] = %q, want %q", i, got[i], tt.want[i])
				}
			}
		})
	}
}

func TestClampLimit(t *testing.T) {
	tests := []struct {
		in   int
		want int
	}{
		{-1, 20},
		{0, 20},
		{1, 1},
		{100, 100},
		{101, 20},
	}
	for _, tt := range tests {
		if got := clampLimit(tt.in); got != tt.want {
			t.Errorf("clampLimit(%d) = %d, want %d", tt.in, got, tt.want)
		}
	}
}
