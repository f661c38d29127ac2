package handlers

import "testing"

func TestPageWindow(t *testing.T) {
	tests := []struct {
		name       string
		page, size int
		wantLimit  int
		wantOffset int
	}{
		{"defaults", 1, 20, 20, 0},
		{"second page", 2, 20, 20, 20},
		{"custom size", 3, 10, 10, 20},
		{"page below one clamps", 0, 20, 20, 0},
		{"size below one falls back", 2, 0, 20, 20},
		{"size above cap falls back", 1, 500, 20, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			limit, offset := pageWindow(tt.page, tt.size)
			if limit != tt.wantLimit || offset != tt.wantOffset {
				t.Errorf("pageWindow(%d, %d) = (%d, %d), want (%d, %d)",
					tt.page, tt.size, limit, offset, tt.wantLimit, tt.wantOffset)
			}
		})
	}
}
