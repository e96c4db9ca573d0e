package helpers

import "testing"

func TestCalculateOffsetLimit(t *testing.T) {
	tests := []struct {
		name       string
		page, size int
		wantOffset uint64
		wantLimit  int
	}{
		{"first page", 1, 10, 0, 10},
		{"third page", 3, 20, 40, 20},
		{"zero page clamps to first", 0, 10, 0, 10},
		{"negative page clamps to first", -2, 10, 0, 10},
		{"oversized page size falls back", 1, 500, 0, DefaultPageSize},
		{"zero size falls back", 2, 0, 10, DefaultPageSize},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			offset, limit := CalculateOffsetLimit(tt.page, tt.size)
			if offset != tt.wantOffset || limit != tt.wantLimit {
				t.Errorf("CalculateOffsetLimit(%d, %d) = (%d, %d), want (%d, %d)",
					tt.page, tt.size, offset, limit, tt.wantOffset, tt.wantLimit)
			}
		})
	}
}

func TestNewPaginationInfo(t *testing.T) {
	info := NewPaginationInfo(45, 2, 10)
	if info.TotalPages != 5 {
		t.Errorf("TotalPages = %d, want 5", info.TotalPages)
	}
	if info.CurrentPage != 2 || info.PageSize != 10 || info.TotalItems != 45 {
		t.Errorf("unexpected info: %+v", info)
	}
}

func TestNewPaginationInfoEmptyResult(t *testing.T) {
	info := NewPaginationInfo(0, 1, 10)
	if info.TotalPages != 1 {
		t.Errorf("TotalPages = %d, want 1 for empty first page", info.TotalPages)
	}
}

func TestNewPaginationInfoPageBeyondEnd(t *testing.T) {
	info := NewPaginationInfo(20, 9, 10)
	if info.CurrentPage != 2 {
		t.Errorf("CurrentPage = %d, want clamp to 2", info.CurrentPage)
	}
}
