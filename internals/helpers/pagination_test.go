package helper

import (
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
)

func resolveFor(t *testing.T, target string, defaultPerPage, maxPerPage int) Paging {
	t.Helper()
	var got Paging
	app := fiber.New()
	app.Get("/items", func(c *fiber.Ctx) error {
		got = ResolvePaging(c, defaultPerPage, maxPerPage)
		return c.SendStatus(fiber.StatusOK)
	})
	resp, err := app.Test(httptest.NewRequest("GET", target, nil))
	if err != nil {
		t.Fatalf("app.Test: %v", err)
	}
	defer resp.Body.Close()
	return got
}

func TestResolvePaging(t *testing.T) {
	tests := []struct {
		name       string
		target     string
		wantPage   int
		wantPer    int
		wantOffset int
	}{
		{"default", "/items", 1, 20, 0},
		{"halaman dua", "/items?page=2&per_page=10", 2, 10, 10},
		{"alias limit", "/items?limit=15", 1, 15, 0},
		{"per_page menang atas limit", "/items?per_page=25&limit=5", 1, 25, 0},
		{"page invalid jadi 1", "/items?page=-3", 1, 20, 0},
		{"per_page invalid jadi default", "/items?per_page=abc", 1, 20, 0},
		{"per_page dibatasi max", "/items?per_page=500", 1, 100, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := resolveFor(t, tt.target, 20, 100)
			if p.Page != tt.wantPage || p.PerPage != tt.wantPer || p.Offset != tt.wantOffset {
				t.Errorf("got page=%d per=%d offset=%d, want page=%d per=%d offset=%d",
					p.Page, p.PerPage, p.Offset, tt.wantPage, tt.wantPer, tt.wantOffset)
			}
			if p.Limit != p.PerPage {
				t.Errorf("Limit = %d, want sama dengan PerPage %d", p.Limit, p.PerPage)
			}
		})
	}
}

func TestBuildPagination(t *testing.T) {
	tests := []struct {
		name           string
		paging         Paging
		total          int64
		count          int
		wantTotalPages int
		wantHasNext    bool
		wantHasPrev    bool
	}{
		{"halaman pertama dari tiga", Paging{Page: 1, PerPage: 10}, 25, 10, 3, true, false},
		{"halaman tengah", Paging{Page: 2, PerPage: 10}, 25, 10, 3, true, true},
		{"halaman terakhir", Paging{Page: 3, PerPage: 10}, 25, 5, 3, false, true},
		{"kosong", Paging{Page: 1, PerPage: 10}, 0, 0, 0, false, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := BuildPagination(tt.paging, tt.total, tt.count)
			if got.TotalPages != tt.wantTotalPages {
				t.Errorf("TotalPages = %d, want %d", got.TotalPages, tt.wantTotalPages)
			}
			if got.HasNext != tt.wantHasNext || got.HasPrev != tt.wantHasPrev {
				t.Errorf("HasNext/HasPrev = %v/%v, want %v/%v",
					got.HasNext, got.HasPrev, tt.wantHasNext, tt.wantHasPrev)
			}
			if got.Count != tt.count || got.Total != tt.total {
				t.Errorf("Count/Total = %d/%d, want %d/%d", got.Count, got.Total, tt.count, tt.total)
			}
		})
	}
}
