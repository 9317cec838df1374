package handler

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
)

func testContext(t *testing.T, rawQuery string) *gin.Context {
	t.Helper()
	gin.SetMode(gin.TestMode)
	recorder := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(recorder)
	c.Request = httptest.NewRequest(http.MethodGet, "/api/v1/matches?"+rawQuery, nil)
	return c
}

func TestParseMatchFilters_Defaults(t *testing.T) {
	c := testContext(t, "")

	filters, err := parseMatchFilters(c)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	// Zero values: normalization to 30/0/50 happens in the usecase.
	if filters.MaxDaysAgo != 0 || filters.MinRating != 0 || filters.Limit != 0 {
		t.Errorf("expected zero filters, got %+v", filters)
	}
}

func TestParseMatchFilters_AllValues(t *testing.T) {
	c := testContext(t, "maxDaysAgo=7&minRating=3.5&limit=10")

	filters, err := parseMatchFilters(c)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if filters.MaxDaysAgo != 7 {
		t.Errorf("expected maxDaysAgo=7, got %d", filters.MaxDaysAgo)
	}
	if filters.MinRating != 3.5 {
		t.Errorf("expected minRating=3.5, got %v", filters.MinRating)
	}
	if filters.Limit != 10 {
		t.Errorf("expected limit=10, got %d", filters.Limit)
	}
}

func TestParseMatchFilters_Invalid(t *testing.T) {
	tests := []struct {
		name  string
		query string
	}{
		{"non-numeric maxDaysAgo", "maxDaysAgo=week"},
		{"negative limit", "limit=-1"},
		{"non-numeric minRating", "minRating=high"},
		{"minRating above scale", "minRating=5.5"},
		{"negative minRating", "minRating=-1"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := testContext(t, tt.query)
			if _, err := parseMatchFilters(c); err == nil {
				t.Errorf("expected error for query %q", tt.query)
			}
		})
	}
}
