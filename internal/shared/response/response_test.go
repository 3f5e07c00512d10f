package response

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func TestPaginate(t *testing.T) {
	gin.SetMode(gin.TestMode)
	items := []int{1, 2, 3, 4, 5}

	tests := []struct {
		name  string
		query string
		want  []int
		pages int
	}{
		{name: "defaults", query: "", want: []int{1, 2, 3, 4, 5}, pages: 1},
		{name: "second page", query: "?page=2&page_size=2", want: []int{3, 4}, pages: 3},
		{name: "past the end", query: "?page=9&page_size=2", want: []int{}, pages: 3},
		{name: "invalid values", query: "?page=-1&page_size=abc", want: []int{1, 2, 3, 4, 5}, pages: 1},
		{name: "page size is capped", query: "?page_size=500", want: []int{1, 2, 3, 4, 5}, pages: 1},
		{name: "page only uses default size", query: "?page=1", want: []int{1, 2, 3, 4, 5}, pages: 1},
		{name: "huge page is empty, not a panic", query: "?page=1844674407370955162&page_size=10", want: []int{}, pages: 1},
		{name: "max int page", query: "?page=9223372036854775807&page_size=2", want: []int{}, pages: 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, _ := gin.CreateTestContext(httptest.NewRecorder())
			c.Request = httptest.NewRequest(http.MethodGet, "/items"+tt.query, nil)

			got, meta := Paginate(c, items)

			assert.Equal(t, tt.want, got)
			assert.Equal(t, int64(5), meta.Total)
			assert.Equal(t, tt.pages, meta.TotalPages)
		})
	}
}

func TestPaginate_WithoutParamsReturnsEverything(t *testing.T) {
	gin.SetMode(gin.TestMode)
	items := make([]int, 25)
	for i := range items {
		items[i] = i
	}

	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	c.Request = httptest.NewRequest(http.MethodGet, "/items", nil)

	got, meta := Paginate(c, items)

	assert.Len(t, got, 25)
	assert.Equal(t, PaginationMeta{Total: 25, TotalPages: 1, Page: 1, PageSize: 25}, meta)
}

func TestError(t *testing.T) {
	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)

	Error(c, http.StatusNotFound, "NOT_FOUND", "Employee not found", nil)

	var body map[string]any
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, false, body["ok"])
	assert.Equal(t, "Employee not found", body["error"].(map[string]any)["message"])
	assert.NotContains(t, body, "data")
	assert.NotContains(t, body["error"], "details")
}

func TestSuccessWithMeta(t *testing.T) {
	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)

	meta := NewPaginationMeta(21, 2, 10)
	Success(c, http.StatusOK, []string{"a"}, &meta)

	assert.JSONEq(t,
		`{"ok":true,"data":["a"],"meta":{"total":21,"totalPages":3,"page":2,"pageSize":10}}`,
		w.Body.String(),
	)
}
