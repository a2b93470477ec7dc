package pagination_test

import (
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/taibuivan/artistly/pkg/pagination"
)

func TestFromRequest_Clamps(t *testing.T) {
	tests := []struct {
		name  string
		query string
		want  pagination.Params
	}{
		{"defaults", "", pagination.Params{Page: 1, Limit: pagination.DefaultLimit}},
		{"explicit", "?page=3&limit=5", pagination.Params{Page: 3, Limit: 5}},
		{"negative_page", "?page=-2", pagination.Params{Page: 1, Limit: pagination.DefaultLimit}},
		{"excessive_limit", "?limit=1000", pagination.Params{Page: 1, Limit: pagination.DefaultLimit}},
		{"garbage", "?page=abc&limit=x", pagination.Params{Page: 1, Limit: pagination.DefaultLimit}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			request := httptest.NewRequest("GET", "/artists"+tt.query, nil)
			assert.Equal(t, tt.want, pagination.FromRequest(request))
		})
	}
}

func TestParams_Window(t *testing.T) {
	params := pagination.Params{Page: 2, Limit: 10}

	start, end := params.Window(24)
	assert.Equal(t, 10, start)
	assert.Equal(t, 20, end)

	start, end = pagination.Params{Page: 3, Limit: 10}.Window(24)
	assert.Equal(t, 20, start)
	assert.Equal(t, 24, end)

	start, end = pagination.Params{Page: 9, Limit: 10}.Window(24)
	assert.Equal(t, 24, start)
	assert.Equal(t, 24, end)
}

func TestNewMeta(t *testing.T) {
	meta := pagination.NewMeta(1, 20, 41).WithAvailable(50)

	assert.Equal(t, 3, meta.TotalPages)
	assert.Equal(t, 41, meta.Total)
	assert.Equal(t, 50, meta.Available)
}
