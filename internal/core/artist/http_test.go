package artist_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taibuivan/artistly/internal/core/artist"
	"github.com/taibuivan/artistly/internal/platform/notice"
	"github.com/taibuivan/artistly/pkg/pagination"
)

type listEnvelope struct {
	Data []artist.Artist `json:"data"`
	Meta pagination.Meta `json:"meta"`
}

func serve(t *testing.T, method, target string) *httptest.ResponseRecorder {
	t.Helper()
	router := artist.NewHandler(newFixtureService(t)).Routes()

	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, httptest.NewRequest(method, target, nil))
	return recorder
}

func TestHandler_ListArtists(t *testing.T) {
	query := url.Values{"category": {"All"}, "location": {"Mumbai"}}
	recorder := serve(t, http.MethodGet, "/?"+query.Encode())
	require.Equal(t, http.StatusOK, recorder.Code)

	var body listEnvelope
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &body))
	assert.Equal(t, []int{1, 12}, ids(body.Data))
	assert.Equal(t, 2, body.Meta.Total)
	assert.Equal(t, 12, body.Meta.Available)
}

func TestHandler_ListArtists_Paginates(t *testing.T) {
	recorder := serve(t, http.MethodGet, "/?limit=5&page=3")
	require.Equal(t, http.StatusOK, recorder.Code)

	var body listEnvelope
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &body))
	assert.Equal(t, []int{11, 12}, ids(body.Data))
	assert.Equal(t, 3, body.Meta.TotalPages)

	recorder = serve(t, http.MethodGet, "/?limit=5&page=9")
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &body))
	assert.NotNil(t, body.Data)
	assert.Empty(t, body.Data)
}

func TestHandler_GetArtist(t *testing.T) {
	recorder := serve(t, http.MethodGet, "/4")
	require.Equal(t, http.StatusOK, recorder.Code)
	assert.Contains(t, recorder.Body.String(), "Vikram Mehta")

	assert.Equal(t, http.StatusNotFound, serve(t, http.MethodGet, "/404").Code)
	assert.Equal(t, http.StatusBadRequest, serve(t, http.MethodGet, "/abc").Code)
}

func TestHandler_RequestQuote(t *testing.T) {
	recorder := serve(t, http.MethodPost, "/2/quote")
	require.Equal(t, http.StatusOK, recorder.Code)

	var body struct {
		Notice notice.Notice `json:"notice"`
	}
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &body))
	assert.Equal(t, "Quote request sent to DJ Arjun!", body.Notice.Title)
	assert.Equal(t, notice.KindSuccess, body.Notice.Kind)

	assert.Equal(t, http.StatusNotFound, serve(t, http.MethodPost, "/99/quote").Code)
}
