package submission_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taibuivan/artistly/internal/core/submission"
)

func TestHandler(t *testing.T) {
	service, _ := newService(t)
	router := submission.NewHandler(service).Routes()

	do := func(method, target, body string) *httptest.ResponseRecorder {
		request := httptest.NewRequest(method, target, strings.NewReader(body))
		recorder := httptest.NewRecorder()
		router.ServeHTTP(recorder, request)
		return recorder
	}

	t.Run("list_approved", func(t *testing.T) {
		recorder := do(http.MethodGet, "/?status=approved", "")
		require.Equal(t, http.StatusOK, recorder.Code)

		var body struct {
			Data []submission.Submission `json:"data"`
		}
		require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &body))
		assert.Len(t, body.Data, 2)
	})

	t.Run("list_unknown_status", func(t *testing.T) {
		recorder := do(http.MethodGet, "/?status=archived", "")
		assert.Equal(t, http.StatusBadRequest, recorder.Code)
		assert.Contains(t, recorder.Body.String(), "VALIDATION_ERROR")
	})

	t.Run("stats", func(t *testing.T) {
		recorder := do(http.MethodGet, "/stats", "")
		require.Equal(t, http.StatusOK, recorder.Code)
		assert.JSONEq(t, `{"data":{"total":8,"approved":2,"pending":3,"thisMonth":3}}`, recorder.Body.String())
	})

	t.Run("update_status", func(t *testing.T) {
		recorder := do(http.MethodPatch, "/5/status", `{"status":"approved"}`)
		require.Equal(t, http.StatusOK, recorder.Code)

		var body struct {
			Data   submission.Submission `json:"data"`
			Notice struct {
				Title string `json:"title"`
			} `json:"notice"`
		}
		require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &body))
		assert.Equal(t, submission.StatusApproved, body.Data.Status)
		assert.Equal(t, "Status updated successfully", body.Notice.Title)
	})

	t.Run("update_errors", func(t *testing.T) {
		assert.Equal(t, http.StatusBadRequest, do(http.MethodPatch, "/5/status", `{"status":"nope"}`).Code)
		assert.Equal(t, http.StatusBadRequest, do(http.MethodPatch, "/5/status", `not json`).Code)
		assert.Equal(t, http.StatusNotFound, do(http.MethodPatch, "/77/status", `{"status":"review"}`).Code)
	})
}
