package controllers

import (
	"net/http"
	"testing"

	testutils "github.com/alex-pricope/hackathon-voting/api/controllers/testing"
	"github.com/alex-pricope/hackathon-voting/aggregation"
	"github.com/alex-pricope/hackathon-voting/api/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAdminAuth(t *testing.T) {
	_, router := setupTestRouter(t)

	for _, path := range []string{"/api/admin/leaderboard", "/api/admin/predictions", "/api/admin/scores"} {
		w := testutils.PerformRequest(router, http.MethodGet, path, nil, nil)
		assert.Equal(t, http.StatusUnauthorized, w.Code, path)

		w = testutils.PerformRequest(router, http.MethodGet, path, nil, map[string]string{"x-admin-token": "wrong"})
		assert.Equal(t, http.StatusUnauthorized, w.Code, path)
	}
}

func TestAdminEmptyViews(t *testing.T) {
	_, router := setupTestRouter(t)

	w := testutils.PerformRequest(router, http.MethodGet, "/api/admin/leaderboard", nil, adminHeaders)
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, "[]", w.Body.String())

	w = testutils.PerformRequest(router, http.MethodGet, "/api/admin/scores", nil, adminHeaders)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Empty(t, decode[[]aggregation.TeamBreakdown](t, w))
}

func TestCreateJudge(t *testing.T) {
	_, router := setupTestRouter(t)

	t.Run("Happy path - generated id", func(t *testing.T) {
		req := models.JudgeCreateRequest{Name: "Linus", Title: "Guest"}
		w := testutils.PerformRequest(router, http.MethodPost, "/api/meta/judges", req, adminHeaders)
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())
		judge := decode[models.JudgeResponse](t, w)
		assert.Len(t, judge.ID, 8)
		assert.False(t, judge.Submitted)

		browser := testutils.NewBrowser(router)
		w = browser.Do(http.MethodGet, "/api/judges?code="+testJudgeCode, nil, nil)
		assert.Len(t, decode[[]models.JudgeResponse](t, w), 3)
	})

	t.Run("Unhappy path - duplicate id", func(t *testing.T) {
		req := models.JudgeCreateRequest{ID: "j1", Name: "Impostor"}
		w := testutils.PerformRequest(router, http.MethodPost, "/api/meta/judges", req, adminHeaders)
		assert.Equal(t, http.StatusConflict, w.Code)
	})

	t.Run("Unhappy path - empty name", func(t *testing.T) {
		req := models.JudgeCreateRequest{Name: " "}
		w := testutils.PerformRequest(router, http.MethodPost, "/api/meta/judges", req, adminHeaders)
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("Unhappy path - missing token", func(t *testing.T) {
		req := models.JudgeCreateRequest{Name: "Nobody"}
		w := testutils.PerformRequest(router, http.MethodPost, "/api/meta/judges", req, nil)
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})
}
