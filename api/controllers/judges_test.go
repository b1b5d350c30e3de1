package controllers

import (
	"fmt"
	"net/http"
	"testing"

	testutils "github.com/alex-pricope/hackathon-voting/api/controllers/testing"
	"github.com/alex-pricope/hackathon-voting/aggregation"
	"github.com/alex-pricope/hackathon-voting/api/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fullRubric(f, ta, i, pp int) models.JudgeVoteRequest {
	return models.JudgeVoteRequest{Feasibility: f, TechnicalApproach: ta, Innovation: i, PitchPresentation: pp}
}

func TestJudgeGate(t *testing.T) {
	_, router := setupTestRouter(t)
	browser := testutils.NewBrowser(router)

	t.Run("Unhappy path - no code", func(t *testing.T) {
		w := browser.Do(http.MethodGet, "/api/judges", nil, nil)
		assert.Equal(t, http.StatusForbidden, w.Code)
	})

	t.Run("Unhappy path - wrong code", func(t *testing.T) {
		w := browser.Do(http.MethodGet, "/api/judges?code=guess", nil, nil)
		assert.Equal(t, http.StatusForbidden, w.Code)
	})

	t.Run("Happy path - code is remembered", func(t *testing.T) {
		w := browser.Do(http.MethodGet, "/api/judges?code="+testJudgeCode, nil, nil)
		require.Equal(t, http.StatusOK, w.Code)
		judges := decode[[]models.JudgeResponse](t, w)
		require.Len(t, judges, 2)
		assert.Equal(t, "Ada", judges[0].Name)

		w = browser.Do(http.MethodGet, "/api/judges", nil, nil)
		assert.Equal(t, http.StatusOK, w.Code)

		device := decode[models.DeviceResponse](t, browser.Do(http.MethodGet, "/api/device", nil, nil))
		assert.Equal(t, "judge", device.Role)
	})
}

func TestJudgeSelection(t *testing.T) {
	_, router := setupTestRouter(t)
	browser := testutils.NewBrowser(router)
	require.Equal(t, http.StatusOK, browser.Do(http.MethodGet, "/api/judges?code="+testJudgeCode, nil, nil).Code)

	t.Run("Sheet needs a selected judge", func(t *testing.T) {
		w := browser.Do(http.MethodGet, "/api/judge/sheet", nil, nil)
		assert.Equal(t, http.StatusConflict, w.Code)
	})

	t.Run("Unknown judge", func(t *testing.T) {
		w := browser.Do(http.MethodPost, "/api/judge/selection", models.SelectJudgeRequest{JudgeID: "nobody"}, nil)
		assert.Equal(t, http.StatusNotFound, w.Code)
	})

	t.Run("Select, read back and clear", func(t *testing.T) {
		w := browser.Do(http.MethodPost, "/api/judge/selection", models.SelectJudgeRequest{JudgeID: "j2"}, nil)
		require.Equal(t, http.StatusOK, w.Code)

		w = browser.Do(http.MethodGet, "/api/judge/selection", nil, nil)
		require.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "Grace", decode[models.SelectedJudgeDTO](t, w).Name)

		w = browser.Do(http.MethodDelete, "/api/judge/selection", nil, nil)
		require.Equal(t, http.StatusOK, w.Code)

		w = browser.Do(http.MethodGet, "/api/judge/selection", nil, nil)
		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}

func TestJudgeScoring(t *testing.T) {
	_, router := setupTestRouter(t)
	browser := judgeBrowser(t, router, "j1")

	t.Run("Empty sheet", func(t *testing.T) {
		w := browser.Do(http.MethodGet, "/api/judge/sheet", nil, nil)
		require.Equal(t, http.StatusOK, w.Code)
		sheet := decode[models.JudgeSheetResponse](t, w)
		assert.Equal(t, "open", sheet.Latch)
		assert.Equal(t, 0, sheet.Scored)
		assert.Equal(t, 4, sheet.Total)
		assert.False(t, sheet.CanFinalize)
		require.Len(t, sheet.Cards, 4)
		assert.Equal(t, "unscored", sheet.Cards[0].State)
	})

	t.Run("Unhappy path - incomplete rubric", func(t *testing.T) {
		w := browser.Do(http.MethodPut, "/api/judge/votes/1", models.JudgeVoteRequest{Feasibility: 4}, nil)
		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Contains(t, decode[models.ErrorResponse](t, w).Error, "technical_approach")
	})

	t.Run("Unhappy path - value out of range", func(t *testing.T) {
		w := browser.Do(http.MethodPut, "/api/judge/votes/1", fullRubric(6, 4, 3, 2), nil)
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("Unhappy path - unknown team", func(t *testing.T) {
		w := browser.Do(http.MethodPut, "/api/judge/votes/99", fullRubric(5, 4, 3, 2), nil)
		assert.Equal(t, http.StatusNotFound, w.Code)
	})

	t.Run("Happy path - score and rescore", func(t *testing.T) {
		w := browser.Do(http.MethodPut, "/api/judge/votes/1", fullRubric(5, 4, 3, 2), nil)
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())
		card := decode[models.ScorecardResponse](t, w)
		assert.Equal(t, 14, card.TotalScore)
		assert.True(t, card.Saved)

		req := models.JudgeVoteRequest{PitchPresentation: 5, Comments: "great demo"}
		w = browser.Do(http.MethodPut, "/api/judge/votes/1", req, nil)
		require.Equal(t, http.StatusOK, w.Code)
		card = decode[models.ScorecardResponse](t, w)
		assert.Equal(t, 17, card.TotalScore)
		assert.Equal(t, "great demo", card.Comments)
	})

	t.Run("Unhappy path - finalize with teams left", func(t *testing.T) {
		w := browser.Do(http.MethodPost, "/api/judge/submit", nil, nil)
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("Happy path - finalize", func(t *testing.T) {
		for teamID := 2; teamID <= 4; teamID++ {
			w := browser.Do(http.MethodPut, fmt.Sprintf("/api/judge/votes/%d", teamID), fullRubric(3, 3, 3, 3), nil)
			require.Equal(t, http.StatusOK, w.Code)
		}

		sheet := decode[models.JudgeSheetResponse](t, browser.Do(http.MethodGet, "/api/judge/sheet", nil, nil))
		assert.Equal(t, 4, sheet.Scored)
		assert.True(t, sheet.CanFinalize)

		w := browser.Do(http.MethodPost, "/api/judge/submit", nil, nil)
		require.Equal(t, http.StatusOK, w.Code)
		sheet = decode[models.JudgeSheetResponse](t, w)
		assert.Equal(t, "final", sheet.Latch)
		assert.True(t, sheet.Judge.Submitted)
		assert.False(t, sheet.CanFinalize)
	})

	t.Run("Unhappy path - edits after finalize", func(t *testing.T) {
		w := browser.Do(http.MethodPut, "/api/judge/votes/2", fullRubric(5, 5, 5, 5), nil)
		assert.Equal(t, http.StatusLocked, w.Code)

		w = browser.Do(http.MethodPost, "/api/judge/submit", nil, nil)
		assert.Equal(t, http.StatusLocked, w.Code)

		sheet := decode[models.JudgeSheetResponse](t, browser.Do(http.MethodGet, "/api/judge/sheet", nil, nil))
		assert.Equal(t, 12, sheet.Cards[1].TotalScore)
	})
}

func TestJudgeResults(t *testing.T) {
	_, router := setupTestRouter(t)
	ada := judgeBrowser(t, router, "j1")
	grace := judgeBrowser(t, router, "j2")

	require.Equal(t, http.StatusOK, ada.Do(http.MethodPut, "/api/judge/votes/1", fullRubric(5, 5, 5, 5), nil).Code)
	require.Equal(t, http.StatusOK, grace.Do(http.MethodPut, "/api/judge/votes/1", fullRubric(5, 5, 5, 5), nil).Code)
	require.Equal(t, http.StatusOK, ada.Do(http.MethodPut, "/api/judge/votes/2", fullRubric(1, 1, 1, 1), nil).Code)

	t.Run("Averages per team, unscored teams absent", func(t *testing.T) {
		w := ada.Do(http.MethodGet, "/api/results", nil, nil)
		require.Equal(t, http.StatusOK, w.Code)
		results := decode[[]aggregation.TeamResult](t, w)
		require.Len(t, results, 2)
		assert.Equal(t, 1, results[0].TeamID)
		assert.Equal(t, "Alpha", results[0].TeamName)
		assert.InDelta(t, 20.0, results[0].AvgTotalScore, 0.0001)
		assert.Equal(t, 2, results[0].JudgeCount)
		assert.Equal(t, 2, results[1].TeamID)
		assert.InDelta(t, 4.0, results[1].AvgTotalScore, 0.0001)
	})

	t.Run("Results are behind the judge gate", func(t *testing.T) {
		w := testutils.PerformRequest(router, http.MethodGet, "/api/results", nil, nil)
		assert.Equal(t, http.StatusForbidden, w.Code)
	})

	t.Run("Admin breakdown lists every judge", func(t *testing.T) {
		w := testutils.PerformRequest(router, http.MethodGet, "/api/admin/scores", nil, adminHeaders)
		require.Equal(t, http.StatusOK, w.Code)
		breakdown := decode[[]aggregation.TeamBreakdown](t, w)
		require.Len(t, breakdown, 2)
		assert.Len(t, breakdown[0].Scores, 2)
		assert.Len(t, breakdown[1].Scores, 1)
	})
}
