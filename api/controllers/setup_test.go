package controllers

import (
	"encoding/json"
	"net/http/httptest"
	"testing"

	testutils "github.com/alex-pricope/hackathon-voting/api/controllers/testing"
	"github.com/alex-pricope/hackathon-voting/api/transport"
	"github.com/alex-pricope/hackathon-voting/logging"
	"github.com/alex-pricope/hackathon-voting/storage"
	"github.com/gin-contrib/sessions/cookie"
	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/require"
)

const (
	testAdminToken = "secret"
	testJudgeCode  = "cq-test"
	testPublicURL  = "https://vote.example.com"
)

var adminHeaders = map[string]string{"x-admin-token": testAdminToken}

func setupTestRouter(t *testing.T) (*storage.Gateway, *gin.Engine) {
	t.Helper()
	logging.Log = logrus.New()

	gateway := storage.NewMemoryGateway(
		[]*storage.Team{
			{ID: 1, Name: "Alpha", Description: "first"},
			{ID: 2, Name: "Beta"},
			{ID: 3, Name: "Gamma"},
			{ID: 4, Name: "Delta"},
		},
		[]*storage.Judge{
			{ID: "j1", Name: "Ada", Title: "CTO"},
			{ID: "j2", Name: "Grace", Title: "Principal Engineer"},
		},
	)

	r := transport.NewRouter(gin.TestMode, cookie.NewStore([]byte("test-session-secret")), nil)
	NewTeamController(gateway.Teams, testPublicURL, testAdminToken).RegisterRoutes(r)
	NewVotingController(gateway).RegisterRoutes(r)
	NewPredictionController(gateway).RegisterRoutes(r)
	NewJudgeController(gateway, testJudgeCode).RegisterRoutes(r)
	NewResultsController(gateway, testJudgeCode).RegisterRoutes(r)
	NewAdminController(gateway, testAdminToken).RegisterRoutes(r)

	return gateway, r
}

func decode[T any](t *testing.T, w *httptest.ResponseRecorder) T {
	t.Helper()
	var out T
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &out), w.Body.String())
	return out
}

// judgeBrowser returns a browser that has passed the judge gate and selected judgeID.
func judgeBrowser(t *testing.T, r *gin.Engine, judgeID string) *testutils.Browser {
	t.Helper()
	b := testutils.NewBrowser(r)
	w := b.Do("GET", "/api/judges?code="+testJudgeCode, nil, nil)
	require.Equal(t, 200, w.Code, w.Body.String())
	w = b.Do("POST", "/api/judge/selection", map[string]string{"judgeId": judgeID}, nil)
	require.Equal(t, 200, w.Code, w.Body.String())
	return b
}
