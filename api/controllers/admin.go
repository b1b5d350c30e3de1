package controllers

import (
	"net/http"
	"strings"

	"github.com/alex-pricope/hackathon-voting/aggregation"
	"github.com/alex-pricope/hackathon-voting/api/models"
	"github.com/alex-pricope/hackathon-voting/api/transport"
	"github.com/alex-pricope/hackathon-voting/logging"
	"github.com/alex-pricope/hackathon-voting/storage"
	"github.com/gin-gonic/gin"
	gonanoid "github.com/matoous/go-nanoid/v2"
)

const judgeIDAlphabet = "abcdefghijklmnopqrstuvwxyz0123456789"

type AdminController struct {
	gateway    *storage.Gateway
	adminToken string
}

func NewAdminController(gateway *storage.Gateway, adminToken string) *AdminController {
	return &AdminController{
		gateway:    gateway,
		adminToken: adminToken,
	}
}

func (c *AdminController) RegisterRoutes(engine *gin.Engine) {
	auth := transport.AdminAuthMiddleware(c.adminToken)

	group := engine.Group("/api/admin", auth)
	group.GET("/leaderboard", c.leaderboard)
	group.GET("/predictions", c.listPredictions)
	group.GET("/scores", c.judgeScores)

	engine.POST("/api/meta/judges", auth, c.createJudge)
}

// @Security AdminToken
// leaderboard godoc
// @Summary Attendee vote leaderboard
// @Description Vote count, score sum and average per team, highest average first
// @Tags admin
// @Produce json
// @Success 200 {array} aggregation.TeamStats
// @Failure 503 {object} models.ErrorResponse
// @Router /api/admin/leaderboard [get]
func (c *AdminController) leaderboard(g *gin.Context) {
	ctx := g.Request.Context()
	votes, err := c.gateway.ListVotes(ctx)
	if err != nil {
		respondError(g, "ADMIN", err)
		return
	}
	teams, err := c.gateway.ListTeams(ctx)
	if err != nil {
		respondError(g, "ADMIN", err)
		return
	}

	stats := aggregation.Leaderboard(votes, teams)
	if stats == nil {
		stats = []aggregation.TeamStats{}
	}
	logging.Log.Infof("ADMIN: leaderboard over %d votes", len(votes))
	g.JSON(http.StatusOK, stats)
}

// @Security AdminToken
// listPredictions godoc
// @Summary All predictions, oldest first
// @Tags admin
// @Produce json
// @Success 200 {array} models.PredictionResponse
// @Failure 503 {object} models.ErrorResponse
// @Router /api/admin/predictions [get]
func (c *AdminController) listPredictions(g *gin.Context) {
	predictions, err := c.gateway.ListPredictions(g.Request.Context())
	if err != nil {
		respondError(g, "ADMIN", err)
		return
	}
	responses := make([]models.PredictionResponse, 0, len(predictions))
	for _, p := range predictions {
		responses = append(responses, models.TransformPredictionFromStorage(p))
	}
	g.JSON(http.StatusOK, responses)
}

// @Security AdminToken
// judgeScores godoc
// @Summary Every judge score per team
// @Tags admin
// @Produce json
// @Success 200 {array} aggregation.TeamBreakdown
// @Failure 503 {object} models.ErrorResponse
// @Router /api/admin/scores [get]
func (c *AdminController) judgeScores(g *gin.Context) {
	rows, err := c.gateway.ListAllJudgeVotesJoined(g.Request.Context())
	if err != nil {
		respondError(g, "ADMIN", err)
		return
	}
	breakdown := aggregation.JudgeBreakdown(rows)
	if breakdown == nil {
		breakdown = []aggregation.TeamBreakdown{}
	}
	g.JSON(http.StatusOK, breakdown)
}

// @Security AdminToken
// createJudge godoc
// @Summary Register a judge profile
// @Description The id is generated when left empty
// @Tags Meta/Judges
// @Accept json
// @Produce json
// @Param judge body models.JudgeCreateRequest true "Judge"
// @Success 200 {object} models.JudgeResponse
// @Failure 400 {object} models.ErrorResponse
// @Failure 409 {object} models.ErrorResponse
// @Router /api/meta/judges [post]
func (c *AdminController) createJudge(g *gin.Context) {
	var req models.JudgeCreateRequest
	if err := g.ShouldBindJSON(&req); err != nil {
		g.JSON(http.StatusBadRequest, &models.ErrorResponse{Error: "invalid request"})
		return
	}
	req.Name = strings.TrimSpace(req.Name)
	if req.Name == "" {
		g.JSON(http.StatusBadRequest, &models.ErrorResponse{Error: "invalid request empty name"})
		return
	}
	if req.ID == "" {
		id, err := gonanoid.Generate(judgeIDAlphabet, 8)
		if err != nil {
			logging.Log.Errorf("ADMIN: failed to generate judge id: %v", err)
			g.JSON(http.StatusInternalServerError, &models.ErrorResponse{Error: "could not generate judge id"})
			return
		}
		req.ID = id
	}

	judge := &storage.Judge{ID: req.ID, Name: req.Name, Title: strings.TrimSpace(req.Title)}
	if err := c.gateway.Judges.Create(g.Request.Context(), judge); err != nil {
		respondError(g, "META", err)
		return
	}
	logging.Log.Infof("ADMIN: created judge %s (%s)", judge.ID, judge.Name)
	g.JSON(http.StatusOK, models.TransformJudgeFromStorage(judge))
}
