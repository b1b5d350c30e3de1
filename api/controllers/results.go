package controllers

import (
	"net/http"

	"github.com/alex-pricope/hackathon-voting/aggregation"
	"github.com/alex-pricope/hackathon-voting/api/transport"
	"github.com/alex-pricope/hackathon-voting/storage"
	"github.com/gin-gonic/gin"
)

type ResultsController struct {
	gateway   *storage.Gateway
	judgeCode string
}

func NewResultsController(gateway *storage.Gateway, judgeCode string) *ResultsController {
	return &ResultsController{gateway: gateway, judgeCode: judgeCode}
}

func (c *ResultsController) RegisterRoutes(engine *gin.Engine) {
	engine.GET("/api/results", transport.JudgeGateMiddleware(c.judgeCode), c.judgeResults)
}

// judgeResults godoc
// @Summary Judge results
// @Description Per-team averages over the judges who scored it, highest average total first. Teams nobody scored are left out.
// @Tags results
// @Produce json
// @Success 200 {array} aggregation.TeamResult
// @Failure 403 {object} models.ErrorResponse
// @Failure 503 {object} models.ErrorResponse
// @Router /api/results [get]
func (c *ResultsController) judgeResults(g *gin.Context) {
	rows, err := c.gateway.ListAllJudgeVotesJoined(g.Request.Context())
	if err != nil {
		respondError(g, "RESULTS", err)
		return
	}
	results := aggregation.JudgeResults(rows)
	if results == nil {
		results = []aggregation.TeamResult{}
	}
	g.JSON(http.StatusOK, results)
}
