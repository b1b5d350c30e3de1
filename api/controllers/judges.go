package controllers

import (
	"net/http"

	"github.com/alex-pricope/hackathon-voting/api/models"
	"github.com/alex-pricope/hackathon-voting/api/transport"
	"github.com/alex-pricope/hackathon-voting/identity"
	"github.com/alex-pricope/hackathon-voting/logging"
	"github.com/alex-pricope/hackathon-voting/storage"
	"github.com/alex-pricope/hackathon-voting/workflow"
	"github.com/gin-gonic/gin"
)

type JudgeController struct {
	gateway   *storage.Gateway
	judgeCode string
}

func NewJudgeController(gateway *storage.Gateway, judgeCode string) *JudgeController {
	return &JudgeController{gateway: gateway, judgeCode: judgeCode}
}

func (c *JudgeController) RegisterRoutes(engine *gin.Engine) {
	gate := transport.JudgeGateMiddleware(c.judgeCode)

	engine.GET("/api/judges", gate, c.listJudges)

	group := engine.Group("/api/judge", gate)
	group.GET("/selection", c.getSelection)
	group.POST("/selection", c.selectJudge)
	group.DELETE("/selection", c.clearSelection)
	group.GET("/sheet", c.getSheet)
	group.PUT("/votes/:teamId", c.scoreTeam)
	group.POST("/submit", c.finalize)
}

// listJudges godoc
// @Summary List judge profiles
// @Tags judges
// @Produce json
// @Param code query string false "Judge passphrase, required on first use"
// @Success 200 {array} models.JudgeResponse
// @Failure 403 {object} models.ErrorResponse
// @Router /api/judges [get]
func (c *JudgeController) listJudges(g *gin.Context) {
	judges, err := c.gateway.ListJudges(g.Request.Context())
	if err != nil {
		respondError(g, "JUDGE", err)
		return
	}
	responses := make([]models.JudgeResponse, 0, len(judges))
	for _, j := range judges {
		responses = append(responses, models.TransformJudgeFromStorage(j))
	}
	g.JSON(http.StatusOK, responses)
}

// getSelection godoc
// @Summary Judge profile selected on this device
// @Tags judges
// @Produce json
// @Success 200 {object} models.SelectedJudgeDTO
// @Failure 404 {object} models.ErrorResponse
// @Router /api/judge/selection [get]
func (c *JudgeController) getSelection(g *gin.Context) {
	selected := transport.Device(g).SelectedJudge()
	if selected == nil {
		g.JSON(http.StatusNotFound, &models.ErrorResponse{Error: "no judge selected"})
		return
	}
	g.JSON(http.StatusOK, models.TransformSelectedJudge(selected))
}

// selectJudge godoc
// @Summary Pick the judge profile this device scores as
// @Tags judges
// @Accept json
// @Produce json
// @Param selection body models.SelectJudgeRequest true "Judge"
// @Success 200 {object} models.SelectedJudgeDTO
// @Failure 404 {object} models.ErrorResponse
// @Router /api/judge/selection [post]
func (c *JudgeController) selectJudge(g *gin.Context) {
	var req models.SelectJudgeRequest
	if err := g.ShouldBindJSON(&req); err != nil || req.JudgeID == "" {
		g.JSON(http.StatusBadRequest, &models.ErrorResponse{Error: "judgeId is required"})
		return
	}

	judge, err := c.gateway.GetJudge(g.Request.Context(), req.JudgeID)
	if err != nil {
		respondError(g, "JUDGE", err)
		return
	}
	if judge == nil {
		g.JSON(http.StatusNotFound, &models.ErrorResponse{Error: "judge not found"})
		return
	}

	selected := identity.SelectedJudge{ID: judge.ID, Name: judge.Name, Title: judge.Title}
	if err := transport.Device(g).SelectJudge(selected); err != nil {
		respondError(g, "JUDGE", err)
		return
	}
	logging.Log.Infof("JUDGE: device selected judge %s", judge.ID)
	g.JSON(http.StatusOK, models.TransformSelectedJudge(&selected))
}

// clearSelection godoc
// @Summary Forget the selected judge profile
// @Tags judges
// @Produce json
// @Success 200 {object} models.MessageResponse
// @Router /api/judge/selection [delete]
func (c *JudgeController) clearSelection(g *gin.Context) {
	if err := transport.Device(g).ClearJudge(); err != nil {
		respondError(g, "JUDGE", err)
		return
	}
	g.JSON(http.StatusOK, &models.MessageResponse{Message: "judge selection cleared"})
}

// getSheet godoc
// @Summary Scorecards of the selected judge
// @Description One card per team with the stored rubric, plus progress and the final latch
// @Tags judges
// @Produce json
// @Success 200 {object} models.JudgeSheetResponse
// @Failure 409 {object} models.ErrorResponse "No judge selected"
// @Router /api/judge/sheet [get]
func (c *JudgeController) getSheet(g *gin.Context) {
	session, ok := c.load(g)
	if !ok {
		return
	}
	g.JSON(http.StatusOK, models.TransformJudgeSession(session))
}

// scoreTeam godoc
// @Summary Score one team
// @Description Stores the rubric for a team, replacing any earlier one. Criteria left at 0 keep their stored value.
// @Tags judges
// @Accept json
// @Produce json
// @Param teamId path int true "Team ID"
// @Param vote body models.JudgeVoteRequest true "Rubric"
// @Success 200 {object} models.ScorecardResponse
// @Failure 400 {object} models.ErrorResponse "Rubric value out of range or missing"
// @Failure 404 {object} models.ErrorResponse "Unknown team"
// @Failure 423 {object} models.ErrorResponse "Scores are final"
// @Router /api/judge/votes/{teamId} [put]
func (c *JudgeController) scoreTeam(g *gin.Context) {
	teamID, ok := teamIDParam(g, "teamId")
	if !ok {
		return
	}
	var req models.JudgeVoteRequest
	if err := g.ShouldBindJSON(&req); err != nil {
		g.JSON(http.StatusBadRequest, &models.ErrorResponse{Error: "invalid request format"})
		return
	}

	session, ok := c.load(g)
	if !ok {
		return
	}

	values := map[workflow.Criterion]int{
		workflow.CriterionFeasibility:       req.Feasibility,
		workflow.CriterionTechnicalApproach: req.TechnicalApproach,
		workflow.CriterionInnovation:        req.Innovation,
		workflow.CriterionPitchPresentation: req.PitchPresentation,
	}
	for _, criterion := range workflow.Criteria {
		if values[criterion] == 0 {
			continue
		}
		if err := session.SetScore(teamID, criterion, values[criterion]); err != nil {
			respondError(g, "JUDGE", err)
			return
		}
	}
	if err := session.SetComments(teamID, req.Comments); err != nil {
		respondError(g, "JUDGE", err)
		return
	}
	if err := session.SubmitTeam(g.Request.Context(), teamID); err != nil {
		respondError(g, "JUDGE", err)
		return
	}

	card, err := session.Card(teamID)
	if err != nil {
		respondError(g, "JUDGE", err)
		return
	}
	g.JSON(http.StatusOK, models.TransformScorecard(card))
}

// finalize godoc
// @Summary Make the selected judge's scores final
// @Description Requires a stored vote for every team. Afterwards no score of this judge can change.
// @Tags judges
// @Produce json
// @Success 200 {object} models.JudgeSheetResponse
// @Failure 400 {object} models.ErrorResponse "Teams left unscored"
// @Failure 423 {object} models.ErrorResponse "Already final"
// @Router /api/judge/submit [post]
func (c *JudgeController) finalize(g *gin.Context) {
	session, ok := c.load(g)
	if !ok {
		return
	}
	if err := session.Finalize(g.Request.Context()); err != nil {
		respondError(g, "JUDGE", err)
		return
	}
	g.JSON(http.StatusOK, models.TransformJudgeSession(session))
}

func (c *JudgeController) load(g *gin.Context) (*workflow.JudgeSession, bool) {
	selected := transport.Device(g).SelectedJudge()
	if selected == nil {
		g.JSON(http.StatusConflict, &models.ErrorResponse{Error: "select a judge profile first"})
		return nil, false
	}
	session := workflow.NewJudgeSession(c.gateway, selected.ID)
	if err := session.Load(g.Request.Context()); err != nil {
		respondError(g, "JUDGE", err)
		return nil, false
	}
	return session, true
}
