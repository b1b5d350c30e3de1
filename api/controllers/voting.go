package controllers

import (
	"net/http"

	"github.com/alex-pricope/hackathon-voting/api/models"
	"github.com/alex-pricope/hackathon-voting/api/transport"
	"github.com/alex-pricope/hackathon-voting/storage"
	"github.com/alex-pricope/hackathon-voting/workflow"
	"github.com/gin-gonic/gin"
)

type VotingController struct {
	gateway *storage.Gateway
}

func NewVotingController(gateway *storage.Gateway) *VotingController {
	return &VotingController{gateway: gateway}
}

func (c *VotingController) RegisterRoutes(engine *gin.Engine) {
	group := engine.Group("/api")

	group.GET("/device", c.getDevice)
	group.GET("/teams/:id/vote", c.getVoteStatus)
	group.POST("/teams/:id/vote", c.registerVote)
}

// getDevice godoc
// @Summary Describe the calling device
// @Description Returns the device id (minted on first contact) and the flags stored with it
// @Tags voting
// @Produce json
// @Success 200 {object} models.DeviceResponse
// @Router /api/device [get]
func (c *VotingController) getDevice(g *gin.Context) {
	device := transport.Device(g)
	id, err := device.ID()
	if err != nil {
		respondError(g, "DEVICE", err)
		return
	}
	g.JSON(http.StatusOK, &models.DeviceResponse{
		DeviceID:       id,
		PredictionMade: device.PredictionMade(),
		Role:           string(device.Role()),
		VotedTeams:     device.VotedTeams(),
		SelectedJudge:  models.TransformSelectedJudge(device.SelectedJudge()),
	})
}

// getVoteStatus godoc
// @Summary Check whether this device rated a team
// @Tags voting
// @Produce json
// @Param id path int true "Team ID"
// @Success 200 {object} models.VoteStatusResponse
// @Failure 404 {object} models.ErrorResponse "Unknown team"
// @Failure 503 {object} models.ErrorResponse "Store unavailable"
// @Router /api/teams/{id}/vote [get]
func (c *VotingController) getVoteStatus(g *gin.Context) {
	flow, ok := c.newFlow(g)
	if !ok {
		return
	}
	state, err := flow.Check(g.Request.Context())
	if err != nil {
		respondError(g, "VOTE", err)
		return
	}
	g.JSON(http.StatusOK, voteStatus(flow, state))
}

// registerVote godoc
// @Summary Rate a team
// @Description Stores a 1-10 score for the team. A device rates each team at most once.
// @Tags voting
// @Accept json
// @Produce json
// @Param id path int true "Team ID"
// @Param vote body models.RegisterVoteRequest true "Score"
// @Success 200 {object} models.VoteStatusResponse
// @Failure 400 {object} models.ErrorResponse "Score out of range"
// @Failure 404 {object} models.ErrorResponse "Unknown team"
// @Failure 409 {object} models.ErrorResponse "Already rated from this device"
// @Failure 503 {object} models.ErrorResponse "Store unavailable"
// @Router /api/teams/{id}/vote [post]
func (c *VotingController) registerVote(g *gin.Context) {
	var req models.RegisterVoteRequest
	if err := g.ShouldBindJSON(&req); err != nil {
		g.JSON(http.StatusBadRequest, &models.ErrorResponse{Error: "invalid request format"})
		return
	}

	flow, ok := c.newFlow(g)
	if !ok {
		return
	}
	ctx := g.Request.Context()

	if _, err := flow.Check(ctx); err != nil {
		respondError(g, "VOTE", err)
		return
	}
	if err := flow.SetScore(req.Score); err != nil {
		respondError(g, "VOTE", err)
		return
	}
	if err := flow.Submit(ctx); err != nil {
		respondError(g, "VOTE", err)
		return
	}
	g.JSON(http.StatusOK, voteStatus(flow, flow.State()))
}

func (c *VotingController) newFlow(g *gin.Context) (*workflow.TeamVoteFlow, bool) {
	teamID, ok := teamIDParam(g, "id")
	if !ok {
		return nil, false
	}
	team, err := c.gateway.GetTeam(g.Request.Context(), teamID)
	if err != nil {
		respondError(g, "VOTE", err)
		return nil, false
	}
	if team == nil {
		g.JSON(http.StatusNotFound, &models.ErrorResponse{Error: "team not found"})
		return nil, false
	}

	device := transport.Device(g)
	deviceID, err := device.ID()
	if err != nil {
		respondError(g, "VOTE", err)
		return nil, false
	}
	return workflow.NewTeamVoteFlow(c.gateway, device, teamID, deviceID), true
}

func voteStatus(flow *workflow.TeamVoteFlow, state workflow.VoteState) *models.VoteStatusResponse {
	return &models.VoteStatusResponse{
		TeamID: flow.TeamID(),
		State:  state.String(),
		Voted:  state == workflow.VoteAlreadyVoted,
	}
}
