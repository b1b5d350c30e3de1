package controllers

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/alex-pricope/hackathon-voting/api/models"
	"github.com/alex-pricope/hackathon-voting/api/transport"
	"github.com/alex-pricope/hackathon-voting/logging"
	"github.com/alex-pricope/hackathon-voting/qr"
	"github.com/alex-pricope/hackathon-voting/storage"
	"github.com/gin-gonic/gin"
)

type TeamController struct {
	storage    storage.TeamStorage
	publicURL  string
	adminToken string
}

func NewTeamController(s storage.TeamStorage, publicURL, adminToken string) *TeamController {
	return &TeamController{storage: s, publicURL: publicURL, adminToken: adminToken}
}

func (c *TeamController) RegisterRoutes(engine *gin.Engine) {
	public := engine.Group("/api/teams")
	public.GET("", c.getAll)
	public.GET("/:id", c.get)
	public.GET("/:id/qr", c.qrCode)

	meta := engine.Group("/api/meta/teams", transport.AdminAuthMiddleware(c.adminToken))
	meta.POST("", c.create)
	meta.PUT("/:id", c.update)
	meta.DELETE("/:id", c.delete)
}

// @Summary Get all teams
// @Tags Teams
// @Produce json
// @Success 200 {array} models.TeamResponse
// @Failure 503 {object} models.ErrorResponse
// @Router /api/teams [get]
func (c *TeamController) getAll(g *gin.Context) {
	teams, err := c.storage.GetAll(g.Request.Context())
	if err != nil {
		respondError(g, "TEAMS", err)
		return
	}

	responses := make([]models.TeamResponse, 0, len(teams))
	for _, t := range teams {
		r := models.TransformTeamFromStorage(t)
		r.URL = qr.TeamURL(c.publicURL, t.ID)
		responses = append(responses, r)
	}
	g.JSON(http.StatusOK, responses)
}

// @Summary Get a team by ID
// @Tags Teams
// @Produce json
// @Param id path int true "Team ID"
// @Success 200 {object} models.TeamResponse
// @Failure 400 {object} models.ErrorResponse
// @Failure 404 {object} models.ErrorResponse
// @Router /api/teams/{id} [get]
func (c *TeamController) get(g *gin.Context) {
	team, ok := c.lookup(g)
	if !ok {
		return
	}
	r := models.TransformTeamFromStorage(team)
	r.URL = qr.TeamURL(c.publicURL, team.ID)
	g.JSON(http.StatusOK, r)
}

// @Summary QR code pointing at a team's rating page
// @Tags Teams
// @Produce png
// @Param id path int true "Team ID"
// @Param size query int false "Edge length in pixels"
// @Success 200 {file} binary
// @Failure 404 {object} models.ErrorResponse
// @Router /api/teams/{id}/qr [get]
func (c *TeamController) qrCode(g *gin.Context) {
	team, ok := c.lookup(g)
	if !ok {
		return
	}

	size := qr.DefaultSize
	if raw := g.Query("size"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 64 || n > 1024 {
			g.JSON(http.StatusBadRequest, &models.ErrorResponse{Error: "size must be between 64 and 1024"})
			return
		}
		size = n
	}

	png, err := qr.PNG(qr.TeamURL(c.publicURL, team.ID), size)
	if err != nil {
		logging.Log.Errorf("TEAMS: failed to render QR code for team %d: %v", team.ID, err)
		g.JSON(http.StatusInternalServerError, &models.ErrorResponse{Error: "could not render QR code"})
		return
	}
	g.Header("Content-Disposition", fmt.Sprintf("inline; filename=team-%d.png", team.ID))
	g.Data(http.StatusOK, "image/png", png)
}

func (c *TeamController) lookup(g *gin.Context) (*storage.Team, bool) {
	id, ok := teamIDParam(g, "id")
	if !ok {
		return nil, false
	}
	team, err := c.storage.Get(g.Request.Context(), id)
	if err != nil {
		respondError(g, "TEAMS", err)
		return nil, false
	}
	if team == nil {
		g.JSON(http.StatusNotFound, &models.ErrorResponse{Error: "team not found"})
		return nil, false
	}
	return team, true
}

// @Security AdminToken
// @Summary Create a team
// @Tags Meta/Teams
// @Accept json
// @Produce json
// @Param team body models.TeamCreateRequest true "Team object"
// @Success 200 {object} models.TeamResponse
// @Failure 400 {object} models.ErrorResponse
// @Failure 409 {object} models.ErrorResponse
// @Router /api/meta/teams [post]
func (c *TeamController) create(g *gin.Context) {
	var req models.TeamCreateRequest
	if err := g.ShouldBindJSON(&req); err != nil {
		logging.Log.Errorf("META: invalid create team request: %v", err)
		g.JSON(http.StatusBadRequest, &models.ErrorResponse{Error: "invalid request"})
		return
	}
	if req.ID <= 0 {
		g.JSON(http.StatusBadRequest, &models.ErrorResponse{Error: "team id must be positive"})
		return
	}
	if req.Name == "" {
		logging.Log.Errorf("META: invalid create team request: %v", req)
		g.JSON(http.StatusBadRequest, &models.ErrorResponse{Error: "invalid request empty name"})
		return
	}

	team := &storage.Team{
		ID:          req.ID,
		Name:        req.Name,
		Description: req.Description,
	}
	if err := c.storage.Create(g.Request.Context(), team); err != nil {
		respondError(g, "META", err)
		return
	}
	g.JSON(http.StatusOK, models.TransformTeamFromStorage(team))
}

// @Security AdminToken
// @Summary Update an existing team
// @Tags Meta/Teams
// @Accept json
// @Produce json
// @Param id path int true "Team ID"
// @Param team body models.TeamUpdateRequest true "Team update object"
// @Success 200 {object} models.TeamResponse
// @Failure 400 {object} models.ErrorResponse
// @Failure 404 {object} models.ErrorResponse
// @Router /api/meta/teams/{id} [put]
func (c *TeamController) update(g *gin.Context) {
	id, ok := teamIDParam(g, "id")
	if !ok {
		return
	}

	var req models.TeamUpdateRequest
	if err := g.ShouldBindJSON(&req); err != nil {
		logging.Log.Errorf("META: invalid update team request: %v", err)
		g.JSON(http.StatusBadRequest, &models.ErrorResponse{Error: "invalid request"})
		return
	}
	if req.Name == "" {
		g.JSON(http.StatusBadRequest, &models.ErrorResponse{Error: "invalid request empty name"})
		return
	}

	team := &storage.Team{
		ID:          id,
		Name:        req.Name,
		Description: req.Description,
	}
	if err := c.storage.Update(g.Request.Context(), team); err != nil {
		respondError(g, "META", err)
		return
	}
	g.JSON(http.StatusOK, models.TransformTeamFromStorage(team))
}

// @Security AdminToken
// @Summary Delete a team
// @Tags Meta/Teams
// @Produce json
// @Param id path int true "Team ID"
// @Success 200 {object} models.MessageResponse
// @Failure 400 {object} models.ErrorResponse
// @Failure 409 {object} models.ErrorResponse
// @Router /api/meta/teams/{id} [delete]
func (c *TeamController) delete(g *gin.Context) {
	id, ok := teamIDParam(g, "id")
	if !ok {
		return
	}
	if err := c.storage.Delete(g.Request.Context(), id); err != nil {
		respondError(g, "META", err)
		return
	}
	g.JSON(http.StatusOK, &models.MessageResponse{Message: "team deleted"})
}
