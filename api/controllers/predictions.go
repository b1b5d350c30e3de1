package controllers

import (
	"net/http"

	"github.com/alex-pricope/hackathon-voting/api/models"
	"github.com/alex-pricope/hackathon-voting/api/transport"
	"github.com/alex-pricope/hackathon-voting/logging"
	"github.com/alex-pricope/hackathon-voting/storage"
	"github.com/alex-pricope/hackathon-voting/workflow"
	"github.com/gin-gonic/gin"
)

type PredictionController struct {
	gateway *storage.Gateway
}

func NewPredictionController(gateway *storage.Gateway) *PredictionController {
	return &PredictionController{gateway: gateway}
}

func (c *PredictionController) RegisterRoutes(engine *gin.Engine) {
	group := engine.Group("/api/predictions")

	group.GET("/status", c.getStatus)
	group.POST("", c.submit)
}

// getStatus godoc
// @Summary Prediction status of this device
// @Description Reports the device flag and, when employeeId is given, whether that employee already predicted
// @Tags predictions
// @Produce json
// @Param employeeId query string false "Employee ID"
// @Success 200 {object} models.PredictionStatusResponse
// @Failure 503 {object} models.ErrorResponse
// @Router /api/predictions/status [get]
func (c *PredictionController) getStatus(g *gin.Context) {
	resp := &models.PredictionStatusResponse{
		PredictionMade: transport.Device(g).PredictionMade(),
	}
	if employeeID := g.Query("employeeId"); employeeID != "" {
		exists, err := c.gateway.HasPredicted(g.Request.Context(), employeeID)
		if err != nil {
			respondError(g, "PREDICTION", err)
			return
		}
		resp.EmployeeID = employeeID
		resp.Exists = &exists
	}
	g.JSON(http.StatusOK, resp)
}

// submit godoc
// @Summary Submit a top 3 prediction
// @Description One prediction per employee id. The picks are ranked and must be 3 distinct known teams.
// @Tags predictions
// @Accept json
// @Produce json
// @Param prediction body models.PredictionRequest true "Prediction"
// @Success 200 {object} models.MessageResponse
// @Failure 400 {object} models.ErrorResponse "Invalid picks, name or employee id"
// @Failure 409 {object} models.ErrorResponse "Employee id or device already predicted"
// @Failure 503 {object} models.ErrorResponse "Store unavailable"
// @Router /api/predictions [post]
func (c *PredictionController) submit(g *gin.Context) {
	var req models.PredictionRequest
	if err := g.ShouldBindJSON(&req); err != nil {
		g.JSON(http.StatusBadRequest, &models.ErrorResponse{Error: "invalid request format"})
		return
	}

	device := transport.Device(g)
	if device.PredictionMade() {
		g.JSON(http.StatusConflict, &models.ErrorResponse{Error: "a prediction was already made from this device"})
		return
	}

	ctx := g.Request.Context()
	if len(req.Top) != 3 {
		g.JSON(http.StatusBadRequest, &models.ErrorResponse{Error: "top must list exactly 3 teams"})
		return
	}
	teams, err := c.gateway.ListTeams(ctx)
	if err != nil {
		respondError(g, "PREDICTION", err)
		return
	}
	known := make(map[int]bool, len(teams))
	for _, t := range teams {
		known[t.ID] = true
	}
	seen := make(map[int]bool, 3)
	for _, id := range req.Top {
		if !known[id] {
			g.JSON(http.StatusBadRequest, &models.ErrorResponse{Error: "unknown team in top"})
			return
		}
		if seen[id] {
			g.JSON(http.StatusBadRequest, &models.ErrorResponse{Error: "top teams must be distinct"})
			return
		}
		seen[id] = true
	}

	flow := workflow.NewPredictionFlow(c.gateway, device)
	for _, id := range req.Top {
		if err := flow.Toggle(id); err != nil {
			respondError(g, "PREDICTION", err)
			return
		}
	}
	if err := flow.Continue(); err != nil {
		respondError(g, "PREDICTION", err)
		return
	}
	if err := flow.Submit(ctx, req.Name, req.EmployeeID); err != nil {
		respondError(g, "PREDICTION", err)
		return
	}

	logging.Log.Infof("PREDICTION: stored prediction for employee %s", req.EmployeeID)
	g.JSON(http.StatusOK, &models.MessageResponse{Message: "prediction registered"})
}
