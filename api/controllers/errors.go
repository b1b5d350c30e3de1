package controllers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/alex-pricope/hackathon-voting/api/models"
	"github.com/alex-pricope/hackathon-voting/logging"
	"github.com/alex-pricope/hackathon-voting/storage"
	"github.com/alex-pricope/hackathon-voting/workflow"
	"github.com/gin-gonic/gin"
)

func statusFor(err error) int {
	var validation *workflow.ValidationError
	switch {
	case errors.As(err, &validation):
		return http.StatusBadRequest
	case errors.Is(err, storage.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, storage.ErrDuplicateVote),
		errors.Is(err, storage.ErrDuplicatePrediction),
		errors.Is(err, storage.ErrItemAlreadyExists),
		errors.Is(err, storage.ErrInUse),
		errors.Is(err, workflow.ErrAlreadyVoted),
		errors.Is(err, workflow.ErrNotReady):
		return http.StatusConflict
	case errors.Is(err, workflow.ErrJudgeFinalized):
		return http.StatusLocked
	case errors.Is(err, workflow.ErrSubmitInProgress):
		return http.StatusTooManyRequests
	case errors.Is(err, storage.ErrStoreUnavailable):
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}

// respondError writes err with the status of its kind. Server-side failures log at error level.
func respondError(g *gin.Context, prefix string, err error) {
	status := statusFor(err)
	if status >= http.StatusInternalServerError {
		logging.Log.Errorf("%s: %s %s failed: %v", prefix, g.Request.Method, g.Request.URL.Path, err)
	} else {
		logging.Log.Warnf("%s: %s %s rejected: %v", prefix, g.Request.Method, g.Request.URL.Path, err)
	}
	g.JSON(status, &models.ErrorResponse{Error: err.Error()})
}

func teamIDParam(g *gin.Context, name string) (int, bool) {
	id, err := strconv.Atoi(g.Param(name))
	if err != nil || id <= 0 {
		g.JSON(http.StatusBadRequest, &models.ErrorResponse{Error: "invalid team id"})
		return 0, false
	}
	return id, true
}
