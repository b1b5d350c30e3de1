package models

import (
	"time"

	"github.com/alex-pricope/hackathon-voting/storage"
)

type PredictionRequest struct {
	Name       string `json:"name"`
	EmployeeID string `json:"employeeId"`
	Top        []int  `json:"top"`
}

type PredictionStatusResponse struct {
	PredictionMade bool   `json:"predictionMade"`
	EmployeeID     string `json:"employeeId,omitempty"`
	Exists         *bool  `json:"exists,omitempty"`
}

type PredictionResponse struct {
	EmployeeID string    `json:"employeeId"`
	Name       string    `json:"name"`
	Top        [3]int    `json:"top"`
	CreatedAt  time.Time `json:"createdAt"`
}

func TransformPredictionFromStorage(p *storage.Prediction) PredictionResponse {
	return PredictionResponse{
		EmployeeID: p.EmployeeID,
		Name:       p.Name,
		Top:        [3]int{p.Top1, p.Top2, p.Top3},
		CreatedAt:  p.CreatedAt,
	}
}
