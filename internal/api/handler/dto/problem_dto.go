package dto

import (
	"time"

	"credit-application/internal/pkg/apperrors"
)

// ProblemResponse is the body of every failed request.
type ProblemResponse struct {
	Title     string            `json:"title" example:"Business Error"`
	Timestamp time.Time         `json:"timestamp"`
	Status    int               `json:"status" example:"400"`
	ErrorKind string            `json:"errorKind" example:"BusinessRule"`
	Details   map[string]string `json:"details"`
}

func NewProblemResponse(p apperrors.Problem) ProblemResponse {
	return ProblemResponse{
		Title:     p.Title,
		Timestamp: p.Timestamp,
		Status:    p.Status,
		ErrorKind: p.Kind.String(),
		Details:   p.Details,
	}
}
