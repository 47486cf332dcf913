package handler

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strconv"

	"credit-application/internal/api/handler/dto"
	"credit-application/internal/infrastructure/monitoring"
	"credit-application/internal/pkg/apperrors"

	"github.com/go-chi/chi/v5"
)

// ErrorResponder renders any error as a problem payload.
type ErrorResponder struct {
	classifier *apperrors.Classifier
	logger     *slog.Logger
}

func NewErrorResponder(classifier *apperrors.Classifier, logger *slog.Logger) *ErrorResponder {
	if classifier == nil {
		panic("classifier cannot be nil")
	}
	if logger == nil {
		panic("logger cannot be nil")
	}
	return &ErrorResponder{
		classifier: classifier,
		logger:     logger.With("component", "ErrorResponder"),
	}
}

func (e *ErrorResponder) Respond(w http.ResponseWriter, r *http.Request, err error) {
	problem := e.classifier.Classify(err)
	monitoring.RecordProblem(problem.Kind.String())

	level := slog.LevelWarn
	if problem.Kind == apperrors.KindInternal {
		level = slog.LevelError
	}
	e.logger.Log(r.Context(), level, "Request failed",
		slog.String("error_kind", problem.Kind.String()),
		slog.Int("status", problem.Status),
		slog.Any("error", err),
	)

	respondJSON(w, problem.Status, dto.NewProblemResponse(problem))
}

func decodeJSON(r *http.Request, v interface{}) error {
	if r.Body == nil {
		return apperrors.NewValidationError("body", "Request body is required")
	}
	defer r.Body.Close()
	decoder := json.NewDecoder(r.Body)
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(v); err != nil {
		if errors.Is(err, io.EOF) {
			return apperrors.NewValidationError("body", "Request body is required")
		}
		return apperrors.NewValidationError("body", fmt.Sprintf("Malformed JSON request: %v", err))
	}
	return nil
}

func respondJSON(w http.ResponseWriter, status int, payload interface{}) {
	if payload == nil {
		w.WriteHeader(status)
		return
	}
	response, err := json.Marshal(payload)
	if err != nil {
		slog.Default().Error("Failed to marshal JSON response", "error", err)
		http.Error(w, `{"title":"Internal Error","status":500}`, http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	w.Write(response)
}

func parseID(raw, field, message string) (int64, error) {
	if raw == "" {
		return 0, apperrors.NewValidationError(field, message)
	}
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		return 0, apperrors.NewValidationError(field, message)
	}
	return id, nil
}

func getCustomerIDFromURL(r *http.Request) (int64, error) {
	return parseID(chi.URLParam(r, "customerID"), "customerID", "Customer id must be a positive integer")
}

func getCustomerIDFromQuery(r *http.Request) (int64, error) {
	return parseID(r.URL.Query().Get("customerId"), "customerId", "Query parameter customerId must be a positive integer")
}
