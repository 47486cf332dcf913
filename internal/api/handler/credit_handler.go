package handler

import (
	"log/slog"
	"net/http"

	"credit-application/internal/api/handler/dto"
	"credit-application/internal/domain/credit"
	"credit-application/internal/infrastructure/monitoring"
	"credit-application/internal/pkg/apperrors"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
)

type CreditHandler struct {
	service   credit.CreditService
	validator *dto.Validator
	errors    *ErrorResponder
	logger    *slog.Logger
}

func NewCreditHandler(s credit.CreditService, v *dto.Validator, e *ErrorResponder, l *slog.Logger) *CreditHandler {
	if s == nil {
		panic("credit service cannot be nil")
	}
	if v == nil || e == nil {
		panic("validator and error responder cannot be nil")
	}
	if l == nil {
		panic("logger cannot be nil")
	}
	return &CreditHandler{
		service:   s,
		validator: v,
		errors:    e,
		logger:    l.With("component", "CreditHandler"),
	}
}

// CreateCredit handles POST /api/credits
// @Summary Submit a credit proposal
// @Description The first installment must fall within the configured window (3 months by default) and the customer must exist.
// @Tags Credits
// @Accept json
// @Produce json
// @Param request body dto.CreateCreditRequest true "Credit proposal"
// @Success 201 {object} dto.CreditResponse "Credit saved"
// @Failure 400 {object} dto.ProblemResponse "Validation Error or Business Error"
// @Failure 500 {object} dto.ProblemResponse "Internal Error"
// @Router /api/credits [post]
func (h *CreditHandler) CreateCredit(w http.ResponseWriter, r *http.Request) {
	var req dto.CreateCreditRequest
	if err := decodeJSON(r, &req); err != nil {
		h.errors.Respond(w, r, err)
		return
	}
	if err := h.validator.Struct(&req, dto.CreateCreditMessages); err != nil {
		h.errors.Respond(w, r, err)
		return
	}

	saved, err := h.service.Save(r.Context(), req.ToEntity())
	if err != nil {
		h.errors.Respond(w, r, err)
		return
	}
	monitoring.RecordCreditSubmitted()

	h.logger.InfoContext(r.Context(), "Credit saved successfully",
		slog.String("creditCode", saved.CreditCode.String()),
		slog.Int64("customerID", saved.OwnerID()),
	)
	respondJSON(w, http.StatusCreated, dto.NewCreditResponse(saved))
}

// ListCredits handles GET /api/credits?customerId={customerID}
// @Summary List a customer's credits
// @Tags Credits
// @Produce json
// @Param customerId query int true "Customer ID" Minimum(1)
// @Success 200 {array} dto.CreditSummaryResponse "Credits of the customer, possibly empty"
// @Failure 400 {object} dto.ProblemResponse "Validation Error"
// @Failure 500 {object} dto.ProblemResponse "Internal Error"
// @Router /api/credits [get]
func (h *CreditHandler) ListCredits(w http.ResponseWriter, r *http.Request) {
	customerID, err := getCustomerIDFromQuery(r)
	if err != nil {
		h.errors.Respond(w, r, err)
		return
	}

	credits, err := h.service.FindAllByCustomer(r.Context(), customerID)
	if err != nil {
		h.errors.Respond(w, r, err)
		return
	}

	resp := dto.NewCreditSummaryResponses(credits)
	h.logger.DebugContext(r.Context(), "Credits listed successfully", slog.Int("count", len(resp)))
	respondJSON(w, http.StatusOK, resp)
}

// GetCredit handles GET /api/credits/{creditCode}?customerId={customerID}
// @Summary Retrieve a credit by code
// @Description Only the owning customer may read a credit.
// @Tags Credits
// @Produce json
// @Param creditCode path string true "Credit code (UUID)"
// @Param customerId query int true "Customer ID" Minimum(1)
// @Success 200 {object} dto.CreditResponse "Credit details"
// @Failure 400 {object} dto.ProblemResponse "Validation Error, Business Error or Invalid Argument Error"
// @Failure 409 {object} dto.ProblemResponse "Invalid Argument Error when configured with status 409"
// @Failure 500 {object} dto.ProblemResponse "Internal Error"
// @Router /api/credits/{creditCode} [get]
func (h *CreditHandler) GetCredit(w http.ResponseWriter, r *http.Request) {
	code, err := uuid.Parse(chi.URLParam(r, "creditCode"))
	if err != nil {
		h.errors.Respond(w, r, apperrors.NewValidationError("creditCode", "Credit code must be a valid UUID"))
		return
	}
	customerID, err := getCustomerIDFromQuery(r)
	if err != nil {
		h.errors.Respond(w, r, err)
		return
	}

	found, err := h.service.FindByCreditCode(r.Context(), customerID, code)
	if err != nil {
		h.errors.Respond(w, r, err)
		return
	}

	respondJSON(w, http.StatusOK, dto.NewCreditResponse(found))
}
