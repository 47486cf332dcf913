package handler

import (
	"log/slog"
	"net/http"

	"credit-application/internal/api/handler/dto"
	"credit-application/internal/domain/customer"
	"credit-application/internal/infrastructure/monitoring"
)

type CustomerHandler struct {
	service   customer.CustomerService
	validator *dto.Validator
	errors    *ErrorResponder
	logger    *slog.Logger
}

func NewCustomerHandler(s customer.CustomerService, v *dto.Validator, e *ErrorResponder, l *slog.Logger) *CustomerHandler {
	if s == nil {
		panic("customer service cannot be nil")
	}
	if v == nil || e == nil {
		panic("validator and error responder cannot be nil")
	}
	if l == nil {
		panic("logger cannot be nil")
	}
	return &CustomerHandler{
		service:   s,
		validator: v,
		errors:    e,
		logger:    l.With("component", "CustomerHandler"),
	}
}

// CreateCustomer handles POST /api/customers
// @Summary Register a customer
// @Description Registers a customer with tax id, income, contact and address. The password is stored hashed.
// @Tags Customers
// @Accept json
// @Produce json
// @Param request body dto.CreateCustomerRequest true "Customer registration request"
// @Success 201 {object} dto.CustomerResponse "Customer successfully registered"
// @Failure 400 {object} dto.ProblemResponse "Validation Error"
// @Failure 409 {object} dto.ProblemResponse "Data Access Error (duplicate CPF)"
// @Failure 500 {object} dto.ProblemResponse "Internal Error"
// @Router /api/customers [post]
func (h *CustomerHandler) CreateCustomer(w http.ResponseWriter, r *http.Request) {
	h.logger.DebugContext(r.Context(), "Received create customer request")

	var req dto.CreateCustomerRequest
	if err := decodeJSON(r, &req); err != nil {
		h.errors.Respond(w, r, err)
		return
	}
	if err := h.validator.Struct(&req, dto.CreateCustomerMessages); err != nil {
		h.errors.Respond(w, r, err)
		return
	}

	saved, err := h.service.Register(r.Context(), req.ToEntity(), req.Password)
	if err != nil {
		h.errors.Respond(w, r, err)
		return
	}
	monitoring.RecordCustomerRegistered()

	resp := dto.NewCustomerResponse(saved)
	h.logger.InfoContext(r.Context(), "Customer registered successfully", slog.String("customerID", resp.ID))
	respondJSON(w, http.StatusCreated, resp)
}

// GetCustomer handles GET /api/customers/{customerID}
// @Summary Retrieve customer details
// @Tags Customers
// @Produce json
// @Param customerID path int true "Customer ID" Minimum(1)
// @Success 200 {object} dto.CustomerResponse "Customer details retrieved"
// @Failure 400 {object} dto.ProblemResponse "Validation Error or Business Error (unknown id)"
// @Failure 500 {object} dto.ProblemResponse "Internal Error"
// @Router /api/customers/{customerID} [get]
func (h *CustomerHandler) GetCustomer(w http.ResponseWriter, r *http.Request) {
	customerID, err := getCustomerIDFromURL(r)
	if err != nil {
		h.errors.Respond(w, r, err)
		return
	}

	found, err := h.service.FindByID(r.Context(), customerID)
	if err != nil {
		h.errors.Respond(w, r, err)
		return
	}

	h.logger.DebugContext(r.Context(), "Customer retrieved successfully", slog.Int64("customerID", customerID))
	respondJSON(w, http.StatusOK, dto.NewCustomerResponse(found))
}

// UpdateCustomer handles PATCH /api/customers?customerId={customerID}
// @Summary Update a customer
// @Description Replaces first name, last name, income and address. Tax id, email and password are immutable.
// @Tags Customers
// @Accept json
// @Produce json
// @Param customerId query int true "Customer ID" Minimum(1)
// @Param request body dto.UpdateCustomerRequest true "Customer update request"
// @Success 200 {object} dto.CustomerResponse "Customer updated"
// @Failure 400 {object} dto.ProblemResponse "Validation Error or Business Error (unknown id)"
// @Failure 500 {object} dto.ProblemResponse "Internal Error"
// @Router /api/customers [patch]
func (h *CustomerHandler) UpdateCustomer(w http.ResponseWriter, r *http.Request) {
	customerID, err := getCustomerIDFromQuery(r)
	if err != nil {
		h.errors.Respond(w, r, err)
		return
	}

	var req dto.UpdateCustomerRequest
	if err := decodeJSON(r, &req); err != nil {
		h.errors.Respond(w, r, err)
		return
	}
	if err := h.validator.Struct(&req, dto.UpdateCustomerMessages); err != nil {
		h.errors.Respond(w, r, err)
		return
	}

	updated, err := h.service.Update(r.Context(), customerID, req.ToPatch())
	if err != nil {
		h.errors.Respond(w, r, err)
		return
	}

	h.logger.InfoContext(r.Context(), "Customer updated successfully", slog.Int64("customerID", customerID))
	respondJSON(w, http.StatusOK, dto.NewCustomerResponse(updated))
}

// DeleteCustomer handles DELETE /api/customers/{customerID}
// @Summary Delete a customer
// @Description Deletes a customer. Fails while the customer still owns credits.
// @Tags Customers
// @Param customerID path int true "Customer ID" Minimum(1)
// @Success 204 "Customer deleted"
// @Failure 400 {object} dto.ProblemResponse "Validation Error or Business Error (unknown id)"
// @Failure 409 {object} dto.ProblemResponse "Data Access Error (customer owns credits)"
// @Failure 500 {object} dto.ProblemResponse "Internal Error"
// @Router /api/customers/{customerID} [delete]
func (h *CustomerHandler) DeleteCustomer(w http.ResponseWriter, r *http.Request) {
	customerID, err := getCustomerIDFromURL(r)
	if err != nil {
		h.errors.Respond(w, r, err)
		return
	}

	if err := h.service.Delete(r.Context(), customerID); err != nil {
		h.errors.Respond(w, r, err)
		return
	}

	h.logger.InfoContext(r.Context(), "Customer deleted successfully", slog.Int64("customerID", customerID))
	respondJSON(w, http.StatusNoContent, nil)
}
