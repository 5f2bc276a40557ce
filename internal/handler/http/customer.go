package http

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/Ahmed101Noor/Ecommerce-Task/internal/service"
	"github.com/Ahmed101Noor/Ecommerce-Task/pkg/validator"
)

// CustomerHandler handles HTTP requests for customer endpoints.
type CustomerHandler struct {
	service *service.CustomerService
	logger  *slog.Logger
}

// NewCustomerHandler creates a new customer HTTP handler.
func NewCustomerHandler(svc *service.CustomerService, logger *slog.Logger) *CustomerHandler {
	return &CustomerHandler{
		service: svc,
		logger:  logger,
	}
}

// CreateCustomerRequest is the JSON request body for registering a customer.
type CreateCustomerRequest struct {
	Name         string `json:"name" validate:"required,min=1,max=200"`
	BalanceCents int64  `json:"balance_cents" validate:"gte=0"`
}

// CreditRequest is the JSON request body for topping up a balance.
type CreditRequest struct {
	AmountCents int64 `json:"amount_cents" validate:"required,gt=0"`
}

// Create handles POST /api/v1/customers
func (h *CustomerHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req CreateCustomerRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, response{
			Error: &errorResponse{Code: "INVALID_INPUT", Message: "invalid request body: " + err.Error()},
		})
		return
	}

	if err := validator.Validate(req); err != nil {
		writeValidationError(w, err)
		return
	}

	customer, err := h.service.AddCustomer(r.Context(), service.AddCustomerInput{
		Name:         req.Name,
		BalanceCents: req.BalanceCents,
	})
	if err != nil {
		writeError(w, r, h.logger, err)
		return
	}

	writeJSON(w, http.StatusCreated, response{Data: customer})
}

// Get handles GET /api/v1/customers/{name}
func (h *CustomerHandler) Get(w http.ResponseWriter, r *http.Request) {
	name := pathName(r)
	if name == "" {
		writeJSON(w, http.StatusBadRequest, response{
			Error: &errorResponse{Code: "INVALID_INPUT", Message: "customer name is required"},
		})
		return
	}

	customer, err := h.service.GetCustomer(r.Context(), name)
	if err != nil {
		writeError(w, r, h.logger, err)
		return
	}

	writeJSON(w, http.StatusOK, response{Data: customer})
}

// Credit handles POST /api/v1/customers/{name}/credit
func (h *CustomerHandler) Credit(w http.ResponseWriter, r *http.Request) {
	name := pathName(r)
	if name == "" {
		writeJSON(w, http.StatusBadRequest, response{
			Error: &errorResponse{Code: "INVALID_INPUT", Message: "customer name is required"},
		})
		return
	}

	var req CreditRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, response{
			Error: &errorResponse{Code: "INVALID_INPUT", Message: "invalid request body: " + err.Error()},
		})
		return
	}

	if err := validator.Validate(req); err != nil {
		writeValidationError(w, err)
		return
	}

	customer, err := h.service.Credit(r.Context(), name, req.AmountCents)
	if err != nil {
		writeError(w, r, h.logger, err)
		return
	}

	writeJSON(w, http.StatusOK, response{Data: customer})
}
