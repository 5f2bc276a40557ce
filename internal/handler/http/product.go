package http

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"net/url"

	"github.com/go-chi/chi/v5"

	"github.com/Ahmed101Noor/Ecommerce-Task/internal/service"
	"github.com/Ahmed101Noor/Ecommerce-Task/pkg/validator"
)

// ProductHandler handles HTTP requests for catalog endpoints.
type ProductHandler struct {
	service *service.ProductService
	logger  *slog.Logger
}

// NewProductHandler creates a new product HTTP handler.
func NewProductHandler(svc *service.ProductService, logger *slog.Logger) *ProductHandler {
	return &ProductHandler{
		service: svc,
		logger:  logger,
	}
}

// CreateProductRequest is the JSON request body for registering a product.
type CreateProductRequest struct {
	Name        string `json:"name" validate:"required,min=1,max=200"`
	Kind        string `json:"kind" validate:"required,oneof=expirable non_expirable"`
	PriceCents  int64  `json:"price_cents" validate:"required,gt=0"`
	Quantity    int    `json:"quantity" validate:"gte=0"`
	Shippable   bool   `json:"shippable"`
	WeightGrams int    `json:"weight_grams" validate:"gte=0"`
	ExpiryDate  string `json:"expiry_date,omitempty" validate:"omitempty,datetime=2006-01-02"`
}

// Create handles POST /api/v1/products
func (h *ProductHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req CreateProductRequest
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

	product, err := h.service.AddProduct(r.Context(), service.AddProductInput{
		Name:        req.Name,
		Kind:        req.Kind,
		PriceCents:  req.PriceCents,
		Quantity:    req.Quantity,
		Shippable:   req.Shippable,
		WeightGrams: req.WeightGrams,
		ExpiryDate:  req.ExpiryDate,
	})
	if err != nil {
		writeError(w, r, h.logger, err)
		return
	}

	writeJSON(w, http.StatusCreated, response{Data: product})
}

// Get handles GET /api/v1/products/{name}
func (h *ProductHandler) Get(w http.ResponseWriter, r *http.Request) {
	name := pathName(r)
	if name == "" {
		writeJSON(w, http.StatusBadRequest, response{
			Error: &errorResponse{Code: "INVALID_INPUT", Message: "product name is required"},
		})
		return
	}

	product, err := h.service.GetProduct(r.Context(), name)
	if err != nil {
		writeError(w, r, h.logger, err)
		return
	}

	writeJSON(w, http.StatusOK, response{Data: product})
}

// List handles GET /api/v1/products
func (h *ProductHandler) List(w http.ResponseWriter, r *http.Request) {
	products, err := h.service.ListProducts(r.Context())
	if err != nil {
		writeError(w, r, h.logger, err)
		return
	}

	writeJSON(w, http.StatusOK, response{Data: products})
}

// pathName extracts the {name} URL parameter, unescaping percent-encoded
// characters so names with spaces round-trip.
func pathName(r *http.Request) string {
	raw := chi.URLParam(r, "name")
	name, err := url.PathUnescape(raw)
	if err != nil {
		return raw
	}
	return name
}
