package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"

	"github.com/avelara/storefront-be/internal/services"
)

// ProductHandler handles HTTP requests for the product catalog.
type ProductHandler struct {
	service services.CatalogServiceProvider
}

// NewProductHandler creates a new ProductHandler.
func NewProductHandler(service services.CatalogServiceProvider) *ProductHandler {
	return &ProductHandler{service: service}
}

// ProductPayload defines the structure for product creation requests.
// Category carries the human-supplied category name, not an id.
type ProductPayload struct {
	Name        string  `json:"name"`
	Price       float64 `json:"price"`
	Description string  `json:"description"`
	Category    string  `json:"category"`
}

// validate enforces the required-field gate: all four fields must be present
// and truthy before the request reaches the catalog service.
func (p ProductPayload) validate() bool {
	return p.Name != "" && p.Price != 0 && p.Description != "" && p.Category != ""
}

// Add handles authenticated product creation, resolving the category name to
// an existing or newly created category.
func (h *ProductHandler) Add(w http.ResponseWriter, r *http.Request) {
	var payload ProductPayload
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if !payload.validate() {
		writeError(w, http.StatusBadRequest, "Please enter all fields")
		return
	}

	product, err := h.service.AddProduct(payload.Name, payload.Price, payload.Description, payload.Category)
	if err != nil {
		log.Error().Err(err).Str("product_name", payload.Name).Msg("Failed to add product")
		writeError(w, http.StatusInternalServerError, "Internal Server Error")
		return
	}

	writeJSON(w, http.StatusCreated, map[string]any{
		"message": "Product added successfully!",
		"product": product,
	})
}

// GetAll handles the request to list all products.
func (h *ProductHandler) GetAll(w http.ResponseWriter, r *http.Request) {
	products, err := h.service.GetAllProducts()
	if err != nil {
		log.Error().Err(err).Msg("Failed to retrieve products")
		writeError(w, http.StatusInternalServerError, "Internal Server Error")
		return
	}

	writeJSON(w, http.StatusOK, products)
}

// GetByCategory handles the request to list products in a category. Unknown
// ids return an empty list.
func (h *ProductHandler) GetByCategory(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	products, err := h.service.GetProductsByCategory(id)
	if err != nil {
		log.Error().Err(err).Str("category_id", id).Msg("Failed to retrieve products by category")
		writeError(w, http.StatusInternalServerError, "Internal Server Error")
		return
	}

	writeJSON(w, http.StatusOK, products)
}
