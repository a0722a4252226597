package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"

	"github.com/avelara/storefront-be/internal/services"
)

// CategoryHandler handles HTTP requests for category management.
type CategoryHandler struct {
	service services.CatalogServiceProvider
}

// NewCategoryHandler creates a new CategoryHandler.
func NewCategoryHandler(service services.CatalogServiceProvider) *CategoryHandler {
	return &CategoryHandler{service: service}
}

// CategoryPayload defines the structure for category create/update requests.
type CategoryPayload struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}

// Add handles the request to create a new category. Duplicate names are
// allowed; each call inserts a fresh record.
func (h *CategoryHandler) Add(w http.ResponseWriter, r *http.Request) {
	var payload CategoryPayload
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	if _, err := h.service.AddCategory(payload.Name, payload.Description); err != nil {
		log.Error().Err(err).Msg("Failed to add category")
		writeError(w, http.StatusInternalServerError, "Internal Server Error")
		return
	}

	writeJSON(w, http.StatusCreated, map[string]string{"message": "Category added successfully!"})
}

// GetAll handles the request to list all categories.
func (h *CategoryHandler) GetAll(w http.ResponseWriter, r *http.Request) {
	categories, err := h.service.GetAllCategories()
	if err != nil {
		log.Error().Err(err).Msg("Failed to retrieve categories")
		writeError(w, http.StatusInternalServerError, "Internal Server Error")
		return
	}

	writeJSON(w, http.StatusOK, categories)
}

// Update handles the request to update a category. An id that matches no
// record still yields a success response.
func (h *CategoryHandler) Update(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	var payload CategoryPayload
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	if err := h.service.UpdateCategory(id, payload.Name, payload.Description); err != nil {
		log.Error().Err(err).Str("category_id", id).Msg("Failed to update category")
		writeError(w, http.StatusInternalServerError, "Internal Server Error")
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{"message": "Category updated successfully!"})
}

// Delete handles the request to delete a category. Products referencing the
// category are left untouched; a missing id still yields a success response.
func (h *CategoryHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if err := h.service.DeleteCategory(id); err != nil {
		log.Error().Err(err).Str("category_id", id).Msg("Failed to delete category")
		writeError(w, http.StatusInternalServerError, "Internal Server Error")
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{"message": "Category deleted successfully!"})
}
