package handler

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"

	"orderdesk/internal/store"
)

type CatalogResponse struct {
	Products []store.CatalogItem `json:"products"`
	Banners  []store.CatalogItem `json:"banners"`
}

// ReplaceCatalogRequest is the admin bulk-write: both collections are
// replaced wholesale, there is no per-item CRUD. Pointers so that an empty
// list is a valid replacement but an absent key is rejected.
type ReplaceCatalogRequest struct {
	Products *[]store.CatalogItem `json:"products" validate:"required"`
	Banners  *[]store.CatalogItem `json:"banners" validate:"required"`
}

// CatalogHandler handles HTTP requests for products and banners.
type CatalogHandler struct {
	store    *store.Store
	validate *validator.Validate
}

func NewCatalogHandler(st *store.Store) *CatalogHandler {
	return &CatalogHandler{
		store:    st,
		validate: validator.New(),
	}
}

func (h *CatalogHandler) RegisterRoutes(router chi.Router) {
	router.Get("/catalog", h.handleGetCatalog)
	router.Put("/catalog", h.handleReplaceCatalog)
}

func (h *CatalogHandler) handleGetCatalog(w http.ResponseWriter, r *http.Request) {
	products, banners := h.store.ListCatalog()
	respondWithJSON(w, http.StatusOK, CatalogResponse{Products: products, Banners: banners})
}

func (h *CatalogHandler) handleReplaceCatalog(w http.ResponseWriter, r *http.Request) {
	var req ReplaceCatalogRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondWithError(w, http.StatusBadRequest, fmt.Sprintf("invalid request payload: %v", err))
		return
	}

	if err := h.validate.Struct(req); err != nil {
		respondWithError(w, http.StatusBadRequest, fmt.Sprintf("validation failed: %v", err))
		return
	}

	if err := h.store.ReplaceCatalog(*req.Products, *req.Banners); err != nil {
		respondWithError(w, mapErrorToStatusCode(err), err.Error())
		return
	}

	products, banners := h.store.ListCatalog()
	respondWithJSON(w, http.StatusOK, CatalogResponse{Products: products, Banners: banners})
}
