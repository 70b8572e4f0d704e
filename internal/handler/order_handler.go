package handler

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog/log"

	"orderdesk/internal/store"
)

type CreateOrderRequest struct {
	Customer      *store.Customer  `json:"customer" validate:"required"`
	Address       *store.Address   `json:"address" validate:"required"`
	Items         []map[string]any `json:"items"`
	TotalAmount   float64          `json:"totalAmount"`
	PaymentMethod string           `json:"paymentMethod"`
	Notes         string           `json:"notes"`
}

type UpdateOrderRequest struct {
	Status *string `json:"status" validate:"omitempty,min=1"`
	Notes  *string `json:"notes"`
}

// OrderHandler handles HTTP requests for orders.
type OrderHandler struct {
	store    *store.Store
	validate *validator.Validate
}

func NewOrderHandler(st *store.Store) *OrderHandler {
	return &OrderHandler{
		store:    st,
		validate: validator.New(),
	}
}

func (h *OrderHandler) RegisterRoutes(router chi.Router) {
	router.Get("/orders", h.handleListOrders)
	router.Post("/orders", h.handleCreateOrder)
	router.Get("/orders/{id}", h.handleGetOrder)
	router.Patch("/orders/{id}", h.handleUpdateOrder)
	router.Delete("/orders/{id}", h.handleDeleteOrder)
}

func orderIDFromURL(r *http.Request) (int64, error) {
	return strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
}

func (h *OrderHandler) handleListOrders(w http.ResponseWriter, r *http.Request) {
	respondWithJSON(w, http.StatusOK, h.store.ListOrders())
}

func (h *OrderHandler) handleGetOrder(w http.ResponseWriter, r *http.Request) {
	id, err := orderIDFromURL(r)
	if err != nil {
		respondWithError(w, http.StatusBadRequest, "order id must be an integer")
		return
	}

	o, err := h.store.GetOrder(id)
	if err != nil {
		respondWithError(w, mapErrorToStatusCode(err), err.Error())
		return
	}
	respondWithJSON(w, http.StatusOK, o)
}

func (h *OrderHandler) handleCreateOrder(w http.ResponseWriter, r *http.Request) {
	var req CreateOrderRequest

	decoder := json.NewDecoder(r.Body)
	if err := decoder.Decode(&req); err != nil {
		log.Warn().Err(err).Msg("failed to decode order submission")
		respondWithError(w, http.StatusBadRequest, fmt.Sprintf("invalid request payload: %v", err))
		return
	}

	if err := h.validate.Struct(req); err != nil {
		respondWithError(w, http.StatusBadRequest, fmt.Sprintf("validation failed: %v", err))
		return
	}

	o, err := h.store.CreateOrder(store.CreateOrderInput{
		Customer:      req.Customer,
		Address:       req.Address,
		Items:         req.Items,
		TotalAmount:   req.TotalAmount,
		PaymentMethod: req.PaymentMethod,
		Notes:         req.Notes,
	})
	if err != nil {
		respondWithError(w, mapErrorToStatusCode(err), err.Error())
		return
	}

	respondWithJSON(w, http.StatusCreated, o)
}

func (h *OrderHandler) handleUpdateOrder(w http.ResponseWriter, r *http.Request) {
	id, err := orderIDFromURL(r)
	if err != nil {
		respondWithError(w, http.StatusBadRequest, "order id must be an integer")
		return
	}

	var req UpdateOrderRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondWithError(w, http.StatusBadRequest, fmt.Sprintf("invalid request payload: %v", err))
		return
	}

	if err := h.validate.Struct(req); err != nil {
		respondWithError(w, http.StatusBadRequest, fmt.Sprintf("validation failed: %v", err))
		return
	}

	o, err := h.store.UpdateOrder(id, req.Status, req.Notes)
	if err != nil {
		respondWithError(w, mapErrorToStatusCode(err), err.Error())
		return
	}
	respondWithJSON(w, http.StatusOK, o)
}

func (h *OrderHandler) handleDeleteOrder(w http.ResponseWriter, r *http.Request) {
	id, err := orderIDFromURL(r)
	if err != nil {
		respondWithError(w, http.StatusBadRequest, "order id must be an integer")
		return
	}

	if err := h.store.DeleteOrder(id); err != nil {
		respondWithError(w, mapErrorToStatusCode(err), err.Error())
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
