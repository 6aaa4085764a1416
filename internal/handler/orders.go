package handler

import (
	"net/http"

	"github.com/honeynil/CampusMarket/internal/models"
)

type placeOrderRequest struct {
	ProductID int64 `json:"product_id"`
	models.Shipping
}

func (h *Handler) PlaceOrder(w http.ResponseWriter, r *http.Request) {
	p, err := principal(r)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	var req placeOrderRequest
	if err := decode(r, &req); err != nil {
		h.writeError(w, r, err)
		return
	}
	order, err := h.orders.PlaceOrder(r.Context(), p.UserID, req.ProductID, req.Shipping)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, "order placed", order)
}

func (h *Handler) Checkout(w http.ResponseWriter, r *http.Request) {
	p, err := principal(r)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	var ship models.Shipping
	if err := decode(r, &ship); err != nil {
		h.writeError(w, r, err)
		return
	}
	orders, err := h.orders.Checkout(r.Context(), p.UserID, ship)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, "checkout complete", orders)
}

func (h *Handler) BuyerOrders(w http.ResponseWriter, r *http.Request) {
	p, err := principal(r)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	orders, err := h.orders.BuyerOrders(r.Context(), p.UserID)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, "ok", orders)
}

func (h *Handler) SellerOrders(w http.ResponseWriter, r *http.Request) {
	p, err := principal(r)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	orders, err := h.orders.SellerOrders(r.Context(), p.UserID)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, "ok", orders)
}

func (h *Handler) GetOrder(w http.ResponseWriter, r *http.Request) {
	p, id, err := caller(r)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	order, err := h.orders.GetOrder(r.Context(), p.UserID, id)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, "ok", order)
}

func (h *Handler) CancelOrder(w http.ResponseWriter, r *http.Request) {
	p, id, err := caller(r)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	order, err := h.orders.CancelOrder(r.Context(), p.UserID, id)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, "order cancelled", order)
}

func (h *Handler) ShipOrder(w http.ResponseWriter, r *http.Request) {
	p, id, err := caller(r)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	order, err := h.orders.ShipOrder(r.Context(), p.UserID, id)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, "order shipped", order)
}

func (h *Handler) ConfirmReceipt(w http.ResponseWriter, r *http.Request) {
	p, id, err := caller(r)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	order, err := h.orders.ConfirmReceipt(r.Context(), p.UserID, id)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, "order completed", order)
}

func (h *Handler) SubmitReview(w http.ResponseWriter, r *http.Request) {
	p, id, err := caller(r)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	var req struct {
		Rating  int    `json:"rating"`
		Content string `json:"content"`
	}
	if err := decode(r, &req); err != nil {
		h.writeError(w, r, err)
		return
	}
	review, err := h.reviews.SubmitReview(r.Context(), p.UserID, id, req.Rating, req.Content)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, "review submitted", review)
}
