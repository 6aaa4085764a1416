package handler

import "net/http"

func (h *Handler) ViewCart(w http.ResponseWriter, r *http.Request) {
	p, err := principal(r)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	cart, err := h.carts.ViewCart(r.Context(), p.UserID)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, "ok", cart)
}

func (h *Handler) CartCount(w http.ResponseWriter, r *http.Request) {
	p, err := principal(r)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	n, err := h.carts.CartCount(r.Context(), p.UserID)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, "ok", map[string]int{"count": n})
}

func (h *Handler) AddToCart(w http.ResponseWriter, r *http.Request) {
	p, err := principal(r)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	var req struct {
		ProductID int64 `json:"product_id"`
	}
	if err := decode(r, &req); err != nil {
		h.writeError(w, r, err)
		return
	}
	item, err := h.carts.AddToCart(r.Context(), p.UserID, req.ProductID)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, "added to cart", item)
}

func (h *Handler) UpdateCartItem(w http.ResponseWriter, r *http.Request) {
	p, id, err := caller(r)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	var req struct {
		Quantity int `json:"quantity"`
	}
	if err := decode(r, &req); err != nil {
		h.writeError(w, r, err)
		return
	}
	item, err := h.carts.UpdateCartQuantity(r.Context(), p.UserID, id, req.Quantity)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, "cart updated", item)
}

func (h *Handler) RemoveCartItem(w http.ResponseWriter, r *http.Request) {
	p, id, err := caller(r)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	if err := h.carts.RemoveFromCart(r.Context(), p.UserID, id); err != nil {
		h.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, "removed from cart", nil)
}

func (h *Handler) ToggleFavorite(w http.ResponseWriter, r *http.Request) {
	p, id, err := caller(r)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	on, err := h.carts.ToggleFavorite(r.Context(), p.UserID, id)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	msg := "removed from favorites"
	if on {
		msg = "added to favorites"
	}
	writeJSON(w, http.StatusOK, msg, map[string]bool{"favorited": on})
}

func (h *Handler) ListFavorites(w http.ResponseWriter, r *http.Request) {
	p, err := principal(r)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	products, err := h.carts.ListFavorites(r.Context(), p.UserID)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, "ok", products)
}

func (h *Handler) History(w http.ResponseWriter, r *http.Request) {
	p, err := principal(r)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	records, err := h.carts.History(r.Context(), p.UserID)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, "ok", records)
}

func (h *Handler) ClearHistory(w http.ResponseWriter, r *http.Request) {
	p, err := principal(r)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	if err := h.carts.ClearHistory(r.Context(), p.UserID); err != nil {
		h.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, "history cleared", nil)
}
