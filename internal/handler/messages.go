package handler

import (
	"net/http"

	"github.com/shopspring/decimal"
)

type messageRequest struct {
	ReceiverID *int64 `json:"receiver_id"`
	Content    string `json:"content"`
}

func (h *Handler) SendProductMessage(w http.ResponseWriter, r *http.Request) {
	p, id, err := caller(r)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	var req messageRequest
	if err := decode(r, &req); err != nil {
		h.writeError(w, r, err)
		return
	}
	msg, err := h.messages.SendProductMessage(r.Context(), p.UserID, id, req.ReceiverID, req.Content)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, "message sent", msg)
}

func (h *Handler) SendPriceOffer(w http.ResponseWriter, r *http.Request) {
	p, id, err := caller(r)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	var req struct {
		OfferPrice decimal.Decimal `json:"offer_price"`
		Content    string          `json:"content"`
	}
	if err := decode(r, &req); err != nil {
		h.writeError(w, r, err)
		return
	}
	msg, err := h.messages.SendPriceOffer(r.Context(), p.UserID, id, req.OfferPrice, req.Content)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, "offer sent", msg)
}

func (h *Handler) SendBountyMessage(w http.ResponseWriter, r *http.Request) {
	p, id, err := caller(r)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	var req messageRequest
	if err := decode(r, &req); err != nil {
		h.writeError(w, r, err)
		return
	}
	msg, err := h.messages.SendBountyMessage(r.Context(), p.UserID, id, req.Content)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, "message sent", msg)
}

func (h *Handler) AcceptOffer(w http.ResponseWriter, r *http.Request) {
	p, id, err := caller(r)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	res, err := h.messages.AcceptOffer(r.Context(), p.UserID, id)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, "offer accepted", res)
}

func (h *Handler) Conversations(w http.ResponseWriter, r *http.Request) {
	p, err := principal(r)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	convs, err := h.messages.Conversations(r.Context(), p.UserID)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, "ok", convs)
}

func (h *Handler) UnreadCount(w http.ResponseWriter, r *http.Request) {
	p, err := principal(r)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	n, err := h.messages.UnreadCount(r.Context(), p.UserID)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, "ok", map[string]int{"unread": n})
}

// ProductThread takes ?with=<user id> to pick the counterpart when the caller is the seller.
func (h *Handler) ProductThread(w http.ResponseWriter, r *http.Request) {
	p, id, err := caller(r)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	with, err := queryInt64(r, "with")
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	msgs, err := h.messages.ProductThread(r.Context(), p.UserID, id, with)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, "ok", msgs)
}

func (h *Handler) BountyThread(w http.ResponseWriter, r *http.Request) {
	p, id, err := caller(r)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	msgs, err := h.messages.BountyThread(r.Context(), p.UserID, id)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, "ok", msgs)
}
