package handler

import (
	"net/http"

	"github.com/honeynil/CampusMarket/internal/models"
	service "github.com/honeynil/CampusMarket/internal/services"
	"github.com/shopspring/decimal"
)

func (h *Handler) OpenBounties(w http.ResponseWriter, r *http.Request) {
	bounties, err := h.bounties.OpenBounties(r.Context())
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, "ok", bounties)
}

func (h *Handler) GetBounty(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	bounty, err := h.bounties.GetBounty(r.Context(), id)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, "ok", bounty)
}

func (h *Handler) PostBounty(w http.ResponseWriter, r *http.Request) {
	p, err := principal(r)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	var in service.BountyInput
	if err := decode(r, &in); err != nil {
		h.writeError(w, r, err)
		return
	}
	bounty, err := h.bounties.PostBounty(r.Context(), p.UserID, in)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, "bounty posted", bounty)
}

func (h *Handler) MyBounties(w http.ResponseWriter, r *http.Request) {
	p, err := principal(r)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	mine, err := h.bounties.MyBounties(r.Context(), p.UserID)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, "ok", mine)
}

func (h *Handler) AcceptBounty(w http.ResponseWriter, r *http.Request) {
	p, id, err := caller(r)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	bounty, err := h.bounties.AcceptBounty(r.Context(), p.UserID, id)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, "bounty accepted", bounty)
}

// bountyOrderRequest carries an optional agreed price; the budget is used when it is absent.
type bountyOrderRequest struct {
	Price *decimal.Decimal `json:"price"`
	models.Shipping
}

func (h *Handler) CreateBountyOrder(w http.ResponseWriter, r *http.Request) {
	p, id, err := caller(r)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	var req bountyOrderRequest
	if err := decode(r, &req); err != nil {
		h.writeError(w, r, err)
		return
	}
	order, err := h.bounties.CreateBountyOrder(r.Context(), p.UserID, id, req.Price, req.Shipping)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, "order placed", order)
}

func (h *Handler) CancelBounty(w http.ResponseWriter, r *http.Request) {
	p, id, err := caller(r)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	bounty, err := h.bounties.CancelBounty(r.Context(), p.UserID, id)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, "bounty cancelled", bounty)
}
