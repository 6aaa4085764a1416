package handler

import (
	"net/http"
	"strconv"

	"github.com/honeynil/CampusMarket/internal/infrastructure/auth"
	"github.com/honeynil/CampusMarket/internal/models"
	service "github.com/honeynil/CampusMarket/internal/services"
	pkgerrors "github.com/honeynil/CampusMarket/pkg/errors"
	"github.com/shopspring/decimal"
)

func queryDecimal(r *http.Request, key string) (*decimal.Decimal, error) {
	raw := r.URL.Query().Get(key)
	if raw == "" {
		return nil, nil
	}
	d, err := decimal.NewFromString(raw)
	if err != nil {
		return nil, pkgerrors.Invalid("invalid %s", key)
	}
	return &d, nil
}

func (h *Handler) Browse(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	f := models.ProductFilter{
		Query:    q.Get("q"),
		Category: models.Category(q.Get("category")),
		Sort:     models.ProductSort(q.Get("sort")),
	}
	var err error
	if f.MinPrice, err = queryDecimal(r, "min_price"); err != nil {
		h.writeError(w, r, err)
		return
	}
	if f.MaxPrice, err = queryDecimal(r, "max_price"); err != nil {
		h.writeError(w, r, err)
		return
	}
	if raw := q.Get("page"); raw != "" {
		if f.Page, err = strconv.Atoi(raw); err != nil {
			h.writeError(w, r, pkgerrors.Invalid("invalid page"))
			return
		}
	}

	page, err := h.catalog.Browse(r.Context(), f)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, "ok", page)
}

// ProductDetail is public; a signed-in viewer also gets favorite state and a history entry.
func (h *Handler) ProductDetail(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	var viewer *int64
	if p, ok := auth.PrincipalFromContext(r.Context()); ok {
		viewer = &p.UserID
	}
	view, err := h.catalog.ProductDetail(r.Context(), viewer, id)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, "ok", view)
}

func (h *Handler) SellerDashboard(w http.ResponseWriter, r *http.Request) {
	p, err := principal(r)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	dash, err := h.catalog.SellerDashboard(r.Context(), p)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, "ok", dash)
}

func (h *Handler) CreateListing(w http.ResponseWriter, r *http.Request) {
	p, err := principal(r)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	var in service.ListingInput
	if err := decode(r, &in); err != nil {
		h.writeError(w, r, err)
		return
	}
	product, err := h.catalog.CreateListing(r.Context(), p, in)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, "product listed", product)
}

func (h *Handler) UpdateListing(w http.ResponseWriter, r *http.Request) {
	p, id, err := caller(r)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	var in service.ListingInput
	if err := decode(r, &in); err != nil {
		h.writeError(w, r, err)
		return
	}
	product, err := h.catalog.UpdateListing(r.Context(), p.UserID, id, in)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, "product updated", product)
}

func (h *Handler) UpdatePrice(w http.ResponseWriter, r *http.Request) {
	p, id, err := caller(r)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	var req struct {
		Price decimal.Decimal `json:"price"`
	}
	if err := decode(r, &req); err != nil {
		h.writeError(w, r, err)
		return
	}
	change, err := h.catalog.UpdatePrice(r.Context(), p.UserID, id, req.Price)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, "price updated", change)
}

func (h *Handler) ToggleListing(w http.ResponseWriter, r *http.Request) {
	p, id, err := caller(r)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	product, err := h.catalog.ToggleListing(r.Context(), p.UserID, id)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, "product "+product.Status.String(), product)
}

func (h *Handler) DeleteListing(w http.ResponseWriter, r *http.Request) {
	p, id, err := caller(r)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	if err := h.catalog.DeleteListing(r.Context(), p.UserID, id); err != nil {
		h.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, "product deleted", nil)
}

func (h *Handler) ProductReviews(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	reviews, err := h.reviews.ProductReviews(r.Context(), id)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, "ok", reviews)
}
