package handler

import "net/http"

func (h *Handler) AdminDashboard(w http.ResponseWriter, r *http.Request) {
	p, err := principal(r)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	dash, err := h.admin.Dashboard(r.Context(), p)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, "ok", dash)
}

func (h *Handler) ForceDeleteProduct(w http.ResponseWriter, r *http.Request) {
	p, id, err := caller(r)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	if err := h.admin.ForceDeleteProduct(r.Context(), p, id); err != nil {
		h.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, "product removed", nil)
}

func (h *Handler) BanUser(w http.ResponseWriter, r *http.Request) {
	p, id, err := caller(r)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	if err := h.admin.BanUser(r.Context(), p, id); err != nil {
		h.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, "user banned", nil)
}
