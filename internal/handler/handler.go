package handler

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"
	"github.com/honeynil/CampusMarket/internal/infrastructure/auth"
	"github.com/honeynil/CampusMarket/internal/infrastructure/observability"
	"github.com/honeynil/CampusMarket/internal/models"
	service "github.com/honeynil/CampusMarket/internal/services"
	pkgerrors "github.com/honeynil/CampusMarket/pkg/errors"
)

// Services groups the business services the HTTP layer calls into.
type Services struct {
	Accounts service.AccountService
	Catalog  service.CatalogService
	Orders   service.OrderService
	Bounties service.BountyService
	Messages service.MessageService
	Carts    service.CartService
	Reviews  service.ReviewService
	Admin    service.AdminService
}

type Handler struct {
	accounts service.AccountService
	catalog  service.CatalogService
	orders   service.OrderService
	bounties service.BountyService
	messages service.MessageService
	carts    service.CartService
	reviews  service.ReviewService
	admin    service.AdminService
}

func NewHandler(s Services) *Handler {
	return &Handler{
		accounts: s.Accounts,
		catalog:  s.Catalog,
		orders:   s.Orders,
		bounties: s.Bounties,
		messages: s.Messages,
		carts:    s.Carts,
		reviews:  s.Reviews,
		admin:    s.Admin,
	}
}

// envelope is the body of every JSON response.
type envelope struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	Data    any    `json:"data,omitempty"`
}

func (h *Handler) RegisterPublicRoutes(r *mux.Router) {
	r.HandleFunc("/auth/register", h.Register).Methods(http.MethodPost)
	r.HandleFunc("/auth/login", h.Login).Methods(http.MethodPost)
	r.HandleFunc("/products", h.Browse).Methods(http.MethodGet)
	r.HandleFunc("/products/{id:[0-9]+}", h.ProductDetail).Methods(http.MethodGet)
	r.HandleFunc("/products/{id:[0-9]+}/reviews", h.ProductReviews).Methods(http.MethodGet)
	r.HandleFunc("/bounties", h.OpenBounties).Methods(http.MethodGet)
	r.HandleFunc("/bounties/{id:[0-9]+}", h.GetBounty).Methods(http.MethodGet)
}

func (h *Handler) RegisterProtectedRoutes(r *mux.Router) {
	r.HandleFunc("/auth/logout", h.Logout).Methods(http.MethodPost)
	r.HandleFunc("/profile", h.Profile).Methods(http.MethodGet)
	r.HandleFunc("/profile", h.UpdateProfile).Methods(http.MethodPut)

	r.HandleFunc("/cart", h.ViewCart).Methods(http.MethodGet)
	r.HandleFunc("/cart/count", h.CartCount).Methods(http.MethodGet)
	r.HandleFunc("/cart/items", h.AddToCart).Methods(http.MethodPost)
	r.HandleFunc("/cart/items/{id:[0-9]+}", h.UpdateCartItem).Methods(http.MethodPatch)
	r.HandleFunc("/cart/items/{id:[0-9]+}", h.RemoveCartItem).Methods(http.MethodDelete)
	r.HandleFunc("/cart/checkout", h.Checkout).Methods(http.MethodPost)

	r.HandleFunc("/favorites", h.ListFavorites).Methods(http.MethodGet)
	r.HandleFunc("/favorites/{id:[0-9]+}", h.ToggleFavorite).Methods(http.MethodPost)
	r.HandleFunc("/history", h.History).Methods(http.MethodGet)
	r.HandleFunc("/history", h.ClearHistory).Methods(http.MethodDelete)

	r.HandleFunc("/orders", h.PlaceOrder).Methods(http.MethodPost)
	r.HandleFunc("/orders", h.BuyerOrders).Methods(http.MethodGet)
	r.HandleFunc("/orders/{id:[0-9]+}", h.GetOrder).Methods(http.MethodGet)
	r.HandleFunc("/orders/{id:[0-9]+}/cancel", h.CancelOrder).Methods(http.MethodPost)
	r.HandleFunc("/orders/{id:[0-9]+}/confirm", h.ConfirmReceipt).Methods(http.MethodPost)
	r.HandleFunc("/orders/{id:[0-9]+}/review", h.SubmitReview).Methods(http.MethodPost)

	r.HandleFunc("/bounties", h.PostBounty).Methods(http.MethodPost)
	r.HandleFunc("/me/bounties", h.MyBounties).Methods(http.MethodGet)
	r.HandleFunc("/bounties/{id:[0-9]+}/accept", h.AcceptBounty).Methods(http.MethodPost)
	r.HandleFunc("/bounties/{id:[0-9]+}/order", h.CreateBountyOrder).Methods(http.MethodPost)
	r.HandleFunc("/bounties/{id:[0-9]+}/cancel", h.CancelBounty).Methods(http.MethodPost)

	r.HandleFunc("/messages", h.Conversations).Methods(http.MethodGet)
	r.HandleFunc("/messages/unread", h.UnreadCount).Methods(http.MethodGet)
	r.HandleFunc("/products/{id:[0-9]+}/messages", h.SendProductMessage).Methods(http.MethodPost)
	r.HandleFunc("/products/{id:[0-9]+}/messages", h.ProductThread).Methods(http.MethodGet)
	r.HandleFunc("/products/{id:[0-9]+}/offers", h.SendPriceOffer).Methods(http.MethodPost)
	r.HandleFunc("/bounties/{id:[0-9]+}/messages", h.SendBountyMessage).Methods(http.MethodPost)
	r.HandleFunc("/bounties/{id:[0-9]+}/messages", h.BountyThread).Methods(http.MethodGet)
}

// RegisterSellerRoutes expects a router mounted under /seller.
func (h *Handler) RegisterSellerRoutes(r *mux.Router) {
	r.HandleFunc("/dashboard", h.SellerDashboard).Methods(http.MethodGet)
	r.HandleFunc("/products", h.CreateListing).Methods(http.MethodPost)
	r.HandleFunc("/products/{id:[0-9]+}", h.UpdateListing).Methods(http.MethodPut)
	r.HandleFunc("/products/{id:[0-9]+}", h.DeleteListing).Methods(http.MethodDelete)
	r.HandleFunc("/products/{id:[0-9]+}/price", h.UpdatePrice).Methods(http.MethodPatch)
	r.HandleFunc("/products/{id:[0-9]+}/toggle", h.ToggleListing).Methods(http.MethodPost)
	r.HandleFunc("/orders", h.SellerOrders).Methods(http.MethodGet)
	r.HandleFunc("/orders/{id:[0-9]+}/ship", h.ShipOrder).Methods(http.MethodPost)
	r.HandleFunc("/offers/{id:[0-9]+}/accept", h.AcceptOffer).Methods(http.MethodPost)
}

// RegisterAdminRoutes expects a router mounted under /admin.
func (h *Handler) RegisterAdminRoutes(r *mux.Router) {
	r.HandleFunc("/dashboard", h.AdminDashboard).Methods(http.MethodGet)
	r.HandleFunc("/products/{id:[0-9]+}", h.ForceDeleteProduct).Methods(http.MethodDelete)
	r.HandleFunc("/users/{id:[0-9]+}", h.BanUser).Methods(http.MethodDelete)
}

func writeJSON(w http.ResponseWriter, status int, msg string, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(envelope{Success: status < http.StatusBadRequest, Message: msg, Data: data})
}

func statusFor(err error) int {
	switch pkgerrors.KindOf(err) {
	case pkgerrors.KindNotFound:
		return http.StatusNotFound
	case pkgerrors.KindForbidden:
		return http.StatusForbidden
	case pkgerrors.KindConflict:
		return http.StatusConflict
	case pkgerrors.KindInvalid:
		return http.StatusBadRequest
	case pkgerrors.KindUnauthorized:
		return http.StatusUnauthorized
	}
	return http.StatusInternalServerError
}

// writeError renders err with the status of its kind. Internal failures are
// logged and hidden from the client.
func (h *Handler) writeError(w http.ResponseWriter, r *http.Request, err error) {
	status := statusFor(err)
	if status == http.StatusInternalServerError {
		observability.WithContext(r.Context(), "method", r.Method, "path", r.URL.Path).
			Error("request failed", "error", err)
		writeJSON(w, status, pkgerrors.ErrInternal.Error(), nil)
		return
	}
	writeJSON(w, status, err.Error(), nil)
}

func decode(r *http.Request, v any) error {
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		return pkgerrors.Invalid("malformed request body: %v", err)
	}
	return nil
}

func pathID(r *http.Request) (int64, error) {
	id, err := strconv.ParseInt(mux.Vars(r)["id"], 10, 64)
	if err != nil || id <= 0 {
		return 0, pkgerrors.Invalid("invalid id")
	}
	return id, nil
}

func principal(r *http.Request) (models.Principal, error) {
	p, ok := auth.PrincipalFromContext(r.Context())
	if !ok {
		return models.Principal{}, pkgerrors.ErrUnauthenticated
	}
	return p, nil
}

// caller resolves the principal and the {id} path variable together.
func caller(r *http.Request) (models.Principal, int64, error) {
	p, err := principal(r)
	if err != nil {
		return p, 0, err
	}
	id, err := pathID(r)
	return p, id, err
}

func queryInt64(r *http.Request, key string) (*int64, error) {
	raw := r.URL.Query().Get(key)
	if raw == "" {
		return nil, nil
	}
	v, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return nil, pkgerrors.Invalid("invalid %s", key)
	}
	return &v, nil
}
