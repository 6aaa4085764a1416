package errors

import (
	"errors"
	"fmt"
)

// Kind groups sentinel errors into the categories the HTTP layer understands.
type Kind int

const (
	KindInternal Kind = iota
	KindNotFound
	KindForbidden
	KindConflict
	KindInvalid
	KindUnauthorized
)

func (k Kind) String() string {
	switch k {
	case KindNotFound:
		return "not_found"
	case KindForbidden:
		return "forbidden"
	case KindConflict:
		return "conflict"
	case KindInvalid:
		return "invalid"
	case KindUnauthorized:
		return "unauthorized"
	default:
		return "internal"
	}
}

// Error is a user-facing failure with a kind. Sentinels are compared by identity.
type Error struct {
	Kind Kind
	Msg  string
}

func (e *Error) Error() string { return e.Msg }

func New(kind Kind, msg string) *Error {
	return &Error{Kind: kind, Msg: msg}
}

// Invalid builds a validation error for a single field.
func Invalid(format string, args ...any) error {
	return &Error{Kind: KindInvalid, Msg: fmt.Sprintf(format, args...)}
}

// KindOf reports the kind of the first *Error in err's chain, KindInternal otherwise.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return KindInternal
}

var (
	ErrUserNotFound     = New(KindNotFound, "user not found")
	ErrProductNotFound  = New(KindNotFound, "product not found")
	ErrBountyNotFound   = New(KindNotFound, "bounty not found")
	ErrOrderNotFound    = New(KindNotFound, "order not found")
	ErrMessageNotFound  = New(KindNotFound, "message not found")
	ErrCartItemNotFound = New(KindNotFound, "cart item not found")

	ErrForbidden        = New(KindForbidden, "permission denied")
	ErrNotProductOwner  = New(KindForbidden, "product belongs to another seller")
	ErrNotOrderBuyer    = New(KindForbidden, "only the buyer can do this")
	ErrNotOrderSeller   = New(KindForbidden, "only the seller can do this")
	ErrNotBountyAuthor  = New(KindForbidden, "only the bounty author can do this")
	ErrNotBountyMember  = New(KindForbidden, "only the bounty author or accepter can do this")
	ErrNotOfferReceiver = New(KindForbidden, "only the offer receiver can accept it")
	ErrCannotBanAdmin   = New(KindForbidden, "administrators cannot be banned")

	ErrProductUnavailable  = New(KindConflict, "product is not listed")
	ErrProductStatusLocked = New(KindConflict, "product status cannot be toggled")
	ErrProductHasOrders    = New(KindConflict, "product has order records and cannot be deleted")
	ErrSelfPurchase        = New(KindConflict, "cannot buy your own product")
	ErrInvalidOrderStatus  = New(KindConflict, "order status does not allow this action")
	ErrInvalidBountyStatus = New(KindConflict, "bounty status does not allow this action")
	ErrSelfAccept          = New(KindConflict, "cannot accept your own bounty")
	ErrSelfMessage         = New(KindConflict, "cannot send a message to yourself")
	ErrNotPriceOffer       = New(KindConflict, "message is not a price offer")
	ErrOrderNotComplete    = New(KindConflict, "order is not complete")
	ErrNotReviewable       = New(KindConflict, "bounty orders cannot be reviewed")
	ErrAlreadyReviewed     = New(KindConflict, "product already reviewed")
	ErrCartEmpty           = New(KindConflict, "cart has no purchasable items")
	ErrStaleState          = New(KindConflict, "record was modified concurrently")
	ErrUsernameExists      = New(KindConflict, "username already exists")

	ErrInvalidInput       = New(KindInvalid, "invalid input")
	ErrInvalidCredentials = New(KindUnauthorized, "invalid credentials")
	ErrUnauthenticated    = New(KindUnauthorized, "authentication required")

	ErrInternal = errors.New("internal error")
)
