package domain

import "errors"

var (
	// ErrListingNotFound is returned when a listing does not exist or was already removed
	ErrListingNotFound = errors.New("listing not found")

	// ErrNotOwner is returned when a non-owner tries to modify a listing
	ErrNotOwner = errors.New("not the listing owner")

	// ErrSelfPurchaseForbidden is returned when an actor tries to buy its own listing
	ErrSelfPurchaseForbidden = errors.New("cannot purchase own listing")

	// ErrInvalidQuantity is returned when a quantity is not positive or exceeds what is available
	ErrInvalidQuantity = errors.New("invalid quantity")

	// ErrInvalidPrice is returned when a price is not positive
	ErrInvalidPrice = errors.New("invalid price")

	// ErrPriceTooHigh is returned when a price exceeds the configured maximum trade price
	ErrPriceTooHigh = errors.New("price exceeds maximum trade price")

	// ErrInvalidInput is returned for malformed requests (missing item type, nil actor, ...)
	ErrInvalidInput = errors.New("invalid input")

	// ErrInsufficientFunds is returned when a debit exceeds the actor's balance
	ErrInsufficientFunds = errors.New("insufficient funds")

	// ErrBalanceCapReached is returned when a credit was capped at the maximum balance
	ErrBalanceCapReached = errors.New("balance cap reached")

	// ErrMaxListingsExceeded is returned when an owner already has the maximum number of active listings
	ErrMaxListingsExceeded = errors.New("maximum listings exceeded")

	// ErrItemBlacklisted is returned when the item type may not be traded
	ErrItemBlacklisted = errors.New("item is blacklisted")

	// ErrNotRecyclable is returned when goods have no recycle price or are blacklisted for recycling
	ErrNotRecyclable = errors.New("item is not recyclable")

	// ErrCatalogEntryNotFound is returned when a system catalog entry does not exist
	ErrCatalogEntryNotFound = errors.New("catalog entry not found")

	// ErrCatalogEntryInactive is returned when purchasing a disabled catalog entry
	ErrCatalogEntryInactive = errors.New("catalog entry is not active")

	// ErrNotPrivileged is returned when a non-admin actor runs an administrative command
	ErrNotPrivileged = errors.New("actor is not privileged")
)

var userErrors = []error{
	ErrListingNotFound,
	ErrNotOwner,
	ErrSelfPurchaseForbidden,
	ErrInvalidQuantity,
	ErrInvalidPrice,
	ErrPriceTooHigh,
	ErrInvalidInput,
	ErrInsufficientFunds,
	ErrBalanceCapReached,
	ErrMaxListingsExceeded,
	ErrItemBlacklisted,
	ErrNotRecyclable,
	ErrCatalogEntryNotFound,
	ErrCatalogEntryInactive,
	ErrNotPrivileged,
}

// IsUserError reports whether err is one of the engine's user-facing errors.
// User errors leave all state untouched and are reported back to the actor.
func IsUserError(err error) bool {
	for _, e := range userErrors {
		if errors.Is(err, e) {
			return true
		}
	}
	return false
}
