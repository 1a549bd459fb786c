package domain

import "errors"

var (
	ErrInsufficientFunds       = errors.New("insufficient funds")
	ErrBalanceLimitExceeded    = errors.New("balance would exceed the maximum allowed")
	ErrInvalidAmount           = errors.New("amount must be greater than zero with at most two decimal places")
	ErrAccountNotFound         = errors.New("account not found")
	ErrAccountInactive         = errors.New("account is inactive")
	ErrAccountAlreadyExists    = errors.New("customer already has an account")
	ErrAccountSelectorRequired = errors.New("account id or customer id is required")
	ErrInvalidAccountType      = errors.New("invalid account type")
	ErrInvalidAccountStatus    = errors.New("invalid account status")
	ErrSameAccount             = errors.New("source and destination accounts must differ")
	ErrAccountHasTransactions  = errors.New("account is referenced by ledger entries")
	ErrNotOwnAccount           = errors.New("customers may only move their own account")
	ErrTransactionNotFound     = errors.New("transaction not found")
	ErrTransactionFailed       = errors.New("transaction failed")
	ErrIdempotencyKey          = errors.New("idempotency key conflict")

	ErrCustomerNotFound      = errors.New("customer not found")
	ErrCustomerAlreadyExists = errors.New("customer document already registered")
	ErrCustomerHasAccount    = errors.New("customer still owns an account")
	ErrInvalidCustomer       = errors.New("customer name and document are required")

	ErrRegionNotFound       = errors.New("region not found")
	ErrRegionAlreadyExists  = errors.New("region already exists")
	ErrParentRegionNotFound = errors.New("parent region not found")
	ErrInvalidRegion        = errors.New("invalid region")
	ErrInvalidRegionLevel   = errors.New("invalid region level")
	ErrRegionInUse          = errors.New("region is still referenced")

	ErrCorrespondentNotFound   = errors.New("correspondent not found")
	ErrTransactionTypeNotFound = errors.New("transaction type not found")
	ErrCatalogAlreadyExists    = errors.New("catalog entry already exists")
	ErrInvalidCatalogEntry     = errors.New("invalid catalog entry")
	ErrCatalogInUse            = errors.New("catalog entry is referenced by transactions")

	ErrInvalidLedgerEvent = errors.New("invalid ledger event")
)
