package types

import "errors"

// Input validation errors.
var (
	ErrNoTransactions     = errors.New("transactions must not be empty")
	ErrTooFewTransactions = errors.New("mining requires at least two transactions")
)

// Encoding errors.
var (
	ErrUnknownToken = errors.New("token not present in mapping")
	ErrUnknownItem  = errors.New("item id not present in mapping")
)

// Dataset errors.
var (
	ErrUnknownFormat = errors.New("unsupported dataset format")
)

// Run store errors.
var (
	ErrStoreOpen   = errors.New("store is already open")
	ErrStoreClosed = errors.New("store is not open")
	ErrRunNotFound = errors.New("run not found")
)
