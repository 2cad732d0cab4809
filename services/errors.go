package services

import "errors"

var (
	// ErrInvalidBarcode fails fast before any lookup is attempted.
	ErrInvalidBarcode = errors.New("invalid barcode: must be 8 to 13 digits")

	// ErrProductNotFound means neither the local store nor any external
	// provider knows the barcode.
	ErrProductNotFound = errors.New("product not found")

	// ErrNotFound is returned by CRUD services when a record does not
	// exist or does not belong to the requesting user.
	ErrNotFound = errors.New("record not found")
)
