package model

import (
	"errors"
	"fmt"
	"net/http"
)

var ErrInvalidParameter = errors.New("")  // Base error for invalid parameter
var ErrReferenceNotFound = errors.New("") // Base error for a referenced record that does not exist
var ErrConflict = errors.New("")          // Base error for a request conflicting with the current state
var ErrStorage = errors.New("")           // Base error for persistence failures

// Reference errors
var ErrShipmentNotFound = fmt.Errorf("shipment not found%w", ErrReferenceNotFound)
var ErrCustomerNotFound = fmt.Errorf("customer not found%w", ErrReferenceNotFound)
var ErrLocationNotFound = fmt.Errorf("location not found%w", ErrReferenceNotFound)
var ErrCarrierNotFound = fmt.Errorf("carrier not found%w", ErrReferenceNotFound)

// Shipment errors
var ErrInvalidStatusTransition = fmt.Errorf("invalid shipment status transition%w", ErrConflict)
var ErrDuplicateRecord = fmt.Errorf("record already exists%w", ErrConflict)

func ErrorToHttpStatus(err error) int {
	switch {
	case err == nil:
		return http.StatusOK
	case errors.Is(err, ErrInvalidParameter):
		return http.StatusBadRequest
	case errors.Is(err, ErrReferenceNotFound):
		return http.StatusNotFound
	case errors.Is(err, ErrConflict):
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}
