package httpErrors

import (
	"errors"
	"net/http"

	domainerrors "remit/pkg/domain-errors"
)

// ToHTTPStatus maps a domain error code onto an HTTP status so handlers share
// one translation point. Domain outcomes that travel in a 200 envelope
// (trust_check_failed, recipient_unreachable) are the handlers' business and
// never reach this function.
func ToHTTPStatus(code domainerrors.Code) int {
	switch code {
	case domainerrors.CodeInvalidInput:
		return http.StatusBadRequest
	case domainerrors.CodeNotFound:
		return http.StatusNotFound
	case domainerrors.CodeInvariantViolation:
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}

// CodeOf extracts the domain code from err, defaulting to internal_error for
// anything that is not a coded domain error.
func CodeOf(err error) domainerrors.Code {
	var de *domainerrors.Error
	if errors.As(err, &de) {
		return de.Code
	}
	return domainerrors.CodeInternal
}
