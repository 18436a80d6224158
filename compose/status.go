package compose

import (
	"errors"
	"net/http"

	"fragd/fragment"
)

// StatusCode maps result of Compose or Render to the HTTP status a server
// should answer with.
func StatusCode(err error) int {
	switch {
	case err == nil:
		return http.StatusOK
	case errors.Is(err, fragment.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, fragment.ErrMalformedOverride):
		return http.StatusBadRequest
	case errors.Is(err, ErrNotFragmentRequest):
		return http.StatusForbidden
	default:
		return http.StatusInternalServerError
	}
}
