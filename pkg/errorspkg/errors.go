// Package errorspkg provides common app errors.
package errorspkg

import "errors"

// ErrInternal indicates internal server error. Delivery layers fall back to
// it for any error a handler does not map explicitly.
var ErrInternal = errors.New("internal")
