package supplier

import "errors"

var ErrNotFound = errors.New("supplier not found")
