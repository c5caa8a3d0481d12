package evaluations

import "errors"

var ErrNotFound = errors.New("not found")
