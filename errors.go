package kmeans

import "errors"

// ErrInvalidConfiguration is returned (wrapped) when the dataset or the
// Config violates a precondition. It is reported before any iteration runs.
var ErrInvalidConfiguration = errors.New("invalid configuration")
