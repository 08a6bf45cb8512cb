package vec

import "errors"

// ErrZeroLength is returned by TryNormalize for a vector of length zero.
var ErrZeroLength = errors.New("vec: cannot normalize zero-length vector")
