package sorting

import "errors"

// ErrUnknownAlgorithm indicates a lookup for an algorithm nobody registered.
var ErrUnknownAlgorithm = errors.New("sorting: unknown algorithm")
