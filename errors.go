package treefold

import "errors"

// ErrEmptyInput is returned when a root is requested over zero leaves.
// There is no digest that summarizes an empty sequence,
// so the computation aborts rather than substituting a default.
var ErrEmptyInput = errors.New("leaf source produced no leaves")
