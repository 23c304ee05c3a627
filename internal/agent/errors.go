package agent

import "errors"

// ErrSchemaMismatch is returned when decoded model output does not match
// the contract it was asked for: a preference record with a changed field
// set, the wrong top-level shape, or unusable field types.
var ErrSchemaMismatch = errors.New("model output does not match expected schema")
