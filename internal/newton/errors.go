package newton

import "errors"

// ErrSingular marks a singular derivative: a non-invertible Jacobian under
// the Inverse strategy, or an indeterminate f(x)/f'(x) step in 1D. Detect
// it with errors.Is. The solve call aborts; there is no partial recovery.
var ErrSingular = errors.New("singular derivative")
