package tetra

import "github.com/jward/tetra/internal/quadstore"

// Public aliases for the internal query-compiler types used in the Store
// API. These are Go type aliases (=), identical to the internal types at
// compile time; external consumers use these names and no conversion is
// needed.

type Pattern = quadstore.Pattern
type Mask = quadstore.Mask

// Accessor bits of a [Mask], one per slot in fixed order.
const (
	MaskContext   = quadstore.MaskContext
	MaskSubject   = quadstore.MaskSubject
	MaskPredicate = quadstore.MaskPredicate
	MaskObject    = quadstore.MaskObject
	MaskLiteral   = quadstore.MaskLiteral
)

// DefaultTimeout bounds each statement category unless an option overrides
// it.
const DefaultTimeout = quadstore.DefaultTimeout

// ErrObjectAndLiteral reports a pattern binding both the object and the
// literal accessor.
var ErrObjectAndLiteral = quadstore.ErrObjectAndLiteral
