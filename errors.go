package cubeviz

import "errors"

// Sentinel errors for the cubeviz package.
var (
	// Parsing errors
	ErrInvalidNotation = errors.New("cubeviz: invalid move notation")

	// Contract violations. These are raised as panics by Turn and returned
	// by Validate.
	ErrInvalidLayer = errors.New("cubeviz: layer must be -1, 0 or 1")
	ErrBijection    = errors.New("cubeviz: coordinate table is not a bijection")
	ErrStickerCount = errors.New("cubeviz: sticker set is not a permutation of the solved set")
)
