package spacedlist

import "errors"

var (
	// ErrInvalidDistance signals a negative, infinite or NaN distance.
	ErrInvalidDistance = errors.New("spacedlist: invalid distance")
	// ErrOverflow signals that an append would overflow the distance type.
	ErrOverflow = errors.New("spacedlist: distance overflow")
	// ErrIndexOutOfBounds signals an invalid element index.
	ErrIndexOutOfBounds = errors.New("spacedlist: index out of bounds")
	// ErrInvalidAddress signals an address which does not denote an element.
	ErrInvalidAddress = errors.New("spacedlist: invalid address")
	// ErrInvalidStructure signals a broken structural invariant.
	ErrInvalidStructure = errors.New("spacedlist: invalid structure")
)
