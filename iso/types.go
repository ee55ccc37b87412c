package iso

import "errors"

// Sentinel errors for matching and class-catalogue operations.
var (
	// ErrMixedDirectedness indicates host and pattern disagree on directedness.
	ErrMixedDirectedness = errors.New("iso: host and pattern directedness differ")

	// ErrUnsupportedSize indicates a size outside the 3..4 class catalogue.
	ErrUnsupportedSize = errors.New("iso: motif size must be 3 or 4")

	// ErrClassRange indicates an isomorphism-class ID outside the catalogue.
	ErrClassRange = errors.New("iso: isomorphism class ID out of range")
)
