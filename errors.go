package fuzzdex

import "errors"

// All errors are reported synchronously to the caller from the operation
// that detects them; none are logged, retried, or swallowed inside this
// package. A search that merely finds nothing returns an empty result
// slice, not an error — see Search's doc comment.
var (
	// ErrIndexFrozen is returned by AddPhrase once Finish has been called.
	ErrIndexFrozen = errors.New("fuzzdex: index is frozen, writes are no longer accepted")

	// ErrIndexNotReady is returned by Search before Finish has been called.
	ErrIndexNotReady = errors.New("fuzzdex: index is not frozen, search is not available yet")

	// ErrDuplicateID is returned by AddPhrase when id is already present.
	ErrDuplicateID = errors.New("fuzzdex: phrase id already exists")

	// ErrEmptyPhrase is returned by AddPhrase when text tokenizes to nothing.
	ErrEmptyPhrase = errors.New("fuzzdex: phrase text tokenizes to an empty sequence")

	// ErrInvalidArgument is returned for out-of-range numeric inputs, e.g. a
	// negative max_distance.
	ErrInvalidArgument = errors.New("fuzzdex: invalid argument")
)
