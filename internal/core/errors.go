package core

import "errors"

// Error kinds shared by every package. Callers match them with errors.Is; the
// returned errors wrap one of these with the details of the failing call.
var (
	// ErrInvalidArgument reports an empty word, a minimum length below one, or
	// another malformed argument. No work is performed.
	ErrInvalidArgument = errors.New("invalid argument")

	// ErrInvalidShape reports a tile list that is empty or not a perfect square.
	ErrInvalidShape = errors.New("invalid board shape")

	// ErrLexiconUnavailable reports a query made before a lexicon was loaded.
	ErrLexiconUnavailable = errors.New("lexicon unavailable")

	// ErrLoadFailure reports a dictionary source that could not be read.
	ErrLoadFailure = errors.New("lexicon load failed")
)
