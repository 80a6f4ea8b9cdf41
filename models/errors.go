package models

import "errors"

// Error kinds surfaced by the services. Handlers classify with errors.Is and
// translate to status codes; services wrap these with context via fmt.Errorf.
var (
	// ErrInvalidRequest marks input the caller can fix: missing or
	// contradictory parameters.
	ErrInvalidRequest = errors.New("invalid request")

	// ErrNotFound marks a reference to an entity that does not exist.
	ErrNotFound = errors.New("not found")

	// ErrConstraintViolation marks a write that would break an answer or
	// ownership invariant. The write is rejected, never silently corrected.
	ErrConstraintViolation = errors.New("constraint violation")

	// ErrDataCorrupt marks a defect: a complete question without a correct
	// answer, which answer validation should have made impossible.
	ErrDataCorrupt = errors.New("data corrupt")

	// ErrQuestionsExhausted signals that every playable question has already
	// been presented this round. Like io.EOF it is a normal outcome, not a
	// failure; callers must distinguish it from ErrNotFound.
	ErrQuestionsExhausted = errors.New("questions exhausted")
)
