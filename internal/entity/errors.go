package entity

import "errors"

// Domain errors shared across usecases and adapters.
var (
	ErrScenarioNotFound   = errors.New("scenario not found")
	ErrInvalidScenario    = errors.New("invalid scenario")
	ErrEmptyCatalog       = errors.New("no scenarios available")
	ErrMissingAPIKey      = errors.New("api key not configured")
	ErrMalformedReply     = errors.New("malformed model reply")
	ErrInvalidHistoryItem = errors.New("invalid history record")
)
