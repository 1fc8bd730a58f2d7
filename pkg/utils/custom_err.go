package utils

import "errors"

// Generation failure kinds. Each kind is distinct so the service can log and
// report what actually went wrong even when the lenient mode answers with the
// fallback plan either way.
var (
	ErrCredentialMissing = errors.New("generation api key missing")
	ErrProviderTransport = errors.New("generation provider unreachable")
	ErrProviderRejected  = errors.New("generation provider rejected the request")
	ErrNoJSONFound       = errors.New("no json object found in provider response")
	ErrMalformedJSON     = errors.New("provider response json is malformed")
)

// Planner validation errors.
var (
	ErrInvalidStep        = errors.New("invalid planner step")
	ErrMissingDeparture   = errors.New("departure location is required")
	ErrMissingDestination = errors.New("destination is required")
	ErrMissingDates       = errors.New("start and end dates are required")
	ErrDateOrder          = errors.New("end date must not be before start date")
	ErrInvalidTravelers   = errors.New("travelers must be a positive number")
)

var (
	ErrEmptyAPIKey        = errors.New("api key cannot be empty")
	ErrNoItinerary        = errors.New("no itinerary has been generated yet")
	ErrGenerationInFlight = errors.New("itinerary generation already in progress")
	ErrRecordNotFound     = errors.New("record not found")
	ErrDatabaseError      = errors.New("database error")
)
