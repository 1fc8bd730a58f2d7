package services

// Keys in the key-value store. The planner writes under these and the
// presentation flow reads them back, so they must never change between the
// two sides of a session.
const (
	StoreKeyAPIKey      = "gemini_api_key"
	StoreKeyPreferences = "trip_preferences"
	StoreKeyItinerary   = "trip_itinerary"
)
