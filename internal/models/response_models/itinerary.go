package response_models

import "voyago/internal/models/request_models"

// Activity types the provider is asked to use. The parser does not reject
// values outside this set; unknown types simply render without an icon on
// the client.
const (
	ActivityAttraction    = "attraction"
	ActivityFood          = "food"
	ActivityTransport     = "transport"
	ActivityAccommodation = "accommodation"
)

// Travel tip categories.
const (
	TipSafety    = "safety"
	TipPacking   = "packing"
	TipLocal     = "local"
	TipBudget    = "budget"
	TipTransport = "transport"
)

type Activity struct {
	ID          string                      `json:"id"`
	Time        string                      `json:"time"`
	Title       string                      `json:"title"`
	Location    string                      `json:"location"`
	Description string                      `json:"description"`
	Duration    string                      `json:"duration"`
	Type        string                      `json:"type"`
	Image       string                      `json:"image,omitempty"`
	Price       string                      `json:"price,omitempty"`
	Coordinates *request_models.Coordinates `json:"coordinates,omitempty"`
}

type Weather struct {
	Condition   string `json:"condition"`
	Temperature string `json:"temperature"`
	Icon        string `json:"icon"`
}

type ItineraryDay struct {
	DayNumber  int        `json:"dayNumber"`
	Activities []Activity `json:"activities"`
	Weather    *Weather   `json:"weather,omitempty"`
}

type HotelRecommendation struct {
	Name        string                      `json:"name"`
	Location    string                      `json:"location"`
	PriceRange  string                      `json:"priceRange"`
	Rating      float64                     `json:"rating"`
	Description string                      `json:"description"`
	Coordinates *request_models.Coordinates `json:"coordinates,omitempty"`
}

type TravelTip struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Category    string `json:"category"`
}

// Itinerary is the structured plan recovered from the provider's reply, or
// the fallback plan when recovery fails. Beyond parsing, the content is
// taken as-is.
type Itinerary struct {
	Days                 []ItineraryDay        `json:"days"`
	HotelRecommendations []HotelRecommendation `json:"hotelRecommendations,omitempty"`
	TravelTips           []TravelTip           `json:"travelTips,omitempty"`
}

// ItineraryView is what the presentation flow consumes: the persisted
// preferences, the derived 1-based day sequence, and the plan itself.
type ItineraryView struct {
	Preferences request_models.TripPreferences `json:"preferences"`
	DayNumbers  []int                          `json:"dayNumbers"`
	Itinerary   Itinerary                      `json:"itinerary"`
}
