package services

import (
	"fmt"
	"strings"

	"voyago/internal/models/request_models"
	"voyago/pkg/utils"
)

// itinerarySchema is the exact shape the provider is told to answer with. It
// mirrors the response models in this package's sibling; keep the two in
// sync when either changes.
const itinerarySchema = `{
  "days": [
    {
      "dayNumber": 1,
      "activities": [
        {
          "id": "1",
          "time": "09:00 AM",
          "title": "Activity title",
          "location": "Specific location name",
          "description": "Detailed description of the activity",
          "duration": "2 hours",
          "type": "attraction" (or "food", "transport", "accommodation"),
          "price": "₹X,XXX" (optional)
        },
        ...more activities
      ],
      "weather": {
        "condition": "Sunny",
        "temperature": "32°C",
        "icon": "sun"
      }
    },
    ...more days
  ],
  "hotelRecommendations": [
    {
      "name": "Hotel name",
      "location": "Hotel location",
      "priceRange": "₹X,XXX - ₹Y,YYY per night",
      "rating": 4.5,
      "description": "Brief hotel description"
    },
    ...more hotels
  ],
  "travelTips": [
    {
      "title": "Tip title",
      "description": "Detailed tip description",
      "category": "safety" (or "packing", "local", "budget", "transport")
    },
    ...more tips
  ]
}`

// BuildItineraryPrompt renders a preference record into the single
// instruction sent to the provider. Missing fields become "Not specified"
// rather than being omitted, so the model does not invent constraints.
func BuildItineraryPrompt(prefs request_models.TripPreferences) string {
	departure := prefs.DepartureLocation
	if strings.TrimSpace(departure) == "" {
		departure = "home"
	}

	startDate := "Not specified"
	if prefs.StartDate != nil && !prefs.StartDate.IsZero() {
		startDate = utils.FormatDate(prefs.StartDate.Time)
	}
	endDate := "Not specified"
	if prefs.EndDate != nil && !prefs.EndDate.IsZero() {
		endDate = utils.FormatDate(prefs.EndDate.Time)
	}

	interests := "Not specified"
	if len(prefs.Interests) > 0 {
		interests = strings.Join(prefs.Interests, ", ")
	}

	var b strings.Builder
	fmt.Fprintf(&b, "Create a detailed travel itinerary for a trip from %s to %s.\n", departure, prefs.Destination)
	b.WriteString("Trip details:\n")
	fmt.Fprintf(&b, "- Start date: %s\n", startDate)
	fmt.Fprintf(&b, "- End date: %s\n", endDate)
	fmt.Fprintf(&b, "- Number of travelers: %d\n", prefs.Travelers)
	fmt.Fprintf(&b, "- Budget: ₹%.0f per person\n", prefs.Budget)
	fmt.Fprintf(&b, "- Interests: %s\n", interests)
	if strings.TrimSpace(prefs.AdditionalNotes) != "" {
		fmt.Fprintf(&b, "- Additional notes: %s\n", prefs.AdditionalNotes)
	}

	b.WriteString(`
Please provide a daily itinerary with specific details about each activity including:
- Time of day
- Title of activity
- Location (be specific with real places)
- Description
- Duration
- Type (attraction, food, transport, or accommodation)
- Approximate price (when applicable)

For each day, also include weather information (temperature, condition, and weather icon name).

Additionally, provide:
1. 3-5 hotel recommendations with name, location, price range, rating (1-5), and brief description
2. 5-8 travel tips specific to the destination (categorized as safety, packing, local, budget, or transport)

Format the response as a JSON object with days, activities, weather, hotel recommendations, and travel tips. Do not include any explanation, only the JSON object.
The JSON format should be:
`)
	b.WriteString(itinerarySchema)

	return b.String()
}
