package response_models

type DestinationSuggestion struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	Country     string   `json:"country"`
	Description string   `json:"description"`
	ImageURL    string   `json:"image_url,omitempty"`
	Rating      float64  `json:"rating"`
	Tags        []string `json:"tags,omitempty"`
}

type SavedItinerarySummary struct {
	ID                string `json:"id"`
	Title             string `json:"title"`
	DepartureLocation string `json:"departureLocation"`
	Destination       string `json:"destination"`
	StartDate         string `json:"startDate"`
	EndDate           string `json:"endDate"`
	CreatedAt         int64  `json:"createdAt"`
}
