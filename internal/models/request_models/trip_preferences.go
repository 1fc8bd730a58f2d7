package request_models

import (
	"fmt"
	"strings"
	"time"

	"voyago/pkg/utils"
)

// DateOnly carries a calendar date with no time component. It marshals as
// "2006-01-02" so a preference record survives the store round trip without
// timezone drift.
type DateOnly struct {
	time.Time
}

func NewDateOnly(year int, month time.Month, day int) DateOnly {
	return DateOnly{Time: time.Date(year, month, day, 0, 0, 0, 0, time.UTC)}
}

func (d DateOnly) MarshalJSON() ([]byte, error) {
	if d.IsZero() {
		return []byte("null"), nil
	}
	return []byte(fmt.Sprintf("%q", d.Format(utils.DateLayout))), nil
}

func (d *DateOnly) UnmarshalJSON(data []byte) error {
	s := strings.Trim(string(data), `"`)
	if s == "null" || s == "" {
		d.Time = time.Time{}
		return nil
	}
	t, err := utils.ParseDate(s)
	if err != nil {
		return fmt.Errorf("invalid date %q: %w", s, err)
	}
	d.Time = t
	return nil
}

type Coordinates struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

// TripPreferences is the planning request a user assembles across the four
// wizard steps. Coordinates arrive already resolved by the client's maps
// provider; this service only passes them through.
type TripPreferences struct {
	DepartureLocation      string       `json:"departureLocation"`
	DepartureCoordinates   *Coordinates `json:"departureCoordinates,omitempty"`
	Destination            string       `json:"destination"`
	DestinationCoordinates *Coordinates `json:"destinationCoordinates,omitempty"`
	StartDate              *DateOnly    `json:"startDate,omitempty"`
	EndDate                *DateOnly    `json:"endDate,omitempty"`
	Travelers              int          `json:"travelers"`
	Interests              []string     `json:"interests"`
	Budget                 float64      `json:"budget"`
	AdditionalNotes        string       `json:"additionalNotes,omitempty"`
}

// TripDayCount is the inclusive day span, 0 when either date is missing.
func (p TripPreferences) TripDayCount() int {
	if p.StartDate == nil || p.EndDate == nil {
		return 0
	}
	return utils.TripDayCount(p.StartDate.Time, p.EndDate.Time)
}

// ValidateStepRequest asks whether the wizard may advance past a step.
type ValidateStepRequest struct {
	Step        int             `json:"step"`
	Preferences TripPreferences `json:"preferences"`
}

type APIKeyRequest struct {
	APIKey string `json:"api_key"`
}

type SaveItineraryRequest struct {
	Title string `json:"title"`
}

type DestinationRequest struct {
	Name        string   `json:"name"`
	Country     string   `json:"country"`
	Description string   `json:"description"`
	ImageURL    string   `json:"image_url"`
	Rating      float64  `json:"rating"`
	Tags        []string `json:"tags"`
}
