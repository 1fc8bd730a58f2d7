package services

import (
	"errors"
	"testing"
	"time"

	"voyago/internal/models/request_models"
	"voyago/pkg/utils"
)

func TestValidateStep(t *testing.T) {
	start := request_models.NewDateOnly(2024, time.January, 10)
	end := request_models.NewDateOnly(2024, time.January, 16)
	inverted := request_models.NewDateOnly(2024, time.January, 9)

	tests := []struct {
		name    string
		step    int
		prefs   request_models.TripPreferences
		wantErr error
	}{
		{
			name:    "locations missing departure",
			step:    StepLocations,
			prefs:   request_models.TripPreferences{Destination: "London"},
			wantErr: utils.ErrMissingDeparture,
		},
		{
			name:    "locations missing destination",
			step:    StepLocations,
			prefs:   request_models.TripPreferences{DepartureLocation: "Paris"},
			wantErr: utils.ErrMissingDestination,
		},
		{
			name:    "locations whitespace destination",
			step:    StepLocations,
			prefs:   request_models.TripPreferences{DepartureLocation: "Paris", Destination: "   "},
			wantErr: utils.ErrMissingDestination,
		},
		{
			name:  "locations complete",
			step:  StepLocations,
			prefs: request_models.TripPreferences{DepartureLocation: "Paris", Destination: "London"},
		},
		{
			name:    "dates missing",
			step:    StepDates,
			prefs:   request_models.TripPreferences{StartDate: &start},
			wantErr: utils.ErrMissingDates,
		},
		{
			name:    "dates inverted",
			step:    StepDates,
			prefs:   request_models.TripPreferences{StartDate: &start, EndDate: &inverted},
			wantErr: utils.ErrDateOrder,
		},
		{
			name:  "dates same day",
			step:  StepDates,
			prefs: request_models.TripPreferences{StartDate: &start, EndDate: &start},
		},
		{
			name:  "dates ordered",
			step:  StepDates,
			prefs: request_models.TripPreferences{StartDate: &start, EndDate: &end},
		},
		{
			name:    "interests step rejects zero travelers",
			step:    StepInterests,
			prefs:   request_models.TripPreferences{},
			wantErr: utils.ErrInvalidTravelers,
		},
		{
			name:  "interests step allows empty interest list",
			step:  StepInterests,
			prefs: request_models.TripPreferences{Travelers: 1},
		},
		{
			name:  "review always passes",
			step:  StepReview,
			prefs: request_models.TripPreferences{},
		},
		{
			name:    "unknown step",
			step:    7,
			prefs:   request_models.TripPreferences{},
			wantErr: utils.ErrInvalidStep,
		},
		{
			name:    "step zero",
			step:    0,
			prefs:   request_models.TripPreferences{},
			wantErr: utils.ErrInvalidStep,
		},
	}

	svc := NewPreferenceService()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := svc.ValidateStep(tt.step, tt.prefs)
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("ValidateStep(%d) = %v, want %v", tt.step, err, tt.wantErr)
			}
		})
	}
}

func TestValidate_Cumulative(t *testing.T) {
	svc := NewPreferenceService()
	start := request_models.NewDateOnly(2024, time.January, 10)
	end := request_models.NewDateOnly(2024, time.January, 16)

	prefs := request_models.TripPreferences{Destination: "London"}
	if err := svc.Validate(prefs); !errors.Is(err, utils.ErrMissingDeparture) {
		t.Fatalf("err = %v, want the earliest step's failure", err)
	}

	prefs.DepartureLocation = "Paris"
	if err := svc.Validate(prefs); !errors.Is(err, utils.ErrMissingDates) {
		t.Fatalf("err = %v, want ErrMissingDates", err)
	}

	prefs.StartDate = &start
	prefs.EndDate = &end
	if err := svc.Validate(prefs); !errors.Is(err, utils.ErrInvalidTravelers) {
		t.Fatalf("err = %v, want ErrInvalidTravelers", err)
	}

	prefs.Travelers = 2
	if err := svc.Validate(prefs); err != nil {
		t.Fatalf("complete preferences rejected: %v", err)
	}
}

func TestInterestSuggestions(t *testing.T) {
	svc := NewPreferenceService()

	got := svc.InterestSuggestions()
	if len(got) != 10 || got[0] != "Nature" || got[9] != "Photography" {
		t.Fatalf("suggestions = %v", got)
	}

	// Mutating the returned slice must not leak into later calls.
	got[0] = "mutated"
	if again := svc.InterestSuggestions(); again[0] != "Nature" {
		t.Fatalf("suggestion list aliased: %v", again)
	}
}
