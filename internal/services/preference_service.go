package services

import (
	"strings"

	"voyago/internal/models/request_models"
	"voyago/pkg/utils"
)

// The four planner steps, in order: locations, dates, interests and budget,
// review. Forward and backward only, no branching.
const (
	StepLocations = 1
	StepDates     = 2
	StepInterests = 3
	StepReview    = 4
)

// interestSuggestions is the advisory tag list the planner offers. Users may
// type anything; the set restricts nothing.
var interestSuggestions = []string{
	"Nature",
	"Culture",
	"Food",
	"Adventure",
	"Relaxation",
	"Shopping",
	"History",
	"Nightlife",
	"Family-friendly",
	"Photography",
}

type PreferenceServiceInterface interface {
	// ValidateStep reports whether the wizard may advance past the given
	// step. Pure and synchronous; no side effects beyond the returned error.
	ValidateStep(step int, prefs request_models.TripPreferences) error
	// Validate runs the cumulative checks a submission must satisfy.
	Validate(prefs request_models.TripPreferences) error
	InterestSuggestions() []string
}

func NewPreferenceService() PreferenceServiceInterface {
	return &PreferenceService{}
}

type PreferenceService struct{}

func (p *PreferenceService) ValidateStep(step int, prefs request_models.TripPreferences) error {
	switch step {
	case StepLocations:
		if strings.TrimSpace(prefs.DepartureLocation) == "" {
			return utils.ErrMissingDeparture
		}
		if strings.TrimSpace(prefs.Destination) == "" {
			return utils.ErrMissingDestination
		}
		return nil
	case StepDates:
		if prefs.StartDate == nil || prefs.EndDate == nil || prefs.StartDate.IsZero() || prefs.EndDate.IsZero() {
			return utils.ErrMissingDates
		}
		if prefs.EndDate.Before(prefs.StartDate.Time) {
			return utils.ErrDateOrder
		}
		return nil
	case StepInterests:
		if prefs.Travelers < 1 {
			return utils.ErrInvalidTravelers
		}
		return nil
	case StepReview:
		return nil
	default:
		return utils.ErrInvalidStep
	}
}

func (p *PreferenceService) Validate(prefs request_models.TripPreferences) error {
	for step := StepLocations; step <= StepReview; step++ {
		if err := p.ValidateStep(step, prefs); err != nil {
			return err
		}
	}
	return nil
}

func (p *PreferenceService) InterestSuggestions() []string {
	out := make([]string, len(interestSuggestions))
	copy(out, interestSuggestions)
	return out
}
