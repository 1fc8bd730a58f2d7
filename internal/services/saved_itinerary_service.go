package services

import (
	"context"
	"encoding/json"
	"strings"
	"time"

	"github.com/google/uuid"

	"voyago/internal/models/db_models"
	"voyago/internal/models/response_models"
	"voyago/internal/repositories"
	"voyago/pkg/utils"
)

type SavedItineraryServiceInterface interface {
	// SaveCurrent copies whatever plan is sitting in the key-value store
	// into the user's saved list. Fails with ErrNoItinerary when nothing
	// has been generated yet.
	SaveCurrent(ctx context.Context, userID uuid.UUID, title string) (response_models.SavedItinerarySummary, error)
	List(ctx context.Context, userID uuid.UUID) ([]response_models.SavedItinerarySummary, error)
	Get(ctx context.Context, userID uuid.UUID, id uuid.UUID) (response_models.Itinerary, error)
	Delete(ctx context.Context, userID uuid.UUID, id uuid.UUID) error
}

func NewSavedItineraryService(
	repo repositories.SavedItineraryRepositoryInterface,
	itineraries ItineraryServiceInterface,
) SavedItineraryServiceInterface {
	return &SavedItineraryService{
		repo:        repo,
		itineraries: itineraries,
	}
}

type SavedItineraryService struct {
	repo        repositories.SavedItineraryRepositoryInterface
	itineraries ItineraryServiceInterface
}

func (s *SavedItineraryService) SaveCurrent(ctx context.Context, userID uuid.UUID, title string) (response_models.SavedItinerarySummary, error) {
	view, err := s.itineraries.CurrentItinerary(ctx)
	if err != nil {
		return response_models.SavedItinerarySummary{}, err
	}

	title = strings.TrimSpace(title)
	if title == "" {
		title = "Trip to " + view.Preferences.Destination
	}

	itineraryJSON, err := json.Marshal(view.Itinerary)
	if err != nil {
		return response_models.SavedItinerarySummary{}, err
	}

	var start, end time.Time
	if view.Preferences.StartDate != nil {
		start = view.Preferences.StartDate.Time
	}
	if view.Preferences.EndDate != nil {
		end = view.Preferences.EndDate.Time
	}

	record := db_models.SavedItinerary{
		UserID:            userID,
		Title:             title,
		DepartureLocation: view.Preferences.DepartureLocation,
		Destination:       view.Preferences.Destination,
		StartDate:         start,
		EndDate:           end,
		Itinerary:         string(itineraryJSON),
	}
	if err := s.repo.Create(ctx, &record); err != nil {
		return response_models.SavedItinerarySummary{}, utils.ErrDatabaseError
	}

	return toSummary(record), nil
}

func (s *SavedItineraryService) List(ctx context.Context, userID uuid.UUID) ([]response_models.SavedItinerarySummary, error) {
	records, err := s.repo.ListByUser(ctx, userID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	summaries := make([]response_models.SavedItinerarySummary, 0, len(records))
	for _, r := range records {
		summaries = append(summaries, toSummary(r))
	}
	return summaries, nil
}

func (s *SavedItineraryService) Get(ctx context.Context, userID uuid.UUID, id uuid.UUID) (response_models.Itinerary, error) {
	record, err := s.repo.GetByID(ctx, userID, id)
	if err != nil {
		return response_models.Itinerary{}, utils.ErrDatabaseError
	}
	if record == nil {
		return response_models.Itinerary{}, utils.ErrRecordNotFound
	}
	var itinerary response_models.Itinerary
	if err := json.Unmarshal([]byte(record.Itinerary), &itinerary); err != nil {
		return response_models.Itinerary{}, utils.ErrRecordNotFound
	}
	return itinerary, nil
}

func (s *SavedItineraryService) Delete(ctx context.Context, userID uuid.UUID, id uuid.UUID) error {
	record, err := s.repo.GetByID(ctx, userID, id)
	if err != nil {
		return utils.ErrDatabaseError
	}
	if record == nil {
		return utils.ErrRecordNotFound
	}
	if err := s.repo.Delete(ctx, userID, id); err != nil {
		return utils.ErrDatabaseError
	}
	return nil
}

func toSummary(r db_models.SavedItinerary) response_models.SavedItinerarySummary {
	return response_models.SavedItinerarySummary{
		ID:                r.ID.String(),
		Title:             r.Title,
		DepartureLocation: r.DepartureLocation,
		Destination:       r.Destination,
		StartDate:         utils.FormatDate(r.StartDate),
		EndDate:           utils.FormatDate(r.EndDate),
		CreatedAt:         r.CreatedAt,
	}
}
