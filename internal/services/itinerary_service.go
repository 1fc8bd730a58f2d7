package services

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"strings"

	openai "github.com/sashabaranov/go-openai"
	"google.golang.org/api/googleapi"

	"voyago/internal/models/request_models"
	"voyago/internal/models/response_models"
	"voyago/internal/repositories"
	"voyago/pkg/utils"
)

// GenerationMode decides what a generation failure looks like to the caller.
// Lenient substitutes the fallback plan; strict surfaces the typed error.
// The mode is fixed by configuration so the two behaviors never mix within
// one deployment. A missing credential is surfaced in either mode, because
// only the user can fix that.
type GenerationMode string

const (
	ModeLenient GenerationMode = "lenient"
	ModeStrict  GenerationMode = "strict"
)

func ParseGenerationMode(s string) GenerationMode {
	if strings.EqualFold(s, string(ModeStrict)) {
		return ModeStrict
	}
	return ModeLenient
}

type ItineraryServiceInterface interface {
	// Generate produces an itinerary for the given preferences and persists
	// both under their store keys, preferences first. It settles with either
	// a usable itinerary or a typed error; nothing escapes unhandled.
	Generate(ctx context.Context, prefs request_models.TripPreferences) (response_models.Itinerary, error)
	// CurrentItinerary reads back what the last Generate persisted.
	CurrentItinerary(ctx context.Context) (response_models.ItineraryView, error)
}

func NewItineraryService(
	store repositories.KVRepositoryInterface,
	newClient utils.AIClientFactory,
	mode GenerationMode,
) ItineraryServiceInterface {
	return &ItineraryService{
		store:     store,
		newClient: newClient,
		mode:      mode,
	}
}

type ItineraryService struct {
	store     repositories.KVRepositoryInterface
	newClient utils.AIClientFactory
	mode      GenerationMode
}

func (s *ItineraryService) Generate(ctx context.Context, prefs request_models.TripPreferences) (response_models.Itinerary, error) {
	apiKey, ok, err := s.store.Get(ctx, StoreKeyAPIKey)
	if err != nil {
		return response_models.Itinerary{}, utils.ErrDatabaseError
	}
	apiKey = strings.TrimSpace(apiKey)
	if !ok || apiKey == "" {
		return response_models.Itinerary{}, utils.ErrCredentialMissing
	}

	// Idempotent refresh so the key survives even if it arrived through a
	// path that never wrote it back.
	if err := s.store.Set(ctx, StoreKeyAPIKey, apiKey); err != nil {
		return response_models.Itinerary{}, utils.ErrDatabaseError
	}

	itinerary, genErr := s.callProvider(ctx, apiKey, prefs)
	if genErr != nil {
		if s.mode == ModeStrict {
			return response_models.Itinerary{}, genErr
		}
		// The fallback plan is substituted whole; only provider output is
		// normalized against the requested span.
		log.Printf("Itinerary generation failed (%v); substituting fallback plan", genErr)
		itinerary = FallbackItinerary()
	} else {
		itinerary = s.normalizeDayCount(itinerary, prefs)
	}

	if err := s.persist(ctx, prefs, itinerary); err != nil {
		return response_models.Itinerary{}, utils.ErrDatabaseError
	}

	return itinerary, nil
}

// callProvider makes exactly one completion call and recovers the itinerary
// from whatever text comes back. No retries, no caching; each failure is
// tagged with its kind so logs say what actually broke.
func (s *ItineraryService) callProvider(ctx context.Context, apiKey string, prefs request_models.TripPreferences) (response_models.Itinerary, error) {
	client, err := s.newClient(apiKey)
	if err != nil {
		return response_models.Itinerary{}, fmt.Errorf("%w: %v", utils.ErrProviderTransport, err)
	}
	defer client.Close()

	text, err := client.GenerateItineraryText(ctx, BuildItineraryPrompt(prefs))
	if err != nil {
		return response_models.Itinerary{}, classifyProviderError(err)
	}

	raw, err := utils.ExtractJSONObject(text)
	if err != nil {
		return response_models.Itinerary{}, err
	}

	var itinerary response_models.Itinerary
	if err := json.Unmarshal([]byte(raw), &itinerary); err != nil {
		return response_models.Itinerary{}, fmt.Errorf("%w: %v", utils.ErrMalformedJSON, err)
	}

	return itinerary, nil
}

// classifyProviderError separates "the provider answered with an error" from
// "we never reached the provider". Both Gemini and OpenAI surface
// application errors as typed values.
func classifyProviderError(err error) error {
	var gerr *googleapi.Error
	if errors.As(err, &gerr) {
		return fmt.Errorf("%w: %v", utils.ErrProviderRejected, err)
	}
	var oerr *openai.APIError
	if errors.As(err, &oerr) {
		return fmt.Errorf("%w: %v", utils.ErrProviderRejected, err)
	}
	return fmt.Errorf("%w: %v", utils.ErrProviderTransport, err)
}

// normalizeDayCount truncates responses that run past the requested trip
// length. Responses that come up short pass through; fabricating days would
// be worse than rendering fewer.
func (s *ItineraryService) normalizeDayCount(itinerary response_models.Itinerary, prefs request_models.TripPreferences) response_models.Itinerary {
	want := prefs.TripDayCount()
	if want == 0 || len(itinerary.Days) == want {
		return itinerary
	}
	if len(itinerary.Days) > want {
		log.Printf("Provider returned %d days for a %d-day trip; truncating", len(itinerary.Days), want)
		itinerary.Days = itinerary.Days[:want]
		return itinerary
	}
	log.Printf("Provider returned %d days for a %d-day trip", len(itinerary.Days), want)
	return itinerary
}

// persist writes preferences before the itinerary. Not a transaction: a
// reader that sees an itinerary is guaranteed a preference record, at worst
// a stale one.
func (s *ItineraryService) persist(ctx context.Context, prefs request_models.TripPreferences, itinerary response_models.Itinerary) error {
	prefsJSON, err := json.Marshal(prefs)
	if err != nil {
		return err
	}
	if err := s.store.Set(ctx, StoreKeyPreferences, string(prefsJSON)); err != nil {
		return err
	}

	itineraryJSON, err := json.Marshal(itinerary)
	if err != nil {
		return err
	}
	return s.store.Set(ctx, StoreKeyItinerary, string(itineraryJSON))
}

func (s *ItineraryService) CurrentItinerary(ctx context.Context) (response_models.ItineraryView, error) {
	prefsJSON, ok, err := s.store.Get(ctx, StoreKeyPreferences)
	if err != nil {
		return response_models.ItineraryView{}, utils.ErrDatabaseError
	}
	if !ok {
		return response_models.ItineraryView{}, utils.ErrNoItinerary
	}

	var prefs request_models.TripPreferences
	if err := json.Unmarshal([]byte(prefsJSON), &prefs); err != nil {
		return response_models.ItineraryView{}, utils.ErrNoItinerary
	}

	itineraryJSON, ok, err := s.store.Get(ctx, StoreKeyItinerary)
	if err != nil {
		return response_models.ItineraryView{}, utils.ErrDatabaseError
	}
	if !ok {
		return response_models.ItineraryView{}, utils.ErrNoItinerary
	}

	var itinerary response_models.Itinerary
	if err := json.Unmarshal([]byte(itineraryJSON), &itinerary); err != nil {
		return response_models.ItineraryView{}, utils.ErrNoItinerary
	}

	return response_models.ItineraryView{
		Preferences: prefs,
		DayNumbers:  utils.DayNumbers(prefs.TripDayCount()),
		Itinerary:   itinerary,
	}, nil
}
