package services

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/pgvector/pgvector-go"
	"google.golang.org/api/googleapi"

	"voyago/internal/models/request_models"
	"voyago/internal/models/response_models"
	"voyago/internal/repositories"
	"voyago/pkg/utils"
)

type fakeAIClient struct {
	text   string
	err    error
	closed bool
}

func (f *fakeAIClient) GenerateItineraryText(ctx context.Context, prompt string) (string, error) {
	return f.text, f.err
}

func (f *fakeAIClient) GetEmbedding(ctx context.Context, text string) (pgvector.Vector, error) {
	return pgvector.Vector{}, nil
}

func (f *fakeAIClient) Close() error {
	f.closed = true
	return nil
}

func fakeFactory(client utils.AIClientInterface) utils.AIClientFactory {
	return func(apiKey string) (utils.AIClientInterface, error) {
		return client, nil
	}
}

// recordingKV remembers the order of writes so tests can assert the
// preferences-before-itinerary convention.
type recordingKV struct {
	repositories.KVRepositoryInterface
	writes []string
}

func newRecordingKV() *recordingKV {
	return &recordingKV{KVRepositoryInterface: repositories.NewMemoryKVRepository()}
}

func (r *recordingKV) Set(ctx context.Context, key, value string) error {
	r.writes = append(r.writes, key)
	return r.KVRepositoryInterface.Set(ctx, key, value)
}

func testPreferences(t *testing.T) request_models.TripPreferences {
	t.Helper()
	start := request_models.NewDateOnly(2024, time.January, 10)
	end := request_models.NewDateOnly(2024, time.January, 16)
	return request_models.TripPreferences{
		DepartureLocation: "Goa",
		Destination:       "Agra",
		StartDate:         &start,
		EndDate:           &end,
		Travelers:         2,
		Interests:         []string{"History"},
		Budget:            50000,
	}
}

// providerReply wraps an itinerary with the prose and code fences real
// providers like to add.
func providerReply(t *testing.T, days int) string {
	t.Helper()
	itinerary := response_models.Itinerary{}
	for i := 1; i <= days; i++ {
		itinerary.Days = append(itinerary.Days, response_models.ItineraryDay{
			DayNumber: i,
			Activities: []response_models.Activity{
				{
					ID:          fmt.Sprintf("%d.1", i),
					Time:        "09:00 AM",
					Title:       fmt.Sprintf("Day %d sightseeing", i),
					Location:    "Agra",
					Description: "Guided visit",
					Duration:    "3 hours",
					Type:        response_models.ActivityAttraction,
				},
			},
		})
	}
	data, err := json.Marshal(itinerary)
	if err != nil {
		t.Fatalf("marshal reply: %v", err)
	}
	return "Here you go:\n```json\n" + string(data) + "\n```"
}

func seedAPIKey(t *testing.T, store repositories.KVRepositoryInterface) {
	t.Helper()
	if err := store.Set(context.Background(), StoreKeyAPIKey, "test-key"); err != nil {
		t.Fatalf("seed api key: %v", err)
	}
}

func TestGenerate_SuccessPersistsPreferencesThenItinerary(t *testing.T) {
	store := newRecordingKV()
	seedAPIKey(t, store)

	svc := NewItineraryService(store, fakeFactory(&fakeAIClient{text: providerReply(t, 7)}), ModeLenient)

	itinerary, err := svc.Generate(context.Background(), testPreferences(t))
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	if len(itinerary.Days) != 7 {
		t.Fatalf("days = %d, want 7", len(itinerary.Days))
	}

	// First write is the idempotent credential refresh, then preferences,
	// then the itinerary.
	want := []string{StoreKeyAPIKey, StoreKeyPreferences, StoreKeyItinerary}
	if len(store.writes) != len(want) {
		t.Fatalf("writes = %v", store.writes)
	}
	for i, key := range want {
		if store.writes[i] != key {
			t.Fatalf("write %d = %q, want %q (all: %v)", i, store.writes[i], key, store.writes)
		}
	}

	stored, ok, err := store.Get(context.Background(), StoreKeyItinerary)
	if err != nil || !ok {
		t.Fatalf("stored itinerary missing: ok=%v err=%v", ok, err)
	}
	var persisted response_models.Itinerary
	if err := json.Unmarshal([]byte(stored), &persisted); err != nil {
		t.Fatalf("persisted itinerary not json: %v", err)
	}
	if len(persisted.Days) != 7 {
		t.Fatalf("persisted days = %d, want 7", len(persisted.Days))
	}
}

func TestGenerate_CredentialMissing(t *testing.T) {
	for _, mode := range []GenerationMode{ModeLenient, ModeStrict} {
		store := repositories.NewMemoryKVRepository()
		svc := NewItineraryService(store, fakeFactory(&fakeAIClient{text: providerReply(t, 7)}), mode)

		_, err := svc.Generate(context.Background(), testPreferences(t))
		if !errors.Is(err, utils.ErrCredentialMissing) {
			t.Fatalf("mode %s: err = %v, want ErrCredentialMissing", mode, err)
		}
	}
}

func TestGenerate_BlankCredentialIsMissing(t *testing.T) {
	store := repositories.NewMemoryKVRepository()
	if err := store.Set(context.Background(), StoreKeyAPIKey, "   "); err != nil {
		t.Fatalf("seed: %v", err)
	}
	svc := NewItineraryService(store, fakeFactory(&fakeAIClient{text: providerReply(t, 7)}), ModeLenient)

	if _, err := svc.Generate(context.Background(), testPreferences(t)); !errors.Is(err, utils.ErrCredentialMissing) {
		t.Fatalf("err = %v, want ErrCredentialMissing", err)
	}
}

func TestGenerate_ProviderErrorLenientFallsBack(t *testing.T) {
	store := repositories.NewMemoryKVRepository()
	seedAPIKey(t, store)

	providerErr := &googleapi.Error{Code: 429, Message: "quota exceeded"}
	svc := NewItineraryService(store, fakeFactory(&fakeAIClient{err: providerErr}), ModeLenient)

	itinerary, err := svc.Generate(context.Background(), testPreferences(t))
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}

	fallback := FallbackItinerary()
	if len(itinerary.Days) != len(fallback.Days) {
		t.Fatalf("days = %d, want fallback's %d", len(itinerary.Days), len(fallback.Days))
	}
	if itinerary.Days[0].Activities[0].Title != fallback.Days[0].Activities[0].Title {
		t.Fatalf("fallback not substituted: %q", itinerary.Days[0].Activities[0].Title)
	}
}

func TestGenerate_FallbackIsNeverTruncated(t *testing.T) {
	store := repositories.NewMemoryKVRepository()
	seedAPIKey(t, store)

	// A trip shorter than the fallback plan. Substitution must deliver the
	// whole plan; truncation applies to provider output only.
	start := request_models.NewDateOnly(2024, time.March, 5)
	end := request_models.NewDateOnly(2024, time.March, 6)
	prefs := testPreferences(t)
	prefs.StartDate = &start
	prefs.EndDate = &end

	svc := NewItineraryService(store, fakeFactory(&fakeAIClient{err: errors.New("connection reset")}), ModeLenient)

	itinerary, err := svc.Generate(context.Background(), prefs)
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	if want := len(FallbackItinerary().Days); len(itinerary.Days) != want {
		t.Fatalf("days = %d, want the full fallback's %d", len(itinerary.Days), want)
	}
}

func TestGenerate_ProviderErrorStrictSurfacesKind(t *testing.T) {
	store := repositories.NewMemoryKVRepository()
	seedAPIKey(t, store)

	providerErr := &googleapi.Error{Code: 429, Message: "quota exceeded"}
	svc := NewItineraryService(store, fakeFactory(&fakeAIClient{err: providerErr}), ModeStrict)

	_, err := svc.Generate(context.Background(), testPreferences(t))
	if !errors.Is(err, utils.ErrProviderRejected) {
		t.Fatalf("err = %v, want ErrProviderRejected", err)
	}
	if !strings.Contains(err.Error(), "quota exceeded") {
		t.Fatalf("err %q should carry the provider message", err)
	}
}

func TestGenerate_TransportErrorStrict(t *testing.T) {
	store := repositories.NewMemoryKVRepository()
	seedAPIKey(t, store)

	svc := NewItineraryService(store, fakeFactory(&fakeAIClient{err: errors.New("dial tcp: connection refused")}), ModeStrict)

	if _, err := svc.Generate(context.Background(), testPreferences(t)); !errors.Is(err, utils.ErrProviderTransport) {
		t.Fatalf("err = %v, want ErrProviderTransport", err)
	}
}

func TestGenerate_NoJSONInReply(t *testing.T) {
	store := repositories.NewMemoryKVRepository()
	seedAPIKey(t, store)

	strict := NewItineraryService(store, fakeFactory(&fakeAIClient{text: "Sorry, I cannot plan that trip."}), ModeStrict)
	if _, err := strict.Generate(context.Background(), testPreferences(t)); !errors.Is(err, utils.ErrNoJSONFound) {
		t.Fatalf("strict err = %v, want ErrNoJSONFound", err)
	}

	lenient := NewItineraryService(store, fakeFactory(&fakeAIClient{text: "Sorry, I cannot plan that trip."}), ModeLenient)
	itinerary, err := lenient.Generate(context.Background(), testPreferences(t))
	if err != nil {
		t.Fatalf("lenient Generate: %v", err)
	}
	if len(itinerary.Days) != len(FallbackItinerary().Days) {
		t.Fatalf("lenient mode should fall back, got %d days", len(itinerary.Days))
	}
}

func TestGenerate_MalformedJSONStrict(t *testing.T) {
	store := repositories.NewMemoryKVRepository()
	seedAPIKey(t, store)

	svc := NewItineraryService(store, fakeFactory(&fakeAIClient{text: `{"days": [}`}), ModeStrict)

	if _, err := svc.Generate(context.Background(), testPreferences(t)); !errors.Is(err, utils.ErrMalformedJSON) {
		t.Fatalf("err = %v, want ErrMalformedJSON", err)
	}
}

func TestGenerate_ParsedObjectWithoutDaysIsReturnedAsIs(t *testing.T) {
	store := repositories.NewMemoryKVRepository()
	seedAPIKey(t, store)

	svc := NewItineraryService(store, fakeFactory(&fakeAIClient{text: `{"travelTips":[{"title":"t","description":"d","category":"local"}]}`}), ModeStrict)

	itinerary, err := svc.Generate(context.Background(), testPreferences(t))
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	if len(itinerary.Days) != 0 || len(itinerary.TravelTips) != 1 {
		t.Fatalf("itinerary = %+v", itinerary)
	}
}

func TestGenerate_TruncatesOverlongResponse(t *testing.T) {
	store := repositories.NewMemoryKVRepository()
	seedAPIKey(t, store)

	start := request_models.NewDateOnly(2024, time.March, 5)
	end := request_models.NewDateOnly(2024, time.March, 6)
	prefs := testPreferences(t)
	prefs.StartDate = &start
	prefs.EndDate = &end

	svc := NewItineraryService(store, fakeFactory(&fakeAIClient{text: providerReply(t, 5)}), ModeStrict)

	itinerary, err := svc.Generate(context.Background(), prefs)
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	if len(itinerary.Days) != 2 {
		t.Fatalf("days = %d, want truncation to 2", len(itinerary.Days))
	}
}

func TestGenerate_ShortResponsePassesThrough(t *testing.T) {
	store := repositories.NewMemoryKVRepository()
	seedAPIKey(t, store)

	svc := NewItineraryService(store, fakeFactory(&fakeAIClient{text: providerReply(t, 3)}), ModeStrict)

	itinerary, err := svc.Generate(context.Background(), testPreferences(t))
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	if len(itinerary.Days) != 3 {
		t.Fatalf("days = %d, want 3 (no padding)", len(itinerary.Days))
	}
}

func TestCurrentItinerary_RoundTrip(t *testing.T) {
	store := repositories.NewMemoryKVRepository()
	seedAPIKey(t, store)

	svc := NewItineraryService(store, fakeFactory(&fakeAIClient{text: providerReply(t, 7)}), ModeLenient)
	prefs := testPreferences(t)

	if _, err := svc.Generate(context.Background(), prefs); err != nil {
		t.Fatalf("Generate: %v", err)
	}

	view, err := svc.CurrentItinerary(context.Background())
	if err != nil {
		t.Fatalf("CurrentItinerary: %v", err)
	}
	if view.Preferences.Destination != "Agra" || view.Preferences.DepartureLocation != "Goa" {
		t.Fatalf("preferences = %+v", view.Preferences)
	}
	if view.Preferences.StartDate == nil || !view.Preferences.StartDate.Equal(prefs.StartDate.Time) {
		t.Fatalf("start date drifted: %v", view.Preferences.StartDate)
	}
	if len(view.DayNumbers) != 7 || view.DayNumbers[0] != 1 || view.DayNumbers[6] != 7 {
		t.Fatalf("day numbers = %v", view.DayNumbers)
	}
	if len(view.Itinerary.Days) != 7 {
		t.Fatalf("itinerary days = %d", len(view.Itinerary.Days))
	}
}

func TestCurrentItinerary_NothingPersisted(t *testing.T) {
	store := repositories.NewMemoryKVRepository()
	svc := NewItineraryService(store, fakeFactory(&fakeAIClient{}), ModeLenient)

	if _, err := svc.CurrentItinerary(context.Background()); !errors.Is(err, utils.ErrNoItinerary) {
		t.Fatalf("err = %v, want ErrNoItinerary", err)
	}
}

func TestBuildItineraryPrompt(t *testing.T) {
	prompt := BuildItineraryPrompt(testPreferences(t))

	for _, want := range []string{"from Goa to Agra", "2024-01-10", "2024-01-16", "History", "₹50000 per person", `"hotelRecommendations"`} {
		if !strings.Contains(prompt, want) {
			t.Fatalf("prompt missing %q", want)
		}
	}
}

func TestBuildItineraryPrompt_MissingFields(t *testing.T) {
	prompt := BuildItineraryPrompt(request_models.TripPreferences{Destination: "Agra", Travelers: 1})

	if !strings.Contains(prompt, "from home to Agra") {
		t.Fatalf("empty departure should render as home:\n%s", prompt)
	}
	if !strings.Contains(prompt, "Start date: Not specified") || !strings.Contains(prompt, "End date: Not specified") {
		t.Fatal("missing dates should render as Not specified")
	}
	if !strings.Contains(prompt, "Interests: Not specified") {
		t.Fatal("missing interests should render as Not specified")
	}
}

func TestParseGenerationMode(t *testing.T) {
	if ParseGenerationMode("strict") != ModeStrict {
		t.Fatal("strict not recognized")
	}
	if ParseGenerationMode("STRICT") != ModeStrict {
		t.Fatal("mode should be case-insensitive")
	}
	for _, s := range []string{"", "lenient", "anything"} {
		if ParseGenerationMode(s) != ModeLenient {
			t.Fatalf("%q should default to lenient", s)
		}
	}
}
