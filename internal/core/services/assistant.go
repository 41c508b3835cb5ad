package services

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"iter"
	"slices"
	"strconv"
	"strings"
	"sync"

	"github.com/AdwaitSalankar/FoodieSpot-Reservation-Assistant/internal/core/domain"
	"github.com/AdwaitSalankar/FoodieSpot-Reservation-Assistant/internal/core/ports/driven"
	"github.com/AdwaitSalankar/FoodieSpot-Reservation-Assistant/internal/core/ports/driving"
	"github.com/AdwaitSalankar/FoodieSpot-Reservation-Assistant/internal/logger"
	"github.com/AdwaitSalankar/FoodieSpot-Reservation-Assistant/internal/prompts"
)

// Ensure AssistantService implements the interfaces.
var (
	_ driving.AssistantService = (*AssistantService)(nil)
	_ driven.PromptStoreAware  = (*AssistantService)(nil)
)

// Fixed replies for turns that end before the model narrates anything.
const (
	MsgEmptyInput       = "Sorry, I didn't catch that. Please enter your reservation request again."
	MsgIntentFailure    = "Error determining intent, Please enter your request again or try rephrasing it."
	MsgModelUnavailable = "Sorry, I'm having trouble reaching the assistant right now. Please try again in a moment."
	msgNoToolResponse   = "No tool response"
)

// Model call settings per pipeline stage.
var (
	classifyOptions = driven.GenerateOptions{Temperature: 0.2, MaxTokens: 500}
	explainOptions  = driven.GenerateOptions{Temperature: 0.7, MaxTokens: 500}
	narrateOptions  = driven.GenerateOptions{Temperature: 0.7, MaxTokens: 1000}
)

// How many recent turns each prompt sees.
const (
	intentHistoryTurns    = 5
	narrationHistoryTurns = 3
)

// requiredBookingFields are checked before make_reservation is dispatched.
var requiredBookingFields = []string{"name", "party_size", "date", "time"}

// promptData carries every field a prompt template may reference.
type promptData struct {
	Restaurants  string
	History      string
	Tools        string
	UserInput    string
	Intent       string
	Parameters   string
	ToolResponse string
	ErrorMessage string
}

// AssistantService turns free-text requests into reservation tool calls
// and streams a narrated reply.
type AssistantService struct {
	llm          driven.LLMService
	reservations driving.ReservationService
	tools        *ToolRegistry
	promptStore  driven.PromptStore

	// turnMu serialises turns; historyMu guards history alone so callers
	// may read it while a reply is streaming.
	turnMu    sync.Mutex
	historyMu sync.RWMutex
	history   []domain.ChatTurn
}

// NewAssistantService creates an assistant over a tool registry that has
// the reservation tools bound.
func NewAssistantService(
	llm driven.LLMService,
	reservations driving.ReservationService,
	tools *ToolRegistry,
) (*AssistantService, error) {
	if llm == nil {
		return nil, domain.ErrLLMUnavailable
	}
	if reservations == nil || tools == nil {
		return nil, fmt.Errorf("%w: reservation service and tool registry are required", domain.ErrInvalidInput)
	}
	return &AssistantService{
		llm:          llm,
		reservations: reservations,
		tools:        tools,
	}, nil
}

// SetPromptStore sets the prompt store for loading customisable prompts.
func (s *AssistantService) SetPromptStore(store driven.PromptStore) {
	s.promptStore = store
}

// WelcomeMessage is the greeting shown when a conversation starts.
func WelcomeMessage() string {
	var b strings.Builder
	b.WriteString("Welcome to FoodieSpot! What would you like to do today? Here are some options:\n\n")
	b.WriteString("- Get list of available restaurants\n")
	b.WriteString("- Make / Modify / Cancel a reservation\n\n")
	b.WriteString("Our Locations:\n")
	for _, l := range domain.Locations() {
		b.WriteString("- " + l + "\n")
	}
	b.WriteString("\nOur Cuisines:\n")
	for _, c := range domain.Cuisines() {
		b.WriteString("- " + c + "\n")
	}
	b.WriteString("\nYou can begin by asking about available restaurants in an area.")
	return b.String()
}

// History returns a copy of the conversation so far.
func (s *AssistantService) History() []domain.ChatTurn {
	s.historyMu.RLock()
	defer s.historyMu.RUnlock()
	return slices.Clone(s.history)
}

// Reset clears the conversation.
func (s *AssistantService) Reset() {
	s.historyMu.Lock()
	defer s.historyMu.Unlock()
	s.history = nil
}

// Respond processes one user message. Fragments are yielded as the reply is
// produced; only a context error ends the sequence with a non-nil error.
func (s *AssistantService) Respond(ctx context.Context, message string) iter.Seq2[string, error] {
	return func(yield func(string, error) bool) {
		s.turnMu.Lock()
		defer s.turnMu.Unlock()

		logger.Section("Assistant Turn")
		s.respond(ctx, message, yield)
	}
}

func (s *AssistantService) respond(ctx context.Context, message string, yield func(string, error) bool) {
	if strings.TrimSpace(message) == "" {
		yield(MsgEmptyInput, nil)
		return
	}
	s.appendTurn(domain.RoleUser, message)

	restaurants := s.reservations.Restaurants()
	catalog := restaurantIndex(restaurants)

	// Classify.
	intentPrompt, err := s.render(driven.PromptIntent, promptData{
		Restaurants: catalog,
		History:     s.historyJSON(intentHistoryTurns),
		Tools:       s.tools.Describe(),
	})
	if err != nil {
		logger.Error("Rendering intent prompt: %v", err)
		yield(MsgIntentFailure, nil)
		return
	}
	raw, err := s.llm.Generate(ctx, intentPrompt, classifyOptions)
	if err != nil {
		s.yieldTransportFailure(ctx, "intent", err, yield)
		return
	}
	parsed, err := ParseModelJSON(raw)
	if err != nil || parsed["error"] != nil {
		logger.Debug("Unparsable intent: %q", raw)
		yield(MsgIntentFailure, nil)
		return
	}
	intent := domain.IntentFromMap(parsed)
	logger.Debug("Intent %q tool %q needs_parameters=%v", intent.Label, intent.Tool, intent.NeedsParameters)

	// Extract.
	if intent.NeedsParameters {
		extracted, ok := s.extract(ctx, message, intent, catalog, yield)
		if !ok {
			return
		}
		for k, v := range extracted {
			intent.Parameters[k] = v
		}
	}
	params := intent.Parameters

	// Resolve a restaurant named in a booking request.
	if intent.Label == ToolMakeReservation {
		name, _ := params["restaurant_name"].(string)
		if strings.TrimSpace(name) != "" && params["restaurant_id"] == nil {
			restaurant, err := s.reservations.RestaurantByName(name)
			if err != nil {
				yield(unknownRestaurantReply(name, restaurants), nil)
				return
			}
			params["restaurant_id"] = restaurant.ID
			delete(params, "restaurant_name")
		}
	}

	toolResponse := msgNoToolResponse
	if intent.HasTool() {
		if intent.Tool == ToolMakeReservation {
			if missing := missingBookingFields(params); len(missing) > 0 {
				yield(missingFieldsReply(missing), nil)
				return
			}
		}

		if name, ok := params["restaurant_id"].(string); ok {
			id, found := s.resolveRestaurantID(name)
			if !found {
				yield(fmt.Sprintf("Sorry, I couldn't find a restaurant named '%s'", name), nil)
				return
			}
			params["restaurant_id"] = id
		}

		outcome, err := s.tools.Invoke(ctx, intent.Tool, params)
		switch {
		case ctx.Err() != nil:
			yield("", ctx.Err())
			return
		case err != nil:
			logger.Warn("Tool %s failed: %v", intent.Tool, err)
			toolResponse = "Error executing tool: " + err.Error()
		case !outcome.OK():
			s.explain(ctx, outcome.ErrorMessage(), yield)
			return
		default:
			toolResponse = outcome.String()
		}
	}

	// Narrate.
	narration, err := s.render(driven.PromptResponseGeneration, promptData{
		UserInput:    message,
		Intent:       intent.Label,
		ToolResponse: toolResponse,
		History:      s.historyJSON(narrationHistoryTurns),
	})
	if err != nil {
		logger.Error("Rendering narration prompt: %v", err)
		yield(MsgModelUnavailable, nil)
		return
	}
	if reply, ok := s.stream(ctx, narration, yield); ok {
		s.appendTurn(domain.RoleAssistant, reply)
	}
}

// extract asks the model for tool arguments. An unparsable answer yields no
// parameters; ok is false only when the turn has already been answered.
func (s *AssistantService) extract(
	ctx context.Context,
	message string,
	intent domain.Intent,
	catalog string,
	yield func(string, error) bool,
) (map[string]any, bool) {
	expected := ""
	if intent.HasTool() {
		expected, _ = s.tools.Schema(intent.Tool)
	}
	if expected == "" {
		expected = indentedJSON(intent.Parameters)
	}

	prompt, err := s.render(driven.PromptParameterExtraction, promptData{
		Restaurants: catalog,
		UserInput:   message,
		Intent:      intent.Label,
		Parameters:  expected,
	})
	if err != nil {
		logger.Error("Rendering extraction prompt: %v", err)
		return nil, true
	}
	raw, err := s.llm.Generate(ctx, prompt, classifyOptions)
	if err != nil {
		s.yieldTransportFailure(ctx, "parameter extraction", err, yield)
		return nil, false
	}
	extracted, err := ParseModelJSON(raw)
	if err != nil || extracted["error"] != nil {
		logger.Debug("Unparsable extraction, keeping intent parameters: %q", raw)
		return nil, true
	}
	return extracted, true
}

// explain narrates a rejected request in one non-streamed reply.
func (s *AssistantService) explain(ctx context.Context, errorMessage string, yield func(string, error) bool) {
	prompt, err := s.render(driven.PromptErrorExplanation, promptData{ErrorMessage: errorMessage})
	if err != nil {
		logger.Error("Rendering error prompt: %v", err)
		yield(MsgModelUnavailable, nil)
		return
	}
	text, err := s.llm.Generate(ctx, prompt, explainOptions)
	if err != nil {
		s.yieldTransportFailure(ctx, "error explanation", err, yield)
		return
	}
	s.appendTurn(domain.RoleAssistant, text)
	yield(text, nil)
}

// stream yields each narrated fragment and returns the full text. ok is
// false when the consumer stopped, the context ended or the stream failed.
func (s *AssistantService) stream(ctx context.Context, prompt string, yield func(string, error) bool) (string, bool) {
	completion, err := s.llm.Stream(ctx, prompt, narrateOptions)
	if err != nil {
		s.yieldTransportFailure(ctx, "narration", err, yield)
		return "", false
	}
	defer completion.Close()

	var reply strings.Builder
	for completion.Next() {
		fragment := completion.Current()
		if fragment == "" {
			continue
		}
		reply.WriteString(fragment)
		if !yield(fragment, nil) {
			logger.Debug("Consumer stopped after %d bytes", reply.Len())
			return "", false
		}
	}
	if err := completion.Err(); err != nil {
		if ctx.Err() != nil {
			yield("", ctx.Err())
			return "", false
		}
		logger.Error("Narration stream failed: %v", err)
		if reply.Len() == 0 {
			yield(MsgModelUnavailable, nil)
		}
		return "", false
	}
	if ctx.Err() != nil {
		yield("", ctx.Err())
		return "", false
	}
	return reply.String(), true
}

// Recommend finds restaurants matching criteria and streams a
// recommendation. It does not touch the conversation history.
func (s *AssistantService) Recommend(ctx context.Context, criteria domain.SearchCriteria) iter.Seq2[string, error] {
	return func(yield func(string, error) bool) {
		results, err := s.reservations.Find(ctx, criteria)
		if err != nil {
			if r, ok := domain.AsRejection(err); ok {
				yield(r.Message, nil)
				return
			}
			yield("", err)
			return
		}
		if len(results) == 0 {
			yield("Sorry, no restaurants match those preferences right now. Try another cuisine, location or time.", nil)
			return
		}

		prompt, err := s.render(driven.PromptRecommendation, promptData{
			Restaurants: recommendationList(results),
		})
		if err != nil {
			yield("", err)
			return
		}
		s.stream(ctx, prompt, yield)
	}
}

// render loads a prompt, preferring the store, and fills it in. A stored
// template that fails to render falls back to the embedded default.
func (s *AssistantService) render(name string, data promptData) (string, error) {
	if s.promptStore != nil {
		if text, err := s.promptStore.Load(name); err == nil {
			rendered, err := prompts.Render(name, text, data)
			if err == nil {
				return rendered, nil
			}
			logger.Warn("Custom prompt %s failed, using default: %v", name, err)
		}
	}
	text, err := prompts.Default(name)
	if err != nil {
		return "", err
	}
	return prompts.Render(name, text, data)
}

func (s *AssistantService) yieldTransportFailure(ctx context.Context, stage string, err error, yield func(string, error) bool) {
	if ctx.Err() != nil {
		yield("", ctx.Err())
		return
	}
	logger.Error("Model call for %s failed: %v", stage, err)
	yield(MsgModelUnavailable, nil)
}

// resolveRestaurantID reads a restaurant reference given as text: a
// numeric string is an id, anything else a name.
func (s *AssistantService) resolveRestaurantID(ref string) (int, bool) {
	if id, err := strconv.Atoi(strings.TrimSpace(ref)); err == nil {
		return id, true
	}
	restaurant, err := s.reservations.RestaurantByName(ref)
	if err != nil {
		return 0, false
	}
	return restaurant.ID, true
}

func (s *AssistantService) appendTurn(role domain.Role, content string) {
	s.historyMu.Lock()
	defer s.historyMu.Unlock()
	s.history = append(s.history, domain.ChatTurn{Role: role, Content: content})
}

// historyJSON renders the last n turns as indented JSON.
func (s *AssistantService) historyJSON(n int) string {
	s.historyMu.RLock()
	turns := s.history
	if len(turns) > n {
		turns = turns[len(turns)-n:]
	}
	turns = slices.Clone(turns)
	s.historyMu.RUnlock()

	if turns == nil {
		turns = []domain.ChatTurn{}
	}
	return indentedJSON(turns)
}

func indentedJSON(v any) string {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		return "{}"
	}
	return strings.TrimSuffix(buf.String(), "\n")
}

// restaurantIndex lists restaurants as "id: name (cuisine, location)".
func restaurantIndex(restaurants []domain.Restaurant) string {
	lines := make([]string, 0, len(restaurants))
	for _, r := range restaurants {
		lines = append(lines, fmt.Sprintf("%d: %s (%s, %s)", r.ID, r.Name, r.Cuisine, r.Location))
	}
	return strings.Join(lines, "\n")
}

func unknownRestaurantReply(name string, restaurants []domain.Restaurant) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Sorry, we couldn't find any restaurant named **%s** in our system.\n\n", name)
	b.WriteString("Here are some restaurants you can choose from:\n\n")
	for _, r := range restaurants {
		price := r.PriceRange
		if price == "" {
			price = "N/A"
		}
		fmt.Fprintf(&b, "- **%s** (%s, %s) — Capacity: %d, Rating: %s, Price: %s\n",
			r.Name, r.Cuisine, r.Location, r.Capacity, formatRating(r.Rating), price)
	}
	b.WriteString("\nPlease let me know which one you'd like to book.")
	return b.String()
}

func missingFieldsReply(missing []string) string {
	return "To complete your reservation, please provide - Restaurant Name, Your name, Party Size, Date, and Time. " +
		"Don't forget to give your - " + strings.Join(missing, ", ") +
		". Make sure the restaurant comes under our list of restaurants."
}

// missingBookingFields lists required booking fields that are absent, null,
// false, or blank or "0" once rendered as text.
func missingBookingFields(params map[string]any) []string {
	var missing []string
	for _, field := range requiredBookingFields {
		if isBlankValue(params[field]) {
			missing = append(missing, field)
		}
	}
	return missing
}

func isBlankValue(v any) bool {
	var text string
	switch x := v.(type) {
	case nil:
		return true
	case bool:
		return !x
	case string:
		text = x
	case float64:
		text = strconv.FormatFloat(x, 'f', -1, 64)
	case int:
		text = strconv.Itoa(x)
	default:
		text = fmt.Sprint(x)
	}
	text = strings.TrimSpace(text)
	return text == "" || text == "0"
}

func formatRating(r float64) string {
	return strconv.FormatFloat(r, 'f', -1, 64)
}

// recommendationList renders search results for the recommendation prompt.
func recommendationList(results []domain.RestaurantSummary) string {
	lines := make([]string, 0, len(results))
	for _, r := range results {
		lines = append(lines, fmt.Sprintf("- %s (%s) | Location: %s | Rating: %s | Price: %s | Capacity: %d | Amenities: %s",
			r.Name, r.Cuisine, r.Location, formatRating(r.Rating), r.PriceRange, r.Capacity, strings.Join(r.Amenities, ", ")))
	}
	return strings.Join(lines, "\n")
}
