package services

import (
	"context"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/google/generative-ai-go/genai"
	"github.com/google/uuid"
	"google.golang.org/api/option"

	"campus-backend/internal/models"
	"campus-backend/internal/store"
)

const assistantPrompt = `You are a helpful campus assistant bot for a university management platform.
You can help with:
1. Course information and schedules
2. Campus navigation and facilities
3. Academic support and FAQ
4. Event information
5. Study group recommendations
6. General campus life questions

Provide helpful, accurate, and friendly responses. Keep responses concise but informative.`

// Assistant answers campus questions. With a Gemini key configured it
// forwards the message to the model; without one, or whenever the model
// call fails, it answers from a deterministic keyword fallback.
type Assistant struct {
	client *genai.Client
	model  *genai.GenerativeModel
	store  store.Store
}

// NewAssistant builds the adapter. An empty apiKey is not an error: the
// assistant then runs on fallback responses only.
func NewAssistant(apiKey string, st store.Store) (*Assistant, error) {
	a := &Assistant{store: st}
	if apiKey == "" {
		return a, nil
	}

	client, err := genai.NewClient(context.Background(), option.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("failed to create Gemini client: %w", err)
	}

	model := client.GenerativeModel("gemini-2.5-pro")
	model.SetTemperature(0.3)

	a.client = client
	a.model = model
	return a, nil
}

func (a *Assistant) Close() {
	if a.client != nil {
		a.client.Close()
	}
}

// Configured reports whether an external model is wired in.
func (a *Assistant) Configured() bool { return a.model != nil }

// Chat produces a reply for the message. A missing session id gets a
// fresh one. Exchanges answered by the external model are persisted when
// the store is durable; persistence is best-effort and never fails the
// request.
func (a *Assistant) Chat(ctx context.Context, user *models.User, message, sessionID string) models.ChatResponse {
	if sessionID == "" {
		sessionID = uuid.NewString()
	}

	if a.model == nil {
		return models.ChatResponse{Response: fallbackResponse(message), SessionID: sessionID}
	}

	prompt := assistantPrompt + "\n\nStudent message: " + message
	resp, err := a.model.GenerateContent(ctx, genai.Text(prompt))
	if err != nil {
		log.Printf("assistant: model call failed, using fallback: %v", err)
		return models.ChatResponse{Response: fallbackResponse(message), SessionID: sessionID}
	}

	reply := extractText(resp)
	if reply == "" {
		log.Printf("assistant: empty model response, using fallback")
		return models.ChatResponse{Response: fallbackResponse(message), SessionID: sessionID}
	}

	if a.store.Durable() {
		record := &models.ChatMessage{
			ID:        uuid.NewString(),
			UserID:    user.ID,
			SessionID: sessionID,
			Message:   message,
			Response:  reply,
			Timestamp: time.Now().UTC(),
		}
		if err := a.store.InsertChatMessage(ctx, record); err != nil {
			log.Printf("assistant: failed to persist exchange: %v", err)
		}
	}

	return models.ChatResponse{Response: reply, SessionID: sessionID}
}

// fallbackResponse is the rule-based responder used without a model.
func fallbackResponse(message string) string {
	m := strings.ToLower(strings.TrimSpace(message))

	switch m {
	case "hi", "hello", "hey", "hlo":
		return "Hello! I'm your campus assistant. How can I help you today? I can assist with course information, campus navigation, events, study groups, and more!"
	}

	switch {
	case strings.Contains(m, "course"):
		return "I can help you with course information! You can view all available courses in the Courses section. Would you like to know about a specific course?"
	case strings.Contains(m, "event"):
		return "You can find upcoming campus events in the Events section. Would you like to know about any specific event?"
	case strings.Contains(m, "attendance"):
		return "You can mark your attendance in the Attendance section. Attendance can be marked using QR codes, facial recognition, or geolocation."
	case strings.Contains(m, "study group"), strings.Contains(m, "study"):
		return "Study groups are a great way to collaborate! You can join or create study groups in the Study Groups section."
	}

	return fmt.Sprintf("Thanks for your message: '%s'. I'm a campus assistant bot. In development mode, I provide basic responses. For full AI capabilities, please configure the GEMINI_API_KEY. How else can I help you with campus life?", message)
}

func extractText(resp *genai.GenerateContentResponse) string {
	var sb strings.Builder
	for _, cand := range resp.Candidates {
		if cand.Content == nil {
			continue
		}
		for _, part := range cand.Content.Parts {
			if t, ok := part.(genai.Text); ok {
				sb.WriteString(string(t))
			}
		}
	}
	return strings.TrimSpace(sb.String())
}
