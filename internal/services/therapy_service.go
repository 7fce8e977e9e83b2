package services

import (
	"context"
	"log"
	"strings"

	"github.com/google/uuid"

	"serenely/internal/models/db_models"
	"serenely/internal/models/response_models"
	"serenely/internal/repositories"
	"serenely/pkg/ai"
	"serenely/pkg/utils"
)

// historyLimit bounds how many persisted messages go into the prompt.
const historyLimit = 10

// entryTitleLimit caps the journal entry title derived from the first
// message of the day.
const entryTitleLimit = 50

const systemPrompt = `You are a supportive mental health AI therapist. Your name is Serenely. Your approach is empathetic and based on evidence-based therapeutic techniques. Keep responses concise and thoughtful. Listen carefully and reflect back what you hear.`

type TherapyServiceInterface interface {
	SendMessage(ctx context.Context, userID uuid.UUID, message string) (string, error)
	ListEntries(ctx context.Context, userID uuid.UUID) ([]response_models.EntryResponse, error)
	GetEntry(ctx context.Context, userID uuid.UUID, entryID string) (*response_models.EntryResponse, error)
	ListTodayMessages(ctx context.Context, userID uuid.UUID) ([]response_models.MessageResponse, error)
}

type TherapyService struct {
	therapyRepo repositories.TherapyRepository
	aiClient    ai.CompletionClientInterface
}

func NewTherapyService(therapyRepo repositories.TherapyRepository, aiClient ai.CompletionClientInterface) TherapyServiceInterface {
	return &TherapyService{
		therapyRepo: therapyRepo,
		aiClient:    aiClient,
	}
}

// SendMessage runs one chat turn: assemble the prompt from recent history,
// call the completion service once, persist both turns atomically, then give
// the journal upsert a chance to open today's entry.
func (t *TherapyService) SendMessage(ctx context.Context, userID uuid.UUID, message string) (string, error) {
	if strings.TrimSpace(message) == "" {
		return "", utils.ErrMissingFields
	}

	history, err := t.therapyRepo.ListRecentMessages(ctx, userID, historyLimit)
	if err != nil {
		return "", utils.ErrDatabaseError
	}

	conversation := buildConversation(history, message)

	reply, err := t.aiClient.CreateChatCompletion(ctx, conversation)
	if err != nil {
		return "", err
	}

	userMsg := &db_models.TherapyMessage{UserID: userID, Role: ai.RoleUser, Content: message}
	assistantMsg := &db_models.TherapyMessage{UserID: userID, Role: ai.RoleAssistant, Content: reply}
	if err := t.therapyRepo.CreateMessagePair(ctx, userMsg, assistantMsg); err != nil {
		return "", utils.ErrDatabaseError
	}

	if err := t.upsertDailyEntry(ctx, userID, message); err != nil {
		// the chat turn itself succeeded; the entry can still appear on a
		// later turn today
		log.Printf("Error upserting journal entry for user %s: %v", userID, err)
	}

	return reply, nil
}

// buildConversation orders the prompt as system instruction, up to
// historyLimit prior turns oldest-first, then the new user message.
func buildConversation(history []db_models.TherapyMessage, message string) []ai.Message {
	conversation := make([]ai.Message, 0, len(history)+2)
	conversation = append(conversation, ai.Message{Role: ai.RoleSystem, Content: systemPrompt})
	for _, h := range history {
		conversation = append(conversation, ai.Message{Role: h.Role, Content: h.Content})
	}
	conversation = append(conversation, ai.Message{Role: ai.RoleUser, Content: message})
	return conversation
}

// upsertDailyEntry opens at most one journal entry per user per calendar day,
// titled with the start of the day's first message. The unique index on
// (user_id, entry_date) makes concurrent turns safe.
func (t *TherapyService) upsertDailyEntry(ctx context.Context, userID uuid.UUID, message string) error {
	entry := &db_models.TherapyEntry{
		UserID:    userID,
		Title:     utils.Truncate(message, entryTitleLimit),
		EntryDate: utils.Today(),
	}
	_, err := t.therapyRepo.CreateEntryIfAbsent(ctx, entry)
	return err
}

func (t *TherapyService) ListEntries(ctx context.Context, userID uuid.UUID) ([]response_models.EntryResponse, error) {
	entries, err := t.therapyRepo.ListEntries(ctx, userID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}

	out := make([]response_models.EntryResponse, 0, len(entries))
	for _, e := range entries {
		out = append(out, response_models.EntryResponse{
			ID:        e.ID.String(),
			Title:     e.Title,
			EntryDate: e.EntryDate,
			CreatedAt: e.CreatedAt,
		})
	}
	return out, nil
}

func (t *TherapyService) GetEntry(ctx context.Context, userID uuid.UUID, entryID string) (*response_models.EntryResponse, error) {
	entry, err := t.therapyRepo.FindEntryById(ctx, userID, entryID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if entry == nil {
		return nil, utils.ErrEntryNotFound
	}

	return &response_models.EntryResponse{
		ID:        entry.ID.String(),
		Title:     entry.Title,
		EntryDate: entry.EntryDate,
		CreatedAt: entry.CreatedAt,
	}, nil
}

func (t *TherapyService) ListTodayMessages(ctx context.Context, userID uuid.UUID) ([]response_models.MessageResponse, error) {
	messages, err := t.therapyRepo.ListMessagesSince(ctx, userID, utils.Today())
	if err != nil {
		return nil, utils.ErrDatabaseError
	}

	out := make([]response_models.MessageResponse, 0, len(messages))
	for _, m := range messages {
		out = append(out, response_models.MessageResponse{
			Role:      m.Role,
			Content:   m.Content,
			CreatedAt: m.CreatedAt,
		})
	}
	return out, nil
}
