package services

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"serenely/internal/models/db_models"
	"serenely/internal/repositories"
	"serenely/pkg/ai"
	"serenely/pkg/utils"
)

// -------- test fakes --------

type fakeTherapyRepo struct {
	repositories.TherapyRepository

	history    []db_models.TherapyMessage
	historyErr error

	pairs   [][2]*db_models.TherapyMessage
	pairErr error

	entries     []*db_models.TherapyEntry
	entryExists bool
	entryErr    error

	since []db_models.TherapyMessage
}

func (f *fakeTherapyRepo) ListRecentMessages(ctx context.Context, userID uuid.UUID, limit int) ([]db_models.TherapyMessage, error) {
	if f.historyErr != nil {
		return nil, f.historyErr
	}
	if len(f.history) > limit {
		return f.history[len(f.history)-limit:], nil
	}
	return f.history, nil
}

func (f *fakeTherapyRepo) CreateMessagePair(ctx context.Context, userMsg, assistantMsg *db_models.TherapyMessage) error {
	if f.pairErr != nil {
		return f.pairErr
	}
	f.pairs = append(f.pairs, [2]*db_models.TherapyMessage{userMsg, assistantMsg})
	return nil
}

func (f *fakeTherapyRepo) CreateEntryIfAbsent(ctx context.Context, entry *db_models.TherapyEntry) (bool, error) {
	if f.entryErr != nil {
		return false, f.entryErr
	}
	if f.entryExists {
		return false, nil
	}
	f.entryExists = true
	f.entries = append(f.entries, entry)
	return true, nil
}

func (f *fakeTherapyRepo) ListMessagesSince(ctx context.Context, userID uuid.UUID, since time.Time) ([]db_models.TherapyMessage, error) {
	return f.since, nil
}

type fakeCompletionClient struct {
	reply string
	err   error

	prompts [][]ai.Message
}

func (f *fakeCompletionClient) CreateChatCompletion(ctx context.Context, messages []ai.Message) (string, error) {
	f.prompts = append(f.prompts, messages)
	if f.err != nil {
		return "", f.err
	}
	return f.reply, nil
}

// -------- conversation assembly --------

func TestBuildConversation_NoHistory(t *testing.T) {
	conv := buildConversation(nil, "I feel anxious today")

	require.Len(t, conv, 2)
	assert.Equal(t, ai.RoleSystem, conv[0].Role)
	assert.Equal(t, ai.Message{Role: ai.RoleUser, Content: "I feel anxious today"}, conv[1])
}

func TestBuildConversation_WithHistory(t *testing.T) {
	history := []db_models.TherapyMessage{
		{Role: ai.RoleUser, Content: "hello"},
		{Role: ai.RoleAssistant, Content: "hi, how are you feeling?"},
		{Role: ai.RoleUser, Content: "tired"},
	}

	conv := buildConversation(history, "still tired")

	require.Len(t, conv, len(history)+2)
	assert.Equal(t, ai.RoleSystem, conv[0].Role)
	for i, h := range history {
		assert.Equal(t, h.Role, conv[i+1].Role)
		assert.Equal(t, h.Content, conv[i+1].Content)
	}
	assert.Equal(t, ai.Message{Role: ai.RoleUser, Content: "still tired"}, conv[len(conv)-1])
}

// -------- chat turn --------

func TestSendMessage_FirstTurnOfDay(t *testing.T) {
	repo := &fakeTherapyRepo{}
	client := &fakeCompletionClient{reply: "That sounds hard. Tell me more."}
	svc := NewTherapyService(repo, client)

	userID := uuid.New()
	reply, err := svc.SendMessage(context.Background(), userID, "I feel anxious today")

	require.NoError(t, err)
	assert.Equal(t, "That sounds hard. Tell me more.", reply)

	// exactly one prompt, system first and the new message last
	require.Len(t, client.prompts, 1)
	prompt := client.prompts[0]
	assert.Equal(t, ai.RoleSystem, prompt[0].Role)
	assert.Equal(t, "I feel anxious today", prompt[len(prompt)-1].Content)

	// one atomic pair: user turn then assistant turn
	require.Len(t, repo.pairs, 1)
	assert.Equal(t, ai.RoleUser, repo.pairs[0][0].Role)
	assert.Equal(t, "I feel anxious today", repo.pairs[0][0].Content)
	assert.Equal(t, ai.RoleAssistant, repo.pairs[0][1].Role)
	assert.Equal(t, "That sounds hard. Tell me more.", repo.pairs[0][1].Content)

	// one journal entry titled with today's first message
	require.Len(t, repo.entries, 1)
	entry := repo.entries[0]
	assert.Equal(t, userID, entry.UserID)
	assert.Equal(t, "I feel anxious today", entry.Title)
	assert.Equal(t, utils.Today(), entry.EntryDate)
}

func TestSendMessage_SecondTurnKeepsSingleEntry(t *testing.T) {
	repo := &fakeTherapyRepo{}
	client := &fakeCompletionClient{reply: "ok"}
	svc := NewTherapyService(repo, client)

	userID := uuid.New()
	_, err := svc.SendMessage(context.Background(), userID, "first")
	require.NoError(t, err)
	_, err = svc.SendMessage(context.Background(), userID, "second")
	require.NoError(t, err)

	assert.Len(t, repo.pairs, 2)
	require.Len(t, repo.entries, 1)
	assert.Equal(t, "first", repo.entries[0].Title)
}

func TestSendMessage_EntryTitleTruncated(t *testing.T) {
	repo := &fakeTherapyRepo{}
	client := &fakeCompletionClient{reply: "ok"}
	svc := NewTherapyService(repo, client)

	long := strings.Repeat("a", 80)
	_, err := svc.SendMessage(context.Background(), uuid.New(), long)

	require.NoError(t, err)
	require.Len(t, repo.entries, 1)
	assert.Equal(t, strings.Repeat("a", 50), repo.entries[0].Title)
}

func TestSendMessage_UpstreamFailurePersistsNothing(t *testing.T) {
	repo := &fakeTherapyRepo{}
	client := &fakeCompletionClient{err: utils.ErrUpstream}
	svc := NewTherapyService(repo, client)

	_, err := svc.SendMessage(context.Background(), uuid.New(), "hello")

	require.ErrorIs(t, err, utils.ErrUpstream)
	assert.Empty(t, repo.pairs)
	assert.Empty(t, repo.entries)
}

func TestSendMessage_EmptyMessageRejected(t *testing.T) {
	repo := &fakeTherapyRepo{}
	client := &fakeCompletionClient{reply: "ok"}
	svc := NewTherapyService(repo, client)

	_, err := svc.SendMessage(context.Background(), uuid.New(), "   ")

	require.ErrorIs(t, err, utils.ErrMissingFields)
	assert.Empty(t, client.prompts)
}

func TestSendMessage_PairWriteFailureSurfaces(t *testing.T) {
	repo := &fakeTherapyRepo{pairErr: errors.New("connection lost")}
	client := &fakeCompletionClient{reply: "ok"}
	svc := NewTherapyService(repo, client)

	_, err := svc.SendMessage(context.Background(), uuid.New(), "hello")

	require.ErrorIs(t, err, utils.ErrDatabaseError)
	assert.Empty(t, repo.entries)
}

func TestSendMessage_EntryFailureDoesNotFailTurn(t *testing.T) {
	repo := &fakeTherapyRepo{entryErr: errors.New("conflict storm")}
	client := &fakeCompletionClient{reply: "still here"}
	svc := NewTherapyService(repo, client)

	reply, err := svc.SendMessage(context.Background(), uuid.New(), "hello")

	require.NoError(t, err)
	assert.Equal(t, "still here", reply)
	assert.Len(t, repo.pairs, 1)
}

// -------- reads --------

func TestListEntries_MapsNewestFirst(t *testing.T) {
	userID := uuid.New()
	day := time.Date(2025, 4, 9, 0, 0, 0, 0, time.Local)
	repo := &fakeTherapyRepoWithEntries{
		list: []db_models.TherapyEntry{
			{BaseModel: db_models.BaseModel{ID: uuid.New(), CreatedAt: 200}, UserID: userID, Title: "newer", EntryDate: day},
			{BaseModel: db_models.BaseModel{ID: uuid.New(), CreatedAt: 100}, UserID: userID, Title: "older", EntryDate: day.AddDate(0, 0, -1)},
		},
	}
	svc := NewTherapyService(repo, &fakeCompletionClient{})

	entries, err := svc.ListEntries(context.Background(), userID)

	require.NoError(t, err)
	require.Len(t, entries, 2)
	assert.Equal(t, "newer", entries[0].Title)
	assert.Equal(t, "older", entries[1].Title)
}

func TestGetEntry_NotFound(t *testing.T) {
	svc := NewTherapyService(&fakeTherapyRepoWithEntries{}, &fakeCompletionClient{})

	_, err := svc.GetEntry(context.Background(), uuid.New(), uuid.New().String())

	require.ErrorIs(t, err, utils.ErrEntryNotFound)
}

type fakeTherapyRepoWithEntries struct {
	repositories.TherapyRepository
	list []db_models.TherapyEntry
}

func (f *fakeTherapyRepoWithEntries) ListEntries(ctx context.Context, userID uuid.UUID) ([]db_models.TherapyEntry, error) {
	return f.list, nil
}

func (f *fakeTherapyRepoWithEntries) FindEntryById(ctx context.Context, userID uuid.UUID, entryID string) (*db_models.TherapyEntry, error) {
	for i := range f.list {
		if f.list[i].ID.String() == entryID {
			return &f.list[i], nil
		}
	}
	return nil, nil
}
