package controllers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"serenely/internal/models/response_models"
	"serenely/internal/services"
	"serenely/pkg/utils"
)

type fakeTherapyService struct {
	services.TherapyServiceInterface

	reply   string
	err     error
	gotUser uuid.UUID
	gotMsg  string

	entry *response_models.EntryResponse
}

func (f *fakeTherapyService) SendMessage(ctx context.Context, userID uuid.UUID, message string) (string, error) {
	f.gotUser = userID
	f.gotMsg = message
	return f.reply, f.err
}

func (f *fakeTherapyService) GetEntry(ctx context.Context, userID uuid.UUID, entryID string) (*response_models.EntryResponse, error) {
	if f.entry == nil {
		return nil, utils.ErrEntryNotFound
	}
	return f.entry, nil
}

func newChatRouter(svc services.TherapyServiceInterface, userID uuid.UUID) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	ctrl := NewTherapyController(svc)
	auth := func(c *gin.Context) {
		c.Set("user_id", userID.String())
		c.Set("Role", "member")
	}
	r.POST("/therapy/chat", auth, ctrl.Chat)
	r.GET("/therapy/entries/:id", auth, ctrl.GetEntry)
	return r
}

func TestChat_ReturnsReply(t *testing.T) {
	userID := uuid.New()
	svc := &fakeTherapyService{reply: "I hear you."}
	r := newChatRouter(svc, userID)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/therapy/chat",
		strings.NewReader(`{"message":"I feel anxious today"}`))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, userID, svc.gotUser)
	assert.Equal(t, "I feel anxious today", svc.gotMsg)

	var resp utils.APIResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	data, ok := resp.Data.(map[string]interface{})
	require.True(t, ok)
	assert.Equal(t, "I hear you.", data["message"])
}

func TestChat_MissingMessage(t *testing.T) {
	r := newChatRouter(&fakeTherapyService{}, uuid.New())

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/therapy/chat", strings.NewReader(`{}`))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestChat_UpstreamErrorMapsToBadGateway(t *testing.T) {
	r := newChatRouter(&fakeTherapyService{err: utils.ErrUpstream}, uuid.New())

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/therapy/chat",
		strings.NewReader(`{"message":"hi"}`))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadGateway, w.Code)
}

func TestGetEntry_NotFoundMapsTo404(t *testing.T) {
	r := newChatRouter(&fakeTherapyService{}, uuid.New())

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/therapy/entries/"+uuid.New().String(), nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
}
