package services

import (
	"context"
	"errors"
	"testing"
	"time"

	apperrors "ouma-web/internal/errors"
	"ouma-web/internal/models"
	"ouma-web/internal/notify"
	"ouma-web/internal/repositories"
	"ouma-web/internal/testutil"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type mockNotifier struct {
	mock.Mock
	done chan notify.Inquiry
}

func (m *mockNotifier) InquiryReceived(ctx context.Context, in notify.Inquiry) error {
	args := m.Called(ctx, in)
	m.done <- in
	return args.Error(0)
}

func newChatService(t *testing.T, notifier notify.Notifier) (ChatService, *gorm.DB) {
	t.Helper()
	db := testutil.NewDB(t)
	return NewChatService(repositories.NewChatRepository(db), notifier, zap.NewNop()), db
}

func TestChatService_StartSession(t *testing.T) {
	ctx := context.Background()
	n := &mockNotifier{done: make(chan notify.Inquiry, 1)}
	n.On("InquiryReceived", mock.Anything, mock.Anything).Return(errors.New("smtp down"))
	svc, _ := newChatService(t, n)

	session, err := svc.StartSession(ctx, StartChatInput{Company: " ACME ", InterestedProduct: "X-200"})
	require.NoError(t, err)
	assert.Equal(t, "ACME", session.Company)
	assert.Equal(t, models.ChatStatusOpen, session.Status)
	assert.False(t, session.StartedAt.IsZero())

	select {
	case in := <-n.done:
		assert.Equal(t, session.ID, in.Session.ID)
		assert.Equal(t, "chat", in.Source)
	case <-time.After(time.Second):
		t.Fatal("notification not sent")
	}
}

func TestChatService_SubmitContactForm(t *testing.T) {
	ctx := context.Background()
	svc, _ := newChatService(t, nil)

	session, err := svc.SubmitContactForm(ctx, ContactFormInput{
		Name:    "Li Lei",
		Email:   "li@example.com",
		Message: "Please send a quote",
	})
	require.NoError(t, err)
	assert.Equal(t, "Li Lei", session.Company)

	messages, err := svc.ListMessages(ctx, &session.ID)
	require.NoError(t, err)
	require.Len(t, messages, 1)
	assert.Equal(t, models.SenderVisitor, messages[0].Sender)
	assert.Equal(t, "Please send a quote", messages[0].Content)
}

func TestChatService_PostVisitorMessage_Rejects(t *testing.T) {
	ctx := context.Background()
	svc, db := newChatService(t, nil)

	_, err := svc.PostVisitorMessage(ctx, nil, "hello")
	assert.ErrorIs(t, err, apperrors.ErrNoChatSession)

	session, err := svc.StartSession(ctx, StartChatInput{})
	require.NoError(t, err)

	_, err = svc.PostVisitorMessage(ctx, &session.ID, "   ")
	assert.True(t, apperrors.Is(err, apperrors.ErrInvalidInput))

	var count int64
	require.NoError(t, db.Model(&models.ChatMessage{}).Count(&count).Error)
	assert.Zero(t, count)
}

func TestChatService_ConversationOrder(t *testing.T) {
	ctx := context.Background()
	svc, _ := newChatService(t, nil)

	session, err := svc.StartSession(ctx, StartChatInput{Company: "ACME"})
	require.NoError(t, err)

	_, err = svc.PostVisitorMessage(ctx, &session.ID, "first")
	require.NoError(t, err)
	require.NoError(t, svc.PostAdminMessage(ctx, session.ID, "reply"))
	require.NoError(t, svc.PostAdminMessage(ctx, session.ID, "  "))
	_, err = svc.PostVisitorMessage(ctx, &session.ID, "third")
	require.NoError(t, err)

	detail, err := svc.GetSession(ctx, session.ID)
	require.NoError(t, err)
	require.Len(t, detail.Messages, 3)
	assert.Equal(t, "first", detail.Messages[0].Content)
	assert.Equal(t, models.SenderAdmin, detail.Messages[1].Sender)
	assert.Equal(t, "third", detail.Messages[2].Content)
}

func TestChatService_ListMessagesWithoutSession(t *testing.T) {
	svc, _ := newChatService(t, nil)

	messages, err := svc.ListMessages(context.Background(), nil)
	require.NoError(t, err)
	assert.NotNil(t, messages)
	assert.Empty(t, messages)
}

func TestChatService_ListSessionsNewestFirst(t *testing.T) {
	ctx := context.Background()
	svc, _ := newChatService(t, nil)

	first, err := svc.StartSession(ctx, StartChatInput{Company: "A"})
	require.NoError(t, err)
	second, err := svc.StartSession(ctx, StartChatInput{Company: "B"})
	require.NoError(t, err)

	sessions, err := svc.ListSessions(ctx)
	require.NoError(t, err)
	require.Len(t, sessions, 2)
	assert.Equal(t, second.ID, sessions[0].ID)
	assert.Equal(t, first.ID, sessions[1].ID)

	_, err = svc.GetSession(ctx, 999)
	assert.True(t, apperrors.Is(err, apperrors.ErrNotFound))
}
