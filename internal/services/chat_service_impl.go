package services

import (
	"context"
	"fmt"
	"strings"
	"time"

	apperrors "ouma-web/internal/errors"
	"ouma-web/internal/models"
	"ouma-web/internal/notify"
	"ouma-web/internal/repositories"

	"go.uber.org/zap"
)

// ===========================================================================
// Chat Service Implementation
// ===========================================================================

const notifyTimeout = 30 * time.Second

type chatServiceImpl struct {
	chatRepo repositories.ChatRepository
	notifier notify.Notifier
	logger   *zap.Logger
}

// NewChatService creates a ChatService. notifier may be nil.
func NewChatService(chatRepo repositories.ChatRepository, notifier notify.Notifier, logger *zap.Logger) ChatService {
	if notifier == nil {
		notifier = notify.Nop{}
	}
	return &chatServiceImpl{
		chatRepo: chatRepo,
		notifier: notifier,
		logger:   logger,
	}
}

func (s *chatServiceImpl) StartSession(ctx context.Context, in StartChatInput) (*models.ChatSession, error) {
	session := &models.ChatSession{
		Company:           strings.TrimSpace(in.Company),
		InterestedProduct: strings.TrimSpace(in.InterestedProduct),
		Phone:             strings.TrimSpace(in.Phone),
		Email:             strings.TrimSpace(in.Email),
	}
	if err := s.chatRepo.CreateSession(ctx, session); err != nil {
		s.logger.Error("create chat session failed", zap.Error(err))
		return nil, fmt.Errorf("create chat session: %w", err)
	}

	s.logger.Info("chat session started", zap.Uint("session_id", session.ID))
	s.notify(notify.Inquiry{Session: session, Source: "chat"})
	return session, nil
}

// SubmitContactForm the sender's name is stored as the company
func (s *chatServiceImpl) SubmitContactForm(ctx context.Context, in ContactFormInput) (*models.ChatSession, error) {
	session := &models.ChatSession{
		Company: strings.TrimSpace(in.Name),
		Phone:   strings.TrimSpace(in.Phone),
		Email:   strings.TrimSpace(in.Email),
	}
	if err := s.chatRepo.CreateSession(ctx, session); err != nil {
		s.logger.Error("create contact session failed", zap.Error(err))
		return nil, fmt.Errorf("create chat session: %w", err)
	}

	msg := &models.ChatMessage{SessionID: session.ID, Sender: models.SenderVisitor, Content: in.Message}
	if err := s.chatRepo.CreateMessage(ctx, msg); err != nil {
		s.logger.Error("create contact message failed", zap.Uint("session_id", session.ID), zap.Error(err))
		return nil, fmt.Errorf("create chat message: %w", err)
	}

	s.logger.Info("contact form submitted", zap.Uint("session_id", session.ID))
	s.notify(notify.Inquiry{Session: session, Message: in.Message, Source: "contact form"})
	return session, nil
}

func (s *chatServiceImpl) PostVisitorMessage(ctx context.Context, sessionID *uint, content string) (*models.ChatMessage, error) {
	if sessionID == nil {
		return nil, apperrors.ErrNoChatSession
	}
	if strings.TrimSpace(content) == "" {
		return nil, apperrors.New(apperrors.ErrInvalidInput, "message content is required")
	}

	msg := &models.ChatMessage{SessionID: *sessionID, Sender: models.SenderVisitor, Content: content}
	if err := s.chatRepo.CreateMessage(ctx, msg); err != nil {
		return nil, fmt.Errorf("create chat message: %w", err)
	}
	return msg, nil
}

func (s *chatServiceImpl) ListMessages(ctx context.Context, sessionID *uint) ([]models.ChatMessage, error) {
	if sessionID == nil {
		return []models.ChatMessage{}, nil
	}
	return s.chatRepo.ListMessages(ctx, *sessionID)
}

func (s *chatServiceImpl) ListSessions(ctx context.Context) ([]models.ChatSession, error) {
	return s.chatRepo.ListSessions(ctx)
}

func (s *chatServiceImpl) GetSession(ctx context.Context, id uint) (*ChatSessionDetail, error) {
	session, err := s.chatRepo.FindSession(ctx, id)
	if err != nil {
		return nil, apperrors.FromDB(err, "find chat session")
	}
	messages, err := s.chatRepo.ListMessages(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("list chat messages: %w", err)
	}
	return &ChatSessionDetail{Session: session, Messages: messages}, nil
}

func (s *chatServiceImpl) PostAdminMessage(ctx context.Context, sessionID uint, content string) error {
	if strings.TrimSpace(content) == "" {
		return nil
	}
	msg := &models.ChatMessage{SessionID: sessionID, Sender: models.SenderAdmin, Content: content}
	if err := s.chatRepo.CreateMessage(ctx, msg); err != nil {
		return fmt.Errorf("create admin message: %w", err)
	}
	return nil
}

// notify runs detached from the request; failures are logged only
func (s *chatServiceImpl) notify(in notify.Inquiry) {
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), notifyTimeout)
		defer cancel()
		if err := s.notifier.InquiryReceived(ctx, in); err != nil {
			s.logger.Warn("inquiry notification failed", zap.Uint("session_id", in.Session.ID), zap.Error(err))
		}
	}()
}
