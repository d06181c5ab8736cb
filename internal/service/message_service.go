package service

import (
	"context"
	"strings"

	"github.com/Ladynads/creaverse/internal/models"
	"github.com/Ladynads/creaverse/internal/repository"
)

// MessageService owns direct messaging. There is no conversation entity;
// threads are resolved from the message rows by correspondent.
type MessageService struct {
	messageRepo repository.MessageRepository
	userRepo    repository.UserRepository
}

type SendMessageInput struct {
	SenderID   uint
	ReceiverID uint
	Content    string
}

// NewMessageService returns a new MessageService.
func NewMessageService(messageRepo repository.MessageRepository, userRepo repository.UserRepository) *MessageService {
	return &MessageService{messageRepo: messageRepo, userRepo: userRepo}
}

// Send delivers a direct message. Messaging yourself is rejected.
func (s *MessageService) Send(ctx context.Context, in SendMessageInput) (*models.Message, error) {
	if in.SenderID == in.ReceiverID {
		return nil, models.NewValidationError("You cannot message yourself")
	}
	if strings.TrimSpace(in.Content) == "" {
		return nil, models.NewValidationError("Message content is required")
	}
	if _, err := s.userRepo.GetByID(ctx, in.ReceiverID); err != nil {
		return nil, err
	}

	message := &models.Message{
		SenderID:   in.SenderID,
		ReceiverID: in.ReceiverID,
		Content:    in.Content,
	}
	if err := s.messageRepo.Create(ctx, message); err != nil {
		return nil, err
	}
	return message, nil
}

// Thread returns the full exchange between the viewer and the other user,
// oldest first. Opening the thread marks the other side's messages read.
func (s *MessageService) Thread(ctx context.Context, viewerID, otherID uint) ([]models.Message, error) {
	messages, err := s.messageRepo.ListBetween(ctx, viewerID, otherID)
	if err != nil {
		return nil, err
	}
	if err := s.messageRepo.MarkThreadRead(ctx, viewerID, otherID); err != nil {
		return nil, err
	}
	return messages, nil
}

// Conversations summarizes the viewer's inbox: one entry per correspondent
// with the latest message and the unread count, most recent exchange first.
func (s *MessageService) Conversations(ctx context.Context, viewerID uint) ([]models.Conversation, error) {
	messages, err := s.messageRepo.ListInvolving(ctx, viewerID)
	if err != nil {
		return nil, err
	}

	// Messages arrive newest first, so the first one seen per
	// correspondent is the thread's latest.
	index := make(map[uint]int)
	var conversations []models.Conversation
	for _, m := range messages {
		correspondent := m.Sender
		correspondentID := m.SenderID
		if m.SenderID == viewerID {
			correspondent = m.Receiver
			correspondentID = m.ReceiverID
		}

		i, ok := index[correspondentID]
		if !ok {
			i = len(conversations)
			index[correspondentID] = i
			conversations = append(conversations, models.Conversation{
				Correspondent: correspondent,
				LastMessage:   m,
			})
		}
		if m.ReceiverID == viewerID && !m.IsRead {
			conversations[i].UnreadCount++
		}
	}
	return conversations, nil
}

// UnreadCount returns how many messages to the viewer are still unread,
// across all threads.
func (s *MessageService) UnreadCount(ctx context.Context, viewerID uint) (int64, error) {
	return s.messageRepo.CountUnread(ctx, viewerID)
}
