package service

import (
	"context"
	"sort"
	"strings"

	"ripple/internal/clock"
	"ripple/internal/models"
	"ripple/internal/repository"
)

// MessageService provides direct messaging and conversation grouping.
type MessageService struct {
	messages repository.MessageRepository
	users    repository.UserRepository
	ids      *clock.IDSource
	clock    clock.Clock
}

// Conversation is the view of one counterparty's message history relative to
// a given user. UnreadCount counts unread messages addressed to that user.
type Conversation struct {
	Username    string           `json:"username"`
	Messages    []models.Message `json:"messages"`
	LastMessage models.Message   `json:"lastMessage"`
	UnreadCount int              `json:"unreadCount"`
}

// NewMessageService returns a new MessageService.
func NewMessageService(messages repository.MessageRepository, users repository.UserRepository, ids *clock.IDSource, clk clock.Clock) *MessageService {
	return &MessageService{messages: messages, users: users, ids: ids, clock: clk}
}

// SendMessage appends an unread message from one user to another. The
// recipient must exist.
func (s *MessageService) SendMessage(ctx context.Context, from, to, content string) (*models.Message, error) {
	content = strings.TrimSpace(content)
	if content == "" {
		return nil, models.NewValidationError("Message text is required")
	}

	recipient, err := s.users.GetByUsername(ctx, to)
	if err != nil {
		return nil, err
	}
	if recipient == nil {
		return nil, models.NewNotFoundError("User", to)
	}

	message := &models.Message{
		ID:        s.ids.Next(),
		From:      from,
		To:        to,
		Content:   content,
		Read:      false,
		Timestamp: s.clock.Now(),
	}
	if err := s.messages.Add(ctx, message); err != nil {
		return nil, err
	}
	return message, nil
}

// GetConversations buckets the user's messages by counterparty and orders the
// result by last-message timestamp, most recent conversation first.
func (s *MessageService) GetConversations(ctx context.Context, username string) ([]Conversation, error) {
	messages, err := s.messages.GetAll(ctx)
	if err != nil {
		return nil, err
	}

	byOther := map[string]*Conversation{}
	var order []string
	for _, m := range messages {
		var other string
		switch username {
		case m.From:
			other = m.To
		case m.To:
			other = m.From
		default:
			continue
		}

		conv, ok := byOther[other]
		if !ok {
			conv = &Conversation{Username: other}
			byOther[other] = conv
			order = append(order, other)
		}
		conv.Messages = append(conv.Messages, m)
		if m.Timestamp.After(conv.LastMessage.Timestamp) {
			conv.LastMessage = m
		}
		if m.To == username && !m.Read {
			conv.UnreadCount++
		}
	}

	conversations := make([]Conversation, 0, len(order))
	for _, other := range order {
		conversations = append(conversations, *byOther[other])
	}
	sort.SliceStable(conversations, func(i, j int) bool {
		return conversations[i].LastMessage.Timestamp.After(conversations[j].LastMessage.Timestamp)
	})
	return conversations, nil
}

// GetMessagesWithUser returns the full two-way history with one counterparty,
// oldest first.
func (s *MessageService) GetMessagesWithUser(ctx context.Context, username, other string) ([]models.Message, error) {
	return s.messages.GetBetween(ctx, username, other)
}

// MarkMessagesAsRead flips every unread message sent to username by from.
// Called when the user opens that conversation.
func (s *MessageService) MarkMessagesAsRead(ctx context.Context, username, from string) error {
	return s.messages.MarkConversationRead(ctx, username, from)
}
