package repository

import (
	"context"
	"sort"

	"ripple/internal/models"
	"ripple/internal/storage"
)

// MessageRepository defines persistence operations for direct messages.
type MessageRepository interface {
	GetAll(ctx context.Context) ([]models.Message, error)
	SaveAll(ctx context.Context, messages []models.Message) error
	Add(ctx context.Context, message *models.Message) error
	GetBetween(ctx context.Context, user, other string) ([]models.Message, error)
	MarkConversationRead(ctx context.Context, to, from string) error
}

type messageRepository struct {
	store *storage.Store
}

// NewMessageRepository returns a new MessageRepository implementation.
func NewMessageRepository(store *storage.Store) MessageRepository {
	return &messageRepository{store: store}
}

func (r *messageRepository) GetAll(ctx context.Context) ([]models.Message, error) {
	var messages []models.Message
	r.store.Get(storage.KeyMessages, &messages)
	if messages == nil {
		messages = []models.Message{}
	}
	return messages, nil
}

func (r *messageRepository) SaveAll(ctx context.Context, messages []models.Message) error {
	if !r.store.Set(storage.KeyMessages, messages) {
		return persistErr(storage.KeyMessages)
	}
	return nil
}

func (r *messageRepository) Add(ctx context.Context, message *models.Message) error {
	messages, err := r.GetAll(ctx)
	if err != nil {
		return err
	}
	messages = append(messages, *message)
	return r.SaveAll(ctx, messages)
}

// GetBetween returns both directions of the conversation between user and
// other, oldest first.
func (r *messageRepository) GetBetween(ctx context.Context, user, other string) ([]models.Message, error) {
	messages, err := r.GetAll(ctx)
	if err != nil {
		return nil, err
	}
	matched := []models.Message{}
	for _, m := range messages {
		if (m.From == user && m.To == other) || (m.From == other && m.To == user) {
			matched = append(matched, m)
		}
	}
	sort.Slice(matched, func(i, j int) bool {
		return matched[i].Timestamp.Before(matched[j].Timestamp)
	})
	return matched, nil
}

// MarkConversationRead flips every unread message from one sender to the
// recipient in a single rewrite. The collection is only written when
// something actually changed.
func (r *messageRepository) MarkConversationRead(ctx context.Context, to, from string) error {
	messages, err := r.GetAll(ctx)
	if err != nil {
		return err
	}
	updated := false
	for i := range messages {
		if messages[i].To == to && messages[i].From == from && !messages[i].Read {
			messages[i].Read = true
			updated = true
		}
	}
	if !updated {
		return nil
	}
	return r.SaveAll(ctx, messages)
}
