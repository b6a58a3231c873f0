// Package archive implements export and import of the full store contents
// plus on-demand storage statistics.
package archive

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"ripple/internal/clock"
	"ripple/internal/models"
	"ripple/internal/storage"
)

// Document is the export format: every collection plus the export instant.
type Document struct {
	Users         []models.User         `json:"users"`
	Posts         []models.Post         `json:"posts"`
	Comments      []models.Comment      `json:"comments"`
	Messages      []models.Message      `json:"messages"`
	Notifications []models.Notification `json:"notifications"`
	ExportDate    time.Time             `json:"exportDate"`
}

// Stats summarizes the store contents.
type Stats struct {
	Users         int    `json:"users"`
	Posts         int    `json:"posts"`
	Comments      int    `json:"comments"`
	Messages      int    `json:"messages"`
	Notifications int    `json:"notifications"`
	TotalSize     string `json:"totalSize"`
}

// Service reads and writes archives against a store.
type Service struct {
	store *storage.Store
	clock clock.Clock
}

// NewService returns a new archive Service.
func NewService(store *storage.Store, clk clock.Clock) *Service {
	return &Service{store: store, clock: clk}
}

// Export serializes every collection into one indented JSON document.
// Missing collections export as empty arrays.
func (s *Service) Export(ctx context.Context) ([]byte, error) {
	doc := Document{
		Users:         []models.User{},
		Posts:         []models.Post{},
		Comments:      []models.Comment{},
		Messages:      []models.Message{},
		Notifications: []models.Notification{},
		ExportDate:    s.clock.Now(),
	}
	s.store.Get(storage.KeyUsers, &doc.Users)
	s.store.Get(storage.KeyPosts, &doc.Posts)
	s.store.Get(storage.KeyComments, &doc.Comments)
	s.store.Get(storage.KeyMessages, &doc.Messages)
	s.store.Get(storage.KeyNotifications, &doc.Notifications)

	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return nil, models.NewInternalError(err)
	}
	return data, nil
}

// Import overwrites each collection that appears in the document and leaves
// absent collections untouched. Cross-entity references are not validated;
// the document is trusted the way an exported one would be.
func (s *Service) Import(ctx context.Context, data []byte) error {
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(data, &fields); err != nil {
		return models.NewValidationError("Invalid archive document")
	}

	if err := importCollection[models.User](s.store, fields, storage.KeyUsers); err != nil {
		return err
	}
	if err := importCollection[models.Post](s.store, fields, storage.KeyPosts); err != nil {
		return err
	}
	if err := importCollection[models.Comment](s.store, fields, storage.KeyComments); err != nil {
		return err
	}
	if err := importCollection[models.Message](s.store, fields, storage.KeyMessages); err != nil {
		return err
	}
	if err := importCollection[models.Notification](s.store, fields, storage.KeyNotifications); err != nil {
		return err
	}
	return nil
}

func importCollection[T any](store *storage.Store, fields map[string]json.RawMessage, key string) error {
	raw, ok := fields[key]
	if !ok {
		return nil
	}
	var items []T
	if err := json.Unmarshal(raw, &items); err != nil {
		return models.NewValidationError(fmt.Sprintf("Invalid %q collection in archive", key))
	}
	if items == nil {
		items = []T{}
	}
	if !store.Set(key, items) {
		return models.NewInternalError(fmt.Errorf("persist collection %q", key))
	}
	return nil
}

// Statistics recomputes collection counts and the persisted size.
func (s *Service) Statistics(ctx context.Context) (*Stats, error) {
	doc := Document{}
	s.store.Get(storage.KeyUsers, &doc.Users)
	s.store.Get(storage.KeyPosts, &doc.Posts)
	s.store.Get(storage.KeyComments, &doc.Comments)
	s.store.Get(storage.KeyMessages, &doc.Messages)
	s.store.Get(storage.KeyNotifications, &doc.Notifications)

	return &Stats{
		Users:         len(doc.Users),
		Posts:         len(doc.Posts),
		Comments:      len(doc.Comments),
		Messages:      len(doc.Messages),
		Notifications: len(doc.Notifications),
		TotalSize:     formatSize(s.store.Size()),
	}, nil
}

// formatSize renders a byte count as KB, or MB past 1024 KB.
func formatSize(bytes int64) string {
	kb := float64(bytes) / 1024
	if kb > 1024 {
		return fmt.Sprintf("%.2f MB", kb/1024)
	}
	return fmt.Sprintf("%.2f KB", kb)
}
