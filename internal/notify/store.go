package notify

import (
	"context"

	"gorm.io/gorm"

	"github.com/NovaCampusApps/principal-scheduler/internal/models"
)

// Store persists notifications and serves the per-user inbox.
type Store struct {
	db *gorm.DB
}

func New(db *gorm.DB) *Store {
	return &Store{db: db}
}

func (s *Store) Insert(recipientID uint, message string, link string) error {
	n := models.Notification{
		RecipientID: recipientID,
		Message:     message,
		Link:        link,
	}

	return s.db.Create(&n).Error
}

func (s *Store) ListForUser(ctx context.Context, userID uint) ([]models.Notification, error) {
	var out []models.Notification
	if err := s.db.WithContext(ctx).
		Where("recipient_id = ?", userID).
		Order("created_at DESC").
		Find(&out).Error; err != nil {
		return nil, err
	}

	return out, nil
}

func (s *Store) MarkAllRead(ctx context.Context, userID uint) error {
	return s.db.WithContext(ctx).
		Model(&models.Notification{}).
		Where("recipient_id = ? AND read = ?", userID, false).
		Update("read", true).Error
}
