package tokens

import (
	"context"
	"fmt"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/NovaCampusApps/principal-scheduler/internal/models"
)

// CounterAllocator sequences tokens through a row-locked counter table,
// for deployments without Redis. The increment runs in its own short
// transaction: the counter only ever moves forward, so a failed
// approval after allocation skips a number but can never duplicate one.
type CounterAllocator struct {
	db *gorm.DB
}

func NewCounterAllocator(db *gorm.DB) *CounterAllocator {
	return &CounterAllocator{db: db}
}

func (a *CounterAllocator) Next(ctx context.Context, day time.Time) (int, error) {
	key := day.Format("2006-01-02")

	var token int
	err := a.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {

		// Make sure the row exists; a conflict means another caller
		// created it first, which is fine.
		if err := tx.Clauses(clause.OnConflict{DoNothing: true}).
			Create(&models.TokenCounter{Day: key, Next: 0}).Error; err != nil {
			return err
		}

		var counter models.TokenCounter
		if err := tx.
			Clauses(clause.Locking{Strength: "UPDATE"}).
			Where("day = ?", key).
			First(&counter).Error; err != nil {
			return err
		}

		counter.Next++
		token = counter.Next

		return tx.Model(&models.TokenCounter{}).
			Where("day = ?", key).
			Update("next", counter.Next).Error
	})
	if err != nil {
		return 0, fmt.Errorf("tokens: counter %s: %w", key, err)
	}

	return token, nil
}

var _ Allocator = (*CounterAllocator)(nil)
