package repositories

import (
	"errors"
	"time"

	"artisanhub/internal/models"

	"gorm.io/gorm"
)

var ErrMessageNotFound = errors.New("message not found")

type MessageRepository interface {
	Create(message *models.Message) error
	FindByID(id string) (*models.Message, error)

	// FindUserMessages returns every message the user sent or received,
	// oldest first.
	FindUserMessages(userID string) ([]models.Message, error)
	// FindConversation returns the messages exchanged between two users,
	// oldest first. A non-zero after bound restricts to newer messages,
	// which backs the client's polling fetch.
	FindConversation(userID, partnerID string, after time.Time) ([]models.Message, error)
	// FindTopLevelReceived returns received messages with no parent,
	// oldest first.
	FindTopLevelReceived(userID string) ([]models.Message, error)
}

type MessageRepositoryImpl struct {
	db *gorm.DB
}

func NewMessageRepository(db *gorm.DB) MessageRepository {
	return &MessageRepositoryImpl{db: db}
}

func (r *MessageRepositoryImpl) Create(message *models.Message) error {
	return r.db.Create(message).Error
}

func (r *MessageRepositoryImpl) FindByID(id string) (*models.Message, error) {
	var message models.Message
	err := r.db.First(&message, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrMessageNotFound
		}
		return nil, err
	}
	return &message, nil
}

func (r *MessageRepositoryImpl) FindUserMessages(userID string) ([]models.Message, error) {
	var messages []models.Message
	err := r.db.
		Where("sender_id = ? OR recipient_id = ?", userID, userID).
		Order("created_at ASC").
		Find(&messages).Error
	return messages, err
}

func (r *MessageRepositoryImpl) FindConversation(userID, partnerID string, after time.Time) ([]models.Message, error) {
	query := r.db.Where(
		"(sender_id = ? AND recipient_id = ?) OR (sender_id = ? AND recipient_id = ?)",
		userID, partnerID, partnerID, userID,
	)
	if !after.IsZero() {
		query = query.Where("created_at > ?", after)
	}

	var messages []models.Message
	err := query.Order("created_at ASC").Find(&messages).Error
	return messages, err
}

func (r *MessageRepositoryImpl) FindTopLevelReceived(userID string) ([]models.Message, error) {
	var messages []models.Message
	err := r.db.
		Where("recipient_id = ? AND parent_id IS NULL", userID).
		Order("created_at ASC").
		Find(&messages).Error
	return messages, err
}
