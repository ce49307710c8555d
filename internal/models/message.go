package models

import "time"

// Message is a directed edge between two users. ParentID links a reply to
// the message it answers; a nil ParentID marks a top-level message.
type Message struct {
	BaseModel
	SenderID    string  `gorm:"not null;index"`
	RecipientID string  `gorm:"not null;index"`
	Content     string  `gorm:"type:text;not null"`
	ParentID    *string `gorm:"index"`

	Sender    User     `gorm:"foreignKey:SenderID"`
	Recipient User     `gorm:"foreignKey:RecipientID"`
	Parent    *Message `gorm:"foreignKey:ParentID"`
}

// CounterpartID returns the other participant of the message relative to
// userID. For a self-message both ends are the user's own ID.
func (m *Message) CounterpartID(userID string) string {
	if m.SenderID == userID {
		return m.RecipientID
	}
	return m.SenderID
}

// SentAt is the message timestamp used for ordering.
func (m *Message) SentAt() time.Time {
	return m.CreatedAt
}
