package dto

import "time"

type SendMessageRequest struct {
	Content string `json:"content" validate:"required"`
}

type MessageResponse struct {
	ID          string    `json:"id"`
	SenderID    string    `json:"sender_id"`
	RecipientID string    `json:"recipient_id"`
	Content     string    `json:"content"`
	ParentID    *string   `json:"parent_id,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
}

// ConversationResponse is one entry of the grouped conversation view:
// the counterpart and the messages exchanged with them, oldest first.
type ConversationResponse struct {
	Partner  *UserResponse     `json:"partner"`
	Messages []MessageResponse `json:"messages"`
}

type ConversationListResponse struct {
	Conversations []ConversationResponse `json:"conversations"`
}

type ThreadResponse struct {
	Partner  *UserResponse     `json:"partner"`
	Messages []MessageResponse `json:"messages"`
}
