package services

import (
	"time"

	"artisanhub/internal/algorithms"
	"artisanhub/internal/models"
	"artisanhub/internal/repositories"
	"artisanhub/internal/services/dto"
	"artisanhub/pkg/apperrors"
)

type MessageService interface {
	Send(senderID, recipientID string, req *dto.SendMessageRequest) (*dto.MessageResponse, error)
	Reply(senderID, messageID string, req *dto.SendMessageRequest) (*dto.MessageResponse, error)
	GetConversations(userID string) (*dto.ConversationListResponse, error)
	GetThread(userID, partnerID string, after time.Time) (*dto.ThreadResponse, error)
	GetInbox(userID string) ([]dto.MessageResponse, error)
}

type MessageServiceImpl struct {
	messageRepo         repositories.MessageRepository
	userRepo            repositories.UserRepository
	notificationService NotificationService
}

func NewMessageService(
	messageRepo repositories.MessageRepository,
	userRepo repositories.UserRepository,
	notificationService NotificationService,
) MessageService {
	return &MessageServiceImpl{
		messageRepo:         messageRepo,
		userRepo:            userRepo,
		notificationService: notificationService,
	}
}

// Send delivers a direct top-level message. Self-sends are rejected here,
// at the send boundary.
func (s *MessageServiceImpl) Send(senderID, recipientID string, req *dto.SendMessageRequest) (*dto.MessageResponse, error) {
	if senderID == recipientID {
		return nil, apperrors.ErrInvalidOperation("messaging", "Cannot send a message to yourself")
	}

	if _, err := s.userRepo.FindByID(recipientID); err != nil {
		if apperrors.Is(err, repositories.ErrUserNotFound) {
			return nil, apperrors.NewNotFoundError("messaging", "Recipient not found")
		}
		return nil, apperrors.InternalError(err)
	}

	message := &models.Message{
		SenderID:    senderID,
		RecipientID: recipientID,
		Content:     req.Content,
	}
	if err := s.messageRepo.Create(message); err != nil {
		return nil, apperrors.InternalError(err)
	}

	s.notifyRecipient(message)

	return buildMessageResponse(message), nil
}

// Reply attaches a reply to an existing message. The reply's recipient is
// always the original message's sender, so direction reverses on every
// hop of a nested thread.
func (s *MessageServiceImpl) Reply(senderID, messageID string, req *dto.SendMessageRequest) (*dto.MessageResponse, error) {
	original, err := s.messageRepo.FindByID(messageID)
	if err != nil {
		if apperrors.Is(err, repositories.ErrMessageNotFound) {
			return nil, apperrors.NewNotFoundError("messaging", "Message not found")
		}
		return nil, apperrors.InternalError(err)
	}

	reply := &models.Message{
		SenderID:    senderID,
		RecipientID: original.SenderID,
		Content:     req.Content,
		ParentID:    &original.ID,
	}
	if err := s.messageRepo.Create(reply); err != nil {
		return nil, apperrors.InternalError(err)
	}

	s.notifyRecipient(reply)

	return buildMessageResponse(reply), nil
}

// GetConversations groups the user's full message history by counterpart
// and resolves each counterpart to a user record.
func (s *MessageServiceImpl) GetConversations(userID string) (*dto.ConversationListResponse, error) {
	messages, err := s.messageRepo.FindUserMessages(userID)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	groups := algorithms.GroupByCounterpart(userID, messages)

	participants, err := s.resolveParticipants(algorithms.CounterpartIDs(groups))
	if err != nil {
		return nil, err
	}

	conversations := make([]dto.ConversationResponse, 0, len(groups))
	for partnerID, groupMessages := range groups {
		conv := dto.ConversationResponse{
			Messages: buildMessageResponses(groupMessages),
		}
		if partner, ok := participants[partnerID]; ok {
			conv.Partner = BuildUserResponse(partner)
		}
		conversations = append(conversations, conv)
	}

	return &dto.ConversationListResponse{Conversations: conversations}, nil
}

func (s *MessageServiceImpl) GetThread(userID, partnerID string, after time.Time) (*dto.ThreadResponse, error) {
	partner, err := s.userRepo.FindByID(partnerID)
	if err != nil {
		if apperrors.Is(err, repositories.ErrUserNotFound) {
			return nil, apperrors.NewNotFoundError("messaging", "Partner not found")
		}
		return nil, apperrors.InternalError(err)
	}

	messages, err := s.messageRepo.FindConversation(userID, partnerID, after)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	return &dto.ThreadResponse{
		Partner:  BuildUserResponse(partner),
		Messages: buildMessageResponses(messages),
	}, nil
}

// GetInbox returns received top-level messages, oldest first.
func (s *MessageServiceImpl) GetInbox(userID string) ([]dto.MessageResponse, error) {
	messages, err := s.messageRepo.FindTopLevelReceived(userID)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	return buildMessageResponses(messages), nil
}

func (s *MessageServiceImpl) notifyRecipient(message *models.Message) {
	sender, err := s.userRepo.FindByID(message.SenderID)
	senderName := "Someone"
	if err == nil {
		senderName = sender.Name
	}
	s.notificationService.NotifyNewMessage(message.RecipientID, senderName, message.ID)
}

func (s *MessageServiceImpl) resolveParticipants(ids []string) (map[string]*models.User, error) {
	users, err := s.userRepo.FindByIDs(ids)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	participants := make(map[string]*models.User, len(users))
	for i := range users {
		participants[users[i].ID] = &users[i]
	}
	return participants, nil
}

func buildMessageResponse(m *models.Message) *dto.MessageResponse {
	return &dto.MessageResponse{
		ID:          m.ID,
		SenderID:    m.SenderID,
		RecipientID: m.RecipientID,
		Content:     m.Content,
		ParentID:    m.ParentID,
		CreatedAt:   m.CreatedAt,
	}
}

func buildMessageResponses(messages []models.Message) []dto.MessageResponse {
	responses := make([]dto.MessageResponse, 0, len(messages))
	for i := range messages {
		responses = append(responses, *buildMessageResponse(&messages[i]))
	}
	return responses
}
