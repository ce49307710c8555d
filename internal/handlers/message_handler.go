package handlers

import (
	"net/http"
	"time"

	"artisanhub/internal/middleware"
	"artisanhub/internal/services"
	"artisanhub/internal/services/dto"
	"artisanhub/pkg/apperrors"

	"github.com/gin-gonic/gin"
)

type MessageHandler struct {
	*BaseHandler
	messageService services.MessageService
}

func NewMessageHandler(base *BaseHandler, messageService services.MessageService) *MessageHandler {
	return &MessageHandler{
		BaseHandler:    base,
		messageService: messageService,
	}
}

func (h *MessageHandler) RegisterRoutes(r *gin.RouterGroup) {
	messages := r.Group("/messages")
	messages.Use(middleware.AuthMiddleware())
	{
		// Both POST routes share the :id wildcard: a recipient ID on the
		// bare path, a message ID on /reply.
		messages.POST("/:id", h.Send)
		messages.POST("/:id/reply", h.Reply)
		messages.GET("/conversations", h.GetConversations)
		messages.GET("/conversations/:partnerId", h.GetThread)
		messages.GET("/inbox", h.GetInbox)
	}
}

func (h *MessageHandler) Send(c *gin.Context) {
	senderID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	var req dto.SendMessageRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	message, err := h.messageService.Send(senderID, c.Param("id"), &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, message)
}

func (h *MessageHandler) Reply(c *gin.Context) {
	senderID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	var req dto.SendMessageRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	message, err := h.messageService.Reply(senderID, c.Param("id"), &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, message)
}

func (h *MessageHandler) GetConversations(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	conversations, err := h.messageService.GetConversations(userID)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, conversations)
}

func (h *MessageHandler) GetThread(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	var after time.Time
	if raw := c.Query("after"); raw != "" {
		parsed, err := time.Parse(time.RFC3339, raw)
		if err != nil {
			h.HandleServiceError(c, apperrors.NewBadRequestError("Invalid 'after' timestamp, expected RFC3339"))
			return
		}
		after = parsed
	}

	thread, err := h.messageService.GetThread(userID, c.Param("partnerId"), after)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, thread)
}

func (h *MessageHandler) GetInbox(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	inbox, err := h.messageService.GetInbox(userID)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"messages": inbox})
}
