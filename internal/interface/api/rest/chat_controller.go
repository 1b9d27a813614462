package rest

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"portfolio-api/internal/application/ports"
	"portfolio-api/internal/application/services"
	"portfolio-api/internal/interface/api/rest/dto/chat"
	"portfolio-api/internal/interface/api/rest/validator"
)

type ChatController struct {
	chatService ports.ChatService
	logger      *zap.Logger
}

func NewChatController(
	r gin.IRouter,
	chatService ports.ChatService,
	logger *zap.Logger,
) *ChatController {
	cc := &ChatController{
		chatService: chatService,
		logger:      logger,
	}

	r.POST(RouteChat, cc.SendHandler)
	r.GET(RouteChatHistory, cc.HistoryHandler)

	return cc
}

func (cc *ChatController) SendHandler(c *gin.Context) {
	var req chat.Request
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid json"})
		return
	}

	if errs := validator.ValidateChat(req); errs != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid request body",
			"details": errs,
		})
		return
	}

	reply, err := cc.chatService.Send(
		c.Request.Context(),
		strings.TrimSpace(req.SessionID),
		strings.TrimSpace(req.Message),
	)
	if err != nil {
		if errors.Is(err, services.ErrChatUnavailable) {
			c.JSON(http.StatusServiceUnavailable, gin.H{"error": "chat is not available"})
			return
		}
		cc.logger.Error("Send() error", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to get a response"})
		return
	}

	c.JSON(http.StatusOK, chat.ToResponse(*reply))
}

func (cc *ChatController) HistoryHandler(c *gin.Context) {
	s, err := cc.chatService.History(c.Request.Context(), c.Param("session_id"))
	if err != nil {
		c.JSON(
			http.StatusInternalServerError,
			gin.H{"error": "failed to get chat history"},
		)
		cc.logger.Error("History() error", zap.Error(err))
		return
	}
	if s == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "session not found"})
		return
	}

	c.JSON(http.StatusOK, chat.ToResponseHistory(*s))
}
