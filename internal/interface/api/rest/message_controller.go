package rest

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"portfolio-api/internal/application/ports"
	"portfolio-api/internal/interface/api/rest/dto/message"
	"portfolio-api/internal/interface/api/rest/validator"
)

type MessageController struct {
	messageService ports.MessageService
	logger         *zap.Logger
}

func NewMessageController(
	r gin.IRouter,
	admin gin.IRouter,
	messageService ports.MessageService,
	logger *zap.Logger,
) *MessageController {
	mc := &MessageController{
		messageService: messageService,
		logger:         logger,
	}

	r.POST(RouteMessages, mc.CreateMessageHandler)
	admin.GET(RouteMessages, mc.GetMessagesHandler)
	admin.PATCH(RouteMessagesRead, mc.MarkReadHandler)

	return mc
}

func (mc *MessageController) CreateMessageHandler(c *gin.Context) {
	var req message.Request
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid json"})
		return
	}

	if errs := validator.ValidateMessage(req); errs != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid request body",
			"details": errs,
		})
		return
	}

	m, err := mc.messageService.CreateMessage(c.Request.Context(), message.ToDomainMessage(req))
	if err != nil {
		c.JSON(
			http.StatusInternalServerError,
			gin.H{"error": "failed to send a message"},
		)
		mc.logger.Error("CreateMessage() error", zap.Error(err))
		return
	}

	c.JSON(http.StatusCreated, message.ToResponseMessage(*m))
}

func (mc *MessageController) GetMessagesHandler(c *gin.Context) {
	page, err := validator.ValidatePage(c.Query("page"))
	if err != nil {
		c.JSON(
			http.StatusBadRequest,
			gin.H{"error": err.Error()},
		)
		return
	}

	ms, err := mc.messageService.FindMessages(c.Request.Context(), page)
	if err != nil {
		c.JSON(
			http.StatusInternalServerError,
			gin.H{"error": "failed to get messages"},
		)
		mc.logger.Error("FindMessages() error", zap.Error(err))
		return
	}

	c.JSON(http.StatusOK, message.ToResponseMessages(ms))
}

func (mc *MessageController) MarkReadHandler(c *gin.Context) {
	var req message.MarkReadRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid json"})
		return
	}

	if errs := validator.ValidateMarkRead(req); errs != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid request body",
			"details": errs,
		})
		return
	}

	n, err := mc.messageService.MarkRead(c.Request.Context(), message.ToDomainIDs(req.IDs), *req.IsRead)
	if err != nil {
		c.JSON(
			http.StatusInternalServerError,
			gin.H{"error": "failed to update messages"},
		)
		mc.logger.Error("MarkRead() error", zap.Error(err))
		return
	}

	c.JSON(http.StatusOK, message.MarkReadResponse{Updated: n})
}
