package handler

import (
	"net/http"

	"careconnect-api/internal/services"
	"careconnect-api/internal/transport/httpdto"
	"careconnect-api/pkg/logger"

	"github.com/gin-gonic/gin"
)

// ChatHandler proxies a single message to the completion API.
type ChatHandler struct {
	service *services.ChatService
	logger  *logger.Logger
}

// NewChatHandler creates a chat handler.
func NewChatHandler(service *services.ChatService, l *logger.Logger) *ChatHandler {
	return &ChatHandler{service: service, logger: l}
}

// Chat handles POST /chat.
func (h *ChatHandler) Chat(c *gin.Context) {
	var req httpdto.ChatRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, httpdto.ChatErrorResponse{Error: "invalid request body"})
		return
	}

	botMessage, err := h.service.Reply(c.Request.Context(), req.Message)
	if err != nil {
		if h.logger != nil {
			h.logger.Errorf("chat completion failed: %s", err)
		}
		c.JSON(http.StatusInternalServerError, httpdto.ChatErrorResponse{Error: "Something went wrong with OpenAI API."})
		return
	}

	c.JSON(http.StatusOK, httpdto.ChatResponse{BotMessage: botMessage})
}
