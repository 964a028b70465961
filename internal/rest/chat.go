package rest

import (
	"context"
	"myCardVault/domain"
	"net/http"

	"github.com/AMFarhan21/fres"
	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
)

type ChatService interface {
	Resolve(ctx context.Context, message string, customerID uint) (domain.ChatReply, error)
}

type ChatHandler struct {
	chatService ChatService
	validate    *validator.Validate
}

func NewChatHandler(chatService ChatService) *ChatHandler {
	return &ChatHandler{
		chatService: chatService,
		validate:    validator.New(),
	}
}

type ChatRequest struct {
	Message string `json:"message" validate:"required,max=2000"`
}

func (h *ChatHandler) Chat(c echo.Context) error {
	userID, ok := c.Get("user_id").(uint)
	if !ok {
		return c.JSON(http.StatusUnauthorized, ResponseError{Message: "unauthorized"})
	}

	var req ChatRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
	}
	if err := h.validate.Struct(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
	}

	reply, err := h.chatService.Resolve(c.Request().Context(), req.Message, userID)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, ResponseError{Message: err.Error()})
	}

	return c.JSON(http.StatusOK, fres.Response.StatusOK(reply))
}
