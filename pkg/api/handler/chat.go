package handler

import (
	"net/http"

	"github.com/cadagent-org/cadagent/pkg/api/dto"
	"github.com/cadagent-org/cadagent/pkg/api/service"
	"github.com/gin-gonic/gin"
)

// ChatHandler handles chat and command execution requests.
type ChatHandler struct {
	svc *service.ChatService
}

// NewChatHandler creates a new ChatHandler.
func NewChatHandler(svc *service.ChatService) *ChatHandler {
	return &ChatHandler{svc: svc}
}

// Ask godoc
// @Summary      Ask the CAD assistant
// @Description  Send a prompt to the LLM and execute any modeling command in its response
// @Tags         chat
// @Accept       json
// @Produce      json
// @Param        request body dto.AskRequest true "Chat request"
// @Success      200 {object} dto.ChatResponse
// @Failure      400 {object} dto.ErrorResponse
// @Failure      502 {object} dto.ErrorResponse
// @Router       /api/v1/ask [post]
func (h *ChatHandler) Ask(c *gin.Context) {
	var req dto.AskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid request body"})
		return
	}

	result, err := h.svc.Ask(c.Request.Context(), req.Prompt)
	if err != nil {
		c.JSON(http.StatusBadGateway, dto.ErrorResponse{Error: err.Error()})
		return
	}

	c.JSON(http.StatusOK, toChatResponse(result))
}

// Execute godoc
// @Summary      Execute a captured response
// @Description  Parse a raw LLM response body and execute the command it carries
// @Tags         chat
// @Accept       json
// @Produce      json
// @Param        request body dto.ExecuteRequest true "Execute request"
// @Success      200 {object} dto.ChatResponse
// @Failure      400 {object} dto.ErrorResponse
// @Router       /api/v1/command/execute [post]
func (h *ChatHandler) Execute(c *gin.Context) {
	var req dto.ExecuteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid request body"})
		return
	}

	c.JSON(http.StatusOK, toChatResponse(h.svc.Execute(req.Response)))
}

func toChatResponse(result *service.ChatResult) dto.ChatResponse {
	resp := dto.ChatResponse{
		RequestID: result.RequestID,
		Reply:     result.Reply,
		Response:  result.Response,
	}
	if result.Result != nil {
		resp.Status = string(result.Result.Status)
	}
	if result.Command != nil {
		resp.Command = &dto.CommandDetail{
			Action: string(result.Command.Action),
			Type:   result.Command.Type,
		}
	}
	return resp
}
