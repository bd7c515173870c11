package controller

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github/itish2003/smartcity/models"
	"github/itish2003/smartcity/services"
)

// RequestIDKey is the gin context key holding the per-request ID.
const RequestIDKey = "requestID"

// AssistantController handles the JSON question endpoint. It depends on the
// AssistantService to talk to the model.
type AssistantController struct {
	assistant services.AssistantService
}

// NewAssistantController is a constructor function that creates a new AssistantController.
func NewAssistantController(assistant services.AssistantService) *AssistantController {
	return &AssistantController{assistant: assistant}
}

// Ask is the Gin handler for the POST /api/v1/ask endpoint.
func (c *AssistantController) Ask(ctx *gin.Context) {
	var req models.AskRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body: " + err.Error()})
		return
	}

	requestID := ctx.GetString(RequestIDKey)
	answer, err := c.assistant.Ask(ctx.Request.Context(), req.Query)
	if err != nil {
		// The caller only sees a generic message; the cause stays in the log.
		log.Printf("CONTROLLER: ask %s failed: %v", requestID, err)
		ctx.JSON(http.StatusBadGateway, gin.H{"error": "Failed to generate AI response"})
		return
	}

	ctx.JSON(http.StatusOK, models.AskResponse{
		Answer:    answer,
		RequestID: requestID,
	})
}
