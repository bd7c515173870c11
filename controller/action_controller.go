package controller

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github/itish2003/smartcity/models"
	"github/itish2003/smartcity/services"
)

// ActionController exposes the UI action table over HTTP, so any front end
// can trigger the same handlers the built-in pages use.
type ActionController struct {
	actions services.ActionTable
}

// NewActionController is a constructor function that creates a new ActionController.
func NewActionController(actions services.ActionTable) *ActionController {
	return &ActionController{actions: actions}
}

// List is the Gin handler for GET /api/v1/actions.
func (c *ActionController) List(ctx *gin.Context) {
	ctx.JSON(http.StatusOK, gin.H{"actions": c.actions.Names()})
}

// Dispatch is the Gin handler for POST /api/v1/actions/:name. The body is
// optional for actions without input.
func (c *ActionController) Dispatch(ctx *gin.Context) {
	var req models.ActionRequest
	if ctx.Request.ContentLength != 0 {
		if err := ctx.ShouldBindJSON(&req); err != nil {
			ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body: " + err.Error()})
			return
		}
	}

	name := ctx.Param("name")
	result, err := c.actions.Dispatch(ctx.Request.Context(), name, req.Input)
	switch {
	case errors.Is(err, services.ErrUnknownAction):
		ctx.JSON(http.StatusNotFound, gin.H{"error": "Unknown action"})
		return
	case err != nil:
		log.Printf("CONTROLLER: action %s (%s) failed: %v", name, ctx.GetString(RequestIDKey), err)
		ctx.JSON(http.StatusBadGateway, gin.H{"error": "Action failed"})
		return
	}

	ctx.JSON(http.StatusOK, models.ActionResponse{Action: name, Result: result})
}
