package controller

import (
	"bytes"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github/itish2003/smartcity/services"
)

// DashboardController serves the fixed charts as JSON and as chart pages.
type DashboardController struct {
	dashboard services.DashboardService
}

// NewDashboardController is a constructor function that creates a new DashboardController.
func NewDashboardController(dashboard services.DashboardService) *DashboardController {
	return &DashboardController{dashboard: dashboard}
}

// GetChart is the Gin handler for GET /api/v1/charts/:name.
func (c *DashboardController) GetChart(ctx *gin.Context) {
	fig, err := c.dashboard.Chart(ctx.Param("name"))
	if err != nil {
		ctx.JSON(http.StatusNotFound, gin.H{"error": "Unknown chart"})
		return
	}
	ctx.JSON(http.StatusOK, fig)
}

// RenderChart is the Gin handler for GET /dashboard/charts/:name. It answers
// with a standalone chart page meant for the dashboard's iframes.
func (c *DashboardController) RenderChart(ctx *gin.Context) {
	fig, err := c.dashboard.Chart(ctx.Param("name"))
	if err != nil {
		ctx.String(http.StatusNotFound, "Unknown chart")
		return
	}

	var buf bytes.Buffer
	if err := services.RenderLineChart(&buf, fig); err != nil {
		log.Printf("CONTROLLER: %v", err)
		ctx.String(http.StatusInternalServerError, "Failed to render chart")
		return
	}
	ctx.Data(http.StatusOK, "text/html; charset=utf-8", buf.Bytes())
}
