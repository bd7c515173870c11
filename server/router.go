package server

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/sessions"

	"github/itish2003/smartcity/controller"
	"github/itish2003/smartcity/services"
	"github/itish2003/smartcity/web"
)

const (
	serviceName    = "Smart City Assistant"
	serviceVersion = "1.0.0"
)

// Dependencies are the services and UI pieces the router binds to routes.
type Dependencies struct {
	Assistant services.AssistantService
	Dashboard services.DashboardService
	Reports   services.ReportService
	Renderer  *web.Renderer
	Sessions  sessions.Store
	Provider  string
}

// NewRouter wires every page and API route onto a fresh gin engine.
func NewRouter(deps Dependencies) *gin.Engine {
	actions := services.NewActionTable(deps.Assistant, deps.Dashboard, deps.Reports)

	assistantController := controller.NewAssistantController(deps.Assistant)
	dashboardController := controller.NewDashboardController(deps.Dashboard)
	reportController := controller.NewReportController(deps.Reports)
	actionController := controller.NewActionController(actions)
	pageController := controller.NewPageController(deps.Assistant, deps.Reports, deps.Sessions, deps.Provider)

	router := gin.New()
	router.Use(gin.Logger(), gin.Recovery(), requestID(), cors())
	router.HTMLRender = deps.Renderer

	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":   "healthy",
			"service":  serviceName,
			"version":  serviceVersion,
			"provider": deps.Provider,
		})
	})

	router.StaticFS("/static", web.Static())

	// Tabs
	router.GET("/", pageController.Home)
	router.GET("/assistant", pageController.Assistant)
	router.POST("/assistant", pageController.SubmitQuestion)
	router.GET("/dashboard", pageController.Dashboard)
	router.GET("/dashboard/charts/:name", dashboardController.RenderChart)
	router.GET("/reports", pageController.Reports)
	router.GET("/reports/download", reportController.DownloadText)
	router.GET("/reports/download.pdf", reportController.DownloadPDF)
	router.GET("/about", pageController.About)

	apiV1 := router.Group("/api/v1")
	{
		apiV1.POST("/ask", assistantController.Ask)
		apiV1.GET("/charts/:name", dashboardController.GetChart)
		apiV1.GET("/report", reportController.GetReport)
		apiV1.GET("/actions", actionController.List)
		apiV1.POST("/actions/:name", actionController.Dispatch)
	}

	return router
}
