package controller

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/sessions"

	"github/itish2003/smartcity/services"
)

const (
	sessionName = "smartcity"
	sessionKey  = "exchange"
)

// PageController renders the HTML tabs. The assistant form follows
// post/redirect/get: the cookie session carries a key to the last exchange,
// which is held in memory.
type PageController struct {
	assistant services.AssistantService
	reports   services.ReportService
	sessions  sessions.Store
	exchanges *exchangeStore
	provider  string
}

// NewPageController is a constructor function that creates a new PageController.
func NewPageController(assistant services.AssistantService, reports services.ReportService, store sessions.Store, provider string) *PageController {
	return &PageController{
		assistant: assistant,
		reports:   reports,
		sessions:  store,
		exchanges: newExchangeStore(maxExchanges),
		provider:  provider,
	}
}

func (c *PageController) Home(ctx *gin.Context) {
	ctx.HTML(http.StatusOK, "home", gin.H{"Active": "home"})
}

// Assistant shows the form along with the last question and answer, if any.
func (c *PageController) Assistant(ctx *gin.Context) {
	data := gin.H{"Active": "assistant", "Question": "", "Answer": "", "Error": ""}

	session, err := c.sessions.Get(ctx.Request, sessionName)
	if err != nil {
		log.Printf("CONTROLLER: discarding unreadable session: %v", err)
	}
	if session != nil {
		key, _ := session.Values[sessionKey].(string)
		if ex, ok := c.exchanges.get(key); ok {
			data["Question"] = ex.Question
			data["Answer"] = ex.Answer
			data["Error"] = ex.Error
		}
	}

	ctx.HTML(http.StatusOK, "assistant", data)
}

// SubmitQuestion handles the assistant form post.
func (c *PageController) SubmitQuestion(ctx *gin.Context) {
	query := ctx.PostForm("query")

	session, err := c.sessions.Get(ctx.Request, sessionName)
	if err != nil {
		log.Printf("CONTROLLER: discarding unreadable session: %v", err)
	}

	ex := exchange{Question: query}
	answer, err := c.assistant.Ask(ctx.Request.Context(), query)
	if err != nil {
		log.Printf("CONTROLLER: ask %s failed: %v", ctx.GetString(RequestIDKey), err)
		ex.Error = "Something went wrong while contacting the AI model. Please try again."
	} else {
		ex.Answer = answer
	}

	key, _ := session.Values[sessionKey].(string)
	session.Values[sessionKey] = c.exchanges.put(key, ex)
	if err := session.Save(ctx.Request, ctx.Writer); err != nil {
		log.Printf("CONTROLLER: failed to save session: %v", err)
	}
	ctx.Redirect(http.StatusSeeOther, "/assistant")
}

func (c *PageController) Dashboard(ctx *gin.Context) {
	ctx.HTML(http.StatusOK, "dashboard", gin.H{"Active": "dashboard"})
}

// Reports fills the report box once the Generate button has been pressed.
func (c *PageController) Reports(ctx *gin.Context) {
	data := gin.H{
		"Active":     "reports",
		"Report":     "",
		"PDFEnabled": c.reports.PDFEnabled(),
	}
	if ctx.Query("generate") != "" {
		data["Report"] = c.reports.Report()
	}
	ctx.HTML(http.StatusOK, "reports", data)
}

func (c *PageController) About(ctx *gin.Context) {
	ctx.HTML(http.StatusOK, "about", gin.H{"Active": "about", "Provider": c.provider})
}
