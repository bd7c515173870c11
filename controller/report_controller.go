package controller

import (
	"bytes"
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github/itish2003/smartcity/models"
	"github/itish2003/smartcity/services"
)

// ReportController serves the weekly report and its downloads.
type ReportController struct {
	reports services.ReportService
}

// NewReportController is a constructor function that creates a new ReportController.
func NewReportController(reports services.ReportService) *ReportController {
	return &ReportController{reports: reports}
}

// GetReport is the Gin handler for GET /api/v1/report.
func (c *ReportController) GetReport(ctx *gin.Context) {
	ctx.JSON(http.StatusOK, models.ReportResponse{Report: c.reports.Report()})
}

// DownloadText is the Gin handler for GET /reports/download.
func (c *ReportController) DownloadText(ctx *gin.Context) {
	var buf bytes.Buffer
	if err := c.reports.WriteText(&buf); err != nil {
		log.Printf("CONTROLLER: %v", err)
		ctx.String(http.StatusInternalServerError, "Failed to build report")
		return
	}
	ctx.Header("Content-Disposition", `attachment; filename="`+services.ReportFilename+`.txt"`)
	ctx.Data(http.StatusOK, "text/plain; charset=utf-8", buf.Bytes())
}

// DownloadPDF is the Gin handler for GET /reports/download.pdf.
func (c *ReportController) DownloadPDF(ctx *gin.Context) {
	var buf bytes.Buffer
	err := c.reports.WritePDF(&buf)
	if errors.Is(err, services.ErrPDFUnavailable) {
		ctx.JSON(http.StatusServiceUnavailable, gin.H{"error": "PDF export is not configured"})
		return
	}
	if err != nil {
		log.Printf("CONTROLLER: %v", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to build report PDF"})
		return
	}
	ctx.Header("Content-Disposition", `attachment; filename="`+services.ReportFilename+`.pdf"`)
	ctx.Data(http.StatusOK, "application/pdf", buf.Bytes())
}
