package transport

import (
	"bytes"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"urlpro/internal/service"
)

type ReportHandler struct {
	reports *service.Reports
}

func NewReportHandler(reports *service.Reports) *ReportHandler {
	return &ReportHandler{reports: reports}
}

func (h *ReportHandler) Index(c *gin.Context) {
	page := h.reports.Index(c.Request.Context())
	page.Flash = takeFlash(c)
	c.HTML(http.StatusOK, "index.html", page)
}

func (h *ReportHandler) Stats(c *gin.Context) {
	stats, err := h.reports.Stats(c.Request.Context(), c.Param("slug"), currentUser(c))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, stats)
}

func (h *ReportHandler) URLAnalytics(c *gin.Context) {
	days := 0
	if raw := c.Query("days"); raw != "" {
		d, err := strconv.Atoi(raw)
		if err != nil || d <= 0 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "days must be a positive number"})
			return
		}
		days = d
	}

	res, err := h.reports.URLAnalytics(c.Request.Context(), c.Param("slug"), currentUser(c), days)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, res)
}

func (h *ReportHandler) Dashboard(c *gin.Context) {
	c.JSON(http.StatusOK, h.reports.Dashboard(c.Request.Context(), currentUser(c)))
}

func (h *ReportHandler) ExportCSV(c *gin.Context) {
	var buf bytes.Buffer
	if err := h.reports.ExportCSV(c.Request.Context(), currentUser(c), &buf); err != nil {
		writeError(c, err)
		return
	}
	c.Header("Content-Disposition", `attachment; filename="urls.csv"`)
	c.Data(http.StatusOK, "text/csv", buf.Bytes())
}

func (h *ReportHandler) ExportPDF(c *gin.Context) {
	var buf bytes.Buffer
	if err := h.reports.ExportPDF(c.Request.Context(), currentUser(c), &buf); err != nil {
		writeError(c, err)
		return
	}
	c.Header("Content-Disposition", `attachment; filename="url_report.pdf"`)
	c.Data(http.StatusOK, "application/pdf", buf.Bytes())
}
