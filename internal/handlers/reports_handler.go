package handlers

import (
	"bytes"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"dealdesk/internal/models"
	"dealdesk/internal/pdf"
	"dealdesk/internal/services"
)

type ReportHandler struct {
	Service *services.BoardService
	PDF     pdf.Generator
	log     *zap.Logger
}

func NewReportHandler(service *services.BoardService, gen pdf.Generator, log *zap.Logger) *ReportHandler {
	return &ReportHandler{Service: service, PDF: gen, log: orNop(log)}
}

func dealFilterFromQuery(c *gin.Context) models.DealFilter {
	return models.DealFilter{
		Stage:  models.Stage(c.Query("stage")),
		Search: c.Query("search"),
	}
}

// GET /reports/board?stage=&search=
func (h *ReportHandler) Board(c *gin.Context) {
	c.JSON(http.StatusOK, h.Service.GetBoard(dealFilterFromQuery(c)))
}

// GET /reports/pipeline.pdf?stage=&search=
func (h *ReportHandler) PipelinePDF(c *gin.Context) {
	filter := dealFilterFromQuery(c)
	data := pdf.PipelineReportData{
		Board:       h.Service.GetBoard(filter),
		Filter:      filter,
		GeneratedAt: time.Now(),
	}
	var buf bytes.Buffer
	if err := h.PDF.WritePipelineReport(&buf, data); err != nil {
		writeError(c, h.log, "[report][pdf]", err)
		return
	}
	h.log.Info("[report][pdf][ok]", zap.Int("deals", data.Board.TotalCount), zap.Int("bytes", buf.Len()))
	c.Header("Content-Disposition", `inline; filename="pipeline.pdf"`)
	c.Data(http.StatusOK, "application/pdf", buf.Bytes())
}
