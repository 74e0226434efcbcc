package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"dealdesk/internal/models"
	"dealdesk/internal/services"
)

type DealHandler struct {
	Service *services.DealService
	log     *zap.Logger
}

func NewDealHandler(service *services.DealService, log *zap.Logger) *DealHandler {
	return &DealHandler{Service: service, log: orNop(log)}
}

type moveStageRequest struct {
	To models.Stage `json:"to"`
}

// POST /deals
func (h *DealHandler) Create(c *gin.Context) {
	var in models.DealInput
	if !bindJSON(c, h.log, "[deal][create]", &in) {
		return
	}
	deal, err := h.Service.Add(in)
	if err != nil {
		writeError(c, h.log, "[deal][create]", err)
		return
	}
	h.log.Info("[deal][create][ok]", zap.String("id", deal.ID), zap.String("stage", string(deal.Stage)))
	c.JSON(http.StatusCreated, deal)
}

// GET /deals?stage=&search=
func (h *DealHandler) List(c *gin.Context) {
	filter := models.DealFilter{
		Stage:  models.Stage(c.Query("stage")),
		Search: c.Query("search"),
	}
	deals := h.Service.List(filter)
	h.log.Debug("[deal][list][ok]", zap.Int("count", len(deals)))
	c.JSON(http.StatusOK, deals)
}

// GET /deals/:id
func (h *DealHandler) GetByID(c *gin.Context) {
	deal, err := h.Service.Get(c.Param("id"))
	if err != nil {
		writeError(c, h.log, "[deal][getByID]", err)
		return
	}
	c.JSON(http.StatusOK, deal)
}

// PUT|PATCH /deals/:id merges the submitted fields.
func (h *DealHandler) Update(c *gin.Context) {
	id := c.Param("id")
	var patch models.DealInput
	if !bindJSON(c, h.log, "[deal][update]", &patch) {
		return
	}
	deal, err := h.Service.Update(id, patch)
	if err != nil {
		writeError(c, h.log, "[deal][update]", err)
		return
	}
	h.log.Info("[deal][update][ok]", zap.String("id", id))
	c.JSON(http.StatusOK, deal)
}

// DELETE /deals/:id
func (h *DealHandler) Delete(c *gin.Context) {
	id := c.Param("id")
	if err := h.Service.Remove(id); err != nil {
		writeError(c, h.log, "[deal][delete]", err)
		return
	}
	h.log.Info("[deal][delete][ok]", zap.String("id", id))
	c.Status(http.StatusNoContent)
}

// POST /deals/:id/stage {"to": "proposal"}
func (h *DealHandler) MoveStage(c *gin.Context) {
	id := c.Param("id")
	var req moveStageRequest
	if !bindJSON(c, h.log, "[deal][stage]", &req) {
		return
	}
	deal, err := h.Service.MoveStage(id, req.To)
	if err != nil {
		writeError(c, h.log, "[deal][stage]", err)
		return
	}
	h.log.Info("[deal][stage][ok]", zap.String("id", id), zap.String("to", string(req.To)))
	c.JSON(http.StatusOK, deal)
}

// GET /deals/:id/next-stages
func (h *DealHandler) NextStages(c *gin.Context) {
	next, err := h.Service.NextStages(c.Param("id"))
	if err != nil {
		writeError(c, h.log, "[deal][next]", err)
		return
	}
	c.JSON(http.StatusOK, next)
}

// GET /stages
func (h *DealHandler) Stages(c *gin.Context) {
	c.JSON(http.StatusOK, models.PipelineStages())
}
