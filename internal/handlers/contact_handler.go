package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"dealdesk/internal/models"
	"dealdesk/internal/services"
)

type ContactHandler struct {
	Service *services.ContactService
	log     *zap.Logger
}

func NewContactHandler(service *services.ContactService, log *zap.Logger) *ContactHandler {
	return &ContactHandler{Service: service, log: orNop(log)}
}

func (h *ContactHandler) Create(c *gin.Context) {
	var in models.ContactInput
	if !bindJSON(c, h.log, "[contact][create]", &in) {
		return
	}
	contact, err := h.Service.Create(in)
	if err != nil {
		writeError(c, h.log, "[contact][create]", err)
		return
	}
	h.log.Info("[contact][create][ok]", zap.String("id", contact.ID))
	c.JSON(http.StatusCreated, contact)
}

func (h *ContactHandler) Update(c *gin.Context) {
	id := c.Param("id")
	var in models.ContactInput
	if !bindJSON(c, h.log, "[contact][update]", &in) {
		return
	}
	contact, err := h.Service.Update(id, in)
	if err != nil {
		writeError(c, h.log, "[contact][update]", err)
		return
	}
	h.log.Info("[contact][update][ok]", zap.String("id", id))
	c.JSON(http.StatusOK, contact)
}

func (h *ContactHandler) GetByID(c *gin.Context) {
	contact, err := h.Service.GetByID(c.Param("id"))
	if err != nil {
		writeError(c, h.log, "[contact][getByID]", err)
		return
	}
	c.JSON(http.StatusOK, contact)
}

// GET /contacts?category=&search=
func (h *ContactHandler) List(c *gin.Context) {
	contacts := h.Service.List(models.ContactFilter{
		Category: models.ContactCategory(c.Query("category")),
		Search:   c.Query("search"),
	})
	c.JSON(http.StatusOK, contacts)
}

func (h *ContactHandler) Delete(c *gin.Context) {
	id := c.Param("id")
	if err := h.Service.Delete(id); err != nil {
		writeError(c, h.log, "[contact][delete]", err)
		return
	}
	h.log.Info("[contact][delete][ok]", zap.String("id", id))
	c.Status(http.StatusNoContent)
}
