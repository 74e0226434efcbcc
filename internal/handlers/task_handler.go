package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"dealdesk/internal/models"
	"dealdesk/internal/services"
)

type TaskHandler struct {
	service services.TaskService
	log     *zap.Logger
}

func NewTaskHandler(service services.TaskService, log *zap.Logger) *TaskHandler {
	return &TaskHandler{service: service, log: orNop(log)}
}

// POST /tasks
func (h *TaskHandler) Create(c *gin.Context) {
	var in models.TaskInput
	if !bindJSON(c, h.log, "[task][create]", &in) {
		return
	}
	task, err := h.service.Create(c.Request.Context(), in)
	if err != nil {
		writeError(c, h.log, "[task][create]", err)
		return
	}
	h.log.Info("[task][create][ok]", zap.Int64("id", task.ID), zap.String("title", task.Title))
	c.JSON(http.StatusCreated, task)
}

// GET /tasks/:id
func (h *TaskHandler) GetByID(c *gin.Context) {
	id, ok := h.taskID(c, "[task][getByID]")
	if !ok {
		return
	}
	task, err := h.service.GetByID(c.Request.Context(), id)
	if err != nil {
		writeError(c, h.log, "[task][getByID]", err)
		return
	}
	c.JSON(http.StatusOK, task)
}

// GET /tasks?status=&priority=&search=&sort=&direction=
func (h *TaskHandler) List(c *gin.Context) {
	filter := models.TaskFilter{
		Status:    models.TaskStatus(c.Query("status")),
		Priority:  models.TaskPriority(c.Query("priority")),
		Search:    c.Query("search"),
		SortKey:   c.DefaultQuery("sort", "dueDate"),
		Direction: c.DefaultQuery("direction", "asc"),
	}
	tasks, err := h.service.GetAll(c.Request.Context(), filter)
	if err != nil {
		writeError(c, h.log, "[task][list]", err)
		return
	}
	h.log.Debug("[task][list][ok]", zap.Int("count", len(tasks)))
	c.JSON(http.StatusOK, tasks)
}

// PUT|PATCH /tasks/:id
func (h *TaskHandler) Update(c *gin.Context) {
	id, ok := h.taskID(c, "[task][update]")
	if !ok {
		return
	}
	var in models.TaskInput
	if !bindJSON(c, h.log, "[task][update]", &in) {
		return
	}
	task, err := h.service.Update(c.Request.Context(), id, in)
	if err != nil {
		writeError(c, h.log, "[task][update]", err)
		return
	}
	h.log.Info("[task][update][ok]", zap.Int64("id", id))
	c.JSON(http.StatusOK, task)
}

// POST /tasks/:id/toggle
func (h *TaskHandler) Toggle(c *gin.Context) {
	id, ok := h.taskID(c, "[task][toggle]")
	if !ok {
		return
	}
	task, err := h.service.ToggleStatus(c.Request.Context(), id)
	if err != nil {
		writeError(c, h.log, "[task][toggle]", err)
		return
	}
	h.log.Info("[task][toggle][ok]", zap.Int64("id", id), zap.String("status", string(task.Status)))
	c.JSON(http.StatusOK, task)
}

// DELETE /tasks/:id
func (h *TaskHandler) Delete(c *gin.Context) {
	id, ok := h.taskID(c, "[task][delete]")
	if !ok {
		return
	}
	if err := h.service.Delete(c.Request.Context(), id); err != nil {
		writeError(c, h.log, "[task][delete]", err)
		return
	}
	h.log.Info("[task][delete][ok]", zap.Int64("id", id))
	c.Status(http.StatusNoContent)
}

func (h *TaskHandler) taskID(c *gin.Context, tag string) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		h.log.Info(tag+"[err] invalid id", zap.String("id", c.Param("id")))
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
		return 0, false
	}
	return id, true
}
