package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"dealdesk/internal/handlers"
)

func SetupRoutes(
	r *gin.Engine,
	dealHandler *handlers.DealHandler,
	contactHandler *handlers.ContactHandler,
	taskHandler *handlers.TaskHandler,
	reportHandler *handlers.ReportHandler,
) *gin.Engine {

	r.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	r.GET("/stages", dealHandler.Stages)

	// DEALS
	deals := r.Group("/deals")
	{
		deals.GET("", dealHandler.List)
		deals.POST("", dealHandler.Create)
		deals.GET("/:id", dealHandler.GetByID)
		deals.PUT("/:id", dealHandler.Update)
		deals.PATCH("/:id", dealHandler.Update)
		deals.DELETE("/:id", dealHandler.Delete)
		deals.POST("/:id/stage", dealHandler.MoveStage)
		deals.GET("/:id/next-stages", dealHandler.NextStages)
	}

	// CONTACTS
	contacts := r.Group("/contacts")
	{
		contacts.GET("", contactHandler.List)
		contacts.POST("", contactHandler.Create)
		contacts.GET("/:id", contactHandler.GetByID)
		contacts.PUT("/:id", contactHandler.Update)
		contacts.PATCH("/:id", contactHandler.Update)
		contacts.DELETE("/:id", contactHandler.Delete)
	}

	// TASKS
	tasks := r.Group("/tasks")
	{
		tasks.GET("", taskHandler.List)
		tasks.POST("", taskHandler.Create)
		tasks.GET("/:id", taskHandler.GetByID)
		tasks.PUT("/:id", taskHandler.Update)
		tasks.PATCH("/:id", taskHandler.Update)
		tasks.DELETE("/:id", taskHandler.Delete)
		tasks.POST("/:id/toggle", taskHandler.Toggle)
	}

	// REPORTS
	reports := r.Group("/reports")
	{
		reports.GET("/board", reportHandler.Board)
		reports.GET("/pipeline.pdf", reportHandler.PipelinePDF)
	}

	return r
}
