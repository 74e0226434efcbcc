package app

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"path/filepath"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"dealdesk/internal/config"
	"dealdesk/internal/handlers"
	"dealdesk/internal/middleware"
	"dealdesk/internal/models"
	"dealdesk/internal/pdf"
	"dealdesk/internal/repositories"
	"dealdesk/internal/routes"
	"dealdesk/internal/seed"
	"dealdesk/internal/services"
)

const shutdownTimeout = 5 * time.Second

// App owns the stores and the router for one process.
type App struct {
	Config *config.Config
	Log    *zap.Logger

	Deals    *services.DealService
	Board    *services.BoardService
	Contacts *services.ContactService
	Tasks    services.TaskService
	PDF      *pdf.DocumentGenerator

	Router *gin.Engine
}

// New wires repositories, services and handlers, loading demo data when cfg.Pipeline.Seed is set.
func New(ctx context.Context, cfg *config.Config, log *zap.Logger) (*App, error) {
	if log == nil {
		log = zap.NewNop()
	}

	// === Repos ===
	dealRepo := repositories.NewDealRepository()
	contactRepo := repositories.NewContactRepository()
	taskRepo := repositories.NewTaskRepository()

	if cfg.Pipeline.Seed {
		if err := seed.Load(ctx, dealRepo, contactRepo, taskRepo); err != nil {
			return nil, fmt.Errorf("seed: %w", err)
		}
		log.Info("[app][seed][ok]", zap.Int("deals", dealRepo.CountDeals()))
	}

	// === Services ===
	a := &App{Config: cfg, Log: log}
	a.Deals = services.NewDealService(dealRepo, cfg.Pipeline.StrictTransitions)
	a.Board = services.NewBoardService(a.Deals)
	a.Contacts = services.NewContactService(contactRepo)
	a.Tasks = services.NewTaskService(taskRepo)
	a.PDF = pdf.NewDocumentGenerator(cfg.Files.RootDir, cfg.Files.FontPath)

	// === Handlers ===
	dealHandler := handlers.NewDealHandler(a.Deals, log)
	contactHandler := handlers.NewContactHandler(a.Contacts, log)
	taskHandler := handlers.NewTaskHandler(a.Tasks, log)
	reportHandler := handlers.NewReportHandler(a.Board, a.PDF, log)

	// === Gin ===
	if cfg.Log.Level != "debug" {
		gin.SetMode(gin.ReleaseMode)
	}
	router := gin.New()
	router.Use(gin.CustomRecovery(func(c *gin.Context, rec any) {
		log.Error("[http][panic]", zap.Any("panic", rec), zap.String("path", c.Request.URL.Path))
		c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
	}))
	router.Use(middleware.RequestLogger(log))
	router.Use(middleware.CORS())
	a.Router = routes.SetupRoutes(router, dealHandler, contactHandler, taskHandler, reportHandler)
	return a, nil
}

// Run serves HTTP until ctx is cancelled, then shuts down gracefully.
func (a *App) Run(ctx context.Context) error {
	srv := &http.Server{
		Addr:              fmt.Sprintf(":%d", a.Config.Server.Port),
		Handler:           a.Router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		a.Log.Info("[app][serve] listening", zap.String("addr", srv.Addr),
			zap.Bool("strict_transitions", a.Config.Pipeline.StrictTransitions))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		if err != nil {
			return fmt.Errorf("listen %s: %w", srv.Addr, err)
		}
		return nil
	case <-ctx.Done():
	}

	a.Log.Info("[app][shutdown] draining")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}
	a.Log.Info("[app][shutdown][ok]")
	return nil
}

// ExportPipeline renders the board for filter as a PDF. An empty out path
// writes a timestamped file under files.root_dir. It returns the written path.
func (a *App) ExportPipeline(filter models.DealFilter, out string) (string, error) {
	data := pdf.PipelineReportData{
		Board:       a.Board.GetBoard(filter),
		Filter:      filter,
		GeneratedAt: time.Now(),
	}
	if out == "" {
		rel, err := a.PDF.GeneratePipelineReport(data)
		if err != nil {
			return "", err
		}
		out = filepath.Join(a.PDF.RootDir, filepath.FromSlash(rel))
	} else if err := a.writePipelineReport(out, data); err != nil {
		return "", err
	}
	a.Log.Info("[app][export][ok]", zap.String("out", out), zap.Int("deals", data.Board.TotalCount))
	return out, nil
}

func (a *App) writePipelineReport(out string, data pdf.PipelineReportData) error {
	f, err := os.Create(out)
	if err != nil {
		return fmt.Errorf("create %s: %w", out, err)
	}
	if err := a.PDF.WritePipelineReport(f, data); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
