package handlers_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"dealdesk/internal/handlers"
	"dealdesk/internal/models"
	"dealdesk/internal/pdf"
	"dealdesk/internal/repositories"
	"dealdesk/internal/routes"
	"dealdesk/internal/seed"
	"dealdesk/internal/services"
)

func newTestRouter(t *testing.T, strict bool) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	dealRepo := repositories.NewDealRepository()
	contactRepo := repositories.NewContactRepository()
	taskRepo := repositories.NewTaskRepository()
	require.NoError(t, seed.Load(context.Background(), dealRepo, contactRepo, taskRepo))

	log := zap.NewNop()
	deals := services.NewDealService(dealRepo, strict)
	board := services.NewBoardService(deals)
	return routes.SetupRoutes(gin.New(),
		handlers.NewDealHandler(deals, log),
		handlers.NewContactHandler(services.NewContactService(contactRepo), log),
		handlers.NewTaskHandler(services.NewTaskService(taskRepo), log),
		handlers.NewReportHandler(board, pdf.NewDocumentGenerator(t.TempDir(), ""), log),
	)
}

func doJSON(t *testing.T, r http.Handler, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func decode[T any](t *testing.T, w *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &v), w.Body.String())
	return v
}

func TestDealRoutes_CreateGetListDelete(t *testing.T) {
	r := newTestRouter(t, false)

	w := doJSON(t, r, http.MethodPost, "/deals",
		`{"name":"Data Migration","company":"Initech","contact":"Peter","value":"15000","stage":"proposal","expectedCloseDate":"2024-06-30"}`)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	created := decode[models.Deal](t, w)
	assert.NotEmpty(t, created.ID)
	assert.Equal(t, 15000.0, created.Value)
	assert.Equal(t, models.StageProposal, created.Stage)

	w = doJSON(t, r, http.MethodGet, "/deals/"+created.ID, "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, created, decode[models.Deal](t, w))

	w = doJSON(t, r, http.MethodGet, "/deals?stage=proposal", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Len(t, decode[[]models.Deal](t, w), 2)

	w = doJSON(t, r, http.MethodGet, "/deals?search=ACME", "")
	listed := decode[[]models.Deal](t, w)
	require.Len(t, listed, 1)
	assert.Equal(t, "1", listed[0].ID)

	w = doJSON(t, r, http.MethodDelete, "/deals/"+created.ID, "")
	assert.Equal(t, http.StatusNoContent, w.Code)
	w = doJSON(t, r, http.MethodDelete, "/deals/"+created.ID, "")
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestDealRoutes_Errors(t *testing.T) {
	r := newTestRouter(t, false)

	w := doJSON(t, r, http.MethodPost, "/deals", `{"name":"","company":"X","value":"10"}`)
	require.Equal(t, http.StatusBadRequest, w.Code)
	body := decode[struct {
		Error  string   `json:"error"`
		Fields []string `json:"fields"`
	}](t, w)
	assert.Equal(t, []string{"name"}, body.Fields)
	assert.Contains(t, body.Error, "name")

	w = doJSON(t, r, http.MethodPost, "/deals", `{"name":`)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = doJSON(t, r, http.MethodPost, "/deals", `{"name":"A","company":"B","value":true}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = doJSON(t, r, http.MethodGet, "/deals/99", "")
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = doJSON(t, r, http.MethodPost, "/deals/99/stage", `{"to":"closed"}`)
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = doJSON(t, r, http.MethodPost, "/deals/1/stage", `{"to":"won"}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = doJSON(t, r, http.MethodGet, "/deals", "")
	assert.Len(t, decode[[]models.Deal](t, w), 5, "failed writes leave the store unchanged")
}

func TestDealRoutes_UpdateAndMove(t *testing.T) {
	r := newTestRouter(t, false)

	w := doJSON(t, r, http.MethodPatch, "/deals/1", `{"value":13000}`)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	deal := decode[models.Deal](t, w)
	assert.Equal(t, 13000.0, deal.Value)
	assert.Equal(t, "Website Redesign", deal.Name)
	assert.Equal(t, "2023-10-15", deal.CreatedAt.String())

	w = doJSON(t, r, http.MethodPost, "/deals/1/stage", `{"to":"negotiation"}`)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, models.StageNegotiation, decode[models.Deal](t, w).Stage)

	w = doJSON(t, r, http.MethodGet, "/deals/1/next-stages", "")
	require.Equal(t, http.StatusOK, w.Code)
	next := decode[[]services.StageSuggestion](t, w)
	require.Len(t, next, 2)
	assert.Equal(t, models.StageClosed, next[0].To)
}

func TestDealRoutes_StrictMode(t *testing.T) {
	r := newTestRouter(t, true)

	w := doJSON(t, r, http.MethodPost, "/deals/1/stage", `{"to":"negotiation"}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = doJSON(t, r, http.MethodPost, "/deals/1/stage", `{"to":"qualified"}`)
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestStagesAndReports(t *testing.T) {
	r := newTestRouter(t, false)

	w := doJSON(t, r, http.MethodGet, "/healthz", "")
	assert.Equal(t, http.StatusOK, w.Code)

	w = doJSON(t, r, http.MethodGet, "/stages", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, models.PipelineStages(), decode[[]models.StageInfo](t, w))

	w = doJSON(t, r, http.MethodGet, "/reports/board?stage=closed", "")
	require.Equal(t, http.StatusOK, w.Code)
	board := decode[services.Board](t, w)
	assert.Equal(t, 1, board.TotalCount)
	assert.Equal(t, 27500.0, board.TotalValue)
	assert.Len(t, board.Columns, 6)

	w = doJSON(t, r, http.MethodGet, "/reports/pipeline.pdf", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "application/pdf", w.Header().Get("Content-Type"))
	assert.True(t, bytes.HasPrefix(w.Body.Bytes(), []byte("%PDF")))
}

func TestContactRoutes(t *testing.T) {
	r := newTestRouter(t, false)

	w := doJSON(t, r, http.MethodPost, "/contacts", `{"firstName":"Ada","lastName":"Lovelace","email":"ada@engine.org"}`)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	c := decode[models.Contact](t, w)
	assert.Equal(t, models.CategoryLead, c.Category)

	w = doJSON(t, r, http.MethodGet, "/contacts?category=customer", "")
	assert.Len(t, decode[[]models.Contact](t, w), 2)

	w = doJSON(t, r, http.MethodPut, "/contacts/"+c.ID, `{"email":"broken"}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = doJSON(t, r, http.MethodGet, "/contacts/"+c.ID, "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "ada@engine.org", decode[models.Contact](t, w).Email)

	w = doJSON(t, r, http.MethodDelete, "/contacts/"+c.ID, "")
	assert.Equal(t, http.StatusNoContent, w.Code)
	w = doJSON(t, r, http.MethodGet, "/contacts/"+c.ID, "")
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestTaskRoutes(t *testing.T) {
	r := newTestRouter(t, false)

	w := doJSON(t, r, http.MethodGet, "/tasks?sort=priority&direction=desc", "")
	require.Equal(t, http.StatusOK, w.Code)
	tasks := decode[[]models.Task](t, w)
	require.Len(t, tasks, 5)
	assert.Equal(t, models.PriorityHigh, tasks[0].Priority)

	w = doJSON(t, r, http.MethodPost, "/tasks/3/toggle", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, models.StatusPending, decode[models.Task](t, w).Status)

	w = doJSON(t, r, http.MethodPost, "/tasks", `{"title":"Book venue","dueDate":"2023-07-01","assignedTo":"Emily"}`)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	assert.Equal(t, int64(6), decode[models.Task](t, w).ID)

	w = doJSON(t, r, http.MethodPost, "/tasks", `{"title":""}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = doJSON(t, r, http.MethodGet, "/tasks/abc", "")
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = doJSON(t, r, http.MethodDelete, "/tasks/99", "")
	assert.Equal(t, http.StatusNotFound, w.Code)
}
