package handlers

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strconv"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
	"go.uber.org/zap"

	"ops-backend/models"
	"ops-backend/repository"
)

type memProjects struct {
	items      map[string]*models.Project
	seq        int
	lastFilter bson.M
}

func newMemProjects() *memProjects {
	return &memProjects{items: map[string]*models.Project{}}
}

func (m *memProjects) List(_ context.Context, filter bson.M, _ repository.ListOptions) ([]models.Project, error) {
	m.lastFilter = filter
	out := []models.Project{}
	for _, p := range m.items {
		out = append(out, *p)
	}
	return out, nil
}

func (m *memProjects) FindByID(_ context.Context, id string) (*models.Project, error) {
	p, ok := m.items[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	copy := *p
	return &copy, nil
}

func (m *memProjects) Create(_ context.Context, p *models.Project) error {
	m.seq++
	p.SetMeta("p"+strconv.Itoa(m.seq), time.Now())
	copy := *p
	m.items[p.ID] = &copy
	return nil
}

func (m *memProjects) Update(_ context.Context, id string, set bson.M) error {
	p, ok := m.items[id]
	if !ok {
		return repository.ErrNotFound
	}
	if v, ok := set["name"].(string); ok {
		p.Name = v
	}
	if v, ok := set["status"].(string); ok {
		p.Status = v
	}
	return nil
}

func (m *memProjects) Delete(_ context.Context, id string) error {
	if _, ok := m.items[id]; !ok {
		return repository.ErrNotFound
	}
	delete(m.items, id)
	return nil
}

func newProjectApp(store *memProjects, cfg ResourceConfig) *fiber.App {
	res := NewResource[models.Project, models.ProjectCreatePayload, models.ProjectUpdatePayload](
		cfg, store, models.ProjectCreatePayload.Build, models.ProjectUpdatePayload.Changes, zap.NewNop())

	app := fiber.New()
	app.Get("/projects", res.List)
	app.Post("/projects", res.Create)
	app.Get("/projects/:id", res.Get)
	app.Put("/projects/:id", res.Update)
	app.Delete("/projects/:id", res.Delete)
	return app
}

func TestResource_CRUD(t *testing.T) {
	store := newMemProjects()
	app := newProjectApp(store, ResourceConfig{Name: "Project"})

	resp, body := doJSON(t, app, http.MethodPost, "/projects", map[string]interface{}{
		"name": "Launch", "description": "Go live", "type": "startup",
	})
	require.Equal(t, fiber.StatusCreated, resp.StatusCode)
	assert.Equal(t, "p1", body["id"])
	assert.Equal(t, models.StatusTodo, body["status"])

	resp, body = doJSON(t, app, http.MethodPut, "/projects/p1", map[string]interface{}{"status": "doing"})
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.Equal(t, "doing", body["status"])
	assert.Equal(t, "Launch", body["name"])

	resp, body = doJSON(t, app, http.MethodGet, "/projects/p1", nil)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.Equal(t, "doing", body["status"])

	resp, body = doJSON(t, app, http.MethodDelete, "/projects/p1", nil)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.Equal(t, "Project deleted successfully", body["message"])

	resp, body = doJSON(t, app, http.MethodGet, "/projects/p1", nil)
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)
	assert.Equal(t, "Project not found: record not found", body["error"])
}

func TestResource_Validation(t *testing.T) {
	store := newMemProjects()
	app := newProjectApp(store, ResourceConfig{Name: "Project"})

	resp, body := doJSON(t, app, http.MethodPost, "/projects", map[string]interface{}{"name": "No description"})
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
	assert.NotEmpty(t, body["errors"])
	assert.Empty(t, store.items)

	req := httptest.NewRequest(http.MethodPost, "/projects", nil)
	req.Header.Set("Content-Type", "application/json")
	res, err := app.Test(req, -1)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusBadRequest, res.StatusCode)

	require.NoError(t, store.Create(context.Background(), &models.Project{Name: "Existing"}))

	resp, body = doJSON(t, app, http.MethodPut, "/projects/p1", map[string]interface{}{})
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, "No data to update", body["error"])

	resp, _ = doJSON(t, app, http.MethodPut, "/projects/p1", map[string]interface{}{"progress": 150})
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)

	resp, _ = doJSON(t, app, http.MethodPut, "/projects/missing", map[string]interface{}{"name": "x"})
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)
}

func TestResource_ListFilters(t *testing.T) {
	store := newMemProjects()
	app := newProjectApp(store, ResourceConfig{
		Name:     "Project",
		Filters:  map[string]string{"user_id": "assigned_members"},
		Required: []string{"user_id"},
	})

	resp, body := doJSON(t, app, http.MethodGet, "/projects", nil)
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, "query parameter 'user_id' is required", body["error"])

	resp, _ = doJSON(t, app, http.MethodGet, "/projects?user_id=u1&ignored=1", nil)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.Equal(t, bson.M{"assigned_members": "u1"}, store.lastFilter)
}
