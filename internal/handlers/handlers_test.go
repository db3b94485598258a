package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/gofiber/fiber/v2"
	"github.com/localnerve/jam-build-catalog/internal/catalog"
	"github.com/localnerve/jam-build-catalog/internal/metrics"
	"github.com/localnerve/jam-build-catalog/internal/models"
	"github.com/localnerve/jam-build-catalog/internal/services"
	"github.com/localnerve/jam-build-catalog/internal/telemetry"
	"github.com/localnerve/jam-build-catalog/internal/types"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

type stubValidator map[string]*catalog.Principal

func (s stubValidator) ValidateSession(_ context.Context, cookie string) (*catalog.Principal, error) {
	if p, ok := s[cookie]; ok {
		return p, nil
	}
	return nil, errors.New("session is not valid")
}

type testEnv struct {
	app     *fiber.App
	metrics *metrics.Metrics
	stats   *telemetry.QueryStats
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	db, err := gorm.Open(sqlite.Open("file::memory:"), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = sqlDB.Close() })
	require.NoError(t, db.AutoMigrate(&models.Component{}, &models.Category{}))

	env := &testEnv{
		metrics: metrics.New(prometheus.NewRegistry()),
		stats:   telemetry.NewQueryStats(10),
	}
	h := &CatalogHandler{
		Service: catalog.NewService(services.NewCatalogStore(db), nil),
		Stats:   env.stats,
		Metrics: env.metrics,
	}

	env.app = fiber.New(fiber.Config{ErrorHandler: ErrorHandler})
	h.Register(env.app.Group("/api"), stubValidator{
		"alice": {ID: "alice", Role: catalog.RoleRegular},
		"bob":   {ID: "bob", Role: catalog.RoleRegular},
		"admin": {ID: "root", Role: catalog.RoleAdmin},
	})
	return env
}

func (e *testEnv) do(t *testing.T, method, target, session string, body any) (*http.Response, []byte) {
	t.Helper()
	var reader io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		require.NoError(t, err)
		reader = strings.NewReader(string(b))
	}
	req := httptest.NewRequest(method, target, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if session != "" {
		req.AddCookie(&http.Cookie{Name: "cookie_session", Value: session})
	}
	resp, err := e.app.Test(req, -1)
	require.NoError(t, err)
	b, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return resp, b
}

func (e *testEnv) create(t *testing.T, session string, in types.ComponentInput) types.ComponentView {
	t.Helper()
	resp, b := e.do(t, http.MethodPost, "/api/catalog/components", session, in)
	require.Equal(t, fiber.StatusCreated, resp.StatusCode, string(b))
	var view types.ComponentView
	require.NoError(t, json.Unmarshal(b, &view))
	return view
}

func errorType(t *testing.T, b []byte) string {
	t.Helper()
	var res map[string]any
	require.NoError(t, json.Unmarshal(b, &res))
	s, _ := res["type"].(string)
	return s
}

func jsonParser() types.ComponentInput {
	return types.ComponentInput{
		Name:        "Parser",
		Description: "reads json documents",
		Type:        "code",
		Language:    "js",
		Body:        "JSON.parse(s)",
		Category:    "Text",
		Keywords:    types.FlexList[string]{"parse"},
	}
}

func TestRequiresSession(t *testing.T) {
	env := newTestEnv(t)

	resp, b := env.do(t, http.MethodGet, "/api/catalog/components", "", nil)
	assert.Equal(t, fiber.StatusForbidden, resp.StatusCode)
	assert.Equal(t, "catalog.authorization", errorType(t, b))

	resp, _ = env.do(t, http.MethodGet, "/api/catalog/components", "mallory", nil)
	assert.Equal(t, fiber.StatusForbidden, resp.StatusCode)
}

func TestCreateAndGetComponent(t *testing.T) {
	env := newTestEnv(t)

	created := env.create(t, "alice", jsonParser())
	assert.Equal(t, "alice", created.CreatedBy)
	assert.Equal(t, "code", created.Type)
	assert.Equal(t, catalog.DefaultVersion, created.Version)
	assert.Equal(t, "active", created.Status)
	assert.Zero(t, created.UsageCount)

	resp, b := env.do(t, http.MethodGet, "/api/catalog/components/"+created.ID, "bob", nil)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	var got types.ComponentView
	require.NoError(t, json.Unmarshal(b, &got))
	assert.Equal(t, created.ID, got.ID)
	assert.Equal(t, []string{"parse"}, got.Keywords)

	resp, b = env.do(t, http.MethodGet, "/api/catalog/components/missing", "bob", nil)
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)
	assert.Equal(t, "catalog.notFound", errorType(t, b))
}

func TestCreateComponentValidation(t *testing.T) {
	env := newTestEnv(t)

	in := jsonParser()
	in.Name = "   "
	resp, b := env.do(t, http.MethodPost, "/api/catalog/components", "alice", in)
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, "catalog.validation", errorType(t, b))

	in = jsonParser()
	in.Type = "video"
	resp, _ = env.do(t, http.MethodPost, "/api/catalog/components", "alice", in)
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)

	req := httptest.NewRequest(http.MethodPost, "/api/catalog/components", strings.NewReader("{"))
	req.Header.Set("Content-Type", "application/json")
	req.AddCookie(&http.Cookie{Name: "cookie_session", Value: "alice"})
	r, err := env.app.Test(req, -1)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusBadRequest, r.StatusCode)
}

func TestUpdateAndDeletePolicy(t *testing.T) {
	env := newTestEnv(t)
	created := env.create(t, "alice", jsonParser())
	target := "/api/catalog/components/" + created.ID

	in := jsonParser()
	in.Description = "changed"

	resp, b := env.do(t, http.MethodPut, target, "bob", in)
	assert.Equal(t, fiber.StatusForbidden, resp.StatusCode)
	assert.Equal(t, "catalog.authorization", errorType(t, b))
	assert.Equal(t, 1.0, testutil.ToFloat64(env.metrics.AccessDenied))

	resp, b = env.do(t, http.MethodPut, target, "alice", in)
	require.Equal(t, fiber.StatusOK, resp.StatusCode, string(b))
	var updated types.ComponentView
	require.NoError(t, json.Unmarshal(b, &updated))
	assert.Equal(t, "changed", updated.Description)
	assert.Equal(t, "alice", updated.CreatedBy)

	resp, _ = env.do(t, http.MethodDelete, target, "bob", nil)
	assert.Equal(t, fiber.StatusForbidden, resp.StatusCode)

	resp, _ = env.do(t, http.MethodDelete, target, "admin", nil)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	resp, _ = env.do(t, http.MethodGet, target, "alice", nil)
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)
}

func TestSearchAndUse(t *testing.T) {
	env := newTestEnv(t)

	parser := env.create(t, "alice", jsonParser())
	other := jsonParser()
	other.Name = "json schema"
	other.Description = "schema"
	other.Keywords = nil
	schema := env.create(t, "alice", other)
	pool := jsonParser()
	pool.Name = "Pool"
	pool.Description = "connections"
	pool.Keywords = nil
	pool.Category = "DB"
	pool.ParentCategory = "Storage"
	env.create(t, "alice", pool)

	resp, b := env.do(t, http.MethodPost, "/api/catalog/components/"+parser.ID+"/use", "bob", map[string]string{"query": "json"})
	require.Equal(t, fiber.StatusOK, resp.StatusCode, string(b))
	var counters catalog.Counters
	require.NoError(t, json.Unmarshal(b, &counters))
	assert.Equal(t, uint64(1), counters.UsageCount)
	assert.Equal(t, uint64(1), counters.QueryCount)
	assert.NotNil(t, counters.LastUsed)

	resp, _ = env.do(t, http.MethodPost, "/api/catalog/components/"+parser.ID+"/use", "bob", nil)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.Equal(t, 1.0, testutil.ToFloat64(env.metrics.ComponentUses.WithLabelValues(metrics.SourceSearch)))
	assert.Equal(t, 1.0, testutil.ToFloat64(env.metrics.ComponentUses.WithLabelValues(metrics.SourceDirect)))

	resp, b = env.do(t, http.MethodGet, "/api/catalog/components?q=JSON", "bob", nil)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	var found []types.ComponentView
	require.NoError(t, json.Unmarshal(b, &found))
	require.Len(t, found, 2)
	assert.Equal(t, parser.ID, found[0].ID)
	assert.Equal(t, schema.ID, found[1].ID)
	assert.Equal(t, 1.0, testutil.ToFloat64(env.metrics.Searches))

	resp, b = env.do(t, http.MethodGet, "/api/catalog/components?category=Storage", "bob", nil)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	require.NoError(t, json.Unmarshal(b, &found))
	require.Len(t, found, 1)
	assert.Equal(t, "Pool", found[0].Name)

	env.do(t, http.MethodGet, "/api/catalog/components?q=nothing+here", "bob", nil)
	resp, b = env.do(t, http.MethodGet, "/api/catalog/stats/queries?limit=5", "bob", nil)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	var snap telemetry.Snapshot
	require.NoError(t, json.Unmarshal(b, &snap))
	assert.Equal(t, int64(2), snap.TotalSearches)
	assert.Equal(t, int64(1), snap.ZeroResultCount)
	assert.Equal(t, []string{"nothing here"}, snap.ZeroResultQueries)
}

func TestComponentTree(t *testing.T) {
	env := newTestEnv(t)
	pool := jsonParser()
	pool.Category = "DB"
	pool.ParentCategory = "Storage"
	env.create(t, "alice", pool)
	env.create(t, "alice", jsonParser())

	resp, b := env.do(t, http.MethodGet, "/api/catalog/tree", "bob", nil)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	var tree []types.TreeNodeView
	require.NoError(t, json.Unmarshal(b, &tree))
	require.Len(t, tree, 2)
	assert.Equal(t, "Storage", tree[0].Label)
	require.Len(t, tree[0].Children, 1)
	assert.Equal(t, []string{"Storage", "DB"}, tree[0].Children[0].Path)
	assert.Len(t, tree[0].Children[0].Components, 1)
	assert.Equal(t, "Text", tree[1].Label)
}

func TestCategoryRoutes(t *testing.T) {
	env := newTestEnv(t)

	create := func(session string, in types.CategoryInput) types.CategoryView {
		resp, b := env.do(t, http.MethodPost, "/api/catalog/categories", session, in)
		require.Equal(t, fiber.StatusCreated, resp.StatusCode, string(b))
		var v types.CategoryView
		require.NoError(t, json.Unmarshal(b, &v))
		return v
	}

	storage := create("alice", types.CategoryInput{Name: "Storage"})
	caches := create("alice", types.CategoryInput{Name: "Caches", ParentID: storage.ID})

	resp, b := env.do(t, http.MethodPost, "/api/catalog/categories", "alice", types.CategoryInput{Name: "x", ParentID: "missing"})
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode, string(b))

	resp, b = env.do(t, http.MethodGet, "/api/catalog/categories", "bob", nil)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	var list []types.CategoryView
	require.NoError(t, json.Unmarshal(b, &list))
	require.Len(t, list, 2)
	assert.Equal(t, "Caches", list[0].Name)
	assert.Equal(t, "Storage", list[0].ParentName)

	resp, b = env.do(t, http.MethodPut, "/api/catalog/categories/"+storage.ID, "alice", types.CategoryInput{Name: "Storage", ParentID: caches.ID})
	assert.Equal(t, fiber.StatusConflict, resp.StatusCode)
	assert.Equal(t, "catalog.cycle", errorType(t, b))

	resp, _ = env.do(t, http.MethodPut, "/api/catalog/categories/"+storage.ID, "bob", types.CategoryInput{Name: "Mine"})
	assert.Equal(t, fiber.StatusForbidden, resp.StatusCode)

	resp, b = env.do(t, http.MethodGet, "/api/catalog/categories/tree", "bob", nil)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	var tree CategoryTreeResponse
	require.NoError(t, json.Unmarshal(b, &tree))
	require.Len(t, tree.Roots, 1)
	require.Len(t, tree.Roots[0].Children, 1)
	assert.Equal(t, "Caches", tree.Roots[0].Children[0].Name)
	assert.Empty(t, tree.Excluded)

	resp, _ = env.do(t, http.MethodDelete, "/api/catalog/categories/"+storage.ID, "alice", nil)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	_, b = env.do(t, http.MethodGet, "/api/catalog/categories/tree", "bob", nil)
	require.NoError(t, json.Unmarshal(b, &tree))
	require.Len(t, tree.Roots, 1)
	assert.Equal(t, "Caches", tree.Roots[0].Name)
}

func TestMapError(t *testing.T) {
	cases := []struct {
		err  error
		code int
	}{
		{&catalog.ValidationError{Field: "name", Message: "required"}, fiber.StatusBadRequest},
		{&catalog.AccessDeniedError{Action: "update"}, fiber.StatusForbidden},
		{&catalog.CycleDetectedError{CategoryID: "a"}, fiber.StatusConflict},
		{&catalog.StoreError{Op: "get", Cause: catalog.ErrNotFound}, fiber.StatusNotFound},
		{&catalog.StoreError{Op: "get", Cause: errors.New("down")}, fiber.StatusInternalServerError},
		{&types.CustomError{Code: fiber.StatusTeapot, Type: "x"}, fiber.StatusTeapot},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.code, MapError(tc.err).Code, tc.err.Error())
	}
}

func TestQueryStatsSurviveLaterRequests(t *testing.T) {
	env := newTestEnv(t)

	env.do(t, http.MethodGet, "/api/catalog/components?q=alpha", "bob", nil)
	env.do(t, http.MethodGet, "/api/catalog/components?q=zzzzz", "bob", nil)

	resp, b := env.do(t, http.MethodGet, "/api/catalog/stats/queries", "bob", nil)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	var snap telemetry.Snapshot
	require.NoError(t, json.Unmarshal(b, &snap))
	assert.Equal(t, []string{"alpha", "zzzzz"}, snap.ZeroResultQueries)
	assert.ElementsMatch(t, []telemetry.TermCount{{Term: "alpha", Count: 1}, {Term: "zzzzz", Count: 1}}, snap.TopTerms)
}

func TestBlankQueryIsBrowsing(t *testing.T) {
	env := newTestEnv(t)
	parser := env.create(t, "alice", jsonParser())

	resp, b := env.do(t, http.MethodGet, "/api/catalog/components?q=+++", "bob", nil)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	var found []types.ComponentView
	require.NoError(t, json.Unmarshal(b, &found))
	assert.Len(t, found, 1)
	assert.Zero(t, testutil.ToFloat64(env.metrics.Searches))

	_, b = env.do(t, http.MethodPost, "/api/catalog/components/"+parser.ID+"/use", "bob", map[string]string{"query": "   "})
	var counters catalog.Counters
	require.NoError(t, json.Unmarshal(b, &counters))
	assert.Equal(t, uint64(1), counters.UsageCount)
	assert.Zero(t, counters.QueryCount)
}
