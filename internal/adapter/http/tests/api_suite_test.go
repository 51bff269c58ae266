package tests

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"time"

	dbadapter "todolist/internal/adapter/db"
	httpadapter "todolist/internal/adapter/http"
	"todolist/internal/adapter/http/dto"
	"todolist/internal/adapter/http/handlers"
	"todolist/internal/adapter/http/middleware"
	"todolist/internal/adapter/password"
	"todolist/internal/adapter/session"
	appservice "todolist/internal/app/service"
	"todolist/pkg/apierrors"

	"github.com/gin-gonic/gin"
	"github.com/jmoiron/sqlx"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/stretchr/testify/suite"
	"golang.org/x/crypto/bcrypt"
)

const sessionCookieName = "todolist_session"

// APISuite drives the full router against a real database. Concrete suites
// provide the database through DB before calling setupRouter.
type APISuite struct {
	suite.Suite

	DB       *sqlx.DB
	router   *gin.Engine
	sessions *session.MemoryStore
	cookie   *http.Cookie
}

func (s *APISuite) setupRouter() {
	s.sessions = session.NewMemoryStore(0)
	s.T().Cleanup(func() { _ = s.sessions.Close() })

	authService := appservice.NewAuthService(
		dbadapter.NewUserRepository(s.DB),
		password.NewBcryptHasher(bcrypt.MinCost),
		s.sessions,
		appservice.SystemClock{},
		time.Hour,
	)
	taskService := appservice.NewTaskService(dbadapter.NewTaskRepository(s.DB), appservice.SystemClock{})

	registry := prometheus.NewRegistry()
	metrics := middleware.NewMetrics(registry)

	router := gin.New()
	router.Use(metrics.Middleware())
	httpadapter.RegisterRoutes(
		router,
		handlers.NewHealthHandler(s.DB, s.sessions),
		handlers.NewAuthHandler(authService, handlers.CookieConfig{Name: sessionCookieName, MaxAge: time.Hour}),
		handlers.NewTaskHandler(taskService),
		middleware.RequireAuth(authService, sessionCookieName),
	)
	httpadapter.RegisterMetricsRoute(router, gin.WrapH(promhttp.HandlerFor(registry, promhttp.HandlerOpts{})))

	s.router = router
	s.cookie = nil
}

func (s *APISuite) do(method, target, body string) *httptest.ResponseRecorder {
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, target, nil)
	} else {
		req = httptest.NewRequest(method, target, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	}
	if s.cookie != nil {
		req.AddCookie(s.cookie)
	}
	rec := httptest.NewRecorder()
	s.router.ServeHTTP(rec, req)
	return rec
}

func (s *APISuite) login(username string) {
	rec := s.do(http.MethodPost, "/api/register", `{"username":"`+username+`","password":"pa55word"}`)
	s.Require().Equal(http.StatusCreated, rec.Code, rec.Body.String())

	for _, c := range rec.Result().Cookies() {
		if c.Name == sessionCookieName {
			s.cookie = c
			return
		}
	}
	s.FailNow("register did not set a session cookie")
}

func (s *APISuite) createTodo(body string) dto.TodoItem {
	rec := s.do(http.MethodPost, "/api/todos", body)
	s.Require().Equal(http.StatusCreated, rec.Code, rec.Body.String())

	var item dto.TodoItem
	s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &item))
	return item
}

func (s *APISuite) listTodos(query string) []dto.TodoItem {
	rec := s.do(http.MethodGet, "/api/todos"+query, "")
	s.Require().Equal(http.StatusOK, rec.Code, rec.Body.String())

	var items []dto.TodoItem
	s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &items))
	return items
}

func (s *APISuite) decodeError(rec *httptest.ResponseRecorder) apierrors.JsonErr {
	var got apierrors.JsonErr
	s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &got))
	return got
}

func (s *APISuite) TestTodosRequireAuthentication() {
	for _, route := range []struct{ method, target string }{
		{http.MethodGet, "/api/todos"},
		{http.MethodPost, "/api/todos"},
		{http.MethodGet, "/api/todos/1"},
		{http.MethodPatch, "/api/todos/1"},
		{http.MethodDelete, "/api/todos/1"},
		{http.MethodPost, "/api/todos/1/toggle"},
	} {
		rec := s.do(route.method, route.target, "")
		s.Require().Equal(http.StatusUnauthorized, rec.Code, route.target)
		s.Require().JSONEq(`{"code":401,"message":"Authentication required"}`, rec.Body.String())
	}
}

func (s *APISuite) TestTodoLifecycle() {
	s.login("alice")

	s.Require().Empty(s.listTodos(""))

	created := s.createTodo(`{"title":"Buy milk","description":"2 liters","category":"personal"}`)
	s.Require().NotZero(created.ID)
	s.Require().Equal(created.CreatedAt, created.UpdatedAt)
	s.Require().Nil(created.CompletedAt)

	id := jsonID(created.ID)
	rec := s.do(http.MethodGet, "/api/todos/"+id, "")
	s.Require().Equal(http.StatusOK, rec.Code)
	var fetched dto.TodoItem
	s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &fetched))
	s.Require().Equal(created, fetched)

	rec = s.do(http.MethodPatch, "/api/todos/"+id, `{"title":"Buy oat milk","description":null}`)
	s.Require().Equal(http.StatusOK, rec.Code, rec.Body.String())
	var updated dto.TodoItem
	s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &updated))
	s.Require().Equal("Buy oat milk", updated.Title)
	s.Require().Nil(updated.Description)
	s.Require().Equal(created.CreatedAt, updated.CreatedAt)
	s.Require().Greater(parseStamp(s, updated.UpdatedAt), parseStamp(s, created.UpdatedAt))

	rec = s.do(http.MethodPost, "/api/todos/"+id+"/toggle", "")
	s.Require().Equal(http.StatusOK, rec.Code)
	var completed dto.TodoItem
	s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &completed))
	s.Require().NotNil(completed.CompletedAt)
	s.Require().Equal(completed.UpdatedAt, *completed.CompletedAt)

	rec = s.do(http.MethodPost, "/api/todos/"+id+"/toggle", "")
	s.Require().Equal(http.StatusOK, rec.Code)
	var reopened dto.TodoItem
	s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &reopened))
	s.Require().Nil(reopened.CompletedAt)
	s.Require().Greater(parseStamp(s, reopened.UpdatedAt), parseStamp(s, completed.UpdatedAt))

	rec = s.do(http.MethodDelete, "/api/todos/"+id, "")
	s.Require().Equal(http.StatusNoContent, rec.Code)

	rec = s.do(http.MethodGet, "/api/todos/"+id, "")
	s.Require().Equal(http.StatusNotFound, rec.Code)
	s.Require().Equal("Todo not found", s.decodeError(rec).Message)

	rec = s.do(http.MethodDelete, "/api/todos/"+id, "")
	s.Require().Equal(http.StatusNotFound, rec.Code)
}

func (s *APISuite) TestListFiltersAndSorts() {
	s.login("bob")

	report := s.createTodo(`{"title":"report","category":"work"}`)
	gym := s.createTodo(`{"title":"Gym","category":"personal"}`)
	email := s.createTodo(`{"title":"email","category":"work"}`)

	s.Require().Equal([]uint64{email.ID, gym.ID, report.ID}, itemIDs(s.listTodos("")))
	s.Require().Equal([]uint64{email.ID, report.ID}, itemIDs(s.listTodos("?category=work")))
	s.Require().Equal([]uint64{gym.ID}, itemIDs(s.listTodos("?category=personal")))
	s.Require().Equal([]uint64{report.ID, gym.ID, email.ID}, itemIDs(s.listTodos("?sort=oldest-first")))
	s.Require().Equal([]uint64{email.ID, gym.ID, report.ID}, itemIDs(s.listTodos("?sort=title")))

	rec := s.do(http.MethodPost, "/api/todos/"+jsonID(gym.ID)+"/toggle", "")
	s.Require().Equal(http.StatusOK, rec.Code)
	s.Require().Equal([]uint64{email.ID, report.ID, gym.ID}, itemIDs(s.listTodos("?sort=completion-status")))

	rec = s.do(http.MethodGet, "/api/todos?category=Work", "")
	s.Require().Equal(http.StatusBadRequest, rec.Code)
}

func (s *APISuite) TestCreateValidation() {
	s.login("carol")

	rec := s.do(http.MethodPost, "/api/todos", `{"title":"","category":"errands"}`)
	s.Require().Equal(http.StatusBadRequest, rec.Code)
	got := s.decodeError(rec)
	s.Require().Len(got.Fields, 2)
	s.Require().Contains(got.Message, "title is required")

	rec = s.do(http.MethodPatch, "/api/todos/abc", `{}`)
	s.Require().Equal(http.StatusBadRequest, rec.Code)
	s.Require().Equal("Invalid todo ID", s.decodeError(rec).Message)

	s.Require().Empty(s.listTodos(""))
}

func (s *APISuite) TestOutOfRangeIDsAreRejected() {
	s.login("erin")

	for _, id := range []string{"9223372036854775808", "18446744073709551615"} {
		for _, req := range []struct{ method, target, body string }{
			{http.MethodGet, "/api/todos/" + id, ""},
			{http.MethodPatch, "/api/todos/" + id, `{"title":"x"}`},
			{http.MethodDelete, "/api/todos/" + id, ""},
			{http.MethodPost, "/api/todos/" + id + "/toggle", ""},
		} {
			rec := s.do(req.method, req.target, req.body)
			s.Require().Equal(http.StatusBadRequest, rec.Code, "%s %s", req.method, req.target)
			s.Require().Equal("Invalid todo ID", s.decodeError(rec).Message)
		}
	}

	rec := s.do(http.MethodGet, "/api/todos/9223372036854775807", "")
	s.Require().Equal(http.StatusNotFound, rec.Code)
}

func (s *APISuite) TestAuthFlow() {
	rec := s.do(http.MethodGet, "/api/auth/user", "")
	s.Require().Equal(http.StatusUnauthorized, rec.Code)

	s.login("dave")

	rec = s.do(http.MethodPost, "/api/register", `{"username":"dave","password":"another"}`)
	s.Require().Equal(http.StatusBadRequest, rec.Code)
	s.Require().Equal("Username already exists", s.decodeError(rec).Message)

	rec = s.do(http.MethodGet, "/api/auth/user", "")
	s.Require().Equal(http.StatusOK, rec.Code)
	s.Require().JSONEq(`{"id":1,"username":"dave"}`, rec.Body.String())

	rec = s.do(http.MethodPost, "/api/auth/logout", "")
	s.Require().Equal(http.StatusOK, rec.Code)
	s.Require().JSONEq(`{"message":"Logged out successfully"}`, rec.Body.String())

	rec = s.do(http.MethodGet, "/api/todos", "")
	s.Require().Equal(http.StatusUnauthorized, rec.Code)

	s.cookie = nil
	rec = s.do(http.MethodPost, "/api/login", `{"username":"dave","password":"wrong"}`)
	s.Require().Equal(http.StatusUnauthorized, rec.Code)

	rec = s.do(http.MethodPost, "/api/auth/login", `{"username":"dave","password":"pa55word"}`)
	s.Require().Equal(http.StatusOK, rec.Code)
	s.Require().JSONEq(`{"id":1,"username":"dave"}`, rec.Body.String())
	s.Require().NotContains(rec.Body.String(), "password")
}

func (s *APISuite) TestHealthAndMetrics() {
	rec := s.do(http.MethodGet, "/api/health", "")
	s.Require().Equal(http.StatusOK, rec.Code)

	var basic handlers.HealthBasic
	s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &basic))
	s.Require().Equal(handlers.StatusOk, basic.Message)

	rec = s.do(http.MethodGet, "/api/health/report", "")
	s.Require().Equal(http.StatusOK, rec.Code)
	var report handlers.HealthAdvanced
	s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &report))
	s.Require().Equal(handlers.StatusOk, report.Status.Database)
	s.Require().Equal(handlers.StatusOk, report.Status.Sessions)
	s.Require().Equal(s.DB.DriverName(), report.Status.Driver)

	rec = s.do(http.MethodGet, "/metrics", "")
	s.Require().Equal(http.StatusOK, rec.Code)
	s.Require().Contains(rec.Body.String(), `todolist_http_requests_total{method="GET",route="/api/health",status="200"} 1`)
}

func jsonID(id uint64) string {
	raw, _ := json.Marshal(id)
	return string(raw)
}

func itemIDs(items []dto.TodoItem) []uint64 {
	out := make([]uint64, 0, len(items))
	for _, item := range items {
		out = append(out, item.ID)
	}
	return out
}

func parseStamp(s *APISuite, value string) int64 {
	parsed, err := time.Parse(time.RFC3339Nano, value)
	s.Require().NoError(err)
	return parsed.UnixNano()
}
