package handlers

import (
	"context"
	"net/http"
	"os"
	"time"

	"todolist/internal/adapter/http/middleware"

	"github.com/gin-gonic/gin"
	"github.com/jmoiron/sqlx"
)

const (
	StatusOk           = "ok"
	StatusDown         = "down"
	healthCheckTimeout = 2 * time.Second
	healthTimeLayout   = "2006-01-02 15:04:05"
	defaultAppVersion  = "dev"
)

// Pinger is satisfied by the session stores.
type Pinger interface {
	Ping(ctx context.Context) error
}

type HealthBasic struct {
	AppName           string `json:"app_name"`
	AppVersion        string `json:"app_version"`
	CurrentSystemTime string `json:"current_system_time"`
	Message           string `json:"message"`
}

type HealthServices struct {
	Database string `json:"database"`
	Driver   string `json:"driver"`
	Sessions string `json:"sessions"`
}

type HealthAdvanced struct {
	AppName           string         `json:"app_name"`
	AppVersion        string         `json:"app_version"`
	CurrentSystemTime string         `json:"current_system_time"`
	Language          string         `json:"language"`
	Status            HealthServices `json:"status"`
}

type HealthHandler struct {
	db       *sqlx.DB
	sessions Pinger
}

func NewHealthHandler(db *sqlx.DB, sessions Pinger) *HealthHandler {
	return &HealthHandler{db: db, sessions: sessions}
}

// CheckHealth answers 500 when the database is unreachable.
func (h *HealthHandler) CheckHealth(c *gin.Context) {
	statusCode := http.StatusOK
	message := StatusOk

	if !h.pingDatabase(c.Request.Context()) {
		statusCode = http.StatusInternalServerError
		message = StatusDown
	}

	c.JSON(statusCode, HealthBasic{
		AppName:           os.Getenv("APP_NAME"),
		AppVersion:        getAppVersion(),
		CurrentSystemTime: time.Now().UTC().Format(healthTimeLayout),
		Message:           message,
	})
}

func (h *HealthHandler) CheckHealthReport(c *gin.Context) {
	ctx := c.Request.Context()

	services := HealthServices{Database: StatusDown, Sessions: StatusDown}
	if h.db != nil {
		services.Driver = h.db.DriverName()
	}
	if h.pingDatabase(ctx) {
		services.Database = StatusOk
	}
	if h.pingSessions(ctx) {
		services.Sessions = StatusOk
	}

	c.JSON(http.StatusOK, HealthAdvanced{
		AppName:           os.Getenv("APP_NAME"),
		AppVersion:        getAppVersion(),
		CurrentSystemTime: time.Now().UTC().Format(healthTimeLayout),
		Language:          middleware.GetLang(c),
		Status:            services,
	})
}

func (h *HealthHandler) pingDatabase(ctx context.Context) bool {
	if h.db == nil {
		return false
	}
	timeoutCtx, cancel := context.WithTimeout(ctx, healthCheckTimeout)
	defer cancel()
	return h.db.PingContext(timeoutCtx) == nil
}

func (h *HealthHandler) pingSessions(ctx context.Context) bool {
	if h.sessions == nil {
		return false
	}
	timeoutCtx, cancel := context.WithTimeout(ctx, healthCheckTimeout)
	defer cancel()
	return h.sessions.Ping(timeoutCtx) == nil
}

func getAppVersion() string {
	version := os.Getenv("APP_VERSION")
	if version == "" {
		return defaultAppVersion
	}
	return version
}
