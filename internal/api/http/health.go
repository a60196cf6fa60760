package http

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"

	"github.com/mhdatheek136/branfern/internal/sanity"
)

type ContentStoreHealth struct {
	ProjectID    string  `json:"projectId"`
	Dataset      string  `json:"dataset"`
	WriteEnabled bool    `json:"writeEnabled"`
	Queries      int64   `json:"queries"`
	Mutations    int64   `json:"mutations"`
	ErrorRate    float64 `json:"errorRate"`
	AvgLatencyMs float64 `json:"avgLatencyMs"`
}

type HealthResponse struct {
	Status       string             `json:"status"`
	Timestamp    time.Time          `json:"timestamp"`
	Service      string             `json:"service"`
	Version      string             `json:"version"`
	Redis        string             `json:"redis"`
	DB           string             `json:"db,omitempty"`
	ContentStore ContentStoreHealth `json:"contentStore"`
}

type HealthHandler struct {
	serviceName string
	version     string
	content     *sanity.Client
	redis       *redis.Client
	db          *pgxpool.Pool
}

// NewHealthHandler builds the health handler. redis and db may be nil.
func NewHealthHandler(serviceName, version string, content *sanity.Client, rdb *redis.Client, db *pgxpool.Pool) *HealthHandler {
	return &HealthHandler{
		serviceName: serviceName,
		version:     version,
		content:     content,
		redis:       rdb,
		db:          db,
	}
}

func (h *HealthHandler) HealthCheck(c *gin.Context) {
	pingCtx, cancel := context.WithTimeout(c.Request.Context(), 1*time.Second)
	defer cancel()

	redisStatus := "disabled"
	if h.redis != nil {
		if err := h.redis.Ping(pingCtx).Err(); err != nil {
			redisStatus = "down"
		} else {
			redisStatus = "up"
		}
	}

	dbStatus := "disabled"
	if h.db != nil {
		if err := h.db.Ping(pingCtx); err != nil {
			dbStatus = "down"
		} else {
			dbStatus = "up"
		}
	}

	// pages still render from defaults when a dependency is down
	status := "healthy"
	if redisStatus == "down" || dbStatus == "down" {
		status = "degraded"
	}

	m := sanity.GetMetrics()
	store := ContentStoreHealth{
		Queries:      m.QueryCalls(),
		Mutations:    m.MutationCalls(),
		ErrorRate:    m.ErrorRate(),
		AvgLatencyMs: m.AverageLatency(),
	}
	if h.content != nil {
		store.ProjectID = h.content.ProjectID()
		store.Dataset = h.content.Dataset()
		store.WriteEnabled = h.content.HasToken()
	}

	c.JSON(http.StatusOK, HealthResponse{
		Status:       status,
		Timestamp:    time.Now().UTC(),
		Service:      h.serviceName,
		Version:      h.version,
		Redis:        redisStatus,
		DB:           dbStatus,
		ContentStore: store,
	})
}

func (h *HealthHandler) RegisterRoutes(r gin.IRouter) {
	r.GET("/health", h.HealthCheck)
	r.GET("/healthz", h.HealthCheck)
}
