package main

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"

	"lg/diet-tracker-api/docs"
)

// Handler holds shared dependencies (store, logger, config) for all route handlers.
type Handler struct {
	store     store
	log       *zap.Logger
	tokens    tokenIssuer
	metrics   *metrics
	estimator *nutritionEstimator
}

func newHandler(cfg config, st store, log *zap.Logger) *Handler {
	m := newMetrics()
	return &Handler{
		store:     st,
		log:       log,
		tokens:    newTokenIssuer(cfg.JWTSecret, cfg.TokenTTL),
		metrics:   m,
		estimator: newNutritionEstimator(cfg, log),
	}
}

// errorResponse documents the {"error": "..."} body written by apiError.
type errorResponse struct {
	Error string `json:"error" example:"diet entry not found"`
}

/* ─── Request helpers ─────────────────────────────────────────────────── */

// idParam parses the :id path parameter. On failure it has already written
// a 400 response.
func idParam(c *gin.Context) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		apiError(c, http.StatusBadRequest, "invalid id")
		return uuid.Nil, false
	}
	return id, true
}

// checkDateRange validates a pair of YYYY-MM-DD bounds.
func checkDateRange(start, end string) error {
	if _, err := time.Parse(dateLayout, start); err != nil {
		return badRequest("invalid start, expected YYYY-MM-DD")
	}
	if _, err := time.Parse(dateLayout, end); err != nil {
		return badRequest("invalid end, expected YYYY-MM-DD")
	}
	// Same-length ISO dates compare correctly as strings.
	if start > end {
		return badRequest("start must not be after end")
	}
	return nil
}

/* ─── Server setup ────────────────────────────────────────────────────── */

// newDBPool creates a connection pool. We use a pool (not a single conn) because
// hosted Postgres providers close idle connections after a few minutes.
func newDBPool(ctx context.Context, dbURL string) (*pgxpool.Pool, error) {
	cfg, err := pgxpool.ParseConfig(dbURL)
	if err != nil {
		return nil, fmt.Errorf("parse DB URL: %w", err)
	}
	// Use simple query protocol to avoid "cached plan must not change result type"
	// errors from server-side prepared statement caches after schema changes.
	cfg.ConnConfig.DefaultQueryExecMode = pgx.QueryExecModeSimpleProtocol
	pool, err := pgxpool.NewWithConfig(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("connect to database: %w", err)
	}
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("ping database: %w", err)
	}
	return pool, nil
}

// newRouter builds the gin engine with logging, metrics and recovery.
func (h *Handler) newRouter() *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery(), requestLogger(h.log), h.metrics.middleware())
	_ = router.SetTrustedProxies(nil)
	h.registerRoutes(router)
	return router
}

// registerRoutes registers all API routes on the router.
func (h *Handler) registerRoutes(router *gin.Engine) {
	// Public routes
	router.GET("/healthz", h.health)
	router.GET("/metrics", h.metrics.handler())
	router.GET("/api/docs/doc.json", h.apiDocs)
	router.POST("/api/login", h.login)

	// Authenticated routes
	api := router.Group("/api", h.authMiddleware())
	api.GET("/diet", h.listDietEntries)
	api.POST("/diet", h.createDietEntry)
	api.GET("/diet/summary", h.getNutritionSummary)
	api.GET("/diet/daily", h.getDailyLog)
	api.POST("/diet/estimate", h.estimateDietEntry)
	api.GET("/diet/:id", h.getDietEntry)
	api.PUT("/diet/:id", h.updateDietEntry)
	api.DELETE("/diet/:id", h.deleteDietEntry)

	api.GET("/goals", h.listGoals)
	api.POST("/goals", h.createGoal)
	api.GET("/goals/recommended", h.getRecommendedGoal)
	api.GET("/goals/:id", h.getGoal)
	api.PUT("/goals/:id", h.updateGoal)
	api.DELETE("/goals/:id", h.deleteGoal)
	api.GET("/goals/:id/progress", h.getGoalProgress)

	api.GET("/sleep", h.listSleepRecords)
	api.POST("/sleep", h.upsertSleepRecord)
	api.PUT("/sleep/:id", h.updateSleepRecord)
	api.DELETE("/sleep/:id", h.deleteSleepRecord)

	api.GET("/profile", h.getProfile)
	api.PATCH("/profile", h.patchProfile)
}

// health reports whether the database answers.
//
//	@Summary	Health check
//	@Tags		ops
//	@Produce	json
//	@Success	200	{object}	map[string]string
//	@Failure	503	{object}	errorResponse
//	@Router		/healthz [get]
func (h *Handler) health(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
	defer cancel()
	if err := h.store.Ping(ctx); err != nil {
		h.log.Warn("health check failed", zap.Error(err))
		apiError(c, http.StatusServiceUnavailable, "database unavailable")
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// apiDocs serves the swagger document registered by the docs package.
func (h *Handler) apiDocs(c *gin.Context) {
	c.Data(http.StatusOK, "application/json; charset=utf-8", []byte(docs.SwaggerInfo.ReadDoc()))
}
