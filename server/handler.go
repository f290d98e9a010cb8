package server

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/atomic"

	"github.com/voyagent/voyagent/travel"
)

// Planner is the planning surface the handlers call.
type Planner interface {
	Plan(ctx context.Context, query *travel.TripQuery) (*travel.Itinerary, error)
	PlanWithIntelligence(ctx context.Context, query *travel.TripQuery) (*travel.TripPlan, error)
	Intelligence(ctx context.Context, query *travel.TripQuery, kind travel.Kind) (*travel.Intelligence, error)
}

// Handler holds the planner and the health counters.
type Handler struct {
	planner   Planner
	startedAt time.Time
	requests  *atomic.Int64
}

// NewHandler creates an API handler around a planner.
func NewHandler(planner Planner) *Handler {
	return &Handler{
		planner:   planner,
		startedAt: time.Now(),
		requests:  atomic.NewInt64(0),
	}
}

func (h *Handler) countRequests() gin.HandlerFunc {
	return func(c *gin.Context) {
		h.requests.Inc()
		c.Next()
	}
}

// PlanTripRequest is the body of POST /api/v1/plan-trip.
type PlanTripRequest struct {
	Origin             string   `json:"origin" binding:"required"`
	Destination        string   `json:"destination" binding:"required"`
	StartDate          string   `json:"start_date" binding:"required"`
	EndDate            string   `json:"end_date" binding:"required"`
	Interests          []string `json:"interests"`
	Language           string   `json:"language"`
	EnableIntelligence bool     `json:"enable_intelligence"`
}

func (r PlanTripRequest) query() *travel.TripQuery {
	return &travel.TripQuery{
		Origin:      r.Origin,
		Destination: r.Destination,
		StartDate:   r.StartDate,
		EndDate:     r.EndDate,
		Interests:   r.Interests,
		Language:    r.Language,
	}
}

// IntelligenceRequest is the body of POST /api/v1/intelligence-analysis.
type IntelligenceRequest struct {
	PlanTripRequest
	IntelligenceType string `json:"intelligence_type" binding:"required"`
}

// PlanTrip handles POST /api/v1/plan-trip
func (h *Handler) PlanTrip(c *gin.Context) {
	var req PlanTripRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"status": "error", "error": err.Error()})
		return
	}
	query := req.query()
	if err := query.Validate(); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"status": "error", "error": err.Error()})
		return
	}
	if req.EnableIntelligence {
		plan, err := h.planner.PlanWithIntelligence(c.Request.Context(), query)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"status": "error", "error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, gin.H{
			"status":       "success",
			"message":      "trip planned",
			"itinerary":    plan.Itinerary,
			"intelligence": plan.Intelligence,
		})
		return
	}
	itinerary, err := h.planner.Plan(c.Request.Context(), query)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"status": "error", "error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"status":    "success",
		"message":   "trip planned",
		"itinerary": itinerary,
	})
}

// IntelligenceAnalysis handles POST /api/v1/intelligence-analysis
func (h *Handler) IntelligenceAnalysis(c *gin.Context) {
	var req IntelligenceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"status": "error", "error": err.Error()})
		return
	}
	kind, err := travel.ParseKind(req.IntelligenceType)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"status": "error", "error": err.Error()})
		return
	}
	query := req.query()
	if err := query.Validate(); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"status": "error", "error": err.Error()})
		return
	}
	intel, err := h.planner.Intelligence(c.Request.Context(), query, kind)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"status": "error", "error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"status":       "success",
		"message":      "analysis complete",
		"intelligence": intel,
	})
}

// Health handles GET /api/v1/health
func (h *Handler) Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":    "healthy",
		"timestamp": time.Now().UTC().Format(time.RFC3339),
		"uptime":    time.Since(h.startedAt).String(),
		"requests":  h.requests.Load(),
	})
}
