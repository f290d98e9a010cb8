package server

import (
	"fmt"
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

// NewRouter wires the API routes and middleware around a handler.
func NewRouter(h *Handler) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(cors())
	r.Use(logger())
	r.Use(h.countRequests())

	api := r.Group("/api/v1")
	{
		api.POST("/plan-trip", h.PlanTrip)
		api.POST("/intelligence-analysis", h.IntelligenceAnalysis)
		api.GET("/health", h.Health)
	}
	return r
}

// Run starts the HTTP server.
func Run(h *Handler, host string, port int) error {
	r := NewRouter(h)
	addr := fmt.Sprintf("%s:%d", host, port)
	log.Printf("listening on %s", addr)
	return r.Run(addr)
}

func cors() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")

		if c.Request.Method == http.MethodOptions {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}

		c.Next()
	}
}

func logger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		path := c.Request.URL.Path

		c.Next()

		log.Printf("[%s] %s %s %d %v %s",
			c.Request.Method,
			path,
			c.ClientIP(),
			c.Writer.Status(),
			time.Since(start),
			c.Errors.String(),
		)
	}
}
