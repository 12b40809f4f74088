package main

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/eftil/sudoku-core/engine"
)

// RegisterRoutes wires the solve, true-candidates, and health endpoints
// onto r, delegating all solving work to e.
func RegisterRoutes(r *gin.Engine, e *engine.Engine) {
	r.GET("/health", healthHandler)
	r.POST("/solve", solveHandler(e))
	r.POST("/true-candidates", trueCandidatesHandler(e))
}

func healthHandler(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

func solveHandler(e *engine.Engine) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req solveRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		specs, err := toSpecs(req.Constraints)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		ctx, cancel := requestContext(c)
		defer cancel()

		result, err := e.Solve(ctx, req.toNumBoard(), specs, nil)
		if err != nil {
			writeSolveError(c, err)
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"status":            "solved",
			"curr_puzzle_board": result,
		})
	}
}

func trueCandidatesHandler(e *engine.Engine) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req solveRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		specs, err := toSpecs(req.Constraints)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		ctx, cancel := requestContext(c)
		defer cancel()

		tuf, err := e.TrueCandidates(ctx, req.toNumBoard(), specs, nil)
		if err != nil {
			writeSolveError(c, err)
			return
		}

		c.JSON(http.StatusOK, newTufResponse(*tuf))
	}
}

// requestContext derives a context from c bound to the request's lifetime,
// additionally deadlined by a ?timeout=<duration> query parameter when
// present (e.g. "?timeout=2s").
func requestContext(c *gin.Context) (context.Context, context.CancelFunc) {
	if raw := c.Query("timeout"); raw != "" {
		if d, err := time.ParseDuration(raw); err == nil {
			return context.WithTimeout(c.Request.Context(), d)
		}
	}
	return context.WithCancel(c.Request.Context())
}

func writeSolveError(c *gin.Context, err error) {
	var incompatible *engine.IncompatiblePuzzleError
	var tooLarge *engine.ConstraintTooLargeError
	var domainErr *engine.DomainError

	switch {
	case errors.As(err, &incompatible):
		c.JSON(http.StatusUnprocessableEntity, gin.H{"status": "incompatible_puzzle", "error": err.Error()})
	case errors.As(err, &tooLarge):
		c.JSON(http.StatusBadRequest, gin.H{"status": "constraint_too_large", "error": err.Error()})
	case errors.As(err, &domainErr):
		c.JSON(http.StatusBadRequest, gin.H{"status": "domain_error", "error": err.Error()})
	case errors.Is(err, engine.ErrUnsatisfiable):
		c.JSON(http.StatusOK, gin.H{"status": "unsolvable"})
	case errors.Is(err, engine.ErrCancelled):
		c.JSON(http.StatusGatewayTimeout, gin.H{"status": "cancelled", "error": err.Error()})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"status": "error", "error": err.Error()})
	}
}
