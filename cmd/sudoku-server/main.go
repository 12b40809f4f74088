// Command sudoku-server exposes the solving engine over HTTP, reading its
// port and log level from the process environment.
package main

import (
	"os"

	"github.com/gin-gonic/gin"

	"github.com/eftil/sudoku-core/config"
	"github.com/eftil/sudoku-core/engine"
	"github.com/eftil/sudoku-core/logging"
)

func main() {
	if lvl := os.Getenv("LOG_LEVEL"); lvl != "" {
		if parsed, ok := parseLevel(lvl); ok {
			logging.SetLevel(parsed)
		}
	}

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	e := engine.New(config.Default())

	r := gin.Default()
	RegisterRoutes(r, e)

	logging.Info("sudoku-server listening on :%s", port)
	if err := r.Run(":" + port); err != nil {
		logging.Error("server exited: %v", err)
		os.Exit(1)
	}
}

func parseLevel(s string) (logging.Level, bool) {
	switch s {
	case "debug":
		return logging.DEBUG, true
	case "info":
		return logging.INFO, true
	case "warn":
		return logging.WARN, true
	case "error":
		return logging.ERROR, true
	default:
		return 0, false
	}
}
