package router

import (
	"log/slog"
	"net/http"
	"strings"

	"github.com/gin-contrib/gzip"
	"github.com/gin-gonic/gin"

	"github.com/rmehra/stitchbook/internal/config"
	"github.com/rmehra/stitchbook/internal/server/http/handlers"
	"github.com/rmehra/stitchbook/internal/server/http/middleware"
)

// Setup configures gin router with handlers and middleware.
func Setup(facade handlers.ReceiptFacade, logger *slog.Logger, cfg *config.Config) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	engine := gin.New()

	engine.Use(gin.Recovery())
	engine.Use(middleware.RequestLogger(logger))
	engine.Use(middleware.CORS(cfg.CORSOrigins))
	engine.Use(middleware.DecompressRequest())
	engine.Use(gzip.Gzip(gzip.DefaultCompression))

	receiptHandler := handlers.NewReceiptHandler(facade)

	api := engine.Group("/api")
	api.GET("/next-receipt-number", receiptHandler.NextNumber)
	api.POST("/receipts", receiptHandler.Create)
	api.GET("/receipts", receiptHandler.List)
	api.GET("/receipts/:id", receiptHandler.Get)

	if cfg.StaticDir != "" {
		fileServer := http.FileServer(http.Dir(cfg.StaticDir))
		engine.NoRoute(func(c *gin.Context) {
			if strings.HasPrefix(c.Request.URL.Path, "/api/") {
				c.Status(http.StatusNotFound)
				return
			}
			fileServer.ServeHTTP(c.Writer, c.Request)
		})
	}

	return engine
}
