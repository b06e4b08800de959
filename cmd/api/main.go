package main

import (
	"log"
	"net/http"

	"github.com/BruksfildServices01/studio-site/internal/config"
	dbpkg "github.com/BruksfildServices01/studio-site/internal/db"
	"github.com/BruksfildServices01/studio-site/internal/middleware"
	"github.com/BruksfildServices01/studio-site/internal/routes"
	"github.com/gin-gonic/gin"
)

func main() {

	cfg := config.Load()
	db := dbpkg.NewDB(cfg)

	if err := dbpkg.SeedDefaultAdmin(db); err != nil {
		log.Fatalf("failed to seed admin user: %v", err)
	}

	r := gin.Default()

	r.Use(middleware.CORSMiddleware())

	r.LoadHTMLGlob("web/templates/*.html")

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	routes.RegisterRoutes(r, db, cfg)

	log.Printf("Server running on %s", cfg.Addr())
	if err := r.Run(cfg.Addr()); err != nil {
		log.Fatalf("failed to start server: %v", err)
	}
}
