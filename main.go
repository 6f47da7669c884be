package main

import (
	"log"

	"github.com/dead-or-play/gate-go/config"
	"github.com/dead-or-play/gate-go/db"
	_ "github.com/dead-or-play/gate-go/docs"
	"github.com/dead-or-play/gate-go/middleware"
	"github.com/dead-or-play/gate-go/routes"
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// @title						Gate Ticketing API
// @description				Entry tickets, affiliate redirect callbacks and credential login for the game gate.
// @BasePath					/
// @securityDefinitions.apikey	BearerAuth
// @in							header
// @name						Authorization
func main() {
	config.LoadConfig()
	middleware.Init()
	db.Init()

	r := gin.Default()
	r.Use(middleware.CORSMiddleware())

	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	routes.RegisterRoutes(r)

	if err := r.Run(":" + config.ServerPort); err != nil {
		log.Fatal("Failed to start server:", err)
	}
}
