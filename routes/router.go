package routes

import (
	"github.com/dead-or-play/gate-go/handlers"
	"github.com/dead-or-play/gate-go/middleware"
	"github.com/dead-or-play/gate-go/repositories"
	"github.com/dead-or-play/gate-go/services"
	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.Engine) {

	// init
	repos_instance := repositories.New()
	services_instance := services.New(repos_instance)
	handlers_instance := handlers.New(services_instance)

	// setup
	gate := r.Group("/gate")
	{
		gate.POST("/create", handlers_instance.Gate.CreateTicket)
		gate.GET("/callback", handlers_instance.Gate.Callback)
		gate.POST("/register", handlers_instance.Gate.Register)
		gate.POST("/login", handlers_instance.Gate.Login)
	}

	admin := r.Group("/admin")
	{
		admin.POST("/login", handlers_instance.Admin.Login)
		admin.GET("/tickets", middleware.JWTAuthMiddleware(), handlers_instance.Admin.ListTickets)
	}
}
