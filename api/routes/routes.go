package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"example.com/travelagency/api/handlers"
	"example.com/travelagency/api/middleware"
	"example.com/travelagency/internal/admin"
	"example.com/travelagency/internal/service"
)

// SetupRoutes sets up all the routes for the server
func SetupRoutes(r *gin.Engine, svc service.Service, registry *admin.Registry, lookup middleware.PrincipalLookup, log *logrus.Logger) {
	// Health check
	r.GET("/health", handlers.HealthCheck)

	// API routes
	api := r.Group("/api/v1")

	// Client routes
	clientHandler := handlers.NewClientHandler(svc, log)
	clients := api.Group("/client")
	{
		clients.POST("", clientHandler.CreateClient)
		clients.GET("", clientHandler.ListClients)
		clients.GET("/:id", clientHandler.GetClient)
		clients.PUT("/:id", clientHandler.ReplaceClient)
		clients.PATCH("/:id", clientHandler.UpdateClient)
		clients.DELETE("/:id", clientHandler.DeleteClient)
	}

	// Passport routes
	passportHandler := handlers.NewPassportHandler(svc, log)
	passports := api.Group("/passport")
	{
		passports.POST("", passportHandler.CreatePassport)
		passports.GET("", passportHandler.ListPassports)
		passports.GET("/:id", passportHandler.GetPassport)
		passports.PUT("/:id", passportHandler.ReplacePassport)
		passports.PATCH("/:id", passportHandler.UpdatePassport)
		passports.DELETE("/:id", passportHandler.DeletePassport)
	}

	// Back-office routes, every entity behind staff auth
	adminHandler := handlers.NewAdminHandler(registry, log)
	settlementHandler := handlers.NewSettlementHandler(svc, log)
	adm := r.Group("/admin", middleware.StaffAuth(lookup, log))
	{
		adm.GET("", adminHandler.ListEntities)
		adm.GET("/:entity", adminHandler.List)
		adm.POST("/:entity", adminHandler.Create)
		adm.GET("/:entity/:id", adminHandler.Get)
		adm.PUT("/:entity/:id", adminHandler.Replace)
		adm.PATCH("/:entity/:id", adminHandler.Update)
		adm.DELETE("/:entity/:id", adminHandler.Delete)

		// Payment lifecycle actions
		adm.POST("/:entity/:id/settle", settlementHandler.SettlePayment)
		adm.POST("/:entity/:id/voucher", settlementHandler.IssueVoucher)
	}
}
