package api

import (
	"github.com/gin-contrib/requestid"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	swaggerfiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"github.com/vietanh2810/eventhub/docs"
	v1 "github.com/vietanh2810/eventhub/internal/api/handler/v1"
	"github.com/vietanh2810/eventhub/internal/api/middleware"
	"github.com/vietanh2810/eventhub/internal/clock"
	"github.com/vietanh2810/eventhub/internal/config"
	"github.com/vietanh2810/eventhub/internal/service"
)

type Server struct {
	Config *config.AppConfig
	Router *gin.Engine
}

// Handlers groups the v1 handlers the router mounts.
type Handlers struct {
	Account       *v1.AccountHandler
	Catalog       *v1.CatalogHandler
	Ticket        *v1.TicketHandler
	Transfer      *v1.TransferHandler
	Collaboration *v1.CollaborationHandler
	Review        *v1.ReviewHandler
	Notification  *v1.NotificationHandler
}

// NewHandlers builds every handler over one store.
func NewHandlers(store service.Store, clk clock.Clock) Handlers {
	return Handlers{
		Account:       v1.NewAccountHandler(service.NewAccountService(store)),
		Catalog:       v1.NewCatalogHandler(service.NewCatalogService(store)),
		Ticket:        v1.NewTicketHandler(service.NewTicketService(store, clk)),
		Transfer:      v1.NewTransferHandler(service.NewTransferService(store, clk)),
		Collaboration: v1.NewCollaborationHandler(service.NewCollaborationService(store, clk)),
		Review:        v1.NewReviewHandler(service.NewReviewService(store, clk)),
		Notification:  v1.NewNotificationHandler(service.NewNotificationService(store, clk)),
	}
}

func NewServer(conf *config.AppConfig, store service.Store, clk clock.Clock) *Server {
	gin.SetMode(conf.Gin.Mode)
	engine := gin.New()

	s := &Server{
		Config: conf,
		Router: engine,
	}

	s.MountMiddlewares()
	s.MountHandlers(NewHandlers(store, clk))

	return s
}

func (s *Server) MountMiddlewares() {
	// Logger and Recovery are needed unless we use gin.Default().
	s.Router.Use(gin.Logger())
	s.Router.Use(gin.Recovery())
	s.Router.Use(requestid.New())
	s.Router.Use(middleware.ConfigCORS(s.Config.API.AllowedCORSDomains))
}

func (s *Server) MountHandlers(h Handlers) {
	const basePath = "/api/v1"

	accounts := s.Router.Group(basePath)
	{
		accounts.POST("/accounts/register", h.Account.HandleRegister)
		accounts.POST("/accounts/login", h.Account.HandleLogin)
	}

	api := s.Router.Group(basePath, middleware.Identify())
	{
		api.GET("/users/:userID", h.Account.HandleGetUser)
		api.GET("/me/credit", h.Account.HandleGetCredit)

		api.GET("/events", h.Catalog.HandleListEvents)
		api.POST("/events", h.Catalog.HandleCreateEvent)
		api.GET("/events/:eventID", h.Catalog.HandleGetEvent)
		api.GET("/services", h.Catalog.HandleListServices)
		api.POST("/services", h.Catalog.HandleCreateService)

		api.POST("/events/:eventID/tickets/purchase", h.Ticket.HandlePurchase)
		api.POST("/events/:eventID/tickets/refund", h.Ticket.HandleRefund)
		api.GET("/tickets", h.Ticket.HandleListTickets)
		api.GET("/tickets/:ticketID/qr", h.Ticket.HandleTicketQRCode)

		api.POST("/events/:eventID/transfers", h.Transfer.HandleRequestTransfer)
		api.POST("/transfers/:requestID/respond", h.Transfer.HandleRespondTransfer)
		api.GET("/transfers", h.Transfer.HandleListTransfers)

		api.POST("/events/:eventID/collaborations", h.Collaboration.HandleRequestCollaboration)
		api.POST("/collaborations/:requestID/respond", h.Collaboration.HandleRespondCollaboration)
		api.GET("/collaborations", h.Collaboration.HandleListCollaborations)
		api.POST("/services/:serviceID/complete", h.Collaboration.HandleCompleteService)

		api.POST("/events/:eventID/reviews", h.Review.HandleReviewEvent)
		api.GET("/events/:eventID/reviews", h.Review.HandleListEventReviews)
		api.POST("/events/:eventID/vendors/:vendorID/reviews", h.Review.HandleReviewVendor)
		api.GET("/vendors/:vendorID/reviews", h.Review.HandleListVendorReviews)

		api.GET("/notifications", h.Notification.HandleListNotifications)
		api.POST("/notifications", h.Notification.HandleAddNotification)
		api.POST("/notifications/:notificationID/read", h.Notification.HandleMarkRead)
	}

	s.Router.GET("/", v1.HandleHealthcheck)
	s.Router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	// Setup Swagger UI.
	docs.SwaggerInfo.Host = s.Config.API.BaseURL
	docs.SwaggerInfo.BasePath = basePath
	docs.SwaggerInfo.Title = "EventHub local API"
	docs.SwaggerInfo.Description = "Local bridge between the desktop shell and the ticketing core."
	docs.SwaggerInfo.Version = "1.0"
	s.Router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerfiles.Handler))
}
