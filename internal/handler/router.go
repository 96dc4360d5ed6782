package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"reservation-management/internal/handler/api"
	"reservation-management/internal/handler/middleware"
	"reservation-management/internal/pkg/config"
)

type route struct {
	Method  string
	Path    string
	Handler gin.HandlerFunc
	Mw      []gin.HandlerFunc
}

func NewRouter(
	engine *gin.Engine,
	cfg config.Config,
	customerHandler *api.CustomerHandler,
	roomHandler *api.RoomHandler,
	reservationHandler *api.ReservationHandler,
	actorMiddleware *middleware.ActorMiddleware,
) {
	setupMiddleware(engine, cfg, actorMiddleware)
	setupRoutes(engine, customerHandler, roomHandler, reservationHandler)
}

func setupMiddleware(engine *gin.Engine, cfg config.Config, actorMiddleware *middleware.ActorMiddleware) {
	// Recovery must be first (outermost) to catch panics from all other middleware
	engine.Use(middleware.CustomRecovery())
	engine.Use(middleware.NewCORSMiddleware(cfg.CORS))
	engine.Use(middleware.NewLogger(cfg.Log).LoggingMiddleware())
	engine.Use(middleware.ErrorHandler())
	engine.Use(actorMiddleware.Resolve())
}

func setupRoutes(
	engine *gin.Engine,
	customerHandler *api.CustomerHandler,
	roomHandler *api.RoomHandler,
	reservationHandler *api.ReservationHandler,
) {
	engine.GET("/health", healthCheck)

	if gin.Mode() == gin.DebugMode {
		engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	apiGroup := engine.Group("/api")
	{
		customers := apiGroup.Group("/customers")
		{
			addRoutes(customers, []route{
				{Method: http.MethodPost, Path: "", Handler: customerHandler.CreateCustomer},
				{Method: http.MethodGet, Path: "", Handler: customerHandler.ListCustomers},
				{Method: http.MethodGet, Path: "/:id", Handler: customerHandler.GetCustomer},
				{Method: http.MethodPut, Path: "/:id", Handler: customerHandler.UpdateCustomer},
				{Method: http.MethodDelete, Path: "/:id", Handler: customerHandler.DeleteCustomer},
			})
		}

		rooms := apiGroup.Group("/rooms")
		{
			addRoutes(rooms, []route{
				{Method: http.MethodPost, Path: "", Handler: roomHandler.CreateRoom},
				{Method: http.MethodGet, Path: "", Handler: roomHandler.ListRooms},
				{Method: http.MethodGet, Path: "/:id", Handler: roomHandler.GetRoom},
				{Method: http.MethodPut, Path: "/:id", Handler: roomHandler.UpdateRoom},
				{Method: http.MethodDelete, Path: "/:id", Handler: roomHandler.DeleteRoom},
			})
		}

		reservations := apiGroup.Group("/reservations")
		{
			addRoutes(reservations, []route{
				{Method: http.MethodPost, Path: "", Handler: reservationHandler.CreateReservation},
				{Method: http.MethodGet, Path: "", Handler: reservationHandler.ListReservations},
				{Method: http.MethodGet, Path: "/search", Handler: reservationHandler.SearchReservations},
				{Method: http.MethodGet, Path: "/customer/:id", Handler: reservationHandler.ListByCustomer},
				{Method: http.MethodGet, Path: "/room/:id", Handler: reservationHandler.ListByRoom},
				{Method: http.MethodGet, Path: "/:id", Handler: reservationHandler.GetReservation},
				{Method: http.MethodPut, Path: "/:id", Handler: reservationHandler.UpdateReservation},
				{Method: http.MethodDelete, Path: "/:id", Handler: reservationHandler.DeleteReservation},
			})
		}
	}
}

// @Summary Health check
// @Description Check if the service is healthy
// @Tags health
// @Produce json
// @Success 200 {object} map[string]string
// @Router /health [get]
func healthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "ok",
		"message": "Service is healthy",
	})
}

func addRoutes(g *gin.RouterGroup, rs []route) {
	for _, r := range rs {
		h := r.Handler
		if len(r.Mw) > 0 {
			h = chainHandlers(append(r.Mw, r.Handler)...)
		}
		switch r.Method {
		case http.MethodGet:
			g.GET(r.Path, h)
		case http.MethodPost:
			g.POST(r.Path, h)
		case http.MethodPut:
			g.PUT(r.Path, h)
		case http.MethodPatch:
			g.PATCH(r.Path, h)
		case http.MethodDelete:
			g.DELETE(r.Path, h)
		default:
			g.Any(r.Path, h)
		}
	}
}

func chainHandlers(hs ...gin.HandlerFunc) gin.HandlerFunc {
	return func(c *gin.Context) {
		for _, h := range hs {
			h(c)
			if c.IsAborted() {
				return
			}
		}
	}
}
