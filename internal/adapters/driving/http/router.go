package httpapi

import (
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog"
)

// Config holds router options.
type Config struct {
	// AllowedOrigins lists CORS origins; "*" or empty allows any.
	AllowedOrigins []string
}

// Router builds the gin engine for ports.
func Router(cfg Config, ports *Ports, logger zerolog.Logger) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(RequestID())
	r.Use(Logger(logger))

	corsCfg := cors.Config{
		AllowMethods:  []string{"GET", "POST", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:  []string{"Origin", "Content-Type", "Accept", RequestIDHeader, SessionHeader},
		ExposeHeaders: []string{RequestIDHeader, SessionHeader},
		MaxAge:        12 * time.Hour,
	}
	if len(cfg.AllowedOrigins) == 0 || (len(cfg.AllowedOrigins) == 1 && cfg.AllowedOrigins[0] == "*") {
		corsCfg.AllowAllOrigins = true
	} else {
		corsCfg.AllowOrigins = cfg.AllowedOrigins
	}
	r.Use(cors.New(corsCfg))

	h := &Handler{
		Reservations: ports.Reservations,
		Sessions:     ports.Sessions,
		Validator:    validator.New(),
		Logger:       logger,
	}

	r.GET("/healthz", h.Healthz)

	api := r.Group("/api")
	{
		api.GET("/restaurants", h.RestaurantsList)
		api.GET("/restaurants/:id", h.RestaurantDetails)
		api.GET("/reservations", h.ReservationsList)
		api.POST("/reservations", h.ReservationCreate)
		api.GET("/reservations/:id", h.ReservationDetails)
		api.PATCH("/reservations/:id", h.ReservationUpdate)
		api.DELETE("/reservations/:id", h.ReservationCancel)
		api.POST("/chat", h.Chat)
		api.DELETE("/chat", h.ChatEnd)
	}

	if ports.MCP != nil {
		r.Any("/mcp", gin.WrapH(ports.MCP))
	}

	return r
}
