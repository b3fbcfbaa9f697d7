// Package cli holds the hr-service subcommands and the wiring they share.
package cli

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"github.com/hrdesk/hr-backend/internal/hr/handler"
	"github.com/hrdesk/hr-backend/internal/hr/repository"
	"github.com/hrdesk/hr-backend/internal/hr/service"
	"github.com/hrdesk/hr-backend/pkg/config"
	"github.com/hrdesk/hr-backend/pkg/database"
	"github.com/hrdesk/hr-backend/pkg/httputil"
	"github.com/hrdesk/hr-backend/pkg/logger"
	"github.com/hrdesk/hr-backend/pkg/messaging"
)

// ServiceName is used for config lookup, logging and event sources
const ServiceName = "hr-service"

// HealthChecker reports the state of a backing service
type HealthChecker interface {
	Health() map[string]string
}

// Deps is everything NewRouter needs. RabbitMQ is nil when messaging is disabled.
type Deps struct {
	Config    *config.Config
	DB        *database.DB
	RabbitMQ  HealthChecker
	Publisher service.EventPublisher
	Logger    *logger.Logger
}

// NewRouter builds repositories, services and handlers on top of deps and mounts them
func NewRouter(deps Deps) http.Handler {
	log := deps.Logger

	staffRepo := repository.NewStaffRepository(deps.DB)
	sectionRepo := repository.NewSectionRepository(deps.DB)
	placeRepo := repository.NewPlaceRepository(deps.DB)
	employmentRepo := repository.NewEmploymentRepository(deps.DB)
	historyRepo := repository.NewHistoryRepository(deps.DB)

	authService := service.NewAuthService(staffRepo, sectionRepo, deps.Config.Auth, log)
	staffService := service.NewStaffService(staffRepo, deps.Publisher, log)
	sectionService := service.NewSectionService(sectionRepo, deps.Publisher, log)
	placeService := service.NewPlaceService(placeRepo, deps.Publisher, log)
	employmentService := service.NewEmploymentService(employmentRepo, historyRepo)

	handlers := &handler.Handlers{
		Auth:     handler.NewAuthHandler(authService),
		Employee: handler.NewEmployeeHandler(staffService),
		HR:       handler.NewHRHandler(staffService, sectionService, placeService, employmentService, log),
		Manager:  handler.NewManagerHandler(staffService),
	}

	r := chi.NewRouter()

	r.Use(middleware.RealIP)
	r.Use(httputil.RequestID)
	r.Use(httputil.Logger(log))
	r.Use(httputil.Recoverer(log))

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   deps.Config.CORS.AllowedOrigins,
		AllowedMethods:   []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete},
		AllowedHeaders:   []string{"Accept", "Content-Type", "X-Request-ID"},
		ExposedHeaders:   []string{"X-Request-ID", "Content-Disposition"},
		AllowCredentials: deps.Config.CORS.AllowCredentials,
		MaxAge:           300,
	}))

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		body := map[string]interface{}{
			"status":   "healthy",
			"service":  ServiceName,
			"database": deps.DB.Health(r.Context()),
		}
		if deps.RabbitMQ != nil {
			body["rabbitmq"] = deps.RabbitMQ.Health()
		}
		httputil.JSON(w, http.StatusOK, body)
	})

	handler.RegisterRoutes(r, handlers)

	return r
}

var _ HealthChecker = (*messaging.RabbitMQ)(nil)
