package bootstrap

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"time"

	"github.com/Domenick1991/travelapp/api"
	"github.com/Domenick1991/travelapp/config"
	_ "github.com/Domenick1991/travelapp/docs" // swagger docs
	travelapi "github.com/Domenick1991/travelapp/internal/api/travel_service_api"
	"github.com/Domenick1991/travelapp/internal/logger"
	"github.com/Domenick1991/travelapp/internal/service/booking"
	"github.com/Domenick1991/travelapp/internal/service/flights"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	httpSwagger "github.com/swaggo/http-swagger"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gin-gonic/gin/otelgin"
	"golang.org/x/sync/errgroup"
	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
)

const (
	shutdownTimeout    = 5 * time.Second
	healthCheckTimeout = 2 * time.Second
)

// HealthCheck probes one backing dependency.
type HealthCheck func(ctx context.Context) error

type Servers struct {
	grpcServer *grpc.Server
	httpServer *http.Server
	health     *health.Server
	log        zerolog.Logger
}

func NewServers(
	cfg *config.Config,
	flightSvc flights.FlightUseCase,
	bookingSvc booking.BookingUseCase,
	log zerolog.Logger,
	checks map[string]HealthCheck,
) *Servers {
	grpcSrv := grpc.NewServer(grpc.ChainUnaryInterceptor(travelapi.UnaryLogger(log)))
	travelapi.RegisterTravelServiceServer(grpcSrv, travelapi.NewServer(flightSvc, bookingSvc, log))

	healthSrv := health.NewServer()
	healthSrv.SetServingStatus(travelapi.ServiceName, healthpb.HealthCheckResponse_SERVING)
	healthpb.RegisterHealthServer(grpcSrv, healthSrv)

	return &Servers{
		grpcServer: grpcSrv,
		httpServer: &http.Server{
			Addr:              cfg.HTTP.Address,
			Handler:           NewRouter(cfg, flightSvc, bookingSvc, log, checks),
			ReadHeaderTimeout: 10 * time.Second,
		},
		health: healthSrv,
		log:    log,
	}
}

// NewRouter wires the REST handlers, health endpoint and, when enabled, the
// Swagger UI.
func NewRouter(
	cfg *config.Config,
	flightSvc flights.FlightUseCase,
	bookingSvc booking.BookingUseCase,
	log zerolog.Logger,
	checks map[string]HealthCheck,
) *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(otelgin.Middleware(cfg.App.ServiceName))
	router.Use(logger.GinMiddleware(log))

	router.GET("/healthz", healthHandler(checks))

	v1 := router.Group("/api/v1")
	api.NewFlightHandler(flightSvc, log).Register(v1.Group("/flights"))
	api.NewBookingHandler(bookingSvc, log).Register(v1.Group("/bookings"))

	if cfg.HTTP.Swagger {
		router.GET("/swagger/*any", gin.WrapH(httpSwagger.Handler(httpSwagger.URL("/swagger/doc.json"))))
	}
	return router
}

func healthHandler(checks map[string]HealthCheck) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(c.Request.Context(), healthCheckTimeout)
		defer cancel()

		failed := map[string]string{}
		for name, check := range checks {
			if err := check(ctx); err != nil {
				failed[name] = err.Error()
			}
		}
		if len(failed) > 0 {
			c.JSON(http.StatusServiceUnavailable, gin.H{"status": "unavailable", "checks": failed})
			return
		}
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	}
}

// Run starts gRPC and HTTP servers and blocks until ctx is canceled or a server fails.
func (s *Servers) Run(ctx context.Context, grpcAddr string) error {
	grpcLis, err := net.Listen("tcp", grpcAddr)
	if err != nil {
		return fmt.Errorf("listen gRPC %s: %w", grpcAddr, err)
	}
	httpLis, err := net.Listen("tcp", s.httpServer.Addr)
	if err != nil {
		_ = grpcLis.Close()
		return fmt.Errorf("listen HTTP %s: %w", s.httpServer.Addr, err)
	}
	return s.Serve(ctx, grpcLis, httpLis)
}

// Serve runs both servers on the given listeners.
func (s *Servers) Serve(ctx context.Context, grpcLis, httpLis net.Listener) error {
	g, runCtx := errgroup.WithContext(ctx)

	g.Go(func() error {
		s.log.Info().Str("address", grpcLis.Addr().String()).Msg("grpc_server_started")
		if err := s.grpcServer.Serve(grpcLis); err != nil && !errors.Is(err, grpc.ErrServerStopped) {
			return fmt.Errorf("serving gRPC: %w", err)
		}
		return nil
	})

	g.Go(func() error {
		s.log.Info().Str("address", httpLis.Addr().String()).Msg("http_server_started")
		if err := s.httpServer.Serve(httpLis); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("serving HTTP: %w", err)
		}
		return nil
	})

	g.Go(func() error {
		<-runCtx.Done()

		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()

		s.log.Info().Msg("shutting_down")
		s.health.Shutdown()
		s.grpcServer.GracefulStop()
		if err := s.httpServer.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("shutdown http server: %w", err)
		}
		return nil
	})

	return g.Wait()
}
