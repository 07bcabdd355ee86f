package server

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	httpSwagger "github.com/swaggo/http-swagger"

	_ "github.com/osse101/ClassPoint_Go/docs"
	"github.com/osse101/ClassPoint_Go/internal/database"
	"github.com/osse101/ClassPoint_Go/internal/handler"
	"github.com/osse101/ClassPoint_Go/internal/ledger"
	"github.com/osse101/ClassPoint_Go/internal/logger"
	"github.com/osse101/ClassPoint_Go/internal/metrics"
	"github.com/osse101/ClassPoint_Go/internal/reward"
	"github.com/osse101/ClassPoint_Go/internal/stats"
	"github.com/osse101/ClassPoint_Go/internal/thresholds"
)

// Services are the domain services exposed over HTTP
type Services struct {
	Ledger     ledger.Service
	Rewards    reward.Service
	Stats      stats.Service
	Thresholds thresholds.Service
}

type Server struct {
	httpServer *http.Server
	dbPool     database.Pool
}

// NewServer builds the router and HTTP server
func NewServer(port int, apiKey string, trustedProxies []string, dbPool database.Pool, svc Services) *Server {
	return &Server{
		httpServer: &http.Server{
			Addr:              fmt.Sprintf(":%d", port),
			Handler:           NewRouter(apiKey, trustedProxies, dbPool, svc),
			ReadHeaderTimeout: ReadHeaderTimeout,
		},
		dbPool: dbPool,
	}
}

// NewRouter returns the chi router with middleware and every route mounted
func NewRouter(apiKey string, trustedProxies []string, dbPool database.Pool, svc Services) chi.Router {
	r := chi.NewRouter()

	// Outermost first
	detector := NewSuspiciousActivityDetector()
	r.Use(SecurityHeadersMiddleware())
	r.Use(loggingMiddleware)
	r.Use(AuthMiddleware(apiKey, trustedProxies, detector))
	r.Use(RateLimitMiddleware(trustedProxies, detector))
	r.Use(RequestSizeLimitMiddleware(MaxRequestBodyBytes))
	r.Use(metrics.Middleware)

	r.Get("/healthz", handler.HandleHealthz())
	r.Get("/readyz", handler.HandleReadyz(dbPool))
	r.Handle("/metrics", promhttp.Handler())
	r.Get("/swagger/*", httpSwagger.WrapHandler)

	r.Route("/api/v1", func(r chi.Router) {
		r.Route("/classes", func(r chi.Router) {
			r.Get("/", handler.HandleListClasses(svc.Ledger))
			r.Post("/", handler.HandleCreateClass(svc.Ledger))

			r.Route("/{classID}", func(r chi.Router) {
				r.Patch("/", handler.HandleRenameClass(svc.Ledger))
				r.Delete("/", handler.HandleDeleteClass(svc.Ledger))

				r.Get("/students", handler.HandleListStudents(svc.Ledger))
				r.Post("/students", handler.HandleAddStudent(svc.Ledger))
				r.Delete("/students", handler.HandleDeleteAllStudents(svc.Ledger))

				r.Get("/rewards", handler.HandleListRewards(svc.Rewards))
				r.Post("/rewards", handler.HandleAddReward(svc.Rewards))

				r.Get("/stats", handler.HandleClassOverview(svc.Stats))
				r.Get("/leaderboard", handler.HandleLeaderboard(svc.Stats))
			})
		})

		r.Route("/students", func(r chi.Router) {
			r.Post("/import", handler.HandleImportStudents(svc.Ledger))

			r.Route("/{studentID}", func(r chi.Router) {
				r.Get("/", handler.HandleGetStudent(svc.Ledger))
				r.Delete("/", handler.HandleDeleteStudent(svc.Ledger))
				r.Post("/points", handler.HandleApplyPoints(svc.Ledger))
				r.Post("/redeem", handler.HandleRedeemReward(svc.Ledger))
				r.Get("/history", handler.HandleStudentHistory(svc.Ledger))
				r.Get("/redemptions", handler.HandleStudentRedemptions(svc.Ledger))
				r.Get("/summary", handler.HandleStudentSummary(svc.Stats))
			})
		})

		r.Route("/rewards/{rewardID}", func(r chi.Router) {
			r.Patch("/", handler.HandleUpdateReward(svc.Rewards))
			r.Delete("/", handler.HandleDeleteReward(svc.Rewards))
		})

		r.Route("/settings", func(r chi.Router) {
			r.Get("/thresholds", handler.HandleGetThresholds(svc.Thresholds))
			r.Put("/thresholds", handler.HandleSetThresholds(svc.Thresholds))
		})
	})

	return r
}

// responseWriter wraps http.ResponseWriter to capture the status code
type responseWriter struct {
	http.ResponseWriter
	statusCode int
	written    bool
}

func newResponseWriter(w http.ResponseWriter) *responseWriter {
	return &responseWriter{
		ResponseWriter: w,
		statusCode:     http.StatusOK,
	}
}

func (rw *responseWriter) WriteHeader(statusCode int) {
	if !rw.written {
		rw.statusCode = statusCode
		rw.written = true
		rw.ResponseWriter.WriteHeader(statusCode)
	}
}

func (rw *responseWriter) Write(b []byte) (int, error) {
	if !rw.written {
		rw.WriteHeader(http.StatusOK)
	}
	return rw.ResponseWriter.Write(b)
}

func isHealthPath(path string) bool {
	return strings.HasPrefix(path, "/healthz") ||
		strings.HasPrefix(path, "/readyz") ||
		strings.HasPrefix(path, "/metrics")
}

// loggingMiddleware assigns a request ID, echoes it in X-Request-ID and logs
// the request with sensitive headers redacted.
func loggingMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if isHealthPath(r.URL.Path) {
			next.ServeHTTP(w, r)
			return
		}

		start := time.Now()
		requestID := logger.GenerateRequestID()
		ctx := logger.WithRequestID(r.Context(), requestID)
		r = r.WithContext(ctx)
		w.Header().Set(HeaderRequestID, requestID)

		log := logger.FromContext(ctx)
		log.Info(LogMsgRequestStarted,
			"method", r.Method,
			"path", r.URL.Path,
			"remote_addr", r.RemoteAddr,
			"content_length", r.ContentLength)

		sanitized := make(http.Header, len(r.Header))
		for k, v := range r.Header {
			if strings.EqualFold(k, HeaderAPIKey) || strings.EqualFold(k, HeaderAuthorization) {
				sanitized[k] = []string{RedactedValue}
			} else {
				sanitized[k] = v
			}
		}
		log.Debug(LogMsgRequestHeaders, "headers", sanitized)

		rw := newResponseWriter(w)
		next.ServeHTTP(rw, r)

		duration := time.Since(start)
		log.Info(LogMsgRequestCompleted,
			"method", r.Method,
			"path", r.URL.Path,
			"status", rw.statusCode,
			"duration_ms", duration.Milliseconds())
	})
}

// Handler exposes the router, mainly for tests
func (s *Server) Handler() http.Handler {
	return s.httpServer.Handler
}

// Start listens until Stop is called
func (s *Server) Start() error {
	slog.Default().Info(LogMsgServerStarting, "addr", s.httpServer.Addr)
	return s.httpServer.ListenAndServe()
}

// Stop stops the server gracefully
func (s *Server) Stop(ctx context.Context) error {
	return s.httpServer.Shutdown(ctx)
}
