package server

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/leandroarrudaa/db-deumatch/internal/benchmarks"
	"github.com/leandroarrudaa/db-deumatch/internal/config"
	"github.com/leandroarrudaa/db-deumatch/internal/db"
	"github.com/leandroarrudaa/db-deumatch/internal/matching"
	"github.com/leandroarrudaa/db-deumatch/internal/server/middleware"
	"github.com/leandroarrudaa/db-deumatch/internal/server/ratelimit"
)

// Server represents the HTTP server
type Server struct {
	httpServer  *http.Server
	db          *db.DB
	engine      *matching.Engine
	rateLimiter *ratelimit.Limiter
	jwtService  *JWTService
	authHandler *AuthHandler
}

// Config holds server configuration
type Config struct {
	Port            int
	DatabaseURL     string
	BenchmarksPath  string // empty uses the embedded benchmark table
	RateLimitPerMin int    // overrides the default per-client limit when > 0
}

// New creates a new server instance
func New(cfg Config) (*Server, error) {
	database, err := db.Connect(context.Background(), cfg.DatabaseURL)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	table := benchmarks.Default()
	if cfg.BenchmarksPath != "" {
		table, err = benchmarks.LoadFile(cfg.BenchmarksPath)
		if err != nil {
			database.Close()
			return nil, fmt.Errorf("failed to load benchmarks: %w", err)
		}
	}

	s := &Server{
		db:     database,
		engine: matching.New(table),
	}

	rlConfig := ratelimit.LoadConfig()
	if cfg.RateLimitPerMin > 0 {
		rlConfig.DefaultLimit = cfg.RateLimitPerMin
	}
	s.rateLimiter = ratelimit.NewLimiter(rlConfig)

	passwordConfig, err := config.NewPasswordConfig()
	if err != nil {
		database.Close()
		return nil, fmt.Errorf("failed to create password config: %w", err)
	}
	recruiterService := NewRecruiterService(database, passwordConfig)

	jwtConfig, err := config.NewJWTConfig()
	if err != nil {
		database.Close()
		return nil, fmt.Errorf("failed to create JWT config: %w", err)
	}
	s.jwtService = NewJWTService(jwtConfig)
	s.authHandler = NewAuthHandler(recruiterService, s.jwtService)

	s.httpServer = &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Port),
		Handler:      s.withRateLimit(s.withLogging(s.withCORS(s.routes()))),
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 60 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	return s, nil
}

// routes builds the router. Public endpoints are candidate intake, auth and
// health; everything else requires a recruiter token.
func (s *Server) routes() http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("GET /health", s.handleHealth)
	mux.HandleFunc("POST /auth/register", s.authHandler.Register)
	mux.HandleFunc("POST /auth/login", s.authHandler.Login)

	// Public candidate self-submission
	mux.HandleFunc("POST /intake", s.handleIntake)
	mux.HandleFunc("GET /questions", s.handleListQuestions)

	// Recruiter endpoints
	protected := http.NewServeMux()
	protected.HandleFunc("POST /candidates", s.handleCreateCandidate)
	protected.HandleFunc("GET /candidates", s.handleListCandidates)
	protected.HandleFunc("GET /candidates/{id}", s.handleGetCandidate)
	protected.HandleFunc("PUT /candidates/{id}", s.handleUpdateCandidate)
	protected.HandleFunc("DELETE /candidates/{id}", s.handleDeleteCandidate)
	protected.HandleFunc("PUT /candidates/{id}/assessment", s.handleUpdateAssessment)

	protected.HandleFunc("POST /jobs", s.handleCreateJob)
	protected.HandleFunc("GET /jobs", s.handleListJobs)
	protected.HandleFunc("GET /jobs/{id}", s.handleGetJob)
	protected.HandleFunc("PUT /jobs/{id}", s.handleUpdateJob)
	protected.HandleFunc("DELETE /jobs/{id}", s.handleDeleteJob)

	protected.HandleFunc("GET /jobs/{id}/match/{candidate_id}", s.handleMatch)
	protected.HandleFunc("GET /jobs/{id}/ranking", s.handleRanking)

	protected.HandleFunc("POST /jobs/{id}/applications/{candidate_id}", s.handleCreateApplication)
	protected.HandleFunc("GET /jobs/{id}/applications", s.handleListApplications)
	protected.HandleFunc("PUT /jobs/{id}/applications/{candidate_id}/status", s.handleUpdateApplicationStatus)

	mux.Handle("/", middleware.Auth(s.jwtService.AsTokenValidator())(protected))

	return mux
}

// Start begins listening for requests and blocks until shutdown
func (s *Server) Start() error {
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)

	go func() {
		log.Printf("Server starting on %s", s.httpServer.Addr)
		if err := s.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Server error: %v", err)
		}
	}()

	<-stop
	log.Println("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := s.httpServer.Shutdown(ctx); err != nil {
		return fmt.Errorf("server shutdown failed: %w", err)
	}

	if s.rateLimiter != nil {
		s.rateLimiter.Stop()
	}

	s.db.Close()
	log.Println("Server stopped")
	return nil
}

// withCORS adds CORS headers
func (s *Server) withCORS(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")

		if r.Method == "OPTIONS" {
			w.WriteHeader(http.StatusOK)
			return
		}

		next.ServeHTTP(w, r)
	})
}

// withRateLimit adds rate limiting middleware
func (s *Server) withRateLimit(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		clientID := s.extractClientID(r)

		allowed, info := s.rateLimiter.Allow(clientID, r.URL.Path, r.Method)
		s.setRateLimitHeaders(w, info)
		if !allowed {
			s.rateLimitResponse(w, info)
			return
		}

		next.ServeHTTP(w, r)
	})
}

// withLogging adds request logging
func (s *Server) withLogging(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		log.Printf("[%s] %s %s", r.Method, r.URL.Path, r.RemoteAddr)
		next.ServeHTTP(w, r)
		log.Printf("[%s] %s completed in %v", r.Method, r.URL.Path, time.Since(start))
	})
}

// handleHealth returns server health status, including database reachability
func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
	defer cancel()

	status := map[string]string{"status": "ok", "database": "ok"}
	code := http.StatusOK
	if err := s.db.Ping(ctx); err != nil {
		status["status"] = "degraded"
		status["database"] = "unreachable"
		code = http.StatusServiceUnavailable
	}
	s.jsonResponse(w, code, status)
}

// jsonResponse writes a JSON response
func (s *Server) jsonResponse(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		log.Printf("Error encoding JSON response: %v", err)
	}
}

// errorResponse writes an error JSON response
func (s *Server) errorResponse(w http.ResponseWriter, status int, message string) {
	s.jsonResponse(w, status, map[string]string{"error": message})
}

// extractClientID extracts the client identifier (IP) from the request.
func (s *Server) extractClientID(r *http.Request) string {
	ip, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return ip
}

// setRateLimitHeaders sets standard rate limit headers on the response.
func (s *Server) setRateLimitHeaders(w http.ResponseWriter, info ratelimit.Info) {
	if info.Limit > 0 {
		w.Header().Set("X-RateLimit-Limit", fmt.Sprintf("%d", info.Limit))
		w.Header().Set("X-RateLimit-Remaining", fmt.Sprintf("%d", info.Remaining))
		w.Header().Set("X-RateLimit-Reset", fmt.Sprintf("%d", info.ResetTime.Unix()))
	}
}

// rateLimitResponse writes a 429 Too Many Requests response.
func (s *Server) rateLimitResponse(w http.ResponseWriter, info ratelimit.Info) {
	response := map[string]interface{}{
		"error":     "rate_limit_exceeded",
		"message":   "Rate limit exceeded. Please try again later.",
		"limit":     info.Limit,
		"remaining": info.Remaining,
		"reset_at":  info.ResetTime.Format(time.RFC3339),
	}

	if info.RetryAfter > 0 {
		response["retry_after"] = int(info.RetryAfter.Seconds())
		w.Header().Set("Retry-After", fmt.Sprintf("%d", int(info.RetryAfter.Seconds())))
	}

	s.jsonResponse(w, http.StatusTooManyRequests, response)
}
