// Package server provides the HTTP REST API for the internship portal.
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

	"github.com/google/uuid"

	"github.com/Prajwal471/PM-Internship-Portal/internal/catalog"
	"github.com/Prajwal471/PM-Internship-Portal/internal/chatbot"
	"github.com/Prajwal471/PM-Internship-Portal/internal/config"
	"github.com/Prajwal471/PM-Internship-Portal/internal/db"
	"github.com/Prajwal471/PM-Internship-Portal/internal/llm"
	"github.com/Prajwal471/PM-Internship-Portal/internal/quiz"
	"github.com/Prajwal471/PM-Internship-Portal/internal/recommend"
	"github.com/Prajwal471/PM-Internship-Portal/internal/server/middleware"
	"github.com/Prajwal471/PM-Internship-Portal/internal/server/ratelimit"
	"github.com/Prajwal471/PM-Internship-Portal/internal/types"
)

// ProfileStore is the candidate persistence surface the handlers need.
type ProfileStore interface {
	GetProfile(ctx context.Context, candidateID uuid.UUID) (*types.CandidateProfile, error)
	UpdateProfile(ctx context.Context, candidateID uuid.UUID, req *types.UpdateProfileRequest) (*types.CandidateProfile, error)
	RecordTestResult(ctx context.Context, candidateID uuid.UUID, result *types.TestResult) error
}

// CatalogReader provides read access to the internship catalog.
type CatalogReader interface {
	List(ctx context.Context) ([]types.InternshipPosting, error)
	Get(ctx context.Context, id string) (types.InternshipPosting, error)
}

// Recommender is the recommendation pipeline surface.
type Recommender interface {
	Recommendations(ctx context.Context, candidateID uuid.UUID) (*types.RecommendationSet, error)
	Detail(ctx context.Context, candidateID uuid.UUID, postingID string) (*types.PostingDetail, error)
}

// QuizGenerator produces skill verification questions.
type QuizGenerator interface {
	Questions(ctx context.Context, skills []string, educationLevel string) ([]types.Question, error)
}

// ChatResponder answers support questions.
type ChatResponder interface {
	Reply(ctx context.Context, message, language string) (response, source string)
}

// Server represents the HTTP server
type Server struct {
	httpServer  *http.Server
	db          *db.DB
	aiClient    llm.Client
	store       ProfileStore
	catalog     CatalogReader
	recommender Recommender
	quiz        QuizGenerator
	bot         ChatResponder
	jwtService  *JWTService
	rateLimiter *ratelimit.Limiter
}

// New creates a new server instance wired to Postgres, the posting catalog
// and, when a Gemini key is configured, the AI collaborator.
func New(cfg *config.Config) (*Server, error) {
	database, err := db.Connect(context.Background(), cfg.DatabaseURL)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	var cat *catalog.Catalog
	if cfg.CatalogPath != "" {
		cat, err = catalog.LoadFile(cfg.CatalogPath)
	} else {
		cat, err = catalog.Load()
	}
	if err != nil {
		database.Close()
		return nil, fmt.Errorf("failed to load catalog: %w", err)
	}

	var aiClient llm.Client
	if cfg.HasAICapability() {
		client, err := llm.NewGeminiClient(context.Background(), cfg.GeminiAPIKey)
		if err != nil {
			database.Close()
			return nil, fmt.Errorf("failed to create AI client: %w", err)
		}
		aiClient = client
	} else {
		log.Println("No AI key configured, running with rule-based recommendations and fallback content")
	}

	var enhancer recommend.Enhancer
	if aiClient != nil {
		enhancer = recommend.NewAIReranker(aiClient, cfg.AITimeout)
	}

	jwtConfig, err := config.NewJWTConfig()
	if err != nil {
		database.Close()
		return nil, fmt.Errorf("failed to create JWT config: %w", err)
	}

	s := &Server{
		db:          database,
		aiClient:    aiClient,
		store:       database,
		catalog:     cat,
		recommender: recommend.NewService(database, cat, enhancer),
		quiz:        quiz.NewGenerator(aiClient),
		bot:         chatbot.New(aiClient),
		jwtService:  NewJWTService(jwtConfig),
		rateLimiter: ratelimit.NewLimiter(ratelimit.LoadConfig()),
	}

	s.httpServer = &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      s.withRateLimit(s.withLogging(s.withCORS(s.routes()))),
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 60 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	return s, nil
}

// routes builds the request mux. Everything except health and the chatbot
// requires a valid bearer token.
func (s *Server) routes() http.Handler {
	mux := http.NewServeMux()
	auth := middleware.AuthMiddleware(s.jwtService.AsTokenValidator())

	mux.HandleFunc("GET /health", s.handleHealth)
	mux.HandleFunc("POST /chatbot", s.handleChatbot)

	mux.Handle("GET /recommendations", auth(http.HandlerFunc(s.handleRecommendations)))
	mux.Handle("GET /internships", auth(http.HandlerFunc(s.handleListInternships)))
	mux.Handle("GET /internships/{id}", auth(http.HandlerFunc(s.handleGetInternship)))
	mux.Handle("GET /profile", auth(http.HandlerFunc(s.handleGetProfile)))
	mux.Handle("PUT /profile", auth(http.HandlerFunc(s.handleUpdateProfile)))
	mux.Handle("GET /test/questions", auth(http.HandlerFunc(s.handleTestQuestions)))
	mux.Handle("POST /test/submit", auth(http.HandlerFunc(s.handleSubmitTest)))

	return mux
}

// Start begins listening for requests
func (s *Server) Start() error {
	// Graceful shutdown
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

	if s.aiClient != nil {
		if err := s.aiClient.Close(); err != nil {
			log.Printf("Error closing AI client: %v", err)
		}
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
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")

		if r.Method == "OPTIONS" {
			w.WriteHeader(http.StatusOK)
			return
		}

		next.ServeHTTP(w, r)
	})
}

// withRateLimit throttles clients per endpoint, keyed by remote IP.
func (s *Server) withRateLimit(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		info := s.rateLimiter.Allow(clientIP(r), r.URL.Path, r.Method)
		s.setRateLimitHeaders(w, info)
		if !info.Allowed {
			s.rateLimitResponse(w, info)
			return
		}
		next.ServeHTTP(w, r)
	})
}

// clientIP identifies the caller by remote address. X-Forwarded-For
// handling is left to a trusted ingress.
func clientIP(r *http.Request) string {
	ip, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return ip
}

// setRateLimitHeaders writes the standard rate limit headers.
func (s *Server) setRateLimitHeaders(w http.ResponseWriter, info ratelimit.Info) {
	if info.Limit <= 0 {
		return
	}
	w.Header().Set("X-RateLimit-Limit", fmt.Sprintf("%d", info.Limit))
	w.Header().Set("X-RateLimit-Remaining", fmt.Sprintf("%d", info.Remaining))
	w.Header().Set("X-RateLimit-Reset", fmt.Sprintf("%d", info.ResetAt.Unix()))
}

// rateLimitResponse writes a 429 with retry information.
func (s *Server) rateLimitResponse(w http.ResponseWriter, info ratelimit.Info) {
	if info.RetryAfter > 0 {
		w.Header().Set("Retry-After", fmt.Sprintf("%d", int(info.RetryAfter.Seconds())+1))
	}
	log.Printf("Rate limit exceeded: limit=%d reset=%s", info.Limit, info.ResetAt.Format(time.RFC3339))
	s.jsonResponse(w, http.StatusTooManyRequests, map[string]any{
		"error":   "Too many requests. Please try again later.",
		"limit":   info.Limit,
		"resetAt": info.ResetAt.Format(time.RFC3339),
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

// handleHealth returns server health status
func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	s.jsonResponse(w, http.StatusOK, map[string]string{"status": "ok"})
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
