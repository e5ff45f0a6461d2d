package routes

// Package routes handles all the routing logic for the application

import (
	"context"
	"net/http"
	"strings"
	"time"

	"github.com/gorilla/mux"
	"github.com/rs/zerolog/log"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/Dcode36/post-comment-system/internal/auth"
	"github.com/Dcode36/post-comment-system/internal/config"
	"github.com/Dcode36/post-comment-system/internal/schema"
)

// UserStore, PostStore and CommentStore are the persistence operations
// the handlers need. The mongo-backed implementations live in
// internal/store.
type UserStore interface {
	Create(ctx context.Context, name, email, password string) (schema.User, error)
	Authenticate(ctx context.Context, email, password string) (schema.User, error)
}

type PostStore interface {
	Create(ctx context.Context, title, body string, creator primitive.ObjectID) (schema.Post, error)
	List(ctx context.Context) ([]schema.ResolvedPost, error)
	Get(ctx context.Context, id primitive.ObjectID) (schema.ResolvedPost, error)
	ToggleLike(ctx context.Context, id, userID primitive.ObjectID) (bool, error)
}

type CommentStore interface {
	Add(ctx context.Context, postID, author primitive.ObjectID, text string) (schema.Comment, error)
	Reply(ctx context.Context, parentID, author primitive.ObjectID, text string) (schema.Comment, error)
	ListThreaded(ctx context.Context, postID primitive.ObjectID) ([]schema.ThreadedComment, error)
}

type Server struct {
	users    UserStore
	posts    PostStore
	comments CommentStore
	cfg      config.Config
}

func NewServer(users UserStore, posts PostStore, comments CommentStore, cfg config.Config) *Server {
	return &Server{users: users, posts: posts, comments: comments, cfg: cfg}
}

// InitializeRoutes builds the full handler chain: CORS and access
// logging wrap the router so preflight requests are answered even for
// paths the router would reject.
func (s *Server) InitializeRoutes() http.Handler {
	router := mux.NewRouter()

	router.HandleFunc("/", homeHandler).Methods("GET")

	api := router.PathPrefix("/api").Subrouter()
	api.HandleFunc("/auth/signup", s.signupHandler).Methods("POST")
	api.HandleFunc("/auth/login", s.loginHandler).Methods("POST")

	api.HandleFunc("/posts", s.listPostsHandler).Methods("GET")
	api.HandleFunc("/posts/{id}", s.getPostHandler).Methods("GET")
	api.Handle("/posts", s.JwtAuthMiddleware(http.HandlerFunc(s.createPostHandler))).Methods("POST")
	api.Handle("/posts/{id}/like", s.JwtAuthMiddleware(http.HandlerFunc(s.likeHandler))).Methods("POST")

	api.Handle("/comments", s.JwtAuthMiddleware(http.HandlerFunc(s.addCommentHandler))).Methods("POST")
	api.Handle("/comments/{id}/reply", s.JwtAuthMiddleware(http.HandlerFunc(s.replyHandler))).Methods("POST")
	api.HandleFunc("/comments/post/{id}", s.listCommentsHandler).Methods("GET")

	return s.corsMiddleware(s.accessLogMiddleware(s.timeoutMiddleware(router)))
}

// JwtAuthMiddleware resolves the caller's identity from the bearer
// token and rejects the request before any store call when it is
// missing or invalid.
func (s *Server) JwtAuthMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		authHeader := r.Header.Get("Authorization")
		if authHeader == "" {
			writeMessage(w, http.StatusUnauthorized, "Authorization header missing")
			return
		}

		parts := strings.Split(authHeader, " ")
		if len(parts) != 2 || parts[0] != "Bearer" {
			writeMessage(w, http.StatusUnauthorized, "Invalid authorization header format")
			return
		}

		userID, err := auth.ParseToken([]byte(s.cfg.JWTSecret), parts[1])
		if err != nil {
			writeMessage(w, http.StatusUnauthorized, "Invalid token")
			return
		}

		next.ServeHTTP(w, r.WithContext(auth.WithUserID(r.Context(), userID)))
	})
}

func (s *Server) timeoutMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), s.cfg.RequestTimeout)
		defer cancel()
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// corsMiddleware lets the browser client call the API from another
// origin.
func (s *Server) corsMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")
		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusNoContent)
			return
		}
		next.ServeHTTP(w, r)
	})
}

type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (w *statusRecorder) WriteHeader(code int) {
	w.status = code
	w.ResponseWriter.WriteHeader(code)
}

func (s *Server) accessLogMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
		next.ServeHTTP(rec, r)
		log.Info().
			Str("method", r.Method).
			Str("path", r.URL.Path).
			Int("status", rec.status).
			Dur("duration", time.Since(start)).
			Msg("request")
	})
}
