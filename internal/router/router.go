package router

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/jmoiron/sqlx"
	"github.com/rs/cors"
	"github.com/sbilibin2017/club-polls/internal/middlewares"
	httpSwagger "github.com/swaggo/http-swagger"
	"go.uber.org/zap"
)

// Handlers groups the view handlers of both applications.
type Handlers struct {
	Main          http.HandlerFunc
	Members       http.HandlerFunc
	MemberDetails http.HandlerFunc
	Testing       http.HandlerFunc

	PollsIndex      http.HandlerFunc
	QuestionDetail  http.HandlerFunc
	QuestionResults http.HandlerFunc
	Vote            http.HandlerFunc
}

// Options configures the ambient middleware and operational endpoints.
type Options struct {
	DB             *sqlx.DB
	Log            *zap.SugaredLogger
	Metrics        *middlewares.Metrics
	AllowedOrigins []string
	SwaggerURL     string // empty disables /swagger
}

// New assembles the members and polls routes behind the shared middleware stack.
func New(h Handlers, opts Options) *chi.Mux {
	r := chi.NewRouter()
	r.Use(chimiddleware.Recoverer)
	r.Use(chimiddleware.StripSlashes)
	r.Use(middlewares.LoggingMiddleware(opts.Log))
	if opts.Metrics != nil {
		r.Use(opts.Metrics.Middleware)
	}
	r.Use(cors.New(cors.Options{
		AllowedOrigins: opts.AllowedOrigins,
		AllowedMethods: []string{http.MethodGet, http.MethodHead, http.MethodOptions},
	}).Handler)

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})
	if opts.Metrics != nil {
		r.Method(http.MethodGet, "/metrics", opts.Metrics.Handler())
	}
	if opts.SwaggerURL != "" {
		r.Get("/swagger/*", httpSwagger.Handler(httpSwagger.URL(opts.SwaggerURL)))
	}

	r.Get("/", h.Main)

	// Members app: each request reads inside one transaction.
	r.Group(func(r chi.Router) {
		r.Use(middlewares.TxMiddleware(opts.DB))
		r.Get("/members", h.Members)
		r.Get("/members/details/{id:[0-9]+}", h.MemberDetails)
		r.Get("/testing", h.Testing)
	})

	// Polls app
	r.Route("/polls", func(r chi.Router) {
		r.Get("/", h.PollsIndex)
		r.Get("/{question_id:[0-9]+}", h.QuestionDetail)
		r.Get("/{question_id:[0-9]+}/results", h.QuestionResults)
		r.Get("/{question_id:[0-9]+}/vote", h.Vote)
	})

	return r
}
