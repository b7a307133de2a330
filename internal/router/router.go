package router

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	httpSwagger "github.com/swaggo/http-swagger"

	_ "github.com/saulo-duarte/neurobridge-lambda/docs"

	"github.com/saulo-duarte/neurobridge-lambda/internal/aiquiz"
	"github.com/saulo-duarte/neurobridge-lambda/internal/analytics"
	"github.com/saulo-duarte/neurobridge-lambda/internal/assistant"
	"github.com/saulo-duarte/neurobridge-lambda/internal/auth"
	"github.com/saulo-duarte/neurobridge-lambda/internal/candidate"
	"github.com/saulo-duarte/neurobridge-lambda/internal/catalog"
	"github.com/saulo-duarte/neurobridge-lambda/internal/config"
	"github.com/saulo-duarte/neurobridge-lambda/internal/middlewares"
	"github.com/saulo-duarte/neurobridge-lambda/internal/notify"
	"github.com/saulo-duarte/neurobridge-lambda/internal/quiz"
	"github.com/saulo-duarte/neurobridge-lambda/internal/remark"
	"github.com/saulo-duarte/neurobridge-lambda/internal/report"
	"github.com/saulo-duarte/neurobridge-lambda/internal/resume"
	"github.com/saulo-duarte/neurobridge-lambda/internal/user"
)

type RouterConfig struct {
	UserHandler         *user.Handler
	CatalogHandler      *catalog.Handler
	AIQuizHandler       *aiquiz.Handler
	QuizHandler         *quiz.Handler
	CandidateHandler    *candidate.Handler
	RemarkHandler       *remark.Handler
	ReportHandler       *report.Handler
	AnalyticsHandler    *analytics.Handler
	ResumeHandler       *resume.Handler
	NotificationHandler *notify.Handler
	AssistantHandler    *assistant.Handler
	CookieDomain        string
}

func New(cfg RouterConfig) http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(middlewares.CorsMiddleware)

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		config.JSON(w, http.StatusOK, map[string]string{"status": "ok"})
	})
	r.Get("/swagger/*", httpSwagger.WrapHandler)

	r.Route("/auth", func(r chi.Router) {
		r.Post("/register", cfg.UserHandler.Register)
		r.Post("/login", cfg.UserHandler.Login)
		r.Post("/logout", auth.NewHandler(cfg.CookieDomain).Logout)
	})

	r.With(auth.OptionalAuth).Mount("/assistant", assistant.Routes(cfg.AssistantHandler))

	r.Group(func(r chi.Router) {
		r.Use(auth.AuthMiddleware)

		manager := auth.RequireRole(string(user.RoleManager))
		candidateOnly := auth.RequireRole(string(user.RoleCandidate))

		r.Mount("/users", user.Routes(cfg.UserHandler))
		r.Mount("/catalog", catalog.Routes(cfg.CatalogHandler))
		r.Mount("/ai-quiz", aiquiz.Routes(cfg.AIQuizHandler))
		r.Mount("/quiz-sessions", quiz.SessionRoutes(cfg.QuizHandler))
		r.Mount("/quiz-results", quiz.ResultRoutes(cfg.QuizHandler))

		candidates := candidate.Routes(cfg.CandidateHandler)
		remark.Register(candidates, cfg.RemarkHandler)
		r.Mount("/candidates", candidates)

		r.With(manager).Mount("/reports", report.Routes(cfg.ReportHandler))
		r.With(manager).Mount("/analytics", analytics.Routes(cfg.AnalyticsHandler))
		r.With(candidateOnly).Mount("/resumes", resume.Routes(cfg.ResumeHandler))

		r.Get("/ws/notifications", cfg.NotificationHandler.Connect)
	})
	return r
}
