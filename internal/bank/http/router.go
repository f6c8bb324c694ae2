package http

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/aussiebroadwan/seeka/internal/bank/service"
	"github.com/aussiebroadwan/seeka/internal/bank/store"
	"github.com/aussiebroadwan/seeka/pkg/httpx"
	"github.com/aussiebroadwan/seeka/pkg/slogx"
)

// Router holds shared dependencies for HTTP handlers.
type Router struct {
	Mux         *http.ServeMux
	middlewares []httpx.Middleware

	buildVersion string
	startTime    time.Time
	logger       *slog.Logger

	store           store.Store
	SessionService  *service.SessionService
	UserService     *service.UserService
	ConsentService  *service.ConsentService
	MirrorService   *service.MirrorService
	DecisionService *service.DecisionService
	AuditService    *service.AuditService
	FairnessService *service.FairnessService
	AdvisorService  *service.AdvisorService
}

func NewRouter(buildVersion string, st store.Store, logger *slog.Logger) *Router {
	r := &Router{
		Mux:          http.NewServeMux(),
		buildVersion: buildVersion,
		startTime:    time.Now(),
		store:        st,
		logger:       logger,
	}

	// Set default middleware chain
	r.middlewares = []httpx.Middleware{
		slogx.HTTPMiddleware(r.logger),
	}

	return r
}

func (r *Router) ApplyRoutes() {
	r.registerAuth()
	r.registerUsers()
	r.registerDecisions()
	r.registerAuditLogs()
	r.registerFairness()
	r.registerAI()
	r.registerSystem()
}

// ServeHTTP implements http.Handler for Router and applies the global middleware chain.
func (r *Router) ServeHTTP(w http.ResponseWriter, req *http.Request) {
	httpx.Chain(r.Mux, r.middlewares...).ServeHTTP(w, req)
}

func (r *Router) registerAuth() {
	sessionHandler := &SessionHandler{Sessions: r.SessionService}

	// POST /auth/login - strict rate limit by IP (authentication attempts)
	r.Mux.Handle("POST /v1/auth/login",
		httpx.Chain(http.HandlerFunc(sessionHandler.HandleLogin),
			httpx.RateLimitByIP(httpx.StrictLimit),
		),
	)

	// POST /auth/guest - strict rate limit (mints a fresh identity per call)
	r.Mux.Handle("POST /v1/auth/guest",
		httpx.Chain(http.HandlerFunc(sessionHandler.HandleGuest),
			httpx.RateLimitByIP(httpx.StrictLimit),
		),
	)

	// POST /auth/logout - moderate rate limit
	r.Mux.Handle("POST /v1/auth/logout",
		httpx.Chain(http.HandlerFunc(sessionHandler.HandleLogout),
			httpx.RateLimitByIP(httpx.ModerateLimit),
		),
	)

	// GET /auth/session - lenient rate limit (dashboards poll this)
	r.Mux.Handle("GET /v1/auth/session",
		httpx.Chain(http.HandlerFunc(sessionHandler.HandleCurrent),
			httpx.RateLimitByIP(httpx.LenientLimit),
		),
	)

	// POST /auth/register - strict rate limit by IP (public signup endpoint)
	registerHandler := &RegisterHandler{Sessions: r.SessionService}
	r.Mux.Handle("POST /v1/auth/register",
		httpx.Chain(registerHandler,
			httpx.RateLimitByIP(httpx.StrictLimit),
		),
	)
}

func (r *Router) registerUsers() {
	usersHandler := &UsersHandler{Users: r.UserService}
	r.Mux.Handle("GET /v1/users",
		httpx.Chain(usersHandler,
			httpx.RateLimitByIP(httpx.LenientLimit),
		),
	)

	consentsHandler := &ConsentsHandler{Consents: r.ConsentService}
	r.Mux.Handle("GET /v1/users/{id}/consents",
		httpx.Chain(http.HandlerFunc(consentsHandler.HandleGet),
			httpx.RateLimitByIP(httpx.LenientLimit),
		),
	)
	r.Mux.Handle("PATCH /v1/users/{id}/consents",
		httpx.Chain(http.HandlerFunc(consentsHandler.HandlePatch),
			httpx.RateLimitByIP(httpx.ModerateLimit),
		),
	)

	mirrorsHandler := &MirrorsHandler{Mirrors: r.MirrorService}
	r.Mux.Handle("GET /v1/users/{id}/mirror",
		httpx.Chain(http.HandlerFunc(mirrorsHandler.HandleGet),
			httpx.RateLimitByIP(httpx.LenientLimit),
		),
	)
	r.Mux.Handle("PATCH /v1/users/{id}/mirror",
		httpx.Chain(http.HandlerFunc(mirrorsHandler.HandlePatch),
			httpx.RateLimitByIP(httpx.ModerateLimit),
		),
	)
}

func (r *Router) registerDecisions() {
	h := &DecisionsHandler{Decisions: r.DecisionService}

	r.Mux.Handle("GET /v1/decisions",
		httpx.Chain(http.HandlerFunc(h.HandleList),
			httpx.RateLimitByIP(httpx.LenientLimit),
		),
	)
	r.Mux.Handle("POST /v1/decisions",
		httpx.Chain(http.HandlerFunc(h.HandleCreate),
			httpx.RateLimitByIP(httpx.ModerateLimit),
		),
	)
}

func (r *Router) registerAuditLogs() {
	h := &AuditLogsHandler{Audit: r.AuditService}

	r.Mux.Handle("GET /v1/audit-logs",
		httpx.Chain(http.HandlerFunc(h.HandleList),
			httpx.RateLimitByIP(httpx.LenientLimit),
		),
	)
	r.Mux.Handle("POST /v1/audit-logs",
		httpx.Chain(http.HandlerFunc(h.HandleCreate),
			httpx.RateLimitByIP(httpx.ModerateLimit),
		),
	)
}

func (r *Router) registerFairness() {
	h := &FairnessHandler{Fairness: r.FairnessService}

	r.Mux.Handle("GET /v1/fairness/metrics",
		httpx.Chain(http.HandlerFunc(h.HandleMetrics),
			httpx.RateLimitByIP(httpx.LenientLimit),
		),
	)
	r.Mux.Handle("POST /v1/fairness/scans",
		httpx.Chain(http.HandlerFunc(h.HandleRunScan),
			httpx.RateLimitByIP(httpx.ModerateLimit),
		),
	)
	r.Mux.Handle("GET /v1/fairness/scans",
		httpx.Chain(http.HandlerFunc(h.HandleScanCount),
			httpx.RateLimitByIP(httpx.LenientLimit),
		),
	)
}

func (r *Router) registerAI() {
	// AI endpoints hit the external collaborator - strict rate limit
	explanationsHandler := &ExplanationsHandler{Advisor: r.AdvisorService}
	r.Mux.Handle("POST /v1/ai/explanations",
		httpx.Chain(explanationsHandler,
			httpx.RateLimitByIP(httpx.StrictLimit),
		),
	)

	aiUpdateHandler := &MirrorAIUpdateHandler{Advisor: r.AdvisorService}
	r.Mux.Handle("POST /v1/users/{id}/mirror/ai-update",
		httpx.Chain(aiUpdateHandler,
			httpx.RateLimitByIP(httpx.StrictLimit),
		),
	)
}

func (r *Router) registerSystem() {
	// Health check endpoints - lenient rate limits (monitoring systems may poll frequently)
	r.Mux.Handle("GET /livez",
		httpx.Chain(LivezHandler(r.startTime, r.buildVersion),
			httpx.RateLimitByIP(httpx.LenientLimit),
		),
	)
	r.Mux.Handle("GET /readyz",
		httpx.Chain(ReadyzHandler(r.startTime, r.buildVersion, r.store),
			httpx.RateLimitByIP(httpx.LenientLimit),
		),
	)
}
