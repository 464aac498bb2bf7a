package http

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/aussiebroadwan/notedesk/internal/auth/service"
	"github.com/aussiebroadwan/notedesk/internal/auth/store"
	"github.com/aussiebroadwan/notedesk/pkg/httpx"
	"github.com/aussiebroadwan/notedesk/pkg/jwtx"
	"github.com/aussiebroadwan/notedesk/pkg/slogx"

	_ "github.com/aussiebroadwan/notedesk/api/auth" // Swagger docs
	"github.com/prometheus/client_golang/prometheus"
	httpSwagger "github.com/swaggo/http-swagger"
)

// AdminRole may scrape /metrics when it is not public.
const AdminRole = "Admin"

// Router holds shared dependencies for HTTP handlers.
type Router struct {
	Mux         *http.ServeMux
	middlewares []httpx.Middleware

	keys         *jwtx.Keys
	buildVersion string
	startTime    time.Time
	logger       *slog.Logger
	gatherer     prometheus.Gatherer

	store          store.Store
	SessionService *service.SessionService

	// MetricsPublic exposes /metrics without a bearer token.
	MetricsPublic bool

	// TrustedProxies may set X-Forwarded-For for IP rate limiting. Empty
	// means limits key on the socket address.
	TrustedProxies httpx.TrustedProxies
}

func NewRouter(
	keys *jwtx.Keys,
	buildVersion string,
	st store.Store,
	gatherer prometheus.Gatherer,
	logger *slog.Logger,
) *Router {
	r := &Router{
		Mux:          http.NewServeMux(),
		keys:         keys,
		buildVersion: buildVersion,
		startTime:    time.Now(),
		store:        st,
		gatherer:     gatherer,
		logger:       logger,
	}

	// Set default middleware chain
	r.middlewares = []httpx.Middleware{
		slogx.HTTPMiddleware(r.logger),
	}

	return r
}

func (r *Router) ApplyRoutes() {
	r.registerSession()
	r.registerMe()
	r.registerSystem()

	r.Mux.Handle("/swagger/", httpSwagger.Handler())
}

// ServeHTTP implements http.Handler for Router and applies the global middleware chain.
//
//	@title			NoteDesk Session Service API
//	@version		0.1.0
//	@description	Dual-token session service. Login returns a short-lived HS256 access token in the body
//	@description	and a long-lived refresh token in the HTTP-only `jwt` cookie.
//
//	@contact.name				AussieBroadWAN Team
//	@contact.url				https://github.com/aussiebroadwan/notedesk
//
//	@license.name				MIT
//	@license.url				https://opensource.org/licenses/MIT
//
//	@host						localhost:8080
//	@BasePath					/
//
//	@schemes					http https
//
//	@securityDefinitions.apikey	BearerAuth
//	@in							header
//	@name						Authorization
//	@description				JWT access token. Format: "Bearer {token}".
func (r *Router) ServeHTTP(w http.ResponseWriter, req *http.Request) {
	httpx.Chain(r.Mux, r.middlewares...).ServeHTTP(w, req)
}

func (r *Router) registerSession() {
	// One chain per operation so the aliases share a limiter bucket.
	login := httpx.Chain(&LoginHandler{SessionService: r.SessionService},
		httpx.RateLimitByIP(httpx.StrictLimit, r.TrustedProxies),
	)
	refresh := httpx.Chain(&RefreshHandler{SessionService: r.SessionService},
		httpx.RateLimitByIP(httpx.LenientLimit, r.TrustedProxies),
	)
	logout := httpx.Chain(&LogoutHandler{SessionService: r.SessionService},
		httpx.RateLimitByIP(httpx.LenientLimit, r.TrustedProxies),
	)

	r.Mux.Handle("POST /login", login)
	r.Mux.Handle("POST /auth", login)
	r.Mux.Handle("GET /refresh", refresh)
	r.Mux.Handle("GET /auth/refresh", refresh)
	r.Mux.Handle("POST /logout", logout)
	r.Mux.Handle("POST /auth/logout", logout)
}

func (r *Router) registerMe() {
	secured := httpx.Chain(MeHandler{},
		httpx.AuthnMiddleware(r.keys.Access),
		httpx.RateLimitByUser(httpx.ModerateLimit),
	)

	r.Mux.Handle("GET /me", secured)
}

func (r *Router) registerSystem() {
	// Health check endpoints - public rate limits (monitoring systems may poll frequently)
	r.Mux.Handle("GET /livez",
		httpx.Chain(LivezHandler(r.startTime, r.buildVersion),
			httpx.RateLimitByIP(httpx.PublicLimit, r.TrustedProxies),
		),
	)
	r.Mux.Handle("GET /readyz",
		httpx.Chain(ReadyzHandler(r.startTime, r.buildVersion, r.store, r.keys),
			httpx.RateLimitByIP(httpx.PublicLimit, r.TrustedProxies),
		),
	)

	if r.gatherer == nil {
		return
	}

	metrics := MetricsHandler(r.gatherer)
	if !r.MetricsPublic {
		metrics = httpx.Chain(metrics,
			httpx.AuthnMiddleware(r.keys.Access),
			httpx.RequireAnyRole(AdminRole),
		)
	}
	r.Mux.Handle("GET /metrics", metrics)
}
