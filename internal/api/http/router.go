package http

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/aussiebroadwan/clientdesk/internal/api/service"
	"github.com/aussiebroadwan/clientdesk/internal/api/store"
	"github.com/aussiebroadwan/clientdesk/pkg/clientsdk"
	"github.com/aussiebroadwan/clientdesk/pkg/httpx"
	"github.com/aussiebroadwan/clientdesk/pkg/slogx"

	_ "github.com/aussiebroadwan/clientdesk/api/clients" // Swagger docs
	httpSwagger "github.com/swaggo/http-swagger"
)

// Router holds shared dependencies for HTTP handlers.
type Router struct {
	Mux         *http.ServeMux
	middlewares []httpx.Middleware
	handler     http.Handler

	buildVersion string
	startTime    time.Time
	logger       *slog.Logger

	store         store.Store
	ClientService *service.ClientService
}

func NewRouter(buildVersion string, st store.Store, logger *slog.Logger, allowedOrigins []string) *Router {
	r := &Router{
		Mux:          http.NewServeMux(),
		buildVersion: buildVersion,
		startTime:    time.Now(),
		store:        st,
		logger:       logger,
	}

	r.middlewares = []httpx.Middleware{
		slogx.HTTPMiddleware(r.logger),
		httpx.Recover,
		httpx.CORS(allowedOrigins),
	}

	return r
}

// ApplyRoutes registers every endpoint. Call once before serving.
func (r *Router) ApplyRoutes() {
	r.registerClients()
	r.registerSystem()

	r.Mux.Handle("/swagger/", httpSwagger.Handler())

	r.handler = httpx.Chain(r.Mux, r.middlewares...)
}

// ServeHTTP implements http.Handler for Router and applies the global middleware chain.
//
//	@title			Clients API
//	@version		0.1.0
//	@description	Client records keyed by a business-unique shared key.
//	@description	Failures carry {"data":{"respondeCode","message"}}; 01 marks a duplicate shared key.
//
//	@contact.name	AussieBroadWAN Team
//	@contact.url	https://github.com/aussiebroadwan/clientdesk
//
//	@license.name	MIT
//	@license.url	https://opensource.org/licenses/MIT
//
//	@host			localhost:8001
//	@BasePath		/
//
//	@schemes		http https
func (r *Router) ServeHTTP(w http.ResponseWriter, req *http.Request) {
	r.handler.ServeHTTP(w, req)
}

func (r *Router) registerClients() {
	h := &ClientsHandler{ClientService: r.ClientService}
	base := clientsdk.ClientsPath

	r.Mux.Handle("GET "+base+"/getClients",
		httpx.Chain(http.HandlerFunc(h.HandleList),
			httpx.RateLimitByIP(httpx.ReadLimit),
		),
	)

	// Repeated lookups of one key from one address share a bucket.
	r.Mux.Handle("GET "+base+"/searchClient/{sharedKey}",
		httpx.Chain(http.HandlerFunc(h.HandleSearch),
			httpx.RateLimitMiddleware(httpx.ReadLimit, httpx.CompositeKeyExtractor(":",
				httpx.IPKeyExtractor,
				httpx.PathValueKeyExtractor("sharedKey"),
			)),
		),
	)

	// Creation is the only write; limit it harder.
	r.Mux.Handle("POST "+base+"/createClient",
		httpx.Chain(http.HandlerFunc(h.HandleCreate),
			httpx.RateLimitByIP(httpx.WriteLimit),
		),
	)
}

func (r *Router) registerSystem() {
	r.Mux.Handle("GET /livez", LivezHandler(r.startTime, r.buildVersion))
	r.Mux.Handle("GET /readyz", ReadyzHandler(r.startTime, r.buildVersion, r.store))
}
