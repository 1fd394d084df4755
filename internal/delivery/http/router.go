package http

import (
	"net/http"

	graphql "github.com/graph-gophers/graphql-go"
	"github.com/graph-gophers/graphql-go/relay"

	"eventmanager/config"
)

// NewRouter initializes the HTTP router with all application routes. The
// GraphQL transport is a pass-through to the resolver layer; the relay
// handler decodes the request and executes it against the schema.
func NewRouter(cfg *config.Config, schema *graphql.Schema) *http.ServeMux {
	mux := http.NewServeMux()

	mux.Handle("POST /graphql", &relay.Handler{Schema: schema})
	if cfg.Playground {
		mux.HandleFunc("GET /graphql", GraphiQL)
	}

	mux.HandleFunc("GET /api/health", Health(cfg.ServiceName, cfg.Version))

	return mux
}
