// shared/api/server.go
package api

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"time"

	"github.com/gorilla/mux"
)

// Middleware wraps an http.Handler with additional behavior.
type Middleware func(http.Handler) http.Handler

type BaseServer struct {
	Router *mux.Router
	Server *http.Server
	Logger *log.Logger
}

// NewBaseServer builds a mux router wrapped in an http.Server with sane
// timeouts. All middleware wrap the router itself rather than going through
// router.Use, because mux skips route middleware for NotFoundHandler and
// MethodNotAllowedHandler; wrapping outside keeps logging and CORS on those
// responses too. Logging sits outermost, CORS next (a preflight carries no
// application headers, so it must answer before any gate in outer), then the
// caller's middleware.
func NewBaseServer(addr string, logger *log.Logger, outer ...Middleware) *BaseServer {
	if logger == nil {
		logger = log.Default()
	}

	router := mux.NewRouter()

	var handler http.Handler = router
	for i := len(outer) - 1; i >= 0; i-- {
		handler = outer[i](handler)
	}
	handler = LoggingMiddleware(CORSMiddleware(handler))

	server := &http.Server{
		Addr:         addr,
		Handler:      handler,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  120 * time.Second,
	}

	return &BaseServer{
		Router: router,
		Server: server,
		Logger: logger,
	}
}

func (bs *BaseServer) Start() error {
	bs.Logger.Printf("Starting HTTP server on %s...", bs.Server.Addr)
	// ListenAndServe returns http.ErrServerClosed on graceful shutdown
	if err := bs.Server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return fmt.Errorf("HTTP server failed: %w", err)
	}
	return nil
}

func (bs *BaseServer) Shutdown(ctx context.Context) error {
	bs.Logger.Println("Shutting down HTTP server...")
	return bs.Server.Shutdown(ctx)
}
