// Package keepalive runs the tiny HTTP listener external uptime probes
// hit to verify the bot process is alive. It serves nothing else.
package keepalive

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/spfdivision/discord-warden/internal/logging"
)

const responseBody = "Bot is up and running!"

type Server struct {
	srv *http.Server
}

func New(port int) *Server {
	mux := http.NewServeMux()
	mux.HandleFunc("/", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/plain")
		w.WriteHeader(http.StatusOK)
		fmt.Fprint(w, responseBody)
	})

	return &Server{
		srv: &http.Server{
			Addr:              fmt.Sprintf(":%d", port),
			Handler:           mux,
			ReadHeaderTimeout: 5 * time.Second,
		},
	}
}

// Starts listening on its own goroutine.
//
// Any listen error besides a regular shutdown is logged, the bot keeps
// running without the keepalive endpoint then.
func (s *Server) Start() {
	go func() {
		if err := s.srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logging.WriteError(fmt.Sprintf("Keepalive server failed: %s", err.Error()))
		}
	}()

	logging.WriteSuccess(fmt.Sprintf("Keepalive server listening on %s", s.srv.Addr))
}

func (s *Server) Shutdown() error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	return s.srv.Shutdown(ctx)
}
