package server

import (
	"context"
	"fmt"
	"net"
	"net/http"
	"time"
)

func New(host string, port int, handler http.Handler) *http.Server {
	addr := net.JoinHostPort(host, fmt.Sprintf("%d", port))
	return &http.Server{
		Addr:              addr,
		Handler:           handler,
		ReadHeaderTimeout: 10 * time.Second,
	}
}

// Shutdown drains in-flight requests before the process exits.
func Shutdown(srv *http.Server, timeout time.Duration) error {
	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()
	return srv.Shutdown(ctx)
}
