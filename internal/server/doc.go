// Package server provides the HTTP surface of the clock icon daemon.
//
// Available endpoints:
//   - /                  : Status page with a paged icon table and dot indicator
//   - /metrics           : Prometheus metrics endpoint
//   - /health            : Liveness probe (always returns 200)
//   - /ready             : Readiness probe (returns 200 once the first tick completed)
//   - /api/icons?page=N  : One page of animated icon levels as JSON
//   - /api/icons/{pkg}   : Levels of a single icon, or its static fallback reason
//
// Paging uses the configured page_size. A page past the end is clamped to
// the last page; a non-numeric page is rejected with 400.
//
// The server is configured with sensible timeout defaults:
//   - Read timeout: 15 seconds
//   - Write timeout: 15 seconds
//   - Idle timeout: 60 seconds
//
// Example usage:
//
//	srv := server.NewServer(cfg, clockCollector, log)
//
//	serverErrors := make(chan error, 1)
//	go func() {
//		serverErrors <- srv.Start()
//	}()
//
//	<-ctx.Done()
//	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
//	defer cancel()
//	if err := srv.Shutdown(shutdownCtx); err != nil {
//		log.Error("Error during shutdown", "error", err)
//	}
package server
