package api

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/limbo/rehab/internal/service"
)

type Server struct {
	mx              *chi.Mux
	injuryService   service.InjuryServiceI
	homeworkService service.HomeworkServiceI
	protocolService ProtocolServiceI
	jwtService      JWTServiceI
}

type ServicesList struct {
	InjuryService   service.InjuryServiceI
	HomeworkService service.HomeworkServiceI
	ProtocolService ProtocolServiceI
	JwtService      JWTServiceI
}

func New(servicesOptions *ServicesList) *Server {
	s := &Server{
		mx:              chi.NewMux(),
		injuryService:   servicesOptions.InjuryService,
		homeworkService: servicesOptions.HomeworkService,
		protocolService: servicesOptions.ProtocolService,
		jwtService:      servicesOptions.JwtService,
	}
	s.mountEndpoints()
	return s
}

func (s *Server) mountEndpoints() {
	s.mx.Use(middleware.Recoverer)
	s.mx.Use(s.RequestIDMiddleware, s.SettingUpLoggerMiddleware)
	s.mx.Route("/api/v1", func(r chi.Router) {
		r.Use(s.AuthMiddleware, s.LoggerExtensionMiddleware)
		r.Route("/injuries", func(r chi.Router) {
			r.Get("/library/{body_area}", s.InjuriesByArea)
			r.Get("/current/{player_id}", s.CurrentInjury)
			r.Get("/active", s.ActiveInjuries)
			r.Post("/assign", s.AssignInjury)
			r.Post("/resolve/{id}", s.ResolveInjury)
			r.Post("/progress/{id}", s.UpdateProgress)
		})
		r.Get("/homework/{player_id}", s.DailyHomework)
		r.Route("/protocol/{player_id}", func(r chi.Router) {
			r.Get("/today", s.ProtocolToday)
			r.Post("/tasks/{task_id}/complete", s.CompleteTask)
			r.Post("/resolve", s.ResolveProtocol)
		})
	})
}

func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.mx.ServeHTTP(w, r)
}

// Run serves on addr until ctx is cancelled, then shuts down gracefully.
func (s *Server) Run(ctx context.Context, addr string) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           s.mx,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       15 * time.Second,
		WriteTimeout:      30 * time.Second,
	}
	errCh := make(chan error, 1)
	go func() {
		slog.Info("api server started", slog.String("address", addr))
		errCh <- srv.ListenAndServe()
	}()
	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return errors.New("server shutdown error: " + err.Error())
	}
	if err := <-errCh; err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}
