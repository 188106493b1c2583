package api

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/justinas/alice"
	"github.com/sirupsen/logrus"

	_ "github.com/GomesTenorio/Hanami2025/docs"
	"github.com/GomesTenorio/Hanami2025/internal/api/handler"
	"github.com/GomesTenorio/Hanami2025/internal/api/handler/router"
	"github.com/GomesTenorio/Hanami2025/internal/config"
	"github.com/GomesTenorio/Hanami2025/internal/scheduler"
	"github.com/GomesTenorio/Hanami2025/internal/usecases/exporting"
	"github.com/GomesTenorio/Hanami2025/internal/usecases/ingesting"
	"github.com/GomesTenorio/Hanami2025/internal/usecases/reporting"
	"github.com/GomesTenorio/Hanami2025/pkg/middleware"
)

const shutdownTimeout = 15 * time.Second

type Server struct {
	httpServer *http.Server
}

func New(
	config *config.Config,
	uploader ingesting.Uploader,
	reporter reporting.Reporter,
	exporter exporting.Exporter,
	retentionSweepService *scheduler.RetentionSweepService,
) (*Server, error) {
	cronServices := handler.CronJobServices{
		RetentionSweepService: retentionSweepService,
	}

	writeGuard := handler.NewGuard(config.Auth.Secret)
	adminGuard := handler.NewGuard(config.Auth.Secret, middleware.RoleAdmin)

	srv := &Server{
		httpServer: &http.Server{
			Addr: fmt.Sprintf("%s:%s", config.Server.Host, config.Server.Port),
			Handler: NewHandler(
				config,
				router.WithRoutes(handler.Healthcheck()...),
				router.WithRoutes(handler.Docs()...),
				router.WithRoutes(handler.Upload(uploader, config.Upload.MaxBytes(), writeGuard)...),
				router.WithRoutes(handler.Dataset(reporter, uploader)...),
				router.WithRoutes(handler.Reports(reporter, exporter)...),
				router.WithRoutes(handler.CronJobs(cronServices, adminGuard)...),
			),
			ReadHeaderTimeout: 2 * time.Second,
		},
	}

	return srv, nil
}

// NewHandler monta o router com a cadeia global de middlewares
func NewHandler(config *config.Config, routes ...router.ConfigRouter) http.Handler {
	rt := router.New(routes...)
	logrus.WithField("rotas", rt.Routes()).Debug("Rotas registradas")

	middlewares := []alice.Constructor{
		middleware.LogPanicMiddleware(),
		middleware.LoggingMiddleware(),
		middleware.Cors(config.Cors.AllowedOrigins),
	}

	return alice.New(middlewares...).Then(rt)
}

func (s Server) Run(ctx context.Context) error {
	go func() {
		logrus.WithFields(logrus.Fields{
			"address": s.httpServer.Addr,
		}).Info("Servidor iniciando")

		if err := s.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logrus.WithError(err).Error("Erro durante a execução do servidor")
		}
	}()

	done := make(chan os.Signal, 1)
	signal.Notify(done, os.Interrupt, syscall.SIGTERM)

	select {
	case <-done:
		logrus.Info("Sinal de interrupção recebido")
	case <-ctx.Done():
		logrus.Info("Contexto de aplicação cancelado")
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	logrus.WithFields(logrus.Fields{
		"timeout": shutdownTimeout.String(),
	}).Info("Iniciando desligamento gracioso do servidor")

	if err := s.Shutdown(shutdownCtx); err != nil {
		logrus.WithError(err).Error("Erro durante o desligamento do servidor")
		return err
	}

	logrus.Info("Servidor desligado com sucesso")
	return nil
}

func (s Server) Shutdown(ctx context.Context) error {
	if err := s.httpServer.Shutdown(ctx); err != nil {
		return err
	}

	logrus.Info("Servidor HTTP desligado com sucesso")
	return nil
}
