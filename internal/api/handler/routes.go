package handler

import (
	"net/http"

	httpSwagger "github.com/swaggo/http-swagger"

	"github.com/GomesTenorio/Hanami2025/internal/api/handler/router"
	"github.com/GomesTenorio/Hanami2025/internal/usecases/exporting"
	"github.com/GomesTenorio/Hanami2025/internal/usecases/ingesting"
	"github.com/GomesTenorio/Hanami2025/internal/usecases/reporting"
	"github.com/GomesTenorio/Hanami2025/pkg/middleware"
)

// Guard protege rotas de escrita e manutenção. Vazio quando a autenticação está desabilitada.
type Guard []func(http.Handler) http.Handler

func NewGuard(secret string, roles ...string) Guard {
	if secret == "" {
		return nil
	}

	guard := Guard{middleware.AuthMiddleware(secret)}
	if len(roles) > 0 {
		guard = append(guard, middleware.RoleMiddleware(secret, roles...))
	}
	return guard
}

func Healthcheck() []router.Route {
	return []router.Route{
		{
			Path:    "/",
			Method:  http.MethodGet,
			Handler: RootHandler(),
		},
		{
			Path:    "/healthcheck",
			Method:  http.MethodGet,
			Handler: HealthcheckHandler(),
		},
		{
			Path:    "/health",
			Method:  http.MethodGet,
			Handler: HealthcheckHandler(),
		},
	}
}

func Upload(service ingesting.Uploader, maxBytes int64, guard Guard) []router.Route {
	return []router.Route{
		{
			Path:        "/upload",
			Method:      http.MethodPost,
			Handler:     UploadDataset(service, maxBytes),
			Middlewares: guard,
		},
	}
}

func Dataset(reporter reporting.Reporter, uploader ingesting.Uploader) []router.Route {
	return []router.Route{
		{
			Path:    "/dataset/status",
			Method:  http.MethodGet,
			Handler: DatasetStatus(reporter),
		},
		{
			Path:    "/dataset/history",
			Method:  http.MethodGet,
			Handler: UploadHistory(uploader),
		},
	}
}

func Reports(reporter reporting.Reporter, exporter exporting.Exporter) []router.Route {
	return []router.Route{
		{
			Path:    "/reports/sales-summary",
			Method:  http.MethodGet,
			Handler: SalesSummary(reporter),
		},
		{
			Path:    "/reports/financial-metrics",
			Method:  http.MethodGet,
			Handler: FinancialMetrics(reporter),
		},
		{
			Path:    "/reports/product-analysis",
			Method:  http.MethodGet,
			Handler: ProductAnalysis(reporter),
		},
		{
			Path:    "/reports/regional-performance",
			Method:  http.MethodGet,
			Handler: RegionalPerformance(reporter),
		},
		{
			Path:    "/reports/customer-profile",
			Method:  http.MethodGet,
			Handler: CustomerProfile(reporter),
		},
		{
			Path:    "/reports/download",
			Method:  http.MethodGet,
			Handler: DownloadReport(exporter),
		},
	}
}

func CronJobs(services CronJobServices, guard Guard) []router.Route {
	return []router.Route{
		{
			Path:        "/cron/:type/run",
			Method:      http.MethodPost,
			Handler:     RunCronJob(services),
			Middlewares: guard,
		},
		{
			Path:        "/cron/status",
			Method:      http.MethodGet,
			Handler:     GetCronStatus(services),
			Middlewares: guard,
		},
	}
}

func Docs() []router.Route {
	return []router.Route{
		{
			Path:    "/docs/*any",
			Method:  http.MethodGet,
			Handler: httpSwagger.Handler(httpSwagger.URL("/docs/doc.json")),
		},
	}
}
