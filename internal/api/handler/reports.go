package handler

import (
	"net/http"
	"strings"

	"github.com/GomesTenorio/Hanami2025/internal/domain"
	"github.com/GomesTenorio/Hanami2025/internal/usecases/reporting"
)

func SalesSummary(service reporting.Reporter) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		period, err := reporting.ParseDateRange(
			r.URL.Query().Get("start_date"),
			r.URL.Query().Get("end_date"),
		)
		if err != nil {
			writeFailure(w, r, "sales-summary", err)
			return
		}

		summary, err := service.SalesSummary(r.Context(), period)
		if err != nil {
			writeFailure(w, r, "sales-summary", err)
			return
		}

		writeJSON(w, http.StatusOK, summary)
	})
}

func FinancialMetrics(service reporting.Reporter) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		metrics, err := service.FinancialMetrics(r.Context())
		if err != nil {
			writeFailure(w, r, "financial-metrics", err)
			return
		}

		writeJSON(w, http.StatusOK, metrics)
	})
}

type productAnalysisQuery struct {
	SortBy string `query:"sort_by" validate:"oneof=quantidade total_arrecadado nome"`
	Order  string `query:"order" validate:"oneof=asc desc"`
}

func ProductAnalysis(service reporting.Reporter) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		query := productAnalysisQuery{
			SortBy: queryOrDefault(r, "sort_by", domain.SortByTotal),
			Order:  queryOrDefault(r, "order", domain.OrderDesc),
		}

		if err := validate.Struct(query); err != nil {
			writeValidationFailure(w, r, err)
			return
		}

		products, err := service.ProductAnalysis(r.Context(), query.SortBy, query.Order)
		if err != nil {
			writeFailure(w, r, "product-analysis", err)
			return
		}

		writeJSON(w, http.StatusOK, products)
	})
}

type regionalQuery struct {
	State string `query:"estado" validate:"omitempty,len=2,alpha"`
}

func RegionalPerformance(service reporting.Reporter) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		query := regionalQuery{
			State: reporting.NormalizeState(r.URL.Query().Get("estado")),
		}

		if err := validate.Struct(query); err != nil {
			writeValidationFailure(w, r, err)
			return
		}

		performance, err := service.RegionalPerformance(r.Context(), query.State)
		if err != nil {
			writeFailure(w, r, "regional-performance", err)
			return
		}

		writeJSON(w, http.StatusOK, performance)
	})
}

func CustomerProfile(service reporting.Reporter) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		profile, err := service.CustomerProfile(r.Context())
		if err != nil {
			writeFailure(w, r, "customer-profile", err)
			return
		}

		writeJSON(w, http.StatusOK, profile)
	})
}

// queryOrDefault lê o parâmetro em minúsculas e sem espaços, ou devolve o padrão
func queryOrDefault(r *http.Request, name, fallback string) string {
	value := strings.ToLower(strings.TrimSpace(r.URL.Query().Get(name)))
	if value == "" {
		return fallback
	}
	return value
}
