package handler

import (
	"bytes"
	"fmt"
	"net/http"
	"strings"

	"github.com/vfg2006/dealer-kpi-api/internal/domain"
	"github.com/vfg2006/dealer-kpi-api/internal/usecases/dashboarding"
	"github.com/vfg2006/dealer-kpi-api/pkg/apiErrors"
	"github.com/vfg2006/dealer-kpi-api/pkg/log"
	"github.com/vfg2006/dealer-kpi-api/pkg/middleware"
)

var exportContentTypes = map[dashboarding.ExportFormat]string{
	dashboarding.ExportCSV:  "text/csv; charset=utf-8",
	dashboarding.ExportXLSX: "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet",
}

// filterParamsFromRequest lê os filtros e aplica o escopo de concessionárias do usuário
func filterParamsFromRequest(w http.ResponseWriter, r *http.Request, options DashboardOptions) (domain.FilterParams, bool) {
	params, err := parseFilterParams(r.URL.Query(), options)
	if err != nil {
		apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, err.Error(), nil)
		return params, false
	}

	params.Dealers, err = middleware.ScopeDealers(r.Context(), params.Dealers)
	if err != nil {
		apiErrors.WriteError(w, apiErrors.ErrInsufficientPrivilege, "Concessionária fora do seu escopo de acesso", nil)
		return params, false
	}

	return params, true
}

// GetDashboard executa o pipeline completo para os filtros da query string
func GetDashboard(service dashboarding.Dashboarder, options DashboardOptions) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		params, ok := filterParamsFromRequest(w, r, options)
		if !ok {
			return
		}

		logger.WithFields(log.Fields{
			"indicator":        params.Indicator,
			"dealers":          len(params.Dealers),
			"exclude_outliers": params.ExcludeOutliers,
			"mode":             params.Mode,
		}).Info("dashboard: calculando indicador")

		result, err := service.Dashboard(r.Context(), params)
		if err != nil {
			writeServiceError(w, logger, "dashboard", err)
			return
		}

		logger.WithFields(log.Fields{
			"indicator": result.Indicator.Name,
			"rows":      result.RowCount,
			"months":    result.MonthCount,
		}).Info("dashboard: indicador calculado com sucesso")

		writeJSON(w, logger, "dashboard", result)
	})
}

// ExportDashboard devolve as linhas filtradas em CSV ou XLSX
func ExportDashboard(service dashboarding.Dashboarder, options DashboardOptions) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		params, ok := filterParamsFromRequest(w, r, options)
		if !ok {
			return
		}

		format := dashboarding.ExportFormat(strings.ToLower(r.URL.Query().Get("format")))
		if format == "" {
			format = dashboarding.ExportCSV
		}

		// o arquivo só é enviado depois de gerado por inteiro
		var buf bytes.Buffer
		if err := service.Export(r.Context(), params, format, &buf); err != nil {
			writeServiceError(w, logger, "dashboard-export", err)
			return
		}

		logger.WithFields(log.Fields{
			"indicator": params.Indicator,
			"format":    format,
			"bytes":     buf.Len(),
		}).Info("dashboard-export: arquivo gerado")

		w.Header().Set("Content-Type", exportContentTypes[format])
		w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", "ger_servicos_filtrado."+string(format)))
		if _, err := w.Write(buf.Bytes()); err != nil {
			logger.WithError(err).Error("dashboard-export: erro ao enviar arquivo")
		}
	})
}

// ListIndicators retorna os indicadores da base com tipo e rótulo do catálogo
func ListIndicators(service dashboarding.Dashboarder) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		indicators, err := service.Indicators(r.Context())
		if err != nil {
			writeServiceError(w, logger, "indicators", err)
			return
		}

		writeJSON(w, logger, "indicators", indicators)
	})
}

// ListFilterOptions retorna dealers, regiões e grupos disponíveis para os filtros
func ListFilterOptions(service dashboarding.Dashboarder) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		options, err := service.FilterOptions(r.Context())
		if err != nil {
			writeServiceError(w, logger, "dealers", err)
			return
		}

		// seleção vazia nunca sai do escopo
		scoped, _ := middleware.ScopeDealers(r.Context(), nil)
		if len(scoped) > 0 {
			options.Dealers = intersect(options.Dealers, scoped)
		}

		logger.WithFields(log.Fields{
			"dealers": len(options.Dealers),
			"regions": len(options.Regions),
			"groups":  len(options.Groups),
		}).Debug("dealers: opções de filtro recuperadas")

		writeJSON(w, logger, "dealers", options)
	})
}

// GetAvailablePeriods retorna os meses com dados na base carregada
func GetAvailablePeriods(service dashboarding.Dashboarder) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		availablePeriods, err := service.AvailablePeriods(r.Context())
		if err != nil {
			writeServiceError(w, logger, "periods", err)
			return
		}

		logger.WithFields(log.Fields{
			"total_periods": len(availablePeriods.Periods),
			"years":         availablePeriods.Years,
		}).Debug("periods: períodos disponíveis recuperados com sucesso")

		writeJSON(w, logger, "periods", availablePeriods)
	})
}

func intersect(values, allowed []string) []string {
	keep := make(map[string]bool, len(allowed))
	for _, value := range allowed {
		keep[strings.ToUpper(strings.TrimSpace(value))] = true
	}

	result := []string{}
	for _, value := range values {
		if keep[strings.ToUpper(strings.TrimSpace(value))] {
			result = append(result, value)
		}
	}
	return result
}
