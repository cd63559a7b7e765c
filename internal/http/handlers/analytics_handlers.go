package handlers

import (
	"net/http"

	"github.com/rogerio-castellano/paintchain/internal/analytics"
	"github.com/rs/zerolog/log"
)

// compute loads a fresh snapshot and runs the engine. When the view includes
// dead stock, invalid dates either fail the request (strict) or are logged
// and skipped. It writes the error response itself and reports ok=false.
func compute(w http.ResponseWriter, r *http.Request, includesDeadStock bool) (*analytics.Result, analytics.Snapshot, bool) {
	snap, err := store().Snapshot()
	if err != nil {
		log.Error().Err(err).Msg("could not load collections")
		writeError(w, http.StatusInternalServerError, codeInternalError, "could not load collections")
		return nil, snap, false
	}

	res := engine.Compute(snap)

	if res.UnmatchedOrders > 0 {
		log.Warn().Int("orders", res.UnmatchedOrders).Msg("orders reference unknown dealers; excluded from regional figures")
	}
	if includesDeadStock && len(res.InvalidRecords) > 0 {
		if strictDates {
			writeError(w, http.StatusUnprocessableEntity, codeInvalidDate, res.DeadStockErr().Error())
			return nil, snap, false
		}
		for _, bad := range res.InvalidRecords {
			log.Warn().Str("paint", bad.PaintID).Str("value", bad.Value).Msg("skipping paint with invalid lastSoldDate")
		}
	}
	return res, snap, true
}

// DashboardHandler godoc
// @Summary Dashboard summary
// @Description Totals, dead-stock count, average dealer health and regional demand
// @Tags analytics
// @Produce json
// @Success 200 {object} analytics.Dashboard
// @Failure 422 {object} errorResponse
// @Failure 500 {object} errorResponse
// @Router /api/analytics/dashboard [get]
func DashboardHandler(w http.ResponseWriter, r *http.Request) {
	res, snap, ok := compute(w, r, true)
	if !ok {
		return
	}
	respond(w, r, http.StatusOK, analytics.Summarize(snap.Paints, res))
}

// DemandHandler godoc
// @Summary Regional demand forecast
// @Tags analytics
// @Produce json
// @Success 200 {array} analytics.DemandForecast
// @Failure 500 {object} errorResponse
// @Router /api/analytics/demand [get]
func DemandHandler(w http.ResponseWriter, r *http.Request) {
	res, _, ok := compute(w, r, false)
	if !ok {
		return
	}
	respond(w, r, http.StatusOK, res.RegionalDemand)
}

// LostSalesHandler godoc
// @Summary Lost sales per region
// @Tags analytics
// @Produce json
// @Success 200 {array} analytics.LostSale
// @Failure 500 {object} errorResponse
// @Router /api/analytics/lost-sales [get]
func LostSalesHandler(w http.ResponseWriter, r *http.Request) {
	res, _, ok := compute(w, r, false)
	if !ok {
		return
	}
	respond(w, r, http.StatusOK, res.LostSales)
}

// DealerHealthHandler godoc
// @Summary Dealers with health scores
// @Tags analytics
// @Produce json
// @Success 200 {array} analytics.DealerHealth
// @Failure 500 {object} errorResponse
// @Router /api/analytics/dealer-health [get]
func DealerHealthHandler(w http.ResponseWriter, r *http.Request) {
	res, _, ok := compute(w, r, false)
	if !ok {
		return
	}
	respond(w, r, http.StatusOK, res.DealerHealth)
}

// DeadStockHandler godoc
// @Summary Paints unsold for more than 60 days
// @Tags analytics
// @Produce json
// @Success 200 {array} models.Paint
// @Failure 422 {object} errorResponse
// @Failure 500 {object} errorResponse
// @Router /api/deadstock [get]
func DeadStockHandler(w http.ResponseWriter, r *http.Request) {
	res, _, ok := compute(w, r, true)
	if !ok {
		return
	}
	respond(w, r, http.StatusOK, res.DeadStock)
}

// AlertsHandler godoc
// @Summary Dead stock and lost sales alerts
// @Tags analytics
// @Produce json
// @Success 200 {array} analytics.Alert
// @Failure 422 {object} errorResponse
// @Failure 500 {object} errorResponse
// @Router /api/alerts [get]
func AlertsHandler(w http.ResponseWriter, r *http.Request) {
	res, _, ok := compute(w, r, true)
	if !ok {
		return
	}
	respond(w, r, http.StatusOK, analytics.Alerts(res, engine.Now()))
}

// RecommendationsHandler godoc
// @Summary Operational recommendations
// @Tags ai
// @Produce json
// @Success 200 {array} analytics.Recommendation
// @Failure 500 {object} errorResponse
// @Router /api/ai/recommendations [get]
func RecommendationsHandler(w http.ResponseWriter, r *http.Request) {
	res, _, ok := compute(w, r, false)
	if !ok {
		return
	}
	respond(w, r, http.StatusOK, res.Recommendations)
}

// InsightsHandler godoc
// @Summary Every derived view in one payload
// @Tags ai
// @Produce json
// @Success 200 {object} analytics.Result
// @Failure 422 {object} errorResponse
// @Failure 500 {object} errorResponse
// @Router /api/ai/insights [get]
func InsightsHandler(w http.ResponseWriter, r *http.Request) {
	res, _, ok := compute(w, r, true)
	if !ok {
		return
	}
	respond(w, r, http.StatusOK, res)
}
