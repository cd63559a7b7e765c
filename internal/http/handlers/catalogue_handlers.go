package handlers

import (
	"net/http"

	"github.com/rs/zerolog/log"
)

// GetPaintsHandler godoc
// @Summary List paints
// @Tags inventory
// @Produce json
// @Success 200 {array} models.Paint
// @Failure 500 {object} errorResponse
// @Router /api/paints [get]
func GetPaintsHandler(w http.ResponseWriter, r *http.Request) {
	paints, err := paintRepo.GetAll()
	if err != nil {
		log.Error().Err(err).Msg("could not fetch paints")
		writeError(w, http.StatusInternalServerError, codeInternalError, "could not fetch paints")
		return
	}
	respond(w, r, http.StatusOK, paints)
}

// GetDealersHandler godoc
// @Summary List dealers
// @Tags dealers
// @Produce json
// @Success 200 {array} models.Dealer
// @Failure 500 {object} errorResponse
// @Router /api/dealers [get]
func GetDealersHandler(w http.ResponseWriter, r *http.Request) {
	dealers, err := dealerRepo.GetAll()
	if err != nil {
		log.Error().Err(err).Msg("could not fetch dealers")
		writeError(w, http.StatusInternalServerError, codeInternalError, "could not fetch dealers")
		return
	}
	respond(w, r, http.StatusOK, dealers)
}

// GetOrdersHandler godoc
// @Summary List orders
// @Tags orders
// @Produce json
// @Success 200 {array} models.Order
// @Failure 500 {object} errorResponse
// @Router /api/orders [get]
func GetOrdersHandler(w http.ResponseWriter, r *http.Request) {
	orders, err := orderRepo.GetAll()
	if err != nil {
		log.Error().Err(err).Msg("could not fetch orders")
		writeError(w, http.StatusInternalServerError, codeInternalError, "could not fetch orders")
		return
	}
	respond(w, r, http.StatusOK, orders)
}

// GetDemandSignalsHandler godoc
// @Summary List demand signals
// @Tags demand
// @Produce json
// @Success 200 {array} models.DemandSignal
// @Failure 500 {object} errorResponse
// @Router /api/demand [get]
func GetDemandSignalsHandler(w http.ResponseWriter, r *http.Request) {
	signals, err := demandRepo.GetAll()
	if err != nil {
		log.Error().Err(err).Msg("could not fetch demand signals")
		writeError(w, http.StatusInternalServerError, codeInternalError, "could not fetch demand signals")
		return
	}
	respond(w, r, http.StatusOK, signals)
}
