package handlers

import (
	"errors"
	"net/http"
	"time"

	"github.com/rogerio-castellano/paintchain/internal/analytics"
	"github.com/rogerio-castellano/paintchain/internal/models"
	repo "github.com/rogerio-castellano/paintchain/internal/repo"
	"github.com/rs/zerolog/log"
)

const deliveryLeadTime = 7 * 24 * time.Hour

// CreateOrderHandler godoc
// @Summary Place an order
// @Description Creates a Pending order and takes the quantity from the paint's dealer stock
// @Tags orders
// @Accept json
// @Produce json
// @Param order body CreateOrderRequest true "Order to place"
// @Success 201 {object} models.Order
// @Failure 400 {array} ValidationError
// @Failure 500 {object} errorResponse
// @Router /api/orders/create [post]
func CreateOrderHandler(w http.ResponseWriter, r *http.Request) {
	var req CreateOrderRequest
	if err := readJSON(w, r, &req); err != nil {
		writeError(w, http.StatusBadRequest, codeInvalidRequestBody, "invalid input")
		return
	}

	if validationErrors := validateOrder(req); len(validationErrors) > 0 {
		respond(w, r, http.StatusBadRequest, validationErrors)
		return
	}

	now := engine.Now()
	order, err := orderRepo.Create(models.Order{
		DealerID:     req.DealerID,
		ProductID:    req.ProductID,
		Quantity:     req.Quantity,
		BuyerName:    req.BuyerName,
		Status:       models.OrderPending,
		DeliveryDate: now.Add(deliveryLeadTime).Format("2006-01-02"),
	})
	if err != nil {
		log.Error().Err(err).Msg("could not create order")
		writeError(w, http.StatusInternalServerError, codeInternalError, "could not create order")
		return
	}

	paint, applied, err := paintRepo.AdjustDealerStock(order.ProductID, -order.Quantity)
	switch {
	case errors.Is(err, repo.ErrPaintNotFound):
		log.Warn().Str("order", order.ID).Str("product", order.ProductID).Msg("order placed for unknown paint; stock unchanged")
	case err != nil:
		log.Error().Err(err).Str("order", order.ID).Msg("could not adjust dealer stock")
	case applied != 0:
		recordMovement(models.Movement{
			ProductID: paint.ID,
			Field:     "dealerStock",
			Delta:     applied,
			Reason:    "order " + order.ID,
			Timestamp: now,
		})
		if paint.DealerStock < analytics.LowStockThreshold {
			log.Warn().Str("paint", paint.ID).Str("name", paint.Name).Int("dealerStock", paint.DealerStock).Msg("dealer stock running low")
		}
	}

	respond(w, r, http.StatusCreated, order)
}

func recordMovement(m models.Movement) {
	if movementLog == nil {
		return
	}
	if err := movementLog.Record(m); err != nil {
		log.Error().Err(err).Str("product", m.ProductID).Msg("could not record movement")
	}
}
