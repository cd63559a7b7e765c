package handlers

import (
	"encoding/csv"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/rogerio-castellano/paintchain/internal/models"
	"github.com/rogerio-castellano/paintchain/internal/movements"
	repo "github.com/rogerio-castellano/paintchain/internal/repo"
	"github.com/rs/zerolog/log"
)

// UpdateInventoryHandler godoc
// @Summary Set warehouse and/or dealer stock of a paint
// @Tags inventory
// @Accept json
// @Produce json
// @Param update body InventoryUpdateRequest true "New stock levels"
// @Success 200 {object} models.Paint
// @Failure 400 {array} ValidationError
// @Failure 404 {object} errorResponse
// @Failure 500 {object} errorResponse
// @Router /api/inventory/update [post]
func UpdateInventoryHandler(w http.ResponseWriter, r *http.Request) {
	var req InventoryUpdateRequest
	if err := readJSON(w, r, &req); err != nil {
		writeError(w, http.StatusBadRequest, codeInvalidRequestBody, "invalid input")
		return
	}
	if validationErrors := validateInventoryUpdate(req); len(validationErrors) > 0 {
		respond(w, r, http.StatusBadRequest, validationErrors)
		return
	}

	before, updated, err := paintRepo.SetStock(req.ProductID, req.WarehouseStock, req.DealerStock)
	if errors.Is(err, repo.ErrPaintNotFound) {
		writeError(w, http.StatusNotFound, codePaintNotFound, "Paint not found")
		return
	}
	if err != nil {
		log.Error().Err(err).Str("productId", req.ProductID).Msg("could not update paint stock")
		writeError(w, http.StatusInternalServerError, codeInternalError, "could not update inventory")
		return
	}

	now := engine.Now()
	if d := updated.WarehouseStock - before.WarehouseStock; d != 0 {
		recordMovement(models.Movement{ProductID: updated.ID, Field: "warehouseStock", Delta: d, Reason: "inventory update", Timestamp: now})
	}
	if d := updated.DealerStock - before.DealerStock; d != 0 {
		recordMovement(models.Movement{ProductID: updated.ID, Field: "dealerStock", Delta: d, Reason: "inventory update", Timestamp: now})
	}

	respond(w, r, http.StatusOK, updated)
}

// movementFilter parses productId, since, until, limit and offset.
func movementFilter(r *http.Request) (movements.Filter, error) {
	q := r.URL.Query()
	f := movements.Filter{ProductID: q.Get("productId")}

	for key, dst := range map[string]**time.Time{"since": &f.Since, "until": &f.Until} {
		s := q.Get(key)
		if s == "" {
			continue
		}
		// query decoding turns the "+" of an offset into a space
		if len(s) == len(time.RFC3339) && s[len(s)-6] == ' ' {
			s = s[:len(s)-6] + "+" + s[len(s)-5:]
		}
		ts, err := time.Parse(time.RFC3339, s)
		if err != nil {
			return f, errors.New("invalid " + key + " date format")
		}
		*dst = &ts
	}

	if s := q.Get("limit"); s != "" {
		v, err := strconv.Atoi(s)
		if err != nil || v <= 0 {
			return f, errors.New("limit must be greater than zero")
		}
		f.Limit = &v
	}
	if s := q.Get("offset"); s != "" {
		v, err := strconv.Atoi(s)
		if err != nil || v < 0 {
			return f, errors.New("offset must be zero or positive")
		}
		f.Offset = &v
	}
	return f, nil
}

// GetMovementsHandler godoc
// @Summary Stock movement log
// @Tags inventory
// @Produce json
// @Param productId query string false "Filter by paint id"
// @Param since query string false "Filter movements from this timestamp (RFC3339)"
// @Param until query string false "Filter movements until this timestamp (RFC3339)"
// @Param offset query int false "Offset for pagination"
// @Param limit query int false "Limit for pagination"
// @Success 200 {object} MovementsSearchResult
// @Failure 400 {object} errorResponse
// @Failure 500 {object} errorResponse
// @Router /api/inventory/movements [get]
func GetMovementsHandler(w http.ResponseWriter, r *http.Request) {
	f, err := movementFilter(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, codeInvalidQuery, err.Error())
		return
	}

	list, total, err := movementLog.List(f)
	if err != nil {
		log.Error().Err(err).Msg("could not retrieve movements")
		writeError(w, http.StatusInternalServerError, codeInternalError, "could not retrieve movements")
		return
	}

	respond(w, r, http.StatusOK, MovementsSearchResult{
		Data: list,
		Meta: Meta{TotalCount: total},
	})
}

// ExportMovementsHandler godoc
// @Summary Export the stock movement log
// @Tags inventory
// @Produce text/csv
// @Param productId query string false "Filter by paint id"
// @Param since query string false "Filter from timestamp (RFC3339)"
// @Param until query string false "Filter until timestamp (RFC3339)"
// @Success 200 {file} file
// @Failure 400 {object} errorResponse
// @Failure 500 {object} errorResponse
// @Router /api/inventory/movements/export [get]
func ExportMovementsHandler(w http.ResponseWriter, r *http.Request) {
	f, err := movementFilter(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, codeInvalidQuery, err.Error())
		return
	}
	f.Offset, f.Limit = nil, nil

	list, _, err := movementLog.List(f)
	if err != nil {
		writeError(w, http.StatusInternalServerError, codeInternalError, "could not retrieve movements")
		return
	}

	w.Header().Set("Content-Type", "text/csv")
	w.Header().Set("Content-Disposition", `attachment; filename="movements.csv"`)

	csvWriter := csv.NewWriter(w)
	_ = csvWriter.Write([]string{"product_id", "field", "delta", "reason", "timestamp"})
	for _, m := range list {
		_ = csvWriter.Write([]string{
			m.ProductID,
			m.Field,
			strconv.Itoa(m.Delta),
			m.Reason,
			m.Timestamp.Format(time.RFC3339),
		})
	}
	csvWriter.Flush()
}
