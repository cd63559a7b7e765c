package handlers

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"

	"github.com/rogerio-castellano/paintchain/internal/models"
	"github.com/rs/zerolog/log"
)

type csvRow struct {
	Region   string
	Searches string
}

func parseDemandCSV(file io.Reader) ([]csvRow, error) {
	reader := csv.NewReader(file)
	reader.TrimLeadingSpace = true
	headers, err := reader.Read()
	if err != nil {
		return nil, fmt.Errorf("invalid CSV header")
	}

	index := map[string]int{}
	for i, h := range headers {
		index[strings.ToLower(strings.TrimSpace(h))] = i
	}
	regionCol, ok := index["region"]
	if !ok {
		return nil, errors.New("missing region column")
	}
	searchesCol, ok := index["searches"]
	if !ok {
		return nil, errors.New("missing searches column")
	}

	var rows []csvRow
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("CSV read error: %v", err)
		}
		rows = append(rows, csvRow{
			Region:   record[regionCol],
			Searches: record[searchesCol],
		})
	}
	return rows, nil
}

func validateRow(r csvRow) (models.DemandSignal, error) {
	if strings.TrimSpace(r.Region) == "" {
		return models.DemandSignal{}, errors.New("missing region")
	}
	searches, err := strconv.Atoi(strings.TrimSpace(r.Searches))
	if err != nil || searches < 0 {
		return models.DemandSignal{}, errors.New("invalid searches")
	}
	return models.DemandSignal{Region: strings.TrimSpace(r.Region), Searches: searches}, nil
}

// ImportDemandHandler godoc
// @Summary Import regional search volumes via CSV
// @Description Upserts one demand signal per row (columns region, searches); the last row for a region wins
// @Tags import
// @Accept multipart/form-data
// @Produce json
// @Param file formData file true "CSV file"
// @Success 200 {object} ImportDemandResult
// @Failure 400 {object} errorResponse
// @Failure 500 {object} errorResponse
// @Router /api/demand/import [post]
func ImportDemandHandler(w http.ResponseWriter, r *http.Request) {
	file, _, err := r.FormFile("file")
	if err != nil {
		writeError(w, http.StatusBadRequest, codeInvalidRequestBody, "missing file")
		return
	}
	defer file.Close()

	records, err := parseDemandCSV(file)
	if err != nil {
		writeError(w, http.StatusBadRequest, codeInvalidRequestBody, err.Error())
		return
	}

	errorsList := []ValidationError{}
	signals := make([]models.DemandSignal, 0, len(records))
	for i, rec := range records {
		rowNum := i + 2 // header is row 1
		signal, err := validateRow(rec)
		if err != nil {
			errorsList = append(errorsList, ValidationError{Field: "row " + strconv.Itoa(rowNum), Description: err.Error()})
			continue
		}
		signals = append(signals, signal)
	}

	if len(signals) > 0 {
		if err := demandRepo.Upsert(signals...); err != nil {
			log.Error().Err(err).Msg("could not store demand signals")
			writeError(w, http.StatusInternalServerError, codeInternalError, "could not store demand signals")
			return
		}
	}

	log.Info().Int("imported", len(signals)).Int("rejected", len(errorsList)).Msg("demand import")
	respond(w, r, http.StatusOK, ImportDemandResult{
		ImportedCount: len(signals),
		Errors:        errorsList,
	})
}
