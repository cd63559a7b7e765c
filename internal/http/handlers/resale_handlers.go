package handlers

import (
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/rogerio-castellano/paintchain/internal/analytics"
	"github.com/rogerio-castellano/paintchain/internal/models"
	repo "github.com/rogerio-castellano/paintchain/internal/repo"
	"github.com/rs/zerolog/log"
)

// GetListingsHandler godoc
// @Summary Resale marketplace listings
// @Description Every listing, annotated with a price hint when stale and a tag when its paint is listed more than once
// @Tags resale
// @Produce json
// @Success 200 {array} analytics.ListingInsight
// @Failure 500 {object} errorResponse
// @Router /api/resale/list [get]
func GetListingsHandler(w http.ResponseWriter, r *http.Request) {
	listings, err := resaleRepo.GetAll()
	if err != nil {
		log.Error().Err(err).Msg("could not retrieve listings")
		writeError(w, http.StatusInternalServerError, codeInternalError, "could not retrieve listings")
		return
	}
	respond(w, r, http.StatusOK, analytics.EnrichListings(listings, engine.Now()))
}

// GetMyListingsHandler godoc
// @Summary Listings of one seller
// @Tags resale
// @Produce json
// @Param sellerId query string false "Seller id; defaults to the session user"
// @Success 200 {array} models.ResaleListing
// @Failure 400 {object} errorResponse
// @Failure 500 {object} errorResponse
// @Router /api/resale/my-listings [get]
func GetMyListingsHandler(w http.ResponseWriter, r *http.Request) {
	sellerID := strings.TrimSpace(r.URL.Query().Get("sellerId"))
	if sellerID == "" {
		if s, ok := sessionFrom(r); ok {
			sellerID = s.ID
		}
	}
	if sellerID == "" {
		writeError(w, http.StatusBadRequest, codeInvalidQuery, "sellerId is required")
		return
	}

	listings, err := resaleRepo.GetBySeller(sellerID)
	if err != nil {
		log.Error().Err(err).Msg("could not retrieve listings")
		writeError(w, http.StatusInternalServerError, codeInternalError, "could not retrieve listings")
		return
	}
	respond(w, r, http.StatusOK, listings)
}

// CreateListingHandler godoc
// @Summary Put surplus paint up for resale
// @Tags resale
// @Accept json
// @Produce json
// @Param listing body CreateListingRequest true "Listing to create"
// @Success 201 {object} models.ResaleListing
// @Failure 400 {array} ValidationError
// @Failure 500 {object} errorResponse
// @Router /api/resale/create [post]
func CreateListingHandler(w http.ResponseWriter, r *http.Request) {
	var req CreateListingRequest
	if err := readJSON(w, r, &req); err != nil {
		writeError(w, http.StatusBadRequest, codeInvalidRequestBody, "invalid input")
		return
	}
	if req.SellerID == "" {
		if s, ok := sessionFrom(r); ok {
			req.SellerID = s.ID
		}
	}
	if validationErrors := validateListing(req); len(validationErrors) > 0 {
		respond(w, r, http.StatusBadRequest, validationErrors)
		return
	}

	listing, err := resaleRepo.Create(models.ResaleListing{
		SellerID:  req.SellerID,
		PaintName: req.PaintName,
		Quantity:  req.Quantity,
		Condition: req.Condition,
		Price:     req.Price,
		Location:  req.Location,
		Status:    models.ListingActive,
		CreatedAt: engine.Now().Format(time.RFC3339),
	})
	if err != nil {
		log.Error().Err(err).Msg("could not create listing")
		writeError(w, http.StatusInternalServerError, codeInternalError, "could not create listing")
		return
	}

	respond(w, r, http.StatusCreated, listing)
}

// BuyListingHandler godoc
// @Summary Buy from a resale listing
// @Description Takes the quantity from the listing; the listing becomes Sold when nothing is left
// @Tags resale
// @Accept json
// @Produce json
// @Param purchase body BuyListingRequest true "Listing id and quantity"
// @Success 200 {object} models.ResaleListing
// @Failure 400 {object} errorResponse
// @Failure 404 {object} errorResponse
// @Failure 500 {object} errorResponse
// @Router /api/resale/buy [post]
func BuyListingHandler(w http.ResponseWriter, r *http.Request) {
	var req BuyListingRequest
	if err := readJSON(w, r, &req); err != nil {
		writeError(w, http.StatusBadRequest, codeInvalidRequestBody, "invalid input")
		return
	}
	if strings.TrimSpace(req.ID) == "" || !req.Quantity.IsPositive() {
		writeError(w, http.StatusBadRequest, codeInvalidRequestBody, "id and a positive quantity are required")
		return
	}

	listing, err := resaleRepo.Buy(req.ID, req.Quantity)
	switch {
	case errors.Is(err, repo.ErrListingNotFound):
		writeError(w, http.StatusNotFound, codeListingNotFound, "Listing not found")
		return
	case errors.Is(err, repo.ErrInsufficientQuantity):
		writeError(w, http.StatusBadRequest, codeInsufficientQty, "Insufficient quantity")
		return
	case err != nil:
		log.Error().Err(err).Str("listing", req.ID).Msg("could not complete purchase")
		writeError(w, http.StatusInternalServerError, codeInternalError, "could not complete purchase")
		return
	}

	log.Info().Str("listing", listing.ID).Str("quantity", req.Quantity.String()).Str("status", listing.Status).Msg("resale purchase")
	respond(w, r, http.StatusOK, listing)
}
