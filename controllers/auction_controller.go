package controllers

import (
	"encoding/json"
	"errors"
	"net/http"

	"amoura_server/helpers"
	"amoura_server/services"
)

// AuctionController handles HTTP requests for the bidding flow
type AuctionController struct {
	AuctionService *services.AuctionService
	SessionService *services.SessionService
}

// NewAuctionController creates a new AuctionController instance
func NewAuctionController(auction *services.AuctionService, session *services.SessionService) *AuctionController {
	return &AuctionController{AuctionService: auction, SessionService: session}
}

// PlaceBid handles a bid on an auction item
func (ac *AuctionController) PlaceBid(w http.ResponseWriter, r *http.Request) {
	var request struct {
		SessionID     string `json:"sessionId"`
		ParticipantID string `json:"participantId"`
		ItemID        string `json:"itemId"`
		Amount        int64  `json:"amount"`
	}
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		helpers.WriteJSONError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if request.ParticipantID == "" || request.ItemID == "" || request.Amount <= 0 {
		helpers.WriteJSONError(w, http.StatusBadRequest, "participantId, itemId and a positive amount are required")
		return
	}
	if request.SessionID == "" {
		request.SessionID = ac.SessionService.CurrentSession(r.Context())
	}

	result, err := ac.AuctionService.PlaceBid(r.Context(), request.SessionID, request.ParticipantID, request.ItemID, request.Amount)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrItemNotFound):
			helpers.WriteJSONError(w, http.StatusNotFound, err.Error())
		case errors.Is(err, services.ErrItemNotActive),
			errors.Is(err, services.ErrBidTooLow),
			errors.Is(err, services.ErrInsufficientBalance):
			helpers.WriteJSONError(w, http.StatusBadRequest, err.Error())
		case errors.Is(err, services.ErrOutbid):
			helpers.WriteJSONError(w, http.StatusConflict, err.Error())
		default:
			helpers.WriteJSONError(w, http.StatusInternalServerError, err.Error())
		}
		return
	}
	helpers.WriteJSONResponse(w, http.StatusOK, result)
}

// ListItems handles fetching the session's auction items
func (ac *AuctionController) ListItems(w http.ResponseWriter, r *http.Request) {
	sessionID := r.URL.Query().Get("sessionId")
	if sessionID == "" {
		sessionID = ac.SessionService.CurrentSession(r.Context())
	}
	if sessionID == "" {
		helpers.WriteJSONError(w, http.StatusBadRequest, "sessionId is required")
		return
	}

	items, err := ac.AuctionService.ListItems(r.Context(), sessionID)
	if err != nil {
		helpers.WriteJSONError(w, http.StatusInternalServerError, err.Error())
		return
	}
	helpers.WriteJSONResponse(w, http.StatusOK, map[string]interface{}{
		"items": items,
	})
}
