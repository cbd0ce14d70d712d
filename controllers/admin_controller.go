package controllers

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"amoura_server/helpers"
	"amoura_server/matching"
	"amoura_server/models"
	"amoura_server/services"
)

// AdminController handles event administration: session settings,
// auction item management, and the finalize run.
type AdminController struct {
	MatchService   *services.MatchService
	SessionService *services.SessionService
	AuctionService *services.AuctionService
}

// NewAdminController creates a new AdminController instance
func NewAdminController(match *services.MatchService, session *services.SessionService, auction *services.AuctionService) *AdminController {
	return &AdminController{MatchService: match, SessionService: session, AuctionService: auction}
}

// FinalizeMatches runs the matching engine over the session and
// replaces its finalized matches.
func (ac *AdminController) FinalizeMatches(w http.ResponseWriter, r *http.Request) {
	var request struct {
		SessionID string `json:"sessionId"`
	}
	// The body is optional; an absent one means "use the current session".
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil && !errors.Is(err, io.EOF) {
		helpers.WriteJSONError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	sessionID := request.SessionID
	if sessionID == "" {
		sessionID = ac.SessionService.CurrentSession(r.Context())
	}
	if sessionID == "" {
		helpers.WriteJSONError(w, http.StatusBadRequest, "sessionId is required and no current session is set")
		return
	}

	summary, err := ac.MatchService.FinalizeMatches(r.Context(), sessionID)
	if err != nil {
		if errors.Is(err, matching.ErrNoGenderGroups) {
			helpers.WriteJSONError(w, http.StatusUnprocessableEntity, err.Error())
			return
		}
		helpers.WriteJSONError(w, http.StatusInternalServerError, err.Error())
		return
	}
	helpers.WriteJSONResponse(w, http.StatusOK, summary)
}

// UpdateSetting writes one key/value setting, validating the phase key.
func (ac *AdminController) UpdateSetting(w http.ResponseWriter, r *http.Request) {
	var request struct {
		Key   string `json:"key"`
		Value string `json:"value"`
	}
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		helpers.WriteJSONError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if request.Key == "" {
		helpers.WriteJSONError(w, http.StatusBadRequest, "key is required")
		return
	}
	if request.Key == models.SettingCurrentPhase && !services.IsValidPhase(request.Value) {
		helpers.WriteJSONError(w, http.StatusBadRequest, "unknown phase: "+request.Value)
		return
	}

	if err := ac.SessionService.PutSetting(r.Context(), request.Key, request.Value); err != nil {
		helpers.WriteJSONError(w, http.StatusInternalServerError, err.Error())
		return
	}
	helpers.WriteJSONResponse(w, http.StatusOK, models.Setting{Key: request.Key, Value: request.Value})
}

// GetSetting reads one key/value setting.
func (ac *AdminController) GetSetting(w http.ResponseWriter, r *http.Request) {
	key := r.URL.Query().Get("key")
	if key == "" {
		helpers.WriteJSONError(w, http.StatusBadRequest, "key is required")
		return
	}
	value, err := ac.SessionService.GetSetting(r.Context(), key)
	if err != nil {
		helpers.WriteJSONError(w, http.StatusNotFound, "setting not found")
		return
	}
	helpers.WriteJSONResponse(w, http.StatusOK, models.Setting{Key: key, Value: value})
}

// CreateItem adds an auction item to the session.
func (ac *AdminController) CreateItem(w http.ResponseWriter, r *http.Request) {
	var request struct {
		SessionID string `json:"sessionId"`
		Title     string `json:"title"`
	}
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		helpers.WriteJSONError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if request.Title == "" {
		helpers.WriteJSONError(w, http.StatusBadRequest, "title is required")
		return
	}
	if request.SessionID == "" {
		request.SessionID = ac.SessionService.CurrentSession(r.Context())
	}

	item, err := ac.AuctionService.CreateItem(r.Context(), request.SessionID, request.Title)
	if err != nil {
		helpers.WriteJSONError(w, http.StatusInternalServerError, err.Error())
		return
	}
	helpers.WriteJSONResponse(w, http.StatusCreated, item)
}

// CloseItem stops further bidding on an item.
func (ac *AdminController) CloseItem(w http.ResponseWriter, r *http.Request) {
	var request struct {
		ItemID string `json:"itemId"`
	}
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil || request.ItemID == "" {
		helpers.WriteJSONError(w, http.StatusBadRequest, "itemId is required")
		return
	}
	if err := ac.AuctionService.CloseItem(r.Context(), request.ItemID); err != nil {
		helpers.WriteJSONError(w, http.StatusInternalServerError, err.Error())
		return
	}
	helpers.WriteJSONResponse(w, http.StatusOK, map[string]string{"itemId": request.ItemID, "status": models.ItemStatusClosed})
}
