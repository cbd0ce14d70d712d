package controllers

import (
	"net/http"

	"amoura_server/helpers"
	"amoura_server/services"
)

// MatchController handles HTTP requests for finalized matches
type MatchController struct {
	MatchService   *services.MatchService
	SessionService *services.SessionService
}

// NewMatchController creates a new MatchController instance
func NewMatchController(match *services.MatchService, session *services.SessionService) *MatchController {
	return &MatchController{MatchService: match, SessionService: session}
}

// GetMatches handles fetching a participant's matches, ordered by round
func (mc *MatchController) GetMatches(w http.ResponseWriter, r *http.Request) {
	participantID := r.URL.Query().Get("participantId")
	if participantID == "" {
		helpers.WriteJSONError(w, http.StatusBadRequest, "participantId is required")
		return
	}
	sessionID := r.URL.Query().Get("sessionId")
	if sessionID == "" {
		sessionID = mc.SessionService.CurrentSession(r.Context())
	}

	matches, err := mc.MatchService.GetMatchesForParticipant(r.Context(), sessionID, participantID)
	if err != nil {
		helpers.WriteJSONError(w, http.StatusInternalServerError, err.Error())
		return
	}
	helpers.WriteJSONResponse(w, http.StatusOK, map[string]interface{}{
		"matches": matches,
	})
}

// GetSessionMatches handles fetching every finalized match of a session
func (mc *MatchController) GetSessionMatches(w http.ResponseWriter, r *http.Request) {
	sessionID := r.URL.Query().Get("sessionId")
	if sessionID == "" {
		sessionID = mc.SessionService.CurrentSession(r.Context())
	}
	if sessionID == "" {
		helpers.WriteJSONError(w, http.StatusBadRequest, "sessionId is required")
		return
	}

	matches, err := mc.MatchService.GetSessionMatches(r.Context(), sessionID)
	if err != nil {
		helpers.WriteJSONError(w, http.StatusInternalServerError, err.Error())
		return
	}
	helpers.WriteJSONResponse(w, http.StatusOK, map[string]interface{}{
		"matches": matches,
	})
}
