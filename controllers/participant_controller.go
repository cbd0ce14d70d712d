package controllers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"amoura_server/helpers"
	"amoura_server/services"
)

// ParticipantController handles HTTP requests for participants
type ParticipantController struct {
	ParticipantService *services.ParticipantService
	SessionService     *services.SessionService
}

// NewParticipantController creates a new ParticipantController instance
func NewParticipantController(participant *services.ParticipantService, session *services.SessionService) *ParticipantController {
	return &ParticipantController{ParticipantService: participant, SessionService: session}
}

// Register handles registering a new participant
func (pc *ParticipantController) Register(w http.ResponseWriter, r *http.Request) {
	var request struct {
		SessionID string `json:"sessionId"`
		Name      string `json:"name"`
		Gender    string `json:"gender"`
	}
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		helpers.WriteJSONError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if request.Gender == "" {
		helpers.WriteJSONError(w, http.StatusBadRequest, "gender is required")
		return
	}
	if request.SessionID == "" {
		request.SessionID = pc.SessionService.CurrentSession(r.Context())
	}
	if request.SessionID == "" {
		helpers.WriteJSONError(w, http.StatusBadRequest, "sessionId is required and no current session is set")
		return
	}

	participant, err := pc.ParticipantService.Register(r.Context(), request.SessionID, request.Name, request.Gender)
	if err != nil {
		helpers.WriteJSONError(w, http.StatusInternalServerError, err.Error())
		return
	}
	helpers.WriteJSONResponse(w, http.StatusCreated, participant)
}

// Get handles fetching a single participant
func (pc *ParticipantController) Get(w http.ResponseWriter, r *http.Request) {
	participantID := mux.Vars(r)["participantId"]

	participant, err := pc.ParticipantService.Get(r.Context(), participantID)
	if err != nil {
		if errors.Is(err, services.ErrParticipantNotFound) {
			helpers.WriteJSONError(w, http.StatusNotFound, err.Error())
			return
		}
		helpers.WriteJSONError(w, http.StatusInternalServerError, err.Error())
		return
	}
	helpers.WriteJSONResponse(w, http.StatusOK, participant)
}

// List handles fetching the session's participants
func (pc *ParticipantController) List(w http.ResponseWriter, r *http.Request) {
	sessionID := r.URL.Query().Get("sessionId")
	if sessionID == "" {
		sessionID = pc.SessionService.CurrentSession(r.Context())
	}
	if sessionID == "" {
		helpers.WriteJSONError(w, http.StatusBadRequest, "sessionId is required")
		return
	}

	participants, err := pc.ParticipantService.List(r.Context(), sessionID)
	if err != nil {
		helpers.WriteJSONError(w, http.StatusInternalServerError, err.Error())
		return
	}
	helpers.WriteJSONResponse(w, http.StatusOK, map[string]interface{}{
		"participants": participants,
	})
}
