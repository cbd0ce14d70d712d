package controllers

import (
	"encoding/json"
	"errors"
	"net/http"

	"amoura_server/helpers"
	"amoura_server/services"
)

// FeedController handles HTTP requests for the photo feed
type FeedController struct {
	FeedService    *services.FeedService
	PhotoService   *services.PhotoService
	SessionService *services.SessionService
}

// NewFeedController creates a new FeedController instance
func NewFeedController(feed *services.FeedService, photo *services.PhotoService, session *services.SessionService) *FeedController {
	return &FeedController{FeedService: feed, PhotoService: photo, SessionService: session}
}

// RecordLike handles a like on another participant's photo
func (fc *FeedController) RecordLike(w http.ResponseWriter, r *http.Request) {
	var request struct {
		SessionID         string `json:"sessionId"`
		FromParticipantID string `json:"fromParticipantId"`
		ToParticipantID   string `json:"toParticipantId"`
		PhotoKey          string `json:"photoKey"`
	}
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		helpers.WriteJSONError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if request.FromParticipantID == "" || request.ToParticipantID == "" {
		helpers.WriteJSONError(w, http.StatusBadRequest, "fromParticipantId and toParticipantId are required")
		return
	}
	if request.SessionID == "" {
		request.SessionID = fc.SessionService.CurrentSession(r.Context())
	}

	like, err := fc.FeedService.RecordLike(r.Context(), request.SessionID, request.FromParticipantID, request.ToParticipantID, request.PhotoKey)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrSelfLike):
			helpers.WriteJSONError(w, http.StatusBadRequest, err.Error())
		case errors.Is(err, services.ErrHeartBudgetExceeded):
			helpers.WriteJSONError(w, http.StatusConflict, err.Error())
		default:
			helpers.WriteJSONError(w, http.StatusInternalServerError, err.Error())
		}
		return
	}
	helpers.WriteJSONResponse(w, http.StatusCreated, like)
}

// HeartsRemaining reports the caller's remaining like budget
func (fc *FeedController) HeartsRemaining(w http.ResponseWriter, r *http.Request) {
	participantID := r.URL.Query().Get("participantId")
	if participantID == "" {
		helpers.WriteJSONError(w, http.StatusBadRequest, "participantId is required")
		return
	}
	sessionID := r.URL.Query().Get("sessionId")
	if sessionID == "" {
		sessionID = fc.SessionService.CurrentSession(r.Context())
	}

	remaining, err := fc.FeedService.HeartsRemaining(r.Context(), sessionID, participantID)
	if err != nil {
		helpers.WriteJSONError(w, http.StatusInternalServerError, err.Error())
		return
	}
	helpers.WriteJSONResponse(w, http.StatusOK, map[string]int{"heartsRemaining": remaining})
}

// GetUploadURL issues a presigned URL for uploading a feed photo
func (fc *FeedController) GetUploadURL(w http.ResponseWriter, r *http.Request) {
	var request struct {
		FileName string `json:"fileName"`
		FileType string `json:"fileType"`
	}
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil || request.FileName == "" || request.FileType == "" {
		helpers.WriteJSONError(w, http.StatusBadRequest, "fileName and fileType are required")
		return
	}

	url, key, err := fc.PhotoService.GenerateUploadURL(request.FileName, request.FileType)
	if err != nil {
		helpers.WriteJSONError(w, http.StatusInternalServerError, err.Error())
		return
	}
	helpers.WriteJSONResponse(w, http.StatusOK, map[string]string{
		"uploadUrl": url,
		"photoKey":  key,
	})
}

// GetReadURL issues a presigned URL for displaying a feed photo
func (fc *FeedController) GetReadURL(w http.ResponseWriter, r *http.Request) {
	key := r.URL.Query().Get("photoKey")
	if key == "" {
		helpers.WriteJSONError(w, http.StatusBadRequest, "photoKey is required")
		return
	}

	url, err := fc.PhotoService.GenerateReadURL(key)
	if err != nil {
		helpers.WriteJSONError(w, http.StatusInternalServerError, err.Error())
		return
	}
	helpers.WriteJSONResponse(w, http.StatusOK, map[string]string{"readUrl": url})
}
