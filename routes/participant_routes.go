package routes

import (
	"amoura_server/controllers"
	"amoura_server/services"

	"github.com/gorilla/mux"
)

// RegisterParticipantRoutes sets up routes for participants under /api/participants
func RegisterParticipantRoutes(r *mux.Router, participant *services.ParticipantService, session *services.SessionService) {
	controller := controllers.NewParticipantController(participant, session)

	participantRouter := r.PathPrefix("/api/participants").Subrouter()

	participantRouter.HandleFunc("", controller.Register).Methods("POST")
	participantRouter.HandleFunc("", controller.List).Methods("GET")
	participantRouter.HandleFunc("/{participantId}", controller.Get).Methods("GET")
}
