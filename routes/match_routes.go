package routes

import (
	"amoura_server/controllers"
	"amoura_server/services"

	"github.com/gorilla/mux"
)

// RegisterMatchRoutes sets up routes for finalized matches under /api/match
func RegisterMatchRoutes(r *mux.Router, match *services.MatchService, session *services.SessionService) {
	controller := controllers.NewMatchController(match, session)

	matchRouter := r.PathPrefix("/api/match").Subrouter()

	matchRouter.HandleFunc("", controller.GetMatches).Methods("GET") // Handles /api/match with query parameters
	matchRouter.HandleFunc("/all", controller.GetSessionMatches).Methods("GET")
}
