package routes

import (
	"amoura_server/controllers"
	"amoura_server/services"

	"github.com/gorilla/mux"
)

// RegisterAdminRoutes sets up routes for event administration under /api/admin
func RegisterAdminRoutes(r *mux.Router, match *services.MatchService, session *services.SessionService, auction *services.AuctionService) {
	controller := controllers.NewAdminController(match, session, auction)

	adminRouter := r.PathPrefix("/api/admin").Subrouter()

	adminRouter.HandleFunc("/finalizeMatches", controller.FinalizeMatches).Methods("POST")
	adminRouter.HandleFunc("/session", controller.UpdateSetting).Methods("POST")
	adminRouter.HandleFunc("/session", controller.GetSetting).Methods("GET")
	adminRouter.HandleFunc("/items", controller.CreateItem).Methods("POST")
	adminRouter.HandleFunc("/items/close", controller.CloseItem).Methods("POST")
}
