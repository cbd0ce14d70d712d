package routes

import (
	"amoura_server/controllers"
	"amoura_server/services"

	"github.com/gorilla/mux"
)

// RegisterAuctionRoutes sets up routes for bidding under /api/auction
func RegisterAuctionRoutes(r *mux.Router, auction *services.AuctionService, session *services.SessionService) {
	controller := controllers.NewAuctionController(auction, session)

	auctionRouter := r.PathPrefix("/api/auction").Subrouter()

	auctionRouter.HandleFunc("/bid", controller.PlaceBid).Methods("POST")
	auctionRouter.HandleFunc("/items", controller.ListItems).Methods("GET")
}
