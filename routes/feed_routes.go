package routes

import (
	"amoura_server/controllers"
	"amoura_server/services"

	"github.com/gorilla/mux"
)

// RegisterFeedRoutes sets up routes for the photo feed under /api/feed
func RegisterFeedRoutes(r *mux.Router, feed *services.FeedService, photo *services.PhotoService, session *services.SessionService) {
	controller := controllers.NewFeedController(feed, photo, session)

	feedRouter := r.PathPrefix("/api/feed").Subrouter()

	feedRouter.HandleFunc("/like", controller.RecordLike).Methods("POST")
	feedRouter.HandleFunc("/hearts", controller.HeartsRemaining).Methods("GET")
	feedRouter.HandleFunc("/uploadURL", controller.GetUploadURL).Methods("POST")
	feedRouter.HandleFunc("/readURL", controller.GetReadURL).Methods("GET")
}
