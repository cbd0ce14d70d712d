package main

import (
	"log"
	"net/http"
	"os"

	"amoura_server/controllers"
	"amoura_server/routes"
	"amoura_server/services"

	"github.com/gorilla/mux"
	"github.com/rs/cors"
)

func main() {
	// Initialize DynamoDB client and service
	log.Println("Initializing DynamoDB client...")
	dynamoClient := services.InitializeDynamoDBClient()
	dynamoService := &services.DynamoService{Client: dynamoClient}
	log.Println("DynamoDB client initialized.")

	// Initialize Services
	sessionService := &services.SessionService{Dynamo: dynamoService}
	snapshotService := &services.SnapshotService{Dynamo: dynamoService}
	participantService := &services.ParticipantService{Dynamo: dynamoService}
	auctionService := &services.AuctionService{Dynamo: dynamoService}
	feedService := &services.FeedService{Dynamo: dynamoService, Session: sessionService}
	photoService := &services.PhotoService{Client: services.InitializeS3Client()}
	matchService := &services.MatchService{
		Dynamo:   dynamoService,
		Snapshot: snapshotService,
		Session:  sessionService,
	}

	// Set up the server port
	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	log.Printf("Using server port: %s\n", port)

	// Initialize the router
	r := mux.NewRouter()

	r.HandleFunc("/", controllers.WelcomeHandler).Methods("GET")
	r.HandleFunc("/health", controllers.HealthCheckHandler).Methods("GET")

	// Register routes
	routes.RegisterParticipantRoutes(r, participantService, sessionService)
	routes.RegisterAuctionRoutes(r, auctionService, sessionService)
	routes.RegisterFeedRoutes(r, feedService, photoService, sessionService)
	routes.RegisterMatchRoutes(r, matchService, sessionService)
	routes.RegisterAdminRoutes(r, matchService, sessionService, auctionService)

	// Add CORS middleware
	corsHandler := cors.New(cors.Options{
		AllowedOrigins:   []string{"*"}, // Adjust for specific domains if needed
		AllowedMethods:   []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Content-Type", "Authorization"},
		AllowCredentials: true,
	}).Handler(r)

	// Start the HTTP server
	log.Printf("Starting server on port %s...\n", port)
	log.Fatal(http.ListenAndServe(":"+port, corsHandler))
}
