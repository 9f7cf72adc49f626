package main

import (
	"context"
	"log"
	"net/http"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	_ "github.com/lib/pq"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"brokerage-backend/internal/config"
	"brokerage-backend/internal/infra/database"
	"brokerage-backend/internal/infra/http/handlers"
	"brokerage-backend/internal/infra/http/middleware"
	"brokerage-backend/internal/infra/integration/gemini"
	"brokerage-backend/internal/infra/mail"
	"brokerage-backend/internal/infra/queue"
	"brokerage-backend/internal/infra/storage"
	"brokerage-backend/internal/infra/worker"
	"brokerage-backend/internal/usecase"
)

func main() {
	cfg := config.Load()

	db, err := database.NewDBConnection(cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("❌ Database connection failed: %v", err)
	}
	defer db.Close()

	rabbitMQ, err := queue.NewRabbitMQ(cfg.RabbitUser, cfg.RabbitPass, cfg.RabbitHost, cfg.RabbitPort)
	if err != nil {
		log.Fatalf("❌ RabbitMQ connection failed: %v", err)
	}
	defer rabbitMQ.Conn.Close()
	defer rabbitMQ.Ch.Close()

	// 1. Repositories
	leadRepo := database.NewLeadRepository(db)
	contactRepo := database.NewContactRepository(db)
	propertyRepo := database.NewPropertyRepository(db)
	neighborhoodRepo := database.NewNeighborhoodRepository(db)
	postRepo := database.NewPostRepository(db)

	// 2. Gateways and adapters
	geminiClient := gemini.NewClient(cfg.GeminiAPIKey, cfg.GeminiBaseURL, cfg.GeminiModel)
	producer := queue.NewProducer(rabbitMQ.Conn, rabbitMQ.Ch)
	mailSender := mail.NewEmailSender(
		cfg.MailHost, cfg.MailPort, cfg.MailUser, cfg.MailPass, cfg.MailFrom, cfg.AlertsEmail,
	)
	storageClient := storage.NewClient(cfg.StorageURL, cfg.StorageKey)

	// 3. Workers (notification consumer + daily follow-up sweeper)
	notificationWorker := queue.NewWorker(rabbitMQ, mailSender)
	go notificationWorker.Start(queue.QueueName)

	followUpWorker := worker.NewFollowUpWorker(db, producer)
	go followUpWorker.Start(context.Background())

	// 4. UseCases
	chatRespondUC := usecase.NewChatRespondUseCase(
		geminiClient,
		usecase.NewKeywordClassifier(),
		leadRepo,
		producer,
		cfg.LeadAtomicUpsert,
	)
	submitContactUC := usecase.NewSubmitContactUseCase(contactRepo, producer)

	// 5. Handlers
	chatbotHandler := handlers.NewChatbotHandler(chatRespondUC)
	contactHandler := handlers.NewContactHandler(submitContactUC)
	leadHandler := handlers.NewLeadHandler(leadRepo)
	propertyHandler := handlers.NewPropertyHandler(propertyRepo)
	neighborhoodHandler := handlers.NewNeighborhoodHandler(neighborhoodRepo)
	postHandler := handlers.NewPostHandler(postRepo)
	uploadHandler := handlers.NewUploadHandler(storageClient, cfg.StorageBucket)
	healthHandler := handlers.NewHealthHandler(db, rabbitMQ.Conn, cfg.GeminiAPIKey != "")

	// 6. Router
	r := chi.NewRouter()
	r.Use(chimiddleware.Logger)
	r.Use(chimiddleware.Recoverer)
	r.Use(middleware.Metrics)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"http://localhost:3000", "*"},
		AllowedMethods: []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Content-Type"},
	}))

	r.Get("/health", healthHandler.Handle)
	r.Handle("/metrics", promhttp.Handler())

	r.Route("/api", func(r chi.Router) {
		r.Post("/chatbot", chatbotHandler.Handle)
		r.Post("/contact", contactHandler.Handle)

		r.Get("/properties", propertyHandler.HandleList)
		r.Get("/properties/{id}", propertyHandler.HandleGet)
		r.Get("/neighborhoods", neighborhoodHandler.HandleList)
		r.Get("/neighborhoods/{slug}", neighborhoodHandler.HandleGet)
		r.Get("/posts", postHandler.HandleList)
		r.Get("/posts/{slug}", postHandler.HandleGet)

		r.Route("/admin", func(r chi.Router) {
			r.Get("/leads", leadHandler.HandleList)

			r.Post("/properties", propertyHandler.HandleCreate)
			r.Put("/properties/{id}", propertyHandler.HandleUpdate)
			r.Delete("/properties/{id}", propertyHandler.HandleDelete)

			r.Post("/neighborhoods", neighborhoodHandler.HandleCreate)
			r.Put("/neighborhoods/{slug}", neighborhoodHandler.HandleUpdate)
			r.Delete("/neighborhoods/{id}", neighborhoodHandler.HandleDelete)

			r.Post("/posts", postHandler.HandleCreate)
			r.Put("/posts/{slug}", postHandler.HandleUpdate)
			r.Delete("/posts/{id}", postHandler.HandleDelete)

			r.Post("/uploads", uploadHandler.Handle)
		})
	})

	addr := ":" + cfg.HTTPPort
	log.Printf("🔥 Summit Ridge backend listening on %s", addr)
	if err := http.ListenAndServe(addr, r); err != nil {
		log.Fatalf("❌ Server stopped: %v", err)
	}
}
