package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/elastic/go-elasticsearch/v9"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	"github.com/minhaz000/prime-motors-server/internal/config"
	"github.com/minhaz000/prime-motors-server/internal/es"
	"github.com/minhaz000/prime-motors-server/internal/events"
	"github.com/minhaz000/prime-motors-server/internal/handlers"
	"github.com/minhaz000/prime-motors-server/internal/logging"
	authmw "github.com/minhaz000/prime-motors-server/internal/middleware/auth"
	"github.com/minhaz000/prime-motors-server/internal/service/token"
	"github.com/minhaz000/prime-motors-server/internal/store"
	httpserver "github.com/minhaz000/prime-motors-server/internal/transport/http"
)

const listingIndex = "products"

func main() {
	configuration, err := config.LoadConfig()
	if err != nil {
		log.Fatal(err)
	}

	logger := logging.New(configuration.LOG_LEVEL)

	ctx := context.Background()
	client, err := store.Connect(ctx, configuration.DB_URL)
	if err != nil {
		log.Fatalf("database connection failed: %v", err)
	}
	logger.Info("database connection established")

	st := store.NewMongo(client, configuration.DB_NAME)

	var producer events.Publisher = events.Noop{}
	var kafkaProducer *events.Producer
	if configuration.KAFKA_ADDRESS != "" {
		kafkaProducer = events.NewProducer([]string{configuration.KAFKA_ADDRESS})
		producer = kafkaProducer
	} else {
		logger.Warn("KAFKA_ADDRESS not set, event publishing disabled")
	}

	var esClient *elasticsearch.Client
	if configuration.ES_URL != "" {
		esClient, err = es.NewClient(configuration)
		if err != nil {
			log.Fatalf("elasticsearch connection failed: %v", err)
		}
	} else {
		logger.Warn("ES_URL not set, listing search disabled")
	}

	tokens := &token.TokenService{Users: st.Users, JWTSecret: []byte(configuration.ACCESS_TOKEN_SECRET)}

	e := echo.New()
	e.Pre(middleware.RemoveTrailingSlash())
	e.Use(middleware.Recover(), middleware.RequestID(), middleware.CORS())

	deps := httpserver.Deps{
		Auth:            &authmw.Middleware{Tokens: tokens, Users: st.Users},
		AuthHandler:     &handlers.AuthHandler{Tokens: tokens},
		ProductHandler:  &handlers.ProductHandler{Store: st, Producer: producer, ES: esClient, Index: listingIndex},
		BookingHandler:  &handlers.BookingHandler{Store: st, Producer: producer},
		CategoryHandler: &handlers.CategoryHandler{Store: st},
		UserHandler:     &handlers.UserHandler{Store: st, Producer: producer},
		SearchHandler:   &handlers.SearchHandler{ES: esClient, Index: listingIndex},
	}
	httpserver.Register(e, &deps)

	srv := &http.Server{
		Addr:         ":" + configuration.PORT,
		Handler:      e,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		logger.Info("server listening", "addr", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("http server error: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("server shutdown error", "err", err)
	}
	if err := client.Disconnect(shutdownCtx); err != nil {
		logger.Error("db disconnect error", "err", err)
	}
	if kafkaProducer != nil {
		if err := kafkaProducer.Close(); err != nil {
			logger.Error("kafka close error", "err", err)
		}
	}

	logger.Info("shutdown complete")
}
