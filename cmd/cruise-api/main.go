// README: Entry point; loads config, wires backend/AI/memory, starts HTTP server.
package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"

	"cruise/internal/ai"
	"cruise/internal/backend"
	"cruise/internal/chatbot"
	"cruise/internal/config"
	httptransport "cruise/internal/http"
	"cruise/internal/infra"
	"cruise/internal/maps"
	"cruise/internal/memory"
	"cruise/internal/notify"
)

func main() {
	_ = godotenv.Load()

	logrus.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	log := logrus.WithField("component", "main")

	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	var b backend.Backend
	switch cfg.Backend.Kind {
	case "http":
		b = backend.NewClient(cfg.Backend.BaseURL, cfg.Backend.APIKey)
	case "postgres":
		dbPool, err := infra.NewDB(ctx, cfg.DB.DSN)
		if err != nil {
			log.Fatalf("db init: %v", err)
		}
		defer dbPool.Close()
		b = backend.NewPostgres(dbPool)
	default:
		b = backend.NewMock()
	}

	var mem memory.Store
	if cfg.Memory.Kind == "redis" {
		redisClient := infra.NewRedis(cfg.Redis.Addr)
		defer redisClient.Close()
		mem = memory.NewRedis(redisClient, cfg.Memory.MaxTurns, time.Duration(cfg.Memory.TTLHours)*time.Hour)
	} else {
		mem = memory.NewInMemory(cfg.Memory.MaxTurns, cfg.Memory.MaxUsers)
	}

	var llm ai.LLMProvider
	if cfg.AI.GeminiKey != "" {
		gemini, err := ai.NewGeminiProvider(ctx, cfg.AI.GeminiKey)
		if err != nil {
			log.Fatalf("gemini init: %v", err)
		}
		defer gemini.Close()
		llm = gemini
	} else {
		log.Warn("GEMINI_API_KEY not set, general chat and recommendations degraded")
	}

	var geocoder chatbot.Geocoder
	if cfg.Maps.APIKey != "" {
		locations, err := maps.NewLocationService(cfg.Maps.APIKey)
		if err != nil {
			log.Fatalf("maps init: %v", err)
		}
		geocoder = locations
	}

	chatbotSvc := chatbot.NewService(chatbot.Deps{
		Backend:   b,
		LLM:       llm,
		Sentiment: ai.NewHostedSentimentModel(cfg.AI.SentimentURL, cfg.AI.SentimentKey),
		Memory:    mem,
		Geocoder:  geocoder,
	})

	var sender notify.Sender
	if cfg.Notify.PushURL != "" {
		sender = notify.NewHTTPSender(cfg.Notify.PushURL)
	}
	notifySvc := notify.NewService(b, sender)

	router := httptransport.NewRouter(httptransport.ServerDeps{
		Chatbot: chatbotSvc,
		Notify:  notifySvc,
	})

	server := &http.Server{Addr: cfg.HTTP.Addr, Handler: router}

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		_ = server.Shutdown(shutdownCtx)
	}()

	log.Infof("listening on %s (backend=%s, memory=%s)", cfg.HTTP.Addr, cfg.Backend.Kind, cfg.Memory.Kind)
	if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		log.Fatal(err)
	}
}
