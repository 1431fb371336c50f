package main

import (
	"net/http"
	"time"

	"github.com/gorilla/mux"
	"github.com/imroc/req/v3"
	"github.com/kelseyhightower/envconfig"
	"github.com/rs/zerolog/log"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/parishledger/bank-importer/pkg/importer"
	"github.com/parishledger/bank-importer/pkg/matcher"
	"github.com/parishledger/bank-importer/pkg/notifications"
	"github.com/parishledger/bank-importer/pkg/parser"
	"github.com/parishledger/bank-importer/pkg/printer"
	"github.com/parishledger/bank-importer/pkg/processor"
	"github.com/parishledger/bank-importer/pkg/repo"
)

type config struct {
	PostgresDSN string   `envconfig:"POSTGRES_CONNECTION_STRING" required:"true"`
	ListenAddr  string   `envconfig:"LISTEN_ADDR" default:":8080"`
	APIKey      string   `envconfig:"API_KEY" required:"true"`
	WebhookURLs []string `envconfig:"NOTIFY_WEBHOOK_URLS"`
}

func main() {
	var cfg config
	if err := envconfig.Process("", &cfg); err != nil {
		log.Fatal().Err(err).Msg("failed to read configuration")
	}

	db, err := gorm.Open(postgres.Open(cfg.PostgresDSN), &gorm.Config{})
	if err != nil {
		log.Fatal().Err(err).Msg("failed to get postgres")
	}

	log.Info().Msg("[Db] start migrations")

	if err = repo.Migrate(db); err != nil {
		log.Fatal().Err(err).Msg("failed to migrate")
	}

	dataRepo := repo.NewPostgres(db)

	processorSvc := processor.NewProcessor(&processor.Config{
		Parser:          parser.NewHSBC(),
		Importer:        importer.NewImporter(dataRepo),
		Matcher:         matcher.NewMatcher(dataRepo),
		Printer:         printer.NewPrinter(),
		NotificationSvc: notifications.NewWebhook(cfg.WebhookURLs, req.DefaultClient()),
	})

	handler := NewHandler(processorSvc, dataRepo, cfg.APIKey)

	r := mux.NewRouter()
	r.HandleFunc("/api/statements", handler.UploadStatement).Methods(http.MethodPost)
	r.HandleFunc("/api/contributions/match", handler.MatchContributions).Methods(http.MethodPost)
	r.HandleFunc("/api/transactions/unprocessed", handler.ListUnprocessed).Methods(http.MethodGet)

	srv := &http.Server{
		Handler:      r,
		Addr:         cfg.ListenAddr,
		WriteTimeout: 60 * time.Second,
		ReadTimeout:  60 * time.Second,
	}

	log.Info().Str("addr", cfg.ListenAddr).Msg("listening")

	log.Fatal().Err(srv.ListenAndServe()).Msg("server stopped")
}
