package main

import (
	"context"
	"flag"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/lkupryaha/trenerbot/internal"
	"github.com/lkupryaha/trenerbot/internal/bot"
	"github.com/lkupryaha/trenerbot/internal/config"
	"github.com/lkupryaha/trenerbot/internal/logging"
	"github.com/lkupryaha/trenerbot/internal/report"
	"github.com/lkupryaha/trenerbot/internal/telemetry/metrics"
	"github.com/lkupryaha/trenerbot/internal/telemetry/tracing"
	"github.com/lkupryaha/trenerbot/internal/trainerapi"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/joho/godotenv"
	log "github.com/sirupsen/logrus"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
)

func main() {
	fmt.Println("starting ...")

	env := flag.String("env", "development", "environment [prod | production | dev | development]")
	configPath := flag.String("config", "./config.toml", "path for the TOML config file")
	flag.Parse()

	log.Warnf("---->> running in [%s] environment", *env)

	// secrets come from the environment, a local .env is enough for dev
	if err := godotenv.Load(); err != nil {
		log.Tracef("no .env file loaded: %s", err)
	}

	cfg, err := config.Load(*env, *configPath)
	if err != nil {
		panic(err)
	}

	sentryDSN := os.Getenv("SENTRY_DSN")
	logging.Setup(logging.LoggerSetupParams{
		LogFileName:      cfg.LogsPath,
		LogToStdout:      cfg.LogToStdout,
		LogLevel:         cfg.LogLevel,
		LogFormatJSON:    false,
		Environment:      cfg.Environment,
		SentryEnabled:    cfg.SentryEnabled,
		SentryDSN:        sentryDSN,
		SentryServerName: "trenerbot",
	})

	log.Debugf("using ops port: %d", cfg.Port)
	log.Debugf("using server logs path: [%s]", cfg.LogsPath)

	telegramToken := os.Getenv("TRENERBOT_TELEGRAM_TOKEN")
	if telegramToken == "" {
		log.Fatalf("telegram bot token not set, use TRENERBOT_TELEGRAM_TOKEN env var to set it")
	}
	if !config.ValidBotToken(telegramToken) {
		log.Fatalf("TRENERBOT_TELEGRAM_TOKEN does not look like a telegram bot token")
	}

	openAIAPIKey := os.Getenv("OPENAI_API_KEY")
	if openAIAPIKey == "" {
		log.Errorf("openai API key not set, use OPENAI_API_KEY env var to set it")
	}

	backendAPIKey := os.Getenv("TRENERBOT_BACKEND_API_KEY")
	if backendAPIKey == "" {
		log.Errorf("coach backend API key not set, use TRENERBOT_BACKEND_API_KEY env var to set it")
	}

	honeycombEnabled := os.Getenv("HONEYCOMB_ENABLED") == "true"
	if honeycombEnabled {
		if honeycombApiKey := os.Getenv("HONEYCOMB_API_KEY"); honeycombApiKey == "" {
			log.Warnln("HONEYCOMB_API_KEY env var not set")
		}
	} else {
		log.Debugln("honeycomb tracing disabled")
	}

	otelShutdown, err := tracing.HoneycombSetup(honeycombEnabled, "trenerbot")
	if err != nil {
		log.Fatalf("honeycomb setup: %s", err)
	}

	chOsInterrupt := make(chan os.Signal, 1)
	signal.Notify(chOsInterrupt, os.Interrupt, syscall.SIGTERM)

	ctx, cancel := context.WithCancel(context.Background())

	promRegistry := metrics.SetupPrometheus()
	metricsManager := metrics.NewManager("trenerbot", "bot", promRegistry)

	httpClient := &http.Client{
		Transport: otelhttp.NewTransport(http.DefaultTransport),
	}

	apiClient := trainerapi.NewClient(
		cfg.BackendAPIURL,
		cfg.BackendAPIVersion,
		trainerapi.Endpoints{
			Trainings:        cfg.EndpointTrainings,
			CurrentTrainings: cfg.EndpointCurrentTrainings,
			Reports:          cfg.EndpointReports,
			Allowed:          cfg.EndpointAllowed,
		},
		backendAPIKey,
		httpClient,
		metricsManager,
	)

	extractor := report.NewExtractor(openAIAPIKey, cfg.OpenAIBaseURL, cfg.OpenAIModel, httpClient)

	botAPI, err := tgbotapi.NewBotAPI(telegramToken)
	if err != nil {
		log.Fatalf("new telegram bot api: %s", err)
	}
	log.Infof("authorized on telegram account [%s]", botAPI.Self.UserName)

	sender := bot.NewTelegramSender(botAPI)
	handler := bot.NewHandler(apiClient, extractor, sender, metricsManager, cfg.MaxMessageLength)
	tgBot := bot.NewBot(
		botAPI,
		handler,
		sender,
		metricsManager,
		cfg.AdminChatID,
		cfg.ClientChatIDs,
		apiClient.SetAPIKey,
	)

	server := internal.NewServer(metricsManager, promRegistry, otelShutdown)
	server.Serve(cfg.Host, cfg.Port)

	go tgBot.Run(ctx)

	receivedSig := <-chOsInterrupt
	log.Warnf("signal [%s] received, killing everything ...", receivedSig)
	cancel()

	// go to sleep 🥱
	server.GracefulShutdown()
}
