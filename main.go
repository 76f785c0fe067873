// main.go
package main

import (
	"log"

	"organic-store/cmd"
	"organic-store/internal/data/repository"
	"organic-store/internal/wire"
	"organic-store/pkg/database"
	"organic-store/pkg/mailer"
	"organic-store/pkg/utils"

	"go.uber.org/zap"
)

func main() {
	// Load config
	config, err := utils.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// Initialize logger
	logger, err := utils.InitLogger(config.App.LogPath, config.App.Debug)
	if err != nil {
		log.Printf("Failed to init logger: %v. Using standard log.", err)
		logger, _ = zap.NewProduction()
	}
	defer logger.Sync()

	logger.Info("Starting application",
		zap.String("app", config.App.Name),
		zap.String("port", config.App.Port),
		zap.Bool("debug", config.App.Debug),
	)

	// Connect to database (product catalog)
	db, err := database.InitDB(config.Database)
	if err != nil {
		logger.Fatal("Failed to connect to database", zap.Error(err))
	}
	defer db.Close()

	logger.Info("Database connected successfully")

	// OTP and session stores are in-memory by design; entries are lost
	// on restart.
	repos := repository.NewRepository(db, config.OTP, logger)

	mail := selectMailer(config, logger)

	// Wire all dependencies
	app := wire.Wiring(repos, mail, config, logger)

	// Start server
	logger.Info("Starting HTTP server", zap.String("port", config.App.Port))

	cmd.APIServer(app.Router, config.App.Port, logger)
}

func selectMailer(config *utils.Config, logger *zap.Logger) mailer.Service {
	switch {
	case config.Email.Dev:
		logger.Info("Mailer: dev mode, OTP codes are logged")
		return mailer.NewDevMailer(logger)
	case config.Email.MailerSendKey != "":
		logger.Info("Mailer: MailerSend")
		return mailer.NewMailerSendMailer(config.Email.MailerSendKey, config.Email.FromName, config.Email.From)
	case config.Email.SMTPHost != "":
		logger.Info("Mailer: SMTP", zap.String("host", config.Email.SMTPHost))
		return mailer.NewSMTPMailer(config.Email.SMTPHost, config.Email.SMTPPort, config.Email.From, config.Email.SMTPUser, config.Email.SMTPPass)
	default:
		logger.Warn("No mail provider configured, falling back to dev mailer")
		return mailer.NewDevMailer(logger)
	}
}
