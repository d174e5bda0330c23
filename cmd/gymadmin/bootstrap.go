package main

import (
	"context"
	"fmt"
	"os"

	"gym_admin/internal/app"
	"gym_admin/internal/domain/membership"
	"gym_admin/internal/infra/config"
	"gym_admin/internal/infra/console"
	"gym_admin/internal/infra/database"
	"gym_admin/internal/infra/firebase"
	"gym_admin/internal/infra/logger"
	"gym_admin/internal/infra/secrets"
	"gym_admin/internal/infra/supabase"
)

// bootstrap reads the stored secrets and builds every backend client once.
// The returned cleanup releases what was opened.
func bootstrap(ctx context.Context, cfg *config.AppConfig) (*console.Menu, func(), error) {
	log := logger.Component("bootstrap")
	cleanup := func() {}

	bundle, err := secrets.NewFileStore(cfg.SecretsDir).Read()
	if err != nil {
		return nil, cleanup, fmt.Errorf("%w (run `gymadmin setup` first)", err)
	}
	log.WithField("backend_url", bundle.BackendURL).Info("Secrets loaded")

	clients, err := supabase.NewClients(bundle.BackendURL, bundle.AccessToken)
	if err != nil {
		return nil, cleanup, err
	}

	var directory membership.Directory = supabase.NewRestDirectory(clients)
	if cfg.UsesDirectDatabase() {
		pingCtx, cancel := context.WithTimeout(ctx, cfg.RequestTimeout)
		db, err := database.NewPostgresConnection(pingCtx, cfg.DatabaseURL)
		cancel()
		if err != nil {
			return nil, cleanup, err
		}
		cleanup = func() { db.Close() }
		directory = database.NewPostgresDirectory(db)
		log.Info("Membership queries go through the direct database connection")
	}

	credentialsPath := cfg.GoogleCredentials
	if credentialsPath == "" {
		credentialsPath = bundle.CredentialPath
	}
	sender, err := firebase.NewSender(ctx, credentialsPath, cfg.FirebaseProjectID, cfg.RequestTimeout, logger.Component("fcm"))
	if err != nil {
		cleanup()
		return nil, func() {}, err
	}

	notifier := app.NewNotificationService(sender, logger.Component("notifications"))
	adminService := app.NewAdminService(directory, notifier, os.Stdout, logger.Component("admin"))
	trainingService := app.NewTrainingService(
		supabase.NewTrainingStorage(clients.Storage, cfg.TrainingsBucket, cfg.UploadCacheControl),
		directory,
		notifier,
		os.Stdout,
		logger.Component("training"),
	)

	prompter := console.NewSurveyPrompter()
	menu := console.NewMenu(
		prompter,
		console.NewEnableUserFlow(prompter, adminService, logger.Component("enable_user")).Run,
		console.NewUploadTrainingFlow(prompter, trainingService, logger.Component("upload_training")).Run,
		logger.Component("menu"),
	)

	return menu, cleanup, nil
}
