package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	youtubeclient "yt-uploader/infrastructure/clients/youtube"
	"yt-uploader/infrastructure/configuration"
	"yt-uploader/infrastructure/i18n"
	"yt-uploader/infrastructure/logger"
	"yt-uploader/infrastructure/oauth"
	"yt-uploader/infrastructure/persistence"
	"yt-uploader/infrastructure/realtime"
	"yt-uploader/infrastructure/utils"
	httpHandler "yt-uploader/interfaces/http"
	"yt-uploader/server"
	"yt-uploader/usecase"

	"golang.org/x/sync/errgroup"
)

var httpServer *http.Server

func recoverPanic() {
	if err := recover(); err != nil {
		logger.GetLogger().WithField("error", err).Error("Application panic recovered")
	}
}

func main() {
	defer recoverPanic()
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	interrupt := make(chan os.Signal, 1)
	signal.Notify(interrupt, os.Interrupt, syscall.SIGTERM)
	defer signal.Stop(interrupt)

	g, ctx := errgroup.WithContext(ctx)

	app := configuration.C.App
	texts := i18n.New(app.Language)
	logger.GetLogger().WithFields(map[string]interface{}{
		"dataDir":  configuration.C.Storage.DataDir,
		"language": texts.Language(),
		"callback": configuration.CallbackURL(),
	}).Info("Configuration loaded")

	channelRepository := persistence.NewChannelRepository(configuration.ChannelsFile())
	credentialFiles := persistence.NewCredentialFiles(configuration.CredentialsPath())
	presetRepository := persistence.NewPresetRepository(configuration.PresetsFile())

	authenticator := oauth.NewAuthenticator(configuration.C.OAuth.CallbackPort, configuration.C.OAuth.Timeout, texts)
	youtubeFactory := youtubeclient.NewFactory(configuration.C.Upload.ChunkSize)

	defaultCategory, defaultPrivacy := configuration.UploadDefaults()
	channelUseCase := usecase.NewChannelUseCase(channelRepository, credentialFiles, authenticator, youtubeFactory)
	uploadUseCase := usecase.NewUploadUseCase(channelUseCase, youtubeFactory, defaultCategory, defaultPrivacy)
	presetUseCase := usecase.NewPresetUseCase(presetRepository, persistence.NewPresetArchive())
	systemUseCase := usecase.NewSystemUseCase()

	hub := realtime.NewProgressHub()
	bulkSession := usecase.NewBulkSession(presetRepository, uploadUseCase, hub)

	router := server.InitiateRouter(server.Handlers{
		Channel: httpHandler.NewChannelHandler(channelUseCase, texts),
		Preset:  httpHandler.NewPresetHandler(presetUseCase, texts),
		Upload:  httpHandler.NewUploadHandler(uploadUseCase, hub, texts),
		Bulk:    httpHandler.NewBulkHandler(bulkSession, hub, texts),
		System:  httpHandler.NewSystemHandler(systemUseCase, texts),
		Hub:     hub,
	}, app.SecretKey, app.AllowedOrigins, texts)

	token, err := utils.GenerateSessionToken(app.SecretKey, app.SessionTTL)
	if err != nil {
		logger.GetLogger().WithField("error", err).Error("Cannot create session token")
		os.Exit(1)
	}
	// The desktop shell picks the token up from the SESSION_TOKEN= line on stdout.
	fmt.Println("SESSION_TOKEN=" + token)
	logger.GetLogger().Info("Session token issued")

	port := app.Port
	logger.GetLogger().WithField("port", port).Info("Starting application")
	httpServer = &http.Server{
		Addr:              fmt.Sprintf("127.0.0.1:%d", port),
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}
	g.Go(func() error {
		if err := httpServer.ListenAndServe(); !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})

	select {
	case <-interrupt:
		logger.GetLogger().Info("Application shutdown requested")
	case <-ctx.Done():
	}

	cancel()
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer shutdownCancel()

	_ = httpServer.Shutdown(shutdownCtx)

	if err := g.Wait(); err != nil {
		logger.GetLogger().WithField("error", err).Error("Server returned an error")
		os.Exit(2)
	}
}
