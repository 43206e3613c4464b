package main

import (
	"context"
	"konsulin-portal/internal/app/config"
	"konsulin-portal/internal/app/delivery/console"
	"konsulin-portal/internal/app/drivers/logger"
	"konsulin-portal/internal/app/models"
	"konsulin-portal/internal/app/services/core/listing"
	"konsulin-portal/internal/app/services/core/notifications"
	portalNotifications "konsulin-portal/internal/app/services/portal/notifications"
	"konsulin-portal/internal/app/services/portal/psychologists"
	"konsulin-portal/internal/app/services/portal/sessions"
	"konsulin-portal/internal/app/services/shared/jwtmanager"
	"konsulin-portal/internal/app/services/shared/transport"
	"konsulin-portal/internal/pkg/constvars"
	"konsulin-portal/internal/pkg/dto/responses"
	"konsulin-portal/internal/pkg/utils"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"
)

// The console signs in either with CONSOLE_TOKEN, or by minting a token for
// CONSOLE_USER_ID and CONSOLE_ROLE with the shared JWT secret.
func main() {
	driverConfig := config.NewDriverConfig()
	internalConfig := config.NewInternalConfig()

	out := logger.NewConsoleLogger(os.Stdout, driverConfig.Logger.Level)
	log := zap.NewNop()
	if utils.GetEnvBool("CONSOLE_DEBUG", false) {
		log = logger.NewZapLogger(driverConfig, internalConfig)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	tokens, err := jwtmanager.NewJWTManager(internalConfig, log)
	if err != nil {
		out.Fatalf("cannot sign in: %v", err)
	}

	token := utils.GetEnvString("CONSOLE_TOKEN", "")
	if token == "" {
		token, err = tokens.CreateToken(ctx,
			utils.GetEnvString("CONSOLE_USER_ID", ""),
			constvars.Role(utils.GetEnvString("CONSOLE_ROLE", string(constvars.RoleUser))),
			time.Hour,
		)
		if err != nil {
			out.Fatalf("cannot sign in: %v", err)
		}
	}
	principal, err := tokens.VerifyToken(ctx, token)
	if err != nil {
		out.Fatalf("cannot sign in: %v", err)
	}
	ctx = models.WithPrincipal(ctx, *principal)
	ctx = models.WithRequestID(ctx, utils.GenerateRequestID())

	backend := transport.NewClient(transport.Options{
		BaseUrl:           internalConfig.Backend.BaseUrl,
		Timeout:           time.Duration(internalConfig.Backend.RequestTimeoutInSeconds) * time.Second,
		RequestsPerSecond: internalConfig.Backend.OutboundRequestsPerSecond,
		Burst:             internalConfig.Backend.OutboundBurst,
	}, log)

	errorHandler := listing.ErrorHandlerFunc(func(ctx context.Context, err error) {
		out.Errorf("request failed: %v", err)
	})
	policy := listing.ParseOvertakePolicy(internalConfig.Portal.ListOvertakePolicy)
	pageSize := internalConfig.Portal.DefaultPageSize

	sessionLister := listing.NewLister[responses.Session](
		sessions.NewFetcher(sessions.NewSessionAPIClient(backend, log)),
		listing.Options{Name: "sessions", PageSize: pageSize, Policy: policy, ErrorHandler: errorHandler},
		log,
	)
	psychologistLister := listing.NewLister[responses.PsychologistSummary](
		psychologists.NewFetcher(psychologists.NewPsychologistAPIClient(backend, log)),
		listing.Options{Name: "psychologists", PageSize: pageSize, Policy: policy, ErrorHandler: errorHandler},
		log,
	)

	store := notifications.NewUnreadStore()
	unsubscribe := store.Subscribe(func(count int) {
		out.Debugf("unread badge %d", count)
	})
	defer unsubscribe()
	notificationClient := portalNotifications.NewNotificationAPIClient(backend, log)
	feed := notifications.NewFeed(
		notificationClient,
		portalNotifications.NewFetcher(notificationClient),
		store,
		notifications.FeedOptions{PageSize: pageSize, Policy: policy, ErrorHandler: errorHandler},
		log,
	)

	out.Infof("signed in as %s (%s)", principal.UserID, principal.Role)
	if err := console.New(sessionLister, psychologistLister, feed, out).Run(ctx, os.Stdin); err != nil && ctx.Err() == nil {
		out.Errorf("console stopped: %v", err)
	}
}
