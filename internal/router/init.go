package router

import (
	"github.com/checkpass/checkpass-server/internal/application"
	"github.com/checkpass/checkpass-server/internal/container"
	google "github.com/checkpass/checkpass-server/internal/infrastructure/google"
	pginfra "github.com/checkpass/checkpass-server/internal/infrastructure/postgres"
	"github.com/checkpass/checkpass-server/internal/infrastructure/sbp"
	handlers "github.com/checkpass/checkpass-server/internal/interface/http"
	"github.com/checkpass/checkpass-server/internal/router/modules"
	"github.com/checkpass/checkpass-server/pkg/helpers"
)

// InitModules builds all feature modules from the container singletons and
// registers them with the router registry. Called once during startup.
func InitModules(r *Registry) {
	cfg := container.GetConfig()
	logger := container.GetLogger()
	pool := container.GetPGPool()

	userRepo := pginfra.NewUserRepository(pool)
	codeRepo := pginfra.NewCodeRepository(pool)
	checkRepo := pginfra.NewCheckRepository(pool)

	limiter := helpers.NewAttemptLimiter(container.GetRedis(), cfg.MaxCodeAttempts, cfg.CodeTTL)

	// A typed-nil publisher must stay out of the interface so the service's
	// nil check works.
	var pub application.Publisher
	if rp := container.GetRabbitPub(); rp != nil {
		pub = rp
	}

	authSvc := application.NewAuthService(
		userRepo,
		codeRepo,
		container.GetMailgun(),
		google.NewVerifier(cfg.GoogleClientID),
		container.GetJWT(),
		limiter,
		pub,
		logger,
		cfg.CodeTTL,
	)
	userSvc := application.NewUserService(userRepo, checkRepo, container.GetGCS(), cfg.GCSBucket, logger, cfg.CheckQuota)
	checkSvc := application.NewCheckService(checkRepo)
	gateway := sbp.NewClient(cfg.SBPGatewayURL, cfg.SBPMerchant, cfg.SBPTerminal)

	r.Add(modules.NewAuthModule(handlers.NewAuthHandler(authSvc, logger)))
	r.Add(modules.NewUserModule(handlers.NewUserHandler(userSvc, logger), container.GetJWT()))
	r.Add(modules.NewCheckModule(handlers.NewCheckHandler(checkSvc, logger), container.GetJWT()))
	r.Add(modules.NewPaymentModule(handlers.NewPaymentHandler(gateway, logger)))
}
