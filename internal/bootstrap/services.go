package bootstrap

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"

	"github.com/redis/go-redis/v9"

	"github.com/hskuntze/gestao-inventario-frontend-sub000/config"
	"github.com/hskuntze/gestao-inventario-frontend-sub000/internal/adapters/backendapi"
	"github.com/hskuntze/gestao-inventario-frontend-sub000/internal/adapters/devauth"
	"github.com/hskuntze/gestao-inventario-frontend-sub000/internal/adapters/jwtclaims"
	"github.com/hskuntze/gestao-inventario-frontend-sub000/internal/adapters/oauthgrant"
	redisadapter "github.com/hskuntze/gestao-inventario-frontend-sub000/internal/adapters/redis"
	"github.com/hskuntze/gestao-inventario-frontend-sub000/internal/apiclient"
	httpx "github.com/hskuntze/gestao-inventario-frontend-sub000/internal/http"
	"github.com/hskuntze/gestao-inventario-frontend-sub000/internal/platform"
	"github.com/hskuntze/gestao-inventario-frontend-sub000/internal/ports"
	"github.com/hskuntze/gestao-inventario-frontend-sub000/internal/service"
)

// ServiceDeps holds the external dependencies services are built from.
type ServiceDeps struct {
	Config *config.AppConfig
	Redis  redis.UniversalClient
	Logger *slog.Logger
	// ExitFunc terminates the hosting app on a confirmed exit. Only used
	// on the native platform; defaults to a logged os.Exit.
	ExitFunc func() error
}

// ServiceContainer holds all application services.
type ServiceContainer struct {
	Auth    *service.AuthService
	State   *service.AuthState
	Nav     *service.NavigationService
	Backend *apiclient.Client
}

// NewServices assembles the full service graph: token provider per auth
// mode, claims decoder, the intercepted backend client, redis-backed
// session store and event channel, and the services on top of them.
func NewServices(deps *ServiceDeps) (ServiceContainer, error) {
	if deps.Config == nil {
		return ServiceContainer{}, errors.New("config is required")
	}
	if deps.Redis == nil {
		return ServiceContainer{}, errors.New("redis client is required")
	}
	logger := deps.Logger
	if logger == nil {
		logger = slog.Default()
	}
	cfg := deps.Config

	tokens, err := buildTokenProvider(cfg.Auth, logger)
	if err != nil {
		return ServiceContainer{}, err
	}

	decoder, err := jwtclaims.NewDecoder(jwtclaims.Config{RolesClaimPath: cfg.Auth.RolesClaimPath})
	if err != nil {
		return ServiceContainer{}, fmt.Errorf("build claims decoder: %w", err)
	}

	// The interceptor needs to invalidate sessions on 401 but the auth
	// service needs the intercepted client for profile calls; the late
	// binding breaks the cycle.
	invalidator := &lateInvalidator{}

	base := cfg.HTTP.BasePath
	backend, err := apiclient.NewClient(apiclient.ClientOptions{
		BaseURL:   cfg.Backend.BaseURL,
		Timeout:   cfg.Backend.Timeout,
		Notifier:  httpx.Reactor{},
		Navigator: httpx.Reactor{},
		Sessions:  invalidator,
		Routes: apiclient.Routes{
			Login:         base + httpx.RouteLogin,
			NotAuthorized: base + httpx.RouteNotAuthorized,
			NotFound:      base + httpx.RouteNotFound,
		},
	})
	if err != nil {
		return ServiceContainer{}, fmt.Errorf("build backend client: %w", err)
	}

	sessionStore := redisadapter.NewSessionStore(deps.Redis)
	sessionEvents := redisadapter.NewSessionEvents(deps.Redis, logger)

	authSvc := service.NewAuthService(service.AuthServiceOptions{
		Tokens:   tokens,
		Claims:   decoder,
		Sessions: sessionStore,
		Profile:  backendapi.NewProfileClient(backend),
		Events:   sessionEvents,
		Logger:   logger,
	})
	invalidator.svc = authSvc

	navSvc := service.NewNavigationService(buildPlatform(cfg.Platform, deps.ExitFunc, logger), logger)

	state := service.NewAuthState(service.AuthStateOptions{
		Auth:   authSvc,
		Events: sessionEvents,
		Nav:    navSvc,
		Logger: logger,
	})

	return ServiceContainer{
		Auth:    authSvc,
		State:   state,
		Nav:     navSvc,
		Backend: backend,
	}, nil
}

//nolint:ireturn // the mode decides the concrete provider.
func buildTokenProvider(cfg config.AuthConfig, logger *slog.Logger) (ports.TokenProvider, error) {
	switch cfg.Mode {
	case config.AuthModeMock:
		logger.Warn("mock authentication enabled; do not use in production",
			"user_id", cfg.DevAuth.UserID)
		return devauth.NewProvider(devauth.Config{
			UserID:          cfg.DevAuth.UserID,
			Email:           cfg.DevAuth.Email,
			RoleIDs:         cfg.DevAuth.Roles,
			SessionDuration: cfg.SessionTTL,
		})
	case config.AuthModePassword:
		return oauthgrant.NewProvider(oauthgrant.ProviderConfig{
			TokenURL:     cfg.OAuth.TokenURL,
			ClientID:     cfg.OAuth.ClientID,
			ClientSecret: cfg.OAuth.ClientSecret,
			Scope:        cfg.OAuth.Scope,
			FallbackTTL:  cfg.SessionTTL,
		})
	default:
		return nil, fmt.Errorf("unsupported auth mode %q", cfg.Mode)
	}
}

//nolint:ireturn // the platform kind decides the concrete capability set.
func buildPlatform(cfg config.PlatformConfig, exitFunc func() error, logger *slog.Logger) platform.Platform {
	if cfg.Kind != config.PlatformNative {
		return platform.Web{}
	}
	if exitFunc == nil {
		exitFunc = func() error {
			logger.Info("exit confirmed, terminating")
			os.Exit(0)
			return nil
		}
	}
	return platform.Native{ExitFunc: exitFunc}
}

// lateInvalidator defers to the auth service once it exists.
type lateInvalidator struct {
	svc *service.AuthService
}

func (l *lateInvalidator) Invalidate(ctx context.Context, sessionID string) error {
	if l.svc == nil {
		return nil
	}
	return l.svc.Invalidate(ctx, sessionID)
}
