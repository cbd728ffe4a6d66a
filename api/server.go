package api

import (
	"context"
	"fmt"
	"os"

	"github.com/alex-pricope/snackify/api/controllers"
	"github.com/alex-pricope/snackify/api/transport"
	"github.com/alex-pricope/snackify/auth"
	"github.com/alex-pricope/snackify/logging"
	"github.com/alex-pricope/snackify/snacks"
	"github.com/aws/aws-lambda-go/events"
	"github.com/aws/aws-lambda-go/lambda"
	ginadapter "github.com/awslabs/aws-lambda-go-api-proxy/gin"
	"github.com/gin-gonic/gin"
)

type Server struct {
	config *Config
}

func NewServer(config *Config) *Server {
	return &Server{
		config: config,
	}
}

func (s *Server) Start() {
	stores, err := OpenStores(context.Background(), s.config.StorageConfig)
	if err != nil {
		logging.Log.Errorf("failed to open storage: %v", err)
		panic("failed to open storage")
	}
	defer func() {
		if err := stores.Close(); err != nil {
			logging.Log.Errorf("failed to close storage: %v", err)
		}
	}()

	r := s.Routes(stores)

	//Do not run lambda helper locally
	if s.isLocal() {
		startLocal(r, s.config.Port)
	} else {
		startLambda(r)
	}
}

// Routes builds the engine with every controller registered against stores.
// Auth and profile routes exist only when an auth provider is configured.
func (s *Server) Routes(stores *Stores) *gin.Engine {
	mode := gin.ReleaseMode
	if s.isLocal() {
		mode = gin.DebugMode
	}
	r := transport.NewRouter(mode)

	var authService *auth.Service
	if s.config.AuthConfig.URL != "" {
		provider := auth.NewClient(s.config.AuthConfig.URL, s.config.AnonKey)
		verifier := auth.NewVerifier(s.config.JWTSecret, provider)
		authService = auth.NewService(provider, verifier, stores.Profiles)
		r.Use(transport.OptionalAuth(authService))
	}

	limiter := transport.NewRateLimiter(s.config.RateLimitPerSecond, s.config.RateLimitBurst)
	snackService := snacks.NewService(stores.Snacks, stores.Ratings, stores.Comments)

	//Register controllers
	controllers.NewHealthController().RegisterRoutes(r)
	controllers.NewSnackController(snackService, limiter).RegisterRoutes(r)
	controllers.NewRatingController(snackService, limiter).RegisterRoutes(r)
	controllers.NewCommentController(snackService, limiter).RegisterRoutes(r)
	controllers.NewLeaderboardController(snackService).RegisterRoutes(r)

	if authService == nil {
		logging.Log.Warn("auth.url is not set, auth and profile routes are disabled")
		return r
	}
	controllers.NewAuthController(authService).RegisterRoutes(r)
	controllers.NewProfileController(authService).RegisterRoutes(r)

	return r
}

func (s *Server) isLocal() bool {
	return os.Getenv("APP_ENV") == "local" || s.config.Env == "local"
}

// StartLambda sets up for AWS Lambda
func startLambda(engine *gin.Engine) {
	ginLambda := ginadapter.NewV2(engine)

	handler := func(ctx context.Context, req events.APIGatewayV2HTTPRequest) (events.APIGatewayV2HTTPResponse, error) {
		logging.Log.Infof("Lambda handler triggered on path: %s", req.RawPath)
		return ginLambda.ProxyWithContext(ctx, req)
	}

	logging.Log.Info("Starting lambda")
	lambda.Start(handler)
}

// StartLocal starts a normal HTTP server on the configured port
func startLocal(engine *gin.Engine, port int) {
	logging.Log.Info(fmt.Sprintf("Starting server on http://localhost:%d", port))

	if err := engine.Run(fmt.Sprintf(":%d", port)); err != nil {
		logging.Log.Fatalf("Failed to run server: %v", err)
	}
}
