package api

import (
	"context"
	"database/sql"
	"fmt"
	"net/http"
	"os"

	"github.com/alex-pricope/hackathon-voting/api/controllers"
	"github.com/alex-pricope/hackathon-voting/api/transport"
	"github.com/alex-pricope/hackathon-voting/logging"
	"github.com/alex-pricope/hackathon-voting/storage"
	"github.com/aws/aws-lambda-go/events"
	"github.com/aws/aws-lambda-go/lambda"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	ginadapter "github.com/awslabs/aws-lambda-go-api-proxy/gin"
	"github.com/gin-contrib/sessions"
	"github.com/gin-contrib/sessions/cookie"
	"github.com/gin-gonic/gin"
	_ "github.com/lib/pq"
	"github.com/pkg/errors"
)

// device cookies outlive the event
const sessionMaxAge = 60 * 60 * 24 * 365

type Server struct {
	config *Config
}

func NewServer(config *Config) *Server {
	return &Server{
		config: config,
	}
}

func (s *Server) Start() {
	logging.SetLevel(s.config.LogLevel)

	gateway, err := s.newGateway(context.Background())
	if err != nil {
		logging.Log.Errorf("failed to set up storage: %v", err)
		panic("failed to set up storage")
	}

	r := transport.NewRouter(s.config.Mode, s.newSessionStore(), s.config.AllowedOrigins)

	//Register controllers
	controllers.NewTeamController(gateway.Teams, s.config.PublicURL, s.config.AdminToken).RegisterRoutes(r)
	controllers.NewVotingController(gateway).RegisterRoutes(r)
	controllers.NewPredictionController(gateway).RegisterRoutes(r)
	controllers.NewJudgeController(gateway, s.config.JudgeCode).RegisterRoutes(r)
	controllers.NewResultsController(gateway, s.config.JudgeCode).RegisterRoutes(r)
	controllers.NewAdminController(gateway, s.config.AdminToken).RegisterRoutes(r)

	//Do not run lambda helper locally
	if os.Getenv("APP_ENV") == "local" {
		startLocal(r, s.config.Port)
	} else {
		startLambda(r)
	}
}

func (s *Server) newSessionStore() sessions.Store {
	store := cookie.NewStore([]byte(s.config.SessionSecret))
	store.Options(SessionOptions(s.config.ServerConfig))
	return store
}

// SessionOptions keeps the device cookie first-party by default. A cross-origin frontend needs
// SameSite=None, which browsers only accept on Secure cookies.
func SessionOptions(conf ServerConfig) sessions.Options {
	opts := sessions.Options{
		Path:     "/",
		MaxAge:   sessionMaxAge,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	}
	if len(conf.AllowedOrigins) > 0 {
		opts.SameSite = http.SameSiteNoneMode
		opts.Secure = true
	}
	return opts
}

func (s *Server) newGateway(ctx context.Context) (*storage.Gateway, error) {
	switch s.config.Driver {
	case DriverDynamo:
		return s.newDynamoGateway(ctx)
	case DriverPostgres:
		return s.newPostgresGateway(ctx)
	case DriverMemory:
		logging.Log.Warn("using in-memory storage, data is lost on restart")
		return storage.NewMemoryGateway(nil, nil), nil
	default:
		return nil, fmt.Errorf("unknown storage driver %q", s.config.Driver)
	}
}

func (s *Server) newDynamoGateway(ctx context.Context) (*storage.Gateway, error) {
	cfg, err := awsconfig.LoadDefaultConfig(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load AWS config")
	}
	client := dynamodb.NewFromConfig(cfg)

	logging.Log.Infof("using DynamoDB storage")
	return &storage.Gateway{
		Teams:       &storage.DynamoTeamStorage{Client: client, TableName: s.config.TableNameTeams},
		Votes:       &storage.DynamoVoteStorage{Client: client, TableName: s.config.TableNameVotes},
		Predictions: &storage.DynamoPredictionStorage{Client: client, TableName: s.config.TableNamePredictions},
		Judges:      &storage.DynamoJudgeStorage{Client: client, TableName: s.config.TableNameJudges},
		JudgeVotes: &storage.DynamoJudgeVoteStorage{
			Client:          client,
			TableName:       s.config.TableNameJudgeVotes,
			TeamsTableName:  s.config.TableNameTeams,
			JudgesTableName: s.config.TableNameJudges,
		},
	}, nil
}

func (s *Server) newPostgresGateway(ctx context.Context) (*storage.Gateway, error) {
	if s.config.PostgresURL == "" {
		return nil, errors.New("storage.postgresURL is required for the postgres driver")
	}
	db, err := sql.Open("postgres", s.config.PostgresURL)
	if err != nil {
		return nil, errors.Wrap(err, "failed to open postgres")
	}
	if err := db.PingContext(ctx); err != nil {
		return nil, errors.Wrap(err, "failed to reach postgres")
	}
	if err := storage.CreateSchema(db); err != nil {
		return nil, errors.Wrap(err, "failed to create schema")
	}

	logging.Log.Infof("using Postgres storage")
	return &storage.Gateway{
		Teams:       &storage.PostgresTeamStorage{DB: db},
		Votes:       &storage.PostgresVoteStorage{DB: db},
		Predictions: &storage.PostgresPredictionStorage{DB: db},
		Judges:      &storage.PostgresJudgeStorage{DB: db},
		JudgeVotes:  &storage.PostgresJudgeVoteStorage{DB: db},
	}, nil
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
