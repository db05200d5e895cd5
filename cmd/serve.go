package cmd

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/beka-birhanu/mazeball/api"
	api_i "github.com/beka-birhanu/mazeball/api/i"
	mazeapi "github.com/beka-birhanu/mazeball/api/maze"
	"github.com/beka-birhanu/mazeball/config"
	"github.com/beka-birhanu/mazeball/infrastruture/cache"
	logger "github.com/beka-birhanu/mazeball/infrastruture/log"
	"github.com/beka-birhanu/mazeball/infrastruture/repo"
	"github.com/beka-birhanu/mazeball/service"
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"github.com/spf13/cobra"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const connectTimeout = 60 * time.Second

func init() {
	serveCmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the maze HTTP API",
		Long: `Run the maze HTTP API. Sessions are stored in MongoDB and projected
layouts are cached in Redis. Configuration is read from the environment
and an optional .env file.`,
		RunE: runServe,
	}

	rootCmd.AddCommand(serveCmd)
}

func runServe(cmd *cobra.Command, args []string) error {
	appLogger, err := logger.New("APP", config.ColorGreen, os.Stdout)
	if err != nil {
		return err
	}

	cfg, err := config.Load()
	if err != nil {
		appLogger.Error(fmt.Sprintf("Loading configuration: %v", err))
		return err
	}
	gin.SetMode(cfg.GinMode)

	ctx, cancel := context.WithTimeout(cmd.Context(), connectTimeout)
	defer cancel()

	mongoClient, err := mongo.Connect(ctx, options.Client().ApplyURI(cfg.MongoURI()))
	if err != nil {
		appLogger.Error(fmt.Sprintf("Failed to connect to MongoDB: %v", err))
		return err
	}
	defer func() {
		_ = mongoClient.Disconnect(context.Background())
	}()
	if err = mongoClient.Ping(ctx, nil); err != nil {
		appLogger.Error(fmt.Sprintf("MongoDB ping failed: %v", err))
		return err
	}
	appLogger.Info("Connected to MongoDB")

	redisClient := redis.NewClient(&redis.Options{
		Addr:     cfg.RedisAddr,
		Password: cfg.RedisPassword,
	})
	defer redisClient.Close()
	if err := redisClient.Ping(ctx).Err(); err != nil {
		appLogger.Warning(fmt.Sprintf("Redis ping failed, layouts will be served uncached: %v", err))
	} else {
		appLogger.Info("Connected to Redis")
	}

	mazeRepo := repo.NewMazeRepo(mongoClient, cfg.DBName, cfg.DBCollection)
	appLogger.Info("Maze repository initialized")

	layoutCache, err := cache.NewRedisLayoutCache(redisClient, int(cfg.LayoutCacheTTL/time.Second))
	if err != nil {
		appLogger.Error(fmt.Sprintf("Creating layout cache: %v", err))
		return err
	}
	appLogger.Info("Layout cache initialized")

	serviceLogger, err := logger.New("MAZE-SERVICE", config.ColorCyan, os.Stdout)
	if err != nil {
		appLogger.Error(fmt.Sprintf("Creating maze service logger: %v", err))
		return err
	}

	mazeService, err := service.NewMazeService(mazeRepo, layoutCache, serviceLogger, &service.MazeOptions{
		MaxDimension: cfg.MaxMazeDimension,
	})
	if err != nil {
		appLogger.Error(fmt.Sprintf("Creating maze service: %v", err))
		return err
	}
	appLogger.Info("Maze service initialized")

	mazeController, err := mazeapi.NewMazeController(mazeService)
	if err != nil {
		appLogger.Error(fmt.Sprintf("Creating maze controller: %v", err))
		return err
	}

	router := api.NewRouter(api.Config{
		Addr:        cfg.RESTAddr(),
		BaseURL:     "/api",
		Controllers: []api_i.Controller{mazeController},
	})
	appLogger.Info(fmt.Sprintf("Router initialized, listening on %s", cfg.RESTAddr()))

	if err := router.Run(); err != nil {
		appLogger.Error(fmt.Sprintf("Starting server: %v", err))
		return err
	}
	return nil
}
