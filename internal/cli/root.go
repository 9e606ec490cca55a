// Package cli implements programdesignctl, the operator tool for inspecting
// the polarity rules, the wizard steps and stored projects.
package cli

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/dalemusser/programdesign/internal/app/store/audit"
	projectstore "github.com/dalemusser/programdesign/internal/app/store/projects"
	"github.com/dalemusser/programdesign/internal/app/system/timeouts"
	"github.com/dalemusser/programdesign/internal/domain/models"
	"github.com/spf13/cobra"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.uber.org/zap"
)

const (
	defaultMongoURI      = "mongodb://localhost:27017"
	defaultMongoDatabase = "program_design"
)

// Source reads stored projects and audit events regardless of owner.
type Source interface {
	GetByID(ctx context.Context, id primitive.ObjectID) (models.Project, error)
	GetRecent(ctx context.Context, limit int64) ([]audit.Event, error)
}

// Opener connects to the stores. The returned func releases them.
type Opener func(ctx context.Context, uri, database string, logger *zap.Logger) (Source, func(context.Context) error, error)

// mongoSource joins the project and audit stores of one database.
type mongoSource struct {
	*projectstore.Store
	events *audit.Store
}

func (m mongoSource) GetRecent(ctx context.Context, limit int64) ([]audit.Event, error) {
	return m.events.GetRecent(ctx, limit)
}

// NewRootCommand creates the root command. open is used only by the
// subcommands that read MongoDB.
func NewRootCommand(open Opener) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "programdesignctl",
		Short: "Inspect program designs and the wizard rules",
		Long: `Operator tool for the program design service.

transform, rules and steps work offline. export and progress read a stored
project from MongoDB by id, and recent lists the latest project events.`,
		SilenceUsage: true,
	}

	rootCmd.PersistentFlags().String("mongo-uri", envOr("PROGRAMDESIGN_MONGO_URI", defaultMongoURI), "MongoDB connection URI")
	rootCmd.PersistentFlags().String("mongo-database", envOr("PROGRAMDESIGN_MONGO_DATABASE", defaultMongoDatabase), "MongoDB database name")
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "Log connection details to stderr")

	rootCmd.AddCommand(NewTransformCommand())
	rootCmd.AddCommand(NewRulesCommand())
	rootCmd.AddCommand(NewStepsCommand())
	rootCmd.AddCommand(NewExportCommand(open))
	rootCmd.AddCommand(NewProgressCommand(open))
	rootCmd.AddCommand(NewRecentCommand(open))

	return rootCmd
}

// Execute runs the root command against MongoDB.
func Execute() error {
	if err := NewRootCommand(OpenMongo).Execute(); err != nil {
		return fmt.Errorf("command failed: %w", err)
	}
	return nil
}

// OpenMongo is the Opener used outside tests.
func OpenMongo(ctx context.Context, uri, database string, logger *zap.Logger) (Source, func(context.Context) error, error) {
	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri).SetAppName("programdesignctl"))
	if err != nil {
		return nil, nil, fmt.Errorf("mongo connect: %w", err)
	}
	if err := client.Ping(ctx, nil); err != nil {
		_ = client.Disconnect(context.Background())
		return nil, nil, fmt.Errorf("mongo ping: %w", err)
	}
	logger.Debug("connected to MongoDB", zap.String("database", database))
	db := client.Database(database)
	return mongoSource{Store: projectstore.New(db), events: audit.New(db)}, client.Disconnect, nil
}

// withSource opens the stores for the duration of fn.
func withSource(cmd *cobra.Command, open Opener, fn func(ctx context.Context, src Source) error) error {
	uri, _ := cmd.Flags().GetString("mongo-uri")
	database, _ := cmd.Flags().GetString("mongo-database")
	logger := commandLogger(cmd)
	defer func() { _ = logger.Sync() }()

	ctx, cancel := context.WithTimeout(cmdContext(cmd), timeouts.Long())
	defer cancel()

	src, closeFn, err := open(ctx, uri, database, logger)
	if err != nil {
		return err
	}
	defer func() {
		if err := closeFn(context.Background()); err != nil {
			logger.Warn("disconnect failed", zap.Error(err))
		}
	}()
	return fn(ctx, src)
}

// loadProject parses the id argument and fetches the project.
func loadProject(cmd *cobra.Command, open Opener, rawID string) (models.Project, error) {
	id, err := primitive.ObjectIDFromHex(rawID)
	if err != nil {
		return models.Project{}, fmt.Errorf("invalid project id %q", rawID)
	}

	var p models.Project
	err = withSource(cmd, open, func(ctx context.Context, src Source) error {
		var err error
		p, err = src.GetByID(ctx, id)
		if errors.Is(err, mongo.ErrNoDocuments) {
			return fmt.Errorf("project %s not found", rawID)
		}
		if err != nil {
			return fmt.Errorf("failed to load project: %w", err)
		}
		return nil
	})
	return p, err
}

func commandLogger(cmd *cobra.Command) *zap.Logger {
	verbose, _ := cmd.Flags().GetBool("verbose")
	if !verbose {
		return zap.NewNop()
	}
	logger, err := zap.NewDevelopment()
	if err != nil {
		return zap.NewNop()
	}
	return logger
}

func cmdContext(cmd *cobra.Command) context.Context {
	if ctx := cmd.Context(); ctx != nil {
		return ctx
	}
	return context.Background()
}

func envOr(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
