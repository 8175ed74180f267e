package mongodb

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.uber.org/zap"

	"github.com/mamadbah2/herd/internal/domain/models"
)

const (
	cattleCollection  = "cattle"
	reportsCollection = "movement_reports"
)

// Repository defines the cattle register and report archive operations.
type Repository interface {
	FetchPopulation(ctx context.Context) ([]models.Animal, error)
	SaveMovementReport(ctx context.Context, report models.MovementReport) error
}

// MongoDBRepository implements the Repository interface for MongoDB.
type MongoDBRepository struct {
	client *mongo.Client
	dbName string
	logger *zap.Logger
}

// NewMongoDBRepository creates a new MongoDB repository.
func NewMongoDBRepository(ctx context.Context, uri string, dbName string, logger *zap.Logger) (*MongoDBRepository, error) {
	if logger == nil {
		logger = zap.NewNop()
	}

	clientOptions := options.Client().ApplyURI(uri)
	client, err := mongo.Connect(ctx, clientOptions)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to mongodb: %w", err)
	}

	// Ping the database to verify connection
	if err := client.Ping(ctx, nil); err != nil {
		return nil, fmt.Errorf("failed to ping mongodb: %w", err)
	}

	return &MongoDBRepository{
		client: client,
		dbName: dbName,
		logger: logger,
	}, nil
}

// FetchPopulation returns every animal not flagged as deleted.
func (r *MongoDBRepository) FetchPopulation(ctx context.Context) ([]models.Animal, error) {
	collection := r.client.Database(r.dbName).Collection(cattleCollection)

	cursor, err := collection.Find(ctx, activeFilter())
	if err != nil {
		return nil, fmt.Errorf("failed to query cattle: %w", err)
	}
	defer func() { _ = cursor.Close(ctx) }()

	var animals []models.Animal
	if err := cursor.All(ctx, &animals); err != nil {
		return nil, fmt.Errorf("failed to decode cattle: %w", err)
	}

	r.logger.Debug("cattle population loaded", zap.Int("count", len(animals)))
	return animals, nil
}

// SaveMovementReport archives a generated movement report.
func (r *MongoDBRepository) SaveMovementReport(ctx context.Context, report models.MovementReport) error {
	collection := r.client.Database(r.dbName).Collection(reportsCollection)
	_, err := collection.InsertOne(ctx, report)
	if err != nil {
		return fmt.Errorf("failed to insert movement report: %w", err)
	}
	return nil
}

// Close closes the MongoDB connection.
func (r *MongoDBRepository) Close(ctx context.Context) error {
	return r.client.Disconnect(ctx)
}

func activeFilter() bson.M {
	return bson.M{"deleted": bson.M{"$ne": true}}
}
