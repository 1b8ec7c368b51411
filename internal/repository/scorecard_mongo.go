package repository

import (
	"context"
	"fmt"
	"log"
	"time"

	"cricket-scorecard-api/internal/model"
	"cricket-scorecard-api/pkg/oid"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// MongoScorecardRepository implements ScorecardRepository using MongoDB.
// Career aggregation runs as a $group pipeline inside the database.
type MongoScorecardRepository struct {
	client  *mongo.Client
	db      *mongo.Database
	players *mongo.Collection
	innings *mongo.Collection
}

// NewMongoScorecardRepository creates a new MongoDB scorecard repository.
func NewMongoScorecardRepository(uri, database string) (*MongoScorecardRepository, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	clientOpts := options.Client().
		ApplyURI(uri).
		SetMaxPoolSize(50).
		SetMinPoolSize(5).
		SetMaxConnIdleTime(5 * time.Minute).
		SetRetryWrites(true)

	client, err := mongo.Connect(ctx, clientOpts)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to MongoDB: %w", err)
	}

	// Ping to verify connection
	if err := client.Ping(ctx, nil); err != nil {
		return nil, fmt.Errorf("failed to ping MongoDB: %w", err)
	}

	db := client.Database(database)
	repo := &MongoScorecardRepository{
		client:  client,
		db:      db,
		players: db.Collection(playerCollection),
		innings: db.Collection(inningsCollection),
	}

	// Indexes back the per-player lookup and the date sort
	indexes := []mongo.IndexModel{
		{Keys: bson.D{{Key: "player_id", Value: 1}}},
		{Keys: bson.D{{Key: "date", Value: -1}}},
	}
	if _, err := repo.innings.Indexes().CreateMany(ctx, indexes); err != nil {
		log.Printf("[MongoDB] Warning: failed to create indexes: %v", err)
	}

	log.Printf("[MongoDB] Connected to %s", database)
	return repo, nil
}

// playerDocument represents a player document in MongoDB.
type playerDocument struct {
	ID   oid.ID `bson:"_id"`
	Name string `bson:"name"`
	Role string `bson:"role,omitempty"`
}

// inningsDocument represents an innings document in MongoDB.
type inningsDocument struct {
	ID         oid.ID    `bson:"_id"`
	PlayerID   string    `bson:"player_id"`
	Runs       int       `bson:"runs"`
	Balls      int       `bson:"balls"`
	Fours      int       `bson:"fours"`
	Sixes      int       `bson:"sixes"`
	Out        bool      `bson:"out"`
	Opposition string    `bson:"opposition,omitempty"`
	Venue      string    `bson:"venue,omitempty"`
	Date       time.Time `bson:"date"`
}

// careerTotalsDocument receives the $group pipeline output.
type careerTotalsDocument struct {
	Runs    int `bson:"runs"`
	Balls   int `bson:"balls"`
	Fours   int `bson:"fours"`
	Sixes   int `bson:"sixes"`
	Innings int `bson:"innings"`
	Outs    int `bson:"outs"`
}

func (d playerDocument) toModel() model.Player {
	return model.Player{ID: d.ID.Hex(), Name: d.Name, Role: d.Role}
}

func (d inningsDocument) toModel() model.Innings {
	return model.Innings{
		ID:         d.ID.Hex(),
		PlayerID:   d.PlayerID,
		Runs:       d.Runs,
		Balls:      d.Balls,
		Fours:      d.Fours,
		Sixes:      d.Sixes,
		Out:        d.Out,
		Opposition: d.Opposition,
		Venue:      d.Venue,
		Date:       d.Date,
	}
}

// CreatePlayer inserts a new player document and returns its generated key.
func (r *MongoScorecardRepository) CreatePlayer(ctx context.Context, player model.Player) (string, error) {
	doc := playerDocument{ID: oid.New(), Name: player.Name, Role: player.Role}

	if _, err := r.players.InsertOne(ctx, doc); err != nil {
		return "", unavailable("insert player", err)
	}
	return doc.ID.Hex(), nil
}

// GetPlayer retrieves a player by key.
func (r *MongoScorecardRepository) GetPlayer(ctx context.Context, id string) (*model.Player, error) {
	key, err := oid.Parse(id)
	if err != nil {
		// No document can carry a malformed key
		return nil, ErrNotFound
	}

	var doc playerDocument
	err = r.players.FindOne(ctx, bson.M{"_id": key}).Decode(&doc)
	if err == mongo.ErrNoDocuments {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, unavailable("get player", err)
	}

	player := doc.toModel()
	return &player, nil
}

// ListPlayers returns every player in natural (insertion) order.
func (r *MongoScorecardRepository) ListPlayers(ctx context.Context) ([]model.Player, error) {
	cursor, err := r.players.Find(ctx, bson.M{})
	if err != nil {
		return nil, unavailable("list players", err)
	}

	var docs []playerDocument
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, unavailable("decode players", err)
	}

	players := make([]model.Player, 0, len(docs))
	for _, doc := range docs {
		players = append(players, doc.toModel())
	}
	return players, nil
}

// CreateInnings inserts a new innings document and returns its generated key.
func (r *MongoScorecardRepository) CreateInnings(ctx context.Context, innings model.Innings) (string, error) {
	doc := inningsDocument{
		ID:         oid.New(),
		PlayerID:   innings.PlayerID,
		Runs:       innings.Runs,
		Balls:      innings.Balls,
		Fours:      innings.Fours,
		Sixes:      innings.Sixes,
		Out:        innings.Out,
		Opposition: innings.Opposition,
		Venue:      innings.Venue,
		Date:       innings.Date,
	}

	if _, err := r.innings.InsertOne(ctx, doc); err != nil {
		return "", unavailable("insert innings", err)
	}
	return doc.ID.Hex(), nil
}

// ListInningsByPlayer returns the player's innings ordered by match date.
func (r *MongoScorecardRepository) ListInningsByPlayer(ctx context.Context, playerID string, order SortOrder) ([]model.Innings, error) {
	dir := -1
	if order == DateAscending {
		dir = 1
	}
	opts := options.Find().SetSort(bson.D{{Key: "date", Value: dir}})

	cursor, err := r.innings.Find(ctx, bson.M{"player_id": playerID}, opts)
	if err != nil {
		return nil, unavailable("list innings", err)
	}

	var docs []inningsDocument
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, unavailable("decode innings", err)
	}

	innings := make([]model.Innings, 0, len(docs))
	for _, doc := range docs {
		innings = append(innings, doc.toModel())
	}
	return innings, nil
}

// CareerTotals reduces the player's innings to raw career counts with a
// $match + $group pipeline.
func (r *MongoScorecardRepository) CareerTotals(ctx context.Context, playerID string) (model.CareerTotals, error) {
	pipeline := []bson.M{
		{"$match": bson.M{"player_id": playerID}},
		{"$group": bson.M{
			"_id":     "$player_id",
			"runs":    bson.M{"$sum": "$runs"},
			"balls":   bson.M{"$sum": "$balls"},
			"fours":   bson.M{"$sum": "$fours"},
			"sixes":   bson.M{"$sum": "$sixes"},
			"innings": bson.M{"$sum": 1},
			"outs":    bson.M{"$sum": bson.M{"$cond": bson.A{"$out", 1, 0}}},
		}},
	}

	cursor, err := r.innings.Aggregate(ctx, pipeline)
	if err != nil {
		return model.CareerTotals{}, unavailable("aggregate career totals", err)
	}

	var results []careerTotalsDocument
	if err := cursor.All(ctx, &results); err != nil {
		return model.CareerTotals{}, unavailable("decode career totals", err)
	}

	// No innings yet: the pipeline yields no groups, which means all zeros
	if len(results) == 0 {
		return model.CareerTotals{}, nil
	}

	t := results[0]
	return model.CareerTotals{
		Runs:    t.Runs,
		Balls:   t.Balls,
		Fours:   t.Fours,
		Sixes:   t.Sixes,
		Innings: t.Innings,
		Outs:    t.Outs,
	}, nil
}

// Ping verifies the MongoDB connection.
func (r *MongoScorecardRepository) Ping(ctx context.Context) error {
	if err := r.client.Ping(ctx, nil); err != nil {
		return unavailable("ping", err)
	}
	return nil
}

// Stats returns statistics about the scorecard collections.
func (r *MongoScorecardRepository) Stats(ctx context.Context) (map[string]interface{}, error) {
	stats := map[string]interface{}{
		"store_type":  "mongodb",
		"collections": []string{playerCollection, inningsCollection},
	}

	players, err := r.players.CountDocuments(ctx, bson.M{})
	if err != nil {
		return nil, unavailable("count players", err)
	}
	innings, err := r.innings.CountDocuments(ctx, bson.M{})
	if err != nil {
		return nil, unavailable("count innings", err)
	}
	stats["total_players"] = players
	stats["total_innings"] = innings

	return stats, nil
}

// Close closes the MongoDB connection.
func (r *MongoScorecardRepository) Close() error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	return r.client.Disconnect(ctx)
}

// Ensure MongoScorecardRepository implements ScorecardRepository
var _ ScorecardRepository = (*MongoScorecardRepository)(nil)
