package mongo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/tiempovital/admin-api/internal/core/domain"
)

const officesCollection = "offices"

// OfficeRepository is the Mongo-backed store adapter for offices.
type OfficeRepository struct {
	coll *mongo.Collection
}

func NewOfficeRepository(db *mongo.Database) *OfficeRepository {
	return &OfficeRepository{coll: db.Collection(officesCollection)}
}

type mongoOffice struct {
	ID      string `bson:"_id"`
	Name    string `bson:"name"`
	Address string `bson:"address"`
	City    string `bson:"city"`
	State   string `bson:"state"`
	ZipCode string `bson:"zip_code"`
	Image   string `bson:"image,omitempty"`
	UserID  string `bson:"user_id"`
}

func toMongoOffice(o *domain.Office) mongoOffice {
	return mongoOffice{
		ID:      o.ID,
		Name:    o.Name,
		Address: o.Address,
		City:    o.City,
		State:   o.State,
		ZipCode: o.ZipCode,
		Image:   o.Image,
		UserID:  o.UserID,
	}
}

func (m mongoOffice) toDomain() *domain.Office {
	return &domain.Office{
		ID:      m.ID,
		Name:    m.Name,
		Address: m.Address,
		City:    m.City,
		State:   m.State,
		ZipCode: m.ZipCode,
		Image:   m.Image,
		UserID:  m.UserID,
	}
}

func (r *OfficeRepository) FindAll(ctx context.Context) ([]domain.Office, error) {
	return r.findMany(ctx, bson.M{})
}

func (r *OfficeRepository) FindByUserID(ctx context.Context, userID string) ([]domain.Office, error) {
	return r.findMany(ctx, bson.M{"user_id": userID})
}

func (r *OfficeRepository) findMany(ctx context.Context, filter bson.M) ([]domain.Office, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	cur, err := r.coll.Find(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("find offices: %w", err)
	}
	defer cur.Close(ctx)

	var offices []domain.Office
	for cur.Next(ctx) {
		var mo mongoOffice
		if err := cur.Decode(&mo); err != nil {
			return nil, fmt.Errorf("decode office: %w", err)
		}
		offices = append(offices, *mo.toDomain())
	}
	if err := cur.Err(); err != nil {
		return nil, fmt.Errorf("iterate offices: %w", err)
	}
	return offices, nil
}

func (r *OfficeRepository) FindByID(ctx context.Context, id string) (*domain.Office, error) {
	return r.findOne(ctx, bson.M{"_id": id})
}

func (r *OfficeRepository) FindByName(ctx context.Context, name string) (*domain.Office, error) {
	return r.findOne(ctx, bson.M{"name": name})
}

func (r *OfficeRepository) findOne(ctx context.Context, filter bson.M) (*domain.Office, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var mo mongoOffice
	if err := r.coll.FindOne(ctx, filter).Decode(&mo); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrOfficeNotFound
		}
		return nil, fmt.Errorf("find office: %w", err)
	}
	return mo.toDomain(), nil
}

func (r *OfficeRepository) Create(ctx context.Context, office *domain.Office) (*domain.Office, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	if _, err := r.coll.InsertOne(ctx, toMongoOffice(office)); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return nil, domain.ErrOfficeExists
		}
		return nil, fmt.Errorf("insert office: %w", err)
	}
	return office, nil
}

func (r *OfficeRepository) Update(ctx context.Context, id string, office *domain.Office) (*domain.Office, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	doc := toMongoOffice(office)
	doc.ID = id
	if _, err := r.coll.ReplaceOne(ctx, bson.M{"_id": id}, doc); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return nil, domain.ErrOfficeExists
		}
		return nil, fmt.Errorf("update office: %w", err)
	}
	return doc.toDomain(), nil
}

func (r *OfficeRepository) Delete(ctx context.Context, id string) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	if _, err := r.coll.DeleteOne(ctx, bson.M{"_id": id}); err != nil {
		return fmt.Errorf("delete office: %w", err)
	}
	return nil
}

// DeleteByUserID removes every office owned by the given user. Backs the
// cascade applied when a user account is deleted.
func (r *OfficeRepository) DeleteByUserID(ctx context.Context, userID string) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	if _, err := r.coll.DeleteMany(ctx, bson.M{"user_id": userID}); err != nil {
		return fmt.Errorf("delete offices by user: %w", err)
	}
	return nil
}

// EnsureIndexes creates the unique name index plus the owner lookup index.
func (r *OfficeRepository) EnsureIndexes(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	indexes := []mongo.IndexModel{
		{Keys: bson.D{{Key: "name", Value: 1}}, Options: options.Index().SetUnique(true)},
		{Keys: bson.D{{Key: "user_id", Value: 1}}},
	}

	_, err := r.coll.Indexes().CreateMany(ctx, indexes)
	return err
}
