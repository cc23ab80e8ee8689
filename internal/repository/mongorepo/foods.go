package mongorepo

import (
	"context"
	"time"

	"github.com/ahmetcoskunkizilkaya/petfeed-backend/internal/models"
	"github.com/ahmetcoskunkizilkaya/petfeed-backend/internal/repository"
	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type foodRepo struct {
	coll *mongo.Collection
}

func NewFoodRepo(db *mongo.Database) repository.FoodRepository {
	return &foodRepo{coll: db.Collection(foodsCollection)}
}

func (r *foodRepo) Create(ctx context.Context, food *models.Food) error {
	_, err := r.coll.InsertOne(ctx, fromFood(food))
	return translate(err)
}

func (r *foodRepo) GetByID(ctx context.Context, id uuid.UUID) (*models.Food, error) {
	var doc foodDoc
	if err := r.coll.FindOne(ctx, bson.M{"_id": id.String()}).Decode(&doc); err != nil {
		return nil, translate(err)
	}
	return doc.model()
}

func (r *foodRepo) List(ctx context.Context) ([]models.Food, error) {
	cur, err := r.coll.Find(ctx, bson.M{}, options.Find().SetSort(byCreation))
	if err != nil {
		return nil, translate(err)
	}
	var docs []foodDoc
	if err := cur.All(ctx, &docs); err != nil {
		return nil, err
	}
	foods := make([]models.Food, 0, len(docs))
	for _, d := range docs {
		f, err := d.model()
		if err != nil {
			return nil, err
		}
		foods = append(foods, *f)
	}
	return foods, nil
}

func (r *foodRepo) Update(ctx context.Context, food *models.Food) error {
	doc := fromFood(food)
	res, err := r.coll.UpdateByID(ctx, doc.ID, bson.M{"$set": bson.M{
		"name":           doc.Name,
		"brand":          doc.Brand,
		"specifications": doc.Specifications,
		"weight":         doc.Weight,
		"buyLinks":       doc.BuyLinks,
		"updatedAt":      doc.UpdatedAt,
	}})
	if err != nil {
		return translate(err)
	}
	if res.MatchedCount == 0 {
		return repository.ErrNotFound
	}
	return nil
}

func (r *foodRepo) Delete(ctx context.Context, id uuid.UUID) error {
	res, err := r.coll.DeleteOne(ctx, bson.M{"_id": id.String()})
	if err != nil {
		return translate(err)
	}
	if res.DeletedCount == 0 {
		return repository.ErrNotFound
	}
	return nil
}

// ToggleOpen uses an update pipeline: every expression in the single $set
// stage sees the document before the stage runs.
func (r *foodRepo) ToggleOpen(ctx context.Context, id uuid.UUID, now time.Time) (*models.Food, error) {
	update := mongo.Pipeline{
		{{Key: "$set", Value: bson.D{
			{Key: "isOpen", Value: bson.D{{Key: "$not", Value: bson.A{"$isOpen"}}}},
			{Key: "openedAt", Value: bson.D{{Key: "$cond", Value: bson.A{"$isOpen", nil, now}}}},
			{Key: "updatedAt", Value: now},
		}}},
	}
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var doc foodDoc
	if err := r.coll.FindOneAndUpdate(ctx, bson.M{"_id": id.String()}, update, opts).Decode(&doc); err != nil {
		return nil, translate(err)
	}
	return doc.model()
}
