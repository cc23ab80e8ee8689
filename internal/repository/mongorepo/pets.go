package mongorepo

import (
	"context"

	"github.com/ahmetcoskunkizilkaya/petfeed-backend/internal/models"
	"github.com/ahmetcoskunkizilkaya/petfeed-backend/internal/repository"
	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

type petRepo struct {
	coll *mongo.Collection
}

func NewPetRepo(db *mongo.Database) repository.PetRepository {
	return &petRepo{coll: db.Collection(petsCollection)}
}

func (r *petRepo) Create(ctx context.Context, pet *models.Pet) error {
	_, err := r.coll.InsertOne(ctx, fromPet(pet))
	return translate(err)
}

func (r *petRepo) GetByID(ctx context.Context, id uuid.UUID, withFood bool) (*models.Pet, error) {
	pets, err := r.find(ctx, bson.D{{Key: "_id", Value: id.String()}}, withFood)
	if err != nil {
		return nil, err
	}
	if len(pets) == 0 {
		return nil, repository.ErrNotFound
	}
	return &pets[0], nil
}

func (r *petRepo) List(ctx context.Context, withFood bool) ([]models.Pet, error) {
	return r.find(ctx, bson.D{}, withFood)
}

// find runs match, sort and optionally a $lookup that resolves foodId. A
// dangling reference leaves the food field absent.
func (r *petRepo) find(ctx context.Context, match bson.D, withFood bool) ([]models.Pet, error) {
	pipeline := mongo.Pipeline{
		{{Key: "$match", Value: match}},
		{{Key: "$sort", Value: byCreation}},
	}
	if withFood {
		pipeline = append(pipeline,
			bson.D{{Key: "$lookup", Value: bson.D{
				{Key: "from", Value: foodsCollection},
				{Key: "localField", Value: "foodId"},
				{Key: "foreignField", Value: "_id"},
				{Key: "as", Value: "food"},
			}}},
			bson.D{{Key: "$unwind", Value: bson.D{
				{Key: "path", Value: "$food"},
				{Key: "preserveNullAndEmptyArrays", Value: true},
			}}},
		)
	}

	cur, err := r.coll.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, translate(err)
	}
	var docs []petDoc
	if err := cur.All(ctx, &docs); err != nil {
		return nil, err
	}
	pets := make([]models.Pet, 0, len(docs))
	for _, d := range docs {
		p, err := d.model()
		if err != nil {
			return nil, err
		}
		pets = append(pets, *p)
	}
	return pets, nil
}

func (r *petRepo) Update(ctx context.Context, pet *models.Pet) error {
	doc := fromPet(pet)
	res, err := r.coll.UpdateByID(ctx, doc.ID, bson.M{"$set": bson.M{
		"name":         doc.Name,
		"age":          doc.Age,
		"allergies":    doc.Allergies,
		"gramsPerMeal": doc.GramsPerMeal,
		"mealsPerDay":  doc.MealsPerDay,
		"foodId":       doc.FoodID,
		"updatedAt":    doc.UpdatedAt,
	}})
	if err != nil {
		return translate(err)
	}
	if res.MatchedCount == 0 {
		return repository.ErrNotFound
	}
	return nil
}

func (r *petRepo) Delete(ctx context.Context, id uuid.UUID) error {
	res, err := r.coll.DeleteOne(ctx, bson.M{"_id": id.String()})
	if err != nil {
		return translate(err)
	}
	if res.DeletedCount == 0 {
		return repository.ErrNotFound
	}
	return nil
}
