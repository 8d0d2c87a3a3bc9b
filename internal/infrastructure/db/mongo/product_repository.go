package mongo

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/qkart/commerce-api/internal/core/domain"
)

const collectionProducts = "products"

// ProductRepository serves the read-only catalog.
type ProductRepository struct {
	col *mongo.Collection
}

func NewProductRepository(db *mongo.Database) *ProductRepository {
	return &ProductRepository{col: db.Collection(collectionProducts)}
}

type productDoc struct {
	ID       primitive.ObjectID `bson:"_id,omitempty"`
	Name     string             `bson:"name"`
	Category string             `bson:"category"`
	Cost     float64            `bson:"cost"`
	Rating   int                `bson:"rating"`
	Image    string             `bson:"image"`
}

func (d *productDoc) toDomain() domain.Product {
	return domain.Product{
		ID:        d.ID.Hex(),
		Name:      d.Name,
		Category:  d.Category,
		Cost:      d.Cost,
		Rating:    d.Rating,
		ImageLink: d.Image,
	}
}

// FindByID resolves a product id. A malformed id is treated the same as an
// unknown one: the product does not exist.
func (r *ProductRepository) FindByID(ctx context.Context, id string) (*domain.Product, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, domain.ErrProductNotFound
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var doc productDoc
	if err := r.col.FindOne(ctx, bson.M{"_id": oid}).Decode(&doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrProductNotFound
		}
		return nil, storageErr("find product", err)
	}
	p := doc.toDomain()
	return &p, nil
}

// List returns the catalog, optionally narrowed by a case-insensitive search
// on name or category.
func (r *ProductRepository) List(ctx context.Context, search string) ([]domain.Product, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	filter := bson.M{}
	if search != "" {
		re := primitive.Regex{Pattern: search, Options: "i"}
		filter = bson.M{"$or": bson.A{
			bson.M{"name": re},
			bson.M{"category": re},
		}}
	}

	cur, err := r.col.Find(ctx, filter)
	if err != nil {
		return nil, storageErr("list products", err)
	}
	defer cur.Close(ctx)

	products := []domain.Product{}
	for cur.Next(ctx) {
		var doc productDoc
		if err := cur.Decode(&doc); err != nil {
			return nil, storageErr("decode product", err)
		}
		products = append(products, doc.toDomain())
	}
	if err := cur.Err(); err != nil {
		return nil, storageErr("list products", err)
	}
	return products, nil
}
