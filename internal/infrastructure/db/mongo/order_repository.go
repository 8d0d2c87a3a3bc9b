package mongo

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/qkart/commerce-api/internal/core/domain"
)

const collectionOrders = "orders"

// OrderRepository stores the audit record written by each committed checkout.
type OrderRepository struct {
	col *mongo.Collection
}

func NewOrderRepository(db *mongo.Database) *OrderRepository {
	return &OrderRepository{col: db.Collection(collectionOrders)}
}

type orderDoc struct {
	ID        primitive.ObjectID `bson:"_id,omitempty"`
	Email     string             `bson:"email"`
	Items     []domain.CartItem  `bson:"items"`
	Total     float64            `bson:"total"`
	CreatedAt time.Time          `bson:"created_at"`
}

func (r *OrderRepository) Insert(ctx context.Context, order *domain.Order) error {
	doc := orderDoc{
		Email:     order.Email,
		Items:     order.Items,
		Total:     order.Total,
		CreatedAt: order.CreatedAt,
	}
	res, err := r.col.InsertOne(ctx, doc)
	if err != nil {
		return storageErr("insert order", err)
	}
	order.ID = res.InsertedID.(primitive.ObjectID).Hex()
	return nil
}

func (r *OrderRepository) ListByEmail(ctx context.Context, email string) ([]domain.Order, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})
	cur, err := r.col.Find(ctx, bson.M{"email": email}, opts)
	if err != nil {
		return nil, storageErr("list orders", err)
	}
	defer cur.Close(ctx)

	orders := []domain.Order{}
	for cur.Next(ctx) {
		var doc orderDoc
		if err := cur.Decode(&doc); err != nil {
			return nil, storageErr("decode order", err)
		}
		orders = append(orders, domain.Order{
			ID:        doc.ID.Hex(),
			Email:     doc.Email,
			Items:     doc.Items,
			Total:     doc.Total,
			CreatedAt: doc.CreatedAt,
		})
	}
	if err := cur.Err(); err != nil {
		return nil, storageErr("list orders", err)
	}
	return orders, nil
}

func (r *OrderRepository) EnsureIndexes(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	_, err := r.col.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{{Key: "email", Value: 1}, {Key: "created_at", Value: -1}},
	})
	return err
}
