package mongo

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/qkart/commerce-api/internal/core/domain"
)

const collectionCarts = "carts"

// CartRepository persists carts as one document per user, keyed by email.
type CartRepository struct {
	col *mongo.Collection
}

func NewCartRepository(db *mongo.Database) *CartRepository {
	return &CartRepository{col: db.Collection(collectionCarts)}
}

// FindByEmail retrieves the user's cart. Every read hits storage; cart
// documents are never cached.
func (r *CartRepository) FindByEmail(ctx context.Context, email string) (*domain.Cart, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var c domain.Cart
	err := r.col.FindOne(ctx, bson.M{"email": email}).Decode(&c)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrCartNotFound
		}
		return nil, storageErr("find cart", err)
	}
	if c.Items == nil {
		c.Items = []domain.CartItem{}
	}
	return &c, nil
}

// Create inserts an empty cart document. The unique email index makes a
// concurrent duplicate create fail rather than produce a second cart.
func (r *CartRepository) Create(ctx context.Context, cart *domain.Cart) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	doc := bson.M{
		"email":      cart.Email,
		"cart_items": cart.Items,
		"updated_at": time.Now().UTC(),
	}
	if _, err := r.col.InsertOne(ctx, doc); err != nil {
		return storageErr("create cart", err)
	}
	return nil
}

// Save replaces the cart's line-item collection in full. A missing target
// document is an error, never a silent no-op.
func (r *CartRepository) Save(ctx context.Context, cart *domain.Cart) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	update := bson.M{"$set": bson.M{
		"cart_items": cart.Items,
		"updated_at": time.Now().UTC(),
	}}
	res, err := r.col.UpdateOne(ctx, bson.M{"email": cart.Email}, update)
	if err != nil {
		return storageErr("save cart", err)
	}
	if res.MatchedCount == 0 {
		return storageErr("save cart", errors.New("cart document missing"))
	}
	return nil
}

// EnsureIndexes enforces the one-cart-per-user invariant at the storage level.
func (r *CartRepository) EnsureIndexes(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	_, err := r.col.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "email", Value: 1}},
		Options: options.Index().SetUnique(true),
	})
	return err
}
