package mongo

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/konveksi/order-system/internal/core/domain"
)

const ordersCollection = "orders"

type OrderRepository struct {
	coll *mongo.Collection
}

func NewOrderRepository(db *mongo.Database) *OrderRepository {
	return &OrderRepository{coll: db.Collection(ordersCollection)}
}

// Field names match the JSON payload so that partial updates submitted by the
// client apply to the same keys the create path wrote.
type orderDoc struct {
	ID            primitive.ObjectID `bson:"_id,omitempty"`
	Username      string             `bson:"username"`
	Items         []domain.OrderItem `bson:"items"`
	Total         float64            `bson:"total"`
	Status        string             `bson:"status"`
	PaymentMethod string             `bson:"paymentMethod"`
	CreatedAt     time.Time          `bson:"createdAt"`
}

func (d orderDoc) toDomain() domain.Order {
	return domain.Order{
		ID:            d.ID.Hex(),
		Username:      d.Username,
		Items:         d.Items,
		Total:         d.Total,
		Status:        d.Status,
		PaymentMethod: d.PaymentMethod,
		CreatedAt:     d.CreatedAt.UTC(),
	}
}

// Create inserts a new order and returns it with the store-assigned id.
func (r *OrderRepository) Create(ctx context.Context, o *domain.Order) (*domain.Order, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	doc := orderDoc{
		Username:      o.Username,
		Items:         o.Items,
		Total:         o.Total,
		Status:        o.Status,
		PaymentMethod: o.PaymentMethod,
		CreatedAt:     o.CreatedAt,
	}

	res, err := r.coll.InsertOne(ctx, doc)
	if err != nil {
		return nil, fmt.Errorf("insert order: %w", err)
	}

	created := *o
	if oid, ok := res.InsertedID.(primitive.ObjectID); ok {
		created.ID = oid.Hex()
	}
	return &created, nil
}

// FindAll returns every order, newest first.
func (r *OrderRepository) FindAll(ctx context.Context) ([]domain.Order, error) {
	return r.find(ctx, bson.M{})
}

// FindByUsername returns the orders of one user, newest first. The match is
// exact: no case folding, no partial match.
func (r *OrderRepository) FindByUsername(ctx context.Context, username string) ([]domain.Order, error) {
	return r.find(ctx, bson.M{"username": username})
}

func (r *OrderRepository) find(ctx context.Context, filter bson.M) ([]domain.Order, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})
	cur, err := r.coll.Find(ctx, filter, opts)
	if err != nil {
		return nil, fmt.Errorf("find orders: %w", err)
	}
	defer cur.Close(ctx)

	orders := []domain.Order{}
	for cur.Next(ctx) {
		var doc orderDoc
		if err := cur.Decode(&doc); err != nil {
			return nil, fmt.Errorf("decode order: %w", err)
		}
		orders = append(orders, doc.toDomain())
	}
	if err := cur.Err(); err != nil {
		return nil, fmt.Errorf("iterate orders: %w", err)
	}
	return orders, nil
}

// UpdateByID merges the submitted fields into the order with the given id,
// commonly status or items. A missing id succeeds as a no-op.
func (r *OrderRepository) UpdateByID(ctx context.Context, id string, fields map[string]any) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return fmt.Errorf("update order: %w", err)
	}
	sanitizeFields(fields)
	if len(fields) == 0 {
		return nil
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	if _, err := r.coll.UpdateByID(ctx, oid, bson.M{"$set": fields}); err != nil {
		return fmt.Errorf("update order: %w", err)
	}
	return nil
}

// DeleteByID removes the order with the given id; a missing id is a no-op.
func (r *OrderRepository) DeleteByID(ctx context.Context, id string) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return fmt.Errorf("delete order: %w", err)
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	if _, err := r.coll.DeleteOne(ctx, bson.M{"_id": oid}); err != nil {
		return fmt.Errorf("delete order: %w", err)
	}
	return nil
}
