package mongo

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/freshsupply/marketplace-api/internal/core/domain"
)

const supplierCollection = "suppliers"

// SupplierRepository persists supplier accounts in their own collection, so a
// supplier may share an email with a buyer account but never with another
// supplier.
type SupplierRepository struct {
	coll *mongo.Collection
}

func NewSupplierRepository(db *mongo.Database) *SupplierRepository {
	return &SupplierRepository{coll: db.Collection(supplierCollection)}
}

type supplierDoc struct {
	ID            primitive.ObjectID `bson:"_id,omitempty"`
	FullName      string             `bson:"full_name"`
	ContactNumber string             `bson:"contact_number"`
	Account       accountDoc         `bson:",inline"`
}

// EnsureIndexes creates the unique email index. Safe to call on every startup.
func (r *SupplierRepository) EnsureIndexes(ctx context.Context) error {
	_, err := r.coll.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "email", Value: 1}},
		Options: options.Index().SetUnique(true),
	})
	if err != nil {
		return fmt.Errorf("create supplier email index: %w", err)
	}
	return nil
}

func (r *SupplierRepository) Create(ctx context.Context, supplier *domain.Supplier) (*domain.Supplier, error) {
	doc := supplierDoc{
		FullName:      supplier.FullName,
		ContactNumber: supplier.ContactNumber,
		Account:       toAccountDoc(&supplier.Account),
	}

	res, err := r.coll.InsertOne(ctx, doc)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return nil, domain.ErrDuplicateEmail
		}
		return nil, fmt.Errorf("insert supplier: %w", err)
	}

	created := *supplier
	created.ID = res.InsertedID.(primitive.ObjectID).Hex()
	return &created, nil
}

func (r *SupplierRepository) FindByEmail(ctx context.Context, email string) (*domain.Supplier, error) {
	return r.findOne(ctx, bson.M{"email": email})
}

func (r *SupplierRepository) FindByID(ctx context.Context, id string) (*domain.Supplier, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, domain.ErrPrincipalNotFound
	}
	return r.findOne(ctx, bson.M{"_id": oid})
}

func (r *SupplierRepository) UpdateLastLogin(ctx context.Context, id string, at time.Time) error {
	return updateLastLogin(ctx, r.coll, id, at)
}

func (r *SupplierRepository) findOne(ctx context.Context, filter bson.M) (*domain.Supplier, error) {
	var doc supplierDoc
	if err := r.coll.FindOne(ctx, filter).Decode(&doc); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, domain.ErrPrincipalNotFound
		}
		return nil, fmt.Errorf("find supplier: %w", err)
	}

	return &domain.Supplier{
		Account:       toAccount(doc.ID, domain.RoleSupplier, doc.Account),
		FullName:      doc.FullName,
		ContactNumber: doc.ContactNumber,
	}, nil
}
