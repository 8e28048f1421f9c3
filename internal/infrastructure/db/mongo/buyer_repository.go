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

const buyerCollection = "buyers"

// BuyerRepository persists buyer accounts. Email uniqueness is enforced by a
// unique index created at startup; a lost duplicate race surfaces as
// domain.ErrDuplicateEmail.
type BuyerRepository struct {
	coll *mongo.Collection
}

func NewBuyerRepository(db *mongo.Database) *BuyerRepository {
	return &BuyerRepository{coll: db.Collection(buyerCollection)}
}

type buyerDoc struct {
	ID            primitive.ObjectID `bson:"_id,omitempty"`
	ShopName      string             `bson:"shop_name"`
	ShopOwnerName string             `bson:"shop_owner_name"`
	ShopLocation  string             `bson:"shop_location"`
	ContactNumber string             `bson:"contact_number"`
	Account       accountDoc         `bson:",inline"`
}

type accountDoc struct {
	Email        string     `bson:"email"`
	PasswordHash string     `bson:"password_hash"`
	IsActive     bool       `bson:"is_active"`
	IsVerified   bool       `bson:"is_verified"`
	LastLoginAt  *time.Time `bson:"last_login_at,omitempty"`
	CreatedAt    time.Time  `bson:"created_at"`
	UpdatedAt    time.Time  `bson:"updated_at"`
}

// EnsureIndexes creates the unique email index. Safe to call on every startup.
func (r *BuyerRepository) EnsureIndexes(ctx context.Context) error {
	_, err := r.coll.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "email", Value: 1}},
		Options: options.Index().SetUnique(true),
	})
	if err != nil {
		return fmt.Errorf("create buyer email index: %w", err)
	}
	return nil
}

func (r *BuyerRepository) Create(ctx context.Context, buyer *domain.Buyer) (*domain.Buyer, error) {
	doc := buyerDoc{
		ShopName:      buyer.ShopName,
		ShopOwnerName: buyer.ShopOwnerName,
		ShopLocation:  buyer.ShopLocation,
		ContactNumber: buyer.ContactNumber,
		Account:       toAccountDoc(&buyer.Account),
	}

	res, err := r.coll.InsertOne(ctx, doc)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return nil, domain.ErrDuplicateEmail
		}
		return nil, fmt.Errorf("insert buyer: %w", err)
	}

	created := *buyer
	created.ID = res.InsertedID.(primitive.ObjectID).Hex()
	return &created, nil
}

func (r *BuyerRepository) FindByEmail(ctx context.Context, email string) (*domain.Buyer, error) {
	return r.findOne(ctx, bson.M{"email": email})
}

func (r *BuyerRepository) FindByID(ctx context.Context, id string) (*domain.Buyer, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, domain.ErrPrincipalNotFound
	}
	return r.findOne(ctx, bson.M{"_id": oid})
}

func (r *BuyerRepository) UpdateLastLogin(ctx context.Context, id string, at time.Time) error {
	return updateLastLogin(ctx, r.coll, id, at)
}

func (r *BuyerRepository) findOne(ctx context.Context, filter bson.M) (*domain.Buyer, error) {
	var doc buyerDoc
	if err := r.coll.FindOne(ctx, filter).Decode(&doc); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, domain.ErrPrincipalNotFound
		}
		return nil, fmt.Errorf("find buyer: %w", err)
	}

	return &domain.Buyer{
		Account:       toAccount(doc.ID, domain.RoleBuyer, doc.Account),
		ShopName:      doc.ShopName,
		ShopOwnerName: doc.ShopOwnerName,
		ShopLocation:  doc.ShopLocation,
		ContactNumber: doc.ContactNumber,
	}, nil
}

func toAccountDoc(a *domain.Account) accountDoc {
	return accountDoc{
		Email:        a.Email,
		PasswordHash: a.PasswordHash,
		IsActive:     a.IsActive,
		IsVerified:   a.IsVerified,
		LastLoginAt:  a.LastLoginAt,
		CreatedAt:    a.CreatedAt,
		UpdatedAt:    a.UpdatedAt,
	}
}

func toAccount(id primitive.ObjectID, role string, doc accountDoc) domain.Account {
	return domain.Account{
		ID:           id.Hex(),
		Email:        doc.Email,
		PasswordHash: doc.PasswordHash,
		Role:         role,
		IsActive:     doc.IsActive,
		IsVerified:   doc.IsVerified,
		LastLoginAt:  doc.LastLoginAt,
		CreatedAt:    doc.CreatedAt,
		UpdatedAt:    doc.UpdatedAt,
	}
}

func updateLastLogin(ctx context.Context, coll *mongo.Collection, id string, at time.Time) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return domain.ErrPrincipalNotFound
	}
	res, err := coll.UpdateOne(ctx, bson.M{"_id": oid}, bson.M{
		"$set": bson.M{"last_login_at": at, "updated_at": at},
	})
	if err != nil {
		return fmt.Errorf("update last login: %w", err)
	}
	if res.MatchedCount == 0 {
		return domain.ErrPrincipalNotFound
	}
	return nil
}
