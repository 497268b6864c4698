package mongodb

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/iudanet/passvault/internal/ledger"
	"github.com/iudanet/passvault/internal/models"
)

// credentialDoc представляет документ коллекции credentials.
// Чувствительные поля приходят сюда уже зашифрованными.
type credentialDoc struct {
	ID          primitive.ObjectID `bson:"_id,omitempty"`
	Title       string             `bson:"title"`
	Username    string             `bson:"username"`
	Email       string             `bson:"email"`
	Phone       string             `bson:"phone"`
	Password    string             `bson:"password"`
	Description string             `bson:"description"`
	CreatedAt   string             `bson:"createdAt"`
	UpdatedAt   string             `bson:"updatedAt"`
}

func (d credentialDoc) toModel() models.Credential {
	return models.Credential{
		ID:          d.ID.Hex(),
		Title:       d.Title,
		Username:    d.Username,
		Email:       d.Email,
		Phone:       d.Phone,
		Password:    d.Password,
		Description: d.Description,
		CreatedAt:   d.CreatedAt,
		UpdatedAt:   d.UpdatedAt,
	}
}

// Insert appends a new credential document and returns the assigned id
func (l *Ledger) Insert(ctx context.Context, cred models.Credential) (string, error) {
	doc := credentialDoc{
		Title:       cred.Title,
		Username:    cred.Username,
		Email:       cred.Email,
		Phone:       cred.Phone,
		Password:    cred.Password,
		Description: cred.Description,
		CreatedAt:   cred.CreatedAt,
		UpdatedAt:   cred.UpdatedAt,
	}

	res, err := l.db.Collection(collCredentials).InsertOne(ctx, doc)
	if err != nil {
		return "", fmt.Errorf("failed to insert credential: %w", err)
	}

	oid, ok := res.InsertedID.(primitive.ObjectID)
	if !ok {
		return "", fmt.Errorf("unexpected inserted id type %T", res.InsertedID)
	}

	return oid.Hex(), nil
}

// List returns all credential documents ordered by createdAt descending
func (l *Ledger) List(ctx context.Context) ([]models.Credential, error) {
	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})

	cur, err := l.db.Collection(collCredentials).Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to list credentials: %w", err)
	}
	defer cur.Close(ctx)

	creds := make([]models.Credential, 0)
	for cur.Next(ctx) {
		var doc credentialDoc
		if err := cur.Decode(&doc); err != nil {
			// Пропускаем нечитаемые документы
			continue
		}
		creds = append(creds, doc.toModel())
	}
	if err := cur.Err(); err != nil {
		return nil, fmt.Errorf("cursor error while listing credentials: %w", err)
	}

	return creds, nil
}

// Get returns a single credential document by id
func (l *Ledger) Get(ctx context.Context, id string) (models.Credential, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		// Не-ObjectID идентификатор (например, offline id) заведомо
		// отсутствует в ledger
		return models.Credential{}, ledger.ErrNotFound
	}

	var doc credentialDoc
	err = l.db.Collection(collCredentials).FindOne(ctx, bson.M{"_id": oid}).Decode(&doc)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return models.Credential{}, ledger.ErrNotFound
		}
		return models.Credential{}, fmt.Errorf("failed to get credential: %w", err)
	}

	return doc.toModel(), nil
}

// Update applies a partial update to the document and refreshes updatedAt
func (l *Ledger) Update(ctx context.Context, id string, upd models.CredentialUpdate, updatedAt string) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return ledger.ErrNotFound
	}

	set := bson.M{"updatedAt": updatedAt}
	if upd.Title != nil {
		set["title"] = *upd.Title
	}
	if upd.Username != nil {
		set["username"] = *upd.Username
	}
	if upd.Email != nil {
		set["email"] = *upd.Email
	}
	if upd.Phone != nil {
		set["phone"] = *upd.Phone
	}
	if upd.Password != nil {
		set["password"] = *upd.Password
	}
	if upd.Description != nil {
		set["description"] = *upd.Description
	}

	_, err = l.db.Collection(collCredentials).UpdateByID(ctx, oid, bson.M{"$set": set})
	if err != nil {
		return fmt.Errorf("failed to update credential: %w", err)
	}

	return nil
}

// Delete removes the document; deleting a missing id is a no-op
func (l *Ledger) Delete(ctx context.Context, id string) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		// Offline id никогда не попадал в ledger — удалять нечего
		return nil
	}

	_, err = l.db.Collection(collCredentials).DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		return fmt.Errorf("failed to delete credential: %w", err)
	}

	return nil
}
