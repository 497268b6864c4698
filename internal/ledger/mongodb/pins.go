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

// pinDoc представляет документ PIN-коллекции. Поле pin хранится
// зашифрованным; история документов аддитивна.
type pinDoc struct {
	ID        primitive.ObjectID `bson:"_id,omitempty"`
	Pin       string             `bson:"pin"`
	CreatedAt string             `bson:"createdAt"`
	UpdatedAt string             `bson:"updatedAt"`
	IsDisable bool               `bson:"isDisable"`
}

func (d pinDoc) toModel() models.PinRecord {
	return models.PinRecord{
		ID:        d.ID.Hex(),
		Pin:       d.Pin,
		IsDisable: d.IsDisable,
		CreatedAt: d.CreatedAt,
		UpdatedAt: d.UpdatedAt,
	}
}

// Current returns the newest document with a non-empty pin field.
// Сортировка по createdAt desc дает детерминированный выбор "текущего"
// PIN вместо произвольного первого совпадения.
func (l *Ledger) Current(ctx context.Context, domain models.PinDomain) (models.PinRecord, error) {
	coll, err := l.pinCollection(domain)
	if err != nil {
		return models.PinRecord{}, err
	}

	filter := bson.M{"pin": bson.M{"$ne": ""}}
	opts := options.FindOne().SetSort(bson.D{{Key: "createdAt", Value: -1}})

	var doc pinDoc
	err = coll.FindOne(ctx, filter, opts).Decode(&doc)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return models.PinRecord{}, ledger.ErrNotFound
		}
		return models.PinRecord{}, fmt.Errorf("failed to get current pin: %w", err)
	}

	return doc.toModel(), nil
}

// InsertPin appends a new PIN document (additive history) and returns its id
func (l *Ledger) InsertPin(ctx context.Context, domain models.PinDomain, rec models.PinRecord) (string, error) {
	coll, err := l.pinCollection(domain)
	if err != nil {
		return "", err
	}

	doc := pinDoc{
		Pin:       rec.Pin,
		IsDisable: rec.IsDisable,
		CreatedAt: rec.CreatedAt,
		UpdatedAt: rec.UpdatedAt,
	}

	res, err := coll.InsertOne(ctx, doc)
	if err != nil {
		return "", fmt.Errorf("failed to insert pin: %w", err)
	}

	oid, ok := res.InsertedID.(primitive.ObjectID)
	if !ok {
		return "", fmt.Errorf("unexpected inserted id type %T", res.InsertedID)
	}

	return oid.Hex(), nil
}

// FindByCipher returns the document whose encrypted pin equals cipher.
// Детерминированное шифрование делает поиск по точному ciphertext валидным.
func (l *Ledger) FindByCipher(ctx context.Context, domain models.PinDomain, cipher string) (models.PinRecord, error) {
	coll, err := l.pinCollection(domain)
	if err != nil {
		return models.PinRecord{}, err
	}

	var doc pinDoc
	err = coll.FindOne(ctx, bson.M{"pin": cipher}).Decode(&doc)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return models.PinRecord{}, ledger.ErrNotFound
		}
		return models.PinRecord{}, fmt.Errorf("failed to find pin by cipher: %w", err)
	}

	return doc.toModel(), nil
}

// Rotate overwrites the pin field of the document id with newCipher
// and refreshes updatedAt
func (l *Ledger) Rotate(ctx context.Context, domain models.PinDomain, id, newCipher, updatedAt string) error {
	coll, err := l.pinCollection(domain)
	if err != nil {
		return err
	}

	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return ledger.ErrNotFound
	}

	update := bson.M{"$set": bson.M{
		"pin":       newCipher,
		"updatedAt": updatedAt,
	}}

	res, err := coll.UpdateByID(ctx, oid, update)
	if err != nil {
		return fmt.Errorf("failed to rotate pin: %w", err)
	}
	if res.MatchedCount == 0 {
		return ledger.ErrNotFound
	}

	return nil
}
