// Package mongodb реализует ledger-интерфейсы поверх MongoDB.
package mongodb

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/iudanet/passvault/internal/ledger"
	"github.com/iudanet/passvault/internal/models"
)

// Имена коллекций удаленного ledger
const (
	collCredentials = "credentials"
	collUnlockPins  = "unlock_pins"
	collRevealPins  = "reveal_pins"
)

// Ledger represents MongoDB implementation of the remote ledger
type Ledger struct {
	client *mongo.Client
	db     *mongo.Database
}

// New connects to MongoDB and pings it before returning a Ledger.
// Таймауты заданы явно: подключение 30s, ping 10s.
func New(ctx context.Context, uri, dbName string) (*Ledger, error) {
	connectCtx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	clientOptions := options.Client().
		ApplyURI(uri).
		SetServerSelectionTimeout(10 * time.Second)

	client, err := mongo.Connect(connectCtx, clientOptions)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to mongodb: %w", err)
	}

	// Проверяем доступность отдельным контекстом
	pingCtx, pingCancel := context.WithTimeout(ctx, 10*time.Second)
	defer pingCancel()

	if err := client.Ping(pingCtx, nil); err != nil {
		_ = client.Disconnect(context.Background())
		return nil, fmt.Errorf("failed to ping mongodb: %w", err)
	}

	return &Ledger{
		client: client,
		db:     client.Database(dbName),
	}, nil
}

// Close disconnects from MongoDB
func (l *Ledger) Close(ctx context.Context) error {
	if l.client == nil {
		return nil
	}

	disconnectCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	return l.client.Disconnect(disconnectCtx)
}

// pinCollection подбирает коллекцию по домену PIN
func (l *Ledger) pinCollection(domain models.PinDomain) (*mongo.Collection, error) {
	switch domain {
	case models.PinDomainUnlock:
		return l.db.Collection(collUnlockPins), nil
	case models.PinDomainReveal:
		return l.db.Collection(collRevealPins), nil
	default:
		return nil, fmt.Errorf("%w: %q", ledger.ErrUnknownDomain, domain)
	}
}
