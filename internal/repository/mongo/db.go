package mongo

import (
	"context"
	"errors"
	"strings"
	"time"

	"athme/training-app/internal/repository"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
)

// Default connection timeout
const defaultTimeout = 10 * time.Second

// ConnectDB establishes a connection to MongoDB using the provided URI
// and verifies it with a ping.
func ConnectDB(uri string) (*mongo.Client, error) {
	ctx, cancel := context.WithTimeout(context.Background(), defaultTimeout)
	defer cancel()

	clientOptions := options.Client().ApplyURI(uri)
	client, err := mongo.Connect(ctx, clientOptions)
	if err != nil {
		return nil, err
	}

	pingCtx, pingCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer pingCancel()

	if err := client.Ping(pingCtx, readpref.Primary()); err != nil {
		disconnectCtx, disconnectCancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer disconnectCancel()
		_ = client.Disconnect(disconnectCtx)
		return nil, err
	}

	return client, nil
}

// DisconnectDB gracefully disconnects the MongoDB client.
func DisconnectDB(client *mongo.Client) error {
	ctx, cancel := context.WithTimeout(context.Background(), defaultTimeout)
	defer cancel()
	return client.Disconnect(ctx)
}

// sessionTransactionManager implements repository.TransactionManager on
// Mongo sessions. Repositories pick the session up from the context, so
// no repository code changes between transactional and plain calls.
type sessionTransactionManager struct {
	client *mongo.Client
}

// NewTransactionManager creates a TransactionManager backed by Mongo
// multi-document transactions.
func NewTransactionManager(client *mongo.Client) repository.TransactionManager {
	return &sessionTransactionManager{client: client}
}

func (m *sessionTransactionManager) WithTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	session, err := m.client.StartSession()
	if err != nil {
		return err
	}
	defer session.EndSession(ctx)

	_, err = session.WithTransaction(ctx, func(sc mongo.SessionContext) (interface{}, error) {
		return nil, fn(sc)
	})
	if err != nil && transactionsUnsupported(err) {
		// Standalone Mongo has no multi-document transactions. Fall back
		// to running the write set sequentially in its fixed order; the
		// resulting read-visibility window is a documented limitation.
		return fn(ctx)
	}
	return err
}

// transactionsUnsupported reports whether err means the deployment cannot
// run multi-document transactions (standalone server, code 20).
func transactionsUnsupported(err error) bool {
	var cmdErr mongo.CommandError
	if errors.As(err, &cmdErr) && cmdErr.Code == 20 {
		return true
	}
	return strings.Contains(err.Error(), "Transaction numbers are only allowed on a replica set")
}
