package utils

import (
	"context"
	"fmt"

	firebase "firebase.google.com/go/v4"
	"firebase.google.com/go/v4/messaging"
	"google.golang.org/api/option"

	"casaherenia/config"
)

// NewFCMClient initializes the Firebase App and returns its Messaging client.
// Returns nil without error when no credentials file is configured; operator
// push is an optional integration.
func NewFCMClient(ctx context.Context, cfg config.Config) (*messaging.Client, error) {
	if cfg.FirebaseCredentialsFile == "" {
		return nil, nil
	}

	opt := option.WithCredentialsFile(cfg.FirebaseCredentialsFile)
	app, err := firebase.NewApp(ctx, nil, opt)
	if err != nil {
		return nil, fmt.Errorf("firebase: error initializing app: %w", err)
	}

	client, err := app.Messaging(ctx)
	if err != nil {
		return nil, fmt.Errorf("firebase: error getting Messaging client: %w", err)
	}
	return client, nil
}
