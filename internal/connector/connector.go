package connector

import (
	"context"

	"github.com/crimson-sun/starscope/internal/model"
)

// Connector fetches starred-repository records from a hosting provider.
type Connector interface {
	// Starred retrieves every starred repository of the configured user,
	// following pagination until an empty page.
	Starred(ctx context.Context) ([]model.Repo, error)

	// Topics retrieves the topic names of one repository.
	Topics(ctx context.Context, fullName string) ([]string, error)
}

// Config holds provider-specific connection settings.
type Config struct {
	Token     string
	Username  string
	Endpoint  string  // empty selects the provider default
	PerPage   int     // page size for starred pagination; 0 selects the provider default
	TopicRate float64 // topic calls per second; 0 selects the provider default
}
