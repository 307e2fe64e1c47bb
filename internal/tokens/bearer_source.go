package tokens

import (
	"context"
)

//go:generate mockgen -source=bearer_source.go -destination=./mocks/bearer_source_mock.go -package=mocks
type BearerSource interface {
	// Token returns the bearer token to attach to the next CRM request.
	Token(ctx context.Context) (string, error)
}

// NewStaticBearer returns a source backed by a long-lived token configured
// out of band. No refresh ever happens.
func NewStaticBearer(token string) BearerSource {
	return staticBearer{token: token}
}

type staticBearer struct {
	token string
}

func (s staticBearer) Token(_ context.Context) (string, error) {
	if s.token == "" {
		return "", errMissingCredentials("long-lived token is empty")
	}
	return s.token, nil
}
