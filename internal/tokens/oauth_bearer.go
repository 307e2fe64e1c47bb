package tokens

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"strings"
	"sync"

	"crm-reporting/internal/shared/filestorages"
	"crm-reporting/internal/shared/loggers"

	"golang.org/x/oauth2"
)

const tokenCacheKey = "oauth_token.json"

// OAuthConfig carries the OAuth2 integration settings for the CRM vendor.
type OAuthConfig struct {
	BaseURL      string
	ClientID     string
	ClientSecret string
	RedirectURI  string
	// AuthCode is only consulted when no cached token exists yet.
	AuthCode string
}

// NewOAuthBearer returns a source that exchanges the one-time authorization
// code on first use, caches the resulting token in storage, and refreshes it
// automatically afterwards.
func NewOAuthBearer(cfg OAuthConfig, storage filestorages.FileStorage) BearerSource {
	base := strings.TrimRight(cfg.BaseURL, "/")
	return &oauthBearer{
		oauthCfg: &oauth2.Config{
			ClientID:     cfg.ClientID,
			ClientSecret: cfg.ClientSecret,
			RedirectURL:  cfg.RedirectURI,
			Endpoint: oauth2.Endpoint{
				AuthURL:  base + "/oauth",
				TokenURL: base + "/oauth2/access_token",
			},
		},
		authCode: cfg.AuthCode,
		storage:  storage,
	}
}

type oauthBearer struct {
	oauthCfg *oauth2.Config
	authCode string
	storage  filestorages.FileStorage

	mu     sync.Mutex
	source oauth2.TokenSource
	last   *oauth2.Token
}

func (b *oauthBearer) Token(ctx context.Context) (string, error) {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.source == nil {
		initial, err := b.initialToken(ctx)
		if err != nil {
			return "", err
		}
		b.last = initial
		b.source = b.oauthCfg.TokenSource(ctx, initial)
	}

	tok, err := b.source.Token()
	if err != nil {
		return "", errTokenUnavailable(err)
	}

	// Persist refreshed tokens so the next invocation skips the exchange.
	if b.last == nil || tok.AccessToken != b.last.AccessToken {
		if err := b.persist(ctx, tok); err != nil {
			loggers.Ctx(ctx).Warn().Err(err).Msg("failed to cache refreshed token")
		}
		b.last = tok
	}

	return tok.AccessToken, nil
}

// initialToken loads the cached token, falling back to the one-time
// authorization code exchange when no cache exists yet.
func (b *oauthBearer) initialToken(ctx context.Context) (*oauth2.Token, error) {
	rc, err := b.storage.Get(ctx, tokenCacheKey)
	if err == nil {
		defer rc.Close()
		data, err := io.ReadAll(rc)
		if err != nil {
			return nil, errTokenUnavailable(err)
		}
		var tok oauth2.Token
		if err := json.Unmarshal(data, &tok); err != nil {
			return nil, errTokenUnavailable(err)
		}
		loggers.Ctx(ctx).Debug().Msg("using cached oauth token")
		return &tok, nil
	}
	if !errors.Is(err, filestorages.ErrFileNotFound) {
		return nil, errTokenUnavailable(err)
	}

	if b.authCode == "" {
		return nil, errMissingCredentials("no cached token and no authorization code configured")
	}

	loggers.Ctx(ctx).Info().Msg("no cached token, exchanging authorization code")
	tok, err := b.oauthCfg.Exchange(ctx, b.authCode)
	if err != nil {
		return nil, errTokenUnavailable(err)
	}
	if err := b.persist(ctx, tok); err != nil {
		return nil, errTokenUnavailable(err)
	}
	return tok, nil
}

func (b *oauthBearer) persist(ctx context.Context, tok *oauth2.Token) error {
	data, err := json.Marshal(tok)
	if err != nil {
		return err
	}
	return b.storage.Put(ctx, tokenCacheKey, bytes.NewReader(data))
}
