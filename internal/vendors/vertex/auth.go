package vertex

import (
	"context"
	"fmt"
	"os"

	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"
)

// TokenEnv holds a pre-fetched access token, for instance the output of
// 'gcloud auth print-access-token'. When unset, application default
// credentials are used.
const TokenEnv = "VERTEX_ACCESS_TOKEN"

const cloudPlatformScope = "https://www.googleapis.com/auth/cloud-platform"

func staticToken() (oauth2.TokenSource, bool) {
	tok := os.Getenv(TokenEnv)
	if tok == "" {
		return nil, false
	}
	return oauth2.StaticTokenSource(&oauth2.Token{
		AccessToken: tok,
		TokenType:   "Bearer",
	}), true
}

func tokenSource(ctx context.Context) (oauth2.TokenSource, error) {
	if ts, ok := staticToken(); ok {
		return ts, nil
	}
	ts, err := google.DefaultTokenSource(ctx, cloudPlatformScope)
	if err != nil {
		return nil, fmt.Errorf("failed to find application default credentials, set '%v' or run 'gcloud auth application-default login': %w", TokenEnv, err)
	}
	return ts, nil
}
