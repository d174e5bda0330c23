// internal/infra/supabase/client.go
package supabase

import (
	"fmt"
	"net/url"
	"strings"

	postgrest "github.com/supabase-community/postgrest-go"
	storage_go "github.com/supabase-community/storage-go"
)

const (
	restPath    = "/rest/v1"
	storagePath = "/storage/v1"
	schema      = "public"
)

// Clients holds the PostgREST and Storage handles of one Supabase project.
// They are built once at startup and never mutated afterwards.
type Clients struct {
	Rest    *postgrest.Client
	Storage *storage_go.Client

	restURL string
	headers map[string]string
}

// NewRestClient returns a fresh PostgREST client for calls that record their
// failure on the client itself (Rpc), keeping Rest untouched.
func (c *Clients) NewRestClient() *postgrest.Client {
	return postgrest.NewClient(c.restURL, schema, c.headers)
}

// NewClients builds both clients from the project URL and an access token.
func NewClients(backendURL, accessToken string) (*Clients, error) {
	if accessToken == "" {
		return nil, fmt.Errorf("supabase access token is empty")
	}
	base, err := url.Parse(strings.TrimSpace(backendURL))
	if err != nil {
		return nil, fmt.Errorf("invalid supabase URL: %w", err)
	}
	if base.Scheme == "" || base.Host == "" {
		return nil, fmt.Errorf("invalid supabase URL %q: scheme and host are required", backendURL)
	}
	root := strings.TrimRight(base.String(), "/")

	headers := map[string]string{
		"apikey":        accessToken,
		"Authorization": "Bearer " + accessToken,
	}

	rest := postgrest.NewClient(root+restPath, schema, headers)
	if rest.ClientError != nil {
		return nil, fmt.Errorf("failed to create postgrest client: %w", rest.ClientError)
	}

	return &Clients{
		Rest:    rest,
		Storage: storage_go.NewClient(root+storagePath, accessToken, headers),
		restURL: root + restPath,
		headers: headers,
	}, nil
}
