package supabase

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"gym_admin/internal/domain/membership"

	postgrest "github.com/supabase-community/postgrest-go"
)

const enableMembershipRPC = "enable_membership"

var ErrUnexpectedResponse = errors.New("unexpected response from supabase")

type enableMembershipParams struct {
	Email string `json:"email_updating_user"`
}

type sessionRow struct {
	NotificationToken *string `json:"notification_token"`
}

type profileRow struct {
	ID string `json:"id"`
}

type tokenRow struct {
	Token *string `json:"token"`
}

// RestDirectory implements membership.Directory on top of PostgREST.
type RestDirectory struct {
	client    *postgrest.Client
	rpcClient func() *postgrest.Client
}

func NewRestDirectory(clients *Clients) *RestDirectory {
	return &RestDirectory{client: clients.Rest, rpcClient: clients.NewRestClient}
}

func (r *RestDirectory) EnableMembership(ctx context.Context, email string) ([]membership.DeviceToken, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	// Rpc reports transport failures through ClientError, which would then
	// fail every later call on that client. Each call gets its own.
	client := r.rpcClient()
	body := client.Rpc(enableMembershipRPC, "", enableMembershipParams{Email: email})
	if err := client.ClientError; err != nil {
		return nil, fmt.Errorf("error calling %s: %w", enableMembershipRPC, err)
	}

	rows, err := decodeRPCRows([]byte(body))
	if err != nil {
		return nil, fmt.Errorf("error calling %s: %w", enableMembershipRPC, err)
	}

	tokens := make([]membership.DeviceToken, 0, len(rows))
	for _, row := range rows {
		tokens = append(tokens, membership.DeviceToken{Token: row.NotificationToken})
	}
	return tokens, nil
}

// decodeRPCRows reads a set-returning RPC body. Rpc does not surface HTTP
// status codes, so an error object in the body is turned into an error here.
func decodeRPCRows(body []byte) ([]sessionRow, error) {
	trimmed := bytes.TrimSpace(body)
	switch {
	case len(trimmed) == 0 || bytes.Equal(trimmed, []byte("null")):
		return nil, nil
	case trimmed[0] == '[':
		var rows []sessionRow
		if err := json.Unmarshal(trimmed, &rows); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrUnexpectedResponse, err)
		}
		return rows, nil
	case trimmed[0] == '{':
		var execErr postgrest.ExecuteError
		if err := json.Unmarshal(trimmed, &execErr); err == nil && execErr.Message != "" {
			return nil, fmt.Errorf("(%s) %s", execErr.Code, execErr.Message)
		}
		var row sessionRow
		if err := json.Unmarshal(trimmed, &row); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrUnexpectedResponse, err)
		}
		return []sessionRow{row}, nil
	default:
		return nil, fmt.Errorf("%w: %.80s", ErrUnexpectedResponse, trimmed)
	}
}

func (r *RestDirectory) ListMemberIDs(ctx context.Context) ([]string, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	var rows []profileRow
	_, err := r.client.From("profiles").
		Select("id", "", false).
		Eq("membership_level", membership.LevelMember).
		ExecuteTo(&rows)
	if err != nil {
		return nil, fmt.Errorf("error listing member profiles: %w", err)
	}

	ids := make([]string, 0, len(rows))
	for _, row := range rows {
		ids = append(ids, row.ID)
	}
	return ids, nil
}

func (r *RestDirectory) ListTokensForUsers(ctx context.Context, userIDs []string) ([]membership.DeviceToken, error) {
	if len(userIDs) == 0 {
		return []membership.DeviceToken{}, nil
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	var rows []tokenRow
	_, err := r.client.From("notification_tokens").
		Select("token", "", false).
		In("user_id", userIDs).
		ExecuteTo(&rows)
	if err != nil {
		return nil, fmt.Errorf("error listing notification tokens: %w", err)
	}

	tokens := make([]membership.DeviceToken, 0, len(rows))
	for _, row := range rows {
		tokens = append(tokens, membership.DeviceToken{Token: row.Token})
	}
	return tokens, nil
}
