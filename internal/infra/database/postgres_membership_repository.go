package database

import (
	"context"
	"database/sql"
	"fmt"

	"gym_admin/internal/domain/membership"

	"github.com/lib/pq"
)

// PostgresDirectory implements membership.Directory with direct SQL against
// the backend database. It mirrors what the REST adapter does over HTTP.
type PostgresDirectory struct {
	db *sql.DB
}

func NewPostgresDirectory(db *sql.DB) *PostgresDirectory {
	return &PostgresDirectory{db: db}
}

func (r *PostgresDirectory) EnableMembership(ctx context.Context, email string) ([]membership.DeviceToken, error) {
	query := `SELECT notification_token FROM enable_membership($1)`

	rows, err := r.db.QueryContext(ctx, query, email)
	if err != nil {
		return nil, fmt.Errorf("error calling enable_membership: %w", err)
	}
	defer rows.Close()

	return scanTokens(rows)
}

func (r *PostgresDirectory) ListMemberIDs(ctx context.Context) ([]string, error) {
	query := `SELECT id FROM profiles WHERE membership_level = $1`

	rows, err := r.db.QueryContext(ctx, query, membership.LevelMember)
	if err != nil {
		return nil, fmt.Errorf("error listing members: %w", err)
	}
	defer rows.Close()

	var ids []string
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("error scanning member id: %w", err)
		}
		ids = append(ids, id)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating member rows: %w", err)
	}
	return ids, nil
}

func (r *PostgresDirectory) ListTokensForUsers(ctx context.Context, userIDs []string) ([]membership.DeviceToken, error) {
	if len(userIDs) == 0 {
		return []membership.DeviceToken{}, nil
	}

	query := `SELECT token FROM notification_tokens WHERE user_id = ANY($1)`

	rows, err := r.db.QueryContext(ctx, query, pq.Array(userIDs))
	if err != nil {
		return nil, fmt.Errorf("error listing notification tokens: %w", err)
	}
	defer rows.Close()

	return scanTokens(rows)
}

func scanTokens(rows *sql.Rows) ([]membership.DeviceToken, error) {
	var tokens []membership.DeviceToken
	for rows.Next() {
		var token sql.NullString
		if err := rows.Scan(&token); err != nil {
			return nil, fmt.Errorf("error scanning notification token: %w", err)
		}
		if token.Valid {
			tokens = append(tokens, membership.NewDeviceToken(token.String))
		} else {
			tokens = append(tokens, membership.DeviceToken{})
		}
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating token rows: %w", err)
	}
	return tokens, nil
}
