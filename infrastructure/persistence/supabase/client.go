// Package supabase implements the application's repository ports over a
// Supabase project via PostgREST. The service connects with the service
// role key; row-level security still applies to end-user traffic that
// reaches Supabase directly.
package supabase

import (
	"fmt"

	supa "github.com/supabase-community/supabase-go"
)

// Table names in the Supabase project
const (
	profilesTable    = "profiles"
	connectionsTable = "connections"
)

// connectionSelect embeds both endpoint profile snapshots in one query,
// mirroring the foreign-key names of the connections table.
const connectionSelect = "*, " +
	"requester_profile:profiles!connections_requester_id_fkey(*), " +
	"addressee_profile:profiles!connections_addressee_id_fkey(*)"

// NewClient creates a Supabase client for the configured project
func NewClient(url, serviceRoleKey string) (*supa.Client, error) {
	client, err := supa.NewClient(url, serviceRoleKey, nil)
	if err != nil {
		return nil, fmt.Errorf("create supabase client: %w", err)
	}
	return client, nil
}
