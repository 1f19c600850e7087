// Package store contains all remote data access for the Wanderplan API.
// Each entity has its own file with an interface and a Supabase (PostgREST)
// implementation. No business logic lives here, only query building and type
// mapping.
//
// Every query is scoped to a user id with an explicit eq filter, matching the
// row-level-security policies on the managed tables: a correctly configured
// project can never return another user's rows, and neither can a store stub
// in tests.
package store

import (
	"encoding/json"
	"fmt"
)

// rowsAffected counts the records in a PostgREST "return=representation"
// response body. Deletes that match zero rows still return HTTP 200 with an
// empty array, so callers use this to translate "nothing deleted" into
// domain.ErrNotFound the way a SQL RowsAffected check would.
func rowsAffected(data []byte) (int, error) {
	var rows []json.RawMessage
	if err := json.Unmarshal(data, &rows); err != nil {
		return 0, fmt.Errorf("decode response: %w", err)
	}
	return len(rows), nil
}
