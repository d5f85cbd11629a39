// Package permissions holds the route-level access table consumed by the
// RBAC middleware. The table is embedded so a deployment cannot drift from
// the code that routes the requests.
package permissions

import (
	_ "embed"
	"encoding/json"
	"slices"

	"github.com/rs/zerolog/log"
)

//go:embed permissions.json
var permissionsData []byte

// Permission describes the access rule of a single endpoint. Paths are chi
// route patterns, so "/api/rooms/{id}" matches any room id. Skip marks
// endpoints that accept unauthenticated requests.
type Permission struct {
	Permissions []string `json:"permissions"`
	Path        string   `json:"path"`
	Method      string   `json:"method"`
	Skip        bool     `json:"skip"`
}

type PermissionData struct {
	Endpoints []Permission `json:"endpoints"`
	Skip      bool         `json:"skip"`
}

// FindPermissions returns the rule for the given route pattern and method.
// An unlisted endpoint yields the zero Permission, which denies every role.
func (d *PermissionData) FindPermissions(path, method string) Permission {
	idx := slices.IndexFunc(d.Endpoints, func(p Permission) bool {
		return p.Path == path && p.Method == method
	})

	if idx == -1 {
		return Permission{}
	}

	return d.Endpoints[idx]
}

func Get() *PermissionData {
	var permissions PermissionData

	if err := json.Unmarshal(permissionsData, &permissions); err != nil {
		log.Err(err).Msg("Failed to decode embedded permissions")

		return nil
	}

	log.Info().Int("endpoints", len(permissions.Endpoints)).Msg("Loaded embedded permissions")

	return &permissions
}
