package permissions

import (
	_ "embed"
	"encoding/json"
	"net/http"
	"strings"

	"github.com/rs/zerolog/log"
)

//go:embed permissions.json
var permissionsData []byte

// Permission is the access rule of one route. An empty Permissions list lets any
// authenticated caller through; Skip makes the route public.
type Permission struct {
	Permissions []string `json:"permissions"`
	Path        string   `json:"path"`
	Method      string   `json:"method"`
	Skip        bool     `json:"skip"`
}

type PermissionData struct {
	Endpoints []Permission `json:"endpoints"`
	Skip      bool         `json:"skip"`

	index map[string]Permission
}

// FindPermissions returns the rule registered for the chi route pattern and method.
// A trailing slash on either side is ignored, so "/v1/rooms/" and "/v1/rooms" are the same route.
func (r *PermissionData) FindPermissions(path, method string) Permission {
	if r.index == nil {
		r.buildIndex()
	}

	return r.index[key(path, method)]
}

func (r *PermissionData) buildIndex() {
	r.index = make(map[string]Permission, len(r.Endpoints))

	for _, endpoint := range r.Endpoints {
		k := key(endpoint.Path, endpoint.Method)
		if _, dup := r.index[k]; dup {
			log.Warn().Str("path", endpoint.Path).Str("method", endpoint.Method).Msg("Duplicate permission entry ignored")

			continue
		}

		r.index[k] = endpoint
	}
}

// NormalizePath drops the trailing slash of a route pattern, keeping the root "/".
func NormalizePath(path string) string {
	if len(path) > 1 {
		return strings.TrimSuffix(path, "/")
	}

	return path
}

func key(path, method string) string {
	if method == "" {
		method = http.MethodGet
	}

	return strings.ToUpper(method) + " " + NormalizePath(path)
}

func Get() *PermissionData {
	var permissions PermissionData

	err := json.Unmarshal(permissionsData, &permissions)
	if err != nil {
		log.Err(err).Msg("Failed to decode embedded permissions")

		return nil
	}

	permissions.buildIndex()

	log.Info().Int("endpoints", len(permissions.Endpoints)).Msg("Successfully loaded embedded permissions")

	return &permissions
}
