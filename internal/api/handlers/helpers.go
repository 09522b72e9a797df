package handlers

import (
	"net/http"
	"strconv"

	"github.com/kieran237-code/Terrabia/internal/api/middleware"
	"github.com/kieran237-code/Terrabia/internal/errors"
	"github.com/kieran237-code/Terrabia/internal/models"
	"github.com/kieran237-code/Terrabia/internal/utils/response"
)

const (
	defaultPage     = 1
	defaultPageSize = 20
	maxPageSize     = 100
)

// paginationParams reads ?page= and ?pageSize= with sane defaults.
func paginationParams(r *http.Request) (int, int) {
	page, err := strconv.Atoi(r.URL.Query().Get("page"))
	if err != nil || page < 1 {
		page = defaultPage
	}

	size, err := strconv.Atoi(r.URL.Query().Get("pageSize"))
	if err != nil || size < 1 {
		size = defaultPageSize
	}

	if size > maxPageSize {
		size = maxPageSize
	}

	return page, size
}

// authenticatedClaims pulls the verified claims out of the request context,
// writing a 401 if the middleware never ran.
func authenticatedClaims(w http.ResponseWriter, r *http.Request) (*models.Claims, bool) {
	claims, ok := middleware.ClaimsFromContext(r.Context())
	if !ok {
		response.Error(w, errors.UnauthorizedError("Authentication required"))

		return nil, false
	}

	return claims, true
}

// requireRole writes a 403 unless the caller holds one of the roles.
func requireRole(w http.ResponseWriter, claims *models.Claims, roles ...models.Role) bool {
	for _, role := range roles {
		if claims.Role == role {
			return true
		}
	}

	response.Error(w, errors.ForbiddenError("Insufficient permissions"))

	return false
}
