package middleware

import (
	"net/http"

	"github.com/crewfield/crewfield-backend-go/internal/handler/http/response"
	"github.com/go-chi/jwtauth/v5"
)

const (
	RoleOwner   = "owner"
	RoleManager = "manager"
	RoleCrew    = "crew"
)

// AuthRequired rejects requests without a verified access token carrying a
// company_id claim. Tokens are issued by the external auth system.
func AuthRequired(ja *jwtauth.JWTAuth) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		hfn := func(w http.ResponseWriter, r *http.Request) {
			token, claims, err := jwtauth.FromContext(r.Context())
			if err != nil {
				response.Unauthorized(w, err.Error())
				return
			}
			if token == nil {
				response.Unauthorized(w, "Missing access token")
				return
			}

			tokenType, ok := claims["type"].(string)
			if !ok || tokenType != "access" {
				response.Unauthorized(w, "Invalid access token")
				return
			}
			if companyID, ok := claims["company_id"].(string); !ok || companyID == "" {
				response.Unauthorized(w, "Invalid access token")
				return
			}

			next.ServeHTTP(w, r)
		}
		return http.HandlerFunc(hfn)
	}
}

// RequireManager requires manager or owner role
func RequireManager(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, claims, err := jwtauth.FromContext(r.Context())
		if err != nil {
			response.Forbidden(w, "Manager access required")
			return
		}

		role, ok := claims["role"].(string)
		if !ok || (role != RoleManager && role != RoleOwner) {
			response.Forbidden(w, "Manager access required")
			return
		}

		next.ServeHTTP(w, r)
	})
}

// RequireOwner requires owner role
func RequireOwner(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, claims, err := jwtauth.FromContext(r.Context())
		if err != nil {
			response.Forbidden(w, "Owner access required")
			return
		}

		if role, ok := claims["role"].(string); !ok || role != RoleOwner {
			response.Forbidden(w, "Owner access required")
			return
		}

		next.ServeHTTP(w, r)
	})
}

// CompanyID extracts the tenant from the verified token. AuthRequired has
// already rejected tokens without one.
func CompanyID(r *http.Request) string {
	_, claims, err := jwtauth.FromContext(r.Context())
	if err != nil {
		return ""
	}
	companyID, _ := claims["company_id"].(string)
	return companyID
}

// CrewMemberID extracts the caller's crew member link, if the token has one.
// Manager tokens issued from the back office have none.
func CrewMemberID(r *http.Request) string {
	_, claims, err := jwtauth.FromContext(r.Context())
	if err != nil {
		return ""
	}
	crewMemberID, _ := claims["crew_member_id"].(string)
	return crewMemberID
}
