package jwt

import (
	"time"

	"github.com/go-chi/jwtauth/v5"
	"github.com/lestrrat-go/jwx/v2/jwt"
)

// Service verifies and (for tooling and tests) issues access tokens.
// Identity itself lives in an external auth system; this backend only needs
// tokens to carry company_id, an optional crew_member_id, and a role.
type Service interface {
	GenerateAccessToken(companyID string, crewMemberID *string, role string) (token string, expiresAt int64, err error)
	JWTAuth() *jwtauth.JWTAuth
}

type JWTService struct {
	secretKey           string
	accessExpirationStr string
	tokenAuth           *jwtauth.JWTAuth
}

func NewJWTService(secretKey string, accessExpiration string) Service {
	return &JWTService{
		secretKey:           secretKey,
		accessExpirationStr: accessExpiration,
		tokenAuth:           jwtauth.New("HS256", []byte(secretKey), nil, jwt.WithAcceptableSkew(30*time.Second)),
	}
}

func (j *JWTService) JWTAuth() *jwtauth.JWTAuth {
	return j.tokenAuth
}

func (j *JWTService) GenerateAccessToken(companyID string, crewMemberID *string, role string) (string, int64, error) {
	expDuration, err := time.ParseDuration(j.accessExpirationStr)
	if err != nil {
		return "", 0, err
	}
	expiresAt := time.Now().Add(expDuration).Unix()

	claims := map[string]interface{}{
		"company_id": companyID,
		"role":       role,
		"type":       "access",
		"exp":        expiresAt,
	}
	if crewMemberID != nil {
		claims["crew_member_id"] = *crewMemberID
	}

	_, tokenString, err := j.tokenAuth.Encode(claims)
	return tokenString, expiresAt, err
}
