package shared

import "github.com/golang-jwt/jwt/v4"

// UserClaims is the payload minted by the external auth service. The API only
// validates and reads it, it never issues tokens.
type UserClaims struct {
	UserId *int32  `json:"userId"`
	Role   *string `json:"role"`
	jwt.RegisteredClaims
}
