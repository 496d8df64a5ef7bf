package model

import "github.com/golang-jwt/jwt"

// SessionClaims identify the desktop shell that is allowed to call the local API.
type SessionClaims struct {
	jwt.StandardClaims
}
