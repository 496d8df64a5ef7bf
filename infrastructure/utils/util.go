package utils

import (
	"time"

	"yt-uploader/domain/model"
	"yt-uploader/infrastructure/logger"

	"github.com/golang-jwt/jwt"
	"github.com/google/uuid"
)

const sessionIssuer = "yt-uploader"

func GetCurrentTime() time.Time {
	return time.Now().UTC()
}

func GenerateToken(claims jwt.Claims, secretKey string) (string, error) {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tokenString, err := token.SignedString([]byte(secretKey))
	if err != nil {
		logger.GetLogger().WithField("error", err).Error("Error while generate token")
		return "", err
	}
	return tokenString, nil
}

// GenerateSessionToken mints the bearer token handed to the desktop shell.
// A zero ttl yields a token without expiry.
func GenerateSessionToken(secretKey string, ttl time.Duration) (string, error) {
	now := GetCurrentTime()
	claims := model.SessionClaims{StandardClaims: jwt.StandardClaims{
		Id:       uuid.NewString(),
		Issuer:   sessionIssuer,
		Subject:  uuid.NewString(),
		IssuedAt: now.Unix(),
	}}
	if ttl > 0 {
		claims.ExpiresAt = now.Add(ttl).Unix()
	}
	return GenerateToken(claims, secretKey)
}

// ParseSessionToken verifies an HS256 session token signed with secretKey.
func ParseSessionToken(tokenString, secretKey string) (*model.SessionClaims, error) {
	var claims model.SessionClaims
	_, err := jwt.ParseWithClaims(tokenString, &claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.NewValidationError("unexpected signing method", jwt.ValidationErrorSignatureInvalid)
		}
		return []byte(secretKey), nil
	})
	if err != nil {
		return nil, err
	}
	if claims.Issuer != sessionIssuer {
		return nil, jwt.NewValidationError("unexpected issuer", jwt.ValidationErrorIssuer)
	}
	return &claims, nil
}
