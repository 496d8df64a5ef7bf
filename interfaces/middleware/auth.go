package middleware

import (
	"errors"
	"net/http"
	"strings"

	"yt-uploader/domain/dto"
	"yt-uploader/infrastructure/i18n"
	"yt-uploader/infrastructure/logger"
	"yt-uploader/infrastructure/utils"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt"
)

// Auth accepts requests carrying the session token minted at startup, either as
// a Bearer header or, for EventSource streams that cannot set headers, as the
// token query parameter. The claims' subject is stored as session_id.
func Auth(secretKey string, texts *i18n.Localizer) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		res := dto.Res{Message: texts.T(i18n.MsgUnauthorized)}

		tokenString := bearerToken(ctx.GetHeader("Authorization"))
		if tokenString == "" {
			tokenString = ctx.Query("token")
		}
		if tokenString == "" {
			ctx.AbortWithStatusJSON(http.StatusUnauthorized, res)
			return
		}

		claims, err := utils.ParseSessionToken(tokenString, secretKey)
		if err != nil {
			logger.GetLogger().WithField("reason", reason(err)).Warn("Rejected session token")
			ctx.AbortWithStatusJSON(http.StatusUnauthorized, res)
			return
		}
		ctx.Set("session_id", claims.Subject)
		ctx.Next()
	}
}

func bearerToken(header string) string {
	const prefix = "Bearer "
	if !strings.HasPrefix(header, prefix) {
		return ""
	}
	return strings.TrimSpace(header[len(prefix):])
}

func reason(err error) string {
	var ve *jwt.ValidationError
	if errors.As(err, &ve) {
		switch {
		case ve.Errors&jwt.ValidationErrorMalformed != 0:
			return "malformed"
		case ve.Errors&(jwt.ValidationErrorExpired|jwt.ValidationErrorNotValidYet) != 0:
			return "expired"
		case ve.Errors&jwt.ValidationErrorIssuer != 0:
			return "issuer"
		}
	}
	return err.Error()
}
