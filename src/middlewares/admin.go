package middlewares

import (
	"net/http"
	"sams/src/apperr"
	"sams/src/db"
	"sams/src/models"

	"github.com/gin-gonic/gin"
)

// RequireAdmin gates mutating endpoints on the administrative flag. The
// user row is re-read so a revoked flag takes effect immediately.
func RequireAdmin(ctx *gin.Context) {
	userId := ctx.GetUint("id")
	db := db.GetDb()
	var user models.User
	if err := db.
		Model(&models.User{}).
		Where(&models.User{ID: userId}).
		First(&user).
		Error; err != nil {
		ctx.AbortWithStatus(http.StatusUnauthorized)
		return
	}
	if !models.CanAdminister(&user) {
		ctx.AbortWithStatusJSON(http.StatusForbidden, apperr.Authorization("admin access required"))
		return
	}
}
