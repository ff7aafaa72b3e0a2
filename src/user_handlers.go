package main

import (
	"errors"
	"log"
	"net/http"
	"sams/src/db"
	"sams/src/middlewares"
	"sams/src/models"
	"sams/src/types"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

func userHandlers(g *gin.RouterGroup) *gin.RouterGroup {
	g.
		GET("/users", middlewares.RequireAdmin, func(ctx *gin.Context) {
			db := db.GetDb()
			var users []models.User
			if err := db.
				Model(&models.User{}).
				Order("name asc").
				Find(&users).
				Error; err != nil {
				log.Printf("Error retrieving users: %s\n", err.Error())
				ctx.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
				return
			}
			ctx.JSON(http.StatusOK, gin.H{"data": users, "count": len(users)})
		}).
		PATCH("/users/:id", middlewares.RequireAdmin, func(ctx *gin.Context) {
			var params types.SimpleRequestParams
			if err := ctx.ShouldBindUri(&params); err != nil {
				ctx.Status(http.StatusBadRequest)
				return
			}
			var body types.UpdateUserRequestBody
			if err := ctx.ShouldBindJSON(&body); err != nil {
				ctx.JSON(http.StatusBadRequest, gin.H{"kind": "validation", "error": err.Error()})
				return
			}
			db := db.GetDb()
			var user models.User
			err := db.Transaction(func(tx *gorm.DB) error {
				res := tx.
					Model(&models.User{}).
					Where("id = ?", params.ID).
					Update("is_admin", *body.IsAdmin)
				if res.Error != nil {
					return res.Error
				}
				if res.RowsAffected == 0 {
					return gorm.ErrRecordNotFound
				}
				return tx.
					Model(&models.User{}).
					Where("id = ?", params.ID).
					First(&user).
					Error
			})
			if err != nil {
				if errors.Is(err, gorm.ErrRecordNotFound) {
					ctx.Status(http.StatusNotFound)
					return
				}
				log.Printf("Error updating user %d: %s\n", params.ID, err.Error())
				ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
				return
			}
			ctx.JSON(http.StatusOK, gin.H{"data": user})
		})
	return g
}
