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

func apartmentHandlers(g *gin.RouterGroup) *gin.RouterGroup {
	g.
		GET("/apartments", func(ctx *gin.Context) {
			db := db.GetDb()
			var apartments []models.Apartment
			if err := db.
				Model(&models.Apartment{}).
				Order("tower_id asc, floor asc, number asc").
				Find(&apartments).
				Error; err != nil {
				log.Printf("Error retrieving apartments: %s\n", err.Error())
				ctx.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
				return
			}
			ctx.JSON(http.StatusOK, gin.H{"data": apartments, "count": len(apartments)})
		}).
		GET("/towers/:towerId/apartments", func(ctx *gin.Context) {
			var params types.TowerApartmentsURIParams
			if err := ctx.ShouldBindUri(&params); err != nil {
				ctx.Status(http.StatusBadRequest)
				return
			}
			db := db.GetDb()
			var apartments []models.Apartment
			if err := db.
				Model(&models.Apartment{}).
				Where(&models.Apartment{TowerID: params.TowerID}).
				Order("floor asc, number asc").
				Find(&apartments).
				Error; err != nil {
				log.Printf("Error retrieving apartments for tower %d: %s\n", params.TowerID, err.Error())
				ctx.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
				return
			}
			ctx.JSON(http.StatusOK, gin.H{"data": apartments, "count": len(apartments)})
		}).
		PATCH("/apartments/:id", middlewares.RequireAdmin, func(ctx *gin.Context) {
			var params types.SimpleRequestParams
			if err := ctx.ShouldBindUri(&params); err != nil {
				ctx.Status(http.StatusBadRequest)
				return
			}
			var body types.UpdateApartmentRequestBody
			if err := ctx.ShouldBindJSON(&body); err != nil {
				ctx.JSON(http.StatusBadRequest, gin.H{"kind": "validation", "error": err.Error()})
				return
			}
			db := db.GetDb()
			var apartment models.Apartment
			err := db.Transaction(func(tx *gorm.DB) error {
				res := tx.
					Model(&models.Apartment{}).
					Where("id = ?", params.ID).
					Updates(map[string]any{
						"owner_name":     body.OwnerName,
						"status":         body.Status,
						"monthly_rent":   body.MonthlyRent,
						"sale_price":     body.SalePrice,
						"contact_number": body.ContactNumber,
					})
				if res.Error != nil {
					return res.Error
				}
				if res.RowsAffected == 0 {
					return gorm.ErrRecordNotFound
				}
				return tx.
					Model(&models.Apartment{}).
					Where("id = ?", params.ID).
					First(&apartment).
					Error
			})
			if err != nil {
				if errors.Is(err, gorm.ErrRecordNotFound) {
					ctx.Status(http.StatusNotFound)
					return
				}
				log.Printf("Error updating apartment %d: %s\n", params.ID, err.Error())
				ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
				return
			}
			ctx.JSON(http.StatusOK, gin.H{"data": apartment})
		})
	return g
}

func amenityHandlers(g *gin.RouterGroup) *gin.RouterGroup {
	g.
		GET("/amenities", func(ctx *gin.Context) {
			db := db.GetDb()
			var amenities []models.Amenity
			if err := db.
				Model(&models.Amenity{}).
				Order("name asc").
				Find(&amenities).
				Error; err != nil {
				log.Printf("Error retrieving amenities: %s\n", err.Error())
				ctx.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
				return
			}
			ctx.JSON(http.StatusOK, gin.H{"data": amenities, "count": len(amenities)})
		}).
		GET("/amenities/:id", func(ctx *gin.Context) {
			var params types.SimpleRequestParams
			if err := ctx.ShouldBindUri(&params); err != nil {
				ctx.Status(http.StatusBadRequest)
				return
			}
			db := db.GetDb()
			var amenity models.Amenity
			if err := db.
				Model(&models.Amenity{}).
				Where(&models.Amenity{ID: params.ID}).
				First(&amenity).
				Error; err != nil {
				ctx.JSON(http.StatusNotFound, gin.H{"error": "amenity not found"})
				return
			}
			ctx.JSON(http.StatusOK, gin.H{"data": amenity})
		})
	return g
}
