package main

import (
	"net/http"
	"sams/src/apperr"
	"sams/src/middlewares"
	"sams/src/types"
	"sams/src/utils"

	"github.com/gin-gonic/gin"
)

func bookingHandlers(g *gin.RouterGroup) *gin.RouterGroup {
	g.
		POST("/bookings", func(ctx *gin.Context) {
			var body types.CreateBookingRequestBody
			if err := ctx.ShouldBindJSON(&body); err != nil {
				ctx.JSON(http.StatusBadRequest, gin.H{"kind": "validation", "error": err.Error()})
				return
			}
			userId := ctx.GetUint("id")
			booking, err := utils.CreateBooking(userId, &body)
			if err != nil {
				ctx.JSON(apperr.StatusOf(err), err)
				return
			}
			ctx.JSON(http.StatusCreated, gin.H{"data": booking})
		}).
		GET("/bookings/user", func(ctx *gin.Context) {
			userId := ctx.GetUint("id")
			bookings, err := utils.GetOwnBookings(userId)
			if err != nil {
				ctx.JSON(apperr.StatusOf(err), err)
				return
			}
			ctx.JSON(http.StatusOK, gin.H{"data": bookings, "count": len(bookings)})
		}).
		GET("/bookings", middlewares.RequireAdmin, func(ctx *gin.Context) {
			bookings, counts, err := utils.GetAllBookings()
			if err != nil {
				ctx.JSON(apperr.StatusOf(err), err)
				return
			}
			ctx.JSON(http.StatusOK, gin.H{"data": bookings, "count": len(bookings), "summary": counts})
		}).
		PATCH("/bookings/:id/status", middlewares.RequireAdmin, func(ctx *gin.Context) {
			var params types.SimpleRequestParams
			if err := ctx.ShouldBindUri(&params); err != nil {
				ctx.Status(http.StatusBadRequest)
				return
			}
			var body types.DecideBookingRequestBody
			if err := ctx.ShouldBindJSON(&body); err != nil {
				ctx.JSON(http.StatusBadRequest, gin.H{"kind": "validation", "error": err.Error()})
				return
			}
			booking, err := utils.DecideBooking(params.ID, body.Status)
			if err != nil {
				ctx.JSON(apperr.StatusOf(err), err)
				return
			}
			ctx.JSON(http.StatusOK, gin.H{"data": booking})
		})
	return g
}
