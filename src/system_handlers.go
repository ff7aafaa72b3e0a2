package main

import (
	"net/http"
	"sams/src/apperr"
	"sams/src/middlewares"
	"sams/src/utils"
	"strconv"

	"github.com/gin-gonic/gin"
)

func systemHandlers(g *gin.RouterGroup) *gin.RouterGroup {
	g.
		GET("/system/sweeps", middlewares.RequireAdmin, func(ctx *gin.Context) {
			limit, _ := strconv.Atoi(ctx.Query("limit"))
			entries, err := utils.GetRecentSweeps(limit)
			if err != nil {
				ctx.JSON(apperr.StatusOf(err), err)
				return
			}
			ctx.JSON(http.StatusOK, gin.H{"data": entries, "count": len(entries)})
		})
	return g
}
