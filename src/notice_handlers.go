package main

import (
	"encoding/json"
	"log"
	"net/http"
	"sams/src/apperr"
	"sams/src/config"
	"sams/src/lib"
	"sams/src/middlewares"
	"sams/src/types"
	"sams/src/utils"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// noticeBoardHandlers serves the public notice board. Listing needs no
// authentication; only the include_expired view is gated on the admin flag,
// which OptionalAuth resolves when a token is supplied.
func noticeBoardHandlers(g *gin.RouterGroup) *gin.RouterGroup {
	g.
		GET("/notices", middlewares.OptionalAuth, func(ctx *gin.Context) {
			includeExpired, _ := strconv.ParseBool(ctx.Query("include_expired"))
			if includeExpired && !ctx.GetBool("is_admin") {
				ctx.Status(http.StatusForbidden)
				return
			}
			if !includeExpired {
				if cached := lib.CacheGet(utils.NoticesCacheKey); cached != "" {
					ctx.Data(http.StatusOK, "application/json", []byte(cached))
					return
				}
			}
			notices, err := utils.GetNotices(includeExpired)
			if err != nil {
				ctx.JSON(apperr.StatusOf(err), err)
				return
			}
			payload := gin.H{"data": notices, "count": len(notices)}
			if !includeExpired {
				if raw, err := json.Marshal(payload); err == nil {
					lib.CacheSet(utils.NoticesCacheKey, string(raw), config.NoticeCacheTTL())
				}
			}
			ctx.JSON(http.StatusOK, payload)
		})
	return g
}

func noticeHandlers(g *gin.RouterGroup) *gin.RouterGroup {
	g.
		POST("/notices", middlewares.RequireAdmin, func(ctx *gin.Context) {
			var body types.CreateNoticeRequestBody
			if err := ctx.ShouldBindJSON(&body); err != nil {
				ctx.JSON(http.StatusBadRequest, gin.H{"kind": "validation", "error": err.Error()})
				return
			}
			userId := ctx.GetUint("id")
			notice, err := utils.PublishNotice(userId, &body)
			if err != nil {
				log.Printf("Error creating notice: %s\n", err.Error())
				ctx.JSON(apperr.StatusOf(err), err)
				return
			}
			ctx.JSON(http.StatusOK, gin.H{"data": notice})
		}).
		DELETE("/notices/:id", middlewares.RequireAdmin, func(ctx *gin.Context) {
			var params types.NoticeURIParams
			if err := ctx.ShouldBindUri(&params); err != nil {
				ctx.Status(http.StatusBadRequest)
				return
			}
			noticeId, err := uuid.Parse(params.ID)
			if err != nil {
				ctx.Status(http.StatusBadRequest)
				return
			}
			if err := utils.RetractNotice(noticeId); err != nil {
				ctx.JSON(apperr.StatusOf(err), err)
				return
			}
			ctx.Status(http.StatusNoContent)
		})
	return g
}
