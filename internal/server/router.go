package server

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"

	"meetbook/internal/handlers"
	"meetbook/internal/middleware"
	"meetbook/pkg/auth"
)

func APIEndpoints(r *gin.Engine, jwtMgr *auth.JWTManager, rdb *redis.Client, meetupH *handlers.MeetupHandler, calendarH *handlers.CalendarHandler) {
	r.GET("/health", func(c *gin.Context) {
		c.String(http.StatusOK, "OK")
	})

	authed := r.Group("/", middleware.AuthMiddleware(jwtMgr, rdb))
	{
		meetups := authed.Group("/meetups")
		{
			meetups.POST("", meetupH.CreateMeetup)
			meetups.GET("", meetupH.ListMeetups)
			meetups.GET("/:id", meetupH.GetMeetup)
			meetups.PATCH("/:id", meetupH.UpdateMeetup)
		}

		cal := authed.Group("/calendar")
		{
			cal.GET("/month", calendarH.MonthView)
			cal.GET("/week", calendarH.WeekView)
		}
	}
}
