package webserver

import (
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"

	"github.com/achantasri/JanAwaaz/internal/config"
	"github.com/achantasri/JanAwaaz/internal/data"
	"github.com/achantasri/JanAwaaz/internal/directory"
)

func attachRoutes(r *gin.Engine, cfg config.Config, store *data.Store, rdb *redis.Client, dir *directory.Directory, verifier IdentityVerifier) {
	r.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.AllowedOrigins,
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
	}))

	limiter := NewRateLimiter(cfg.RateLimit, time.Minute)

	authH := NewAuth(rdb, []byte(cfg.JWTSecret), verifier)
	resolveH := NewResolve(dir)
	topicsH := NewTopics(store)
	votesH := NewVotes(store)
	settingsH := NewSettings(store)

	v1 := r.Group("/v1")
	{
		v1.POST("/auth/challenge", RateLimitMiddleware(limiter), authH.Challenge)
		v1.POST("/auth/verify", RateLimitMiddleware(limiter), authH.Verify)

		v1.GET("/status", settingsH.Status)
		v1.GET("/constituencies/resolve", resolveH.Resolve)
		v1.GET("/constituencies/:id/topics", topicsH.List)
		v1.GET("/constituencies/:id/topics/:topic/counts", votesH.Counts)

		secured := v1.Group("")
		secured.Use(JWTMiddleware([]byte(cfg.JWTSecret)))
		{
			secured.GET("/constituencies/:id/votes", votesH.UserVotes)
			secured.POST("/votes", RateLimitMiddleware(limiter), votesH.Cast)

			admin := secured.Group("")
			admin.Use(AdminMiddleware(store))
			{
				admin.POST("/topics", topicsH.Create)
				admin.PUT("/topics/:id", topicsH.Update)
				admin.DELETE("/topics/:id", topicsH.Delete)
				admin.PUT("/settings", settingsH.Put)
			}
		}
	}
}
