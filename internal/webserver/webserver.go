package webserver

import (
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"

	"github.com/achantasri/JanAwaaz/internal/config"
	"github.com/achantasri/JanAwaaz/internal/data"
	"github.com/achantasri/JanAwaaz/internal/directory"
)

func New(cfg config.Config, store *data.Store, rdb *redis.Client, dir *directory.Directory, verifier IdentityVerifier) *gin.Engine {
	g := gin.New()
	g.Use(gin.Logger(), gin.Recovery())
	attachRoutes(g, cfg, store, rdb, dir, verifier)
	return g
}
