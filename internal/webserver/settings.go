package webserver

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/achantasri/JanAwaaz/internal/data"
	"github.com/achantasri/JanAwaaz/internal/logging"
)

type Settings struct{ store *data.Store }

func NewSettings(store *data.Store) Settings { return Settings{store: store} }

// Status reports the operational state the frontend checks before rendering:
// the maintenance banner and whether voting is paused.
func (s Settings) Status(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"banner":         data.MaintenanceBanner(),
		"votingDisabled": data.VotingDisabled(),
	})
}

// Put upserts one operational setting.
func (s Settings) Put(c *gin.Context) {
	var req struct {
		Name  string `json:"name" binding:"required,max=32"`
		Value string `json:"value" binding:"max=256"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"err": err.Error()})
		return
	}

	if err := s.store.SaveSetting(c, req.Name, req.Value); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"err": err.Error()})
		return
	}
	logging.Log.Infof("admin %s set %s", c.GetString("uid"), req.Name)
	c.JSON(http.StatusOK, gin.H{"success": true})
}
