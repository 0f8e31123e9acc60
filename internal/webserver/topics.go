package webserver

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/microcosm-cc/bluemonday"
	"gorm.io/gorm"

	"github.com/achantasri/JanAwaaz/internal/data"
	"github.com/achantasri/JanAwaaz/internal/logging"
	"github.com/achantasri/JanAwaaz/internal/remote"
)

type Topics struct {
	store     *data.Store
	sanitizer *bluemonday.Policy
}

func NewTopics(store *data.Store) Topics {
	return Topics{store: store, sanitizer: bluemonday.StrictPolicy()}
}

// AdminMiddleware gates topic authoring on the admins table.
func AdminMiddleware(store *data.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		ok, err := store.IsAdmin(c, c.GetString("uid"))
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"err": err.Error()})
			c.Abort()
			return
		}
		if !ok {
			c.JSON(http.StatusForbidden, gin.H{"err": "admin access required"})
			c.Abort()
			return
		}
		c.Next()
	}
}

func (t Topics) List(c *gin.Context) {
	topics, err := t.store.ListTopics(c, c.Param("id"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"err": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"topics": topics})
}

func (t Topics) Create(c *gin.Context) {
	var req struct {
		ConstituencyID string `json:"constituencyId" binding:"required"`
		Title          string `json:"title" binding:"required,max=255"`
		Problem        string `json:"problem"`
		Solution       string `json:"solution"`
		Category       string `json:"category" binding:"max=64"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"err": err.Error()})
		return
	}

	id, err := t.store.CreateTopic(c, req.ConstituencyID, remote.TopicFields{
		Title:    t.sanitizer.Sanitize(req.Title),
		Problem:  t.sanitizer.Sanitize(req.Problem),
		Solution: t.sanitizer.Sanitize(req.Solution),
		Category: t.sanitizer.Sanitize(req.Category),
	})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"err": err.Error()})
		return
	}

	logging.Log.Infof("admin %s created topic %s in %s", c.GetString("uid"), id, req.ConstituencyID)
	c.JSON(http.StatusCreated, gin.H{"id": id})
}

func (t Topics) Update(c *gin.Context) {
	var req struct {
		Title    *string `json:"title"`
		Problem  *string `json:"problem"`
		Solution *string `json:"solution"`
		Category *string `json:"category"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"err": err.Error()})
		return
	}

	update := remote.TopicUpdate{
		Title:    t.sanitizeField(req.Title),
		Problem:  t.sanitizeField(req.Problem),
		Solution: t.sanitizeField(req.Solution),
		Category: t.sanitizeField(req.Category),
	}
	if err := t.store.UpdateTopic(c, c.Param("id"), update); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"err": "topic not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"err": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}

func (t Topics) Delete(c *gin.Context) {
	if err := t.store.DeleteTopic(c, c.Param("id")); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"err": "topic not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"err": err.Error()})
		return
	}
	logging.Log.Infof("admin %s deleted topic %s", c.GetString("uid"), c.Param("id"))
	c.Status(http.StatusNoContent)
}

func (t Topics) sanitizeField(s *string) *string {
	if s == nil {
		return nil
	}
	clean := t.sanitizer.Sanitize(*s)
	return &clean
}
