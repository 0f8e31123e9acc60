package webserver

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/achantasri/JanAwaaz/internal/directory"
	"github.com/achantasri/JanAwaaz/internal/resolver"
)

type Resolve struct{ dir *directory.Directory }

func NewResolve(dir *directory.Directory) Resolve { return Resolve{dir: dir} }

// Resolve maps a PIN code to constituencies.
// GET /v1/constituencies/resolve?tier=national|state&pin=110001&q=delhi
func (h Resolve) Resolve(c *gin.Context) {
	var tier directory.Tier
	switch c.DefaultQuery("tier", "national") {
	case "national":
		tier = directory.TierNational
	case "state":
		tier = directory.TierAssembly
	default:
		c.JSON(http.StatusBadRequest, gin.H{"err": "tier must be national or state"})
		return
	}

	pin := resolver.Normalize(c.Query("pin"))
	result := resolver.Resolve(h.dir, tier, pin)
	if q := c.Query("q"); q != "" {
		result = resolver.Filter(result, q)
	}
	if result.Groups == nil {
		result.Groups = []resolver.Group{}
	}
	c.JSON(http.StatusOK, result)
}
