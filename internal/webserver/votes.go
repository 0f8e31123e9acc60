package webserver

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/achantasri/JanAwaaz/internal/data"
)

type Votes struct{ store *data.Store }

func NewVotes(store *data.Store) Votes { return Votes{store: store} }

// Cast applies a vote transition for the signed-in user. The previous
// direction is derived inside the store's transaction, so two rapid casts
// cannot double-count.
func (v Votes) Cast(c *gin.Context) {
	if data.VotingDisabled() {
		c.JSON(http.StatusServiceUnavailable, gin.H{"err": "voting is paused"})
		return
	}

	var req struct {
		ConstituencyID string `json:"constituencyId" binding:"required"`
		TopicID        string `json:"topicId" binding:"required"`
		Direction      string `json:"direction" binding:"required,oneof=up down"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"err": err.Error()})
		return
	}

	direction, err := v.store.CastVoteAtomic(c, c.GetString("uid"), req.ConstituencyID, req.TopicID, req.Direction)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"err": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, gin.H{"direction": direction})
}

func (v Votes) Counts(c *gin.Context) {
	counts, err := v.store.VoteCounts(c, c.Param("id"), c.Param("topic"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"err": err.Error()})
		return
	}
	c.JSON(http.StatusOK, counts)
}

// UserVotes returns the signed-in user's votes in one constituency, keyed by
// topic ID. This is the reconciliation fetch the client ledger uses after a
// failed cast.
func (v Votes) UserVotes(c *gin.Context) {
	votes, err := v.store.GetUserVotes(c, c.GetString("uid"), c.Param("id"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"err": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"votes": votes})
}
