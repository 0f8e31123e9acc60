package webserver

import (
	"context"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	"github.com/achantasri/JanAwaaz/internal/data"
	"github.com/achantasri/JanAwaaz/internal/logging"
)

// Identity provider failure categories. The frontend shows each as a
// dismissible notice; a user-cancelled sign-in is not an error at all.
var (
	ErrUnauthorizedOrigin = errors.New("auth: origin not authorized for this provider")
	ErrCancelled          = errors.New("auth: sign-in cancelled by user")
	ErrProviderDisabled   = errors.New("auth: provider disabled")
)

// Identity is the stable user record the provider hands back on sign-in.
type Identity struct {
	UID         string `json:"uid"`
	DisplayName string `json:"displayName,omitempty"`
	PhotoURL    string `json:"photoUrl,omitempty"`
}

// IdentityVerifier checks a provider assertion against the challenge nonce.
// The concrete provider integration lives behind this interface.
type IdentityVerifier interface {
	Verify(ctx context.Context, uid, nonce, proof string) (Identity, error)
}

// HMACVerifier accepts proofs of the form hex(HMAC-SHA256(secret, uid+"\n"+nonce)).
// It stands in for an external identity provider in deployments that front
// JanAwaaz with their own gateway.
type HMACVerifier struct {
	Secret []byte
}

func (v HMACVerifier) Verify(_ context.Context, uid, nonce, proof string) (Identity, error) {
	mac := hmac.New(sha256.New, v.Secret)
	mac.Write([]byte(uid + "\n" + nonce))
	got, err := hex.DecodeString(proof)
	if err != nil || !hmac.Equal(got, mac.Sum(nil)) {
		return Identity{}, errors.New("auth: bad proof")
	}
	return Identity{UID: uid}, nil
}

type Auth struct {
	rdb       *redis.Client
	jwtSecret []byte
	verifier  IdentityVerifier
}

func NewAuth(rdb *redis.Client, secret []byte, verifier IdentityVerifier) Auth {
	return Auth{rdb: rdb, jwtSecret: secret, verifier: verifier}
}

func (a Auth) Challenge(c *gin.Context) {
	var req struct {
		UserID string `json:"userId" binding:"required,min=4,max=64"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"err": err.Error()})
		return
	}

	nonce := uuid.NewString()
	if err := data.SetNonce(c, a.rdb, req.UserID, nonce); err != nil {
		logging.Log.Errorf("set nonce for %s: %v", req.UserID, err)
		c.JSON(http.StatusInternalServerError, gin.H{"err": "failed to create challenge"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"nonce": nonce})
}

func (a Auth) Verify(c *gin.Context) {
	var req struct {
		UserID string `json:"userId" binding:"required,min=4,max=64"`
		Proof  string `json:"proof"  binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"err": err.Error()})
		return
	}

	nonce, err := data.GetNonce(c, a.rdb, req.UserID)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"err": "challenge expired or not found"})
		return
	}

	identity, err := a.verifier.Verify(c, req.UserID, nonce, req.Proof)
	if err != nil {
		switch {
		case errors.Is(err, ErrCancelled):
			// User closed the sign-in flow; nothing went wrong.
			c.Status(http.StatusNoContent)
		case errors.Is(err, ErrUnauthorizedOrigin):
			c.JSON(http.StatusForbidden, gin.H{"err": "unauthorized_domain"})
		case errors.Is(err, ErrProviderDisabled):
			c.JSON(http.StatusServiceUnavailable, gin.H{"err": "provider_disabled"})
		default:
			logging.Log.Warnf("verify failed for %s: %v", req.UserID, err)
			c.JSON(http.StatusUnauthorized, gin.H{"err": "bad proof"})
		}
		return
	}
	data.DelNonce(c, a.rdb, req.UserID)

	token, err := issueJWT(identity.UID, a.jwtSecret)
	if err != nil {
		logging.Log.Errorf("issue jwt for %s: %v", identity.UID, err)
		c.JSON(http.StatusInternalServerError, gin.H{"err": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"token": token, "user": identity})
}
