package data

import (
	"context"
	"time"

	"github.com/achantasri/JanAwaaz/internal/logging"
	"github.com/redis/go-redis/v9"
)

const (
	noncePrefix   = "janawaaz.nonce:"
	topicsPrefix  = "janawaaz.topics:"
	countsPrefix  = "janawaaz.counts:"
	nonceLifetime = 5 * time.Minute
)

func MustRedis(url string) *redis.Client {
	opt, err := redis.ParseURL(url)
	if err != nil {
		logging.Log.Fatalf("redis: %v", err)
	}
	return redis.NewClient(opt)
}

func topicsChannel(constituencyID string) string { return topicsPrefix + constituencyID }
func countsChannel(constituencyID string) string { return countsPrefix + constituencyID }

// PublishTopicsChanged signals every subscriber of a constituency to re-read
// the topic list.
func PublishTopicsChanged(ctx context.Context, rdb *redis.Client, constituencyID string) error {
	return rdb.Publish(ctx, topicsChannel(constituencyID), "changed").Err()
}

// PublishCountsChanged signals a vote-count change for one topic.
func PublishCountsChanged(ctx context.Context, rdb *redis.Client, constituencyID, topicID string) error {
	return rdb.Publish(ctx, countsChannel(constituencyID), topicID).Err()
}

func SetNonce(ctx context.Context, rdb *redis.Client, uid, nonce string) error {
	return rdb.Set(ctx, noncePrefix+uid, nonce, nonceLifetime).Err()
}

func GetNonce(ctx context.Context, rdb *redis.Client, uid string) (string, error) {
	return rdb.Get(ctx, noncePrefix+uid).Result()
}

func DelNonce(ctx context.Context, rdb *redis.Client, uid string) {
	rdb.Del(ctx, noncePrefix+uid)
}
