package data

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/achantasri/JanAwaaz/internal/logging"
	"github.com/achantasri/JanAwaaz/internal/remote"
	"github.com/achantasri/JanAwaaz/internal/types"
)

// Store implements remote.Store over MySQL (durable rows) and Redis
// (change-stream fan-out). Every durable mutation publishes an invalidation;
// subscribers re-read the authoritative rows and deliver fresh snapshots.
type Store struct {
	db  *gorm.DB
	rdb *redis.Client
}

func NewStore(db *gorm.DB, rdb *redis.Client) *Store {
	return &Store{db: db, rdb: rdb}
}

// ListTopics returns a constituency's topics ordered by creation time
// ascending, arrival order breaking ties.
func (s *Store) ListTopics(ctx context.Context, constituencyID string) ([]types.Topic, error) {
	var out []types.Topic
	err := s.db.WithContext(ctx).
		Where("constituency_id = ?", constituencyID).
		Order("created_at asc, seq asc").
		Find(&out).Error
	return out, err
}

func (s *Store) SubscribeTopics(ctx context.Context, constituencyID string, onChange func([]types.Topic)) (remote.Unsubscribe, error) {
	sub := s.rdb.Subscribe(ctx, topicsChannel(constituencyID))
	if _, err := sub.Receive(ctx); err != nil {
		_ = sub.Close()
		return nil, err
	}

	deliver := func() {
		topics, err := s.ListTopics(ctx, constituencyID)
		if err != nil {
			logging.Log.Warnf("topics snapshot for %s: %v", constituencyID, err)
			return
		}
		onChange(topics)
	}
	deliver()

	done := make(chan struct{})
	go func() {
		ch := sub.Channel()
		for {
			select {
			case <-done:
				return
			case _, ok := <-ch:
				if !ok {
					return
				}
				deliver()
			}
		}
	}()

	var once sync.Once
	return func() {
		once.Do(func() {
			close(done)
			_ = sub.Close()
		})
	}, nil
}

func (s *Store) CreateTopic(ctx context.Context, constituencyID string, fields remote.TopicFields) (string, error) {
	topic := types.Topic{
		ID:             uuid.NewString(),
		ConstituencyID: constituencyID,
		Title:          fields.Title,
		Problem:        fields.Problem,
		Solution:       fields.Solution,
		Category:       fields.Category,
		CreatedAt:      time.Now(),
	}
	if err := s.db.WithContext(ctx).Create(&topic).Error; err != nil {
		return "", err
	}
	if err := PublishTopicsChanged(ctx, s.rdb, constituencyID); err != nil {
		logging.Log.Warnf("publish topics changed: %v", err)
	}
	return topic.ID, nil
}

func (s *Store) UpdateTopic(ctx context.Context, topicID string, fields remote.TopicUpdate) error {
	var topic types.Topic
	if err := s.db.WithContext(ctx).First(&topic, "id = ?", topicID).Error; err != nil {
		return err
	}

	updates := make(map[string]any)
	if fields.Title != nil {
		updates["title"] = *fields.Title
	}
	if fields.Problem != nil {
		updates["problem"] = *fields.Problem
	}
	if fields.Solution != nil {
		updates["solution"] = *fields.Solution
	}
	if fields.Category != nil {
		updates["category"] = *fields.Category
	}
	if len(updates) == 0 {
		return nil
	}
	if err := s.db.WithContext(ctx).Model(&types.Topic{}).
		Where("id = ?", topicID).Updates(updates).Error; err != nil {
		return err
	}
	if err := PublishTopicsChanged(ctx, s.rdb, topic.ConstituencyID); err != nil {
		logging.Log.Warnf("publish topics changed: %v", err)
	}
	return nil
}

func (s *Store) DeleteTopic(ctx context.Context, topicID string) error {
	var topic types.Topic
	if err := s.db.WithContext(ctx).First(&topic, "id = ?", topicID).Error; err != nil {
		return err
	}
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Delete(&types.Topic{}, "id = ?", topicID).Error; err != nil {
			return err
		}
		if err := tx.Delete(&types.Vote{}, "topic_id = ?", topicID).Error; err != nil {
			return err
		}
		return tx.Delete(&types.VoteCount{}, "topic_id = ?", topicID).Error
	})
	if err != nil {
		return err
	}
	if err := PublishTopicsChanged(ctx, s.rdb, topic.ConstituencyID); err != nil {
		logging.Log.Warnf("publish topics changed: %v", err)
	}
	return nil
}

func (s *Store) GetUserVotes(ctx context.Context, uid, constituencyID string) (map[string]string, error) {
	var rows []types.Vote
	if err := s.db.WithContext(ctx).
		Where("uid = ? AND constituency_id = ?", uid, constituencyID).
		Find(&rows).Error; err != nil {
		return nil, err
	}
	out := make(map[string]string, len(rows))
	for _, v := range rows {
		out[v.TopicID] = v.Direction
	}
	return out, nil
}

// CastVoteAtomic performs the vote-row write and the counter adjustment in
// one SQL transaction. The previous direction is read from the vote row
// under a row lock inside the same transaction, so two rapid casts by one
// user serialize on the row and the second observes the first's committed
// state. The counter moves by increments only, never by read-modify-write of
// the whole value, so concurrent casts from different users cannot lose
// updates. Returns the resulting direction, empty after a toggle-off.
func (s *Store) CastVoteAtomic(ctx context.Context, uid, constituencyID, topicID, direction string) (string, error) {
	var result string
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		prev := ""
		var row types.Vote
		err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			First(&row, "uid = ? AND constituency_id = ? AND topic_id = ?",
				uid, constituencyID, topicID).Error
		switch {
		case err == nil:
			prev = row.Direction
		case errors.Is(err, gorm.ErrRecordNotFound):
		default:
			return err
		}

		if prev == direction {
			// Toggle off.
			if err := tx.Delete(&types.Vote{},
				"uid = ? AND constituency_id = ? AND topic_id = ?",
				uid, constituencyID, topicID).Error; err != nil {
				return err
			}
			result = ""
			return adjustCount(tx, constituencyID, topicID, direction, -1)
		}

		if err := tx.Delete(&types.Vote{},
			"uid = ? AND constituency_id = ? AND topic_id = ?",
			uid, constituencyID, topicID).Error; err != nil {
			return err
		}
		if err := tx.Create(&types.Vote{
			UID:            uid,
			ConstituencyID: constituencyID,
			TopicID:        topicID,
			Direction:      direction,
			CreatedAt:      time.Now(),
		}).Error; err != nil {
			return err
		}
		if prev != "" {
			if err := adjustCount(tx, constituencyID, topicID, prev, -1); err != nil {
				return err
			}
		}
		result = direction
		return adjustCount(tx, constituencyID, topicID, direction, +1)
	})
	if err != nil {
		return "", err
	}
	if err := PublishCountsChanged(ctx, s.rdb, constituencyID, topicID); err != nil {
		logging.Log.Warnf("publish counts changed: %v", err)
	}
	return result, nil
}

func adjustCount(tx *gorm.DB, constituencyID, topicID, direction string, delta int64) error {
	column := "up"
	if direction == types.DirectionDown {
		column = "down"
	}
	row := types.VoteCount{ConstituencyID: constituencyID, TopicID: topicID}
	if err := tx.Where("constituency_id = ? AND topic_id = ?", constituencyID, topicID).
		FirstOrCreate(&row).Error; err != nil {
		return err
	}
	// Floored at zero; the counter invariant holds even if a duplicate
	// decrement slips through a partial client failure.
	return tx.Model(&types.VoteCount{}).
		Where("constituency_id = ? AND topic_id = ?", constituencyID, topicID).
		Update(column, gorm.Expr("GREATEST("+column+" + ?, 0)", delta)).Error
}

// VoteCounts reads the aggregate for one topic, zero-valued when absent.
func (s *Store) VoteCounts(ctx context.Context, constituencyID, topicID string) (remote.Counts, error) {
	var row types.VoteCount
	err := s.db.WithContext(ctx).
		First(&row, "constituency_id = ? AND topic_id = ?", constituencyID, topicID).Error
	if err == gorm.ErrRecordNotFound {
		return remote.Counts{}, nil
	}
	if err != nil {
		return remote.Counts{}, err
	}
	return remote.Counts{Up: row.Up, Down: row.Down}, nil
}

func (s *Store) SubscribeVoteCounts(ctx context.Context, constituencyID string, topicIDs []string, onChange func(string, remote.Counts)) (remote.Unsubscribe, error) {
	scope := make(map[string]bool, len(topicIDs))
	for _, id := range topicIDs {
		scope[id] = true
	}

	sub := s.rdb.Subscribe(ctx, countsChannel(constituencyID))
	if _, err := sub.Receive(ctx); err != nil {
		_ = sub.Close()
		return nil, err
	}

	deliver := func(topicID string) {
		counts, err := s.VoteCounts(ctx, constituencyID, topicID)
		if err != nil {
			logging.Log.Warnf("vote counts for %s/%s: %v", constituencyID, topicID, err)
			return
		}
		onChange(topicID, counts)
	}
	for _, id := range topicIDs {
		deliver(id)
	}

	done := make(chan struct{})
	go func() {
		ch := sub.Channel()
		for {
			select {
			case <-done:
				return
			case msg, ok := <-ch:
				if !ok {
					return
				}
				if scope[msg.Payload] {
					deliver(msg.Payload)
				}
			}
		}
	}()

	var once sync.Once
	return func() {
		once.Do(func() {
			close(done)
			_ = sub.Close()
		})
	}, nil
}

func (s *Store) IsAdmin(ctx context.Context, uid string) (bool, error) {
	var n int64
	if err := s.db.WithContext(ctx).Model(&types.Admin{}).
		Where("uid = ?", uid).Count(&n).Error; err != nil {
		return false, err
	}
	return n > 0, nil
}
