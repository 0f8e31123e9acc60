package types

import "time"

// Vote directions as stored in the votes table and exchanged with clients.
const (
	DirectionUp   = "up"
	DirectionDown = "down"
)

// Topic is a community policy topic authored by an administrator for a
// single constituency. The ID is immutable once created.
type Topic struct {
	ID             string `gorm:"primaryKey;size:36"`
	Seq            uint64 `gorm:"autoIncrement;uniqueIndex"` // arrival order, breaks created-at ties
	ConstituencyID string `gorm:"index;size:16;not null"`
	Title          string `gorm:"size:255;not null"`
	Problem        string `gorm:"type:text"`
	Solution       string `gorm:"type:text"`
	Category       string `gorm:"size:64"`
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// Vote is one user's directional vote on a topic. At most one row exists per
// (uid, constituency, topic); a toggle-off deletes the row.
type Vote struct {
	UID            string `gorm:"primaryKey;size:64"`
	ConstituencyID string `gorm:"primaryKey;size:16"`
	TopicID        string `gorm:"primaryKey;size:36"`
	Direction      string `gorm:"size:8;not null"`
	CreatedAt      time.Time
}

// VoteCount is the shared aggregate tally per topic. It is adjusted
// incrementally alongside vote writes, never recomputed from the vote set,
// so it is eventually consistent with the votes table.
type VoteCount struct {
	ConstituencyID string `gorm:"primaryKey;size:16"`
	TopicID        string `gorm:"primaryKey;size:36"`
	Up             int64  `gorm:"default:0;not null"`
	Down           int64  `gorm:"default:0;not null"`
}

// Admin marks a user as a topic administrator.
type Admin struct {
	UID         string `gorm:"primaryKey;size:64"`
	DisplayName string `gorm:"size:128"`
	CreatedAt   time.Time
}

// Settings
type Setting struct {
	ID    uint8  `gorm:"primaryKey"`
	Name  string `gorm:"size:32;not null"`
	Value string `gorm:"size:256;not null"`
}
