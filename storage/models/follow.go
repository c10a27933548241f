package models

import "time"

// Follow is a directed edge meaning FollowerID receives AuthorID's posts in
// their feed. The composite unique index makes duplicate edges impossible at
// the schema level; the check constraint does the same for self-follows, so
// neither invariant depends on callers behaving.
type Follow struct {
	ID         uint `gorm:"primaryKey"`
	FollowerID uint `gorm:"not null;uniqueIndex:idx_follows_follower_author;check:chk_follows_no_self,follower_id <> author_id"`
	Follower   User `gorm:"constraint:OnDelete:CASCADE"`
	AuthorID   uint `gorm:"not null;uniqueIndex:idx_follows_follower_author;index"`
	Author     User `gorm:"constraint:OnDelete:CASCADE"`
	CreatedAt  time.Time
}

func (Follow) TableName() string {
	return "follows"
}
