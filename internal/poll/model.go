package poll

import (
	"time"
)

// Poll é uma enquete anexada a um post do feed.
type Poll struct {
	ID        string    `json:"id" gorm:"primaryKey;type:uuid;default:gen_random_uuid()"`
	CreatedAt time.Time `json:"created_at"`
	PostID    string    `json:"post_id" gorm:"index"`
	Question  string    `json:"question"`
	Options   string    `json:"options" gorm:"type:jsonb"` // lista de opções serializada
}

func (Poll) TableName() string {
	return "post_polls"
}

type PollVote struct {
	ID          string    `json:"id" gorm:"primaryKey;type:uuid;default:gen_random_uuid()"`
	CreatedAt   time.Time `json:"created_at"`
	PollID      string    `json:"poll_id" gorm:"index;uniqueIndex:ux_vote_poll_user"`
	PostID      string    `json:"post_id" gorm:"index"`
	UserID      string    `json:"user_id" gorm:"uniqueIndex:ux_vote_poll_user"`
	OptionIndex int       `json:"option_index"`
}

func (PollVote) TableName() string {
	return "poll_votes"
}
