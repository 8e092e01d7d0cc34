package post

import (
	"time"

	"github.com/vsugamele/clubedasbrabas-sub002/internal/user"
)

type Post struct {
	ID          string    `json:"id" gorm:"primaryKey"` // UUID
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
	UserID      string    `json:"user_id" gorm:"index"`
	User        user.User `json:"-" gorm:"foreignKey:UserID"`
	Title       string    `json:"title"`
	Content     string    `json:"content" gorm:"type:text"`
	CategoryID  *string   `json:"category_id"`  // NULL = feed principal, sem categoria
	CommunityID *string   `json:"community_id"` // NULL = fora de comunidade
	IsTrending  bool      `json:"is_trending" gorm:"default:false"`
	IsDeleted   bool      `json:"is_deleted" gorm:"default:false"`
}

func (Post) TableName() string {
	return "posts"
}

// PostMedia é uma imagem ou vídeo anexado a um post.
type PostMedia struct {
	ID        string    `json:"id" gorm:"primaryKey;type:uuid;default:gen_random_uuid()"`
	CreatedAt time.Time `json:"created_at"`
	PostID    string    `json:"post_id" gorm:"index"`
	MediaURL  string    `json:"media_url"`
	MediaType string    `json:"media_type"` // image, video
}

func (PostMedia) TableName() string {
	return "post_media"
}

type PostView struct {
	ID        string    `json:"id" gorm:"primaryKey;type:uuid;default:gen_random_uuid()"`
	CreatedAt time.Time `json:"created_at"`
	PostID    string    `json:"post_id" gorm:"index"`
	UserID    string    `json:"user_id" gorm:"index"`
}

func (PostView) TableName() string {
	return "post_views"
}

type PostShare struct {
	ID        string    `json:"id" gorm:"primaryKey;type:uuid;default:gen_random_uuid()"`
	CreatedAt time.Time `json:"created_at"`
	PostID    string    `json:"post_id" gorm:"index"`
	UserID    string    `json:"user_id" gorm:"index"`
}

func (PostShare) TableName() string {
	return "post_shares"
}

type PostSave struct {
	ID        string    `json:"id" gorm:"primaryKey;type:uuid;default:gen_random_uuid()"`
	CreatedAt time.Time `json:"created_at"`
	PostID    string    `json:"post_id" gorm:"index;uniqueIndex:ux_save_user_post"`
	UserID    string    `json:"user_id" gorm:"index;uniqueIndex:ux_save_user_post"`
}

func (PostSave) TableName() string {
	return "post_saves"
}
