package user

import "time"

type User struct {
	ID        string `gorm:"primaryKey"` // UUID vindo de auth.users
	CreatedAt time.Time
	Username  string
	Name      string
	AvatarURL string
	Headline  string
	Bio       string
	Email     string
	Language  string
	IsAdmin   bool
}
