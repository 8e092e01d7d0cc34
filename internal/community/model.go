package community

import "time"

// Community é um grupo temático dentro do Clube das Brabas.
type Community struct {
	ID          string    `json:"id" gorm:"primaryKey;type:uuid;default:gen_random_uuid()"`
	CreatedAt   time.Time `json:"created_at"`
	Name        string    `json:"name"`
	Description string    `json:"description" gorm:"type:text"`
	CreatedBy   string    `json:"created_by" gorm:"index"`
}

func (Community) TableName() string {
	return "communities"
}

// Member registra a participação de um usuário em uma comunidade.
type Member struct {
	ID          string    `json:"id" gorm:"primaryKey;type:uuid;default:gen_random_uuid()"`
	CreatedAt   time.Time `json:"created_at"`
	UserID      string    `json:"user_id" gorm:"index;uniqueIndex:ux_member_user_community"`
	CommunityID string    `json:"community_id" gorm:"index;uniqueIndex:ux_member_user_community"`
}

func (Member) TableName() string {
	return "community_members"
}
