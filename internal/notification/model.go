package notification

import "time"

// NotificationType define os tipos de notificação exibidos no sino do app
type NotificationType string

const (
	TypeLike         NotificationType = "like"
	TypeComment      NotificationType = "comment"
	TypeMention      NotificationType = "mention"
	TypePostRemoved  NotificationType = "post_removed"
	TypeAnnouncement NotificationType = "announcement"
)

type Notification struct {
	ID        string           `json:"id" gorm:"primaryKey;type:uuid;default:gen_random_uuid()"`
	CreatedAt time.Time        `json:"created_at"`
	UserID    string           `json:"user_id" gorm:"index"`
	Type      NotificationType `json:"type"`
	Content   string           `json:"content" gorm:"type:text"`
	RelatedID string           `json:"related_id"` // id do post/comentário relacionado
	IsRead    bool             `json:"is_read" gorm:"default:false;index"`
}

func (Notification) TableName() string {
	return "notifications"
}

// CreateNotificationInput espelha o payload da função remota original:
// {userId, type, content, relatedId}.
type CreateNotificationInput struct {
	UserID    string           `json:"user_id" binding:"required"`
	Type      NotificationType `json:"type" binding:"required"`
	Content   string           `json:"content" binding:"required"`
	RelatedID string           `json:"related_id"`
}

func (t NotificationType) IsValid() bool {
	switch t {
	case TypeLike, TypeComment, TypeMention, TypePostRemoved, TypeAnnouncement:
		return true
	default:
		return false
	}
}
