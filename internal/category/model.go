package category

import "time"

// Category agrupa posts do feed (Corte, Coloração, Química, Finalização...).
// Um post sem categoria (category_id NULL) aparece no feed principal.
type Category struct {
	ID        string    `json:"id" gorm:"primaryKey;type:uuid;default:gen_random_uuid()"`
	CreatedAt time.Time `json:"created_at"`
	Name      string    `json:"name"`
	Slug      string    `json:"slug" gorm:"uniqueIndex"`
}

func (Category) TableName() string {
	return "categories"
}
