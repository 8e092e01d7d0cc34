package report

import (
	"time"

	"github.com/vsugamele/clubedasbrabas-sub002/internal/user"
)

// ReportReason define os motivos de denúncia aceitos
type ReportReason string

const (
	ReasonInappropriateContent ReportReason = "inappropriate_content"
	ReasonSpam                 ReportReason = "spam"
	ReasonHateSpeech           ReportReason = "hate_speech"
	ReasonImpersonation        ReportReason = "impersonation"
	ReasonOther                ReportReason = "other"
)

// ReportStatus define os estados de uma denúncia
type ReportStatus string

const (
	StatusPending  ReportStatus = "pending"
	StatusReviewed ReportStatus = "reviewed"
	StatusResolved ReportStatus = "resolved"
	StatusRejected ReportStatus = "rejected"
)

// Report representa uma denúncia de post feita por um membro da comunidade
type Report struct {
	ID        string    `json:"id" gorm:"primaryKey;type:uuid;default:gen_random_uuid()"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	// Usuário que faz a denúncia
	ReporterID string    `json:"reporter_id" gorm:"index"`
	Reporter   user.User `json:"reporter" gorm:"foreignKey:ReporterID"`

	// Post denunciado
	PostID string `json:"post_id" gorm:"index"`

	// Conteúdo da denúncia
	Reason      ReportReason `json:"reason"`
	Description string       `json:"description" gorm:"type:text"`

	// Estado e tratamento
	Status     ReportStatus `json:"status" gorm:"default:'pending';index"`
	AdminID    *string      `json:"admin_id,omitempty"`
	AdminNote  string       `json:"admin_note" gorm:"type:text"`
	ResolvedAt *time.Time   `json:"resolved_at,omitempty"`
}

func (Report) TableName() string {
	return "post_reports"
}

// CreateReportInput estrutura para criar uma denúncia
type CreateReportInput struct {
	PostID      string       `json:"post_id" binding:"required"`
	Reason      ReportReason `json:"reason" binding:"required"`
	Description string       `json:"description"`
}

// UpdateReportInput estrutura para o admin tratar uma denúncia
type UpdateReportInput struct {
	Status     ReportStatus `json:"status" binding:"required"`
	AdminNote  string       `json:"admin_note"`
	DeletePost bool         `json:"delete_post"` // remove o post denunciado ao resolver
}

func (r ReportReason) IsValid() bool {
	switch r {
	case ReasonInappropriateContent, ReasonSpam, ReasonHateSpeech,
		ReasonImpersonation, ReasonOther:
		return true
	default:
		return false
	}
}

func (s ReportStatus) IsValid() bool {
	switch s {
	case StatusPending, StatusReviewed, StatusResolved, StatusRejected:
		return true
	default:
		return false
	}
}
