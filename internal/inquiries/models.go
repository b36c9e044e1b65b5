package inquiries

import (
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
)

type Status string

const (
	StatusNew        Status = "new"
	StatusInProgress Status = "in_progress"
	StatusResolved   Status = "resolved"
)

func (s Status) IsValid() bool {
	switch s {
	case StatusNew, StatusInProgress, StatusResolved:
		return true
	}
	return false
}

// CanTransitionTo restricts inquiry status movement to the console's
// forward flow; resolved inquiries can be reopened to in_progress.
func (s Status) CanTransitionTo(next Status) bool {
	switch s {
	case StatusNew:
		return next == StatusInProgress || next == StatusResolved
	case StatusInProgress:
		return next == StatusResolved
	case StatusResolved:
		return next == StatusInProgress
	}
	return false
}

// Inquiry is a contact-form message handled by the admin console.
type Inquiry struct {
	ID            uuid.UUID  `json:"id" gorm:"type:uuid;default:uuid_generate_v4();primaryKey"`
	InquiryNumber string     `json:"inquiry_number" gorm:"not null;uniqueIndex;size:40"`
	TourID        *uuid.UUID `json:"tour_id" gorm:"type:uuid;index"`
	Name          string     `json:"name" gorm:"not null;size:255"`
	Email         string     `json:"email" gorm:"not null;size:255"`
	Phone         string     `json:"phone" gorm:"size:50"`
	Subject       string     `json:"subject" gorm:"not null;size:255"`
	Message       string     `json:"message" gorm:"type:text;not null"`
	Status        Status     `json:"status" gorm:"type:varchar(20);default:'new'"`
	CreatedAt     time.Time  `json:"created_at" gorm:"autoCreateTime"`
	UpdatedAt     time.Time  `json:"updated_at" gorm:"autoUpdateTime"`
}

func (Inquiry) TableName() string {
	return "inquiries"
}

// GenerateInquiryNumber builds an inquiry number of the form
// MI-<base36 unix-nano timestamp>.
func GenerateInquiryNumber() string {
	return "MI-" + strings.ToUpper(strconv.FormatInt(time.Now().UnixNano(), 36))
}
