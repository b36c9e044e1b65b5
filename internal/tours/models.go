package tours

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
)

type PublishStatus string

const (
	StatusDraft     PublishStatus = "draft"
	StatusPublished PublishStatus = "published"
)

// Highlights is an ordered list of selling points stored as jsonb.
type Highlights []string

func (h Highlights) Value() (driver.Value, error) {
	if h == nil {
		return "[]", nil
	}
	return json.Marshal(h)
}

func (h *Highlights) Scan(value interface{}) error {
	if value == nil {
		*h = Highlights{}
		return nil
	}

	var bytes []byte
	switch v := value.(type) {
	case []byte:
		bytes = v
	case string:
		bytes = []byte(v)
	default:
		return fmt.Errorf("cannot scan %T into Highlights", value)
	}

	return json.Unmarshal(bytes, h)
}

// Tour is the aggregate root of the builder. Child entities (tariffs,
// dates, routes, content) live in their own packages and reference the
// tour by id.
type Tour struct {
	ID               uuid.UUID     `json:"id" gorm:"type:uuid;default:uuid_generate_v4();primaryKey"`
	Destination      string        `json:"destination" gorm:"not null;size:255"`
	Location         string        `json:"location" gorm:"size:255"`
	Country          string        `json:"country" gorm:"size:100"`
	ShortDescription string        `json:"short_description" gorm:"size:500"`
	Description      string        `json:"description" gorm:"type:text"`
	Highlights       Highlights    `json:"highlights" gorm:"type:jsonb;default:'[]'"`
	HeroImageURL     string        `json:"hero_image_url" gorm:"size:500"`
	FallbackImageURL string        `json:"fallback_image_url" gorm:"size:500"`
	DurationDays     int           `json:"duration_days"`
	PriceFrom        float64       `json:"price_from" gorm:"default:0"`
	MinParticipants  int           `json:"min_participants" gorm:"default:1"`
	PublishStatus    PublishStatus `json:"publish_status" gorm:"type:varchar(20);default:'draft'"`
	Slug             string        `json:"slug" gorm:"size:255;index"`
	PublishedAt      *time.Time    `json:"published_at"`
	IsActive         bool          `json:"is_active" gorm:"default:false"`

	CreatedBy uuid.UUID  `json:"created_by" gorm:"type:uuid"`
	UpdatedBy *uuid.UUID `json:"updated_by" gorm:"type:uuid"`
	CreatedAt time.Time  `json:"created_at" gorm:"autoCreateTime"`
	UpdatedAt time.Time  `json:"updated_at" gorm:"autoUpdateTime"`
}

func (Tour) TableName() string {
	return "tours"
}

type TourResponse struct {
	ID               string        `json:"id"`
	Destination      string        `json:"destination"`
	Location         string        `json:"location"`
	Country          string        `json:"country"`
	ShortDescription string        `json:"short_description"`
	Description      string        `json:"description"`
	Highlights       []string      `json:"highlights"`
	HeroImageURL     string        `json:"hero_image_url"`
	FallbackImageURL string        `json:"fallback_image_url"`
	DurationDays     int           `json:"duration_days"`
	PriceFrom        float64       `json:"price_from"`
	MinParticipants  int           `json:"min_participants"`
	PublishStatus    PublishStatus `json:"publish_status"`
	Slug             string        `json:"slug"`
	PublishedAt      *time.Time    `json:"published_at"`
	IsActive         bool          `json:"is_active"`
	CreatedAt        time.Time     `json:"created_at"`
	UpdatedAt        time.Time     `json:"updated_at"`
}

func (t *Tour) ToResponse() TourResponse {
	return TourResponse{
		ID:               t.ID.String(),
		Destination:      t.Destination,
		Location:         t.Location,
		Country:          t.Country,
		ShortDescription: t.ShortDescription,
		Description:      t.Description,
		Highlights:       t.Highlights,
		HeroImageURL:     t.HeroImageURL,
		FallbackImageURL: t.FallbackImageURL,
		DurationDays:     t.DurationDays,
		PriceFrom:        t.PriceFrom,
		MinParticipants:  t.MinParticipants,
		PublishStatus:    t.PublishStatus,
		Slug:             t.Slug,
		PublishedAt:      t.PublishedAt,
		IsActive:         t.IsActive,
		CreatedAt:        t.CreatedAt,
		UpdatedAt:        t.UpdatedAt,
	}
}

type PaginatedTours struct {
	Tours      []TourResponse `json:"tours"`
	TotalCount int64          `json:"total_count"`
	Page       int            `json:"page"`
	Limit      int            `json:"limit"`
	TotalPages int            `json:"total_pages"`
}
