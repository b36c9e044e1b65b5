package content

import (
	"time"

	"github.com/google/uuid"
)

// Inclusion is a single "what's in the package" line item of a tour.
type Inclusion struct {
	ID        uuid.UUID         `json:"id" gorm:"type:uuid;default:uuid_generate_v4();primaryKey"`
	TourID    uuid.UUID         `json:"tour_id" gorm:"type:uuid;not null;index"`
	Title     string            `json:"title" gorm:"not null;size:255"`
	Category  InclusionCategory `json:"category" gorm:"type:varchar(20);not null"`
	SortOrder int               `json:"sort_order" gorm:"default:0"`
	CreatedAt time.Time         `json:"created_at" gorm:"autoCreateTime"`
	UpdatedAt time.Time         `json:"updated_at" gorm:"autoUpdateTime"`
}

type InclusionCategory string

const (
	CategoryIncluded    InclusionCategory = "included"
	CategoryOptional    InclusionCategory = "optional"
	CategoryNotIncluded InclusionCategory = "not_included"
)

func (c InclusionCategory) IsValid() bool {
	switch c {
	case CategoryIncluded, CategoryOptional, CategoryNotIncluded:
		return true
	}
	return false
}

// GroupedInclusions is the category-bucketed view rendered by tour pages.
type GroupedInclusions struct {
	Included    []Inclusion `json:"included"`
	Optional    []Inclusion `json:"optional"`
	NotIncluded []Inclusion `json:"not_included"`
}

// GroupInclusions buckets inclusions by category preserving input order.
// Pure function, recomputed from the full list on every read.
func GroupInclusions(items []Inclusion) GroupedInclusions {
	var grouped GroupedInclusions
	for _, item := range items {
		switch item.Category {
		case CategoryIncluded:
			grouped.Included = append(grouped.Included, item)
		case CategoryOptional:
			grouped.Optional = append(grouped.Optional, item)
		case CategoryNotIncluded:
			grouped.NotIncluded = append(grouped.NotIncluded, item)
		}
	}
	return grouped
}

// LegalSection is a flat content record shown on the tour's legal tab.
type LegalSection struct {
	ID        uuid.UUID `json:"id" gorm:"type:uuid;default:uuid_generate_v4();primaryKey"`
	TourID    uuid.UUID `json:"tour_id" gorm:"type:uuid;not null;index"`
	Title     string    `json:"title" gorm:"not null;size:255"`
	Content   string    `json:"content" gorm:"type:text;not null"`
	SortOrder int       `json:"sort_order" gorm:"default:0"`
	CreatedAt time.Time `json:"created_at" gorm:"autoCreateTime"`
	UpdatedAt time.Time `json:"updated_at" gorm:"autoUpdateTime"`
}

// LuggageAddon is a per-tour bookable extra with a flat price.
type LuggageAddon struct {
	ID          uuid.UUID `json:"id" gorm:"type:uuid;default:uuid_generate_v4();primaryKey"`
	TourID      uuid.UUID `json:"tour_id" gorm:"type:uuid;not null;index"`
	Name        string    `json:"name" gorm:"not null;size:255"`
	Description string    `json:"description" gorm:"type:text"`
	Price       float64   `json:"price" gorm:"not null;check:price >= 0"`
	IsActive    bool      `json:"is_active" gorm:"default:true"`
	SortOrder   int       `json:"sort_order" gorm:"default:0"`
	CreatedAt   time.Time `json:"created_at" gorm:"autoCreateTime"`
	UpdatedAt   time.Time `json:"updated_at" gorm:"autoUpdateTime"`
}
