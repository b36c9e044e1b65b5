package content

// CreateInclusionRequest for adding an inclusion line to a tour
type CreateInclusionRequest struct {
	Title     string `json:"title" binding:"required,min=1,max=255"`
	Category  string `json:"category" binding:"required,oneof=included optional not_included"`
	SortOrder int    `json:"sort_order" binding:"omitempty,min=0"`
}

// UpdateInclusionRequest for partial inclusion updates
type UpdateInclusionRequest struct {
	Title     *string `json:"title" binding:"omitempty,min=1,max=255"`
	Category  *string `json:"category" binding:"omitempty,oneof=included optional not_included"`
	SortOrder *int    `json:"sort_order" binding:"omitempty,min=0"`
}

// CreateLegalSectionRequest for adding a legal tab section
type CreateLegalSectionRequest struct {
	Title     string `json:"title" binding:"required,min=1,max=255"`
	Content   string `json:"content" binding:"required,min=1"`
	SortOrder int    `json:"sort_order" binding:"omitempty,min=0"`
}

// UpdateLegalSectionRequest for partial legal section updates
type UpdateLegalSectionRequest struct {
	Title     *string `json:"title" binding:"omitempty,min=1,max=255"`
	Content   *string `json:"content" binding:"omitempty,min=1"`
	SortOrder *int    `json:"sort_order" binding:"omitempty,min=0"`
}

// CreateLuggageAddonRequest for adding a bookable luggage extra
type CreateLuggageAddonRequest struct {
	Name        string  `json:"name" binding:"required,min=1,max=255"`
	Description string  `json:"description" binding:"omitempty"`
	Price       float64 `json:"price" binding:"required,min=0"`
	SortOrder   int     `json:"sort_order" binding:"omitempty,min=0"`
}

// UpdateLuggageAddonRequest for partial addon updates
type UpdateLuggageAddonRequest struct {
	Name        *string  `json:"name" binding:"omitempty,min=1,max=255"`
	Description *string  `json:"description" binding:"omitempty"`
	Price       *float64 `json:"price" binding:"omitempty,min=0"`
	IsActive    *bool    `json:"is_active" binding:"omitempty"`
	SortOrder   *int     `json:"sort_order" binding:"omitempty,min=0"`
}
