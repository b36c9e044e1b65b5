package tours

type CreateTourRequest struct {
	Destination      string   `json:"destination" binding:"required,min=2,max=255"`
	Location         string   `json:"location" binding:"omitempty,max=255"`
	Country          string   `json:"country" binding:"omitempty,max=100"`
	ShortDescription string   `json:"short_description" binding:"omitempty,max=500"`
	Description      string   `json:"description" binding:"omitempty,max=10000"`
	Highlights       []string `json:"highlights"`
	HeroImageURL     string   `json:"hero_image_url" binding:"omitempty,url"`
	FallbackImageURL string   `json:"fallback_image_url" binding:"omitempty,url"`
	MinParticipants  int      `json:"min_participants" binding:"omitempty,min=1"`
}

type UpdateTourRequest struct {
	Destination      *string  `json:"destination" binding:"omitempty,min=2,max=255"`
	Location         *string  `json:"location" binding:"omitempty,max=255"`
	Country          *string  `json:"country" binding:"omitempty,max=100"`
	ShortDescription *string  `json:"short_description" binding:"omitempty,max=500"`
	Description      *string  `json:"description" binding:"omitempty,max=10000"`
	Highlights       []string `json:"highlights"`
	HeroImageURL     *string  `json:"hero_image_url" binding:"omitempty,url"`
	FallbackImageURL *string  `json:"fallback_image_url" binding:"omitempty,url"`
	MinParticipants  *int     `json:"min_participants" binding:"omitempty,min=1"`
}

type TourListQuery struct {
	Page    int    `form:"page" binding:"omitempty,min=1"`
	Limit   int    `form:"limit" binding:"omitempty,min=1,max=100"`
	Search  string `form:"search"`
	Country string `form:"country"`
	Status  string `form:"status" binding:"omitempty,oneof=draft published"`
}

// PublishResult is returned by the publish endpoint: either the published
// tour, or the findings that blocked it.
type PublishResult struct {
	Published bool              `json:"published"`
	Tour      *TourResponse     `json:"tour,omitempty"`
	Errors    []ValidationError `json:"errors,omitempty"`
	Warnings  []ValidationError `json:"warnings,omitempty"`
}
