package tours

// Builder tab names used to point the console at the offending screen.
const (
	TabGeneral = "general"
	TabMedia   = "media"
	TabTariffs = "tariffs"
	TabDates   = "dates"
	TabRoutes  = "routes"
	TabContent = "content"
	TabLegal   = "legal"
	TabSEO     = "seo"
)

type Severity string

const (
	SeverityError   Severity = "error"
	SeverityWarning Severity = "warning"
)

// ValidationError is one publish-readiness finding. Error severity blocks
// publishing, warnings are informational. Never persisted.
type ValidationError struct {
	Tab      string   `json:"tab"`
	Field    string   `json:"field"`
	Message  string   `json:"message"`
	Severity Severity `json:"severity"`
}

// RouteSummary carries the per-route stop count needed by validation.
type RouteSummary struct {
	RouteID   string `json:"route_id"`
	Name      string `json:"name"`
	StopCount int    `json:"stop_count"`
}

// PublishCheck bundles the tour with its child counts so validation stays
// a pure function over loaded state.
type PublishCheck struct {
	Tour                   *Tour
	TariffCount            int64
	DateCount              int64
	Routes                 []RouteSummary
	LegalSectionCount      int64
	IncludedInclusionCount int64
}

// ValidatePublish computes the publish-readiness findings for a tour.
func ValidatePublish(check PublishCheck) []ValidationError {
	var findings []ValidationError
	t := check.Tour

	// Error severity: these block publishing
	if t.Destination == "" {
		findings = append(findings, ValidationError{TabGeneral, "destination", "Destination is required", SeverityError})
	}
	if t.Location == "" {
		findings = append(findings, ValidationError{TabGeneral, "location", "Location is required", SeverityError})
	}
	if t.HeroImageURL == "" && t.FallbackImageURL == "" {
		findings = append(findings, ValidationError{TabMedia, "hero_image", "At least one image is required", SeverityError})
	}
	if check.TariffCount == 0 {
		findings = append(findings, ValidationError{TabTariffs, "tariffs", "At least one tariff is required", SeverityError})
	}
	if check.DateCount == 0 {
		findings = append(findings, ValidationError{TabDates, "dates", "At least one departure date is required", SeverityError})
	}
	if len(check.Routes) == 0 {
		findings = append(findings, ValidationError{TabRoutes, "routes", "At least one route is required", SeverityError})
	}
	if check.LegalSectionCount == 0 {
		findings = append(findings, ValidationError{TabLegal, "legal_sections", "At least one legal section is required", SeverityError})
	}

	// Warning severity: informational only
	if t.ShortDescription == "" {
		findings = append(findings, ValidationError{TabGeneral, "short_description", "Short description is missing", SeverityWarning})
	}
	if len(t.Highlights) == 0 {
		findings = append(findings, ValidationError{TabContent, "highlights", "No highlights added", SeverityWarning})
	}
	if check.IncludedInclusionCount == 0 {
		findings = append(findings, ValidationError{TabContent, "inclusions", "No included-category inclusions", SeverityWarning})
	}
	for _, route := range check.Routes {
		if route.StopCount == 0 {
			findings = append(findings, ValidationError{TabRoutes, "pickup_stops", "Route \"" + route.Name + "\" has no pickup stops", SeverityWarning})
		}
	}
	if t.Slug == "" {
		findings = append(findings, ValidationError{TabSEO, "slug", "Slug will be generated on publish", SeverityWarning})
	}

	return findings
}

// BlockingErrors filters findings down to error severity.
func BlockingErrors(findings []ValidationError) []ValidationError {
	var blocking []ValidationError
	for _, f := range findings {
		if f.Severity == SeverityError {
			blocking = append(blocking, f)
		}
	}
	return blocking
}
