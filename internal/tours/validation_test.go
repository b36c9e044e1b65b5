package tours

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func readyTour() *Tour {
	return &Tour{
		Destination:      "Amsterdam",
		Location:         "Netherlands",
		ShortDescription: "Canal city weekend",
		Highlights:       Highlights{"Canal cruise"},
		HeroImageURL:     "https://cdn.example.com/amsterdam.jpg",
		Slug:             "amsterdam",
	}
}

func readyCheck(tour *Tour) PublishCheck {
	return PublishCheck{
		Tour:                   tour,
		TariffCount:            2,
		DateCount:              3,
		Routes:                 []RouteSummary{{RouteID: "r1", Name: "North", StopCount: 4}},
		LegalSectionCount:      1,
		IncludedInclusionCount: 2,
	}
}

func TestValidatePublishReadyTour(t *testing.T) {
	findings := ValidatePublish(readyCheck(readyTour()))
	assert.Empty(t, BlockingErrors(findings))
}

func TestValidatePublishZeroDatesBlocks(t *testing.T) {
	check := readyCheck(readyTour())
	check.DateCount = 0

	blocking := BlockingErrors(ValidatePublish(check))

	assert.Len(t, blocking, 1)
	assert.Equal(t, "dates", blocking[0].Field)
	assert.Equal(t, TabDates, blocking[0].Tab)
}

func TestValidatePublishMissingRequiredFields(t *testing.T) {
	check := readyCheck(&Tour{})
	check.TariffCount = 0
	check.DateCount = 0
	check.Routes = nil
	check.LegalSectionCount = 0

	blocking := BlockingErrors(ValidatePublish(check))

	fields := make([]string, len(blocking))
	for i, f := range blocking {
		fields[i] = f.Field
	}
	assert.ElementsMatch(t, []string{
		"destination", "location", "hero_image", "tariffs", "dates", "routes", "legal_sections",
	}, fields)
}

func TestValidatePublishFallbackImageSuffices(t *testing.T) {
	tour := readyTour()
	tour.HeroImageURL = ""
	tour.FallbackImageURL = "https://cdn.example.com/fallback.jpg"

	assert.Empty(t, BlockingErrors(ValidatePublish(readyCheck(tour))))
}

func TestValidatePublishWarningsDoNotBlock(t *testing.T) {
	tour := readyTour()
	tour.ShortDescription = ""
	tour.Highlights = nil
	tour.Slug = ""

	check := readyCheck(tour)
	check.IncludedInclusionCount = 0
	check.Routes = []RouteSummary{{RouteID: "r1", Name: "North", StopCount: 0}}

	findings := ValidatePublish(check)

	assert.Empty(t, BlockingErrors(findings))

	var warnings int
	for _, f := range findings {
		if f.Severity == SeverityWarning {
			warnings++
		}
	}
	assert.Equal(t, 5, warnings)
}
