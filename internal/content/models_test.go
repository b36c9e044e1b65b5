package content

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGroupInclusionsPreservesOrder(t *testing.T) {
	items := []Inclusion{
		{Title: "Bus travel", Category: CategoryIncluded},
		{Title: "City tour", Category: CategoryOptional},
		{Title: "Hotel breakfast", Category: CategoryIncluded},
		{Title: "Travel insurance", Category: CategoryNotIncluded},
	}

	grouped := GroupInclusions(items)

	assert.Len(t, grouped.Included, 2)
	assert.Equal(t, "Bus travel", grouped.Included[0].Title)
	assert.Equal(t, "Hotel breakfast", grouped.Included[1].Title)
	assert.Len(t, grouped.Optional, 1)
	assert.Len(t, grouped.NotIncluded, 1)
}

func TestGroupInclusionsEmpty(t *testing.T) {
	grouped := GroupInclusions(nil)

	assert.Empty(t, grouped.Included)
	assert.Empty(t, grouped.Optional)
	assert.Empty(t, grouped.NotIncluded)
}

func TestInclusionCategoryIsValid(t *testing.T) {
	assert.True(t, CategoryIncluded.IsValid())
	assert.True(t, CategoryOptional.IsValid())
	assert.True(t, CategoryNotIncluded.IsValid())
	assert.False(t, InclusionCategory("premium").IsValid())
}
