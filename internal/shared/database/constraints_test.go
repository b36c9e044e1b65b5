package database

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

// Boot runs every statement, so each one has to use syntax Postgres accepts
// and be rerunnable on an already-migrated database.
func TestConstraintStatementsAreIdempotent(t *testing.T) {
	assert.NotEmpty(t, constraintStatements)

	for _, stmt := range constraintStatements {
		// ADD CONSTRAINT IF NOT EXISTS is not valid Postgres. The capacity
		// check has to guard itself through pg_constraint instead.
		assert.NotContains(t, stmt, "ADD CONSTRAINT IF NOT EXISTS")

		if strings.Contains(stmt, "ADD CONSTRAINT") {
			assert.Contains(t, stmt, "pg_constraint",
				"constraint creation must check pg_constraint before altering")
		} else {
			assert.Contains(t, stmt, "IF NOT EXISTS")
		}
	}
}

func TestCapacityConstraintCoversBounds(t *testing.T) {
	var capacity string
	for _, stmt := range constraintStatements {
		if strings.Contains(stmt, "chk_tour_dates_capacity") {
			capacity = stmt
		}
	}

	assert.NotEmpty(t, capacity)
	assert.Contains(t, capacity, "booked_seats >= 0")
	assert.Contains(t, capacity, "booked_seats <= total_seats")
}
