package bookings

import (
	"strconv"
	"strings"
	"time"
)

// GenerateBookingNumber builds a booking number of the form
// MT-<base36 unix-nano timestamp>. Nanosecond resolution keeps numbers
// unique within a single instance; the unique index on the column is the
// backstop for collisions across instances.
func GenerateBookingNumber() string {
	return "MT-" + strings.ToUpper(strconv.FormatInt(time.Now().UnixNano(), 36))
}
