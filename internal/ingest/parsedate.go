package ingest

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/alexanderramin/meetcost/internal/domain"
)

// ParseDateTime parses a "D/M/YYYY H:M:S" string into a local wall-clock
// time. Day and month may be one or two digits; the time is 24-hour with
// seconds. This is the only shape the normalizer ever produces, so there is
// no leniency: anything else returns domain.ErrMalformedDate.
func ParseDateTime(s string) (time.Time, error) {
	parts := strings.Split(s, "/")
	if len(parts) != 3 {
		return time.Time{}, fmt.Errorf("%w: %q", domain.ErrMalformedDate, s)
	}

	yearAndTime := strings.SplitN(strings.TrimSpace(parts[2]), " ", 2)
	if len(yearAndTime) != 2 {
		return time.Time{}, fmt.Errorf("%w: %q", domain.ErrMalformedDate, s)
	}

	clock := strings.Split(yearAndTime[1], ":")
	if len(clock) != 3 {
		return time.Time{}, fmt.Errorf("%w: %q", domain.ErrMalformedDate, s)
	}

	nums := make([]int, 0, 6)
	for _, field := range []string{parts[0], parts[1], yearAndTime[0], clock[0], clock[1], clock[2]} {
		n, err := strconv.Atoi(strings.TrimSpace(field))
		if err != nil {
			return time.Time{}, fmt.Errorf("%w: %q", domain.ErrMalformedDate, s)
		}
		nums = append(nums, n)
	}

	day, month, year := nums[0], nums[1], nums[2]
	hour, min, sec := nums[3], nums[4], nums[5]

	return time.Date(year, time.Month(month), day, hour, min, sec, 0, time.Local), nil
}
