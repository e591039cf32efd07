package report

import (
	"fmt"

	"github.com/alexanderramin/meetcost/internal/domain"
)

// CostFor prices a number of billable hours at the given role's hourly
// rate. Unknown roles are an error; there is deliberately no default rate.
func CostFor(hours float64, role domain.Role, rates domain.RateTable) (float64, error) {
	rate, ok := rates[role]
	if !ok {
		return 0, fmt.Errorf("%w: %q", domain.ErrUnknownRole, role)
	}
	return hours * rate, nil
}
