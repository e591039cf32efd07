package domain

// Role identifies a job title in the hourly rate table.
type Role string

const (
	RoleSoftwareEngineer Role = "Software Engineer"
	RoleProductManager   Role = "Product Manager"
	RoleQA               Role = "QA"
	RoleDevOps           Role = "DevOps"
)

// RateTable maps a role to its hourly rate. Currency-agnostic numbers;
// formatting is a presentation concern.
type RateTable map[Role]float64

// DefaultRates returns the built-in hourly rate table.
func DefaultRates() RateTable {
	return RateTable{
		RoleSoftwareEngineer: 70,
		RoleProductManager:   40,
		RoleQA:               30,
		RoleDevOps:           60,
	}
}

// Roles returns the roles of the table in their canonical display order.
func Roles() []Role {
	return []Role{
		RoleSoftwareEngineer,
		RoleProductManager,
		RoleQA,
		RoleDevOps,
	}
}
