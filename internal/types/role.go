package types

// Role identifies a sales position. Unknown role strings are valid inputs to
// scoring; they fall back to the default benchmark.
type Role string

// Known sales roles.
const (
	RoleSDR              Role = "SDR"
	RoleBDR              Role = "BDR"
	RoleCloser           Role = "Closer"
	RoleAccountExecutive Role = "Account Executive"
	RoleCS               Role = "CS"
	RoleFarmer           Role = "Farmer"
	RoleSalesManager     Role = "Sales Manager"
)

// KnownRoles returns the roles with dedicated benchmarks, in a fixed order.
func KnownRoles() []Role {
	return []Role{
		RoleSDR,
		RoleBDR,
		RoleCloser,
		RoleAccountExecutive,
		RoleCS,
		RoleFarmer,
		RoleSalesManager,
	}
}

// ProspectingHeavy reports whether the role's routine is dominated by
// outbound prospecting (cold calls, high-volume outreach).
func (r Role) ProspectingHeavy() bool {
	return r == RoleSDR || r == RoleBDR || r == RoleCloser
}

// ClosingHeavy reports whether the role's routine centers on hard
// negotiation and deal closing.
func (r Role) ClosingHeavy() bool {
	return r == RoleCloser || r == RoleAccountExecutive
}

// Seniority is the ordinal experience level used by candidates and jobs.
type Seniority string

// Seniority levels, ordered Júnior < Pleno < Sênior.
const (
	SeniorityJunior Seniority = "Júnior"
	SeniorityPleno  Seniority = "Pleno"
	SenioritySenior Seniority = "Sênior"
)

// Level returns the ordinal rank of the seniority (1-3), or 0 for an
// unrecognized value. The seniority penalty only applies when both levels
// are recognized.
func (s Seniority) Level() int {
	switch s {
	case SeniorityJunior:
		return 1
	case SeniorityPleno:
		return 2
	case SenioritySenior:
		return 3
	}
	return 0
}
