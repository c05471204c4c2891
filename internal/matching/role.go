package matching

import "strings"

type Category string

const (
	CategoryManagement Category = "Management"
	CategorySenior     Category = "Senior"
	CategorySpecialist Category = "Specialist"
	CategoryIC         Category = "Individual Contributor"
	CategoryOther      Category = "Other"
)

// IsDesignRole reports whether a job title belongs to the design
// discipline. Exclusions win over inclusions: a title like "Product
// Manager, Design Systems" contains an inclusion phrase but is not a
// design role.
func IsDesignRole(title string) bool {
	t := strings.ToLower(title)

	for _, excluded := range excludedRoles {
		if strings.Contains(t, excluded) {
			return false
		}
	}

	for _, tier := range [][]string{baseRoles, seniorRoles, managementRoles, specialistRoles} {
		for _, r := range tier {
			if strings.Contains(t, r) {
				return true
			}
		}
	}
	return false
}

// RoleCategory assigns the seniority tier of an in-domain title,
// checking tiers in fixed priority order.
func RoleCategory(title string) Category {
	t := strings.ToLower(title)

	tiers := []struct {
		roles    []string
		category Category
	}{
		{managementRoles, CategoryManagement},
		{seniorRoles, CategorySenior},
		{specialistRoles, CategorySpecialist},
		{baseRoles, CategoryIC},
	}
	for _, tier := range tiers {
		for _, r := range tier.roles {
			if strings.Contains(t, r) {
				return tier.category
			}
		}
	}
	return CategoryOther
}
