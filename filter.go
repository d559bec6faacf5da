package portfolio

// FilterProjects returns the projects in category, preserving order.
// AllCategories returns projects itself. An unknown category yields an empty result.
func FilterProjects(projects []Project, category string) []Project {
	if category == AllCategories {
		return projects
	}
	filtered := []Project{}
	for _, p := range projects {
		if p.Category == category {
			filtered = append(filtered, p)
		}
	}
	return filtered
}
