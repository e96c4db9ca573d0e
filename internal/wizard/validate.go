package wizard

import "github.com/exambank/backend/internal/pkg/validation"

// validateInformation checks the required identity fields of the draft
func validateInformation(f *CourseForm) bool {
	return validation.IsFilled(f.Title) &&
		validation.IsFilled(f.CourseTag) &&
		validation.IsFilled(f.Description) &&
		validation.IsFilled(f.Year) &&
		f.CategoryID > 0 &&
		f.DepartmentID > 0
}

// validateData checks the benefit and prerequisite entries. The lists are
// optional but a declared entry may not be blank.
func validateData(f *CourseForm) bool {
	for _, b := range f.Benefits {
		if !validation.IsFilled(b.Description) {
			return false
		}
	}
	for _, p := range f.Prerequisites {
		if !validation.IsFilled(p.Description) {
			return false
		}
	}
	return true
}

// validateContent requires every section to be named and described and to
// carry at least one link, and every link to have a title and an absolute URL.
func validateContent(f *CourseForm) bool {
	for _, section := range f.Content {
		if !validation.IsFilled(section.Section) ||
			!validation.IsFilled(section.Description) ||
			len(section.Links) == 0 {
			return false
		}
		for _, link := range section.Links {
			if !validation.IsFilled(link.Title) || !validation.IsValidURL(link.URL) {
				return false
			}
		}
	}
	return true
}
