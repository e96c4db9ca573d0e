package wizard

// Benefit is one learning outcome entry on the data step
type Benefit struct {
	Description string
}

// Prerequisite is one prior-knowledge entry on the data step
type Prerequisite struct {
	Description string
}

// Link is one external resource inside a content section. On submit the pair
// is renamed to the wire shape {link_name, link}.
type Link struct {
	Title string
	URL   string
}

// ContentSection groups the links belonging to one part of the course
type ContentSection struct {
	Section     string
	Description string
	Links       []Link
}

// CourseForm accumulates the fields of a course draft across the wizard
// steps. Zero values mean "not filled in yet".
type CourseForm struct {
	// Information step
	Title        string
	CourseTag    string
	Description  string
	Year         string
	CategoryID   int64
	DepartmentID int64
	ImagePath    string

	// Data step
	Benefits      []Benefit
	Prerequisites []Prerequisite

	// Content step
	Content []ContentSection
}

// AllLinks flattens every section's links in declaration order, the shape the
// submit adapter sends.
func (f *CourseForm) AllLinks() []Link {
	var links []Link
	for _, section := range f.Content {
		links = append(links, section.Links...)
	}
	return links
}

// LoadDemo fills the form with placeholder content so a new draft can be
// walked through end to end without typing.
func (f *CourseForm) LoadDemo() {
	f.Title = "Introduction to Databases"
	f.CourseTag = "CENG-301"
	f.Description = "Relational model, SQL and transaction basics with past exam walkthroughs."
	f.Year = "2024"
	f.CategoryID = 1
	f.DepartmentID = 1
	f.Benefits = []Benefit{
		{Description: "Understand the relational model"},
		{Description: "Write non-trivial SQL queries"},
	}
	f.Prerequisites = []Prerequisite{
		{Description: "Programming fundamentals"},
		{Description: "Discrete mathematics"},
	}
	f.Content = []ContentSection{
		{
			Section:     "Fundamentals",
			Description: "Schemas, keys and normal forms",
			Links: []Link{
				{Title: "Lecture notes", URL: "https://example.edu/db/notes.pdf"},
			},
		},
		{
			Section:     "Exam preparation",
			Description: "Solved past exams",
			Links: []Link{
				{Title: "Past exams archive", URL: "https://example.edu/db/exams"},
			},
		},
	}
}
