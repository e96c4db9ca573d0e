package wizard

import (
	"errors"
	"testing"
)

func filledInformation() *CourseForm {
	return &CourseForm{
		Title:        "Calculus I",
		CourseTag:    "MATH-101",
		Description:  "Limits, derivatives and integrals",
		Year:         "2024",
		CategoryID:   2,
		DepartmentID: 3,
	}
}

func TestNextBlockedOnEmptyInformation(t *testing.T) {
	w := New()

	if err := w.Next(); !errors.Is(err, ErrStepIncomplete) {
		t.Fatalf("Next() on empty form = %v, want ErrStepIncomplete", err)
	}
	if w.Current() != StepInformation {
		t.Errorf("step advanced despite invalid fields, now on %v", w.Current())
	}
}

func TestInformationStepValidation(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*CourseForm)
		want   bool
	}{
		{"all filled", func(f *CourseForm) {}, true},
		{"missing title", func(f *CourseForm) { f.Title = "" }, false},
		{"whitespace title", func(f *CourseForm) { f.Title = "   " }, false},
		{"missing tag", func(f *CourseForm) { f.CourseTag = "" }, false},
		{"missing description", func(f *CourseForm) { f.Description = "" }, false},
		{"missing year", func(f *CourseForm) { f.Year = "" }, false},
		{"no category", func(f *CourseForm) { f.CategoryID = 0 }, false},
		{"no department", func(f *CourseForm) { f.DepartmentID = 0 }, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			form := filledInformation()
			tt.mutate(form)
			w := NewWithForm(form)
			if got := w.StepValid(); got != tt.want {
				t.Errorf("StepValid() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestDataStepRejectsBlankEntries(t *testing.T) {
	form := filledInformation()
	w := NewWithForm(form)
	if err := w.Next(); err != nil {
		t.Fatalf("Next() past information: %v", err)
	}

	// Empty lists are fine
	if err := w.Next(); err != nil {
		t.Fatalf("Next() with no benefits: %v", err)
	}
	w.Back()

	form.Benefits = []Benefit{{Description: "Core concepts"}, {Description: "   "}}
	if err := w.Next(); !errors.Is(err, ErrStepIncomplete) {
		t.Fatalf("Next() with blank benefit = %v, want ErrStepIncomplete", err)
	}

	form.Benefits[1].Description = "Advanced techniques"
	form.Prerequisites = []Prerequisite{{Description: ""}}
	if err := w.Next(); !errors.Is(err, ErrStepIncomplete) {
		t.Fatalf("Next() with blank prerequisite = %v, want ErrStepIncomplete", err)
	}

	form.Prerequisites[0].Description = "Algebra"
	if err := w.Next(); err != nil {
		t.Fatalf("Next() with filled entries: %v", err)
	}
}

func TestContentStepValidation(t *testing.T) {
	link := Link{Title: "Notes", URL: "https://example.edu/notes"}
	section := func(mutate func(*ContentSection)) []ContentSection {
		s := ContentSection{Section: "Basics", Description: "Core material", Links: []Link{link}}
		mutate(&s)
		return []ContentSection{s}
	}

	tests := []struct {
		name    string
		content []ContentSection
		want    bool
	}{
		{"no sections", nil, true},
		{"valid section", section(func(s *ContentSection) {}), true},
		{"unnamed section", section(func(s *ContentSection) { s.Section = "" }), false},
		{"blank description", section(func(s *ContentSection) { s.Description = "   " }), false},
		{"section without links", section(func(s *ContentSection) { s.Links = nil }), false},
		{"link missing title", section(func(s *ContentSection) { s.Links = []Link{{URL: "https://example.edu"}} }), false},
		{"link missing url", section(func(s *ContentSection) { s.Links = []Link{{Title: "Notes"}} }), false},
		{"relative url", section(func(s *ContentSection) { s.Links = []Link{{Title: "Notes", URL: "/notes.pdf"}} }), false},
		{"one bad among good", []ContentSection{
			{Section: "Basics", Description: "Core material", Links: []Link{link}},
			{Section: "More", Description: "Extras", Links: []Link{{Title: "", URL: "https://example.edu/more"}}},
		}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			form := filledInformation()
			form.Content = tt.content
			if got := validateContent(form); got != tt.want {
				t.Errorf("validateContent() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestNextBlockedOnBlankSectionDescription(t *testing.T) {
	w := New()
	w.Form().LoadDemo()
	w.Form().Content[0].Description = "   "

	for i := 0; i < 2; i++ {
		if err := w.Next(); err != nil {
			t.Fatalf("Next() toward content step: %v", err)
		}
	}

	if err := w.Next(); !errors.Is(err, ErrStepIncomplete) {
		t.Fatalf("Next() with blank section description = %v, want ErrStepIncomplete", err)
	}
	if w.Current() != StepContent {
		t.Errorf("step advanced past content, now on %v", w.Current())
	}
}

func TestAllLinksFlattensSections(t *testing.T) {
	form := &CourseForm{}
	form.LoadDemo()

	links := form.AllLinks()
	if len(links) != 2 {
		t.Fatalf("len(AllLinks()) = %d, want 2", len(links))
	}
	if links[0].Title != "Lecture notes" || links[1].Title != "Past exams archive" {
		t.Errorf("links not in declaration order: %+v", links)
	}
}

func TestFullWalkthrough(t *testing.T) {
	w := New()
	w.Form().LoadDemo()

	steps := []Step{StepData, StepContent, StepPreview}
	for _, want := range steps {
		if err := w.Next(); err != nil {
			t.Fatalf("Next() toward %v: %v", want, err)
		}
		if w.Current() != want {
			t.Fatalf("Current() = %v, want %v", w.Current(), want)
		}
	}

	if err := w.Next(); !errors.Is(err, ErrLastStep) {
		t.Errorf("Next() on preview = %v, want ErrLastStep", err)
	}
	if !w.Complete() {
		t.Error("Complete() = false for demo draft")
	}
}

func TestBackKeepsEnteredData(t *testing.T) {
	w := New()
	w.Form().LoadDemo()

	if err := w.Next(); err != nil {
		t.Fatalf("Next(): %v", err)
	}
	w.Form().Benefits[0].Description = "Changed on data step"

	w.Back()
	if w.Current() != StepInformation {
		t.Fatalf("Back() landed on %v, want Information", w.Current())
	}
	if w.Form().Benefits[0].Description != "Changed on data step" {
		t.Error("Back() lost data entered on a later step")
	}

	// Back on the first step stays put
	w.Back()
	if w.Current() != StepInformation {
		t.Errorf("Back() on first step moved to %v", w.Current())
	}
}
