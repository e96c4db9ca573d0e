package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"os"
	"path/filepath"
	"strconv"

	"github.com/exambank/backend/internal/app/models/dto"
	"github.com/exambank/backend/internal/wizard"
)

// SubmitCourse publishes a finished draft via POST /teacher/add-cours. The
// body is multipart: scalar fields ride as form values, the links collection
// is JSON-stringified into a single field and the wizard's {Title, URL} pair
// is renamed to the wire's {link_name, link}, and the image file is attached
// when the draft has one.
func (c *Client) SubmitCourse(ctx context.Context, form *wizard.CourseForm) (*dto.CourseResponse, error) {
	body, contentType, err := buildCourseBody(form)
	if err != nil {
		return nil, err
	}

	var resp dto.CourseResponse
	if err := c.doJSON(ctx, http.MethodPost, "/teacher/add-cours", contentType, body, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// UpdateCourse rewrites a published course from a draft via
// PUT /teacher/course/:id.
func (c *Client) UpdateCourse(ctx context.Context, courseID int64, form *wizard.CourseForm) (*dto.CourseResponse, error) {
	body, contentType, err := buildCourseBody(form)
	if err != nil {
		return nil, err
	}

	var resp dto.CourseResponse
	path := fmt.Sprintf("/teacher/course/%d", courseID)
	if err := c.doJSON(ctx, http.MethodPut, path, contentType, body, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

func buildCourseBody(form *wizard.CourseForm) (io.Reader, string, error) {
	buf := &bytes.Buffer{}
	mw := multipart.NewWriter(buf)

	// The persisted schema keeps two fixed columns per list; entries beyond
	// the second are dropped, matching the original portal's form.
	benefit1, benefit2 := firstTwoBenefits(form.Benefits)
	prereq1, prereq2 := firstTwoPrerequisites(form.Prerequisites)

	fields := map[string]string{
		"title":         form.Title,
		"course_tag":    form.CourseTag,
		"description":   form.Description,
		"year":          form.Year,
		"category_id":   strconv.FormatInt(form.CategoryID, 10),
		"department_id": strconv.FormatInt(form.DepartmentID, 10),
		"benefit1":      benefit1,
		"benefit2":      benefit2,
		"prerequisite1": prereq1,
		"prerequisite2": prereq2,
	}
	for name, value := range fields {
		if err := mw.WriteField(name, value); err != nil {
			return nil, "", err
		}
	}

	if links := form.AllLinks(); len(links) > 0 {
		payload := make([]dto.CourseLinkPayload, 0, len(links))
		for _, link := range links {
			payload = append(payload, dto.CourseLinkPayload{LinkName: link.Title, Link: link.URL})
		}
		encoded, err := json.Marshal(payload)
		if err != nil {
			return nil, "", err
		}
		if err := mw.WriteField("links", string(encoded)); err != nil {
			return nil, "", err
		}
	}

	if form.ImagePath != "" {
		if err := attachFile(mw, "image", form.ImagePath); err != nil {
			return nil, "", err
		}
	}

	if err := mw.Close(); err != nil {
		return nil, "", err
	}

	return buf, mw.FormDataContentType(), nil
}

func firstTwoBenefits(benefits []wizard.Benefit) (string, string) {
	var first, second string
	if len(benefits) > 0 {
		first = benefits[0].Description
	}
	if len(benefits) > 1 {
		second = benefits[1].Description
	}
	return first, second
}

func firstTwoPrerequisites(prereqs []wizard.Prerequisite) (string, string) {
	var first, second string
	if len(prereqs) > 0 {
		first = prereqs[0].Description
	}
	if len(prereqs) > 1 {
		second = prereqs[1].Description
	}
	return first, second
}

func attachFile(mw *multipart.Writer, field, path string) error {
	file, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("failed to open image: %w", err)
	}
	defer file.Close()

	part, err := mw.CreateFormFile(field, filepath.Base(path))
	if err != nil {
		return err
	}

	_, err = io.Copy(part, file)
	return err
}
