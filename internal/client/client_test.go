package client

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/exambank/backend/internal/app/models/dto"
	"github.com/exambank/backend/internal/pkg/auth"
	"github.com/exambank/backend/internal/wizard"
)

func staticToken(token string) func() string {
	return func() string { return token }
}

func TestLoginDecodesEnvelope(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/teacher/login" {
			t.Errorf("path = %s, want /teacher/login", r.URL.Path)
		}
		if got := r.Header.Get("role"); got != "teacher" {
			t.Errorf("role header = %q, want teacher", got)
		}

		var req dto.LoginRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			t.Fatalf("decoding login body: %v", err)
		}
		if req.Email != "t@example.edu" {
			t.Errorf("email = %q", req.Email)
		}

		json.NewEncoder(w).Encode(dto.Success(dto.LoginResponse{
			Token: "issued-token", ExpiresIn: 3600, ID: 7, Name: "Teacher", Role: "teacher",
		}))
	}))
	defer srv.Close()

	c := New(srv.URL, auth.RoleTeacher, staticToken(""))
	resp, err := c.Login(context.Background(), "t@example.edu", "secret123")
	if err != nil {
		t.Fatalf("Login: %v", err)
	}
	if resp.Token != "issued-token" || resp.ID != 7 {
		t.Errorf("unexpected login response: %+v", resp)
	}
}

func TestFailureEnvelopeBecomesAPIError(t *testing.T) {
	tests := []struct {
		name       string
		status     int
		envelope   dto.StatusEnvelope
		wantStatus int
	}{
		{"http error with message", http.StatusUnauthorized, dto.Failure("Wrong Email or Password"), http.StatusUnauthorized},
		{"2xx but status false", http.StatusOK, dto.Failure("something went sideways"), http.StatusOK},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
				json.NewEncoder(w).Encode(tt.envelope)
			}))
			defer srv.Close()

			c := New(srv.URL, auth.RoleStudent, staticToken("tok"))
			err := c.Get(context.Background(), "/student/get-all-course", nil)

			var apiErr *APIError
			if !errors.As(err, &apiErr) {
				t.Fatalf("error = %v, want *APIError", err)
			}
			if apiErr.StatusCode != tt.wantStatus {
				t.Errorf("StatusCode = %d, want %d", apiErr.StatusCode, tt.wantStatus)
			}
			if apiErr.Message != tt.envelope.Message {
				t.Errorf("Message = %q, want %q", apiErr.Message, tt.envelope.Message)
			}
		})
	}
}

func TestAuthHeadersSentPerRole(t *testing.T) {
	var gotRole, gotToken string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotRole = r.Header.Get("role")
		gotToken = r.Header.Get("student-token")
		json.NewEncoder(w).Encode(dto.Success(nil))
	}))
	defer srv.Close()

	c := New(srv.URL, auth.RoleStudent, staticToken("abc123"))
	if err := c.Get(context.Background(), "/student/profile", nil); err != nil {
		t.Fatalf("Get: %v", err)
	}

	if gotRole != "student" {
		t.Errorf("role header = %q, want student", gotRole)
	}
	if gotToken != "abc123" {
		t.Errorf("student-token header = %q, want abc123", gotToken)
	}
}

func TestSubmitCourseMultipartShape(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost || r.URL.Path != "/teacher/add-cours" {
			t.Errorf("%s %s, want POST /teacher/add-cours", r.Method, r.URL.Path)
		}
		if err := r.ParseMultipartForm(1 << 20); err != nil {
			t.Fatalf("parsing multipart: %v", err)
		}

		if got := r.FormValue("title"); got != "Introduction to Databases" {
			t.Errorf("title = %q", got)
		}
		if got := r.FormValue("category_id"); got != "1" {
			t.Errorf("category_id = %q, want 1", got)
		}

		// Links must arrive as one JSON-stringified field with renamed keys
		var links []dto.CourseLinkPayload
		if err := json.Unmarshal([]byte(r.FormValue("links")), &links); err != nil {
			t.Fatalf("links field is not a JSON array: %v", err)
		}
		if len(links) != 2 {
			t.Fatalf("len(links) = %d, want 2", len(links))
		}
		if links[0].LinkName != "Lecture notes" || links[0].Link == "" {
			t.Errorf("first link not renamed to {link_name, link}: %+v", links[0])
		}

		w.WriteHeader(http.StatusCreated)
		json.NewEncoder(w).Encode(dto.Success(dto.CourseResponse{ID: 42, Title: "Introduction to Databases"}))
	}))
	defer srv.Close()

	form := &wizard.CourseForm{}
	form.LoadDemo()

	c := New(srv.URL, auth.RoleTeacher, staticToken("tok"))
	resp, err := c.SubmitCourse(context.Background(), form)
	if err != nil {
		t.Fatalf("SubmitCourse: %v", err)
	}
	if resp.ID != 42 {
		t.Errorf("course id = %d, want 42", resp.ID)
	}
}

func TestMalformedBodyIsAPIError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("<html>gateway error</html>"))
	}))
	defer srv.Close()

	c := New(srv.URL, auth.RoleAdmin, staticToken("tok"))
	err := c.Get(context.Background(), "/admin/get-account", nil)

	var apiErr *APIError
	if !errors.As(err, &apiErr) {
		t.Fatalf("error = %v, want *APIError", err)
	}
}
