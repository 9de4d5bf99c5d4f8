package assistant

import (
	"io"
	"net/http"
	"os"
	"path/filepath"
	"testing"
)

func writeTempResume(t *testing.T) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "resume.pdf")
	if err := os.WriteFile(path, []byte("resume content"), 0o644); err != nil {
		t.Fatalf("writing temp resume: %v", err)
	}
	return path
}

func TestMatchScore(t *testing.T) {
	resume := writeTempResume(t)

	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if err := r.ParseMultipartForm(1 << 20); err != nil {
			t.Fatalf("parsing multipart form: %v", err)
		}

		if got := r.FormValue("job_description_text"); got != "Build APIs" {
			t.Fatalf("unexpected job description: %q", got)
		}

		file, header, err := r.FormFile("resume_file")
		if err != nil {
			t.Fatalf("missing resume_file part: %v", err)
		}
		defer file.Close()

		if header.Filename != "resume.pdf" {
			t.Fatalf("unexpected filename: %s", header.Filename)
		}
		content, _ := io.ReadAll(file)
		if string(content) != "resume content" {
			t.Fatalf("unexpected file content: %q", content)
		}

		w.Write([]byte(`{"match_score": 78.25}`))
	})

	score, err := client.MatchScore(resume, "Build APIs")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if score != 78.25 {
		t.Fatalf("unexpected score: %v", score)
	}
}

func TestMatchScoreMissingScoreInResponse(t *testing.T) {
	resume := writeTempResume(t)

	client, _ := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
		w.Write([]byte(`{}`))
	})

	if _, err := client.MatchScore(resume, "Build APIs"); err == nil {
		t.Fatalf("expected an error for a missing score")
	}
}

func TestGenerateResume(t *testing.T) {
	resume := writeTempResume(t)

	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if err := r.ParseMultipartForm(1 << 20); err != nil {
			t.Fatalf("parsing multipart form: %v", err)
		}

		if got := r.FormValue("target_job_title"); got != "Backend Engineer" {
			t.Fatalf("unexpected target title: %q", got)
		}
		if _, _, err := r.FormFile("base_resume_file"); err != nil {
			t.Fatalf("missing base_resume_file part: %v", err)
		}

		w.Write([]byte(`{"generated_resume_text": "tailored text"}`))
	})

	text, err := client.GenerateResume(resume, "Backend Engineer", "Build APIs")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if text != "tailored text" {
		t.Fatalf("unexpected text: %q", text)
	}
}

func TestGenerateResumeRequiresTarget(t *testing.T) {
	resume := writeTempResume(t)

	client, _ := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
		t.Fatalf("no request expected")
	})

	if _, err := client.GenerateResume(resume, "", ""); err == nil {
		t.Fatalf("expected a validation error")
	}
}
