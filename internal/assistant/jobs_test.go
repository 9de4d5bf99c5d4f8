package assistant

import (
	"net/http"
	"testing"
)

func TestFetchJobs(t *testing.T) {
	var gotQuery map[string][]string

	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != jobsPath {
			t.Fatalf("unexpected path: %s", r.URL.Path)
		}
		gotQuery = r.URL.Query()

		w.Write([]byte(`{
			"total_results": 120,
			"jobs": [
				{
					"id": 4567,
					"title": "Backend Engineer",
					"description": "Build APIs",
					"company": {"display_name": "Acme"},
					"location": {"display_name": "Berlin"},
					"redirect_url": "https://example.com/4567",
					"salary_min": 60000
				},
				{
					"id": "891",
					"title": "SRE"
				}
			]
		}`))
	})

	jobs, err := client.FetchJobs(&SearchParams{
		Keywords: "software engineer",
		Location: "berlin",
		Country:  "de",
		Page:     2,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if got := gotQuery["keywords"]; len(got) != 1 || got[0] != "software engineer" {
		t.Fatalf("unexpected keywords query: %v", got)
	}
	if got := gotQuery["page"]; len(got) != 1 || got[0] != "2" {
		t.Fatalf("unexpected page query: %v", got)
	}

	if jobs.Total != 120 {
		t.Fatalf("unexpected total: %d", jobs.Total)
	}
	if jobs.Len() != 2 {
		t.Fatalf("expected 2 jobs, got %d", jobs.Len())
	}

	// numeric ids decode weakly into strings
	first := jobs.FindByID("4567")
	if first == nil {
		t.Fatalf("expected to find job 4567")
	}
	if first.Company.DisplayName != "Acme" || first.Location.DisplayName != "Berlin" {
		t.Fatalf("unexpected job fields: %+v", first)
	}
	if first.SalaryMin != 60000 {
		t.Fatalf("unexpected salary: %v", first.SalaryMin)
	}

	if jobs.FindByID("missing") != nil {
		t.Fatalf("expected nil for unknown id")
	}

	titles := jobs.Titles()
	if len(titles) != 2 || titles[1] != "SRE" {
		t.Fatalf("unexpected titles: %v", titles)
	}
}

func TestFetchJobsEmptyList(t *testing.T) {
	client, _ := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
		w.Write([]byte(`{"total_results": 0, "jobs": []}`))
	})

	jobs, err := client.FetchJobs(nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if jobs.Len() != 0 {
		t.Fatalf("expected no jobs, got %d", jobs.Len())
	}
}
