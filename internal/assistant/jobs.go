package assistant

import (
	"encoding/json"
	"fmt"
	"net/url"
	"os"
	"strconv"

	"github.com/mitchellh/mapstructure"
	"go.uber.org/zap"
)

const jobsPath = "/api/fetch_jobs"

type Jobs struct {
	Items []*Job
	Total int
}

// Job is an Adzuna-shaped listing as relayed by the backend.
type Job struct {
	ID          string `json:"id,omitempty"`
	Title       string `json:"title,omitempty"`
	Description string `json:"description,omitempty"`
	Company     struct {
		DisplayName string `json:"display_name,omitempty"`
	} `json:"company,omitempty"`
	Location struct {
		DisplayName string `json:"display_name,omitempty"`
	} `json:"location,omitempty"`
	RedirectURL string  `json:"redirect_url,omitempty"`
	SalaryMin   float64 `json:"salary_min,omitempty"`
	SalaryMax   float64 `json:"salary_max,omitempty"`
	Created     string  `json:"created,omitempty"`
}

type SearchParams struct {
	Keywords string `mapstructure:"keywords"`
	Location string `mapstructure:"location"`
	Country  string `mapstructure:"country"`
	Page     int    `mapstructure:"page"`
}

type jobsResponse struct {
	TotalResults int   `json:"total_results"`
	Jobs         []any `json:"jobs"`
}

func (c *Client) FetchJobs(params *SearchParams) (*Jobs, error) {
	q := url.Values{}
	if params != nil {
		if params.Keywords != "" {
			q.Set("keywords", params.Keywords)
		}
		if params.Location != "" {
			q.Set("location", params.Location)
		}
		if params.Country != "" {
			q.Set("country", params.Country)
		}
		if params.Page > 0 {
			q.Set("page", strconv.Itoa(params.Page))
		}
	}

	apiURL := fmt.Sprintf("%s%s", c.APIURL, jobsPath)

	var resp jobsResponse
	if err := c.getJSON(apiURL, q, &resp); err != nil {
		return nil, err
	}

	c.logger.Debug("got job listings", zap.Int("total_results", resp.TotalResults), zap.Int("page_items", len(resp.Jobs)))

	var jobs []*Job
	cfg := &mapstructure.DecoderConfig{
		Result:           &jobs,
		TagName:          "json",
		WeaklyTypedInput: true,
	}
	decoder, err := mapstructure.NewDecoder(cfg)
	if err != nil {
		return nil, err
	}
	if err = decoder.Decode(resp.Jobs); err != nil {
		return nil, err
	}

	return &Jobs{
		Items: jobs,
		Total: resp.TotalResults,
	}, nil
}

func (j *Jobs) Len() int {
	return len(j.Items)
}

func (j *Jobs) FindByID(id string) *Job {
	for _, job := range j.Items {
		if job.ID == id {
			return job
		}
	}
	return nil
}

func (j *Jobs) Titles() []string {
	titles := make([]string, 0, len(j.Items))

	for _, job := range j.Items {
		titles = append(titles, job.Title)
	}

	return titles
}

func (j *Jobs) DumpToTmpFile() (string, error) {
	file, err := os.CreateTemp("", "jobs_*.json")
	if err != nil {
		return "", err
	}
	defer file.Close()

	enc := json.NewEncoder(file)
	enc.SetIndent("", "  ")
	if err := enc.Encode(j); err != nil {
		return "", err
	}
	return file.Name(), nil
}
