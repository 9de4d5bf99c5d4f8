package assistant

import (
	"fmt"
)

const (
	matchScorePath     = "/api/match_score"
	generateResumePath = "/api/generate_resume"
)

type matchScoreResponse struct {
	MatchScore *float64 `json:"match_score"`
}

type generatedResumeResponse struct {
	GeneratedResumeText string `json:"generated_resume_text"`
}

// MatchScore uploads a resume file and returns the backend-computed
// similarity score against the given job description, on a 0-100 scale.
func (c *Client) MatchScore(resumePath, jobDescription string) (float64, error) {
	if resumePath == "" {
		return 0, fmt.Errorf("resume file is required")
	}
	if jobDescription == "" {
		return 0, fmt.Errorf("job description is required")
	}

	apiURL := fmt.Sprintf("%s%s", c.APIURL, matchScorePath)

	fields := map[string]string{
		"job_description_text": jobDescription,
	}
	files := []FilePart{
		{Field: "resume_file", Path: resumePath},
	}

	var resp matchScoreResponse
	if err := c.postMultipart(apiURL, fields, files, &resp); err != nil {
		return 0, err
	}

	if resp.MatchScore == nil {
		return 0, fmt.Errorf("no match score in response")
	}

	return *resp.MatchScore, nil
}

// GenerateResume uploads a base resume and returns a version tailored by
// the backend for the target job. Title and description are both
// optional on the wire but at least one must be set.
func (c *Client) GenerateResume(baseResumePath, targetTitle, targetDescription string) (string, error) {
	if baseResumePath == "" {
		return "", fmt.Errorf("base resume file is required")
	}
	if targetTitle == "" && targetDescription == "" {
		return "", fmt.Errorf("target job title or description is required")
	}

	apiURL := fmt.Sprintf("%s%s", c.APIURL, generateResumePath)

	fields := map[string]string{}
	if targetTitle != "" {
		fields["target_job_title"] = targetTitle
	}
	if targetDescription != "" {
		fields["target_job_description"] = targetDescription
	}
	files := []FilePart{
		{Field: "base_resume_file", Path: baseResumePath},
	}

	var resp generatedResumeResponse
	if err := c.postMultipart(apiURL, fields, files, &resp); err != nil {
		return "", err
	}

	return resp.GeneratedResumeText, nil
}
