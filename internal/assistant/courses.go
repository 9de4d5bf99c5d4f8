package assistant

import (
	"fmt"
)

const coursesPath = "/api/course_predict"

type CourseRequest struct {
	JobTitle       string `json:"job_title"`
	JobDescription string `json:"job_description"`
}

type Course struct {
	Name      string `json:"name"`
	Platform  string `json:"platform"`
	Relevance string `json:"relevance"`
	URL       string `json:"url"`
}

type CoursePrediction struct {
	Courses []*Course `json:"courses"`
	Message string    `json:"message"`
}

func (c *Client) PredictCourses(req *CourseRequest) (*CoursePrediction, error) {
	if req == nil {
		return nil, fmt.Errorf("course request is required")
	}
	if req.JobTitle == "" && req.JobDescription == "" {
		return nil, fmt.Errorf("job title or description is required")
	}

	apiURL := fmt.Sprintf("%s%s", c.APIURL, coursesPath)

	var resp CoursePrediction
	if err := c.postJSON(apiURL, req, &resp); err != nil {
		return nil, err
	}

	return &resp, nil
}

func (p *CoursePrediction) Len() int {
	return len(p.Courses)
}
