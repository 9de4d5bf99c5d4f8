package assistant

import (
	"fmt"

	"go.uber.org/zap"
)

const (
	questionsPath = "/api/generate_interview_questions"
	evaluatePath  = "/api/evaluate_answers"
)

// QuestionRequest asks the backend to synthesize interview questions for
// a job role. The per-category counts are a configuration input, not
// negotiated with the backend.
type QuestionRequest struct {
	JobRole         string `json:"job_role"`
	ContextKeywords string `json:"context_keywords"`
	NumTechnical    int    `json:"num_technical"`
	NumBehavioral   int    `json:"num_behavioral"`
	NumSituational  int    `json:"num_situational"`
}

// GeneratedQuestions maps a category key (e.g. "technical_questions") to
// the ordered question texts the backend produced for it.
type GeneratedQuestions map[string][]string

type questionsResponse struct {
	Questions GeneratedQuestions `json:"questions"`
}

// JobDetails is the reduced job context sent with an evaluation request.
// Only title and description travel to the backend.
type JobDetails struct {
	Title       string `json:"title"`
	Description string `json:"description"`
}

type QuestionAnswer struct {
	ID       int    `json:"id"`
	Type     string `json:"type"`
	Question string `json:"question"`
	Answer   string `json:"answer"`
}

type EvaluationRequest struct {
	JobDetails          JobDetails       `json:"job_details"`
	QuestionsAndAnswers []QuestionAnswer `json:"questions_and_answers"`
}

// EvaluationResponse is the backend's scored evaluation. Any field may be
// absent; absent scores must not be read as zero.
type EvaluationResponse struct {
	Score            *float64        `json:"score"`
	Feedback         string          `json:"feedback"`
	DetailedFeedback []*DetailedItem `json:"detailed_feedback"`
}

type DetailedItem struct {
	QuestionID   *int     `json:"question_id"`
	Score        *float64 `json:"score"`
	FeedbackText string   `json:"feedback_text"`
}

func (c *Client) GenerateInterviewQuestions(req *QuestionRequest) (GeneratedQuestions, error) {
	if req == nil {
		return nil, fmt.Errorf("question request is required")
	}

	apiURL := fmt.Sprintf("%s%s", c.APIURL, questionsPath)

	var resp questionsResponse
	if err := c.postJSON(apiURL, req, &resp); err != nil {
		return nil, err
	}

	c.logger.Debug("got generated questions",
		zap.String("job_role", req.JobRole),
		zap.Int("categories", len(resp.Questions)),
	)

	if resp.Questions == nil {
		return GeneratedQuestions{}, nil
	}

	return resp.Questions, nil
}

func (c *Client) EvaluateAnswers(req *EvaluationRequest) (*EvaluationResponse, error) {
	if req == nil {
		return nil, fmt.Errorf("evaluation request is required")
	}

	apiURL := fmt.Sprintf("%s%s", c.APIURL, evaluatePath)

	var resp EvaluationResponse
	if err := c.postJSON(apiURL, req, &resp); err != nil {
		return nil, err
	}

	c.logger.Debug("got evaluation",
		zap.Int("answers_sent", len(req.QuestionsAndAnswers)),
		zap.Int("detail_entries", len(resp.DetailedFeedback)),
	)

	return &resp, nil
}
