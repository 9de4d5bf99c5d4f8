package interview

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"careerprep/internal/assistant"
	"careerprep/internal/logger"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// NoticeNoQuestions is the informational message for a well-formed but
// empty question set. It is not an error: the screen stays usable.
const NoticeNoQuestions = "no questions were generated for this role"

var (
	// ErrUnusableContext means the handed-over job context carries
	// neither a title nor a description.
	ErrUnusableContext = errors.New("job context has no title or description")
	// ErrNoAnswers is the local submit precondition failure: it blocks
	// only the submit action and causes no network call.
	ErrNoAnswers = errors.New("answer at least one question before submitting")
	// ErrClosed is returned when a torn-down session is used.
	ErrClosed = errors.New("practice session is closed")
)

// Backend is the slice of the assistant client the session needs.
type Backend interface {
	GenerateInterviewQuestions(req *assistant.QuestionRequest) (assistant.GeneratedQuestions, error)
	EvaluateAnswers(req *assistant.EvaluationRequest) (*assistant.EvaluationResponse, error)
}

type Phase int

const (
	PhaseIdle Phase = iota
	PhaseInFlight
	PhaseSettled
)

// OperationState is the tri-state flag of one async operation plus its
// error message, if any. The question fetch and the evaluation submit
// each carry their own.
type OperationState struct {
	Phase Phase
	Err   string
}

func (s OperationState) Failed() bool {
	return s.Phase == PhaseSettled && s.Err != ""
}

// Session owns the question list and the users' answers for one job
// context. The question fetch and the evaluation submit run one at a
// time; the session is driven from a single goroutine.
type Session struct {
	id      uuid.UUID
	backend Backend
	logger  *zap.Logger
	quota   Quota

	job       JobContext
	questions []*Question
	notice    string
	fetch     OperationState
	submit    OperationState
	result    *EvaluationResult
	closed    bool
}

func NewSession(backend Backend, quota Quota, log *zap.Logger) *Session {
	if log == nil {
		log = zap.NewNop()
	}

	if quota.Technical <= 0 && quota.Behavioral <= 0 && quota.Situational <= 0 {
		quota = DefaultQuota()
	}

	id := uuid.New()

	return &Session{
		id:      id,
		backend: backend,
		quota:   quota,
		logger:  log.With(zap.String(logger.FieldSession, id.String())),
	}
}

func (s *Session) ID() uuid.UUID {
	return s.id
}

func (s *Session) Job() JobContext {
	return s.job
}

// Questions returns the current question list in generation order.
func (s *Session) Questions() []*Question {
	return s.questions
}

func (s *Session) Notice() string {
	return s.notice
}

func (s *Session) FetchState() OperationState {
	return s.fetch
}

func (s *Session) SubmitState() OperationState {
	return s.submit
}

func (s *Session) Result() *EvaluationResult {
	return s.result
}

// Begin receives the job context handed over from the job screen. The
// context is stored verbatim; when it is usable exactly one question
// fetch is triggered, otherwise the context error is recorded and no
// request leaves the process. Calling Begin again replaces the question
// set wholesale.
func (s *Session) Begin(job JobContext) error {
	if s.closed {
		return ErrClosed
	}

	s.job = job

	if !job.Usable() {
		s.fetch = OperationState{Phase: PhaseSettled, Err: ErrUnusableContext.Error()}
		s.logger.Warn("unusable job context, not requesting questions")
		return ErrUnusableContext
	}

	return s.requestQuestions()
}

func (s *Session) requestQuestions() error {
	// Prior session state is cleared before going in flight so a failed
	// re-fetch never leaves half-old data behind.
	s.questions = nil
	s.notice = ""
	s.result = nil
	s.submit = OperationState{}
	s.fetch = OperationState{Phase: PhaseInFlight}

	req := &assistant.QuestionRequest{
		JobRole:         s.job.Role(),
		ContextKeywords: s.job.Snippet(),
		NumTechnical:    s.quota.Technical,
		NumBehavioral:   s.quota.Behavioral,
		NumSituational:  s.quota.Situational,
	}

	s.logger.Debug("requesting interview questions",
		zap.String("job_role", req.JobRole),
		zap.String("context_preview", logger.TruncateForLog(req.ContextKeywords, 80)),
	)

	set, err := s.backend.GenerateInterviewQuestions(req)
	if s.closed {
		// The owner tore the session down while the request was in
		// flight. The response must not mutate anything.
		return ErrClosed
	}
	if err != nil {
		s.fetch = OperationState{Phase: PhaseSettled, Err: err.Error()}
		return fmt.Errorf("generate interview questions: %w", err)
	}

	s.questions = flatten(set)
	s.fetch = OperationState{Phase: PhaseSettled}

	if len(s.questions) == 0 {
		s.notice = NoticeNoQuestions
		s.logger.Info("question fetch returned an empty set", zap.String("job_role", req.JobRole))
		return nil
	}

	s.logger.Info("interview questions ready", zap.Int("count", len(s.questions)))
	return nil
}

// SetAnswer replaces the answer of the question with the matching id.
// Unknown ids are ignored. Mutations are synchronous and applied in
// call order.
func (s *Session) SetAnswer(id int, text string) {
	if s.closed {
		return
	}
	s.questions = setAnswer(s.questions, id, text)
}

// CanSubmit reports the submission-readiness predicate: at least one
// answer must be non-blank after trimming.
func (s *Session) CanSubmit() bool {
	for _, question := range s.questions {
		if question.Answered() {
			return true
		}
	}
	return false
}

// Submit packages the full question/answer set plus the reduced job
// context and requests a scored evaluation. A previous result is
// cleared before the new attempt begins, not when it settles. Unanswered
// questions travel with empty answers; the backend decides what to
// score.
func (s *Session) Submit() (*EvaluationResult, error) {
	if s.closed {
		return nil, ErrClosed
	}

	s.result = nil
	s.submit = OperationState{Phase: PhaseIdle}

	if !s.CanSubmit() {
		s.submit = OperationState{Phase: PhaseSettled, Err: ErrNoAnswers.Error()}
		return nil, ErrNoAnswers
	}

	req := &assistant.EvaluationRequest{
		JobDetails: assistant.JobDetails{
			Title:       s.job.Title,
			Description: s.job.Description,
		},
		QuestionsAndAnswers: make([]assistant.QuestionAnswer, 0, len(s.questions)),
	}
	for _, question := range s.questions {
		req.QuestionsAndAnswers = append(req.QuestionsAndAnswers, assistant.QuestionAnswer{
			ID:       question.ID,
			Type:     string(question.Category),
			Question: question.Prompt,
			Answer:   question.Answer,
		})
	}

	s.submit = OperationState{Phase: PhaseInFlight}

	resp, err := s.backend.EvaluateAnswers(req)
	if s.closed {
		return nil, ErrClosed
	}
	if err != nil {
		s.submit = OperationState{Phase: PhaseSettled, Err: err.Error()}
		return nil, fmt.Errorf("evaluate answers: %w", err)
	}

	s.result = resultFromResponse(resp)
	s.submit = OperationState{Phase: PhaseSettled}

	s.logger.Info("evaluation received",
		zap.String("score", FormatScore(s.result.Score)),
		zap.Int("detail_entries", len(s.result.Detailed)),
	)

	return s.result, nil
}

// Close tears the session down. In-flight requests cannot be aborted;
// their responses are discarded instead of mutating state.
func (s *Session) Close() {
	s.closed = true
}

// Transcript is the serialized form of a finished (or abandoned)
// practice session.
type Transcript struct {
	SessionID string            `json:"session_id"`
	Job       JobContext        `json:"job"`
	Questions []*Question       `json:"questions"`
	Result    *EvaluationResult `json:"result,omitempty"`
}

// DumpToTmpFile writes the session transcript to a temp JSON file and
// returns its name.
func (s *Session) DumpToTmpFile() (string, error) {
	file, err := os.CreateTemp("", fmt.Sprintf("practice_%s_*.json", s.id))
	if err != nil {
		return "", err
	}
	defer file.Close()

	transcript := &Transcript{
		SessionID: s.id.String(),
		Job:       s.job,
		Questions: s.questions,
		Result:    s.result,
	}

	enc := json.NewEncoder(file)
	enc.SetIndent("", "  ")
	if err := enc.Encode(transcript); err != nil {
		return "", err
	}
	return file.Name(), nil
}
