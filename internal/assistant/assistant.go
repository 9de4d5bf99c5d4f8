package assistant

import (
	"context"
	"net/http"
	"time"

	"go.uber.org/zap"
)

const (
	defaultAPIURL = "http://localhost:5002"
	userAgent     = "careerprep-cli"
)

// Client talks to the job-search assistant backend. All intelligence
// (question generation, scoring, evaluation) lives on the backend side;
// the client only packages requests and decodes responses.
type Client struct {
	// ctx used only for http requests right now
	ctx        context.Context
	logger     *zap.Logger
	HTTPClient *http.Client
	UserAgent  string
	APIURL     string
}

// New creates a backend client bound to the given base URL. The base URL
// is an explicit input; the client never reads it from the environment.
func New(ctx context.Context, logger *zap.Logger, apiURL string) *Client {
	if apiURL == "" {
		apiURL = defaultAPIURL
	}

	return &Client{
		ctx:    ctx,
		APIURL: apiURL,
		HTTPClient: &http.Client{
			Timeout: 60 * time.Second,
		},
		logger:    logger,
		UserAgent: userAgent,
	}
}
