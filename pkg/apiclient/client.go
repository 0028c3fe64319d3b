// Package apiclient is a typed HTTP client for the askhub API. All record
// identifiers are normalized into the canonical ID type when responses are
// decoded, so callers never see the legacy "_id" field.
package apiclient

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
)

// APIError is a non-2xx response decoded from the server's {message} body.
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("api error: status %d: %s", e.StatusCode, e.Message)
}

// IsNotFound reports whether err is an APIError with a 404 status.
func IsNotFound(err error) bool {
	var apiErr *APIError
	return errors.As(err, &apiErr) && apiErr.StatusCode == http.StatusNotFound
}

// Client talks to the askhub API over HTTP/JSON.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// Option configures a Client.
type Option func(*Client)

// WithHTTPClient replaces the underlying http.Client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) { c.httpClient = hc }
}

// NewClient creates a client for the API at baseURL (e.g. "http://localhost:5000").
// The "/api" base path is appended by the client itself.
func NewClient(baseURL string, opts ...Option) *Client {
	c := &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: http.DefaultClient,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// GetCompanyBySlug resolves a tenant by its URL slug.
func (c *Client) GetCompanyBySlug(ctx context.Context, slug string) (*Company, error) {
	var company Company
	if err := c.do(ctx, http.MethodGet, "/api/companies/"+url.PathEscape(slug), nil, &company); err != nil {
		return nil, err
	}
	return &company, nil
}

// CreateCompany registers a new tenant.
func (c *Client) CreateCompany(ctx context.Context, req *CreateCompanyRequest) (*Company, error) {
	var company Company
	if err := c.do(ctx, http.MethodPost, "/api/companies", req, &company); err != nil {
		return nil, err
	}
	return &company, nil
}

// GoogleSignIn finds or creates a user by email and returns the record.
func (c *Client) GoogleSignIn(ctx context.Context, req *GoogleSignInRequest) (*User, error) {
	var user User
	if err := c.do(ctx, http.MethodPost, "/api/auth/google", req, &user); err != nil {
		return nil, err
	}
	return &user, nil
}

// ListPrograms lists topics in the given tenant scope. An empty companyID
// returns global topics only.
func (c *Client) ListPrograms(ctx context.Context, companyID ID) ([]Program, error) {
	var programs []Program
	if err := c.do(ctx, http.MethodGet, "/api/programs"+scopeQuery(companyID), nil, &programs); err != nil {
		return nil, err
	}
	return programs, nil
}

// CreateProgram creates a new topic.
func (c *Client) CreateProgram(ctx context.Context, req *CreateProgramRequest) (*Program, error) {
	var program Program
	if err := c.do(ctx, http.MethodPost, "/api/programs", req, &program); err != nil {
		return nil, err
	}
	return &program, nil
}

// UpdateProgram applies a partial update to a topic.
func (c *Client) UpdateProgram(ctx context.Context, id ID, req *UpdateProgramRequest) (*Program, error) {
	var program Program
	if err := c.do(ctx, http.MethodPatch, "/api/programs/"+url.PathEscape(id.String()), req, &program); err != nil {
		return nil, err
	}
	return &program, nil
}

// ListQuestions lists questions in the given tenant scope, newest first.
// An empty companyID returns global questions only.
func (c *Client) ListQuestions(ctx context.Context, companyID ID) ([]Question, error) {
	var questions []Question
	if err := c.do(ctx, http.MethodGet, "/api/questions"+scopeQuery(companyID), nil, &questions); err != nil {
		return nil, err
	}
	return questions, nil
}

// CreateQuestion submits a new question.
func (c *Client) CreateQuestion(ctx context.Context, req *CreateQuestionRequest) (*Question, error) {
	var question Question
	if err := c.do(ctx, http.MethodPost, "/api/questions", req, &question); err != nil {
		return nil, err
	}
	return &question, nil
}

// AnswerQuestion sets the answer on a question and returns the updated record.
func (c *Client) AnswerQuestion(ctx context.Context, id ID, answer string) (*Question, error) {
	var question Question
	path := "/api/questions/" + url.PathEscape(id.String()) + "/answer"
	if err := c.do(ctx, http.MethodPatch, path, &AnswerQuestionRequest{Answer: answer}, &question); err != nil {
		return nil, err
	}
	return &question, nil
}

func scopeQuery(companyID ID) string {
	if companyID.IsZero() {
		return ""
	}
	return "?companyId=" + url.QueryEscape(companyID.String())
}

func (c *Client) do(ctx context.Context, method, path string, body, target interface{}) error {
	var reqBody io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encode request body: %w", err)
		}
		reqBody = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reqBody)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("%s %s: %w", method, path, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		apiErr := &APIError{StatusCode: resp.StatusCode}
		var msg struct {
			Message string `json:"message"`
		}
		if err := json.NewDecoder(resp.Body).Decode(&msg); err == nil {
			apiErr.Message = msg.Message
		}
		return apiErr
	}

	if target != nil {
		if err := json.NewDecoder(resp.Body).Decode(target); err != nil {
			return fmt.Errorf("decode response body: %w", err)
		}
	}
	return nil
}
