// Package controller implements the URL-driven client state machine: tenant
// resolution from the path, view routing, scoped data fetching with stale
// response discard, and optimistic merges of server-confirmed mutations.
package controller

import (
	"context"
	"errors"
	"sync"

	"askhub/pkg/apiclient"

	"github.com/sirupsen/logrus"
)

// ErrProgramClosed is returned when a question targets a topic that is not
// accepting new questions.
var ErrProgramClosed = errors.New("program is not accepting new questions")

// ErrProgramUnknown is returned when a toggle targets a topic the controller
// has not loaded.
var ErrProgramUnknown = errors.New("program not found in local state")

// API is the subset of the askhub client the controller drives.
type API interface {
	GetCompanyBySlug(ctx context.Context, slug string) (*apiclient.Company, error)
	GoogleSignIn(ctx context.Context, req *apiclient.GoogleSignInRequest) (*apiclient.User, error)
	ListPrograms(ctx context.Context, companyID apiclient.ID) ([]apiclient.Program, error)
	CreateProgram(ctx context.Context, req *apiclient.CreateProgramRequest) (*apiclient.Program, error)
	UpdateProgram(ctx context.Context, id apiclient.ID, req *apiclient.UpdateProgramRequest) (*apiclient.Program, error)
	ListQuestions(ctx context.Context, companyID apiclient.ID) ([]apiclient.Question, error)
	CreateQuestion(ctx context.Context, req *apiclient.CreateQuestionRequest) (*apiclient.Question, error)
	AnswerQuestion(ctx context.Context, id apiclient.ID, answer string) (*apiclient.Question, error)
}

var _ API = (*apiclient.Client)(nil)

// Controller holds the client-side state derived from the current path.
// All accessors return snapshots; mutation methods are safe for concurrent
// use. A generation counter guards against a fetch from an earlier
// navigation overwriting the state of a later one.
type Controller struct {
	api         API
	adminSecret string
	log         *logrus.Entry
	history     *History

	mu         sync.Mutex
	generation uint64
	company    *apiclient.Company
	view       View
	programs   []apiclient.Program
	questions  []apiclient.Question
	loaded     bool
	user       *apiclient.User
	isAdmin    bool
}

// New creates a controller positioned at "/" with no data loaded. Call
// Navigate (or HandleLocationChange) to resolve the initial path.
func New(api API, adminSecret string) *Controller {
	return &Controller{
		api:         api,
		adminSecret: adminSecret,
		log:         logrus.WithField("component", "controller"),
		history:     NewHistory("/"),
	}
}

// Navigate pushes a new path onto the session history and re-runs full
// resolution (tenant, view, scoped fetch). History writes do not trigger a
// location-change event, so resolution must run here explicitly.
func (c *Controller) Navigate(ctx context.Context, path string) {
	c.history.Push(path)
	c.resolve(ctx, path)
}

// HandleLocationChange re-resolves state for a path change that originated
// outside Navigate, such as a browser back/forward event.
func (c *Controller) HandleLocationChange(ctx context.Context, path string) {
	c.resolve(ctx, path)
}

// Back moves one entry back in the session history and re-resolves. It
// reports false when already at the oldest entry.
func (c *Controller) Back(ctx context.Context) bool {
	path, ok := c.history.Back()
	if !ok {
		return false
	}
	c.resolve(ctx, path)
	return true
}

// Forward moves one entry forward in the session history and re-resolves.
func (c *Controller) Forward(ctx context.Context) bool {
	path, ok := c.history.Forward()
	if !ok {
		return false
	}
	c.resolve(ctx, path)
	return true
}

// Path returns the current session history path.
func (c *Controller) Path() string {
	return c.history.Current()
}

// resolve runs the full pipeline for a path: tenant resolution, view
// derivation, then a scoped concurrent fetch of programs and questions.
func (c *Controller) resolve(ctx context.Context, path string) {
	slug, _ := ParseTenantSlug(path)
	c.resolveTenant(ctx, slug)

	view := ResolveView(path)

	c.mu.Lock()
	c.view = view
	c.generation++
	gen := c.generation
	scope := scopeOf(c.company)
	c.mu.Unlock()

	c.refresh(ctx, gen, scope)
}

// resolveTenant fetches the company for slug unless it matches the cached
// tenant. A fetch failure logs and falls back to the un-tenanted view.
func (c *Controller) resolveTenant(ctx context.Context, slug string) {
	c.mu.Lock()
	cached := c.company
	c.mu.Unlock()

	if slug == "" {
		if cached != nil {
			c.mu.Lock()
			c.company = nil
			c.mu.Unlock()
		}
		return
	}
	if cached != nil && cached.Slug == slug {
		return
	}

	company, err := c.api.GetCompanyBySlug(ctx, slug)
	if err != nil {
		c.log.WithError(err).WithField("slug", slug).Warn("Failed to resolve tenant, falling back to default view")
		company = nil
	}
	c.mu.Lock()
	c.company = company
	c.mu.Unlock()
}

// refresh fetches programs and questions concurrently for the given scope
// and applies the results only if no later navigation has started since.
// A failed fetch leaves the previously loaded collection untouched.
func (c *Controller) refresh(ctx context.Context, gen uint64, scope apiclient.ID) {
	var (
		wg        sync.WaitGroup
		programs  []apiclient.Program
		questions []apiclient.Question
		progErr   error
		questErr  error
	)

	wg.Add(2)
	go func() {
		defer wg.Done()
		programs, progErr = c.api.ListPrograms(ctx, scope)
	}()
	go func() {
		defer wg.Done()
		questions, questErr = c.api.ListQuestions(ctx, scope)
	}()
	wg.Wait()

	c.mu.Lock()
	defer c.mu.Unlock()

	if gen != c.generation {
		// A later navigation superseded this fetch; drop it.
		return
	}
	if progErr != nil {
		c.log.WithError(progErr).Warn("Failed to fetch programs, keeping previous data")
	} else {
		c.programs = programs
	}
	if questErr != nil {
		c.log.WithError(questErr).Warn("Failed to fetch questions, keeping previous data")
	} else {
		c.questions = questions
	}
	if progErr == nil && questErr == nil {
		c.loaded = true
	}
}

// ------------------------------
// State accessors
// ------------------------------

// View returns the active view.
func (c *Controller) View() View {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.view
}

// Company returns the resolved tenant, or nil in the un-tenanted context.
func (c *Controller) Company() *apiclient.Company {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.company == nil {
		return nil
	}
	company := *c.company
	return &company
}

// Theme returns the theme for the current tenant context.
func (c *Controller) Theme() Theme {
	c.mu.Lock()
	defer c.mu.Unlock()
	return ThemeFor(c.company)
}

// Programs returns a snapshot of the loaded topic list.
func (c *Controller) Programs() []apiclient.Program {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := make([]apiclient.Program, len(c.programs))
	copy(out, c.programs)
	return out
}

// OpenPrograms returns the topics currently accepting new questions.
func (c *Controller) OpenPrograms() []apiclient.Program {
	c.mu.Lock()
	defer c.mu.Unlock()
	var out []apiclient.Program
	for _, p := range c.programs {
		if p.IsOpen {
			out = append(out, p)
		}
	}
	return out
}

// Questions returns a snapshot of the loaded question list, newest first.
func (c *Controller) Questions() []apiclient.Question {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := make([]apiclient.Question, len(c.questions))
	copy(out, c.questions)
	return out
}

// CurrentQuestion resolves the detail view's question id against the loaded
// list. It returns nil outside the detail view or when the id is absent,
// which the detail view renders as an empty state.
func (c *Controller) CurrentQuestion() *apiclient.Question {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.view.Kind != ViewDetail {
		return nil
	}
	for i := range c.questions {
		if c.questions[i].ID == c.view.QuestionID {
			question := c.questions[i]
			return &question
		}
	}
	return nil
}

// Loading reports whether the initial full fetch has not yet completed.
// Subsequent refreshes never re-enter the loading state, so navigation does
// not flicker the full-page indicator.
func (c *Controller) Loading() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return !c.loaded
}

// User returns the signed-in identity, or nil.
func (c *Controller) User() *apiclient.User {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.user == nil {
		return nil
	}
	user := *c.user
	return &user
}

// IsAdmin reports whether the admin gate has been passed.
func (c *Controller) IsAdmin() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.isAdmin
}

// ------------------------------
// Mutations
// ------------------------------

// SubmitQuestion sends a new question scoped to the current tenant and, on
// success, merges the server's record into local state. Questions targeting
// a closed topic are rejected before the request is sent.
func (c *Controller) SubmitQuestion(ctx context.Context, req *apiclient.CreateQuestionRequest) (*apiclient.Question, error) {
	c.mu.Lock()
	if req.CompanyID.IsZero() {
		req.CompanyID = scopeOf(c.company)
	}
	if !req.ProgramID.IsZero() {
		for i := range c.programs {
			if c.programs[i].ID == req.ProgramID && !c.programs[i].IsOpen {
				c.mu.Unlock()
				return nil, ErrProgramClosed
			}
		}
	}
	c.mu.Unlock()

	question, err := c.api.CreateQuestion(ctx, req)
	if err != nil {
		return nil, err
	}
	c.mergeQuestion(question)
	return question, nil
}

// AnswerQuestion publishes an answer and merges the updated record.
func (c *Controller) AnswerQuestion(ctx context.Context, id apiclient.ID, answer string) (*apiclient.Question, error) {
	question, err := c.api.AnswerQuestion(ctx, id, answer)
	if err != nil {
		return nil, err
	}
	c.mergeQuestion(question)
	return question, nil
}

// CreateProgram creates a topic scoped to the current tenant and merges it.
func (c *Controller) CreateProgram(ctx context.Context, req *apiclient.CreateProgramRequest) (*apiclient.Program, error) {
	c.mu.Lock()
	if req.CompanyID.IsZero() {
		req.CompanyID = scopeOf(c.company)
	}
	c.mu.Unlock()

	program, err := c.api.CreateProgram(ctx, req)
	if err != nil {
		return nil, err
	}
	c.mergeProgram(program)
	return program, nil
}

// ToggleProgram flips a topic's open flag via a partial update and merges
// the server's record. The read-then-patch is a known low-contention race;
// the server's returned state wins.
func (c *Controller) ToggleProgram(ctx context.Context, id apiclient.ID) (*apiclient.Program, error) {
	c.mu.Lock()
	var current *apiclient.Program
	for i := range c.programs {
		if c.programs[i].ID == id {
			current = &c.programs[i]
			break
		}
	}
	if current == nil {
		c.mu.Unlock()
		return nil, ErrProgramUnknown
	}
	desired := !current.IsOpen
	c.mu.Unlock()

	program, err := c.api.UpdateProgram(ctx, id, &apiclient.UpdateProgramRequest{IsOpen: &desired})
	if err != nil {
		return nil, err
	}
	c.mergeProgram(program)
	return program, nil
}

// SignIn runs the identity upsert scoped to the current tenant and stores
// the resulting user.
func (c *Controller) SignIn(ctx context.Context, req *apiclient.GoogleSignInRequest) (*apiclient.User, error) {
	c.mu.Lock()
	if req.CompanyID.IsZero() {
		req.CompanyID = scopeOf(c.company)
	}
	c.mu.Unlock()

	user, err := c.api.GoogleSignIn(ctx, req)
	if err != nil {
		return nil, err
	}
	c.mu.Lock()
	c.user = user
	c.mu.Unlock()
	return user, nil
}

// SignOut clears the signed-in identity and the admin gate.
func (c *Controller) SignOut() {
	c.mu.Lock()
	c.user = nil
	c.isAdmin = false
	c.mu.Unlock()
}

// AdminLogin checks the shared admin secret and unlocks the admin view on
// match. This is a client-side gate only, not a credential system.
func (c *Controller) AdminLogin(secret string) bool {
	ok := secret != "" && secret == c.adminSecret
	c.mu.Lock()
	c.isAdmin = ok
	c.mu.Unlock()
	return ok
}

// ------------------------------
// Merge helpers
// ------------------------------

// mergeQuestion replaces the matching record by id, or prepends a new one
// to keep newest-first ordering.
func (c *Controller) mergeQuestion(q *apiclient.Question) {
	c.mu.Lock()
	defer c.mu.Unlock()
	for i := range c.questions {
		if c.questions[i].ID == q.ID {
			c.questions[i] = *q
			return
		}
	}
	c.questions = append([]apiclient.Question{*q}, c.questions...)
}

// mergeProgram replaces the matching record by id, or appends a new one.
func (c *Controller) mergeProgram(p *apiclient.Program) {
	c.mu.Lock()
	defer c.mu.Unlock()
	for i := range c.programs {
		if c.programs[i].ID == p.ID {
			c.programs[i] = *p
			return
		}
	}
	c.programs = append(c.programs, *p)
}

func scopeOf(company *apiclient.Company) apiclient.ID {
	if company == nil {
		return ""
	}
	return company.ID
}
