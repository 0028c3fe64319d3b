package controller

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"

	"askhub/pkg/apiclient"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeAPI implements API with overridable behavior per test. Unset functions
// return empty results.
type fakeAPI struct {
	getCompanyFn     func(slug string) (*apiclient.Company, error)
	signInFn         func(req *apiclient.GoogleSignInRequest) (*apiclient.User, error)
	listProgramsFn   func(scope apiclient.ID) ([]apiclient.Program, error)
	createProgramFn  func(req *apiclient.CreateProgramRequest) (*apiclient.Program, error)
	updateProgramFn  func(id apiclient.ID, req *apiclient.UpdateProgramRequest) (*apiclient.Program, error)
	listQuestionsFn  func(scope apiclient.ID) ([]apiclient.Question, error)
	createQuestionFn func(req *apiclient.CreateQuestionRequest) (*apiclient.Question, error)
	answerQuestionFn func(id apiclient.ID, answer string) (*apiclient.Question, error)
}

func (f *fakeAPI) GetCompanyBySlug(_ context.Context, slug string) (*apiclient.Company, error) {
	if f.getCompanyFn == nil {
		return nil, &apiclient.APIError{StatusCode: 404, Message: "Company not found"}
	}
	return f.getCompanyFn(slug)
}

func (f *fakeAPI) GoogleSignIn(_ context.Context, req *apiclient.GoogleSignInRequest) (*apiclient.User, error) {
	if f.signInFn == nil {
		return &apiclient.User{ID: "1", Email: req.Email, Name: req.Name, Role: "user"}, nil
	}
	return f.signInFn(req)
}

func (f *fakeAPI) ListPrograms(_ context.Context, scope apiclient.ID) ([]apiclient.Program, error) {
	if f.listProgramsFn == nil {
		return nil, nil
	}
	return f.listProgramsFn(scope)
}

func (f *fakeAPI) CreateProgram(_ context.Context, req *apiclient.CreateProgramRequest) (*apiclient.Program, error) {
	if f.createProgramFn == nil {
		return &apiclient.Program{ID: "1", Name: req.Name, IsOpen: req.IsOpen, CompanyID: req.CompanyID}, nil
	}
	return f.createProgramFn(req)
}

func (f *fakeAPI) UpdateProgram(_ context.Context, id apiclient.ID, req *apiclient.UpdateProgramRequest) (*apiclient.Program, error) {
	if f.updateProgramFn == nil {
		return nil, errors.New("not implemented")
	}
	return f.updateProgramFn(id, req)
}

func (f *fakeAPI) ListQuestions(_ context.Context, scope apiclient.ID) ([]apiclient.Question, error) {
	if f.listQuestionsFn == nil {
		return nil, nil
	}
	return f.listQuestionsFn(scope)
}

func (f *fakeAPI) CreateQuestion(_ context.Context, req *apiclient.CreateQuestionRequest) (*apiclient.Question, error) {
	if f.createQuestionFn == nil {
		return &apiclient.Question{ID: "1", Title: req.Title, Text: req.Text, CompanyID: req.CompanyID}, nil
	}
	return f.createQuestionFn(req)
}

func (f *fakeAPI) AnswerQuestion(_ context.Context, id apiclient.ID, answer string) (*apiclient.Question, error) {
	if f.answerQuestionFn == nil {
		return nil, errors.New("not implemented")
	}
	return f.answerQuestionFn(id, answer)
}

func acmeCompany() *apiclient.Company {
	return &apiclient.Company{
		ID:             "7",
		Name:           "Acme",
		Slug:           "acme",
		PrimaryColor:   "#ea580c",
		SecondaryColor: "#9a3412",
	}
}

func TestController_TenantDetailResolution(t *testing.T) {
	var questionScope apiclient.ID
	fake := &fakeAPI{
		getCompanyFn: func(slug string) (*apiclient.Company, error) {
			assert.Equal(t, "acme", slug)
			return acmeCompany(), nil
		},
		listQuestionsFn: func(scope apiclient.ID) ([]apiclient.Question, error) {
			questionScope = scope
			return []apiclient.Question{
				{ID: "43", Title: "Newest", CompanyID: "7"},
				{ID: "42", Title: "Target", CompanyID: "7"},
			}, nil
		},
	}

	c := New(fake, "admin123")
	c.Navigate(context.Background(), "/c/acme/q/42")

	company := c.Company()
	require.NotNil(t, company)
	assert.Equal(t, "acme", company.Slug)
	assert.Equal(t, apiclient.ID("7"), questionScope)

	view := c.View()
	assert.Equal(t, ViewDetail, view.Kind)
	assert.Equal(t, apiclient.ID("42"), view.QuestionID)

	current := c.CurrentQuestion()
	require.NotNil(t, current)
	assert.Equal(t, "Target", current.Title)

	assert.Equal(t, Theme{PrimaryColor: "#ea580c", SecondaryColor: "#9a3412"}, c.Theme())
}

func TestController_DetailWithUnknownQuestionIsEmpty(t *testing.T) {
	c := New(&fakeAPI{}, "admin123")
	c.Navigate(context.Background(), "/q/999")

	assert.Equal(t, ViewDetail, c.View().Kind)
	assert.Nil(t, c.CurrentQuestion())
}

func TestController_TenantResolveFailureFallsBack(t *testing.T) {
	var listScope apiclient.ID
	fake := &fakeAPI{
		getCompanyFn: func(string) (*apiclient.Company, error) {
			return nil, &apiclient.APIError{StatusCode: 404, Message: "Company not found"}
		},
		listProgramsFn: func(scope apiclient.ID) ([]apiclient.Program, error) {
			listScope = scope
			return nil, nil
		},
	}

	c := New(fake, "admin123")
	c.Navigate(context.Background(), "/c/ghost/ask")

	assert.Nil(t, c.Company())
	assert.Equal(t, DefaultTheme, c.Theme())
	assert.Equal(t, ViewAsk, c.View().Kind)
	assert.True(t, listScope.IsZero())
}

func TestController_TenantCachedAcrossNavigations(t *testing.T) {
	var companyCalls int32
	fake := &fakeAPI{
		getCompanyFn: func(string) (*apiclient.Company, error) {
			atomic.AddInt32(&companyCalls, 1)
			return acmeCompany(), nil
		},
	}

	c := New(fake, "admin123")
	ctx := context.Background()

	c.Navigate(ctx, "/c/acme")
	c.Navigate(ctx, "/c/acme/ask")
	assert.Equal(t, int32(1), atomic.LoadInt32(&companyCalls))

	// Leaving the tenant prefix clears the cached company
	c.Navigate(ctx, "/")
	assert.Nil(t, c.Company())

	c.Navigate(ctx, "/c/acme")
	assert.Equal(t, int32(2), atomic.LoadInt32(&companyCalls))
}

func TestController_StaleFetchDiscarded(t *testing.T) {
	started := make(chan struct{})
	release := make(chan struct{})
	var calls int32

	fake := &fakeAPI{
		listQuestionsFn: func(apiclient.ID) ([]apiclient.Question, error) {
			if atomic.AddInt32(&calls, 1) == 1 {
				close(started)
				<-release
				return []apiclient.Question{{ID: "stale", Title: "Stale"}}, nil
			}
			return []apiclient.Question{{ID: "fresh", Title: "Fresh"}}, nil
		},
	}

	c := New(fake, "admin123")
	ctx := context.Background()

	done := make(chan struct{})
	go func() {
		c.Navigate(ctx, "/ask")
		close(done)
	}()

	// Second navigation lands while the first fetch is still in flight
	<-started
	c.Navigate(ctx, "/")
	close(release)
	<-done

	assert.Equal(t, ViewHome, c.View().Kind)
	questions := c.Questions()
	require.Len(t, questions, 1)
	assert.Equal(t, apiclient.ID("fresh"), questions[0].ID)
}

func TestController_PartialFailureKeepsPreviousData(t *testing.T) {
	questionsFail := false
	fake := &fakeAPI{
		listProgramsFn: func(apiclient.ID) ([]apiclient.Program, error) {
			return []apiclient.Program{{ID: "1", Name: "Health", IsOpen: true}}, nil
		},
		listQuestionsFn: func(apiclient.ID) ([]apiclient.Question, error) {
			if questionsFail {
				return nil, errors.New("connection refused")
			}
			return []apiclient.Question{{ID: "5", Title: "First"}}, nil
		},
	}

	c := New(fake, "admin123")
	ctx := context.Background()

	c.Navigate(ctx, "/")
	require.Len(t, c.Questions(), 1)
	assert.False(t, c.Loading())

	questionsFail = true
	c.Navigate(ctx, "/ask")

	// The failed read must not wipe the previously loaded questions
	require.Len(t, c.Questions(), 1)
	assert.Equal(t, apiclient.ID("5"), c.Questions()[0].ID)
	assert.Len(t, c.Programs(), 1)
	assert.False(t, c.Loading())
}

func TestController_LoadingGatesFirstFetchOnly(t *testing.T) {
	c := New(&fakeAPI{}, "admin123")
	assert.True(t, c.Loading())

	c.Navigate(context.Background(), "/")
	assert.False(t, c.Loading())
}

func TestController_SubmitQuestion_ScopesAndPrepends(t *testing.T) {
	fake := &fakeAPI{
		getCompanyFn: func(string) (*apiclient.Company, error) { return acmeCompany(), nil },
		listQuestionsFn: func(apiclient.ID) ([]apiclient.Question, error) {
			return []apiclient.Question{{ID: "1", Title: "Older", CompanyID: "7"}}, nil
		},
		createQuestionFn: func(req *apiclient.CreateQuestionRequest) (*apiclient.Question, error) {
			assert.Equal(t, apiclient.ID("7"), req.CompanyID)
			return &apiclient.Question{ID: "2", Title: req.Title, Text: req.Text, CompanyID: req.CompanyID}, nil
		},
	}

	c := New(fake, "admin123")
	ctx := context.Background()
	c.Navigate(ctx, "/c/acme/ask")

	created, err := c.SubmitQuestion(ctx, &apiclient.CreateQuestionRequest{Title: "New", Text: "Body"})
	require.NoError(t, err)
	assert.Equal(t, apiclient.ID("2"), created.ID)

	questions := c.Questions()
	require.Len(t, questions, 2)
	assert.Equal(t, apiclient.ID("2"), questions[0].ID)
}

func TestController_SubmitQuestion_RejectsClosedProgram(t *testing.T) {
	apiCalled := false
	fake := &fakeAPI{
		listProgramsFn: func(apiclient.ID) ([]apiclient.Program, error) {
			return []apiclient.Program{{ID: "3", Name: "Career Advice", IsOpen: false}}, nil
		},
		createQuestionFn: func(*apiclient.CreateQuestionRequest) (*apiclient.Question, error) {
			apiCalled = true
			return nil, nil
		},
	}

	c := New(fake, "admin123")
	ctx := context.Background()
	c.Navigate(ctx, "/ask")

	_, err := c.SubmitQuestion(ctx, &apiclient.CreateQuestionRequest{Title: "T", Text: "B", ProgramID: "3"})
	assert.ErrorIs(t, err, ErrProgramClosed)
	assert.False(t, apiCalled)
}

func TestController_SubmitQuestion_FailureLeavesStateUntouched(t *testing.T) {
	fake := &fakeAPI{
		listQuestionsFn: func(apiclient.ID) ([]apiclient.Question, error) {
			return []apiclient.Question{{ID: "1", Title: "Existing"}}, nil
		},
		createQuestionFn: func(*apiclient.CreateQuestionRequest) (*apiclient.Question, error) {
			return nil, &apiclient.APIError{StatusCode: 500, Message: "boom"}
		},
	}

	c := New(fake, "admin123")
	ctx := context.Background()
	c.Navigate(ctx, "/")

	_, err := c.SubmitQuestion(ctx, &apiclient.CreateQuestionRequest{Title: "New", Text: "B"})
	require.Error(t, err)
	require.Len(t, c.Questions(), 1)
	assert.Equal(t, apiclient.ID("1"), c.Questions()[0].ID)
}

func TestController_AnswerQuestion_ReplacesInPlace(t *testing.T) {
	fake := &fakeAPI{
		listQuestionsFn: func(apiclient.ID) ([]apiclient.Question, error) {
			return []apiclient.Question{
				{ID: "2", Title: "Newer"},
				{ID: "1", Title: "Why?"},
			}, nil
		},
		answerQuestionFn: func(id apiclient.ID, answer string) (*apiclient.Question, error) {
			return &apiclient.Question{ID: id, Title: "Why?", Answer: &answer}, nil
		},
	}

	c := New(fake, "admin123")
	ctx := context.Background()
	c.Navigate(ctx, "/admin")

	_, err := c.AnswerQuestion(ctx, "1", "Because.")
	require.NoError(t, err)

	questions := c.Questions()
	require.Len(t, questions, 2)
	assert.Equal(t, apiclient.ID("1"), questions[1].ID)
	require.NotNil(t, questions[1].Answer)
	assert.Equal(t, "Because.", *questions[1].Answer)
}

func TestController_CreateProgram_AppearsExactlyOnce(t *testing.T) {
	fake := &fakeAPI{
		createProgramFn: func(req *apiclient.CreateProgramRequest) (*apiclient.Program, error) {
			return &apiclient.Program{ID: "9", Name: req.Name, IsOpen: req.IsOpen}, nil
		},
	}

	c := New(fake, "admin123")
	ctx := context.Background()
	c.Navigate(ctx, "/admin")

	created, err := c.CreateProgram(ctx, &apiclient.CreateProgramRequest{Name: "Health", IsOpen: true})
	require.NoError(t, err)
	assert.True(t, created.IsOpen)

	programs := c.Programs()
	require.Len(t, programs, 1)
	assert.Equal(t, "Health", programs[0].Name)

	open := c.OpenPrograms()
	require.Len(t, open, 1)
	assert.Equal(t, apiclient.ID("9"), open[0].ID)
}

func TestController_ToggleProgramTwiceRestoresState(t *testing.T) {
	stored := apiclient.Program{ID: "3", Name: "Health", IsOpen: true}
	fake := &fakeAPI{
		listProgramsFn: func(apiclient.ID) ([]apiclient.Program, error) {
			p := stored
			return []apiclient.Program{p}, nil
		},
		updateProgramFn: func(id apiclient.ID, req *apiclient.UpdateProgramRequest) (*apiclient.Program, error) {
			if req.IsOpen != nil {
				stored.IsOpen = *req.IsOpen
			}
			p := stored
			return &p, nil
		},
	}

	c := New(fake, "admin123")
	ctx := context.Background()
	c.Navigate(ctx, "/admin")

	toggled, err := c.ToggleProgram(ctx, "3")
	require.NoError(t, err)
	assert.False(t, toggled.IsOpen)
	assert.Empty(t, c.OpenPrograms())

	restored, err := c.ToggleProgram(ctx, "3")
	require.NoError(t, err)
	assert.True(t, restored.IsOpen)

	programs := c.Programs()
	require.Len(t, programs, 1)
	assert.True(t, programs[0].IsOpen)
}

func TestController_ToggleUnknownProgram(t *testing.T) {
	c := New(&fakeAPI{}, "admin123")
	_, err := c.ToggleProgram(context.Background(), "404")
	assert.ErrorIs(t, err, ErrProgramUnknown)
}

func TestController_SignInScopesToTenant(t *testing.T) {
	fake := &fakeAPI{
		getCompanyFn: func(string) (*apiclient.Company, error) { return acmeCompany(), nil },
		signInFn: func(req *apiclient.GoogleSignInRequest) (*apiclient.User, error) {
			assert.Equal(t, apiclient.ID("7"), req.CompanyID)
			return &apiclient.User{ID: "1", Email: req.Email, Name: req.Name, Role: "user", CompanyID: req.CompanyID}, nil
		},
	}

	c := New(fake, "admin123")
	ctx := context.Background()
	c.Navigate(ctx, "/c/acme")

	user, err := c.SignIn(ctx, &apiclient.GoogleSignInRequest{Email: "jane@test.com", Name: "Jane"})
	require.NoError(t, err)
	assert.Equal(t, "jane@test.com", user.Email)
	require.NotNil(t, c.User())

	c.SignOut()
	assert.Nil(t, c.User())
}

func TestController_AdminLogin(t *testing.T) {
	c := New(&fakeAPI{}, "admin123")

	assert.False(t, c.AdminLogin("wrong"))
	assert.False(t, c.IsAdmin())

	assert.True(t, c.AdminLogin("admin123"))
	assert.True(t, c.IsAdmin())

	c.SignOut()
	assert.False(t, c.IsAdmin())
}

func TestController_NavigationHistory(t *testing.T) {
	c := New(&fakeAPI{}, "admin123")
	ctx := context.Background()

	c.Navigate(ctx, "/ask")
	c.Navigate(ctx, "/q/1")
	assert.Equal(t, "/q/1", c.Path())

	assert.True(t, c.Back(ctx))
	assert.Equal(t, "/ask", c.Path())
	assert.Equal(t, ViewAsk, c.View().Kind)

	assert.True(t, c.Forward(ctx))
	assert.Equal(t, ViewDetail, c.View().Kind)
}
