package apiclient

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestID_UnmarshalJSON(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected ID
	}{
		{"numeric id", `42`, ID("42")},
		{"string id", `"abc123"`, ID("abc123")},
		{"null id", `null`, ID("")},
		{"numeric string id", `"7"`, ID("7")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var id ID
			err := json.Unmarshal([]byte(tt.input), &id)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, id)
		})
	}
}

func TestID_MarshalJSON(t *testing.T) {
	numeric, err := json.Marshal(ID("42"))
	require.NoError(t, err)
	assert.Equal(t, `42`, string(numeric))

	str, err := json.Marshal(ID("abc123"))
	require.NoError(t, err)
	assert.Equal(t, `"abc123"`, string(str))

	empty, err := json.Marshal(ID(""))
	require.NoError(t, err)
	assert.Equal(t, `null`, string(empty))
}

func TestQuestion_UnmarshalJSON_LegacyID(t *testing.T) {
	var q Question
	err := json.Unmarshal([]byte(`{"_id": "legacy-9", "title": "T", "text": "B"}`), &q)
	require.NoError(t, err)
	assert.Equal(t, ID("legacy-9"), q.ID)

	// Canonical id wins when both are present
	var q2 Question
	err = json.Unmarshal([]byte(`{"id": 5, "_id": "legacy-9", "title": "T"}`), &q2)
	require.NoError(t, err)
	assert.Equal(t, ID("5"), q2.ID)
}

func TestProgram_UnmarshalJSON_LegacyID(t *testing.T) {
	var p Program
	err := json.Unmarshal([]byte(`{"_id": 3, "name": "Health", "isOpen": true}`), &p)
	require.NoError(t, err)
	assert.Equal(t, ID("3"), p.ID)
	assert.True(t, p.IsOpen)
}

func TestClient_GetCompanyBySlug(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/api/companies/acme", r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"id": 1, "name": "Acme", "slug": "acme", "primaryColor": "#ea580c", "secondaryColor": "#9a3412"}`))
	}))
	defer server.Close()

	client := NewClient(server.URL)
	company, err := client.GetCompanyBySlug(context.Background(), "acme")
	require.NoError(t, err)
	assert.Equal(t, ID("1"), company.ID)
	assert.Equal(t, "acme", company.Slug)
	assert.Equal(t, "#ea580c", company.PrimaryColor)
}

func TestClient_GetCompanyBySlug_NotFound(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusNotFound)
		_, _ = w.Write([]byte(`{"message": "Company not found"}`))
	}))
	defer server.Close()

	client := NewClient(server.URL)
	company, err := client.GetCompanyBySlug(context.Background(), "missing")
	require.Error(t, err)
	assert.Nil(t, company)
	assert.True(t, IsNotFound(err))

	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusNotFound, apiErr.StatusCode)
	assert.Equal(t, "Company not found", apiErr.Message)
}

func TestClient_ListQuestions_ScopeParam(t *testing.T) {
	var gotQuery string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotQuery = r.URL.RawQuery
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`[{"id": 2, "title": "Second"}, {"id": 1, "title": "First"}]`))
	}))
	defer server.Close()

	client := NewClient(server.URL)

	questions, err := client.ListQuestions(context.Background(), ID("7"))
	require.NoError(t, err)
	assert.Equal(t, "companyId=7", gotQuery)
	require.Len(t, questions, 2)
	assert.Equal(t, ID("2"), questions[0].ID)

	// No scope omits the parameter entirely
	_, err = client.ListQuestions(context.Background(), "")
	require.NoError(t, err)
	assert.Equal(t, "", gotQuery)
}

func TestClient_CreateQuestion_SendsNumericCompanyID(t *testing.T) {
	var gotBody map[string]interface{}
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotBody))
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"id": 10, "title": "New", "text": "Body", "companyId": 7}`))
	}))
	defer server.Close()

	client := NewClient(server.URL)
	question, err := client.CreateQuestion(context.Background(), &CreateQuestionRequest{
		Title:     "New",
		Text:      "Body",
		CompanyID: ID("7"),
	})
	require.NoError(t, err)
	assert.Equal(t, ID("10"), question.ID)

	// Numeric ids must go over the wire as JSON numbers
	assert.Equal(t, float64(7), gotBody["companyId"])
}

func TestClient_AnswerQuestion(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPatch, r.Method)
		assert.Equal(t, "/api/questions/5/answer", r.URL.Path)

		var body AnswerQuestionRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, "Because.", body.Answer)

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"id": 5, "title": "Why?", "answer": "Because.", "answeredAt": "2026-08-28T10:00:00Z"}`))
	}))
	defer server.Close()

	client := NewClient(server.URL)
	question, err := client.AnswerQuestion(context.Background(), ID("5"), "Because.")
	require.NoError(t, err)
	require.NotNil(t, question.Answer)
	assert.Equal(t, "Because.", *question.Answer)
	require.NotNil(t, question.AnsweredAt)
}

func TestClient_UpdateProgram_PartialBody(t *testing.T) {
	var gotBody map[string]interface{}
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPatch, r.Method)
		assert.Equal(t, "/api/programs/3", r.URL.Path)
		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotBody))
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"id": 3, "name": "Health", "isOpen": false}`))
	}))
	defer server.Close()

	client := NewClient(server.URL)
	closed := false
	program, err := client.UpdateProgram(context.Background(), ID("3"), &UpdateProgramRequest{IsOpen: &closed})
	require.NoError(t, err)
	assert.False(t, program.IsOpen)

	// Unset fields stay out of the PATCH body
	assert.Equal(t, map[string]interface{}{"isOpen": false}, gotBody)
}

func TestClient_GoogleSignIn(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/auth/google", r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"id": 1, "email": "jane@test.com", "name": "Jane", "role": "user"}`))
	}))
	defer server.Close()

	client := NewClient(server.URL)
	user, err := client.GoogleSignIn(context.Background(), &GoogleSignInRequest{Email: "jane@test.com", Name: "Jane"})
	require.NoError(t, err)
	assert.Equal(t, "jane@test.com", user.Email)
	assert.Equal(t, "user", user.Role)
}
