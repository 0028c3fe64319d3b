package apiclient

import (
	"bytes"
	"encoding/json"
	"strconv"
	"time"
)

// ID is the canonical record identifier. The API emits numeric ids while
// older payloads carried a string "_id"; both forms normalize into this one
// type at the JSON boundary so comparisons never have to care about the
// field's origin.
type ID string

// IsZero reports whether the identifier is unset.
func (id ID) IsZero() bool { return id == "" }

func (id ID) String() string { return string(id) }

// UnmarshalJSON accepts both a JSON number and a JSON string.
func (id *ID) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 || string(data) == "null" {
		*id = ""
		return nil
	}
	if data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*id = ID(s)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return err
	}
	*id = ID(n.String())
	return nil
}

// MarshalJSON emits numeric identifiers as JSON numbers so the server's
// integer binding accepts them, and anything else as a string.
func (id ID) MarshalJSON() ([]byte, error) {
	if id == "" {
		return []byte("null"), nil
	}
	if _, err := strconv.ParseUint(string(id), 10, 64); err == nil {
		return []byte(id), nil
	}
	return json.Marshal(string(id))
}

// Company is a tenant record with its branding fields.
type Company struct {
	ID                 ID        `json:"id"`
	Name               string    `json:"name"`
	Slug               string    `json:"slug"`
	Logo               string    `json:"logo,omitempty"`
	PrimaryColor       string    `json:"primaryColor"`
	SecondaryColor     string    `json:"secondaryColor"`
	IsPro              bool      `json:"isPro"`
	SubscriptionStatus string    `json:"subscriptionStatus"`
	CreatedAt          time.Time `json:"createdAt"`
	UpdatedAt          time.Time `json:"updatedAt"`
}

// Program is a topic under which questions are asked.
type Program struct {
	ID          ID        `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description,omitempty"`
	IsOpen      bool      `json:"isOpen"`
	CompanyID   ID        `json:"companyId,omitempty"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

// UnmarshalJSON folds a legacy "_id" field into the canonical ID.
func (p *Program) UnmarshalJSON(data []byte) error {
	type alias Program
	aux := struct {
		LegacyID ID `json:"_id"`
		*alias
	}{alias: (*alias)(p)}
	if err := json.Unmarshal(data, &aux); err != nil {
		return err
	}
	if p.ID.IsZero() {
		p.ID = aux.LegacyID
	}
	return nil
}

// Question is a user-submitted question, optionally carrying an admin answer.
type Question struct {
	ID           ID         `json:"id"`
	Title        string     `json:"title"`
	Text         string     `json:"text"`
	AuthorName   string     `json:"authorName"`
	AuthorID     string     `json:"authorId,omitempty"`
	AuthorAvatar string     `json:"authorAvatar,omitempty"`
	Answer       *string    `json:"answer,omitempty"`
	AnsweredAt   *time.Time `json:"answeredAt,omitempty"`
	IsPublic     bool       `json:"isPublic"`
	ProgramID    ID         `json:"programId,omitempty"`
	CompanyID    ID         `json:"companyId,omitempty"`
	CreatedAt    time.Time  `json:"createdAt"`
	UpdatedAt    time.Time  `json:"updatedAt"`
}

// UnmarshalJSON folds a legacy "_id" field into the canonical ID.
func (q *Question) UnmarshalJSON(data []byte) error {
	type alias Question
	aux := struct {
		LegacyID ID `json:"_id"`
		*alias
	}{alias: (*alias)(q)}
	if err := json.Unmarshal(data, &aux); err != nil {
		return err
	}
	if q.ID.IsZero() {
		q.ID = aux.LegacyID
	}
	return nil
}

// User is the identity record returned by the sign-in upsert.
type User struct {
	ID        ID        `json:"id"`
	Email     string    `json:"email"`
	Name      string    `json:"name"`
	Picture   string    `json:"picture,omitempty"`
	GoogleID  string    `json:"googleId,omitempty"`
	Role      string    `json:"role"`
	CompanyID ID        `json:"companyId,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// CreateCompanyRequest registers a new tenant.
type CreateCompanyRequest struct {
	Name               string `json:"name"`
	Slug               string `json:"slug"`
	Logo               string `json:"logo,omitempty"`
	PrimaryColor       string `json:"primaryColor,omitempty"`
	SecondaryColor     string `json:"secondaryColor,omitempty"`
	IsPro              bool   `json:"isPro,omitempty"`
	SubscriptionStatus string `json:"subscriptionStatus,omitempty"`
}

// GoogleSignInRequest carries the profile fields for the identity upsert.
type GoogleSignInRequest struct {
	Email     string `json:"email"`
	Name      string `json:"name"`
	Picture   string `json:"picture,omitempty"`
	GoogleID  string `json:"googleId,omitempty"`
	CompanyID ID     `json:"companyId,omitempty"`
}

// CreateProgramRequest creates a new topic.
type CreateProgramRequest struct {
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
	IsOpen      bool   `json:"isOpen"`
	CompanyID   ID     `json:"companyId,omitempty"`
}

// UpdateProgramRequest is a partial topic update; nil fields are left as-is.
type UpdateProgramRequest struct {
	Name        *string `json:"name,omitempty"`
	Description *string `json:"description,omitempty"`
	IsOpen      *bool   `json:"isOpen,omitempty"`
}

// CreateQuestionRequest submits a new question.
type CreateQuestionRequest struct {
	Title        string `json:"title"`
	Text         string `json:"text"`
	AuthorName   string `json:"authorName,omitempty"`
	AuthorID     string `json:"authorId,omitempty"`
	AuthorAvatar string `json:"authorAvatar,omitempty"`
	IsPublic     bool   `json:"isPublic"`
	ProgramID    ID     `json:"programId,omitempty"`
	CompanyID    ID     `json:"companyId,omitempty"`
}

// AnswerQuestionRequest sets the answer text on a question.
type AnswerQuestionRequest struct {
	Answer string `json:"answer"`
}
