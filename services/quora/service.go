package quora

import (
	"context"
	"net/http"
)

// Service exposes one endpoint function per supported upstream
// operation. Every function returns a Result, never an error.
type Service struct {
	client *Client
}

func NewService(cfg Config) Service {
	return Service{client: NewClient(cfg)}
}

type SearchQuestionsRequest struct {
	Query    string
	Language string
	// pagination cursor, forwarded verbatim when non-empty
	Cursor string
	// time filter enum, forwarded verbatim when non-empty
	Time string
}

// Search for questions across Quora.
func (s Service) SearchQuestions(ctx context.Context, req SearchQuestionsRequest) Result {
	params := Params{
		{"query", req.Query},
		{"language", req.Language},
	}
	if req.Cursor != "" {
		params = append(params, Param{"cursor", req.Cursor})
	}
	if req.Time != "" {
		params = append(params, Param{"time", req.Time})
	}
	return s.client.Execute(ctx, http.MethodGet, "/search_questions", params)
}

type SearchAnswersRequest struct {
	Query    string
	Language string
	Cursor   string
	Time     string
}

// Search for answers across Quora.
func (s Service) SearchAnswers(ctx context.Context, req SearchAnswersRequest) Result {
	params := Params{
		{"query", req.Query},
		{"language", req.Language},
	}
	if req.Cursor != "" {
		params = append(params, Param{"cursor", req.Cursor})
	}
	if req.Time != "" {
		params = append(params, Param{"time", req.Time})
	}
	return s.client.Execute(ctx, http.MethodGet, "/search_answers", params)
}

type SearchProfilesRequest struct {
	Query    string
	Language string
	Cursor   string
}

// Search for user profiles across Quora.
func (s Service) SearchProfiles(ctx context.Context, req SearchProfilesRequest) Result {
	params := Params{
		{"query", req.Query},
		{"language", req.Language},
	}
	if req.Cursor != "" {
		params = append(params, Param{"cursor", req.Cursor})
	}
	return s.client.Execute(ctx, http.MethodGet, "/search_profiles", params)
}

type QuestionAnswersRequest struct {
	// full Quora question URL, e.g. https://www.quora.com/Does-China-have-cars
	Url    string
	Cursor string
	// sort order enum, forwarded verbatim when non-empty
	Sort string
}

// Get the answers of a specific question.
func (s Service) QuestionAnswers(ctx context.Context, req QuestionAnswersRequest) Result {
	params := Params{
		{"url", req.Url},
	}
	if req.Cursor != "" {
		params = append(params, Param{"cursor", req.Cursor})
	}
	if req.Sort != "" {
		params = append(params, Param{"sort", req.Sort})
	}
	return s.client.Execute(ctx, http.MethodGet, "/question_answers", params)
}

type QuestionCommentsRequest struct {
	Url    string
	Cursor string
}

// Get the comments of a specific question.
func (s Service) QuestionComments(ctx context.Context, req QuestionCommentsRequest) Result {
	params := Params{
		{"url", req.Url},
	}
	if req.Cursor != "" {
		params = append(params, Param{"cursor", req.Cursor})
	}
	return s.client.Execute(ctx, http.MethodGet, "/question_comments", params)
}
