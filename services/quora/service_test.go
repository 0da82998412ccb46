package quora

import (
	"context"
	"net/http"
	"net/url"
	"testing"

	"quoraprofiler-backend/lib/telemetry"

	"github.com/stretchr/testify/require"
)

func newRecordingService(t *testing.T) (Service, *[]string) {
	queries := &[]string{}
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		*queries = append(*queries, r.URL.RawQuery)
		w.Write([]byte(`{}`))
	})
	return Service{client: client}, queries
}

func TestTransmittedQueryStrings(t *testing.T) {
	cleanup := telemetry.SetupForTesting(t, "test:quora")
	defer cleanup()

	questionUrl := "https://www.quora.com/Does-China-have-cars"

	testCases := []struct {
		name     string
		call     func(ctx context.Context, s Service) Result
		expected string
	}{
		{
			name: "search questions, no optionals",
			call: func(ctx context.Context, s Service) Result {
				return s.SearchQuestions(ctx, SearchQuestionsRequest{
					Query:    "cars",
					Language: "en",
				})
			},
			expected: "query=cars&language=en",
		},
		{
			name: "search questions, all optionals",
			call: func(ctx context.Context, s Service) Result {
				return s.SearchQuestions(ctx, SearchQuestionsRequest{
					Query:    "cars",
					Language: "en",
					Cursor:   "page2",
					Time:     "week",
				})
			},
			expected: "query=cars&language=en&cursor=page2&time=week",
		},
		{
			name: "search answers",
			call: func(ctx context.Context, s Service) Result {
				return s.SearchAnswers(ctx, SearchAnswersRequest{
					Query:    "electric cars",
					Language: "en",
					Time:     "month",
				})
			},
			expected: "query=electric+cars&language=en&time=month",
		},
		{
			name: "search profiles",
			call: func(ctx context.Context, s Service) Result {
				return s.SearchProfiles(ctx, SearchProfilesRequest{
					Query:    "cars",
					Language: "en",
					Cursor:   "abc",
				})
			},
			expected: "query=cars&language=en&cursor=abc",
		},
		{
			name: "question answers",
			call: func(ctx context.Context, s Service) Result {
				return s.QuestionAnswers(ctx, QuestionAnswersRequest{
					Url:  questionUrl,
					Sort: "recent",
				})
			},
			expected: "url=" + url.QueryEscape(questionUrl) + "&sort=recent",
		},
		{
			name: "question comments",
			call: func(ctx context.Context, s Service) Result {
				return s.QuestionComments(ctx, QuestionCommentsRequest{
					Url:    questionUrl,
					Cursor: "abc",
				})
			},
			expected: "url=" + url.QueryEscape(questionUrl) + "&cursor=abc",
		},
	}

	for _, test := range testCases {
		t.Run(test.name, func(t *testing.T) {
			service, queries := newRecordingService(t)

			result := test.call(context.Background(), service)
			require.True(t, result.Success)

			require.Len(t, *queries, 1)
			require.Equal(t, test.expected, (*queries)[0])
		})
	}
}

func TestParamsEncode(t *testing.T) {
	params := Params{
		{"query", "does china have cars?"},
		{"language", "en"},
	}
	require.Equal(t, "query=does+china+have+cars%3F&language=en", params.Encode())
	require.Equal(t, "", Params{}.Encode())
}
