package quora

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
)

// RegisterHandlers mounts one GET route per endpoint function on the
// mux. Responses are always a Result encoded as JSON, the http status
// mirrors Result.Status. Nothing is ever raised across this boundary,
// a panicking handler is turned into a 500 Result.
func RegisterHandlers(mux *http.ServeMux, s Service) {
	mux.HandleFunc("GET /search_questions", guard(func(w http.ResponseWriter, r *http.Request) {
		query := r.URL.Query()
		if result, ok := requireParams(query, "query", "language"); !ok {
			writeResult(r, w, result)
			return
		}
		writeResult(r, w, s.SearchQuestions(r.Context(), SearchQuestionsRequest{
			Query:    query.Get("query"),
			Language: query.Get("language"),
			Cursor:   query.Get("cursor"),
			Time:     query.Get("time"),
		}))
	}))

	mux.HandleFunc("GET /search_answers", guard(func(w http.ResponseWriter, r *http.Request) {
		query := r.URL.Query()
		if result, ok := requireParams(query, "query", "language"); !ok {
			writeResult(r, w, result)
			return
		}
		writeResult(r, w, s.SearchAnswers(r.Context(), SearchAnswersRequest{
			Query:    query.Get("query"),
			Language: query.Get("language"),
			Cursor:   query.Get("cursor"),
			Time:     query.Get("time"),
		}))
	}))

	mux.HandleFunc("GET /search_profiles", guard(func(w http.ResponseWriter, r *http.Request) {
		query := r.URL.Query()
		if result, ok := requireParams(query, "query", "language"); !ok {
			writeResult(r, w, result)
			return
		}
		writeResult(r, w, s.SearchProfiles(r.Context(), SearchProfilesRequest{
			Query:    query.Get("query"),
			Language: query.Get("language"),
			Cursor:   query.Get("cursor"),
		}))
	}))

	mux.HandleFunc("GET /question_answers", guard(func(w http.ResponseWriter, r *http.Request) {
		query := r.URL.Query()
		if result, ok := requireParams(query, "url"); !ok {
			writeResult(r, w, result)
			return
		}
		writeResult(r, w, s.QuestionAnswers(r.Context(), QuestionAnswersRequest{
			Url:    query.Get("url"),
			Cursor: query.Get("cursor"),
			Sort:   query.Get("sort"),
		}))
	}))

	mux.HandleFunc("GET /question_comments", guard(func(w http.ResponseWriter, r *http.Request) {
		query := r.URL.Query()
		if result, ok := requireParams(query, "url"); !ok {
			writeResult(r, w, result)
			return
		}
		writeResult(r, w, s.QuestionComments(r.Context(), QuestionCommentsRequest{
			Url:    query.Get("url"),
			Cursor: query.Get("cursor"),
		}))
	}))
}

func requireParams(query url.Values, names ...string) (Result, bool) {
	for _, name := range names {
		if query.Get(name) == "" {
			return errorResult(
				http.StatusBadRequest,
				fmt.Sprintf("missing required parameter: %s", name),
				nil,
			), false
		}
	}
	return Result{}, true
}

func writeResult(r *http.Request, w http.ResponseWriter, result Result) {
	w.Header().Set("content-type", "application/json")
	w.WriteHeader(result.Status)
	err := json.NewEncoder(w).Encode(result)
	if err != nil {
		slog.ErrorContext(r.Context(), "failed to encode result", "err", err)
	}
}

func guard(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			recovered := recover()
			if recovered == nil {
				return
			}
			slog.ErrorContext(
				r.Context(), "endpoint panicked",
				"path", r.URL.Path,
				"err", recovered,
			)
			writeResult(r, w, errorResult(
				http.StatusInternalServerError,
				"internal error",
				map[string]string{"error": fmt.Sprint(recovered)},
			))
		}()
		next(w, r)
	}
}
