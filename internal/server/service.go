package server

import (
	"context"
	"net/http"

	"connectrpc.com/connect"

	"github.com/at-ishikawa/samarth/internal/qa"
)

const (
	QuestionServiceName = "samarth.v1.QuestionService"

	QuestionServiceAskProcedure = "/samarth.v1.QuestionService/Ask"
)

type AskRequest struct {
	Question string `json:"question" validate:"notblank"`
}

type AskResponse struct {
	Analysis      string      `json:"analysis"`
	SummaryPoints []string    `json:"summaryPoints"`
	Sources       []qa.Source `json:"sources"`
}

type QuestionServiceHandler interface {
	Ask(context.Context, *connect.Request[AskRequest]) (*connect.Response[AskResponse], error)
}

// NewQuestionServiceHandler returns the path to mount the handler on and the handler itself
func NewQuestionServiceHandler(svc QuestionServiceHandler, opts ...connect.HandlerOption) (string, http.Handler) {
	opts = append([]connect.HandlerOption{connect.WithCodec(jsonCodec{})}, opts...)
	askHandler := connect.NewUnaryHandler(
		QuestionServiceAskProcedure,
		svc.Ask,
		opts...,
	)
	return "/" + QuestionServiceName + "/", http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case QuestionServiceAskProcedure:
			askHandler.ServeHTTP(w, r)
		default:
			http.NotFound(w, r)
		}
	})
}

type QuestionServiceClient struct {
	ask *connect.Client[AskRequest, AskResponse]
}

func NewQuestionServiceClient(httpClient connect.HTTPClient, baseURL string, opts ...connect.ClientOption) *QuestionServiceClient {
	opts = append([]connect.ClientOption{connect.WithCodec(jsonCodec{})}, opts...)
	return &QuestionServiceClient{
		ask: connect.NewClient[AskRequest, AskResponse](
			httpClient,
			baseURL+QuestionServiceAskProcedure,
			opts...,
		),
	}
}

func (c *QuestionServiceClient) Ask(ctx context.Context, req *connect.Request[AskRequest]) (*connect.Response[AskResponse], error) {
	return c.ask.CallUnary(ctx, req)
}
