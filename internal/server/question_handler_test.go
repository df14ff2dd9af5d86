package server

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"connectrpc.com/connect"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"google.golang.org/genproto/googleapis/rpc/errdetails"

	mock_session "github.com/at-ishikawa/samarth/internal/mocks/session"
	"github.com/at-ishikawa/samarth/internal/qa"
)

func newTestClient(t *testing.T, asker *mock_session.MockAsker) *QuestionServiceClient {
	t.Helper()

	handler, err := NewQuestionHandler(asker)
	require.NoError(t, err)

	srv := httptest.NewServer(NewHTTPHandler(handler, []string{"http://localhost:3000"}))
	t.Cleanup(srv.Close)
	return NewQuestionServiceClient(srv.Client(), srv.URL)
}

func TestQuestionHandler_Ask(t *testing.T) {
	tests := []struct {
		name        string
		question    string
		setupMock   func(m *mock_session.MockAsker)
		want        *AskResponse
		wantCode    connect.Code
		wantMessage string
		wantReason  string
		wantField   string
	}{
		{
			name:     "returns the answer",
			question: "  What is the wheat MSP?  ",
			setupMock: func(m *mock_session.MockAsker) {
				m.EXPECT().Ask(gomock.Any(), "What is the wheat MSP?").Return(qa.Result{
					Analysis:      "Wheat MSP is 2275.",
					SummaryPoints: []string{"Point A", "Point B"},
					Sources: []qa.Source{
						{SourceName: "agmarknet.gov.in", Description: "https://agmarknet.gov.in/x"},
					},
				}, nil)
			},
			want: &AskResponse{
				Analysis:      "Wheat MSP is 2275.",
				SummaryPoints: []string{"Point A", "Point B"},
				Sources: []qa.Source{
					{SourceName: "agmarknet.gov.in", Description: "https://agmarknet.gov.in/x"},
				},
			},
		},
		{
			name:        "returns INVALID_ARGUMENT for an empty question",
			question:    "",
			setupMock:   func(m *mock_session.MockAsker) {},
			wantCode:    connect.CodeInvalidArgument,
			wantMessage: "question must not be empty",
			wantField:   "question",
		},
		{
			name:        "returns INVALID_ARGUMENT for a whitespace question",
			question:    " \n\t ",
			setupMock:   func(m *mock_session.MockAsker) {},
			wantCode:    connect.CodeInvalidArgument,
			wantMessage: "question must not be empty",
			wantField:   "question",
		},
		{
			name:     "returns FAILED_PRECONDITION for an invalid credential",
			question: "Rainfall in Kerala",
			setupMock: func(m *mock_session.MockAsker) {
				m.EXPECT().Ask(gomock.Any(), "Rainfall in Kerala").Return(qa.Result{}, &qa.Error{
					Kind: qa.KindInvalidCredential,
					Err:  errors.New("API key not valid"),
				})
			},
			wantCode:    connect.CodeFailedPrecondition,
			wantMessage: "Your API key is not valid. Please check your configuration.",
			wantReason:  "INVALID_CREDENTIAL",
		},
		{
			name:     "returns UNAVAILABLE when the model gives no valid response",
			question: "Rainfall in Kerala",
			setupMock: func(m *mock_session.MockAsker) {
				m.EXPECT().Ask(gomock.Any(), "Rainfall in Kerala").Return(qa.Result{}, &qa.Error{
					Kind: qa.KindNoValidResponse,
					Err:  errors.New("response error 500"),
				})
			},
			wantCode:    connect.CodeUnavailable,
			wantMessage: "Failed to get a valid response from the AI model. The model may be unable to find relevant information for your query.",
			wantReason:  "NO_VALID_RESPONSE",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			asker := mock_session.NewMockAsker(ctrl)
			tt.setupMock(asker)
			client := newTestClient(t, asker)

			resp, err := client.Ask(context.Background(), connect.NewRequest(&AskRequest{
				Question: tt.question,
			}))
			if tt.want != nil {
				require.NoError(t, err)
				assert.Equal(t, tt.want, resp.Msg)
				return
			}

			require.Error(t, err)
			var connectErr *connect.Error
			require.True(t, errors.As(err, &connectErr))
			assert.Equal(t, tt.wantCode, connectErr.Code())
			assert.Equal(t, tt.wantMessage, connectErr.Message())

			require.Len(t, connectErr.Details(), 1)
			detail, err := connectErr.Details()[0].Value()
			require.NoError(t, err)
			switch d := detail.(type) {
			case *errdetails.BadRequest:
				require.Len(t, d.GetFieldViolations(), 1)
				assert.Equal(t, tt.wantField, d.GetFieldViolations()[0].GetField())
			case *errdetails.ErrorInfo:
				assert.Equal(t, tt.wantReason, d.GetReason())
				assert.Equal(t, "samarth", d.GetDomain())
			default:
				t.Fatalf("unexpected detail type %T", detail)
			}
		})
	}
}

func TestQuestionHandler_Ask_UnknownError(t *testing.T) {
	ctrl := gomock.NewController(t)
	asker := mock_session.NewMockAsker(ctrl)
	asker.EXPECT().Ask(gomock.Any(), "q").Return(qa.Result{}, errors.New("boom"))

	handler, err := NewQuestionHandler(asker)
	require.NoError(t, err)

	resp, err := handler.Ask(context.Background(), connect.NewRequest(&AskRequest{Question: "q"}))
	assert.Nil(t, resp)
	var connectErr *connect.Error
	require.True(t, errors.As(err, &connectErr))
	assert.Equal(t, connect.CodeInternal, connectErr.Code())
}

func TestCORSMiddleware(t *testing.T) {
	tests := []struct {
		name           string
		method         string
		origin         string
		allowedOrigins []string
		wantStatus     int
		wantAllowed    string
	}{
		{
			name:           "preflight from an allowed origin",
			method:         http.MethodOptions,
			origin:         "http://localhost:3000",
			allowedOrigins: []string{"http://localhost:3000"},
			wantStatus:     http.StatusNoContent,
			wantAllowed:    "http://localhost:3000",
		},
		{
			name:           "preflight from another origin",
			method:         http.MethodOptions,
			origin:         "https://evil.example",
			allowedOrigins: []string{"http://localhost:3000"},
			wantStatus:     http.StatusNoContent,
			wantAllowed:    "",
		},
		{
			name:           "wildcard allows any origin",
			method:         http.MethodPost,
			origin:         "https://samarth.example",
			allowedOrigins: []string{"*"},
			wantStatus:     http.StatusOK,
			wantAllowed:    "https://samarth.example",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(http.StatusOK)
			})
			req := httptest.NewRequest(tt.method, "/samarth.v1.QuestionService/Ask", nil)
			req.Header.Set("Origin", tt.origin)
			rec := httptest.NewRecorder()

			CORSMiddleware(tt.allowedOrigins, next).ServeHTTP(rec, req)

			assert.Equal(t, tt.wantStatus, rec.Code)
			assert.Equal(t, tt.wantAllowed, rec.Header().Get("Access-Control-Allow-Origin"))
		})
	}
}

func TestJSONCodec(t *testing.T) {
	codec := jsonCodec{}
	assert.Equal(t, "json", codec.Name())

	data, err := codec.Marshal(&AskRequest{Question: "Rainfall?"})
	require.NoError(t, err)
	assert.JSONEq(t, `{"question":"Rainfall?"}`, string(data))

	var got AskRequest
	require.NoError(t, codec.Unmarshal(data, &got))
	assert.Equal(t, "Rainfall?", got.Question)
	assert.Error(t, codec.Unmarshal([]byte("{"), &got))
}
