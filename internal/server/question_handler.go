// Package server provides the Connect RPC handler for the question service.
package server

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"reflect"
	"strings"

	"connectrpc.com/connect"
	"github.com/go-playground/validator/v10"
	"github.com/go-playground/validator/v10/non-standard/validators"
	"google.golang.org/genproto/googleapis/rpc/errdetails"
	"google.golang.org/protobuf/proto"

	"github.com/at-ishikawa/samarth/internal/qa"
	"github.com/at-ishikawa/samarth/internal/session"
)

const errorDomain = "samarth"

// QuestionHandler implements QuestionServiceHandler. Every call goes straight to the asker.
type QuestionHandler struct {
	asker    session.Asker
	validate *validator.Validate
}

func NewQuestionHandler(asker session.Asker) (*QuestionHandler, error) {
	validate := validator.New()
	validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
		return strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
	})
	if err := validate.RegisterValidation("notblank", validators.NotBlank); err != nil {
		return nil, fmt.Errorf("failed to register notblank validation: %w", err)
	}
	return &QuestionHandler{
		asker:    asker,
		validate: validate,
	}, nil
}

func (h *QuestionHandler) Ask(
	ctx context.Context,
	req *connect.Request[AskRequest],
) (*connect.Response[AskResponse], error) {
	if err := h.validateRequest(req.Msg); err != nil {
		return nil, err
	}

	result, err := h.asker.Ask(ctx, strings.TrimSpace(req.Msg.Question))
	if err != nil {
		slog.Default().Error("failed to answer a question",
			slog.String("procedure", req.Spec().Procedure),
			slog.Any("error", err),
		)
		return nil, toConnectError(err)
	}

	return connect.NewResponse(&AskResponse{
		Analysis:      result.Analysis,
		SummaryPoints: result.SummaryPoints,
		Sources:       result.Sources,
	}), nil
}

func (h *QuestionHandler) validateRequest(msg *AskRequest) *connect.Error {
	err := h.validate.Struct(msg)
	if err == nil {
		return nil
	}

	connectErr := connect.NewError(connect.CodeInvalidArgument, errors.New("question must not be empty"))
	var validationErrors validator.ValidationErrors
	if errors.As(err, &validationErrors) {
		var fieldViolations []*errdetails.BadRequest_FieldViolation
		for _, fe := range validationErrors {
			fieldViolations = append(fieldViolations, &errdetails.BadRequest_FieldViolation{
				Field:       fe.Field(),
				Description: fmt.Sprintf("%s must not be blank", fe.Field()),
			})
		}
		addDetail(connectErr, &errdetails.BadRequest{FieldViolations: fieldViolations})
	}
	return connectErr
}

func toConnectError(err error) *connect.Error {
	var qaErr *qa.Error
	if !errors.As(err, &qaErr) {
		return connect.NewError(connect.CodeInternal, errors.New(qa.UserMessage(err)))
	}

	code := connect.CodeUnavailable
	reason := "NO_VALID_RESPONSE"
	if qaErr.Kind == qa.KindInvalidCredential {
		code = connect.CodeFailedPrecondition
		reason = "INVALID_CREDENTIAL"
	}

	connectErr := connect.NewError(code, errors.New(qaErr.UserMessage()))
	addDetail(connectErr, &errdetails.ErrorInfo{
		Reason: reason,
		Domain: errorDomain,
	})
	return connectErr
}

func addDetail(connectErr *connect.Error, msg proto.Message) {
	detail, err := connect.NewErrorDetail(msg)
	if err != nil {
		slog.Default().Warn("failed to create an error detail", slog.Any("error", err))
		return
	}
	connectErr.AddDetail(detail)
}
