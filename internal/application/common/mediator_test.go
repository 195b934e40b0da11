package common_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/andrescamacho/waldolaw-go/internal/application/common"
)

type pingQuery struct{ Value string }

type recordingLogger struct {
	levels   []string
	messages []string
}

func (l *recordingLogger) Log(level, message string, metadata map[string]interface{}) {
	l.levels = append(l.levels, level)
	l.messages = append(l.messages, message)
}

type pingHandler struct {
	err error
}

func (h *pingHandler) Handle(ctx context.Context, request common.Request) (common.Response, error) {
	if h.err != nil {
		return nil, h.err
	}
	return "pong:" + request.(*pingQuery).Value, nil
}

func TestMediator_DispatchesByType(t *testing.T) {
	// Arrange
	m := common.NewMediator()
	require.NoError(t, common.RegisterHandler[*pingQuery](m, &pingHandler{}))

	// Act
	response, err := m.Send(context.Background(), &pingQuery{Value: "a"})

	// Assert
	require.NoError(t, err)
	assert.Equal(t, "pong:a", response)
}

func TestMediator_RejectsDuplicateAndUnknown(t *testing.T) {
	m := common.NewMediator()
	require.NoError(t, common.RegisterHandler[*pingQuery](m, &pingHandler{}))

	assert.Error(t, common.RegisterHandler[*pingQuery](m, &pingHandler{}))
	_, err := m.Send(context.Background(), &struct{}{})
	assert.Error(t, err)
	_, err = m.Send(context.Background(), nil)
	assert.Error(t, err)
}

func TestMediator_MiddlewaresRunInRegistrationOrder(t *testing.T) {
	// Arrange
	m := common.NewMediator()
	require.NoError(t, common.RegisterHandler[*pingQuery](m, &pingHandler{}))
	var order []string
	trace := func(name string) common.Middleware {
		return func(ctx context.Context, request common.Request, next common.HandlerFunc) (common.Response, error) {
			order = append(order, name+":in")
			response, err := next(ctx, request)
			order = append(order, name+":out")
			return response, err
		}
	}
	m.Use(trace("outer"))
	m.Use(trace("inner"))

	// Act
	_, err := m.Send(context.Background(), &pingQuery{})

	// Assert
	require.NoError(t, err)
	assert.Equal(t, []string{"outer:in", "inner:in", "inner:out", "outer:out"}, order)
}

func TestLoggingMiddleware_LogsFailures(t *testing.T) {
	// Arrange
	logger := &recordingLogger{}
	ctx := common.WithLogger(context.Background(), logger)
	m := common.NewMediator()
	require.NoError(t, common.RegisterHandler[*pingQuery](m, &pingHandler{err: errors.New("boom")}))
	m.Use(common.LoggingMiddleware())

	// Act
	_, err := m.Send(ctx, &pingQuery{})

	// Assert
	assert.Error(t, err)
	assert.Equal(t, []string{common.LevelError}, logger.levels)
	assert.Equal(t, []string{"request failed"}, logger.messages)
}

func TestRequestName(t *testing.T) {
	assert.Equal(t, "pingQuery", common.RequestName(&pingQuery{}))
	assert.Equal(t, "UnknownRequest", common.RequestName(nil))
}

func TestContextValues(t *testing.T) {
	ctx := common.WithRunID(context.Background(), "run-1")

	assert.Equal(t, "run-1", common.RunIDFromContext(ctx))
	assert.Equal(t, "", common.RunIDFromContext(context.Background()))
	assert.NotNil(t, common.LoggerFromContext(context.Background()))
}
