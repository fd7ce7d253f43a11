package advisory

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func classify(t *testing.T, err error) *ServiceError {
	t.Helper()
	classified := ClassifyError(context.Background(), err)
	var svcErr *ServiceError
	require.ErrorAs(t, classified, &svcErr)
	return svcErr
}

func TestClassifyError_Kinds(t *testing.T) {
	cases := []struct {
		err  error
		want ErrorKind
	}{
		{fmt.Errorf("googleapi: Error 401: invalid authentication"), ErrAuth},
		{fmt.Errorf("API key not valid"), ErrAuth},
		{fmt.Errorf("googleapi: Error 429: RESOURCE_EXHAUSTED"), ErrRateLimit},
		{fmt.Errorf("quota exceeded for model"), ErrRateLimit},
		{fmt.Errorf("context deadline exceeded while dialing"), ErrTimeout},
		{fmt.Errorf("connection refused"), ErrNetwork},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, classify(t, tc.err).Kind, "error %v", tc.err)
	}
}

func TestClassifyError_ContextDeadlineWinsOverMessage(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), time.Nanosecond)
	defer cancel()
	<-ctx.Done()

	classified := ClassifyError(ctx, fmt.Errorf("connection refused"))
	var svcErr *ServiceError
	require.ErrorAs(t, classified, &svcErr)
	assert.Equal(t, ErrTimeout, svcErr.Kind)
}

func TestClassifyError_NilAndAlreadyClassified(t *testing.T) {
	assert.NoError(t, ClassifyError(context.Background(), nil))

	orig := &ServiceError{Kind: ErrAuth, Err: fmt.Errorf("boom")}
	assert.Same(t, error(orig), ClassifyError(context.Background(), orig))
}

func TestServiceError_Messages(t *testing.T) {
	cases := []struct {
		kind ErrorKind
		want string
	}{
		{ErrAuth, "invalid credentials"},
		{ErrRateLimit, "rate limited, retry later"},
		{ErrTimeout, "request timed out"},
		{ErrNetwork, "service unreachable"},
	}
	for _, tc := range cases {
		e := &ServiceError{Kind: tc.kind, Err: fmt.Errorf("cause")}
		assert.Contains(t, e.Error(), tc.want)
	}
}

func TestServiceError_Unwrap(t *testing.T) {
	cause := fmt.Errorf("cause")
	e := &ServiceError{Kind: ErrNetwork, Err: cause}
	assert.True(t, errors.Is(e, cause))
}
