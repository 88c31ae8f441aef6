package repository_test

import (
	"context"
	"errors"
	"io/fs"
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/PnX-SI/gn-mobile-core-sub003/internal/database"
	"github.com/PnX-SI/gn-mobile-core-sub003/internal/failure"
	"github.com/PnX-SI/gn-mobile-core-sub003/internal/logger"
	"github.com/PnX-SI/gn-mobile-core-sub003/internal/remote"
	"github.com/PnX-SI/gn-mobile-core-sub003/internal/repository"
)

func TestMapError(t *testing.T) {
	t.Parallel()

	pathErr := &fs.PathError{Op: "open", Path: "/data/inputs/input_1.json", Err: fs.ErrPermission}
	corrupt := &database.CorruptInputError{ID: 4, Path: "/data/inputs/input_4.json", Err: errors.New("unexpected end of JSON input")}
	urlErr := &url.Error{Op: "Get", URL: "https://demo.geonature.fr", Err: errors.New("connection refused")}

	tests := []struct {
		name string
		err  error
		want failure.Failure
	}{
		{name: "failure passes through", err: failure.SettingsNotFoundFailure{Source: failure.SourceLocal}, want: failure.SettingsNotFoundFailure{Source: failure.SourceLocal}},
		{name: "transport", err: urlErr, want: failure.NetworkFailure{Reason: urlErr.Error()}},
		{name: "deadline", err: context.DeadlineExceeded, want: failure.NetworkFailure{Reason: context.DeadlineExceeded.Error()}},
		{name: "server error", err: &remote.StatusError{StatusCode: 503}, want: failure.ServerFailure{}},
		{name: "unauthorized", err: &remote.StatusError{StatusCode: 401}, want: failure.AuthNotConnectedFailure{}},
		{name: "bad payload", err: &remote.DecodeError{Err: errors.New("eof")}, want: failure.ServerFailure{}},
		{name: "file I/O", err: pathErr, want: failure.InputIOFailure{Cause: pathErr}},
		{name: "corrupt input", err: corrupt, want: failure.InputIOFailure{Cause: corrupt}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, repository.MapError(logger.NewNop(), "test", tt.err))
		})
	}
}

func TestMapError_UnmappedIsLogged(t *testing.T) {
	t.Parallel()

	core, logs := observer.New(zapcore.ErrorLevel)
	log := logger.NewFromZap(zap.New(core))
	weird := errors.New("weird")

	got := repository.MapError(log, "get_weird", weird)

	assert.Equal(t, failure.StorageFailure{Cause: weird}, got)
	require.Equal(t, 1, logs.Len())
	entry := logs.All()[0]
	assert.Equal(t, "get_weird", entry.ContextMap()["operation"])
	assert.Equal(t, "*errors.errorString", entry.ContextMap()["error_type"])
}

func TestMapError_FeatureMapperWins(t *testing.T) {
	t.Parallel()

	mapper := func(err error) (failure.Failure, bool) {
		return failure.TaxonNotFoundFailure{ID: 9}, true
	}
	got := repository.MapError(logger.NewNop(), "test", &remote.StatusError{StatusCode: 500}, mapper)
	assert.Equal(t, failure.TaxonNotFoundFailure{ID: 9}, got)
}

func TestGuard_RecoversPanic(t *testing.T) {
	t.Parallel()

	res := repository.Guard(context.Background(), logger.NewNop(), "boom", func(context.Context) (int, error) {
		panic("nil map")
	})

	f, ok := res.Failure()
	require.True(t, ok)
	var storage failure.StorageFailure
	require.ErrorAs(t, f, &storage)
	assert.Contains(t, storage.Error(), "nil map")
}

func TestGuard_Value(t *testing.T) {
	t.Parallel()

	res := repository.Guard(context.Background(), logger.NewNop(), "ok", func(context.Context) (int, error) {
		return 7, nil
	})
	assert.Equal(t, 7, res.UnwrapOr(0))
}
