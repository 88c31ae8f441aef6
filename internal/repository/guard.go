// Package repository wraps the data sources so that every call returns a
// typed Result instead of an error or a panic.
package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"io/fs"
	"net"
	"net/url"

	"modernc.org/sqlite"

	"github.com/PnX-SI/gn-mobile-core-sub003/internal/database"
	"github.com/PnX-SI/gn-mobile-core-sub003/internal/failure"
	"github.com/PnX-SI/gn-mobile-core-sub003/internal/logger"
	"github.com/PnX-SI/gn-mobile-core-sub003/internal/remote"
	"github.com/PnX-SI/gn-mobile-core-sub003/internal/result"
)

// Result is the outcome of a repository operation.
type Result[V any] = result.Result[failure.Failure, V]

// Mapper maps a data-source error owned by a feature to its failure.
type Mapper func(err error) (failure.Failure, bool)

// Guard runs fn and converts its error, or a panic, into exactly one Failure.
func Guard[V any](
	ctx context.Context,
	log logger.Logger,
	op string,
	fn func(ctx context.Context) (V, error),
	mappers ...Mapper,
) (res Result[V]) {
	defer func() {
		if r := recover(); r != nil {
			log.Error("Recovered panic in repository operation",
				logger.String("operation", op),
				logger.Any("panic", r),
			)
			res = result.Failure[failure.Failure, V](failure.StorageFailure{Cause: fmt.Errorf("panic: %v", r)})
		}
	}()

	v, err := fn(ctx)
	if err != nil {
		return result.Failure[failure.Failure, V](MapError(log, op, err, mappers...))
	}
	return result.Value[failure.Failure](v)
}

// GuardErr is Guard for operations without a value.
func GuardErr(
	ctx context.Context,
	log logger.Logger,
	op string,
	fn func(ctx context.Context) error,
	mappers ...Mapper,
) Result[struct{}] {
	return Guard(ctx, log, op, func(ctx context.Context) (struct{}, error) {
		return struct{}{}, fn(ctx)
	}, mappers...)
}

// MapError maps err to a Failure. Failures pass through, then feature mappers
// are tried in order, then the core mapping. Errors no mapping recognises
// become a StorageFailure and are logged with their type.
func MapError(log logger.Logger, op string, err error, mappers ...Mapper) failure.Failure {
	if f, ok := failure.As(err); ok {
		return f
	}
	for _, m := range mappers {
		if f, ok := m(err); ok {
			return f
		}
	}
	if f, ok := mapCore(err); ok {
		return f
	}

	log.Error("Unmapped error in repository operation",
		logger.String("operation", op),
		logger.String("error_type", fmt.Sprintf("%T", err)),
		logger.Error(err),
	)
	return failure.StorageFailure{Cause: err}
}

func mapCore(err error) (failure.Failure, bool) {
	var statusErr *remote.StatusError
	if errors.As(err, &statusErr) {
		if remote.IsUnauthorized(err) {
			return failure.AuthNotConnectedFailure{}, true
		}
		return failure.ServerFailure{}, true
	}

	var decodeErr *remote.DecodeError
	if errors.As(err, &decodeErr) {
		return failure.ServerFailure{}, true
	}

	var urlErr *url.Error
	var netErr net.Error
	if errors.As(err, &urlErr) || errors.As(err, &netErr) ||
		errors.Is(err, context.DeadlineExceeded) || errors.Is(err, context.Canceled) {
		return failure.NetworkFailure{Reason: err.Error()}, true
	}

	var pathErr *fs.PathError
	var corrupt *database.CorruptInputError
	if errors.As(err, &pathErr) || errors.As(err, &corrupt) {
		return failure.InputIOFailure{Cause: err}, true
	}

	var sqliteErr *sqlite.Error
	if errors.As(err, &sqliteErr) ||
		errors.Is(err, sql.ErrConnDone) || errors.Is(err, sql.ErrTxDone) || errors.Is(err, sql.ErrNoRows) {
		return failure.StorageFailure{Cause: err}, true
	}

	return nil, false
}
