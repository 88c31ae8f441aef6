// Package failure defines the typed failures returned above the repository
// boundary.
//
// The core kinds (network, server, storage) are closed. Feature areas add
// their own failures through the Feature arm without touching the core set.
// Every failure implements error so it can travel through error-returning
// code unchanged and be recovered with As.
package failure

import (
	"errors"
	"fmt"
)

// Kind is the closed enumeration of failure arms.
type Kind int

const (
	KindNetwork Kind = iota + 1
	KindServer
	KindStorage
	KindFeature
)

func (k Kind) String() string {
	switch k {
	case KindNetwork:
		return "network"
	case KindServer:
		return "server"
	case KindStorage:
		return "storage"
	case KindFeature:
		return "feature"
	default:
		return "unknown"
	}
}

// Failure is a typed description of why an operation produced no value.
type Failure interface {
	error
	Kind() Kind
}

// Feature is implemented by failures owned by a feature area.
type Feature interface {
	Failure
	// Feature names the owning area, e.g. "dataset" or "settings".
	Feature() string
}

// As extracts the Failure carried by err, if any.
func As(err error) (Failure, bool) {
	var f Failure
	if errors.As(err, &f) {
		return f, true
	}
	return nil, false
}

// NetworkFailure reports that the remote service could not be reached.
type NetworkFailure struct {
	Reason string
}

func (f NetworkFailure) Error() string { return "network failure: " + f.Reason }

func (NetworkFailure) Kind() Kind { return KindNetwork }

// ServerFailure reports that the remote service answered with an error.
type ServerFailure struct{}

func (ServerFailure) Error() string { return "server failure" }

func (ServerFailure) Kind() Kind { return KindServer }

// StorageFailure reports a local store error. It is also the generic
// failure for errors no mapping recognises.
type StorageFailure struct {
	Cause error
}

func (f StorageFailure) Error() string {
	if f.Cause == nil {
		return "storage failure"
	}
	return fmt.Sprintf("storage failure: %v", f.Cause)
}

func (StorageFailure) Kind() Kind { return KindStorage }

func (f StorageFailure) Unwrap() error { return f.Cause }
