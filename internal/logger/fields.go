package logger

import (
	"time"

	"go.uber.org/zap"
)

// Field constructors. Keys are snake_case across the codebase.

func String(key, val string) Field { return zap.String(key, val) }

func Int(key string, val int) Field { return zap.Int(key, val) }

func Int64(key string, val int64) Field { return zap.Int64(key, val) }

func Duration(key string, val time.Duration) Field { return zap.Duration(key, val) }

func Time(key string, val time.Time) Field { return zap.Time(key, val) }

// Error logs err under the "error" key.
func Error(err error) Field { return zap.Error(err) }

func Any(key string, val any) Field { return zap.Any(key, val) }

// JobID tags an entry with a job record identifier.
func JobID(id string) Field { return zap.String("job_id", id) }

// Family tags an entry with a job family.
func Family(family string) Field { return zap.String("job_family", family) }

// Package tags an entry with an application package name.
func Package(name string) Field { return zap.String("package_name", name) }
