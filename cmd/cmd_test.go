package cmd

import (
	"bytes"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/PnX-SI/gn-mobile-core-sub003/internal/domain"
	"github.com/PnX-SI/gn-mobile-core-sub003/internal/failure"
)

func TestRenderJobs(t *testing.T) {
	now := time.Date(2026, 10, 15, 12, 0, 0, 0, time.UTC)
	msg := "network failure: timeout"
	records := []domain.JobRecord{
		{
			ID:        "b7e3",
			Family:    domain.FamilyBulkSync,
			Status:    domain.JobStatusFailed,
			Attempt:   3,
			Error:     &msg,
			CreatedAt: now.Add(-90 * time.Minute),
		},
		{
			ID:        "a1c2",
			Family:    domain.FamilyReferenceSync,
			Status:    domain.JobStatusSucceeded,
			Attempt:   1,
			CreatedAt: now.Add(-30 * time.Second),
		},
	}

	var out bytes.Buffer
	renderJobs(&out, records, now)

	got := out.String()
	assert.Contains(t, got, "b7e3")
	assert.Contains(t, got, "BULK_SYNC")
	assert.Contains(t, got, msg)
	assert.Contains(t, got, "1h30m")
	assert.Contains(t, got, "30s")
	assert.Contains(t, got, "2")
}

func TestFailed(t *testing.T) {
	err := failed("resolve settings", failure.SettingsNotFoundFailure{Source: failure.SourceLocal})
	assert.ErrorContains(t, err, "resolve settings: settings:")

	var f failure.SettingsNotFoundFailure
	assert.True(t, errors.As(err, &f))

	err = failed("login", failure.ServerFailure{})
	assert.EqualError(t, err, "login: server: server failure")
}
