package repository

import (
	"context"

	"github.com/PnX-SI/gn-mobile-core-sub003/internal/domain"
	"github.com/PnX-SI/gn-mobile-core-sub003/internal/failure"
	"github.com/PnX-SI/gn-mobile-core-sub003/internal/logger"
)

// InputRepository manages field inputs.
type InputRepository struct {
	local InputLocalSource
	log   logger.Logger
}

// NewInputRepository creates an input repository.
func NewInputRepository(local InputLocalSource, log logger.Logger) *InputRepository {
	return &InputRepository{local: local, log: orNop(log)}
}

// SaveInput stores input as a draft.
func (r *InputRepository) SaveInput(ctx context.Context, input domain.Input) Result[domain.Input] {
	return Guard(ctx, r.log, "save_input", func(ctx context.Context) (domain.Input, error) {
		input.Status = domain.InputStatusDraft
		if err := r.local.Save(ctx, input); err != nil {
			return domain.Input{}, err
		}
		return input, nil
	})
}

// QueueInput marks the stored input id as ready to sync.
func (r *InputRepository) QueueInput(ctx context.Context, id int64) Result[domain.Input] {
	return Guard(ctx, r.log, "queue_input", func(ctx context.Context) (domain.Input, error) {
		input, err := r.local.Find(ctx, id)
		if err != nil {
			return domain.Input{}, err
		}
		input.Status = domain.InputStatusToSync
		if err := r.local.Save(ctx, *input); err != nil {
			return domain.Input{}, err
		}
		return *input, nil
	}, notFoundAs(failure.InputNotFoundFailure{ID: id}))
}

// GetInputsToSync lists the inputs waiting for upload.
func (r *InputRepository) GetInputsToSync(ctx context.Context) Result[[]domain.Input] {
	return Guard(ctx, r.log, "get_inputs_to_sync", func(ctx context.Context) ([]domain.Input, error) {
		return r.local.FindByStatus(ctx, domain.InputStatusToSync)
	})
}

// DeleteInput removes the stored input id.
func (r *InputRepository) DeleteInput(ctx context.Context, id int64) Result[struct{}] {
	return GuardErr(ctx, r.log, "delete_input", func(ctx context.Context) error {
		return r.local.Delete(ctx, id)
	}, notFoundAs(failure.InputNotFoundFailure{ID: id}))
}
