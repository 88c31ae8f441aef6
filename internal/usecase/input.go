package usecase

import (
	"context"

	"github.com/PnX-SI/gn-mobile-core-sub003/internal/domain"
	"github.com/PnX-SI/gn-mobile-core-sub003/internal/repository"
)

// InputWriter is the input side of the repository layer.
type InputWriter interface {
	SaveInput(ctx context.Context, input domain.Input) repository.Result[domain.Input]
	QueueInput(ctx context.Context, id int64) repository.Result[domain.Input]
	GetInputsToSync(ctx context.Context) repository.Result[[]domain.Input]
}

// SaveInput stores an input as a draft.
type SaveInput struct {
	Inputs InputWriter
}

// Run implements UseCase.
func (uc SaveInput) Run(ctx context.Context, input domain.Input) Result[domain.Input] {
	return uc.Inputs.SaveInput(ctx, input)
}

// QueueInput marks a stored input, by id, as ready to sync.
type QueueInput struct {
	Inputs InputWriter
}

// Run implements UseCase.
func (uc QueueInput) Run(ctx context.Context, id int64) Result[domain.Input] {
	return uc.Inputs.QueueInput(ctx, id)
}

// GetInputsToSync lists inputs waiting for upload.
type GetInputsToSync struct {
	Inputs InputWriter
}

// Run implements UseCase.
func (uc GetInputsToSync) Run(ctx context.Context, _ None) Result[[]domain.Input] {
	return uc.Inputs.GetInputsToSync(ctx)
}
