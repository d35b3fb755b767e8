package use_cases

import (
	"context"

	"lendit/internal/application/dto"
	portsin "lendit/internal/application/ports/in"
	portsout "lendit/internal/application/ports/out"
	valueobjects "lendit/internal/domain/value_objects"
	apperrors "lendit/internal/shared_kernel/errors"
)

type getHealthUseCase struct {
	network string
	journal portsout.ExecutionJournal
}

func NewGetHealthUseCase(network string, journal portsout.ExecutionJournal) portsin.GetHealthUseCase {
	return &getHealthUseCase{network: network, journal: journal}
}

func (u *getHealthUseCase) Execute(_ context.Context, _ dto.GetHealthCommand) (dto.HealthOutput, *apperrors.AppError) {
	status := valueobjects.NewHealthyStatus()

	return dto.HealthOutput{
		Status:  status.String(),
		Network: u.network,
		Journal: u.journal != nil && u.journal.Enabled(),
	}, nil
}
