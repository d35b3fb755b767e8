// Package ephemeral hands out throwaway sender addresses for read-only
// simulations. The generated keys are discarded immediately.
package ephemeral

import (
	portsout "lendit/internal/application/ports/out"
	"lendit/internal/infrastructure/suikeys"
	apperrors "lendit/internal/shared_kernel/errors"
)

type SenderProvider struct{}

var _ portsout.SimulationSenderProvider = SenderProvider{}

func NewSenderProvider() SenderProvider {
	return SenderProvider{}
}

func (SenderProvider) NewSender() (string, *apperrors.AppError) {
	keypair, keyErr := suikeys.GenerateKeypair()
	if keyErr != nil {
		return "", apperrors.NewInternal("simulation_sender_failed", keyErr.Message, nil)
	}
	return keypair.Address(), nil
}
