package use_cases

import (
	"context"

	"lendit/internal/application/dto"
	portsin "lendit/internal/application/ports/in"
	portsout "lendit/internal/application/ports/out"
	"lendit/internal/domain/catalog"
	"lendit/internal/domain/entities"
	valueobjects "lendit/internal/domain/value_objects"
	apperrors "lendit/internal/shared_kernel/errors"

	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"
)

type fetchBestRateUseCase struct {
	catalog catalog.Catalog
	ledger  portsout.LedgerGateway
	senders portsout.SimulationSenderProvider
	clock   Clock
	logger  zerolog.Logger
}

func NewFetchBestRateUseCase(
	lenditCatalog catalog.Catalog,
	ledger portsout.LedgerGateway,
	senders portsout.SimulationSenderProvider,
	clock Clock,
	logger zerolog.Logger,
) portsin.FetchBestRateUseCase {
	if clock == nil {
		clock = NewSystemClock()
	}

	return &fetchBestRateUseCase{
		catalog: lenditCatalog,
		ledger:  ledger,
		senders: senders,
		clock:   clock,
		logger:  logger.With().Str("component", "rate_oracle").Logger(),
	}
}

// Execute never fails: a protocol that cannot be quoted contributes a zero
// rate and is reported as unavailable.
func (u *fetchBestRateUseCase) Execute(ctx context.Context, _ dto.FetchBestRateQuery) (dto.BestRateOutput, *apperrors.AppError) {
	sources := u.catalog.RateSources
	quotes := make([]dto.RateQuote, len(sources))

	var group errgroup.Group
	for i, source := range sources {
		i, source := i, source
		group.Go(func() error {
			quotes[i] = u.quote(ctx, source)
			return nil
		})
	}
	_ = group.Wait()

	output := dto.BestRateOutput{
		Quotes:        quotes,
		ScaleExponent: u.catalog.RateScaleExponent,
		QuotedAt:      u.clock.NowUTC(),
		Rate:          valueobjects.ZeroRate(u.catalog.RateScaleExponent),
	}

	for _, quote := range quotes {
		if !quote.Available {
			continue
		}
		if output.BestProtocol == "" || quote.Rate.Cmp(output.Rate) > 0 {
			output.BestProtocol = quote.Protocol
			output.Rate = quote.Rate
		}
	}

	output.BestRaw = output.Rate.String()
	output.BestPercent = output.Rate.Percent()
	output.Label = output.BestPercent + "%"
	if output.BestProtocol == "" {
		output.Label = dto.RateLabelUnavailable
	}

	return output, nil
}

func (u *fetchBestRateUseCase) quote(ctx context.Context, source catalog.RateSource) dto.RateQuote {
	sender, appErr := u.senders.NewSender()
	if appErr != nil {
		return u.unavailable(source, appErr)
	}

	result, appErr := u.ledger.SimulateTransaction(ctx, dto.SimulateTransactionInput{
		Sender: sender,
		Intent: entities.NewSimulationIntent(sender, source.Call),
	})
	if appErr != nil {
		return u.unavailable(source, appErr)
	}

	value, appErr := firstReturnValue(result)
	if appErr != nil {
		return u.unavailable(source, appErr)
	}

	raw, appErr := valueobjects.DecodeMoveInteger(value.Bytes, value.MoveType)
	if appErr != nil {
		return u.unavailable(source, appErr)
	}

	rate := valueobjects.NewScaledRate(raw, u.catalog.RateScaleExponent)
	u.logger.Debug().Str("protocol", source.Name).Str("raw", rate.String()).Msg("rate quoted")

	return dto.RateQuote{
		Protocol:  source.Name,
		Raw:       rate.String(),
		Percent:   rate.Percent(),
		Available: true,
		Rate:      rate,
	}
}

func (u *fetchBestRateUseCase) unavailable(source catalog.RateSource, appErr *apperrors.AppError) dto.RateQuote {
	u.logger.Warn().
		Str("protocol", source.Name).
		Str("code", appErr.Code).
		Str("error", appErr.Message).
		Msg("rate quote unavailable, using zero")

	rate := valueobjects.ZeroRate(u.catalog.RateScaleExponent)
	return dto.RateQuote{
		Protocol: source.Name,
		Raw:      rate.String(),
		Percent:  rate.Percent(),
		Reason:   appErr.Message,
		Rate:     rate,
	}
}

// firstReturnValue checks the simulation shape before anything is decoded.
func firstReturnValue(result dto.SimulationResult) (dto.SimulationReturnValue, *apperrors.AppError) {
	if result.Error != "" {
		return dto.SimulationReturnValue{}, apperrors.NewInternal(
			"rate_simulation_failed",
			result.Error,
			map[string]any{"status": result.Status},
		)
	}
	if len(result.Results) == 0 {
		return dto.SimulationReturnValue{}, apperrors.NewInternal(
			"rate_result_malformed",
			"simulation returned no command results",
			nil,
		)
	}
	if len(result.Results[0].ReturnValues) == 0 {
		return dto.SimulationReturnValue{}, apperrors.NewInternal(
			"rate_result_malformed",
			"simulation returned no return values",
			nil,
		)
	}

	return result.Results[0].ReturnValues[0], nil
}
