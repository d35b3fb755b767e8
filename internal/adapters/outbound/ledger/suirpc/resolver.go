package suirpc

import (
	"context"
	"encoding/json"

	"lendit/internal/domain/entities"
	valueobjects "lendit/internal/domain/value_objects"
	"lendit/internal/infrastructure/suikeys"
	"lendit/internal/infrastructure/suitx"
	apperrors "lendit/internal/shared_kernel/errors"
)

const clockObjectID = "0x0000000000000000000000000000000000000000000000000000000000000006"

type objectInfo struct {
	ref                  suitx.ObjectRef
	shared               bool
	initialSharedVersion uint64
}

// ResolveTransaction turns an intent into a programmable transaction,
// looking up object ownership and Move parameter mutability on the ledger.
func (g *Gateway) ResolveTransaction(ctx context.Context, intent entities.TransactionIntent) (suitx.ProgrammableTransaction, *apperrors.AppError) {
	objects, appErr := g.lookupCallObjects(ctx, intent)
	if appErr != nil {
		return suitx.ProgrammableTransaction{}, appErr
	}

	builder := suitx.NewBuilder()
	for index, op := range intent.Operations {
		var command suitx.Command
		switch op.Kind {
		case entities.OperationMergeCoins:
			destination, appErr := ownedCoin(builder, intent, op.Destination)
			if appErr != nil {
				return suitx.ProgrammableTransaction{}, appErr
			}
			sources := make([]suitx.Argument, 0, len(op.Sources))
			for _, source := range op.Sources {
				argument, appErr := ownedCoin(builder, intent, source)
				if appErr != nil {
					return suitx.ProgrammableTransaction{}, appErr
				}
				sources = append(sources, argument)
			}
			command = suitx.MergeCoinsCommand(destination, sources)

		case entities.OperationSplitCoins:
			coin, appErr := ownedCoin(builder, intent, op.Coin)
			if appErr != nil {
				return suitx.ProgrammableTransaction{}, appErr
			}
			amounts := make([]suitx.Argument, 0, len(op.Amounts))
			for _, amount := range op.Amounts {
				amounts = append(amounts, builder.Pure(suitx.PureU64(amount)))
			}
			command = suitx.SplitCoinsCommand(coin, amounts)

		case entities.OperationMoveCall:
			resolved, appErr := g.moveCall(ctx, builder, objects, op.Call)
			if appErr != nil {
				return suitx.ProgrammableTransaction{}, appErr
			}
			command = resolved

		case entities.OperationTransferObjects:
			transferred := make([]suitx.Argument, 0, len(op.Objects))
			for _, object := range op.Objects {
				argument, appErr := g.argument(builder, objects, object, false)
				if appErr != nil {
					return suitx.ProgrammableTransaction{}, appErr
				}
				transferred = append(transferred, argument)
			}
			recipient, err := suitx.ParseAddress(op.Recipient)
			if err != nil {
				return suitx.ProgrammableTransaction{}, resolveError("transfer recipient is invalid", index, err)
			}
			command = suitx.TransferObjectsCommand(transferred, builder.Pure(suitx.PureAddress(recipient)))

		default:
			return suitx.ProgrammableTransaction{}, resolveError("operation kind is not supported", index, nil)
		}

		builder.Command(command)
	}

	return builder.Finish(), nil
}

func (g *Gateway) moveCall(
	ctx context.Context,
	builder *suitx.Builder,
	objects map[string]objectInfo,
	call *valueobjects.MoveCall,
) (suitx.Command, *apperrors.AppError) {
	if call == nil {
		return suitx.Command{}, resolveError("move call operation has no call", -1, nil)
	}

	pkg, module, function, appErr := call.SplitTarget()
	if appErr != nil {
		return suitx.Command{}, appErr
	}

	parameters, appErr := g.normalizedParameters(ctx, pkg, module, function)
	if appErr != nil {
		return suitx.Command{}, appErr
	}

	typeArguments := make([]suitx.TypeTag, 0, len(call.TypeArguments))
	for _, raw := range call.TypeArguments {
		tag, err := suitx.ParseTypeTag(raw)
		if err != nil {
			return suitx.Command{}, resolveError("type argument is invalid", -1, err)
		}
		typeArguments = append(typeArguments, tag)
	}

	arguments := make([]suitx.Argument, 0, len(call.Arguments))
	for position, raw := range call.Arguments {
		mutable := position < len(parameters) && isMutableReference(parameters[position])
		argument, appErr := g.argument(builder, objects, raw, mutable)
		if appErr != nil {
			return suitx.Command{}, appErr
		}
		arguments = append(arguments, argument)
	}

	return suitx.MoveCallCommand(suitx.MustParseAddress(pkg), module, function, typeArguments, arguments), nil
}

func (g *Gateway) argument(
	builder *suitx.Builder,
	objects map[string]objectInfo,
	raw valueobjects.Argument,
	mutable bool,
) (suitx.Argument, *apperrors.AppError) {
	switch raw.Kind {
	case valueobjects.ArgumentPureU8:
		return builder.Pure(suitx.PureU8(uint8(raw.Value))), nil
	case valueobjects.ArgumentPureU64:
		return builder.Pure(suitx.PureU64(raw.Value)), nil
	case valueobjects.ArgumentPureAddress:
		address, err := suitx.ParseAddress(raw.Address)
		if err != nil {
			return suitx.Argument{}, resolveError("address argument is invalid", -1, err)
		}
		return builder.Pure(suitx.PureAddress(address)), nil
	case valueobjects.ArgumentResult:
		return suitx.NestedResult(uint16(raw.Command), uint16(raw.Index)), nil
	case valueobjects.ArgumentObject:
		id, _ := valueobjects.NormalizeSuiAddress(raw.ObjectID)
		info, ok := objects[id]
		if !ok {
			return suitx.Argument{}, resolveError("object was not resolved", -1, nil)
		}
		if info.shared {
			return builder.Object(suitx.SharedObjectCallArg(info.ref.ObjectID, info.initialSharedVersion, mutable && id != clockObjectID)), nil
		}
		return builder.Object(suitx.OwnedObjectCallArg(info.ref)), nil
	default:
		return suitx.Argument{}, apperrors.NewInternal(
			"transaction_resolution_failed",
			"argument kind cannot be encoded",
			map[string]any{"kind": string(raw.Kind)},
		)
	}
}

// lookupCallObjects fetches ownership for every object a move call names.
func (g *Gateway) lookupCallObjects(ctx context.Context, intent entities.TransactionIntent) (map[string]objectInfo, *apperrors.AppError) {
	ids := []string{}
	seen := map[string]struct{}{}
	for _, op := range intent.Operations {
		if op.Call == nil {
			continue
		}
		for _, argument := range op.Call.Arguments {
			if argument.Kind != valueobjects.ArgumentObject {
				continue
			}
			id, ok := valueobjects.NormalizeSuiAddress(argument.ObjectID)
			if !ok {
				return nil, resolveError("object id is invalid", -1, nil)
			}
			if _, dup := seen[id]; dup {
				continue
			}
			seen[id] = struct{}{}
			ids = append(ids, id)
		}
	}

	objects := make(map[string]objectInfo, len(ids))
	if len(ids) == 0 {
		return objects, nil
	}

	responses := []objectResponse{}
	if appErr := g.client.Call(ctx, "sui_multiGetObjects", []any{ids, map[string]any{"showOwner": true}}, &responses); appErr != nil {
		return nil, appErr
	}
	if len(responses) != len(ids) {
		return nil, apperrors.NewInternal(
			"transaction_resolution_failed",
			"object lookup returned an unexpected number of objects",
			map[string]any{"requested": len(ids), "returned": len(responses)},
		)
	}

	for i, response := range responses {
		if response.Data == nil {
			return nil, apperrors.NewInternal(
				"transaction_resolution_failed",
				"object does not exist",
				map[string]any{"object_id": ids[i], "error": string(response.Error)},
			)
		}
		info, appErr := toObjectInfo(*response.Data)
		if appErr != nil {
			return nil, appErr
		}
		objects[ids[i]] = info
	}

	return objects, nil
}

func (g *Gateway) normalizedParameters(ctx context.Context, pkg, module, function string) ([]json.RawMessage, *apperrors.AppError) {
	key := pkg + "::" + module + "::" + function

	g.mu.Lock()
	cached, ok := g.functions[key]
	g.mu.Unlock()
	if ok {
		return cached, nil
	}

	normalized := normalizedFunction{}
	if appErr := g.client.Call(ctx, "sui_getNormalizedMoveFunction", []any{pkg, module, function}, &normalized); appErr != nil {
		return nil, appErr
	}

	g.mu.Lock()
	g.functions[key] = normalized.Parameters
	g.mu.Unlock()

	return normalized.Parameters, nil
}

func toObjectInfo(data objectData) (objectInfo, *apperrors.AppError) {
	id, err := suitx.ParseAddress(data.ObjectID)
	if err != nil {
		return objectInfo{}, resolveError("object id is invalid", -1, err)
	}

	owner := sharedOwner{}
	if err := json.Unmarshal(data.Owner, &owner); err == nil && owner.Shared != nil {
		return objectInfo{
			ref:                  suitx.ObjectRef{ObjectID: id},
			shared:               true,
			initialSharedVersion: uint64(owner.Shared.InitialSharedVersion),
		}, nil
	}

	ref, appErr := objectRef(data.ObjectID, uint64(data.Version), data.Digest)
	if appErr != nil {
		return objectInfo{}, appErr
	}
	return objectInfo{ref: ref}, nil
}

func ownedCoin(builder *suitx.Builder, intent entities.TransactionIntent, objectID string) (suitx.Argument, *apperrors.AppError) {
	coin, ok := intent.CoinByID(objectID)
	if !ok {
		return suitx.Argument{}, apperrors.NewInternal(
			"transaction_resolution_failed",
			"coin is not part of the intent listing",
			map[string]any{"object_id": objectID},
		)
	}

	ref, appErr := objectRef(coin.ObjectID, coin.Version, coin.Digest)
	if appErr != nil {
		return suitx.Argument{}, appErr
	}
	return builder.Object(suitx.OwnedObjectCallArg(ref)), nil
}

func objectRef(objectID string, version uint64, digest string) (suitx.ObjectRef, *apperrors.AppError) {
	id, err := suitx.ParseAddress(objectID)
	if err != nil {
		return suitx.ObjectRef{}, resolveError("object id is invalid", -1, err)
	}

	decoded, err := suikeys.DecodeBase58(digest)
	if err != nil || len(decoded) != 32 {
		return suitx.ObjectRef{}, apperrors.NewInternal(
			"transaction_resolution_failed",
			"object digest must be 32 base58 encoded bytes",
			map[string]any{"object_id": objectID, "digest": digest},
		)
	}

	ref := suitx.ObjectRef{ObjectID: id, Version: version}
	copy(ref.Digest[:], decoded)
	return ref, nil
}

func resolveError(message string, operation int, cause error) *apperrors.AppError {
	details := map[string]any{}
	if operation >= 0 {
		details["operation"] = operation
	}
	if cause != nil {
		details["error"] = cause.Error()
	}
	return apperrors.NewInternal("transaction_resolution_failed", message, details)
}
