package valueobjects

type ExecutionStage string

const (
	StageIdle          ExecutionStage = "idle"
	StageValidating    ExecutionStage = "validating"
	StageFetchingCoins ExecutionStage = "fetching_coins"
	StageAssembling    ExecutionStage = "assembling"
	StageSubmitting    ExecutionStage = "submitting"
	StageSucceeded     ExecutionStage = "succeeded"
	StageFailed        ExecutionStage = "failed"
)

func (s ExecutionStage) Terminal() bool {
	return s == StageSucceeded || s == StageFailed
}

func (s ExecutionStage) String() string {
	return string(s)
}
