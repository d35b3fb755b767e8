package dto

import (
	"time"

	valueobjects "lendit/internal/domain/value_objects"
)

const RateLabelUnavailable = "unavailable"

type FetchBestRateQuery struct{}

type RateQuote struct {
	Protocol  string                  `json:"protocol"`
	Raw       string                  `json:"raw"`
	Percent   string                  `json:"percent"`
	Available bool                    `json:"available"`
	Reason    string                  `json:"reason,omitempty"`
	Rate      valueobjects.ScaledRate `json:"-"`
}

// BestRateOutput keeps every quote next to the winner. Rate is zero when
// no protocol answered, in which case Label is RateLabelUnavailable.
type BestRateOutput struct {
	Quotes        []RateQuote             `json:"quotes"`
	BestProtocol  string                  `json:"best_protocol,omitempty"`
	BestRaw       string                  `json:"best_raw"`
	BestPercent   string                  `json:"best_percent"`
	Label         string                  `json:"label"`
	ScaleExponent int32                   `json:"scale_exponent"`
	QuotedAt      time.Time               `json:"quoted_at"`
	Rate          valueobjects.ScaledRate `json:"-"`
}

type RecordRateSnapshotCommand struct{}

type RecordRateSnapshotOutput struct {
	Recorded     int    `json:"recorded"`
	BestProtocol string `json:"best_protocol,omitempty"`
	Label        string `json:"label"`
}
