package models

const OutputPrefix = "cleaned_"

// SupportedSuffixes are matched against the raw file name, without a dot.
var SupportedSuffixes = []string{"jpg", "jpeg", "png"}

type BatchSummary struct {
	RunID     string   `json:"run_id"`
	Matched   int      `json:"matched"`
	Processed int      `json:"processed"`
	Failed    int      `json:"failed"`
	Outputs   []string `json:"outputs,omitempty"`
}
