package entities

import "github.com/shopspring/decimal"

// Stats holds the headline counters of the admin dashboard
type Stats struct {
	Users        int64           `json:"users"`
	Tasks        int64           `json:"tasks"`
	Submissions  int64           `json:"submissions"`
	Withdrawals  int64           `json:"withdrawals"`
	TotalBalance decimal.Decimal `json:"total_balance"`
}

// SubmissionCounts breaks submissions down by status
type SubmissionCounts struct {
	Total    int64 `json:"total"`
	Pending  int64 `json:"pending"`
	Approved int64 `json:"approved"`
	Rejected int64 `json:"rejected"`
}

// WithdrawalCounts breaks withdrawals down by status
type WithdrawalCounts struct {
	Total   int64 `json:"total"`
	Pending int64 `json:"pending"`
}

// StatsSummary is the richer dashboard view
type StatsSummary struct {
	Users        int64            `json:"users"`
	Tasks        int64            `json:"tasks"`
	Submissions  SubmissionCounts `json:"submissions"`
	Withdrawals  WithdrawalCounts `json:"withdrawals"`
	TotalBalance decimal.Decimal  `json:"total_balance"`
}

// TimeSeries is a zero-filled histogram with ISO 8601 bucket labels
type TimeSeries struct {
	Labels []string `json:"labels"`
	Counts []int    `json:"counts"`
}
