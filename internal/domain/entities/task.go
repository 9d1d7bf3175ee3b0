package entities

import (
	"time"

	"github.com/shopspring/decimal"
	"github.com/volatiletech/null/v8"
)

// Task is a reward-bearing action users can submit proof for
type Task struct {
	ID          uint            `json:"id"`
	Title       string          `json:"title"`
	Instruction null.String     `json:"instruction"`
	Link        null.String     `json:"link"`
	Reward      decimal.Decimal `json:"reward"`
	Active      bool            `json:"active"`
	CreatedAt   time.Time       `json:"created_at"`
}

// CreateTaskInput represents input for adding a task
type CreateTaskInput struct {
	Title       string          `json:"title"`
	Instruction string          `json:"instruction"`
	Link        string          `json:"link"`
	Reward      decimal.Decimal `json:"reward"`
}
