package domain

import "time"

// Earning is a completed payout record, optionally linked to a job.
type Earning struct {
	ID            string    `json:"id" db:"id"`
	JobID         string    `json:"jobId,omitempty" db:"job_id"`
	Platform      string    `json:"platform" db:"platform" binding:"required"`
	Amount        string    `json:"amount" db:"amount" binding:"required"`
	Reimbursement string    `json:"reimbursement" db:"reimbursement"`
	Tips          string    `json:"tips" db:"tips"`
	Mileage       string    `json:"mileage,omitempty" db:"mileage"`
	Date          time.Time `json:"date" db:"date"`
	Notes         string    `json:"notes,omitempty" db:"notes"`
}
