package mailing

// EmailStats is the singleton cumulative counter of successful sends.
type EmailStats struct {
	SuccessCount int64
}
