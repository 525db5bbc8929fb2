package mailing

type Verdict struct {
	Valid  bool
	Reason string
}

func ValidVerdict() Verdict {
	return Verdict{Valid: true}
}

func InvalidVerdict(reason string) Verdict {
	return Verdict{Valid: false, Reason: reason}
}

type DispatchOutcome int

const (
	OutcomeSucceeded DispatchOutcome = iota + 1
	OutcomeFailedValidation
	OutcomeFailedSend
)

func (o DispatchOutcome) String() string {
	switch o {
	case OutcomeSucceeded:
		return "succeeded"
	case OutcomeFailedValidation:
		return "failed_validation"
	case OutcomeFailedSend:
		return "failed_send"
	default:
		return "unknown"
	}
}

type AddressResult struct {
	Address EmailAddress
	Outcome DispatchOutcome
	Reason  string
}

// BatchReport partitions a batch into succeeded and failed addresses, both in input order.
type BatchReport struct {
	Succeeded []EmailAddress
	Failed    []EmailAddress
}

func NewBatchReport(results []AddressResult) BatchReport {
	report := BatchReport{
		Succeeded: make([]EmailAddress, 0, len(results)),
		Failed:    make([]EmailAddress, 0),
	}
	for _, result := range results {
		if result.Outcome == OutcomeSucceeded {
			report.Succeeded = append(report.Succeeded, result.Address)
			continue
		}
		report.Failed = append(report.Failed, result.Address)
	}
	return report
}
