package match

// Status discriminates the three analysis outcomes. A report is exactly
// one of: findings, no-findings, or error — never a mix.
type Status int

const (
	// StatusFindings means at least one profile cleared the threshold.
	StatusFindings Status = iota
	// StatusNoFindings means analysis ran but nothing cleared the threshold.
	StatusNoFindings
	// StatusError means the image could not be read or decoded.
	StatusError
)

func (s Status) String() string {
	switch s {
	case StatusFindings:
		return "findings"
	case StatusNoFindings:
		return "no-findings"
	case StatusError:
		return "error"
	default:
		return "unknown"
	}
}

// Finding is one matched profile with its confidence and the catalog
// text attached for presentation. Produced fresh per analysis call.
type Finding struct {
	Vitamin         string   `json:"vitamin"`
	Confidence      float64  `json:"confidence"`
	Description     string   `json:"description"`
	Symptoms        []string `json:"symptoms"`
	RiskFactors     []string `json:"risk_factors"`
	Recommendations []string `json:"recommendations"`
}

// NoFindingsMessage is returned when no profile clears the threshold.
const NoFindingsMessage = "No significant vitamin deficiencies detected"

// Report is the discriminated analysis outcome. Findings is non-empty
// only for StatusFindings, Message only for StatusNoFindings, and Error
// only for StatusError.
type Report struct {
	Status   Status    `json:"status"`
	Findings []Finding `json:"findings,omitempty"`
	Message  string    `json:"message,omitempty"`
	Error    string    `json:"error,omitempty"`
}

func findingsReport(findings []Finding) Report {
	return Report{Status: StatusFindings, Findings: findings}
}

func noFindingsReport() Report {
	return Report{Status: StatusNoFindings, Message: NoFindingsMessage}
}

func errorReport(reason string) Report {
	return Report{Status: StatusError, Error: reason}
}
