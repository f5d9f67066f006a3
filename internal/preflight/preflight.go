package preflight

// Result reports the outcome of a single preflight check.
type Result struct {
	Name   string
	Passed bool
	Detail string
}

// Check names reported by RunAll.
const (
	SourceCheckName      = "Source folder"
	DestinationCheckName = "Destination folder"
)

// RunAll checks the source and destination roots.
func RunAll(source, destination string) []Result {
	return []Result{
		CheckSource(SourceCheckName, source),
		CheckDestination(DestinationCheckName, destination),
	}
}

// FirstFailure returns the first failed result, if any.
func FirstFailure(results []Result) (Result, bool) {
	for _, r := range results {
		if !r.Passed {
			return r, true
		}
	}
	return Result{}, false
}
