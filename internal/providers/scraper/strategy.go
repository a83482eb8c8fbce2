package scraper

// Strategy names reported in a Result.
const (
	ModeStructured = "structured"
	ModeTabular    = "tabular"
	ModeNone       = "none"
)

// Strategy is one way of pulling records out of a snapshot. Extract must be
// pure and must not fail: no data is an empty slice.
type Strategy[T any] struct {
	Name    string
	Extract func(*Snapshot) []T
}

// Result carries the winning strategy's records.
type Result[T any] struct {
	Strategy string
	Records  []T
}

// Run tries strategies in order and returns the first non-empty result.
// Later strategies are not evaluated once one succeeds.
func Run[T any](snap *Snapshot, strategies ...Strategy[T]) Result[T] {
	for _, s := range strategies {
		if records := s.Extract(snap); len(records) > 0 {
			return Result[T]{Strategy: s.Name, Records: records}
		}
	}
	return Result[T]{Strategy: ModeNone, Records: []T{}}
}

func limit[T any](s []T, n int) []T {
	if len(s) > n {
		return s[:n]
	}
	return s
}
