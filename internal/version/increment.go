package version

// DefaultIncrement is the increment applied when the caller does not
// specify one and no configuration overrides it.
const DefaultIncrement = "patch"

// semanticIncrements maps the symbolic increment names to their dotted
// vector forms. The vector has a single nonzero entry at the position
// being bumped; its index is the increment's significant position.
var semanticIncrements = map[string]string{
	"major": "1",
	"minor": "0.1",
	"patch": "0.0.1",
}

// ResolveIncrement translates a symbolic increment name (major, minor,
// patch) to its dotted vector form. Any other string is returned
// unchanged; whether it is a valid dotted version is decided by
// ParseIncrement.
func ResolveIncrement(increment string) string {
	if dotted, ok := semanticIncrements[increment]; ok {
		return dotted
	}
	return increment
}

// ParseIncrement resolves a symbolic increment name and parses the
// resulting dotted vector as a Version. A malformed increment fails with
// a *ParseError — this is a caller programming error, not a repository
// condition, so it is never swallowed.
func ParseIncrement(increment string) (Version, error) {
	return Parse(ResolveIncrement(increment))
}
