package version

// SemVer normalizes a version string to the v-prefixed three-segment
// form used by Go modules and GitHub releases:
//
//	SemVer("1")        →  "v1.0.0"
//	SemVer("1.2")      →  "v1.2.0"
//	SemVer("10.11.12") →  "v10.11.12"
//	SemVer("v1.0")     →  "v1.0.0"
//
// Padding is performed by adding the zero vector "0.0.0", which extends
// the release segments to at least three entries and drops any
// prerelease marker.
func SemVer(orig string) (string, error) {
	v, err := Parse(orig)
	if err != nil {
		return "", err
	}
	return "v" + v.Add(MustParse("0.0.0")).String(), nil
}
