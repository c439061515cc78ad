package coordinator

import "path/filepath"

// Candidates returns the ordered directories to try for an entry: the primary
// directory, then the temporary directory as the terminal fallback.
// When primary already is the temporary directory only one candidate remains.
func Candidates(primary, temp string) []string {
	if primary == "" || filepath.Clean(primary) == filepath.Clean(temp) {
		return []string{temp}
	}
	return []string{primary, temp}
}
