package coverage

// Branch is a single synthetic branch of a line. Cobertura only reports how many branches of a
// line were taken, so visits is either 0 or 1.
type Branch struct {
	Identifier string
	Visits     int
}

// CountVisited returns the number of branches which have been visited at least once.
func CountVisited(branches []Branch) int {
	count := 0
	for _, b := range branches {
		if b.Visits > 0 {
			count++
		}
	}
	return count
}
