package coverage

import (
	"sort"
	"sync"
)

// Assembly groups the classes of one Cobertura package.
type Assembly struct {
	Name string

	mu      sync.Mutex
	classes []*Class
}

// NewAssembly creates an empty Assembly.
func NewAssembly(name string) *Assembly {
	return &Assembly{Name: name}
}

// AddClass adds a class. It is safe to call AddClass from several goroutines.
func (a *Assembly) AddClass(c *Class) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.classes = append(a.classes, c)
}

// SortClasses orders the classes by name.
func (a *Assembly) SortClasses() {
	a.mu.Lock()
	defer a.mu.Unlock()
	sort.SliceStable(a.classes, func(i, j int) bool {
		return a.classes[i].Name < a.classes[j].Name
	})
}

// Classes returns the classes of the assembly.
func (a *Assembly) Classes() []*Class {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.classes
}

// CoverableLines returns the number of coverable lines of all classes.
func (a *Assembly) CoverableLines() int {
	count := 0
	for _, c := range a.Classes() {
		count += c.CoverableLines()
	}
	return count
}

// CoveredLines returns the number of covered lines of all classes.
func (a *Assembly) CoveredLines() int {
	count := 0
	for _, c := range a.Classes() {
		count += c.CoveredLines()
	}
	return count
}

// TotalBranches returns the number of branches of all classes.
func (a *Assembly) TotalBranches() int {
	count := 0
	for _, c := range a.Classes() {
		count += c.TotalBranches()
	}
	return count
}

// CoveredBranches returns the number of visited branches of all classes.
func (a *Assembly) CoveredBranches() int {
	count := 0
	for _, c := range a.Classes() {
		count += c.CoveredBranches()
	}
	return count
}
