package coverage

// Class is a logical class. Several class fragments of a report (nested or partial classes) are
// merged into one Class.
type Class struct {
	Name string
	// Assembly is the owning assembly.
	Assembly *Assembly

	files []*CodeFile
}

// NewClass creates a Class belonging to the given assembly. The class is not added to the assembly.
func NewClass(name string, assembly *Assembly) *Class {
	return &Class{Name: name, Assembly: assembly}
}

// Files returns the files of the class in the order they were added.
func (c *Class) Files() []*CodeFile {
	return c.files
}

// AddFile appends a file.
func (c *Class) AddFile(f *CodeFile) {
	c.files = append(c.files, f)
}

// CoverableLines returns the number of coverable lines of all files.
func (c *Class) CoverableLines() int {
	count := 0
	for _, f := range c.files {
		count += f.CoverableLines()
	}
	return count
}

// CoveredLines returns the number of covered lines of all files.
func (c *Class) CoveredLines() int {
	count := 0
	for _, f := range c.files {
		count += f.CoveredLines()
	}
	return count
}

// TotalBranches returns the number of branches of all files.
func (c *Class) TotalBranches() int {
	count := 0
	for _, f := range c.files {
		count += f.TotalBranches()
	}
	return count
}

// CoveredBranches returns the number of visited branches of all files.
func (c *Class) CoveredBranches() int {
	count := 0
	for _, f := range c.files {
		count += f.CoveredBranches()
	}
	return count
}
