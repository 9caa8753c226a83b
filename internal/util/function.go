package util

import (
	"runtime"
	"strings"
)

// NameOfFunction returns the unqualified name of the function containing the given program counter,
// e.g. 'Level' for 'github.com/foo/config.(*EnvConfig).Level'.
func NameOfFunction(pc uintptr) string {
	f := runtime.FuncForPC(pc)
	if f == nil {
		return ""
	}
	name := f.Name()
	if i := strings.LastIndex(name, "."); i >= 0 {
		name = name[i+1:]
	}
	return name
}
