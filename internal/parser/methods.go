package parser

import (
	"regexp"
	"strings"
)

var (
	// e.g. 'Test.Program/<Main>d__0MoveNext()': the driver of the state machine generated for an async or iterator method
	compilerGeneratedMethodNameRegex = regexp.MustCompile(`^(?P<ClassName>.+)(/|\.)<(?P<CompilerGeneratedName>.+)>.+__.+MoveNext\(\)$`)
	lambdaMethodNameRegex            = regexp.MustCompile(`<.+>.+__`)
	shortMethodNameRegex             = regexp.MustCompile(`^(?P<MethodName>[^(]+)\((?P<Arguments>.*)\)$`)
)

// resolveMethodName recovers the name of async and iterator methods from the MoveNext method of
// their state machine. Other names are returned unchanged.
func resolveMethodName(className, fullName string) string {
	if !strings.HasSuffix(fullName, "MoveNext()") {
		return fullName
	}
	match := compilerGeneratedMethodNameRegex.FindStringSubmatch(className + fullName)
	if match == nil {
		return fullName
	}
	return match[compilerGeneratedMethodNameRegex.SubexpIndex("CompilerGeneratedName")] + "()"
}

// isLambda returns true for compiler generated lambda methods like '<Main>b__0_0()'.
func isLambda(fullName string) bool {
	return strings.Contains(fullName, "__") && lambdaMethodNameRegex.MatchString(fullName)
}

// shortMethodName condenses the parameter list: 'Foo(int, string)' becomes 'Foo(...)'.
func shortMethodName(fullName string) string {
	match := shortMethodNameRegex.FindStringSubmatch(fullName)
	if match == nil {
		return fullName
	}
	name := match[shortMethodNameRegex.SubexpIndex("MethodName")]
	if match[shortMethodNameRegex.SubexpIndex("Arguments")] == "" {
		return name + "()"
	}
	return name + "(...)"
}

// isCompilerGeneratedClass returns true for classes the compiler generates for closures, state
// machines and anonymous types.
func isCompilerGeneratedClass(name string) bool {
	return strings.Contains(name, "$") ||
		strings.Contains(name, "<>") ||
		strings.Contains(name, ">d") ||
		strings.Contains(name, ">g")
}
