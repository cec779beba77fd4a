// Package npmkore implements the core model of npmk for scaffolding the
// builds of npm packages. It uses idiomatic Go error handling, which can make
// writing npmk setup scripts a bit cumbersome. However, this package serves
// as a solid foundation for implementing scaffolding strategies, such as
// detecting what a package provides or merging script builder results into a
// single plan. The core concepts are [Package], [Setup] and [Plan]. An
// easy-to-use wrapper for everyday use in setup scripts is provided by the
// [npmk] package.
//
// [npmk]: https://pkg.go.dev/git.fractalqb.de/fractalqb/npmk
package npmkore
