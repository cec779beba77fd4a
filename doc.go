// Package npmk scaffolds the build automation of npm packages from Go. It
// inspects a package's source layout, runs a set of independent script
// builders concurrently and merges what they generate into one deterministic
// build plan. npmk is built around the core concepts of [Setup] and [Plan].
//
// npmk is just a Go library. It can be used in any context of reasonable
// programming with Go. Nevertheless, a few conventions can be helpful. A
// scaffold program is a Go executable that lives next to the npm package it
// scaffolds.
//
//	"mk.go" is the recommended file name for a scaffold program
//
// The scaffold program must not collide with the package sources. Here are a
// few ideas for structuring an npm package with its scaffold program:
//
// # Library package with the conventional src/lib layout
//
//	package/
//	├── mk
//	│   └── mk.go
//	├── package.json
//	└── src
//	    └── lib
//	        └── index.mjs
//
// Scaffold with
//
//	package$ go run mk/mk.go
//
// # Package with a library and a command line tool
//
//	package/
//	├── mk.go
//	├── package.json
//	└── src
//	    ├── cli
//	    │   └── index.cjs
//	    └── lib
//	        └── index.mjs
//
// Scaffold with
//
//	package$ go run mk.go
//
// The generated scripts land in the scripts/ directory of the package by
// default, see [Setup].
package npmk
