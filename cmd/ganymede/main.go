// Ganymede is a runtime type-contract library for dynamically-typed Go
// values; this command is its configuration companion.
//
// Usage:
//
//	# Validate a configuration file
//	ganymede validate --config ganymede.yaml
//
//	# Show the enforcement policy a configuration resolves to
//	ganymede policy --config ganymede.yaml
//
//	# Show recent audit records
//	ganymede audit --config ganymede.yaml --limit 20
//
//	# Show version information
//	ganymede version
package main

func main() {
	Execute()
}
