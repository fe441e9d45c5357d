// ABOUTME: Build version constants
// ABOUTME: Reported by the amrtool version command
package version

const (
	// Version is the semantic release version.
	Version = "1.1.2"

	// Product is the user-visible tool name.
	Product = "amrtool"

	// Manufacturer identifies the project.
	Manufacturer = "OpenAMR"
)
