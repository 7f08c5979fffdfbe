package testutil

// Development directory layout, relative to the devdir root.
// These constants should be used instead of hardcoding paths in test files.
const (
	// BSPConfigPath is where the build system leaves the board configuration.
	BSPConfigPath = "bsp/mach/bspconfig"

	// ImagesDir holds the built images and the generated memory maps.
	ImagesDir = "images"
)
