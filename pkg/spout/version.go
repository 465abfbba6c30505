package spout

// EntryPointName is the only symbol resolved in the library.
const EntryPointName = "GetSpout"

var (
	// LibraryPath is the file name or path of the Spout library, populated
	// at build time via ldflags.
	LibraryPath = "SpoutLibrary.dll"

	Version = "v0.0.0-in-progress"
)

// WrapperVersion returns the semantic version populated at build time via
// ldflags. In development it defaults to v0.0.0-in-progress.
func WrapperVersion() string {
	return Version
}
