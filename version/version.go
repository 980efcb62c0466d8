// Package version exposes the verifier's version string and the metadata map
// attached to bundles and optional report Version blocks.
package version

import (
	"runtime/debug"
	"sync"
)

// Number is the semantic version of the verifier.
const Number = "0.1.0"

// revision resolves the short VCS revision once per process. Binaries built
// outside a stamped module (plain `go build` of a dirty tree, tests) report
// "unknown".
var revision = sync.OnceValue(func() string {
	info, ok := debug.ReadBuildInfo()
	if !ok {
		return "unknown"
	}
	for _, s := range info.Settings {
		if s.Key == "vcs.revision" && len(s.Value) >= 7 {
			return s.Value[:7]
		}
	}
	return "unknown"
})

// String returns "<number>+<sha>" when a revision is known, else the bare
// number.
func String() string {
	if sha := revision(); sha != "unknown" {
		return Number + "+" + sha
	}
	return Number
}

// Metadata builds the version metadata map. uiVersion is included under
// "ui_version" when non-empty (the HTTP facade forwards the UI's version so
// archived bundles record both sides).
func Metadata(uiVersion string) map[string]string {
	meta := map[string]string{
		"cli_version": Number,
		"git_sha":     revision(),
	}
	if uiVersion != "" {
		meta["ui_version"] = uiVersion
	}
	return meta
}
