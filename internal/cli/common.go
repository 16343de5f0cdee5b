package cli

import (
	"encoding/json"
	"os"

	"github.com/openmw-tools/modcheck/internal/analyze"
	"github.com/openmw-tools/modcheck/internal/clock"
	"github.com/openmw-tools/modcheck/internal/config"
	"github.com/openmw-tools/modcheck/internal/fsops"
	"github.com/openmw-tools/modcheck/internal/hash"
)

// newAnalyzer creates an analyzer with real implementations of all dependencies.
func newAnalyzer() *analyze.Analyzer {
	return analyze.New(
		fsops.NewRealFS(),
		hash.NewSHA256Hasher(),
		&clock.RealClock{},
	)
}

// resolveConfigFile returns the user-supplied config path, or the standard
// openmw.cfg location when none was given.
func resolveConfigFile(flagValue string) (string, error) {
	if flagValue != "" {
		return flagValue, nil
	}
	return config.DefaultPath()
}

// outputJSON outputs a value as JSON to stdout.
func outputJSON(v interface{}) error {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
