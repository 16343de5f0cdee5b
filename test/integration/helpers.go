package integration

import (
	"fmt"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/openmw-tools/modcheck/internal/analyze"
	"github.com/openmw-tools/modcheck/internal/clock"
	"github.com/openmw-tools/modcheck/internal/fsops"
	"github.com/openmw-tools/modcheck/internal/hash"
)

// fixture is a base mod directory plus a load-order config on real disk.
type fixture struct {
	BaseModDir string
	ConfigPath string
}

// newAnalyzer builds an analyzer with real filesystem and hashing but a fixed
// clock.
func newAnalyzer() *analyze.Analyzer {
	return analyze.New(
		fsops.NewRealFS(),
		hash.NewSHA256Hasher(),
		clock.NewFakeClock(time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)),
	)
}

// buildFixture lays out the sample mods and load order:
//
//	#1 TestMod1: meshes/rock.nif, textures/rock.dds      -> 0 remaining
//	#2 TestMod2: meshes/rock.nif, sound/theme.mp3        -> 1 remaining
//	#3 TestMod3: meshes/rock.nif, textures/rock.dds,
//	             icons/a.tga, icons/b.tga, fonts/f.ttf   -> 4 remaining
//	#4 TestMod4: meshes/rock.nif
func buildFixture(t *testing.T) fixture {
	t.Helper()

	base := t.TempDir()
	mods := map[string][]string{
		"TestMod1": {"meshes/rock.nif", "textures/rock.dds"},
		"TestMod2": {"meshes/rock.nif", "sound/theme.mp3"},
		"TestMod3": {"meshes/rock.nif", "textures/rock.dds", "icons/a.tga", "icons/b.tga", "fonts/f.ttf"},
		"TestMod4": {"meshes/rock.nif"},
	}
	for mod, files := range mods {
		for _, rel := range files {
			path := filepath.Join(base, mod, filepath.FromSlash(rel))
			require.NoError(t, os.MkdirAll(filepath.Dir(path), 0755))
			require.NoError(t, os.WriteFile(path, []byte(mod+":"+rel), 0644))
		}
	}

	cfgDir := t.TempDir()
	cfgPath := filepath.Join(cfgDir, "openmw.cfg")
	content := "# generated load order\ncontent=Morrowind.esm\n"
	for _, mod := range []string{"TestMod1", "TestMod2", "TestMod3", "TestMod4"} {
		content += fmt.Sprintf("data=%q\n", filepath.Join(base, mod))
	}
	require.NoError(t, os.WriteFile(cfgPath, []byte(content), 0644))

	return fixture{BaseModDir: base, ConfigPath: cfgPath}
}
