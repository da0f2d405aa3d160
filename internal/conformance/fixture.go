package conformance

import (
	"fmt"
	"io"
	"strings"

	"github.com/bodgit/sevenzip"
)

// Fixture is one loaded test-ROM image plus the file name it came from,
// used for logging and for matching against expected-output tables.
type Fixture struct {
	Name string
	ROM  []byte
}

// LoadFixtures opens a .7z archive of test-ROM binaries (the
// blargg/mooneye-style conformance suites are shipped this way so the
// binaries themselves don't need to live unpacked in the repository) and
// returns every entry under the archive whose name matches suffix (an
// empty suffix matches everything).
func LoadFixtures(archivePath, suffix string) ([]Fixture, error) {
	rc, err := sevenzip.OpenReader(archivePath)
	if err != nil {
		return nil, fmt.Errorf("conformance: opening %s: %w", archivePath, err)
	}
	defer rc.Close()

	var fixtures []Fixture
	for _, f := range rc.File {
		if f.FileInfo().IsDir() {
			continue
		}
		if suffix != "" && !strings.HasSuffix(f.Name, suffix) {
			continue
		}

		r, err := f.Open()
		if err != nil {
			return nil, fmt.Errorf("conformance: opening archive entry %s: %w", f.Name, err)
		}
		data, err := io.ReadAll(r)
		r.Close()
		if err != nil {
			return nil, fmt.Errorf("conformance: reading archive entry %s: %w", f.Name, err)
		}

		fixtures = append(fixtures, Fixture{Name: f.Name, ROM: data})
	}
	return fixtures, nil
}
