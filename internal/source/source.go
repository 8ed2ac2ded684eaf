// Package source opens the Atom input document.
//
// Blogger-style exports ship the feed inside a zip archive, so the
// input path may be either a plain XML file or a .zip whose first
// .atom/.xml member is the document. Either way the caller gets the
// raw bytes and the name the document was read under.
package source

import (
	"archive/zip"
	"fmt"
	"io"
	"os"
	"path"
	"path/filepath"
	"sort"
	"strings"
)

// feedExts are the member extensions considered to be the feed inside
// an archive, in preference order.
var feedExts = []string{".atom", ".xml"}

// ReadFile reads the Atom document at p. A path ending in .zip is
// opened as an archive and the feed member is read instead; anything
// else is read as-is.
func ReadFile(p string) ([]byte, string, error) {
	if strings.EqualFold(filepath.Ext(p), ".zip") {
		return readZipMember(p)
	}
	data, err := os.ReadFile(p)
	if err != nil {
		return nil, "", err
	}
	return data, p, nil
}

// readZipMember finds the feed document inside the archive: the first
// member, in sorted path order, with a feed extension. Preference goes
// to .atom members so exports that also carry unrelated XML (settings,
// metadata) still resolve to the feed.
func readZipMember(p string) ([]byte, string, error) {
	zr, err := zip.OpenReader(p)
	if err != nil {
		return nil, "", fmt.Errorf("opening archive %s: %w", p, err)
	}
	defer zr.Close()

	names := make([]string, 0, len(zr.File))
	byName := make(map[string]*zip.File, len(zr.File))
	for _, f := range zr.File {
		if f.FileInfo().IsDir() {
			continue
		}
		names = append(names, f.Name)
		byName[f.Name] = f
	}
	sort.Strings(names)

	for _, ext := range feedExts {
		for _, name := range names {
			if strings.EqualFold(path.Ext(name), ext) {
				data, err := readMember(byName[name])
				if err != nil {
					return nil, "", err
				}
				return data, p + "!" + name, nil
			}
		}
	}
	return nil, "", fmt.Errorf("no .atom or .xml member in %s", p)
}

func readMember(f *zip.File) ([]byte, error) {
	rc, err := f.Open()
	if err != nil {
		return nil, fmt.Errorf("opening archive member %s: %w", f.Name, err)
	}
	defer rc.Close()
	data, err := io.ReadAll(rc)
	if err != nil {
		return nil, fmt.Errorf("reading archive member %s: %w", f.Name, err)
	}
	return data, nil
}
