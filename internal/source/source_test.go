package source

import (
	"archive/zip"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func writeZip(t *testing.T, dir string, members map[string]string) string {
	t.Helper()
	p := filepath.Join(dir, "export.zip")
	f, err := os.Create(p)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()
	zw := zip.NewWriter(f)
	for name, body := range members {
		w, err := zw.Create(name)
		if err != nil {
			t.Fatal(err)
		}
		if _, err := w.Write([]byte(body)); err != nil {
			t.Fatal(err)
		}
	}
	if err := zw.Close(); err != nil {
		t.Fatal(err)
	}
	return p
}

func TestReadFilePlain(t *testing.T) {
	dir := t.TempDir()
	p := filepath.Join(dir, "feed.atom")
	if err := os.WriteFile(p, []byte("<feed/>"), 0o644); err != nil {
		t.Fatal(err)
	}
	data, name, err := ReadFile(p)
	if err != nil {
		t.Fatalf("ReadFile: %v", err)
	}
	if string(data) != "<feed/>" {
		t.Errorf("data = %q", data)
	}
	if name != p {
		t.Errorf("name = %q; want %q", name, p)
	}
}

func TestReadFileMissing(t *testing.T) {
	if _, _, err := ReadFile(filepath.Join(t.TempDir(), "absent.xml")); err == nil {
		t.Fatal("ReadFile succeeded on a missing file")
	}
}

func TestReadFileZip(t *testing.T) {
	testCases := []struct {
		name       string
		members    map[string]string
		wantData   string
		wantMember string
		wantErr    bool
	}{
		{
			name:       "atom_preferred_over_xml",
			members:    map[string]string{"Blogger/Blogs/b/settings.xml": "<s/>", "Blogger/Blogs/b/feed.atom": "<feed/>"},
			wantData:   "<feed/>",
			wantMember: "Blogger/Blogs/b/feed.atom",
		},
		{
			name:       "xml_fallback",
			members:    map[string]string{"export/feed.xml": "<feed/>", "export/readme.txt": "hi"},
			wantData:   "<feed/>",
			wantMember: "export/feed.xml",
		},
		{
			name:    "no_feed_member",
			members: map[string]string{"readme.txt": "hi"},
			wantErr: true,
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			p := writeZip(t, t.TempDir(), tc.members)
			data, name, err := ReadFile(p)
			if tc.wantErr {
				if err == nil {
					t.Fatal("ReadFile succeeded; want error")
				}
				return
			}
			if err != nil {
				t.Fatalf("ReadFile: %v", err)
			}
			if string(data) != tc.wantData {
				t.Errorf("data = %q; want %q", data, tc.wantData)
			}
			if !strings.HasSuffix(name, "!"+tc.wantMember) {
				t.Errorf("name = %q; want suffix !%q", name, tc.wantMember)
			}
		})
	}
}
