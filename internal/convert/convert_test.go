package convert

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

const sampleAtom = `<feed xmlns="http://www.w3.org/2005/Atom">
	<title>Sample Blog</title>
	<link rel="alternate" href="https://sample.example/"/>
	<entry>
		<title>Post</title>
		<published>2017-06-28T08:15:00.001-07:00</published>
		<content type="html">&lt;p&gt;Body&lt;/p&gt;</content>
	</entry>
</feed>`

func TestCommandEndToEnd(t *testing.T) {
	dir := t.TempDir()
	in := filepath.Join(dir, "feed.atom")
	out := filepath.Join(dir, "feed.rss.xml")
	rep := filepath.Join(dir, "report.yaml")
	if err := os.WriteFile(in, []byte(sampleAtom), 0o644); err != nil {
		t.Fatal(err)
	}

	cmd := Command()
	cmd.SetArgs([]string{"--input", in, "--output", out, "--report", rep})
	if err := cmd.Execute(); err != nil {
		t.Fatalf("convert: %v", err)
	}

	data, err := os.ReadFile(out)
	if err != nil {
		t.Fatalf("output file: %v", err)
	}
	for _, want := range []string{
		`<rss version="2.0" xmlns:content="http://purl.org/rss/1.0/modules/content/">`,
		"<title>Sample Blog</title>",
		"Wed, 28 Jun 2017 08:15:00 -0700",
		"<content:encoded><![CDATA[<p>Body</p>]]></content:encoded>",
	} {
		if !strings.Contains(string(data), want) {
			t.Errorf("output missing %q:\n%s", want, data)
		}
	}

	if _, err := os.Stat(rep); err != nil {
		t.Errorf("report file: %v", err)
	}
}

func TestCommandDefaultOutput(t *testing.T) {
	dir := t.TempDir()
	in := filepath.Join(dir, "feed.atom")
	if err := os.WriteFile(in, []byte(sampleAtom), 0o644); err != nil {
		t.Fatal(err)
	}

	cmd := Command()
	cmd.SetArgs([]string{"--input", in})
	if err := cmd.Execute(); err != nil {
		t.Fatalf("convert: %v", err)
	}
	if _, err := os.Stat(filepath.Join(dir, "Sample Blog.rss.xml")); err != nil {
		t.Errorf("derived output file: %v", err)
	}
}

func TestCommandFailures(t *testing.T) {
	dir := t.TempDir()

	t.Run("missing_input", func(t *testing.T) {
		cmd := Command()
		cmd.SetArgs([]string{"--input", filepath.Join(dir, "absent.atom")})
		if err := cmd.Execute(); err == nil {
			t.Error("convert succeeded with a missing input file")
		}
	})

	t.Run("malformed_input_writes_nothing", func(t *testing.T) {
		in := filepath.Join(dir, "broken.atom")
		out := filepath.Join(dir, "broken.rss.xml")
		if err := os.WriteFile(in, []byte("<feed><entry></feed>"), 0o644); err != nil {
			t.Fatal(err)
		}
		cmd := Command()
		cmd.SetArgs([]string{"--input", in, "--output", out})
		if err := cmd.Execute(); err == nil {
			t.Error("convert succeeded on malformed XML")
		}
		if _, err := os.Stat(out); !os.IsNotExist(err) {
			t.Error("output file was written despite the parse failure")
		}
	})
}

func TestDefaultOutputPath(t *testing.T) {
	got := defaultOutputPath(filepath.Join("exports", "feed.atom"), "My: Blog")
	want := filepath.Join("exports", "My_Blog.rss.xml")
	if got != want {
		t.Errorf("defaultOutputPath = %q; want %q", got, want)
	}
}
