package htmlwriter_test

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/cybergodev/htmlwriter"
)

func TestWriteFile(t *testing.T) {
	t.Run("writes to the given path", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "page.html")
		doc := htmlwriter.NewDocument("Saved")
		if err := doc.WriteFile(path, htmlwriter.DefaultRenderConfig()); err != nil {
			t.Fatalf("WriteFile() failed: %v", err)
		}
		data, err := os.ReadFile(path)
		if err != nil {
			t.Fatalf("ReadFile() failed: %v", err)
		}
		if !strings.HasPrefix(string(data), "<!DOCTYPE html>\n") {
			t.Errorf("file starts with %q; want the HTML5 doctype", string(data[:min(len(data), 20)]))
		}
	})

	t.Run("empty path defaults to index.html", func(t *testing.T) {
		orig, err := os.Getwd()
		if err != nil {
			t.Fatalf("Getwd() failed: %v", err)
		}
		if err := os.Chdir(t.TempDir()); err != nil {
			t.Fatalf("Chdir() failed: %v", err)
		}
		t.Cleanup(func() { os.Chdir(orig) })
		doc := htmlwriter.NewDocument("Default")
		if err := doc.WriteFile("", htmlwriter.DefaultRenderConfig()); err != nil {
			t.Fatalf("WriteFile() failed: %v", err)
		}
		if _, err := os.Stat(htmlwriter.DefaultFilename); err != nil {
			t.Errorf("index.html not written: %v", err)
		}
	})
}

func TestCharsetExport(t *testing.T) {
	t.Parallel()

	t.Run("unencodable characters become question marks", func(t *testing.T) {
		doc := htmlwriter.NewDocument("π café")
		cfg := htmlwriter.DefaultRenderConfig()
		cfg.Charset = "iso-8859-1"

		var buf bytes.Buffer
		if err := doc.Render(&buf, cfg); err != nil {
			t.Fatalf("Render() failed: %v", err)
		}
		out := buf.Bytes()
		if !bytes.Contains(out, []byte("<title>? caf\xe9</title>")) {
			t.Errorf("latin-1 output = %q; want pi replaced with '?' and e-acute as 0xE9", out)
		}
	})

	t.Run("utf-8 passes everything through", func(t *testing.T) {
		doc := htmlwriter.NewDocument("π café")
		cfg := htmlwriter.DefaultRenderConfig()
		cfg.Charset = "utf-8"

		var buf bytes.Buffer
		if err := doc.Render(&buf, cfg); err != nil {
			t.Fatalf("Render() failed: %v", err)
		}
		if !strings.Contains(buf.String(), "<title>π café</title>") {
			t.Errorf("utf-8 output = %q; want the title unchanged", buf.String())
		}
	})

	t.Run("ascii replaces every non-ascii character", func(t *testing.T) {
		doc := htmlwriter.NewDocument("café")
		cfg := htmlwriter.DefaultRenderConfig()
		cfg.Charset = "ascii"

		var buf bytes.Buffer
		if err := doc.Render(&buf, cfg); err != nil {
			t.Fatalf("Render() failed: %v", err)
		}
		if !strings.Contains(buf.String(), "<title>caf?</title>") {
			t.Errorf("ascii output = %q; want e-acute replaced with '?'", buf.String())
		}
	})
}
