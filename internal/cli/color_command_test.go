package cli

import (
	"encoding/json"
	"strings"
	"testing"
)

func TestColorConvert_Text(t *testing.T) {
	isolate(t)
	r := runCLI(t, "", "color", "convert", "#3B82F6")
	if r.code != 0 {
		t.Fatalf("code=%d err=%v", r.code, r.err)
	}
	want := "hex    #3b82f6\n" +
		"rgb    rgb(59, 130, 246)\n" +
		"hsl    hsl(217, 91%, 60%)\n" +
		"hsv    hsv(217, 76%, 96%)\n" +
		"oklch  oklch(0.6 0.91 217)\n"
	if !strings.HasPrefix(r.stdout, want) {
		t.Fatalf("unexpected output:\n%s", r.stdout)
	}
	if !strings.Contains(r.stdout, "oklch* oklch(") {
		t.Fatalf("expected exact oklch line, got:\n%s", r.stdout)
	}
	if strings.Contains(r.stdout, "\x1b[") {
		t.Fatalf("expected no ANSI escapes when not writing to a terminal")
	}
}

func TestColorConvert_Strict(t *testing.T) {
	isolate(t)

	r := runCLI(t, "", "color", "convert", "nope", "--format", "json")
	if r.code != 0 {
		t.Fatalf("lenient parse should succeed, got code=%d err=%v", r.code, r.err)
	}
	if !strings.Contains(r.stdout, `"hex": "#000000"`) {
		t.Fatalf("expected black, got:\n%s", r.stdout)
	}

	r = runCLI(t, "", "color", "convert", "--strict", "nope")
	if r.code != 1 || !strings.Contains(r.stderr, "invalid hex color") {
		t.Fatalf("expected exit code 1 with invalid hex error, got code=%d stderr=%q", r.code, r.stderr)
	}

	r = runCLI(t, "", "color", "convert", "--strict", "#abc")
	if r.code != 0 || !strings.HasPrefix(r.stdout, "hex    #aabbcc\n") {
		t.Fatalf("expected shorthand to expand, got code=%d out=%q", r.code, r.stdout)
	}
}

func TestColorHarmony(t *testing.T) {
	isolate(t)

	r := runCLI(t, "", "color", "harmony", "#ff0000")
	if r.code != 0 {
		t.Fatalf("code=%d err=%v", r.code, r.err)
	}
	if r.stdout != "#ff0000\n#26d9d9\n" {
		t.Fatalf("unexpected complementary output: %q", r.stdout)
	}

	r = runCLI(t, "", "color", "harmony", "--type", "triadic", "--format", "json", "#ff0000")
	if r.code != 0 {
		t.Fatalf("code=%d err=%v", r.code, r.err)
	}
	var got struct {
		Type   string   `json:"type"`
		Colors []string `json:"colors"`
	}
	if err := json.Unmarshal([]byte(r.stdout), &got); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if got.Type != "triadic" || len(got.Colors) != 3 || got.Colors[0] != "#ff0000" {
		t.Fatalf("unexpected triadic result: %+v", got)
	}

	r = runCLI(t, "", "color", "harmony", "--type", "tetradic", "#ff0000")
	if r.code != 2 {
		t.Fatalf("expected usage error for unknown harmony, got code=%d", r.code)
	}
}

func TestColorShades(t *testing.T) {
	isolate(t)

	r := runCLI(t, "", "color", "shades", "#3b82f6")
	if r.code != 0 {
		t.Fatalf("code=%d err=%v", r.code, r.err)
	}
	lines := strings.Split(strings.TrimRight(r.stdout, "\n"), "\n")
	if len(lines) != 10 || !strings.HasPrefix(lines[0], " 50 #") || !strings.HasPrefix(lines[9], "900 #") {
		t.Fatalf("unexpected shades output:\n%s", r.stdout)
	}

	r = runCLI(t, "", "color", "shades", "--export", "css", "--name", "brand", "#3b82f6")
	if r.code != 0 {
		t.Fatalf("code=%d err=%v", r.code, r.err)
	}
	if !strings.HasPrefix(r.stdout, ":root {\n") || !strings.Contains(r.stdout, "--brand-500: #") {
		t.Fatalf("unexpected css export:\n%s", r.stdout)
	}

	r = runCLI(t, "", "color", "shades", "--export", "scss", "#3b82f6")
	if r.code != 2 {
		t.Fatalf("expected usage error for unknown export format, got code=%d", r.code)
	}
}

func TestColorContrast(t *testing.T) {
	isolate(t)

	r := runCLI(t, "", "color", "contrast", "#777777", "#ffffff")
	if r.code != 0 {
		t.Fatalf("code=%d err=%v", r.code, r.err)
	}
	want := "ratio  4.48:1\n" +
		"AA     normal fail  large pass\n" +
		"AAA    normal fail  large fail\n"
	if r.stdout != want {
		t.Fatalf("got:\n%s\nwant:\n%s", r.stdout, want)
	}

	r = runCLI(t, "", "color", "contrast", "--format", "yaml", "#000000", "#ffffff")
	if r.code != 0 || !strings.Contains(r.stdout, "ratio: 21") {
		t.Fatalf("unexpected yaml output (code=%d):\n%s", r.code, r.stdout)
	}

	r = runCLI(t, "", "color", "contrast", "--format", "xml", "#000000", "#ffffff")
	if r.code != 2 {
		t.Fatalf("expected usage error for unknown format, got code=%d", r.code)
	}
}
