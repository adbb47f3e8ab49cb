package cmd

import (
	"bytes"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	mserror "github.com/msto63/mscript/foundation/core/error"
	"github.com/msto63/mscript/foundation/mscript/ast"
)

type result struct {
	stdout string
	stderr string
	err    error
}

// workspace isolates the environment and writes a config file whose cache
// lives below the test directory
func workspace(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	t.Setenv("HOME", dir)
	t.Setenv("LC_ALL", "C")
	t.Setenv("LC_MESSAGES", "C")
	t.Setenv("LANG", "C")

	config := "locale = \"en\"\n\n[cache]\npath = '" + filepath.Join(dir, "cache", "parse.db") + "'\n"
	writeSource(t, dir, "mscript.toml", config)
	return dir
}

func writeSource(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func run(t *testing.T, dir, stdin string, args ...string) result {
	t.Helper()
	rootCmd, _ := newRootCmd()
	var stdout, stderr bytes.Buffer
	rootCmd.SetOut(&stdout)
	rootCmd.SetErr(&stderr)
	rootCmd.SetIn(strings.NewReader(stdin))
	rootCmd.SetArgs(append([]string{"--plain", "--config", filepath.Join(dir, "mscript.toml")}, args...))

	err := rootCmd.Execute()
	return result{stdout: stdout.String(), stderr: stderr.String(), err: err}
}

func TestTokens(t *testing.T) {
	dir := workspace(t)

	res := run(t, dir, "a'\n", "tokens", "-")
	if res.err != nil {
		t.Fatalf("tokens error = %v, stderr = %s", res.err, res.stderr)
	}
	for _, want := range []string{"1:1", "IDENTIFIER", "TRANSPOSE", "END_OF_STATEMENT"} {
		if !strings.Contains(res.stdout, want) {
			t.Errorf("token table lacks %q:\n%s", want, res.stdout)
		}
	}

	res = run(t, dir, "x = 'abc\n", "tokens", "-")
	if !errors.Is(res.err, errReported) {
		t.Fatalf("unterminated literal error = %v", res.err)
	}
	if !strings.HasPrefix(res.stderr, "<stdin>:1:5: unterminated literal") {
		t.Errorf("stderr = %q", res.stderr)
	}
}

func TestAST(t *testing.T) {
	dir := workspace(t)
	file := writeSource(t, dir, "script.m", "x = 1 + 2;\n")

	res := run(t, dir, "", "ast", file)
	if res.err != nil {
		t.Fatalf("ast error = %v", res.err)
	}
	for _, want := range []string{"StatementList", `AssignmentExpression "="`, `BinaryOperationExpression "+"`} {
		if !strings.Contains(res.stdout, want) {
			t.Errorf("tree lacks %q:\n%s", want, res.stdout)
		}
	}

	res = run(t, dir, "", "ast", "--json", file)
	if res.err != nil {
		t.Fatalf("ast --json error = %v", res.err)
	}
	var root ast.Node
	if err := json.Unmarshal([]byte(res.stdout), &root); err != nil {
		t.Fatalf("output is not a tree: %v\n%s", err, res.stdout)
	}
	if root.Kind != ast.StatementList || root.Len() != 1 {
		t.Errorf("decoded tree = %s", &root)
	}
}

func TestCheck(t *testing.T) {
	dir := workspace(t)
	good := writeSource(t, dir, "good.m", "for i = 1:3\n  disp(i)\nend\n")
	bad := writeSource(t, dir, "bad.m", "a b\n")

	res := run(t, dir, "", "check", good)
	if res.err != nil {
		t.Fatalf("check good error = %v, stderr = %s", res.err, res.stderr)
	}
	if !strings.Contains(res.stdout, good+": ok\n") || !strings.Contains(res.stdout, "1 file checked, 0 failed") {
		t.Errorf("stdout = %q", res.stdout)
	}

	res = run(t, dir, "", "check", good, bad)
	if !errors.Is(res.err, errReported) {
		t.Fatalf("check bad error = %v", res.err)
	}
	want := bad + ":1:3: unexpected \"b\", expected end of statement\n  a b\n    ^\n"
	if res.stderr != want {
		t.Errorf("stderr = %q, want %q", res.stderr, want)
	}
	if !strings.Contains(res.stdout, "2 files checked, 1 failed") {
		t.Errorf("stdout = %q", res.stdout)
	}
}

func TestCheckLocalised(t *testing.T) {
	dir := workspace(t)
	bad := writeSource(t, dir, "bad.m", "while x\n  y = 1\n")

	res := run(t, dir, "", "--locale", "de", "check", bad)
	if !errors.Is(res.err, errReported) {
		t.Fatalf("error = %v", res.err)
	}
	if !strings.HasPrefix(res.stderr, bad+":1:1: unvollständige while-Anweisung: end fehlt\n") {
		t.Errorf("stderr = %q", res.stderr)
	}
}

func TestCheckMissingFile(t *testing.T) {
	dir := workspace(t)
	missing := filepath.Join(dir, "absent.m")

	res := run(t, dir, "", "check", missing)
	if !errors.Is(res.err, errReported) {
		t.Fatalf("error = %v", res.err)
	}
	if !strings.Contains(res.stderr, "not found: "+missing) {
		t.Errorf("stderr = %q", res.stderr)
	}
}

func TestCheckCache(t *testing.T) {
	dir := workspace(t)
	file := writeSource(t, dir, "script.m", "y = x';\n")

	res := run(t, dir, "", "check", "--cache", file)
	if res.err != nil || !strings.Contains(res.stdout, file+": ok\n") {
		t.Fatalf("first check = %q, %v", res.stdout, res.err)
	}
	res = run(t, dir, "", "check", "--cache", file)
	if res.err != nil || !strings.Contains(res.stdout, file+": ok (cached)\n") {
		t.Fatalf("second check = %q, %v", res.stdout, res.err)
	}

	res = run(t, dir, "", "cache", "stats")
	if res.err != nil {
		t.Fatalf("cache stats error = %v", res.err)
	}
	if !strings.HasPrefix(res.stdout, "1 entries, 1 hits, 8 bytes in ") {
		t.Errorf("cache stats = %q", res.stdout)
	}

	res = run(t, dir, "", "cache", "prune")
	if res.err != nil || res.stdout != "0 entries removed\n" {
		t.Errorf("cache prune = %q, %v", res.stdout, res.err)
	}

	res = run(t, dir, "", "cache", "clear")
	if res.err != nil || res.stdout != "parse cache cleared\n" {
		t.Errorf("cache clear = %q, %v", res.stdout, res.err)
	}
	res = run(t, dir, "", "cache", "stats")
	if !strings.HasPrefix(res.stdout, "0 entries, 0 hits, 0 bytes in ") {
		t.Errorf("cache stats after clear = %q", res.stdout)
	}
}

func TestReadErrorsAreReturned(t *testing.T) {
	dir := workspace(t)

	res := run(t, dir, "", "ast", filepath.Join(dir, "absent.m"))
	if !mserror.HasCode(res.err, mserror.CodeNotFound) {
		t.Errorf("error = %v, want NOT_FOUND", res.err)
	}
}

func TestConfigShow(t *testing.T) {
	dir := workspace(t)

	res := run(t, dir, "", "config", "show")
	if res.err != nil {
		t.Fatalf("config show error = %v", res.err)
	}
	for _, want := range []string{"# " + filepath.Join(dir, "mscript.toml"), `locale = "en"`, "[cache]", `max_age = "720h0m0s"`} {
		if !strings.Contains(res.stdout, want) {
			t.Errorf("config show lacks %q:\n%s", want, res.stdout)
		}
	}
}

func TestInvalidConfig(t *testing.T) {
	dir := workspace(t)
	writeSource(t, dir, "mscript.toml", "[log]\nlevel = \"loud\"\n")

	res := run(t, dir, "", "version")
	if res.err == nil {
		t.Fatal("invalid log level accepted")
	}
}

func TestVersion(t *testing.T) {
	dir := workspace(t)

	res := run(t, dir, "", "version")
	if res.err != nil || !strings.HasPrefix(res.stdout, "mscript ") {
		t.Errorf("version = %q, %v", res.stdout, res.err)
	}

	res = run(t, dir, "", "version", "--json")
	var info map[string]interface{}
	if err := json.Unmarshal([]byte(res.stdout), &info); err != nil {
		t.Fatalf("version --json: %v\n%s", err, res.stdout)
	}
	if info["cache_schema"] != float64(1) {
		t.Errorf("cache_schema = %v", info["cache_schema"])
	}
}

func TestLocalizeBeforeSetup(t *testing.T) {
	a := &app{locale: "de"}
	err := mserror.New("x").WithCode(mserror.CodeNotFound).
		WithMessage(mserror.CodeNotFound.MessageKey(), map[string]interface{}{"Path": "a.m"})
	if got := a.localize(err); !strings.Contains(got, "a.m") {
		t.Errorf("localize() = %q", got)
	}
}
