package main

import (
	"os"
	"path/filepath"
	"sort"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/tliron/commonlog"
	_ "github.com/tliron/commonlog/simple"
)

func writeFile(t *testing.T, path, contents string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(contents), 0o644))
}

func TestCollectJavaFilesExpandsDirectoriesAndFiltersExtension(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "a", "Foo.java"), "class Foo {}\n")
	writeFile(t, filepath.Join(dir, "a", "notes.txt"), "ignore me\n")
	writeFile(t, filepath.Join(dir, "b", "Bar.java"), "class Bar {}\n")

	files, err := collectJavaFiles([]string{dir})
	require.NoError(t, err)

	var names []string
	for _, f := range files {
		names = append(names, filepath.Base(f))
	}
	sort.Strings(names)
	require.Equal(t, []string{"Bar.java", "Foo.java"}, names)
}

func TestCollectJavaFilesTakesExplicitFileArgumentVerbatim(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "Weird.txt")
	writeFile(t, path, "class Weird {}\n")

	files, err := collectJavaFiles([]string{path})
	require.NoError(t, err)
	require.Equal(t, []string{path}, files)
}

func TestCollectJavaFilesMissingPath(t *testing.T) {
	_, err := collectJavaFiles([]string{filepath.Join(t.TempDir(), "missing")})
	require.Error(t, err)
}

func TestParseFileReportsSyntaxError(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "Bad.java")
	writeFile(t, path, "class Bad { void m() { 1 + ; } }\n")

	err := parseFile(path, false, false, commonlog.GetLogger("javaparse-test"))
	require.Error(t, err)
}

func TestParseFileSucceedsOnValidSource(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "Good.java")
	writeFile(t, path, "class Good { void m() { int x = 1; } }\n")

	err := parseFile(path, true, false, commonlog.GetLogger("javaparse-test"))
	require.NoError(t, err)
}
