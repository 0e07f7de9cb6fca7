// Package testutil holds helpers shared by the package tests: the sample
// translation files and a logger that writes through testing.TB.
package testutil

import (
	"embed"
	"path"
	"testing"
)

//go:embed testdata/*.ts testdata/*.csv
var fixtures embed.FS

// Fixture returns the sample file name, a translation literal (.ts) or the
// matching table (.csv). A missing fixture fails the test.
func Fixture(t testing.TB, name string) []byte {
	t.Helper()
	data, err := fixtures.ReadFile(path.Join("testdata", name))
	if err != nil {
		t.Fatalf("testutil: fixture %q: %v", name, err)
	}
	return data
}
