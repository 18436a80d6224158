package fragment

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"go.uber.org/zap"
	"go.uber.org/zap/zaptest"
)

const sampleFragment = "testdata/the_one_fragment/index.html"

func testLogger(t *testing.T) *zap.Logger {
	return zaptest.NewLogger(t, zaptest.WrapOptions(zap.AddCaller(), zap.AddCallerSkip(1)))
}

func mustFragment(t *testing.T, name, markup string) *Fragment {
	t.Helper()

	f, err := New(name, strings.NewReader(markup), testLogger(t))
	if err != nil {
		t.Fatalf("New(%s): %v", name, err)
	}
	return f
}

func loadSample(t *testing.T) *Fragment {
	t.Helper()

	data, err := os.ReadFile(filepath.Clean(sampleFragment))
	if err != nil {
		t.Fatalf("read sample fragment: %v", err)
	}
	return mustFragment(t, "my_fragment", string(data))
}

// mapSource serves templates from memory, mimicking store semantics.
type mapSource map[string]string

func (m mapSource) Load(_ context.Context, id string) ([]byte, error) {
	data, ok := m[id]
	if !ok {
		return nil, &NotFoundError{ID: id, Path: id + "/index.html"}
	}
	return []byte(data), nil
}
