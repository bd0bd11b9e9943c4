package app

import (
	"bytes"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"
)

// SafeBuffer is a thread-safe buffer for capturing log output in tests.
type SafeBuffer struct {
	b  bytes.Buffer
	mu sync.Mutex
}

func (b *SafeBuffer) Write(p []byte) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.b.Write(p)
}

func (b *SafeBuffer) String() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.b.String()
}

// SetupAppTest validates the config and builds an App wired to in-memory
// buffers: stdin content, a result buffer, and a log buffer.
func SetupAppTest(t *testing.T, cfg Config, stdin string) (*App, *bytes.Buffer, *SafeBuffer) {
	t.Helper()

	cfg.LogLevel = "debug"
	cfg.LogFormat = "text"
	config, err := NewConfig(cfg)
	require.NoError(t, err, "test config must validate")

	out := &bytes.Buffer{}
	logBuf := &SafeBuffer{}
	testApp := NewApp(strings.NewReader(stdin), out, logBuf, config)
	return testApp, out, logBuf
}
