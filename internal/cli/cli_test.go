package cli

import (
	"bytes"
	"context"
	"net"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/robalobadob/wordle/apps/go-wordle/internal/config"
)

func writeWords(t *testing.T, body string) string {
	t.Helper()
	p := filepath.Join(t.TempDir(), "words.txt")
	require.NoError(t, os.WriteFile(p, []byte(body), 0o644))
	return p
}

func TestPlayCommand(t *testing.T) {
	t.Chdir(t.TempDir())
	t.Setenv("STORE_TYPE", "memory")
	answers := writeWords(t, "tango\n")
	allowed := writeWords(t, "mango\ncargo\n")

	var out, errOut bytes.Buffer
	cmd := NewRootCmd()
	cmd.SetIn(strings.NewReader("yes\nzzz\nmango\ntango\nno\n"))
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetArgs([]string{"play", "--answers", answers, "--allowed", allowed, "--log-level", "error"})

	require.NoError(t, cmd.Execute())
	text := out.String()
	assert.Contains(t, text, "Start the game? (yes/no)")
	assert.Contains(t, text, "Please enter a 5 letter valid word")
	assert.Contains(t, text, "Try again. Attempts left: 5")
	assert.Contains(t, text, "Congrats! the word was: tango")
	assert.Contains(t, text, "Thanks for playing!")
}

func TestPlayCommandBadWordsFile(t *testing.T) {
	t.Chdir(t.TempDir())
	t.Setenv("STORE_TYPE", "memory")

	cmd := NewRootCmd()
	cmd.SetIn(strings.NewReader(""))
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs([]string{"play", "--answers", filepath.Join(t.TempDir(), "missing.txt")})

	assert.ErrorContains(t, cmd.Execute(), "load words")
}

func TestOpenStoreMemory(t *testing.T) {
	st, closeFn, err := openStore(config.Config{StoreType: config.StoreMemory})
	require.NoError(t, err)
	assert.NotNil(t, st)
	closeFn()
}

func TestRunStopsWithContext(t *testing.T) {
	l, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	addr := l.Addr().String()
	require.NoError(t, l.Close())

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() {
		done <- run(ctx, addr, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusTeapot)
		}))
	}()

	require.Eventually(t, func() bool {
		resp, err := http.Get("http://" + addr + "/")
		if err != nil {
			return false
		}
		resp.Body.Close()
		return resp.StatusCode == http.StatusTeapot
	}, 2*time.Second, 20*time.Millisecond)

	cancel()
	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("server did not stop")
	}
}
