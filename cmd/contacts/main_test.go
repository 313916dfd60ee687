package main

import (
	"bytes"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func runApp(t *testing.T, input string, args ...string) string {
	var out bytes.Buffer
	app := newApp()
	app.Reader = strings.NewReader(input)
	app.Writer = &out
	require.NoError(t, app.Run(append([]string{"contacts", "--log-level", "error"}, args...)))
	return out.String()
}

func TestTreeCommand(t *testing.T) {
	assert := assert.New(t)

	out := runApp(t, "", "tree", "--seed", "3")
	assert.Contains(out, "─◉")
	assert.Contains(out, "─◌")
	assert.Regexp(`(?m)^[1-3] contacts$`, out)

	out = runApp(t, "", "tree", "--collate", "--locale", "fr")
	assert.Contains(out, "0 contacts")

	app := newApp()
	app.Writer = io.Discard
	assert.Error(app.Run([]string{"contacts", "--log-level", "error", "tree", "--collate", "--locale", "not a tag!"}))
}

func TestMenuCommand(t *testing.T) {
	assert := assert.New(t)

	out := runApp(t, "2\nAda\nLovelace\nemail: ada@example.com\n4\n8\n", "--seed", "2")
	assert.Contains(out, "Contact Manager Menu")
	assert.Contains(out, "Lovelace, Ada")

	out = runApp(t, "8\n", "menu")
	assert.Contains(out, "Contact Manager Menu")
}

func TestStartMetrics(t *testing.T) {
	assert := assert.New(t)
	require := require.New(t)
	logger := slog.New(slog.DiscardHandler)

	srv, addr, err := startMetrics("", logger)
	assert.NoError(err)
	assert.Nil(srv)
	assert.Nil(addr)

	srv, addr, err = startMetrics("127.0.0.1:0", logger)
	require.NoError(err)
	defer srv.Close()

	resp, err := http.Get("http://" + addr.String() + "/metrics")
	require.NoError(err)
	defer resp.Body.Close()
	assert.Equal(http.StatusOK, resp.StatusCode)
	body, err := io.ReadAll(resp.Body)
	require.NoError(err)
	assert.Contains(string(body), "contacts_book_contacts")

	_, _, err = startMetrics("not-an-address", logger)
	assert.Error(err)
}
