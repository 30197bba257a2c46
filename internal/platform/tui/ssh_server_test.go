package tui

import (
	"bytes"
	"errors"
	"path/filepath"
	"strings"
	"testing"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/t2048/internal/games/t2048"
)

func TestNewSSHServer(t *testing.T) {
	var buf bytes.Buffer
	cfg := DefaultSSHServerConfig()
	cfg.Address = "127.0.0.1:0"
	cfg.HostKeyPath = filepath.Join(t.TempDir(), "keys", "host_key")

	srv, err := NewSSHServer(cfg, log.New(&buf))
	if err != nil {
		t.Fatalf("NewSSHServer: %v", err)
	}
	if srv.Addr() != "127.0.0.1:0" {
		t.Errorf("Addr() = %q", srv.Addr())
	}

	m, err := srv.newSessionModel("alice", 80, 24)
	if err != nil {
		t.Fatalf("newSessionModel: %v", err)
	}
	m.Init()
	if n := len(m.game.Board().Tiles()); n != 2 {
		t.Errorf("session board has %d tiles, want 2", n)
	}
	if !strings.Contains(m.View(), "points!") {
		t.Error("session view should show the board")
	}
}

func TestNewSSHServerRejectsBadSettings(t *testing.T) {
	cfg := DefaultSSHServerConfig()
	cfg.HostKeyPath = filepath.Join(t.TempDir(), "host_key")
	cfg.Settings.Columns = 2
	cfg.Settings.Rows = 2

	if _, err := NewSSHServer(cfg, log.New(&bytes.Buffer{})); !errors.Is(err, t2048.ErrInvalidSettings) {
		t.Errorf("NewSSHServer error = %v, want ErrInvalidSettings", err)
	}
}
