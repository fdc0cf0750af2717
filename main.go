package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/adrg/xdg"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/llehouerou/minipod/internal/catalog"
	"github.com/llehouerou/minipod/internal/config"
	"github.com/llehouerou/minipod/internal/errmsg"
	"github.com/llehouerou/minipod/internal/input"
	"github.com/llehouerou/minipod/internal/keymap"
	"github.com/llehouerou/minipod/internal/machine"
	"github.com/llehouerou/minipod/internal/menu"
	"github.com/llehouerou/minipod/internal/redraw"
	"github.com/llehouerou/minipod/internal/render"
	"github.com/llehouerou/minipod/internal/state"
	"github.com/llehouerou/minipod/internal/stderr"
	"github.com/llehouerou/minipod/internal/transport"
)

const (
	appName       = "minipod"
	storeFileName = "catalog.json"
	defaultWidth  = 48
)

type tickMsg time.Time

type model struct {
	machine  *machine.Context
	tr       transport.Transport
	sched    *redraw.Scheduler
	term     *render.Terminal
	deb      *input.Debouncer
	keys     keymap.Map
	stateMgr *state.Manager
	cfg      *config.Config

	storePath string
	frame     time.Duration
	status    string
}

func initialModel(rescan bool) (model, error) {
	cfg, err := config.Load()
	if err != nil {
		return model{}, err
	}

	storePath := cfg.StorePath
	if storePath == "" {
		storePath, err = xdg.DataFile(filepath.Join(appName, storeFileName))
		if err != nil {
			return model{}, err
		}
	}

	stateMgr, err := state.Open()
	if err != nil {
		return model{}, err
	}

	var status string
	var cat *catalog.Catalog

	if rescan {
		cat, status, err = rebuildCatalog(cfg.MusicDir, storePath)
		if err != nil {
			stateMgr.Close()
			return model{}, err
		}
	} else {
		cat, err = catalog.Load(storePath)
		var serr *catalog.StorageError
		if errors.As(err, &serr) && cfg.MusicDir != "" {
			// No usable store yet; scan the music directory to build one
			cat, status, err = rebuildCatalog(cfg.MusicDir, storePath)
			if err != nil {
				stateMgr.Close()
				return model{}, err
			}
		} else if err != nil {
			// Degrade to the empty state instead of refusing to start
			status = errmsg.Format(errmsg.OpCatalogLoad, err)
		}
	}

	tr := transport.NewBeep()
	mach := machine.New(cat, tr, machine.Options{
		VisibleRows:       cfg.VisibleRows,
		DoubleClickWindow: time.Duration(cfg.DoubleClickMs) * time.Millisecond,
	})

	if restoreStatus := restoreSession(mach, stateMgr); restoreStatus != "" && status == "" {
		status = restoreStatus
	}

	term := render.NewTerminal(defaultWidth)
	m := model{
		machine:   mach,
		tr:        tr,
		sched:     redraw.New(time.Duration(cfg.FrameIntervalMs) * time.Millisecond),
		term:      term,
		deb:       input.New(time.Duration(cfg.DebounceMs) * time.Millisecond),
		keys:      keymap.Default,
		stateMgr:  stateMgr,
		cfg:       cfg,
		storePath: storePath,
		frame:     time.Duration(cfg.FrameIntervalMs) * time.Millisecond,
	}
	m.setStatus(status)
	return m, nil
}

// rebuildCatalog scans the music directory into a fresh store.
func rebuildCatalog(musicDir, storePath string) (*catalog.Catalog, string, error) {
	if musicDir == "" {
		return catalog.Empty(), "Set music_dir in config.toml to scan your music", nil
	}
	cat, stats, err := catalog.Regenerate(context.Background(), musicDir, storePath)
	if err != nil {
		var serr *catalog.StorageError
		if errors.As(err, &serr) {
			// Unreadable music dir: start empty, tell the user
			return catalog.Empty(), errmsg.Format(errmsg.OpCatalogRebuild, err), nil
		}
		return cat, "", err
	}
	return cat, "Scanned " + stats.Summary(), nil
}

// restoreSession puts the machine back where the last run left off. Only
// navigation is restored; playback never auto-starts. A read failure is
// returned as a status-line message, not a fatal error.
func restoreSession(mach *machine.Context, mgr *state.Manager) string {
	sess, err := mgr.GetSession()
	if err != nil {
		return errmsg.Format(errmsg.OpSessionLoad, err)
	}
	if sess == nil || sess.Screen == "home" {
		return ""
	}
	if id, ok := menu.ParseID(sess.MenuID); ok {
		mach.RestoreMenu(id, sess.SelectedIndex)
	}
	return ""
}

// snapshot captures the machine state for the session store.
func (m *model) snapshot() state.Session {
	s := state.Session{
		PlayingIndex: m.machine.PlayingIndex(),
		ElapsedSecs:  int(m.machine.Elapsed() / time.Second),
	}
	switch m.machine.Screen() {
	case machine.ScreenHome:
		s.Screen = "home"
	case machine.ScreenMenu:
		s.Screen = "menu"
	case machine.ScreenPlaying:
		s.Screen = "playing"
	}
	if m.machine.Screen() != machine.ScreenHome {
		mn := m.machine.Menu()
		s.MenuID = mn.ID.String()
		s.SelectedIndex = mn.SelectedIndex()
		s.ScrollOffset = mn.Cursor.Offset()
	}
	return s
}

func (m model) Init() tea.Cmd {
	return m.tickCmd()
}

func (m model) tickCmd() tea.Cmd {
	return tea.Tick(m.frame, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.term.SetWidth(msg.Width)
		m.machine.ForceFullRedraw()

	case tea.KeyMsg:
		return m.handleKey(msg)

	case tickMsg:
		now := time.Time(msg)
		// Audio libraries write errors straight to fd 2; surface them in
		// the status line instead of letting them corrupt the layout
		select {
		case line := <-stderr.Messages:
			m.setStatus(line)
		default:
		}
		// Audio is serviced before the repaint so playback never starves
		// behind a slow draw
		if err := m.machine.Tick(now); err != nil && !errors.Is(err, machine.ErrEmptyCatalog) {
			m.setStatus(errmsg.Format(errmsg.OpPlaybackNext, err))
		}
		if m.sched.Tick(now, m.machine, m.term) {
			// A clearing repaint wipes the status region; re-assert it
			m.term.DrawStatus(m.status)
		}
		return m, m.tickCmd()
	}
	return m, nil
}

func (m model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	now := time.Now()

	switch {
	case key.Matches(msg, m.keys.Quit):
		m.machine.Shutdown()
		m.stateMgr.SaveSession(m.snapshot())
		m.stateMgr.Close()
		return m, tea.Quit

	case key.Matches(msg, m.keys.Rescan):
		cat, status, err := rebuildCatalog(m.cfg.MusicDir, m.storePath)
		if err != nil {
			m.setStatus(errmsg.Format(errmsg.OpCatalogRebuild, err))
			return m, nil
		}
		// Playback references catalog indices, so it stops on rebuild
		m.machine.Shutdown()
		m.machine = machine.New(cat, m.tr, machine.Options{
			VisibleRows:       m.cfg.VisibleRows,
			DoubleClickWindow: time.Duration(m.cfg.DoubleClickMs) * time.Millisecond,
		})
		m.setStatus(status)

	case key.Matches(msg, m.keys.Prev):
		if m.deb.Press(input.Prev, now) {
			m.buttonErr(errmsg.OpPlaybackPrev, m.machine.OnPrev(now))
		}

	case key.Matches(msg, m.keys.Next):
		if m.deb.Press(input.Next, now) {
			m.buttonErr(errmsg.OpPlaybackNext, m.machine.OnNext(now))
		}

	case key.Matches(msg, m.keys.Select):
		if m.deb.Press(input.Select, now) {
			m.buttonErr(errmsg.OpPlaybackStart, m.machine.OnSelect(now))
		}
	}

	m.stateMgr.SaveSession(m.snapshot())
	return m, nil
}

// buttonErr surfaces a button-handler error in the status line. An empty
// catalog is expected state, not an error worth showing.
func (m *model) buttonErr(op errmsg.Op, err error) {
	if err == nil || errors.Is(err, machine.ErrEmptyCatalog) {
		return
	}
	m.setStatus(errmsg.Format(op, err))
}

func (m *model) setStatus(status string) {
	if status == m.status {
		return
	}
	m.status = status
	m.term.DrawStatus(status)
}

func (m model) View() string {
	return m.term.Frame()
}

func main() {
	rescan := flag.Bool("rescan", false, "rescan the music directory before starting")
	flag.Parse()

	// Must run before the speaker initializes
	_ = stderr.Start()
	defer stderr.Stop()

	m, err := initialModel(*rescan)
	if err != nil {
		stderr.Stop()
		fmt.Println(errmsg.Format(errmsg.OpInitialize, err))
		os.Exit(1)
	}

	p := tea.NewProgram(m, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		stderr.Stop()
		fmt.Printf("Error running program: %v\n", err)
		os.Exit(1)
	}
}
