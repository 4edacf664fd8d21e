// Package tui provides the Bubble Tea integration for Klondike.
// It handles the terminal UI loop, mouse and key dispatch, the menu and
// settings screens, and persistence of finished deals.
package tui

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-klondike/internal/config"
	"github.com/vovakirdan/tui-klondike/internal/core"
	"github.com/vovakirdan/tui-klondike/internal/klondike"
	"github.com/vovakirdan/tui-klondike/internal/storage"
)

// footerRows is the space below the scene reserved for the help line.
const footerRows = 1

// Options configures a Model.
type Options struct {
	Store         *storage.Store // Optional; nil runs without persistence
	Config        config.KlondikeConfig
	Runtime       core.RuntimeConfig
	Logger        *log.Logger // Optional; nil discards
	Sound         Sound       // Optional; nil uses a silent bell
	SessionID     string      // Tags log lines; empty for local play
	ScreenshotDir string      // Defaults to ~/.klondike/screenshots
}

// Model is the Bubble Tea model for the whole application: menu, settings and game.
type Model struct {
	game      *klondike.Game
	screen    *core.Screen
	store     *storage.Store
	sound     Sound
	logger    *log.Logger
	cfg       config.KlondikeConfig
	runtime   core.RuntimeConfig
	keyMapper *KeyMapper
	help      help.Model

	scene    Scene
	previous Scene // Scene to return to from settings
	sliding  bool  // Volume slider is being dragged
	status   string

	dealt    bool      // A deal exists
	recorded bool      // The current deal's outcome has been stored
	started  time.Time // When the current deal was dealt
	nextSeed int64     // Seed for the next deal, 0 = time based

	screenshotDir string
	quitting      bool
}

// NewModel creates the application model. It starts on the main menu.
func NewModel(opts Options) Model {
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}
	if opts.SessionID != "" {
		logger = logger.With("session", opts.SessionID)
	}

	volume := opts.Config.Audio.Volume
	if opts.Store != nil {
		v, err := opts.Store.Volume(volume)
		if err != nil {
			logger.Warn("could not load volume", "error", err)
		}
		volume = v
	}

	sound := opts.Sound
	if sound == nil {
		sound = NewBell(nil, volume)
	}
	sound.SetVolume(volume)

	dir := opts.ScreenshotDir
	if dir == "" {
		dir = filepath.Join(os.Getenv("HOME"), ".klondike", "screenshots")
	}

	rc := opts.Runtime
	h := help.New()
	h.Width = rc.ScreenW

	return Model{
		game:          klondike.NewGame(klondike.LayoutParamsFromConfig(opts.Config.Layout)),
		screen:        core.NewScreen(rc.ScreenW, core.Max(0, rc.ScreenH-footerRows)),
		store:         opts.Store,
		sound:         sound,
		logger:        logger,
		cfg:           opts.Config,
		runtime:       rc,
		keyMapper:     NewKeyMapper(),
		help:          h,
		scene:         SceneMenu,
		nextSeed:      rc.Seed,
		screenshotDir: dir,
	}
}

// Init initializes the model. The application is event driven and needs no tick.
func (m Model) Init() tea.Cmd {
	return nil
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.apply(m.keyMapper.MapKey(msg))

	case tea.MouseMsg:
		return m.handleMouse(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg)
	}

	return m, nil
}

// apply performs an action from a key or a button in the current scene.
func (m Model) apply(action core.Action) (tea.Model, tea.Cmd) {
	switch action {
	case core.ActionQuit:
		m.finishDeal(storage.OutcomeAbandoned)
		m.quitting = true
		return m, tea.Quit

	case core.ActionScreenshot:
		m.saveScreenshot()

	case core.ActionNewGame:
		m.newDeal()

	case core.ActionResume:
		if m.dealt {
			m.scene = SceneGame
		}

	case core.ActionOpenSettings:
		if m.scene != SceneSettings {
			m.cancelDrag()
			m.previous = m.scene
			m.scene = SceneSettings
		}

	case core.ActionBack:
		switch m.scene {
		case SceneSettings:
			m.scene = m.previous
		case SceneGame:
			m.cancelDrag()
			m.scene = SceneMenu
		}

	case core.ActionDraw:
		if m.scene == SceneGame && m.game.Draw() {
			m.sound.Click()
		}

	case core.ActionVolumeUp:
		if m.scene == SceneSettings {
			m.setVolume(m.sound.Volume() + VolumeStep)
			m.saveVolume()
		}

	case core.ActionVolumeDown:
		if m.scene == SceneSettings {
			m.setVolume(m.sound.Volume() - VolumeStep)
			m.saveVolume()
		}
	}

	return m, nil
}

// handleMouse dispatches pointer events. Buttons take priority over the
// slider and the board.
func (m Model) handleMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	switch msg.Action {
	case tea.MouseActionPress:
		if msg.Button != tea.MouseButtonLeft {
			return m, nil
		}
		if b, ok := ButtonAt(m.buttons(), msg.X, msg.Y); ok {
			m.sound.Click()
			return m.apply(b.Action)
		}
		switch m.scene {
		case SceneSettings:
			slider, _ := m.settings()
			if slider.Contains(msg.X, msg.Y) {
				m.sliding = true
				m.setVolume(SliderValue(msg.X, slider.X, slider.W))
			}
		case SceneGame:
			m.game.PointerDown(msg.X, msg.Y)
		}

	case tea.MouseActionMotion:
		switch {
		case m.sliding:
			slider, _ := m.settings()
			m.setVolume(SliderValue(msg.X, slider.X, slider.W))
		case m.scene == SceneGame:
			m.game.PointerMove(msg.X, msg.Y)
		}

	case tea.MouseActionRelease:
		if m.sliding {
			m.sliding = false
			m.saveVolume()
			m.sound.Click()
			return m, nil
		}
		if m.scene == SceneGame {
			m.release(msg.X, msg.Y)
		}
	}

	return m, nil
}

// release ends a drag and records a win.
func (m *Model) release(x, y int) {
	if m.game.PointerUp(x, y) != klondike.OutcomeCommitted {
		return
	}
	m.sound.Click()
	if m.game.Won() {
		m.logger.Info("deal won", "seed", m.game.Seed(), "duration", time.Since(m.started).Round(time.Second))
		m.finishDeal(storage.OutcomeWon)
	}
}

// cancelDrag returns any lifted cards to their source pile.
func (m *Model) cancelDrag() {
	if m.game.Dragging() {
		m.game.PointerUp(-1, -1)
	}
}

// handleResize processes window resize events. The board keeps its cards.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.runtime.ScreenW = msg.Width
	m.runtime.ScreenH = msg.Height
	h := core.Max(0, msg.Height-footerRows)
	m.screen.Resize(msg.Width, h)
	m.game.Resize(msg.Width, h)
	m.help.Width = msg.Width
	return m, nil
}

// newDeal abandons the current deal, if any, and deals a new one.
func (m *Model) newDeal() {
	m.finishDeal(storage.OutcomeAbandoned)

	seed := m.nextSeed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	m.nextSeed = 0

	rc := m.runtime
	rc.Seed = seed
	rc.ScreenH = core.Max(0, rc.ScreenH-footerRows)
	m.game.Reset(rc)

	m.dealt = true
	m.recorded = false
	m.started = time.Now()
	m.scene = SceneGame
	m.status = ""
	m.logger.Info("new deal", "seed", seed)
}

// finishDeal stores the outcome of the current deal once. Untouched deals
// are not recorded as abandoned.
func (m *Model) finishDeal(outcome string) {
	if !m.dealt || m.recorded {
		return
	}
	if outcome == storage.OutcomeAbandoned && !m.game.Touched() {
		return
	}
	m.recorded = true

	if m.store == nil {
		return
	}
	_, err := m.store.RecordDeal(storage.DealRecord{
		Seed:       m.game.Seed(),
		Outcome:    outcome,
		StartedAt:  m.started,
		FinishedAt: time.Now(),
	})
	if err != nil {
		m.logger.Warn("could not record deal", "error", err)
	}
}

func (m *Model) setVolume(v float64) {
	m.sound.SetVolume(v)
}

func (m *Model) saveVolume() {
	v := m.sound.Volume()
	m.logger.Debug("volume changed", "volume", v)
	if m.store == nil {
		return
	}
	if err := m.store.SetVolume(v); err != nil {
		m.logger.Warn("could not save volume", "error", err)
	}
}

// buttons returns the clickable buttons of the current scene.
func (m Model) buttons() []Button {
	w, h := m.screen.Width(), m.screen.Height()
	switch m.scene {
	case SceneSettings:
		_, buttons := m.settings()
		return buttons
	case SceneGame:
		return toolbarButtons()
	default:
		return menuButtons(m.cfg.Menu, w, h, m.dealt && !m.game.Won())
	}
}

func (m Model) settings() (core.Rect, []Button) {
	return settingsLayout(m.cfg.Menu, m.screen.Width(), m.screen.Height())
}

// saveScreenshot saves the current screen to a file.
func (m *Model) saveScreenshot() {
	m.render()

	//nolint:errcheck // Best-effort directory creation
	os.MkdirAll(m.screenshotDir, 0o755)

	timestamp := time.Now().Format("20060102_150405")
	path := filepath.Join(m.screenshotDir, fmt.Sprintf("klondike_%s.txt", timestamp))

	if err := os.WriteFile(path, []byte(m.screen.String()), 0o600); err != nil {
		m.logger.Warn("could not save screenshot", "error", err)
		m.status = "screenshot failed"
		return
	}
	m.logger.Info("screenshot saved", "path", path)
	m.status = "screenshot saved"
}

// render draws the current scene into the screen buffer.
func (m Model) render() {
	m.screen.Clear()
	switch m.scene {
	case SceneSettings:
		slider, buttons := m.settings()
		renderSettings(m.screen, slider, buttons, m.sound.Volume())
	case SceneGame:
		m.game.Render(m.screen)
		renderToolbar(m.screen, toolbarButtons(), m.status)
	default:
		renderMenu(m.screen, m.buttons())
	}
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	m.render()
	return RenderScreen(m.screen) + "\n" + m.help.View(sceneHelp{keys: m.keyMapper.Keys, scene: m.scene})
}

// Scene returns the scene being shown.
func (m Model) Scene() Scene {
	return m.scene
}

// Game returns the current game.
func (m Model) Game() *klondike.Game {
	return m.game
}

// Volume returns the current volume.
func (m Model) Volume() float64 {
	return m.sound.Volume()
}

// IsQuitting returns true if user requested to quit.
func (m Model) IsQuitting() bool {
	return m.quitting
}

// Run starts the Bubble Tea program with the application model.
func Run(opts Options) error {
	model := NewModel(opts)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),       // Use alternate screen buffer
		tea.WithMouseCellMotion(), // Press, release and drag motion
	)

	final, err := p.Run()
	if m, ok := final.(Model); ok {
		m.finishDeal(storage.OutcomeAbandoned)
	}
	return err
}
