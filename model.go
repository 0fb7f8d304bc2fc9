package main

import (
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

type Screen int

const (
	screenMenu Screen = iota
	screenGame
	screenThemes
	screenConfig
)

type tickMsg struct{}
type soundMsg struct{}

const eventBannerDuration = 1200 * time.Millisecond

type Model struct {
	screen      Screen
	width       int
	height      int
	menuIndex   int
	themeIndex  int
	configIndex int
	config      Config
	game        *Game
	sound       *SoundEngine

	lastEvent    string
	lastEventTil time.Time
}

func NewModel() Model {
	config, err := loadConfig()
	if err != nil {
		DebugLogf("config load error: %v", err)
	}
	index := themeIndexByName(config.Theme)
	if index < 0 {
		index = 0
		config.Theme = themes[index].Name
	}
	ctx, err := initAudioContext()
	if err != nil {
		DebugLogf("audio context init error: %v", err)
	}
	sound := NewSoundEngine(ctx, config.Sound)
	sound.SetVolume(volumeFromPercent(config.Volume))
	return Model{
		screen:     screenMenu,
		config:     config,
		themeIndex: index,
		game:       NewGame(),
		sound:      sound,
	}
}

func (m Model) Init() tea.Cmd {
	return nil
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil
	case tickMsg:
		if m.screen != screenGame {
			return m, nil
		}
		if m.game.State == StatePlaying {
			m.game.Tick()
			cmd := m.consumeEvents(false)
			return m, tea.Batch(cmd, tickCmd(m.game.TickDuration()))
		}
		// Keep the clock alive through pauses and game over so play
		// resumes without rearming it.
		return m, tickCmd(m.game.TickDuration())
	case soundMsg:
		return m, nil
	case tea.KeyMsg:
		switch m.screen {
		case screenMenu:
			return m, m.updateMenu(msg)
		case screenGame:
			return m, m.updateGame(msg)
		case screenThemes:
			return m, m.updateThemes(msg)
		case screenConfig:
			return m, m.updateConfig(msg)
		}
	}
	return m, nil
}

func (m Model) View() string {
	switch m.screen {
	case screenMenu:
		return viewMenu(m)
	case screenGame:
		return viewGame(m)
	case screenThemes:
		return viewThemes(m)
	case screenConfig:
		return viewConfig(m)
	default:
		return ""
	}
}

func tickCmd(interval time.Duration) tea.Cmd {
	return tea.Tick(interval, func(time.Time) tea.Msg { return tickMsg{} })
}

func playSound(engine *SoundEngine, event SoundEvent) tea.Cmd {
	return func() tea.Msg {
		if engine != nil {
			engine.Play(event)
		}
		return soundMsg{}
	}
}

// consumeEvents drains the engine's event log and turns it into sounds and
// the side-panel banner. Gravity ticks pass playMove=false so the per-cell
// descent stays silent; only deliberate shifts click.
func (m *Model) consumeEvents(playMove bool) tea.Cmd {
	var cmds []tea.Cmd
	play := func(event SoundEvent) {
		if m.config.Sound {
			cmds = append(cmds, playSound(m.sound, event))
		}
	}
	for _, event := range m.game.TakeEvents() {
		DebugLogf("event %s lines=%d level=%d", event.Kind, event.Lines, event.Level)
		switch event.Kind {
		case EventPieceMoved:
			if playMove {
				play(SoundMove)
			}
		case EventPieceRotated:
			play(SoundRotate)
		case EventPieceLocked:
			play(SoundLock)
		case EventLinesCleared:
			m.setBanner(bannerForLines(event.Lines))
			switch event.Lines {
			case 1:
				play(SoundLine1)
			case 2:
				play(SoundLine2)
			case 3:
				play(SoundLine3)
			default:
				play(SoundLine4)
			}
		case EventLevelUp:
			m.setBanner(fmt.Sprintf("LEVEL %d", event.Level))
			play(SoundLevelUp)
		case EventPaused, EventUnpaused:
			play(SoundPause)
		case EventGameRestarted:
			play(SoundMenuSelect)
		case EventGameOver:
			play(SoundGameOver)
		}
	}
	if len(cmds) == 0 {
		return nil
	}
	return tea.Batch(cmds...)
}

func bannerForLines(lines int) string {
	switch lines {
	case 1:
		return "SINGLE"
	case 2:
		return "DOUBLE"
	case 3:
		return "TRIPLE"
	default:
		return "TETRIS"
	}
}

func (m *Model) setBanner(text string) {
	m.lastEvent = text
	m.lastEventTil = time.Now().Add(eventBannerDuration)
}

func (m *Model) bannerText() string {
	if m.lastEvent == "" || time.Now().After(m.lastEventTil) {
		return ""
	}
	return m.lastEvent
}

func (m *Model) updateMenu(msg tea.KeyMsg) tea.Cmd {
	var cmd tea.Cmd
	switch msg.String() {
	case "up", "k":
		if m.menuIndex > 0 {
			m.menuIndex--
			if m.config.Sound {
				cmd = playSound(m.sound, SoundMenuMove)
			}
		}
	case "down", "j":
		if m.menuIndex < len(menuItems)-1 {
			m.menuIndex++
			if m.config.Sound {
				cmd = playSound(m.sound, SoundMenuMove)
			}
		}
	case "enter":
		if m.config.Sound {
			cmd = playSound(m.sound, SoundMenuSelect)
		}
		switch m.menuIndex {
		case 0:
			m.game.Restart()
			eventCmd := m.consumeEvents(false)
			m.screen = screenGame
			return tea.Batch(cmd, eventCmd, tickCmd(m.game.TickDuration()))
		case 1:
			m.screen = screenThemes
			return cmd
		case 2:
			m.screen = screenConfig
			return cmd
		case 3:
			return tea.Quit
		}
	case "q", "esc":
		return tea.Quit
	}
	return cmd
}

func (m *Model) updateGame(msg tea.KeyMsg) tea.Cmd {
	switch msg.String() {
	case "left", "h":
		m.game.Move(-1, 0)
		return m.consumeEvents(true)
	case "right", "l":
		m.game.Move(1, 0)
		return m.consumeEvents(true)
	case "down", "j":
		m.game.SoftDrop()
		return m.consumeEvents(false)
	case " ":
		m.game.HardDrop()
		return m.consumeEvents(false)
	case "up", "x":
		m.game.Rotate(true)
		return m.consumeEvents(true)
	case "z":
		m.game.Rotate(false)
		return m.consumeEvents(true)
	case "p":
		m.game.TogglePause()
		return m.consumeEvents(false)
	case "r":
		m.game.Restart()
		return m.consumeEvents(false)
	case "q", "esc":
		m.screen = screenMenu
		return nil
	}
	return nil
}

func (m *Model) updateThemes(msg tea.KeyMsg) tea.Cmd {
	switch msg.String() {
	case "up", "k":
		if m.themeIndex > 0 {
			m.themeIndex--
			if m.config.Sound {
				return playSound(m.sound, SoundMenuMove)
			}
		}
	case "down", "j":
		if m.themeIndex < len(themes)-1 {
			m.themeIndex++
			if m.config.Sound {
				return playSound(m.sound, SoundMenuMove)
			}
		}
	case "enter":
		m.config.Theme = themes[m.themeIndex].Name
		if err := saveConfig(m.config); err != nil {
			DebugLogf("config save error: %v", err)
		}
		m.screen = screenMenu
		if m.config.Sound {
			return playSound(m.sound, SoundMenuSelect)
		}
	case "q", "esc":
		m.screen = screenMenu
	}
	return nil
}

func (m *Model) updateConfig(msg tea.KeyMsg) tea.Cmd {
	switch msg.String() {
	case "up", "k":
		if m.configIndex > 0 {
			m.configIndex--
			if m.config.Sound {
				return playSound(m.sound, SoundMenuMove)
			}
		}
	case "down", "j":
		if m.configIndex < len(configItems)-1 {
			m.configIndex++
			if m.config.Sound {
				return playSound(m.sound, SoundMenuMove)
			}
		}
	case "enter":
		switch m.configIndex {
		case 0:
			m.config.Sound = !m.config.Sound
			m.sound.SetEnabled(m.config.Sound)
		case 2:
			m.config.Shadow = !m.config.Shadow
		}
		if err := saveConfig(m.config); err != nil {
			DebugLogf("config save error: %v", err)
		}
		if m.config.Sound {
			return playSound(m.sound, SoundMenuSelect)
		}
	case "left", "h":
		if m.configIndex == 1 {
			m.adjustVolume(-5)
			if m.config.Sound {
				return playSound(m.sound, SoundMenuMove)
			}
		}
	case "right", "l":
		if m.configIndex == 1 {
			m.adjustVolume(5)
			if m.config.Sound {
				return playSound(m.sound, SoundMenuMove)
			}
		}
	case "q", "esc":
		m.screen = screenMenu
	}
	return nil
}

func (m *Model) adjustVolume(delta int) {
	volume := m.config.Volume + delta
	if volume < 0 {
		volume = 0
	}
	if volume > 100 {
		volume = 100
	}
	if volume == m.config.Volume {
		return
	}
	m.config.Volume = volume
	m.sound.SetVolume(volumeFromPercent(volume))
	if err := saveConfig(m.config); err != nil {
		DebugLogf("config save error: %v", err)
	}
}

func volumeFromPercent(value int) float64 {
	if value < 0 {
		value = 0
	}
	if value > 100 {
		value = 100
	}
	return float64(value) / 100
}

var menuItems = []string{
	"Start Game",
	"Themes",
	"Config",
	"Quit",
}

var configItems = []string{
	"Sound Effects",
	"Volume",
	"Shadow",
}
