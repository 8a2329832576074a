package ui

import (
	"errors"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/wordkeep/wordkeep/internal/config"
	"github.com/wordkeep/wordkeep/internal/lexicon"
	"github.com/wordkeep/wordkeep/internal/speech"
	"github.com/wordkeep/wordkeep/internal/store"
)

// screen identifies which view owns the keyboard.
type screen int

const (
	screenDecks screen = iota
	screenMenu
	screenEditor
	screenScope
	screenQuiz
	screenList
	screenRandom
)

// noticeLevel grades the notice line.
type noticeLevel int

const (
	noticeNone noticeLevel = iota
	noticeInfo
	noticeWarn
	noticeError
)

type notice struct {
	level noticeLevel
	text  string
}

// Model is the root bubbletea model. All application state lives here; the
// speech worker is the only background goroutine and it communicates
// exclusively through messages.
type Model struct {
	store      *store.Store
	lex        *lexicon.Lexicon
	speech     *speech.Queue
	cfg        config.Config
	configPath string

	theme  Theme
	styles Styles
	keys   keyMap
	help   help.Model

	width  int
	height int

	screen screen
	notice notice

	decks  decksState
	menu   menuState
	editor editorState
	scope  scopeState
	quiz   quizState
	list   listState
	random randomState

	prompt *promptState
}

func newModel(opts Options) Model {
	theme := GetTheme(opts.Config.Theme)
	m := Model{
		store:      opts.Store,
		lex:        opts.Lexicon,
		speech:     opts.Speech,
		cfg:        opts.Config,
		configPath: opts.ConfigPath,
		theme:      theme,
		styles:     theme.Styles(),
		keys:       defaultKeyMap(),
		help:       help.New(),
		screen:     screenDecks,
	}
	m.decks = newDecksState(m.store)
	m.menu = newMenuState()
	return m
}

func (m Model) Init() tea.Cmd {
	return listenSpeech(m.speech)
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		m.list = m.list.resize(msg.Width, msg.Height)
		return m, nil

	case speechEventMsg:
		m = m.applySpeechEvent(speech.Event(msg))
		return m, listenSpeech(m.speech)

	case searchDebounceMsg:
		if m.screen == screenList && msg.seq == m.list.searchSeq {
			m.list = m.list.refresh(m.store)
		}
		return m, nil

	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			return m, tea.Quit
		}
		// A modal prompt owns the keyboard while open.
		if m.prompt != nil {
			return m.updatePrompt(msg)
		}
		switch m.screen {
		case screenDecks:
			return m.updateDecks(msg)
		case screenMenu:
			return m.updateMenu(msg)
		case screenEditor:
			return m.updateEditor(msg)
		case screenScope:
			return m.updateScope(msg)
		case screenQuiz:
			return m.updateQuiz(msg)
		case screenList:
			return m.updateList(msg)
		case screenRandom:
			return m.updateRandom(msg)
		}
	}
	return m, nil
}

func (m Model) View() string {
	var body string
	switch m.screen {
	case screenDecks:
		body = m.viewDecks()
	case screenMenu:
		body = m.viewMenu()
	case screenEditor:
		body = m.viewEditor()
	case screenScope:
		body = m.viewScope()
	case screenQuiz:
		body = m.viewQuiz()
	case screenList:
		body = m.viewList()
	case screenRandom:
		body = m.viewRandom()
	}

	if m.prompt != nil {
		body = lipgloss.JoinVertical(lipgloss.Left, body, m.viewPrompt())
	}
	if line := m.viewNotice(); line != "" {
		body = lipgloss.JoinVertical(lipgloss.Left, body, line)
	}
	return body
}

func (m Model) viewNotice() string {
	switch m.notice.level {
	case noticeInfo:
		return m.styles.MutedText.Render(m.notice.text)
	case noticeWarn:
		return m.styles.WarningText.Render(m.notice.text)
	case noticeError:
		return m.styles.DangerText.Render(m.notice.text)
	}
	return ""
}

func (m Model) withNotice(level noticeLevel, text string) Model {
	m.notice = notice{level: level, text: text}
	return m
}

func (m Model) clearNotice() Model {
	m.notice = notice{}
	return m
}

// report maps an operation error onto the notice line. Validation failures
// and save failures are warnings: the app keeps running and, for saves, the
// in-memory change stays applied. Anything else is an error.
func (m Model) report(err error) Model {
	if err == nil {
		return m.clearNotice()
	}
	var saveErr *store.SaveError
	switch {
	case errors.As(err, &saveErr):
		return m.withNotice(noticeWarn, "change kept in memory, but saving failed: "+saveErr.Err.Error())
	case errors.Is(err, store.ErrEmptyName),
		errors.Is(err, store.ErrDuplicateName),
		errors.Is(err, store.ErrEmptyWord),
		errors.Is(err, store.ErrEmptyMeaning),
		errors.Is(err, store.ErrDeckFull),
		errors.Is(err, store.ErrNotFound):
		return m.withNotice(noticeWarn, err.Error())
	default:
		return m.withNotice(noticeError, err.Error())
	}
}

func (m Model) applySpeechEvent(ev speech.Event) Model {
	switch ev.Kind {
	case speech.EventStarted:
		return m.withNotice(noticeInfo, "speaking "+ev.Text)
	case speech.EventFinished:
		// Clear only our own announcement; leave other notices alone.
		if m.notice.level == noticeInfo && m.notice.text == "speaking "+ev.Text {
			return m.clearNotice()
		}
		return m
	case speech.EventFailed:
		return m.withNotice(noticeWarn, "speech failed: "+ev.Err.Error())
	}
	return m
}

// speak sends a word to the speech queue. Rapid repeats coalesce: only the
// newest request is spoken.
func (m Model) speak(text string) Model {
	if m.speech == nil {
		return m
	}
	m.speech.RequestSpeak(text)
	return m
}

// footer renders a screen's key bindings through the bubbles help
// component.
func (m Model) footer(k screenKeys) string {
	return m.styles.Footer.Render(m.help.View(k))
}

// gotoScreen switches views and drops any stale notice.
func (m Model) gotoScreen(s screen) Model {
	m.screen = s
	return m.clearNotice()
}
