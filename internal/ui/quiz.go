package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/progress"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/wordkeep/wordkeep/internal/deck"
	"github.com/wordkeep/wordkeep/internal/quiz"
)

var quizScopes = []struct {
	scope quiz.Scope
	label string
}{
	{quiz.ScopeAll, "All words"},
	{quiz.ScopeUnknown, "Unknown only"},
	{quiz.ScopePartial, "Partial only"},
	{quiz.ScopeKnown, "Known only"},
}

// scopeState drives the quiz scope picker.
type scopeState struct {
	cursor int
}

func newScopeState() scopeState {
	return scopeState{}
}

// quizState drives the flash-card screen.
type quizState struct {
	session  *quiz.Session
	revealed bool
	bar      progress.Model
}

func (m Model) updateScope(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Back):
		return m.gotoScreen(screenMenu), nil

	case key.Matches(msg, m.keys.Up):
		if m.scope.cursor > 0 {
			m.scope.cursor--
		}
		return m, nil

	case key.Matches(msg, m.keys.Down):
		if m.scope.cursor < len(quizScopes)-1 {
			m.scope.cursor++
		}
		return m, nil

	case key.Matches(msg, m.keys.Enter):
		name := m.store.CurrentDeck()
		sess, err := quiz.Start(name, m.store.Deck(name), quizScopes[m.scope.cursor].scope, nil)
		if err != nil {
			// Empty scope is informational: stay on the picker.
			return m.withNotice(noticeWarn, err.Error()), nil
		}
		bar := progress.New(progress.WithDefaultGradient())
		bar.Width = 40
		m.quiz = quizState{session: sess, bar: bar}
		return m.gotoScreen(screenQuiz), nil
	}
	return m, nil
}

func (m Model) viewScope() string {
	d := m.store.Deck(m.store.CurrentDeck())
	st := deck.ComputeStats(d)
	counts := map[quiz.Scope]int{
		quiz.ScopeAll:     st.Total,
		quiz.ScopeUnknown: st.Unknown,
		quiz.ScopePartial: st.Partial,
		quiz.ScopeKnown:   st.Known,
	}

	var b strings.Builder
	b.WriteString(m.styles.Title.Render("Quiz scope") + "\n\n")
	for i, sc := range quizScopes {
		line := fmt.Sprintf("%-16s %3d words", sc.label, counts[sc.scope])
		if i == m.scope.cursor {
			b.WriteString(m.styles.Selected.Render("> "+line) + "\n")
		} else {
			b.WriteString(m.styles.Text.Render("  "+line) + "\n")
		}
	}
	b.WriteString("\n" + m.footer(screenKeys{
		short: []key.Binding{m.keys.Up, m.keys.Down, m.keys.Enter, m.keys.Back},
	}))
	return b.String()
}

func (m Model) updateQuiz(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	s := m.quiz.session

	switch {
	case key.Matches(msg, m.keys.Back):
		return m.gotoScreen(screenMenu), nil

	case key.Matches(msg, m.keys.Reveal):
		m.quiz.revealed = !m.quiz.revealed
		return m, nil

	case key.Matches(msg, m.keys.Left):
		s.Prev()
		m.quiz.revealed = false
		return m.clearNotice(), nil

	case key.Matches(msg, m.keys.Right):
		s.Next()
		m.quiz.revealed = false
		return m.clearNotice(), nil

	case key.Matches(msg, m.keys.Speak):
		return m.speak(s.Word()), nil

	case key.Matches(msg, m.keys.SetUnknown):
		return m.setQuizStatus(deck.StatusUnknown), nil
	case key.Matches(msg, m.keys.SetPartial):
		return m.setQuizStatus(deck.StatusPartial), nil
	case key.Matches(msg, m.keys.SetKnown):
		return m.setQuizStatus(deck.StatusKnown), nil
	}
	return m, nil
}

// setQuizStatus records the answer for the current card. The card stays in
// the session even when its new status leaves the scope; only the next
// session recomputes the candidate set.
func (m Model) setQuizStatus(st deck.Status) Model {
	if err := m.quiz.session.SetStatus(st, m.store); err != nil {
		return m.report(err)
	}
	return m.clearNotice()
}

func (m Model) viewQuiz() string {
	s := m.quiz.session
	var b strings.Builder

	b.WriteString(m.styles.MutedText.Render(
		fmt.Sprintf("%s · %d/%d", s.DeckName(), s.Pos()+1, s.Len())) + "\n")
	b.WriteString(m.quiz.bar.ViewAs(float64(s.Pos()+1)/float64(s.Len())) + "\n\n")

	entry := s.Entry()
	var card strings.Builder
	card.WriteString(m.styles.Title.Render(s.Word()))
	card.WriteString("  " + m.styles.StatusStyle(entry.Status).Render(entry.Status.String()) + "\n\n")
	if m.quiz.revealed {
		if entry.PartOfSpeech != "" {
			card.WriteString(m.styles.MutedText.Render(entry.PartOfSpeech) + "\n")
		}
		card.WriteString(m.styles.Text.Render(entry.Meaning) + "\n")
		if entry.Example != "" {
			card.WriteString(m.styles.MutedText.Render(entry.Example) + "\n")
		}
	} else {
		card.WriteString(m.styles.MutedText.Render("press space to reveal"))
	}
	b.WriteString(m.styles.Panel.Render(card.String()))

	b.WriteString("\n\n" + m.footer(screenKeys{
		short: []key.Binding{
			m.keys.Reveal, m.keys.SetUnknown, m.keys.SetPartial, m.keys.SetKnown,
			m.keys.Speak, m.keys.Left, m.keys.Right, m.keys.Back,
		},
	}))
	return b.String()
}
