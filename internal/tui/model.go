package tui

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"writeassist/internal/service"
	"writeassist/internal/tokenizer"
)

// AssistantPort is the TUI-facing subset of the assistant service.
type AssistantPort interface {
	Analyze(text string) (*service.Analysis, error)
	Summarize(ctx context.Context, text string, opts service.SummarizeOptions) (*service.Generated, error)
}

// Section names the result pane shown in the viewport.
type Section int

const (
	SectionStatistics Section = iota
	SectionReadability
	SectionTone
	SectionGrammar
	SectionSuggestions
	SectionSummary
	SectionKeywords
	sectionCount
)

func (s Section) String() string {
	return [...]string{"Statistics", "Readability", "Tone", "Grammar", "Suggestions", "Summary", "Keywords"}[s]
}

type analysisMsg struct {
	text     string
	analysis *service.Analysis
	summary  *service.Generated
	err      error
}

// Model is the Bubble Tea model for the TUI application.
type Model struct {
	service  AssistantPort
	input    textarea.Model
	viewport viewport.Model
	section  Section
	text     string
	analysis *service.Analysis
	summary  string
	status   string
	busy     bool
	ready    bool
}

// New creates a new TUI model instance, optionally prefilled with text.
func New(svc AssistantPort, initial string) Model {
	ta := textarea.New()
	ta.Placeholder = "Type or paste text, then press ctrl+s to analyze"
	ta.ShowLineNumbers = false
	ta.CharLimit = 0
	ta.SetValue(initial)
	ta.Focus()
	vp := viewport.New(0, 0)
	return Model{service: svc, input: ta, viewport: vp, status: "ctrl+s analyze · tab/shift+tab switch section · ctrl+c quit"}
}

// Init initializes the model (textarea cursor blink).
func (m Model) Init() tea.Cmd { return textarea.Blink }

// Update handles key and window events and updates the view state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.ready = true
		_, rh := resultBoxStyle.GetFrameSize()
		_, ih := inputBoxStyle.GetFrameSize()
		inputLines := max(3, msg.Height/3)
		m.input.SetWidth(max(20, msg.Width-4))
		m.input.SetHeight(inputLines)
		reserved := 2 + 1 + inputLines + ih + 1 // header + tabs, status, input, spacer
		m.viewport.Width = max(20, msg.Width-4)
		m.viewport.Height = max(3, msg.Height-reserved-rh)
		m.viewport.SetContent(m.renderSection())
		return m, nil
	case analysisMsg:
		m.busy = false
		if msg.err != nil {
			m.status = "Error: " + msg.err.Error()
			return m, nil
		}
		m.text = msg.text
		m.analysis = msg.analysis
		m.summary = ""
		if msg.summary != nil {
			m.summary = fmt.Sprintf("%s\n\n(method: %s)", msg.summary.Result, msg.summary.Method)
		}
		m.status = fmt.Sprintf("Analyzed %d words", msg.analysis.Statistics.WordCount)
		m.viewport.SetContent(m.renderSection())
		m.viewport.GotoTop()
		return m, nil
	case tea.KeyMsg:
		switch msg.Type {
		case tea.KeyCtrlC, tea.KeyCtrlD:
			return m, tea.Quit
		case tea.KeyCtrlS:
			if m.busy {
				return m, nil
			}
			m.busy = true
			m.status = "Analyzing..."
			return m, analyze(m.service, m.input.Value())
		case tea.KeyTab:
			m.section = (m.section + 1) % sectionCount
			m.viewport.SetContent(m.renderSection())
			m.viewport.GotoTop()
			return m, nil
		case tea.KeyShiftTab:
			m.section = (m.section - 1 + sectionCount) % sectionCount
			m.viewport.SetContent(m.renderSection())
			m.viewport.GotoTop()
			return m, nil
		case tea.KeyPgUp, tea.KeyPgDown:
			var cmd tea.Cmd
			m.viewport, cmd = m.viewport.Update(msg)
			return m, cmd
		}
	}
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func analyze(svc AssistantPort, text string) tea.Cmd {
	return func() tea.Msg {
		a, err := svc.Analyze(text)
		if err != nil {
			return analysisMsg{err: err}
		}
		msg := analysisMsg{text: strings.TrimSpace(text), analysis: a}
		if sum, err := svc.Summarize(context.Background(), text, service.SummarizeOptions{}); err == nil {
			msg.summary = sum
		}
		return msg
	}
}

// View renders the TUI layout and the current section.
func (m Model) View() string {
	if !m.ready {
		return "Loading..."
	}
	header := lipgloss.NewStyle().Bold(true).Render("Writing Assistant")
	input := inputBoxStyle.Render(m.input.View())
	results := resultBoxStyle.Render(m.viewport.View())
	status := lipgloss.NewStyle().Foreground(lipgloss.Color("10")).Render(m.status)
	return header + "\n" + m.renderTabs() + "\n" + results + "\n" + input + "\n" + status
}

func (m Model) renderTabs() string {
	tabs := make([]string, 0, sectionCount)
	for s := Section(0); s < sectionCount; s++ {
		if s == m.section {
			tabs = append(tabs, activeTabStyle.Render(s.String()))
		} else {
			tabs = append(tabs, tabStyle.Render(s.String()))
		}
	}
	return strings.Join(tabs, " ")
}

func (m Model) renderSection() string {
	a := m.analysis
	if a == nil {
		return "No analysis yet."
	}
	var b strings.Builder
	switch m.section {
	case SectionStatistics:
		st := a.Statistics
		fmt.Fprintf(&b, "Words: %d\nSentences: %d\nCharacters: %d\nParagraphs: %d\n", st.WordCount, st.SentenceCount, st.CharacterCount, st.ParagraphCount)
		fmt.Fprintf(&b, "Average word length: %.2f\nAverage sentence length: %.2f", st.AvgWordLength, st.AvgSentenceLength)
	case SectionReadability:
		r := a.Readability
		if !r.OK() {
			fmt.Fprintf(&b, "Unavailable: %s", r.Message)
			break
		}
		fmt.Fprintf(&b, "Difficulty: %s\n\n", r.Difficulty)
		fmt.Fprintf(&b, "Flesch reading ease: %.2f\nFlesch-Kincaid grade: %.2f\nSMOG index: %.2f\n", r.FleschReadingEase, r.FleschKincaidGrade, r.SMOGIndex)
		fmt.Fprintf(&b, "Coleman-Liau index: %.2f\nAutomated readability index: %.2f", r.ColemanLiauIndex, r.AutomatedReadabilityIndex)
	case SectionTone:
		t := a.Tone
		fmt.Fprintf(&b, "Formality: %s (formal %d, informal %d)\n", t.Formality, t.FormalKeywordCount, t.InformalKeywordCount)
		fmt.Fprintf(&b, "Sentiment: %s (positive %d, negative %d)", t.Sentiment, t.PositiveKeywordCount, t.NegativeKeywordCount)
	case SectionGrammar:
		if len(a.Grammar) == 0 {
			b.WriteString("No grammar issues found.")
			break
		}
		for _, g := range a.Grammar {
			fmt.Fprintf(&b, "• [%d] %s: %q → %q\n", g.Position, g.Message, g.Original, g.Suggestion)
		}
	case SectionSuggestions:
		if len(a.Suggestions) == 0 {
			b.WriteString("No style suggestions.\n\n")
		}
		for _, s := range a.Suggestions {
			fmt.Fprintf(&b, "• %s\n", s.Message)
		}
		b.WriteString("\n")
		b.WriteString(highlightFlagged(m.text, a))
	case SectionSummary:
		if m.summary == "" {
			b.WriteString("Text is too short to summarize.")
			break
		}
		b.WriteString(m.summary)
	case SectionKeywords:
		if len(a.Keywords) == 0 {
			b.WriteString("No keywords.")
			break
		}
		for _, k := range a.Keywords {
			fmt.Fprintf(&b, "%-20s %6.2f  ×%d\n", k.Term, k.Score, k.Count)
		}
	}
	return b.String()
}

var (
	resultBoxStyle = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(0, 1)
	inputBoxStyle  = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(0, 1)
	highlightStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("11")).Bold(true)
	tabStyle       = lipgloss.NewStyle().Foreground(lipgloss.Color("8")).Padding(0, 1)
	activeTabStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("0")).Background(lipgloss.Color("12")).Padding(0, 1)
)

// highlightFlagged renders text with every sentence named by a suggestion highlighted.
func highlightFlagged(text string, a *service.Analysis) string {
	if strings.TrimSpace(text) == "" {
		return text
	}
	flagged := flaggedSentences(a)
	sentences := tokenizer.SplitSentences(text)
	if len(sentences) == 0 {
		return text
	}
	parts := make([]string, len(sentences))
	for i, s := range sentences {
		if _, ok := flagged[s.Text]; ok {
			parts[i] = highlightStyle.Render(s.Text)
		} else {
			parts[i] = s.Text
		}
	}
	return strings.Join(parts, " ")
}

func flaggedSentences(a *service.Analysis) map[string]struct{} {
	out := make(map[string]struct{}, len(a.Suggestions))
	for _, s := range a.Suggestions {
		out[s.Sentence] = struct{}{}
	}
	return out
}
