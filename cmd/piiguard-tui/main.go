package main

import (
	"flag"
	"fmt"
	"os"
	"sort"
	"strings"
	"time"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/adrian-lorenz/pii-guard/internal/config"
	"github.com/adrian-lorenz/pii-guard/internal/logging"
	"github.com/adrian-lorenz/pii-guard/internal/pii"
	"github.com/adrian-lorenz/pii-guard/internal/scanner"
)

// View states.
const (
	stateInput = iota
	stateResults
	stateSettings
)

// Lipgloss color mapping per PII type.
func typeColor(typ pii.PiiType) lipgloss.Color {
	switch typ {
	case pii.Name:
		return lipgloss.Color("5") // magenta
	case pii.Phone:
		return lipgloss.Color("3") // yellow
	case pii.Email, pii.URLSecret:
		return lipgloss.Color("6") // cyan
	case pii.Secret, pii.CreditCard:
		return lipgloss.Color("1") // red
	case pii.Address, pii.IBAN:
		return lipgloss.Color("2") // green
	default:
		return lipgloss.Color("3") // yellow
	}
}

// Styles.
var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("7")).
			Background(lipgloss.Color("5")).
			Padding(0, 1)

	headerBoxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("5")).
			Padding(0, 1).
			Width(45)

	sectionStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("8"))

	dimStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("8"))

	helpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("8"))

	activeStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("5")).
			Bold(true)

	valueStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("6"))
)

type model struct {
	state    int
	textarea textarea.Model
	viewport viewport.Model
	result   *pii.ScanResult
	width    int
	height   int
	ready    bool
	scanTime time.Duration
	yanked   bool

	scanner *scanner.Scanner

	// Settings.
	settingsFocus int // 0..len(AllTypes)-1 detector toggles, then whitelist entries
	nameInput     textinput.Model
	addingName    bool
}

func initialModel(s *scanner.Scanner) model {
	ta := textarea.New()
	ta.Placeholder = "Paste or type text here..."
	ta.ShowLineNumbers = false
	ta.SetHeight(12)
	ta.SetWidth(70)
	ta.Focus()
	ta.CharLimit = 0

	ti := textinput.New()
	ti.Placeholder = "name to whitelist..."
	ti.CharLimit = 200
	ti.Width = 40

	return model{
		state:     stateInput,
		textarea:  ta,
		nameInput: ti,
		scanner:   s,
	}
}

func (m model) Init() tea.Cmd {
	return textarea.Blink
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height

		taWidth := min(msg.Width-4, 80)
		m.textarea.SetWidth(taWidth)

		if !m.ready {
			m.viewport = viewport.New(msg.Width, msg.Height-6)
			m.ready = true
		} else {
			m.viewport.Width = msg.Width
			m.viewport.Height = msg.Height - 6
		}
		if m.state == stateResults && m.result != nil {
			m.viewport.SetContent(m.renderResults())
		}

	case tea.KeyMsg:
		switch m.state {
		case stateInput:
			switch msg.Type {
			case tea.KeyCtrlC:
				return m, tea.Quit
			case tea.KeyCtrlD:
				return m.doScan()
			case tea.KeyTab:
				m.textarea.Blur()
				m.state = stateSettings
				m.settingsFocus = 0
				return m, nil
			}
		case stateResults:
			switch msg.String() {
			case "q", "ctrl+c":
				return m, tea.Quit
			case "n":
				m.textarea.Reset()
				m.textarea.Focus()
				m.state = stateInput
				m.result = nil
				m.yanked = false
				return m, textarea.Blink
			case "y":
				if m.result != nil {
					_ = clipboard.WriteAll(m.result.AnonymisedText)
					m.yanked = true
				}
				return m, nil
			}
		case stateSettings:
			return m.updateSettings(msg)
		}
	}

	switch m.state {
	case stateInput:
		var cmd tea.Cmd
		m.textarea, cmd = m.textarea.Update(msg)
		cmds = append(cmds, cmd)
	case stateResults:
		var cmd tea.Cmd
		m.viewport, cmd = m.viewport.Update(msg)
		cmds = append(cmds, cmd)
	}

	return m, tea.Batch(cmds...)
}

func (m model) whitelistNames() []string {
	return m.scanner.Whitelist().Names()
}

func (m model) updateSettings(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.addingName {
		switch msg.Type {
		case tea.KeyEnter:
			name := strings.TrimSpace(m.nameInput.Value())
			if name != "" {
				m.scanner.Whitelist().Add(name)
			}
			m.nameInput.SetValue("")
			m.nameInput.Blur()
			m.addingName = false
			return m, nil
		case tea.KeyEscape:
			m.nameInput.SetValue("")
			m.nameInput.Blur()
			m.addingName = false
			return m, nil
		case tea.KeyCtrlC:
			return m, tea.Quit
		default:
			var cmd tea.Cmd
			m.nameInput, cmd = m.nameInput.Update(msg)
			return m, cmd
		}
	}

	names := m.whitelistNames()
	lastRow := len(pii.AllTypes) + len(names) - 1

	switch msg.Type {
	case tea.KeyCtrlC:
		return m, tea.Quit
	case tea.KeyTab:
		m.textarea.Focus()
		m.state = stateInput
		return m, textarea.Blink
	case tea.KeyUp:
		if m.settingsFocus > 0 {
			m.settingsFocus--
		}
	case tea.KeyDown:
		if m.settingsFocus < max(lastRow, 0) {
			m.settingsFocus++
		}
	case tea.KeyEnter:
		m.toggleFocusedDetector()
	}

	switch msg.String() {
	case " ":
		m.toggleFocusedDetector()
	case "a":
		m.addingName = true
		m.nameInput.Focus()
		return m, textinput.Blink
	case "d", "x":
		if m.settingsFocus >= len(pii.AllTypes) {
			idx := m.settingsFocus - len(pii.AllTypes)
			if idx < len(names) {
				m.scanner.Whitelist().Remove(names[idx])
				if m.settingsFocus > len(pii.AllTypes)+len(names)-2 {
					m.settingsFocus = max(len(pii.AllTypes), len(pii.AllTypes)+len(names)-2)
				}
			}
		}
	}

	return m, nil
}

func (m *model) toggleFocusedDetector() {
	if m.settingsFocus >= len(pii.AllTypes) {
		return
	}
	typ := pii.AllTypes[m.settingsFocus]
	if m.scanner.IsEnabled(typ) {
		m.scanner.DisableDetector(typ)
	} else {
		m.scanner.EnableDetector(typ)
	}
}

func (m model) doScan() (tea.Model, tea.Cmd) {
	text := m.textarea.Value()
	if strings.TrimSpace(text) == "" {
		return m, nil
	}

	start := time.Now()
	result := m.scanner.Scan(text)
	m.scanTime = time.Since(start)

	m.result = &result
	m.state = stateResults
	m.textarea.Blur()
	m.yanked = false

	if m.ready {
		m.viewport.SetContent(m.renderResults())
		m.viewport.GotoTop()
	}

	return m, nil
}

func (m model) renderAnnotated() string {
	text := m.result.OriginalText
	findings := m.result.Findings

	sorted := make([]pii.Finding, len(findings))
	copy(sorted, findings)
	sort.Slice(sorted, func(i, j int) bool {
		return sorted[i].Start < sorted[j].Start
	})

	var b strings.Builder
	pos := 0
	for _, f := range sorted {
		if f.Start < pos {
			continue
		}
		if f.Start > pos {
			b.WriteString(text[pos:f.Start])
		}
		clr := typeColor(f.Type)
		highlighted := lipgloss.NewStyle().
			Foreground(clr).
			Bold(true).
			Underline(true).
			Render(f.Text)
		tag := lipgloss.NewStyle().
			Foreground(clr).
			Render("⟨" + string(f.Type) + "⟩")
		b.WriteString(highlighted + tag)
		pos = f.End
	}
	if pos < len(text) {
		b.WriteString(text[pos:])
	}

	return b.String()
}

func (m model) renderResults() string {
	if m.result == nil {
		return ""
	}

	var b strings.Builder
	r := m.result

	b.WriteString(sectionStyle.Render("─── ANNOTATED ") + sectionStyle.Render(strings.Repeat("─", max(m.width-16, 20))))
	b.WriteString("\n")
	b.WriteString(m.renderAnnotated())
	b.WriteString("\n\n")

	b.WriteString(sectionStyle.Render("─── ANONYMISED ") + sectionStyle.Render(strings.Repeat("─", max(m.width-17, 20))))
	b.WriteString("\n")
	b.WriteString(r.AnonymisedText)
	b.WriteString("\n\n")

	if len(r.Mapping) > 0 {
		b.WriteString(sectionStyle.Render("─── MAPPINGS ") + sectionStyle.Render(strings.Repeat("─", max(m.width-15, 20))))
		b.WriteString("\n")

		tokens := make([]string, 0, len(r.Mapping))
		for token := range r.Mapping {
			tokens = append(tokens, token)
		}
		sort.Strings(tokens)

		maxToken, maxOrig := 0, 0
		for _, token := range tokens {
			if len(token) > maxToken {
				maxToken = len(token)
			}
			if len(r.Mapping[token]) > maxOrig {
				maxOrig = len(r.Mapping[token])
			}
		}

		typeOf := make(map[string]pii.PiiType, len(r.Findings))
		for _, f := range r.Findings {
			typeOf[f.Placeholder] = f.Type
		}

		for _, token := range tokens {
			original := r.Mapping[token]
			clr := typeColor(typeOf[token])
			tokenStyled := lipgloss.NewStyle().Foreground(clr).Bold(true).Render(token)
			typeStyled := lipgloss.NewStyle().Foreground(clr).Render(string(typeOf[token]))

			tokenPad := strings.Repeat(" ", maxToken-len(token))
			origPad := strings.Repeat(" ", maxOrig-len(original))

			b.WriteString(fmt.Sprintf("  %s%s    %s%s    %s\n",
				tokenStyled, tokenPad,
				original, origPad,
				typeStyled))
		}
		b.WriteString("\n")
	}

	typeCounts := make(map[pii.PiiType]int)
	for _, f := range r.Findings {
		typeCounts[f.Type]++
	}

	if len(typeCounts) > 0 {
		b.WriteString(sectionStyle.Render("─── STATISTICS ") + sectionStyle.Render(strings.Repeat("─", max(m.width-17, 20))))
		b.WriteString("\n")

		type typeStat struct {
			name  pii.PiiType
			count int
		}
		var stats []typeStat
		maxCount := 0
		for name, count := range typeCounts {
			stats = append(stats, typeStat{name, count})
			if count > maxCount {
				maxCount = count
			}
		}
		sort.Slice(stats, func(i, j int) bool {
			return stats[i].count > stats[j].count
		})

		maxBarWidth := 20
		maxName := 0
		for _, s := range stats {
			if len(s.name) > maxName {
				maxName = len(s.name)
			}
		}

		for _, s := range stats {
			clr := typeColor(s.name)
			barLen := s.count * maxBarWidth / maxCount
			if barLen < 1 {
				barLen = 1
			}
			bar := lipgloss.NewStyle().Foreground(clr).Render(strings.Repeat("█", barLen))
			namePad := strings.Repeat(" ", maxName-len(s.name))
			nameStyled := lipgloss.NewStyle().Foreground(clr).Bold(true).Render(string(s.name))
			b.WriteString(fmt.Sprintf("  %s%s  %d  %s\n", nameStyled, namePad, s.count, bar))
		}
	}

	return b.String()
}

func (m model) View() string {
	switch m.state {
	case stateInput:
		return m.viewInput()
	case stateResults:
		return m.viewResults()
	case stateSettings:
		return m.viewSettings()
	}
	return ""
}

func (m model) viewInput() string {
	header := headerBoxStyle.Render(titleStyle.Render("pii-guard") + " — PII Scanner")

	disabled := 0
	for _, t := range pii.AllTypes {
		if !m.scanner.IsEnabled(t) {
			disabled++
		}
	}
	names := m.whitelistNames()

	var parts []string
	if disabled > 0 {
		parts = append(parts, fmt.Sprintf("disabled:%d", disabled))
	}
	parts = append(parts, fmt.Sprintf("whitelist:%d", len(names)))
	settingsInfo := "\n" + dimStyle.Render("  "+strings.Join(parts, "  "))

	help := helpStyle.Render("  Ctrl+D scan  •  Tab settings  •  Ctrl+C quit")

	return fmt.Sprintf("\n%s%s\n\n%s\n\n%s\n", header, settingsInfo, m.textarea.View(), help)
}

func (m model) viewResults() string {
	if m.result == nil {
		return ""
	}

	findingCount := len(m.result.Findings)
	ms := m.scanTime.Milliseconds()

	headerText := fmt.Sprintf("%s — %d findings (%dms)",
		titleStyle.Render("pii-guard"), findingCount, ms)
	header := headerBoxStyle.Render(headerText)

	helpParts := []string{"n new scan", "y copy anonymised", "q quit"}
	if m.yanked {
		helpParts[1] = "y copied!"
	}
	help := helpStyle.Render("  " + strings.Join(helpParts, "  •  "))

	return fmt.Sprintf("\n%s\n\n%s\n\n%s\n", header, m.viewport.View(), help)
}

func (m model) viewSettings() string {
	var b strings.Builder
	names := m.whitelistNames()

	header := headerBoxStyle.Render(titleStyle.Render("pii-guard") + " — Settings")
	b.WriteString("\n" + header + "\n\n")

	b.WriteString("  " + lipgloss.NewStyle().Bold(true).Render("Detectors") + "\n")
	for i, typ := range pii.AllTypes {
		mark := "[x]"
		if !m.scanner.IsEnabled(typ) {
			mark = "[ ]"
		}
		if m.settingsFocus == i {
			b.WriteString(fmt.Sprintf("    %s %s %s\n",
				activeStyle.Render("▸"),
				valueStyle.Render(mark),
				activeStyle.Render(string(typ))))
		} else {
			b.WriteString(fmt.Sprintf("      %s %s\n", mark, dimStyle.Render(string(typ))))
		}
	}

	b.WriteString("\n  " + lipgloss.NewStyle().Bold(true).Render("Whitelisted Names") + "\n")

	if m.addingName {
		b.WriteString("    " + m.nameInput.View() + "\n")
	}

	if len(names) == 0 && !m.addingName {
		b.WriteString("    " + dimStyle.Render("(no extra names — press a to add)") + "\n")
	}

	for i, name := range names {
		row := len(pii.AllTypes) + i
		if m.settingsFocus == row {
			b.WriteString(fmt.Sprintf("    %s %s\n",
				activeStyle.Render("▸"),
				valueStyle.Render(name)))
		} else {
			b.WriteString(fmt.Sprintf("      %s\n", dimStyle.Render(name)))
		}
	}

	b.WriteString("\n")

	var helpParts []string
	helpParts = append(helpParts, "Tab back", "↑↓ navigate", "enter/space toggle")
	if !m.addingName {
		helpParts = append(helpParts, "a add name")
	}
	if len(names) > 0 {
		helpParts = append(helpParts, "d delete")
	}
	b.WriteString(helpStyle.Render("  " + strings.Join(helpParts, "  •  ")) + "\n")

	return b.String()
}

func min(a, b int) int {
	if a < b {
		return a
	}
	return b
}

func max(a, b int) int {
	if a > b {
		return a
	}
	return b
}

func main() {
	configFlag := flag.String("config", "", "path to config YAML file")
	flag.Parse()

	var cfg *config.Config
	var err error
	if *configFlag != "" {
		cfg, err = config.Load(*configFlag)
		if err != nil {
			fmt.Fprintf(os.Stderr, "error loading config: %v\n", err)
			os.Exit(2)
		}
	} else {
		cfg = config.DefaultConfig()
	}

	logger := logging.New(cfg.Logging.Level, os.Stderr)

	s, err := scanner.New(
		scanner.WithExtraWhitelistNames(cfg.Scanner.ExtraWhitelistNames),
		scanner.WithLogger(logger),
	)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	for _, name := range cfg.Scanner.DisabledTypes {
		s.DisableDetector(pii.PiiType(name))
	}

	p := tea.NewProgram(initialModel(s), tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
