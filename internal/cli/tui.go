package cli

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/alexanderramin/meetcost/internal/cli/formatter"
	"github.com/alexanderramin/meetcost/internal/domain"
	"github.com/alexanderramin/meetcost/internal/report"
	"github.com/charmbracelet/bubbles/paginator"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
)

const rowsPerPage = 5

// runTUI drives the interactive view: role selection up front, then a
// paged meeting table with on-demand AI analysis. Reselecting a role
// rebuilds the entire report from the raw records; nothing is patched in
// place.
func runTUI(app *App, path string, records []domain.RawRecord, opts report.Options, save bool) error {
	role, err := selectRole(opts.Role)
	if err != nil {
		return err
	}
	opts.Role = role

	rep, err := report.Build(records, opts)
	if err != nil {
		return fmt.Errorf("analyzing %s: %w", path, err)
	}

	if save && app.Runs != nil {
		if _, err := app.Runs.SaveReport(context.Background(), path, rep, time.Now()); err != nil {
			return fmt.Errorf("saving run: %w", err)
		}
	}

	m := newAnalyzerModel(app, records, opts, rep)
	_, err = tea.NewProgram(m).Run()
	return err
}

// selectRole shows the role picker with the current role preselected.
func selectRole(current domain.Role) (domain.Role, error) {
	role := current

	var options []huh.Option[domain.Role]
	for _, r := range domain.Roles() {
		options = append(options, huh.NewOption(string(r), r))
	}

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[domain.Role]().
				Title("Role").
				Description("Hourly rate applied to all meetings").
				Options(options...).
				Value(&role),
		),
	).WithShowHelp(false)

	if err := form.Run(); err != nil {
		return "", err
	}
	return role, nil
}

type analysisMsg struct {
	text string
	err  error
}

// analyzerModel is the bubbletea model for the report view.
type analyzerModel struct {
	app     *App
	records []domain.RawRecord
	opts    report.Options

	report    *domain.Report
	pager     paginator.Model
	spin      spinner.Model
	analyzing bool
	aiText    string
	err       error
}

func newAnalyzerModel(app *App, records []domain.RawRecord, opts report.Options, rep *domain.Report) analyzerModel {
	p := paginator.New()
	p.Type = paginator.Dots
	p.PerPage = rowsPerPage
	p.ActiveDot = formatter.StyleBlue.Render("•")
	p.InactiveDot = formatter.StyleDim.Render("•")
	p.SetTotalPages(len(rep.Groups))

	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = formatter.StyleBlue

	return analyzerModel{
		app:     app,
		records: records,
		opts:    opts,
		report:  rep,
		pager:   p,
		spin:    s,
	}
}

func (m analyzerModel) Init() tea.Cmd {
	return nil
}

func (m analyzerModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "esc", "ctrl+c":
			return m, tea.Quit
		case "a":
			if m.app.Analysis != nil && !m.analyzing {
				m.analyzing = true
				m.aiText = ""
				m.err = nil
				return m, tea.Batch(m.spin.Tick, m.analyzeCmd())
			}
		case "1", "2", "3", "4":
			roles := domain.Roles()
			idx := int(msg.String()[0] - '1')
			if idx < len(roles) && roles[idx] != m.opts.Role {
				return m.switchRole(roles[idx])
			}
		}

	case analysisMsg:
		m.analyzing = false
		m.aiText = msg.text
		m.err = msg.err
		return m, nil

	case spinner.TickMsg:
		if !m.analyzing {
			return m, nil
		}
		var cmd tea.Cmd
		m.spin, cmd = m.spin.Update(msg)
		return m, cmd
	}

	var cmd tea.Cmd
	m.pager, cmd = m.pager.Update(msg)
	return m, cmd
}

// switchRole rebuilds the whole report for the new role. A stale cost is
// never displayed.
func (m analyzerModel) switchRole(role domain.Role) (tea.Model, tea.Cmd) {
	opts := m.opts
	opts.Role = role

	rep, err := report.Build(m.records, opts)
	if err != nil {
		m.err = err
		return m, nil
	}

	m.opts = opts
	m.report = rep
	m.aiText = ""
	m.pager.SetTotalPages(len(rep.Groups))
	m.pager.Page = 0
	return m, nil
}

func (m analyzerModel) analyzeCmd() tea.Cmd {
	prompt := report.Prompt(m.report)
	client := m.app.Analysis
	return func() tea.Msg {
		resp, err := client.Analyze(context.Background(), prompt)
		if err != nil {
			return analysisMsg{err: err}
		}
		return analysisMsg{text: resp.Text}
	}
}

func (m analyzerModel) View() string {
	var b strings.Builder

	b.WriteString(formatter.FormatReportHeader(m.report))

	start, end := m.pager.GetSliceBounds(len(m.report.Groups))
	b.WriteString(formatter.GroupTable(m.report.Groups[start:end], m.report.Rate))

	if m.pager.TotalPages > 1 {
		b.WriteString("  " + m.pager.View() + "\n")
	}

	switch {
	case m.analyzing:
		b.WriteString("\n" + m.spin.View() + formatter.Dim("Analyzing your meeting data...") + "\n")
	case m.err != nil:
		b.WriteString("\n" + formatter.StyleRed.Render("Error: "+m.err.Error()) + "\n")
	case m.aiText != "":
		b.WriteString("\n" + formatter.StyleBold.Render("AI Recommendations") + "\n")
		b.WriteString(m.aiText + "\n")
	}

	b.WriteString("\n" + formatter.Dim(m.helpLine()) + "\n")
	return b.String()
}

func (m analyzerModel) helpLine() string {
	parts := []string{"←/→ page"}
	for i, r := range domain.Roles() {
		parts = append(parts, fmt.Sprintf("%d %s", i+1, r))
	}
	if m.app.Analysis != nil {
		parts = append(parts, "a analyze")
	}
	parts = append(parts, "q quit")
	return strings.Join(parts, " · ")
}
