package cmd

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/tayloree/restock/internal/catalog"
	"github.com/tayloree/restock/internal/display"
	"github.com/tayloree/restock/internal/filter"
	"github.com/tayloree/restock/internal/grouping"
	"github.com/tayloree/restock/internal/restock"
)

const (
	minTUIWidth  = 84
	minTUIHeight = 22
)

var (
	tuiHeaderStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("86"))
	tuiMetaStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
	tuiHintStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	tuiValueStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("229"))
	tuiOrderStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("205"))
	tuiNameStyle    = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("229"))
	tuiMutedStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("244"))
	tuiSectionStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("81"))
	tuiWarnStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("214"))
)

// tuiClassifiedMsg carries an entry classified off the event loop. It has
// not been added to the list yet.
type tuiClassifiedMsg struct {
	entry restock.Entry
	err   error
}

type tuiFocus int

const (
	tuiFocusList tuiFocus = iota
	tuiFocusDetail
	tuiFocusInput
)

type tuiGroupItem struct {
	categoryID string
	name       string
	count      int
	ordinal    int
}

func (g tuiGroupItem) FilterValue() string { return strings.ToLower(g.name) }
func (g tuiGroupItem) Title() string       { return fmt.Sprintf("%d. %s", g.ordinal, g.name) }
func (g tuiGroupItem) Description() string {
	return fmt.Sprintf("Category • %d items", g.count)
}

type tuiEntryItem struct {
	entry       restock.Entry
	group       string
	title       string
	description string
	filterValue string
}

func (e tuiEntryItem) FilterValue() string { return e.filterValue }
func (e tuiEntryItem) Title() string       { return e.title }
func (e tuiEntryItem) Description() string { return e.description }

// restockTUIModel edits the list in place. Only Update and View touch
// app.list; a background add only classifies the input.
type restockTUIModel struct {
	ctx      context.Context
	app      *app
	busy     bool
	spinner  spinner.Model
	input    textinput.Model
	fatalErr error

	categoryChoices []string
	categoryIndex   int
	orderedOnly     bool
	highlightID     string

	list   list.Model
	detail viewport.Model

	focus      tuiFocus
	showHelp   bool
	selectedID string

	groupStarts    []int
	visibleEntries int

	width, height   int
	bodyHeight      int
	listPaneWidth   int
	detailPaneWidth int
	tooSmall        bool
}

func newRestockTUIModel(ctx context.Context, a *app) restockTUIModel {
	delegate := list.NewDefaultDelegate()
	delegate.SetHeight(2)
	delegate.SetSpacing(1)

	lst := list.New([]list.Item{}, delegate, 0, 0)
	lst.Title = "Restock"
	lst.SetStatusBarItemName("item", "items")
	lst.SetShowStatusBar(true)
	lst.SetFilteringEnabled(true)
	lst.SetShowHelp(false)
	lst.SetShowPagination(true)
	lst.DisableQuitKeybindings()

	detail := viewport.New(0, 0)
	detail.KeyMap.PageDown.SetKeys("f", "pgdown")
	detail.KeyMap.PageUp.SetKeys("b", "pgup")
	detail.KeyMap.HalfPageDown.SetKeys("d")
	detail.KeyMap.HalfPageUp.SetKeys("u")

	spin := spinner.New()
	spin.Spinner = spinner.Dot
	spin.Style = lipgloss.NewStyle().Foreground(lipgloss.Color("86"))

	input := textinput.New()
	input.Prompt = "add> "
	input.Placeholder = "tomate 2 kg"
	input.CharLimit = 120

	m := restockTUIModel{
		ctx:     ctx,
		app:     a,
		spinner: spin,
		input:   input,
		list:    lst,
		detail:  detail,
		focus:   tuiFocusList,
	}
	m.refreshChoices()
	m.applyCurrentFilters(true)
	return m
}

func classifyEntryCmd(ctx context.Context, c *restock.Classifier, name string, qty *float64, unit catalog.Unit) tea.Cmd {
	return func() tea.Msg {
		entry, err := c.Classify(ctx, name, restock.QuantityOrDefault(qty), unit)
		return tuiClassifiedMsg{entry: entry, err: err}
	}
}

func (m restockTUIModel) Init() tea.Cmd {
	return nil
}

func (m restockTUIModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.resize()
		return m, nil

	case tuiClassifiedMsg:
		m.busy = false
		if msg.err != nil {
			return m, m.list.NewStatusMessage(tuiWarnStyle.Render("Not added: " + msg.err.Error()))
		}
		cmd := m.finishAdd(m.app.list.Append(msg.entry))
		return m, cmd

	case spinner.TickMsg:
		if m.busy {
			var cmd tea.Cmd
			m.spinner, cmd = m.spinner.Update(msg)
			return m, cmd
		}
		return m, nil
	}

	keyMsg, isKey := msg.(tea.KeyMsg)
	if isKey && keyMsg.String() == "ctrl+c" {
		return m, tea.Quit
	}
	if m.busy {
		return m, nil
	}
	if m.focus == tuiFocusInput {
		return m.updateInput(msg)
	}

	if isKey {
		filtering := m.list.FilterState() == list.Filtering
		key := keyMsg.String()

		if !filtering {
			switch key {
			case "q":
				return m, tea.Quit
			case "tab":
				if m.focus == tuiFocusList {
					m.focus = tuiFocusDetail
				} else {
					m.focus = tuiFocusList
				}
				return m, nil
			case "esc":
				if m.focus == tuiFocusDetail {
					m.focus = tuiFocusList
					return m, nil
				}
			case "?":
				m.showHelp = !m.showHelp
				m.resize()
				return m, nil
			case "a":
				m.focus = tuiFocusInput
				m.input.SetValue("")
				return m, m.input.Focus()
			case "c":
				m.cycleCategory()
				return m, nil
			case "m":
				m.orderedOnly = !m.orderedOnly
				m.applyCurrentFilters(false)
				return m, nil
			case "r":
				m.categoryIndex = 0
				m.orderedOnly = false
				m.highlightID = ""
				m.applyCurrentFilters(false)
				return m, nil
			case "]", "[":
				if m.list.IsFiltered() {
					return m, m.list.NewStatusMessage("Clear fuzzy filter before section jumps.")
				}
				if key == "]" {
					m.jumpSection(1)
				} else {
					m.jumpSection(-1)
				}
				return m, nil
			}

			if m.focus == tuiFocusList {
				if cmd, handled := m.handleEditKey(key); handled {
					return m, cmd
				}
			}

			if len(key) == 1 && key[0] >= '1' && key[0] <= '9' {
				if m.list.IsFiltered() {
					return m, m.list.NewStatusMessage("Clear fuzzy filter before section jumps.")
				}
				m.jumpToSection(int(key[0] - '1'))
				return m, nil
			}
		}

		if m.focus == tuiFocusDetail && !filtering {
			var cmd tea.Cmd
			m.detail, cmd = m.detail.Update(msg)
			return m, cmd
		}
	}

	var cmd tea.Cmd
	m.list, cmd = m.list.Update(msg)
	m.refreshDetail(false)
	return m, cmd
}

func (m restockTUIModel) updateInput(msg tea.Msg) (tea.Model, tea.Cmd) {
	if key, ok := msg.(tea.KeyMsg); ok {
		switch key.String() {
		case "esc":
			m.input.Blur()
			m.focus = tuiFocusList
			return m, nil
		case "enter":
			text := strings.TrimSpace(m.input.Value())
			m.input.Blur()
			m.input.SetValue("")
			m.focus = tuiFocusList
			if text == "" {
				return m, nil
			}
			name, qty, unit := parseAddInput(text)
			res, merged, err := m.app.list.MergeExisting(name, qty, unit)
			if err != nil {
				return m, m.list.NewStatusMessage(tuiWarnStyle.Render("Not added: " + err.Error()))
			}
			if merged {
				cmd := m.finishAdd(res)
				return m, cmd
			}
			m.busy = true
			return m, tea.Batch(m.spinner.Tick, classifyEntryCmd(m.ctx, m.app.classifier, name, qty, unit))
		}
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

// finishAdd saves the list after an add and highlights the entry.
func (m *restockTUIModel) finishAdd(res restock.AddResult) tea.Cmd {
	m.highlightID = res.ID
	m.selectedID = stableIDForEntry(res.ID)
	if err := m.app.save(); err != nil {
		m.fatalErr = err
		return tea.Quit
	}
	m.refreshChoices()
	m.applyCurrentFilters(false)

	name := res.Entry.Name(m.app.lang)
	status := "Added " + name
	if res.Duplicate {
		status = fmt.Sprintf("%s already on the list, quantity now %s",
			name, display.FormatQuantity(res.Entry.Quantity, res.Entry.Unit, m.app.lang))
	}
	return m.list.NewStatusMessage(status)
}

// handleEditKey applies single-key edits to the selected entry.
func (m *restockTUIModel) handleEditKey(key string) (tea.Cmd, bool) {
	l := m.app.list
	switch key {
	case "o":
		return m.editSelected(func(e restock.Entry) string {
			l.ToggleOrderMarked(e.ID)
			updated, _ := l.Get(e.ID)
			if !updated.IsOrderMarked {
				return "Unmarked " + e.Name(m.app.lang)
			}
			if !updated.HasValidOrder() {
				return "Marked to order, quantity missing (press >)"
			}
			return "Marked to order: " + e.Name(m.app.lang)
		}), true
	case "+", "=":
		return m.editSelected(func(e restock.Entry) string {
			l.UpdateQuantity(e.ID, e.Quantity+1)
			return "Quantity raised"
		}), true
	case "-":
		return m.editSelected(func(e restock.Entry) string {
			l.UpdateQuantity(e.ID, e.Quantity-1)
			return "Quantity lowered"
		}), true
	case ">", "<":
		return m.editSelected(func(e restock.Entry) string {
			if !e.IsOrderMarked {
				return "Mark the entry with o first"
			}
			base := 0.0
			if e.OrderQuantity != nil {
				base = *e.OrderQuantity
			}
			if key == ">" {
				base++
			} else {
				base--
			}
			l.UpdateOrderQuantity(e.ID, base)
			return "Order quantity updated"
		}), true
	case "u":
		return m.editSelected(func(e restock.Entry) string {
			next := nextUnit(e.Unit)
			if _, err := l.UpdateUnit(e.ID, next); err != nil {
				return err.Error()
			}
			if next == catalog.UnitNone {
				return "Unit cleared"
			}
			return "Unit: " + next.Label(m.app.lang)
		}), true
	case "x", "delete":
		return m.editSelected(func(e restock.Entry) string {
			l.RemoveItem(e.ID)
			if e.ID == m.highlightID {
				m.highlightID = ""
			}
			return "Removed " + e.Name(m.app.lang)
		}), true
	}
	return nil, false
}

func (m *restockTUIModel) editSelected(apply func(e restock.Entry) string) tea.Cmd {
	item, ok := m.list.SelectedItem().(tuiEntryItem)
	if !ok {
		return m.list.NewStatusMessage("Select an entry first.")
	}
	current, ok := m.app.list.Get(item.entry.ID)
	if !ok {
		return m.list.NewStatusMessage("Entry no longer on the list.")
	}

	status := apply(current)
	if err := m.app.save(); err != nil {
		m.fatalErr = err
		return tea.Quit
	}
	m.refreshChoices()
	m.applyCurrentFilters(false)
	return m.list.NewStatusMessage(status)
}

func (m restockTUIModel) View() string {
	if m.width == 0 || m.height == 0 {
		return tuiMetaStyle.Render("Loading interface...")
	}
	if m.tooSmall {
		return lipgloss.NewStyle().
			Padding(1, 2).
			Render(
				fmt.Sprintf(
					"Terminal too small (%dx%d).\nResize to at least %dx%d for the list editor.",
					m.width, m.height, minTUIWidth, minTUIHeight,
				),
			)
	}

	return lipgloss.JoinVertical(
		lipgloss.Left,
		m.headerView(),
		m.bodyView(),
		m.footerView(),
	)
}

func (m *restockTUIModel) resize() {
	if m.width == 0 || m.height == 0 {
		return
	}

	m.tooSmall = m.width < minTUIWidth || m.height < minTUIHeight
	if m.tooSmall {
		return
	}

	headerH := 3
	footerH := 2
	if m.showHelp {
		footerH = 7
	}
	m.bodyHeight = maxInt(8, m.height-headerH-footerH-1)

	listWidth := maxInt(40, int(float64(m.width)*0.5))
	if listWidth > m.width-38 {
		listWidth = m.width / 2
	}
	detailWidth := m.width - listWidth - 1
	if detailWidth < 34 {
		detailWidth = 34
		listWidth = m.width - detailWidth - 1
	}

	m.listPaneWidth = listWidth
	m.detailPaneWidth = detailWidth

	panelInnerHeight := maxInt(6, m.bodyHeight-2)
	m.list.SetSize(maxInt(24, listWidth-4), panelInnerHeight)
	m.detail.Width = maxInt(24, detailWidth-4)
	m.detail.Height = panelInnerHeight
	m.refreshDetail(false)
}

func (m restockTUIModel) headerView() string {
	focus := "list"
	switch m.focus {
	case tuiFocusDetail:
		focus = "detail"
	case tuiFocusInput:
		focus = "add"
	}

	top := fmt.Sprintf("restock tui  |  %s  |  %d to order", strings.ToUpper(string(m.app.lang)), m.app.list.OrderedCount())
	if m.busy {
		top += "  " + m.spinner.View() + " classifying..."
	}
	bottom := fmt.Sprintf(
		"entries: %d visible / %d total  |  filters: %s  |  focus: %s",
		m.visibleEntries, m.app.list.Len(), m.activeFilterSummary(), focus,
	)

	return lipgloss.NewStyle().
		Width(m.width).
		Padding(0, 1).
		Render(tuiHeaderStyle.Render(top) + "\n" + tuiMetaStyle.Render(bottom))
}

func (m restockTUIModel) bodyView() string {
	listBorder := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("241")).
		Padding(0, 1)
	detailBorder := listBorder

	if m.focus == tuiFocusDetail {
		detailBorder = detailBorder.BorderForeground(lipgloss.Color("86"))
	} else {
		listBorder = listBorder.BorderForeground(lipgloss.Color("86"))
	}

	left := listBorder.
		Width(m.listPaneWidth).
		Height(m.bodyHeight).
		Render(m.list.View())
	right := detailBorder.
		Width(m.detailPaneWidth).
		Height(m.bodyHeight).
		Render(m.detail.View())

	return lipgloss.JoinHorizontal(lipgloss.Top, left, " ", right)
}

func (m restockTUIModel) footerView() string {
	if m.focus == tuiFocusInput {
		return lipgloss.NewStyle().Padding(0, 1).Render(
			m.input.View() + "\n" + tuiHintStyle.Render("name [quantity [unit]] • enter add • esc cancel"),
		)
	}

	base := "a add • o order • +/- qty • </> order qty • u unit • x remove • / filter • c category • m ordered • [/] section • ? help • q quit"
	if m.focus == tuiFocusDetail {
		base = "Detail: j/k or ↑/↓ scroll • u/d half-page • b/f page • esc list • ? help • q quit"
	}

	if !m.showHelp {
		return lipgloss.NewStyle().Padding(0, 1).Render(tuiHintStyle.Render(base))
	}

	lines := []string{
		"Key Help",
		"edit: a add (\"tomate 2 kg\") • o toggle order • +/- quantity • >/< order quantity • u next unit • x remove",
		"list pane: ↑/↓ or j/k move • / fuzzy filter • c category • m ordered only • r reset",
		"group jumps: ] next category • [ previous category • 1..9 jump to numbered category",
		"global: tab switch pane • esc list • ? toggle help • q quit • ctrl+c force quit",
	}
	return lipgloss.NewStyle().
		Padding(0, 1).
		Render(tuiHintStyle.Render(strings.Join(lines, "\n")))
}

// refreshChoices rebuilds the category choices from the list, keeping the
// current choice when it still exists.
func (m *restockTUIModel) refreshChoices() {
	current := ""
	if m.categoryIndex > 0 && m.categoryIndex < len(m.categoryChoices) {
		current = m.categoryChoices[m.categoryIndex]
	}
	m.categoryChoices = buildCategoryChoices(m.app.list.Entries(), current)
	m.categoryIndex = maxInt(0, indexOfStringFold(m.categoryChoices, current))
}

func (m *restockTUIModel) cycleCategory() {
	if len(m.categoryChoices) == 0 {
		return
	}
	m.categoryIndex = (m.categoryIndex + 1) % len(m.categoryChoices)
	m.applyCurrentFilters(false)
}

func (m restockTUIModel) currentCategory() string {
	if m.categoryIndex < 0 || m.categoryIndex >= len(m.categoryChoices) {
		return ""
	}
	return m.categoryChoices[m.categoryIndex]
}

func (m restockTUIModel) activeFilterSummary() string {
	parts := []string{}
	if category := m.currentCategory(); category != "" {
		parts = append(parts, "category:"+category)
	}
	if m.orderedOnly {
		parts = append(parts, "ordered")
	}
	if fuzzy := strings.TrimSpace(m.list.FilterValue()); fuzzy != "" {
		parts = append(parts, "fuzzy:"+fuzzy)
	}
	if len(parts) == 0 {
		return "none"
	}
	return strings.Join(parts, ", ")
}

func (m *restockTUIModel) applyCurrentFilters(resetSelection bool) {
	currentID := m.selectedID
	entries := filter.Apply(m.app.list.Entries(), filter.Options{
		Category: m.currentCategory(),
		Ordered:  m.orderedOnly,
	})
	m.visibleEntries = len(entries)

	groups := grouping.GroupAndOrderBy(entries, m.highlightID, m.app.lang, m.app.catalog.CategoryOrder())
	items, starts := buildGroupedListItems(groups, m.app.lang)
	m.groupStarts = starts

	m.list.Title = fmt.Sprintf("Restock • %d visible", m.visibleEntries)
	m.list.SetItems(items)

	target := -1
	if !resetSelection && currentID != "" {
		target = findItemIndexByID(items, currentID)
	}
	if target < 0 {
		target = firstEntryItemIndex(items)
	}
	if target < 0 && len(items) > 0 {
		target = 0
	}
	if target >= 0 {
		m.list.Select(target)
	}

	m.refreshDetail(true)
}

func (m *restockTUIModel) refreshDetail(resetScroll bool) {
	var content string
	nextID := ""

	if selected := m.list.SelectedItem(); selected != nil {
		switch item := selected.(type) {
		case tuiEntryItem:
			content = renderEntryDetailContent(item.entry, m.app.lang, m.detail.Width)
			nextID = stableIDForEntry(item.entry.ID)
		case tuiGroupItem:
			content = m.renderGroupDetail(item)
			nextID = stableIDForGroup(item.categoryID)
		}
	}
	if content == "" {
		content = "Nothing to show.\n\nPress a to add a product, or r to reset filters."
	}

	if resetScroll || nextID != m.selectedID {
		m.detail.GotoTop()
	}
	m.selectedID = nextID
	m.detail.SetContent(content)
}

func (m restockTUIModel) renderGroupDetail(group tuiGroupItem) string {
	preview := m.groupPreviewTitles(group.categoryID, 5)

	lines := []string{
		tuiSectionStyle.Render(fmt.Sprintf("Category %d: %s", group.ordinal, group.name)),
		tuiMetaStyle.Render(fmt.Sprintf("%d items in this category", group.count)),
		"",
		tuiMetaStyle.Render("Jump keys:"),
		"- `]` next category, `[` previous category",
		"- `1..9` jump directly to category number",
	}
	if len(preview) > 0 {
		lines = append(lines, "")
		lines = append(lines, tuiMetaStyle.Render("Preview:"))
		for _, title := range preview {
			lines = append(lines, "• "+title)
		}
	}

	return strings.Join(lines, "\n")
}

func (m restockTUIModel) groupPreviewTitles(categoryID string, max int) []string {
	out := make([]string, 0, max)
	for _, item := range m.list.Items() {
		entry, ok := item.(tuiEntryItem)
		if !ok || entry.entry.CategoryID != categoryID {
			continue
		}
		out = append(out, entry.title)
		if len(out) >= max {
			break
		}
	}
	return out
}

func (m *restockTUIModel) jumpToSection(index int) {
	if index < 0 || index >= len(m.groupStarts) {
		return
	}

	target := firstEntryIndexFrom(m.list.Items(), m.groupStarts[index])
	if target < 0 {
		target = m.groupStarts[index]
	}
	m.list.Select(target)
	m.refreshDetail(true)
}

func (m *restockTUIModel) jumpSection(delta int) {
	if len(m.groupStarts) == 0 {
		return
	}

	current := m.currentSectionIndex()
	if current < 0 {
		current = 0
	}
	next := current + delta
	if next < 0 {
		next = len(m.groupStarts) - 1
	}
	if next >= len(m.groupStarts) {
		next = 0
	}
	m.jumpToSection(next)
}

func (m restockTUIModel) currentSectionIndex() int {
	if len(m.groupStarts) == 0 {
		return -1
	}
	cursor := m.list.GlobalIndex()
	current := 0
	for i, start := range m.groupStarts {
		if start <= cursor {
			current = i
			continue
		}
		break
	}
	return current
}

// buildGroupedListItems flattens groups into a header item followed by its
// entries. starts holds the index of every header.
func buildGroupedListItems(groups []grouping.Group, lang catalog.Language) (items []list.Item, starts []int) {
	if len(groups) == 0 {
		return nil, nil
	}

	size := len(groups)
	for _, g := range groups {
		size += len(g.Entries)
	}
	items = make([]list.Item, 0, size)
	starts = make([]int, 0, len(groups))

	for idx, g := range groups {
		starts = append(starts, len(items))
		name := g.Name(lang)
		items = append(items, tuiGroupItem{
			categoryID: g.CategoryID,
			name:       name,
			count:      len(g.Entries),
			ordinal:    idx + 1,
		})
		for _, e := range g.Entries {
			items = append(items, buildTUIEntryItem(e, name, lang, e.ID == g.HighlightID))
		}
	}
	return items, starts
}

func buildTUIEntryItem(e restock.Entry, group string, lang catalog.Language, highlighted bool) tuiEntryItem {
	title := e.Name(lang)
	if highlighted {
		title = "* " + title
	}

	descParts := []string{display.FormatQuantity(e.Quantity, e.Unit, lang)}
	if e.IsOrderMarked {
		if e.OrderQuantity != nil {
			descParts = append(descParts, "order "+display.FormatQuantity(*e.OrderQuantity, e.Unit, lang))
		} else {
			descParts = append(descParts, "order qty missing")
		}
	}
	if !e.IsKnown {
		descParts = append(descParts, "not in dictionary")
	}

	filterTokens := []string{e.NameES, e.NameFR, group, string(e.Unit)}

	return tuiEntryItem{
		entry:       e,
		group:       group,
		title:       title,
		description: strings.Join(descParts, "  •  "),
		filterValue: strings.ToLower(strings.Join(filterTokens, " ")),
	}
}

func renderEntryDetailContent(e restock.Entry, lang catalog.Language, width int) string {
	maxWidth := maxInt(24, width)

	other := e.NameFR
	if lang == catalog.French {
		other = e.NameES
	}

	lines := []string{
		tuiNameStyle.Render(wrapText(e.Name(lang), maxWidth)),
		tuiMetaStyle.Render(wrapText(other, maxWidth)),
		"",
		fmt.Sprintf("%s %s", tuiMetaStyle.Render("Quantity:"), tuiValueStyle.Render(display.FormatQuantity(e.Quantity, e.Unit, lang))),
	}

	if e.Unit == catalog.UnitNone {
		lines = append(lines, fmt.Sprintf("%s %s", tuiMetaStyle.Render("Unit:"), tuiMutedStyle.Render("none (press u)")))
	}

	switch {
	case !e.IsOrderMarked:
		lines = append(lines, fmt.Sprintf("%s %s", tuiMetaStyle.Render("Order:"), tuiMutedStyle.Render("not marked (press o)")))
	case e.OrderQuantity == nil:
		lines = append(lines, fmt.Sprintf("%s %s", tuiOrderStyle.Render("Order:"), tuiWarnStyle.Render("quantity missing (press >)")))
	default:
		lines = append(lines, fmt.Sprintf("%s %s", tuiOrderStyle.Render("Order:"), tuiValueStyle.Render(display.FormatQuantity(*e.OrderQuantity, e.Unit, lang))))
	}

	lines = append(lines, "")
	lines = append(lines, fmt.Sprintf("%s %s", tuiMetaStyle.Render("Category:"), e.CategoryName(lang)))
	if e.IsKnown {
		lines = append(lines, fmt.Sprintf("%s %s", tuiMetaStyle.Render("Product:"), e.ProductID))
	} else {
		lines = append(lines, tuiWarnStyle.Render("Not in dictionary; French name is a translation."))
	}
	lines = append(lines, "")
	lines = append(lines, tuiMutedStyle.Render("ID: "+e.ID))

	return strings.Join(lines, "\n")
}

// parseAddInput splits "name [quantity [unit]]". A unit is only taken
// after a number so names ending in a unit word stay intact.
func parseAddInput(text string) (name string, qty *float64, unit catalog.Unit) {
	fields := strings.Fields(text)

	if len(fields) >= 3 {
		if u, ok := catalog.ParseUnit(fields[len(fields)-1]); ok && u != catalog.UnitNone {
			if v, err := parseNumber(fields[len(fields)-2]); err == nil {
				return strings.Join(fields[:len(fields)-2], " "), &v, u
			}
		}
	}
	if len(fields) >= 2 {
		if v, err := parseNumber(fields[len(fields)-1]); err == nil {
			return strings.Join(fields[:len(fields)-1], " "), &v, catalog.UnitNone
		}
	}
	return strings.Join(fields, " "), nil, catalog.UnitNone
}

func parseNumber(raw string) (float64, error) {
	return strconv.ParseFloat(strings.ReplaceAll(raw, ",", "."), 64)
}

func nextUnit(u catalog.Unit) catalog.Unit {
	cycle := append([]catalog.Unit{catalog.UnitNone}, catalog.Units()...)
	for i, candidate := range cycle {
		if candidate == u {
			return cycle[(i+1)%len(cycle)]
		}
	}
	return catalog.UnitNone
}

// buildCategoryChoices returns "" (all) followed by the category IDs on the
// list in first-seen order.
func buildCategoryChoices(entries []restock.Entry, current string) []string {
	counts := filter.Categories(entries)
	values := make([]string, 0, len(counts)+2)
	values = append(values, "")
	for _, c := range counts {
		values = append(values, c.ID)
	}
	if current != "" && indexOfStringFold(values, current) < 0 {
		values = append(values, current)
	}
	return values
}

func wrapText(text string, width int) string {
	words := strings.Fields(text)
	if len(words) == 0 {
		return ""
	}
	if width < 12 {
		width = 12
	}

	line := words[0]
	lines := make([]string, 0, len(words)/6+1)
	for _, w := range words[1:] {
		if len(line)+1+len(w) > width {
			lines = append(lines, line)
			line = w
			continue
		}
		line += " " + w
	}
	lines = append(lines, line)
	return strings.Join(lines, "\n")
}

func indexOfStringFold(values []string, target string) int {
	for i, value := range values {
		if strings.EqualFold(value, target) {
			return i
		}
	}
	return -1
}

func findItemIndexByID(items []list.Item, stableID string) int {
	for i, item := range items {
		if stableIDForItem(item) == stableID {
			return i
		}
	}
	return -1
}

func firstEntryItemIndex(items []list.Item) int {
	return firstEntryIndexFrom(items, 0)
}

func firstEntryIndexFrom(items []list.Item, start int) int {
	for i := start; i < len(items); i++ {
		if _, ok := items[i].(tuiEntryItem); ok {
			return i
		}
	}
	return -1
}

func stableIDForItem(item list.Item) string {
	switch value := item.(type) {
	case tuiEntryItem:
		return stableIDForEntry(value.entry.ID)
	case tuiGroupItem:
		return stableIDForGroup(value.categoryID)
	default:
		return ""
	}
}

func stableIDForEntry(id string) string {
	return "entry:" + id
}

func stableIDForGroup(categoryID string) string {
	return "group:" + categoryID
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}
