// Package tui is the interactive terminal front end of the catalog.
package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/nguyentranbao-ct/product-catalog/internal/coordinator"
	"github.com/nguyentranbao-ct/product-catalog/internal/models"
	"github.com/nguyentranbao-ct/product-catalog/internal/overlay"
)

// Screen layout, in terminal cells.
const (
	listTop      = 4 // title, search, sort, status
	cardHeight   = 3 // name and price, description, gap
	overlayTop   = 2
	overlayLeft  = 4
	overlayWidth = 48
)

const closeLabel = "[x] fechar"

// Model binds keyboard and mouse input to coordinator events.
type Model struct {
	co     *coordinator.Coordinator
	list   *ListRenderer
	search textinput.Model
	styles Styles

	cursor int
	offset int
	width  int
	height int
	err    error
}

// New wraps a started coordinator whose renderer is list.
func New(co *coordinator.Coordinator, list *ListRenderer) Model {
	ti := textinput.New()
	ti.Prompt = "Buscar: "
	ti.Placeholder = "nome ou descrição"
	ti.SetValue(co.Criteria().SearchText)
	ti.Focus()

	return Model{
		co:     co,
		list:   list,
		search: ti,
		styles: DefaultStyles(),
		height: 24,
		width:  80,
	}
}

func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.search.Width = max(msg.Width-len(m.search.Prompt)-2, 10)
		m.scroll()
		return m, nil

	case tea.KeyMsg:
		if msg.Type == tea.KeyCtrlC {
			return m, tea.Quit
		}
		if m.co.Overlay() == overlay.Visible {
			if msg.String() == "x" {
				m.dispatch(coordinator.CloseClicked{})
			}
			return m, nil
		}
		return m.updateList(msg)

	case tea.MouseMsg:
		if msg.Action != tea.MouseActionPress || msg.Button != tea.MouseButtonLeft {
			return m, nil
		}
		m.click(msg.X, msg.Y)
		return m, nil
	}

	var cmd tea.Cmd
	m.search, cmd = m.search.Update(msg)
	return m, cmd
}

func (m Model) updateList(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyTab:
		m.dispatch(coordinator.SortChanged{Key: nextSort(m.co.Criteria().Sort)})
		return m, nil
	case tea.KeyUp:
		m.move(-1)
		return m, nil
	case tea.KeyDown:
		m.move(1)
		return m, nil
	case tea.KeyEnter:
		m.dispatch(coordinator.ImageClicked{Index: m.cursor})
		return m, nil
	}

	before := m.search.Value()
	var cmd tea.Cmd
	m.search, cmd = m.search.Update(msg)
	if m.search.Value() != before {
		m.dispatch(coordinator.SearchChanged{Text: m.search.Value()})
		m.cursor, m.offset = 0, 0
	}
	return m, cmd
}

func (m *Model) click(x, y int) {
	if m.co.Overlay() == overlay.Visible {
		box := m.overlayBox()
		w, h := lipgloss.Width(box), lipgloss.Height(box)
		inside := x >= overlayLeft && x < overlayLeft+w && y >= overlayTop && y < overlayTop+h
		switch {
		case !inside:
			m.dispatch(coordinator.OverlayClicked{OnBackground: true})
		case y == overlayTop+1 && onCloseLabel(x, w):
			m.dispatch(coordinator.CloseClicked{})
		default:
			m.dispatch(coordinator.OverlayClicked{OnBackground: false})
		}
		return
	}

	if y < listTop {
		return
	}
	index := m.offset + (y-listTop)/cardHeight
	if index >= len(m.list.Cards()) {
		return
	}
	m.cursor = index
	m.dispatch(coordinator.ImageClicked{Index: index})
}

// onCloseLabel reports whether column x falls on the close label, which sits right-aligned
// inside the border and padding of a box w cells wide.
func onCloseLabel(x, w int) bool {
	right := overlayLeft + w - 2
	return x >= right-lipgloss.Width(closeLabel) && x < right
}

func (m *Model) dispatch(ev coordinator.Event) {
	m.err = m.co.Dispatch(ev)
	m.clamp()
}

func (m *Model) move(delta int) {
	m.cursor += delta
	m.clamp()
}

func (m *Model) clamp() {
	n := len(m.list.Cards())
	if m.cursor >= n {
		m.cursor = n - 1
	}
	if m.cursor < 0 {
		m.cursor = 0
	}
	m.scroll()
}

func (m *Model) scroll() {
	visible := m.visibleCards()
	if m.cursor < m.offset {
		m.offset = m.cursor
	}
	if m.cursor >= m.offset+visible {
		m.offset = m.cursor - visible + 1
	}
}

func (m Model) visibleCards() int {
	return max((m.height-listTop)/cardHeight, 1)
}

func nextSort(k models.SortKey) models.SortKey {
	for i, key := range models.SortKeys {
		if key == k {
			return models.SortKeys[(i+1)%len(models.SortKeys)]
		}
	}
	return models.SortNone
}

func (m Model) View() string {
	if m.co.Overlay() == overlay.Visible {
		return lipgloss.NewStyle().Margin(overlayTop, 0, 0, overlayLeft).Render(m.overlayBox())
	}

	var b strings.Builder
	b.WriteString(m.styles.Title.Render("Catálogo de produtos"))
	b.WriteByte('\n')
	b.WriteString(m.search.View())
	b.WriteByte('\n')
	b.WriteString(m.sortLine())
	b.WriteByte('\n')
	b.WriteString(m.statusLine())
	b.WriteByte('\n')

	cards := m.list.Cards()
	end := min(m.offset+m.visibleCards(), len(cards))
	for i := m.offset; i < end; i++ {
		c := cards[i]
		name := m.styles.Name.Render(c.Name)
		marker := "  "
		if i == m.cursor {
			name = m.styles.Selected.Render(c.Name)
			marker = "> "
		}
		fmt.Fprintf(&b, "%s%s  %s\n", marker, name, m.styles.Price.Render(c.Price))
		fmt.Fprintf(&b, "  %s\n\n", m.styles.Description.Render(c.Description))
	}
	return b.String()
}

func (m Model) sortLine() string {
	parts := make([]string, 0, len(models.SortKeys))
	current := m.co.Criteria().Sort
	for _, k := range models.SortKeys {
		if k == current {
			parts = append(parts, m.styles.SortActive.Render(k.Label()))
		} else {
			parts = append(parts, m.styles.Sort.Render(k.Label()))
		}
	}
	return m.styles.Label.Render("Ordenar (tab): ") + strings.Join(parts, " | ")
}

func (m Model) statusLine() string {
	if m.err != nil {
		return m.styles.Error.Render(m.err.Error())
	}
	return m.styles.Status.Render(fmt.Sprintf("%d produtos  enter: ver imagem  ctrl+c: sair", len(m.list.Cards())))
}

func (m Model) overlayBox() string {
	p, ok := m.co.Preview()
	if !ok {
		return ""
	}
	closeCtl := lipgloss.PlaceHorizontal(overlayWidth-2, lipgloss.Right, m.styles.Close.Render(closeLabel))
	lines := []string{
		closeCtl,
		"",
		m.styles.Label.Render("imagem: ") + p.ImageURL,
		"",
		m.styles.Name.Render(p.Name) + "  " + m.styles.Price.Render(p.Price),
	}
	return m.styles.Overlay.Render(strings.Join(lines, "\n"))
}

// Err is the error of the last dispatched event, if any.
func (m Model) Err() error {
	return m.err
}
