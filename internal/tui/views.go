package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/ingdavann/bookverse-project/internal/domain"
	"github.com/ingdavann/bookverse-project/internal/tui/styles"
)

var tabNames = []string{"1 Browse", "2 Search", "3 Favorites", "4 Lists", "5 Stats"}

// View renders the application
func (m Model) View() string {
	if m.width == 0 {
		return "loading..."
	}

	var content string
	switch m.view {
	case ViewBrowse:
		content = m.renderListing("New Releases", m.newBooks, m.browseCursor)
	case ViewSearch:
		content = m.renderSearch()
	case ViewFavorites:
		content = m.renderFavorites()
	case ViewLists:
		content = m.renderLists()
	case ViewStats:
		content = m.renderStats()
	}

	body := lipgloss.JoinVertical(lipgloss.Left,
		m.renderHeader(),
		content,
		m.renderFooter(),
	)

	if m.modal.IsVisible() {
		return m.overlay(m.modal.View())
	}
	if m.showDetail && m.detail != nil {
		return m.overlay(m.renderDetail())
	}
	return body
}

func (m Model) renderHeader() string {
	tabs := make([]string, len(tabNames))
	for i, name := range tabNames {
		if View(i) == m.view {
			tabs[i] = styles.SelectedStyle.Render(name)
		} else {
			tabs[i] = styles.DimStyle.Render(" " + name + " ")
		}
	}
	title := styles.AccentStyle.Bold(true).Render("bookverse")
	return lipgloss.JoinHorizontal(lipgloss.Center, title, "  ", strings.Join(tabs, " "))
}

func (m Model) renderFooter() string {
	if m.loading {
		return styles.DimStyle.Render(styles.SpinnerFrames[0] + " loading...")
	}
	if m.statusMsg != "" {
		if m.statusIsErr {
			return styles.ErrorStyle.Render(m.statusMsg)
		}
		return styles.SuccessStyle.Render(m.statusMsg)
	}
	return styles.DimStyle.Render("j/k: move · enter: details · f: favorite · a: track · q: quit")
}

// renderListing renders browse and search result book lists
func (m Model) renderListing(title string, books []domain.Book, cursor int) string {
	var b strings.Builder
	b.WriteString(styles.TitleStyle.Render(title))
	b.WriteString("\n\n")

	if len(books) == 0 {
		b.WriteString(styles.DimStyle.Render("  nothing here yet"))
		return b.String()
	}

	for i, book := range books {
		line := book.DisplayTitle()
		if m.isFavorite(book.ISBN13) {
			line = styles.FavoriteStyle.Render("♥ ") + line
		} else {
			line = "  " + line
		}
		if book.Price != "" {
			line += styles.DimStyle.Render("  " + book.Price)
		}
		if i == cursor {
			line = styles.SelectedStyle.Render(line)
		}
		b.WriteString(line)
		b.WriteString("\n")
	}
	return b.String()
}

func (m Model) renderSearch() string {
	var b strings.Builder
	b.WriteString(m.searchInput.View())
	b.WriteString("\n\n")

	if len(m.shelfMatches) > 0 {
		b.WriteString(styles.SubtitleStyle.Render("On your shelves"))
		b.WriteString("\n")
		for i, match := range m.shelfMatches {
			if i >= 3 {
				break
			}
			b.WriteString(fmt.Sprintf("  %s %s\n",
				match.Book.Title,
				styles.DimStyle.Render("("+match.ListName+")")))
		}
		b.WriteString("\n")
	}

	title := "Catalog"
	if m.resultTotal > 0 {
		title = fmt.Sprintf("Catalog (%d results)", m.resultTotal)
	}
	b.WriteString(m.renderListing(title, m.results, m.searchCursor))
	return b.String()
}

func (m Model) renderFavorites() string {
	var b strings.Builder
	b.WriteString(styles.TitleStyle.Render(fmt.Sprintf("Favorites (%d)", len(m.favorites))))
	b.WriteString("\n\n")

	if len(m.favorites) == 0 {
		b.WriteString(styles.DimStyle.Render("  no favorites yet — press f on any book"))
		return b.String()
	}

	for i, book := range m.favBooks {
		line := styles.FavoriteStyle.Render("♥ ") + book.DisplayTitle()
		if i == m.favCursor {
			line = styles.SelectedStyle.Render(line)
		}
		b.WriteString(line)
		b.WriteString("\n")
	}
	return b.String()
}

func (m Model) renderLists() string {
	// Lists pane
	var lp strings.Builder
	lp.WriteString(styles.TitleStyle.Render("Reading Lists"))
	lp.WriteString("\n\n")
	for i, list := range m.lists {
		line := fmt.Sprintf("%s (%d)", list.Name, len(list.Books))
		if domain.IsDefaultList(list.ID) {
			line += styles.DimStyle.Render(" •")
		}
		if i == m.listCursor && !m.booksFocused {
			line = styles.SelectedStyle.Render(line)
		} else if i == m.listCursor {
			line = styles.AccentStyle.Render(line)
		}
		lp.WriteString(line)
		lp.WriteString("\n")
	}

	// Books pane for the selected list
	var bp strings.Builder
	if list, ok := at(m.lists, m.listCursor); ok {
		bp.WriteString(styles.SubtitleStyle.Render(list.Description))
		bp.WriteString("\n\n")
		if len(list.Books) == 0 {
			bp.WriteString(styles.DimStyle.Render("  empty"))
		}
		for i, book := range list.Books {
			statusStyle := lipgloss.NewStyle().Foreground(styles.StatusColor(string(book.Status)))
			line := fmt.Sprintf("%s %s", statusStyle.Render("●"), book.Title)
			if book.Status == domain.StatusReading {
				line += styles.DimStyle.Render("  " + progressBar(book.Progress))
			}
			if i == m.bookCursor && m.booksFocused {
				line = styles.SelectedStyle.Render(line)
			}
			bp.WriteString(line)
			bp.WriteString("\n")
		}
	}

	listPane := paneStyle(!m.booksFocused).Width(m.width / 3).Render(lp.String())
	bookPane := paneStyle(m.booksFocused).Width(m.width - m.width/3 - 4).Render(bp.String())
	panes := lipgloss.JoinHorizontal(lipgloss.Top, listPane, bookPane)

	help := styles.DimStyle.Render("n: new list · d: delete · s: status · +/-: progress · h/l: focus")
	return lipgloss.JoinVertical(lipgloss.Left, panes, help)
}

func (m Model) renderStats() string {
	var b strings.Builder
	b.WriteString(styles.TitleStyle.Render("Reading Statistics"))
	b.WriteString("\n\n")

	rows := []struct {
		label string
		value int
	}{
		{"Total Books", m.stats.TotalBooks},
		{"Books Read", m.stats.BooksRead},
		{"Currently Reading", m.stats.CurrentlyReading},
		{"Want to Read", m.stats.WantToRead},
		{"Favorites", m.stats.FavoritesCount},
		{"Pages Read (est.)", m.stats.TotalPages},
	}
	for _, row := range rows {
		b.WriteString(fmt.Sprintf("  %-20s %s\n",
			row.label,
			styles.AccentStyle.Render(fmt.Sprintf("%d", row.value))))
	}

	b.WriteString("\n")
	b.WriteString(styles.TitleStyle.Render("Achievements"))
	b.WriteString("\n\n")
	for _, a := range m.achievements {
		if a.Unlocked {
			b.WriteString(styles.UnlockedStyle.Render("  ★ " + a.Name))
		} else {
			b.WriteString(styles.DimStyle.Render("  ☆ " + a.Name))
		}
		b.WriteString(styles.DimStyle.Render(" — " + a.Description))
		b.WriteString("\n")
	}
	return b.String()
}

func (m Model) renderDetail() string {
	d := m.detail
	var b strings.Builder

	b.WriteString(styles.TitleStyle.Render(d.Title))
	b.WriteString("\n")
	if d.Subtitle != "" {
		b.WriteString(styles.SubtitleStyle.Render(d.Subtitle))
		b.WriteString("\n")
	}
	b.WriteString("\n")

	meta := []struct{ label, value string }{
		{"Authors", d.Authors},
		{"Publisher", d.Publisher},
		{"Year", fmt.Sprintf("%d", d.Year)},
		{"Pages", fmt.Sprintf("%d", d.Pages)},
		{"Rating", d.Stars()},
		{"Price", d.Price},
		{"ISBN", d.ISBN13},
	}
	for _, row := range meta {
		if row.value == "" || row.value == "0" {
			continue
		}
		b.WriteString(fmt.Sprintf("%-10s %s\n", styles.DimStyle.Render(row.label), row.value))
	}

	if d.Desc != "" {
		b.WriteString("\n")
		b.WriteString(wordWrap(d.Desc, 56))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(styles.DimStyle.Render("f: favorite · a: track · esc: close"))

	return styles.ActiveBorder.Padding(1, 2).Width(62).Render(b.String())
}

// overlay centers a floating box on the screen, replacing the view
// behind it while visible
func (m Model) overlay(box string) string {
	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, box)
}

func paneStyle(active bool) lipgloss.Style {
	if active {
		return styles.ActiveBorder.Padding(0, 1)
	}
	return styles.InactiveBorder.Padding(0, 1)
}

// progressBar renders a ten-slot bar like "▓▓▓░░░░░░░ 30%"
func progressBar(pct int) string {
	filled := pct / 10
	return strings.Repeat("▓", filled) + strings.Repeat("░", 10-filled) + fmt.Sprintf(" %d%%", pct)
}

// wordWrap breaks text into lines no longer than width
func wordWrap(text string, width int) string {
	words := strings.Fields(text)
	if len(words) == 0 {
		return ""
	}

	var b strings.Builder
	lineLen := 0
	for i, word := range words {
		if lineLen+len(word)+1 > width && lineLen > 0 {
			b.WriteString("\n")
			lineLen = 0
		} else if i > 0 {
			b.WriteString(" ")
			lineLen++
		}
		b.WriteString(word)
		lineLen += len(word)
	}
	return b.String()
}
