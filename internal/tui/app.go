package tui

import (
	"errors"
	"log/slog"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/ingdavann/bookverse-project/internal/collections"
	"github.com/ingdavann/bookverse-project/internal/domain"
	"github.com/ingdavann/bookverse-project/internal/search"
	"github.com/ingdavann/bookverse-project/internal/stats"
	"github.com/ingdavann/bookverse-project/internal/tui/components"
)

// View identifies the active screen
type View int

const (
	ViewBrowse View = iota
	ViewSearch
	ViewFavorites
	ViewLists
	ViewStats
)

// ViewFromName maps a configured view name to its View. Unknown names
// fall back to browse.
func ViewFromName(name string) View {
	switch strings.ToLower(name) {
	case "search":
		return ViewSearch
	case "favorites":
		return ViewFavorites
	case "lists":
		return ViewLists
	case "stats":
		return ViewStats
	default:
		return ViewBrowse
	}
}

// Model is the main Bubble Tea model for the application
type Model struct {
	collections *collections.Service
	catalog     domain.CatalogClient
	logger      *slog.Logger
	keys        KeyMap

	view   View
	width  int
	height int

	statusMsg   string
	statusIsErr bool
	loading     bool

	// Per-fetch sequence numbers. A completion whose sequence does not
	// match the latest issued one belongs to an abandoned view and is
	// dropped.
	browseSeq int
	searchSeq int
	favSeq    int
	detailSeq int

	// Browse (new releases)
	newBooks     []domain.Book
	browseCursor int

	// Search
	searchInput  textinput.Model
	results      []domain.Book
	resultTotal  int
	searchCursor int
	shelfMatches []search.Match

	// Favorites
	favorites []string
	favBooks  []domain.Book
	favCursor int

	// Reading lists
	lists        []domain.ReadingList
	listCursor   int
	bookCursor   int
	booksFocused bool

	// Statistics
	stats        domain.ReadingStats
	achievements []domain.Achievement

	// Detail overlay
	detail     *domain.BookDetail
	showDetail bool

	modal components.ListModal
}

// NewModel creates the application model opened on startView.
// Collections state is read synchronously; catalog data arrives via
// commands.
func NewModel(colls *collections.Service, catalog domain.CatalogClient, logger *slog.Logger, startView View) Model {
	if logger == nil {
		logger = slog.Default()
	}

	input := textinput.New()
	input.Placeholder = "Search books..."
	input.CharLimit = 80
	input.Width = 40
	input.Prompt = "/ "

	m := Model{
		collections: colls,
		catalog:     catalog,
		logger:      logger,
		keys:        DefaultKeyMap(),
		view:        startView,
		searchInput: input,
		modal:       components.NewListModal(),
	}
	m.reloadCollections()
	return m
}

// Init starts the first new-release fetch
func (m Model) Init() tea.Cmd {
	return loadNewBooksCmd(m.catalog, m.browseSeq)
}

// Update handles all messages
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)

	case NewBooksMsg:
		if msg.Seq != m.browseSeq {
			return m, nil
		}
		m.loading = false
		m.newBooks = msg.Books
		m.browseCursor = clampCursor(m.browseCursor, len(m.newBooks))
		m.setStatus("", false)
		return m, nil

	case SearchResultsMsg:
		if msg.Seq != m.searchSeq {
			return m, nil
		}
		m.loading = false
		m.results = search.Rank(msg.Result.Books, msg.Query)
		m.resultTotal = msg.Result.Total
		m.searchCursor = 0
		if len(m.results) == 0 {
			m.setStatus("no results for "+msg.Query, false)
		} else {
			m.setStatus("", false)
		}
		return m, nil

	case FavoriteBooksMsg:
		if msg.Seq != m.favSeq {
			return m, nil
		}
		m.loading = false
		m.favBooks = msg.Books
		m.favCursor = clampCursor(m.favCursor, len(m.favBooks))
		if msg.Failed > 0 {
			m.setStatus("some favorites could not be loaded", false)
		}
		return m, nil

	case BookDetailMsg:
		if msg.Seq != m.detailSeq {
			return m, nil
		}
		m.loading = false
		m.detail = msg.Detail
		m.showDetail = true
		return m, nil

	case ErrMsg:
		m.loading = false
		m.logger.Error("fetch failed", "error", msg.Err, "context", msg.Context)
		m.setStatus(msg.Context+" failed", true)
		return m, nil
	}

	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	// Modal captures all input while visible
	if m.modal.IsVisible() {
		modal, cmd, submitted := m.modal.Update(msg)
		m.modal = modal
		if submitted {
			name, description := m.modal.Name(), m.modal.Description()
			m.modal.Hide()
			if _, err := m.collections.CreateList(name, description); err != nil {
				m.setCollectionsError("create list", err)
			} else {
				m.reloadCollections()
				m.listCursor = len(m.lists) - 1
				m.setStatus("created list "+name, false)
			}
		}
		return m, cmd
	}

	// Detail overlay
	if m.showDetail {
		switch {
		case key.Matches(msg, m.keys.Escape), key.Matches(msg, m.keys.Enter):
			m.showDetail = false
			return m, nil
		case key.Matches(msg, m.keys.ToggleFav):
			m.toggleFavorite(m.detail.ISBN13)
			return m, nil
		case key.Matches(msg, m.keys.AddToList):
			m.addToWantToRead(m.detail.Book())
			return m, nil
		case key.Matches(msg, m.keys.Quit):
			return m, tea.Quit
		}
		return m, nil
	}

	// Search input captures keys while focused
	if m.view == ViewSearch && m.searchInput.Focused() {
		switch msg.String() {
		case "enter":
			query := m.searchInput.Value()
			m.searchInput.Blur()
			if query == "" {
				return m, nil
			}
			m.loading = true
			m.searchSeq++
			m.shelfMatches = search.NewFilterIndex(m.lists).Filter(query)
			return m, searchBooksCmd(m.catalog, query, m.searchSeq)
		case "esc":
			m.searchInput.Blur()
			return m, nil
		case "ctrl+c":
			return m, tea.Quit
		}
		var cmd tea.Cmd
		m.searchInput, cmd = m.searchInput.Update(msg)
		return m, cmd
	}

	// Global keys
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit

	case key.Matches(msg, m.keys.Browse):
		m.view = ViewBrowse
		if len(m.newBooks) == 0 {
			m.loading = true
			m.browseSeq++
			return m, loadNewBooksCmd(m.catalog, m.browseSeq)
		}
		return m, nil

	case key.Matches(msg, m.keys.Search):
		m.view = ViewSearch
		m.searchInput.Focus()
		return m, textinput.Blink

	case key.Matches(msg, m.keys.Favorites):
		m.view = ViewFavorites
		return m, m.refreshFavoriteBooks()

	case key.Matches(msg, m.keys.Lists):
		m.view = ViewLists
		m.reloadCollections()
		return m, nil

	case key.Matches(msg, m.keys.Stats):
		m.view = ViewStats
		m.reloadCollections()
		return m, nil
	}

	return m.handleViewKey(msg)
}

// handleViewKey dispatches navigation and actions for the active view
func (m Model) handleViewKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch m.view {
	case ViewBrowse:
		return m.handleListingKey(msg, m.newBooks, &m.browseCursor)
	case ViewSearch:
		return m.handleListingKey(msg, m.results, &m.searchCursor)
	case ViewFavorites:
		return m.handleFavoritesKey(msg)
	case ViewLists:
		return m.handleListsKey(msg)
	}
	return m, nil
}

// handleListingKey covers browse and search result lists
func (m Model) handleListingKey(msg tea.KeyMsg, books []domain.Book, cursor *int) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Up):
		*cursor = clampCursor(*cursor-1, len(books))
	case key.Matches(msg, m.keys.Down):
		*cursor = clampCursor(*cursor+1, len(books))
	case key.Matches(msg, m.keys.Refresh):
		if m.view == ViewBrowse {
			m.loading = true
			m.browseSeq++
			return m, loadNewBooksCmd(m.catalog, m.browseSeq)
		}
	case key.Matches(msg, m.keys.Enter):
		if b, ok := at(books, *cursor); ok {
			m.loading = true
			m.detailSeq++
			return m, loadBookDetailCmd(m.catalog, b.ISBN13, m.detailSeq)
		}
	case key.Matches(msg, m.keys.ToggleFav):
		if b, ok := at(books, *cursor); ok {
			m.toggleFavorite(b.ISBN13)
		}
	case key.Matches(msg, m.keys.AddToList):
		if b, ok := at(books, *cursor); ok {
			m.addToWantToRead(b)
		}
	}
	return m, nil
}

func (m Model) handleFavoritesKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Up):
		m.favCursor = clampCursor(m.favCursor-1, len(m.favBooks))
	case key.Matches(msg, m.keys.Down):
		m.favCursor = clampCursor(m.favCursor+1, len(m.favBooks))
	case key.Matches(msg, m.keys.Refresh):
		return m, m.refreshFavoriteBooks()
	case key.Matches(msg, m.keys.Enter):
		if b, ok := at(m.favBooks, m.favCursor); ok {
			m.loading = true
			m.detailSeq++
			return m, loadBookDetailCmd(m.catalog, b.ISBN13, m.detailSeq)
		}
	case key.Matches(msg, m.keys.Delete), key.Matches(msg, m.keys.ToggleFav):
		if b, ok := at(m.favBooks, m.favCursor); ok {
			if _, err := m.collections.RemoveFavorite(b.ISBN13); err != nil {
				m.setCollectionsError("remove favorite", err)
				return m, nil
			}
			m.reloadCollections()
			return m, m.refreshFavoriteBooks()
		}
	case key.Matches(msg, m.keys.AddToList):
		if b, ok := at(m.favBooks, m.favCursor); ok {
			m.addToWantToRead(b)
		}
	}
	return m, nil
}

func (m Model) handleListsKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	list, hasList := at(m.lists, m.listCursor)

	switch {
	case key.Matches(msg, m.keys.Left):
		m.booksFocused = false
	case key.Matches(msg, m.keys.Right):
		if hasList && len(list.Books) > 0 {
			m.booksFocused = true
			m.bookCursor = clampCursor(m.bookCursor, len(list.Books))
		}
	case key.Matches(msg, m.keys.Up):
		if m.booksFocused {
			m.bookCursor = clampCursor(m.bookCursor-1, len(list.Books))
		} else {
			m.listCursor = clampCursor(m.listCursor-1, len(m.lists))
			m.bookCursor = 0
		}
	case key.Matches(msg, m.keys.Down):
		if m.booksFocused {
			m.bookCursor = clampCursor(m.bookCursor+1, len(list.Books))
		} else {
			m.listCursor = clampCursor(m.listCursor+1, len(m.lists))
			m.bookCursor = 0
		}
	case key.Matches(msg, m.keys.NewList):
		m.modal.Show()
	case key.Matches(msg, m.keys.Delete):
		if m.booksFocused {
			if hasList {
				if b, ok := at(list.Books, m.bookCursor); ok {
					if _, err := m.collections.RemoveBook(list.ID, b.ISBN); err != nil {
						m.setCollectionsError("remove book", err)
					} else {
						m.reloadCollections()
						m.setStatus("removed "+b.Title, false)
					}
				}
			}
		} else if hasList {
			if err := m.collections.DeleteList(list.ID); err != nil {
				m.setCollectionsError("delete list", err)
			} else {
				m.reloadCollections()
				m.listCursor = clampCursor(m.listCursor, len(m.lists))
				m.setStatus("deleted list "+list.Name, false)
			}
		}
	case key.Matches(msg, m.keys.CycleStatus):
		if m.booksFocused && hasList {
			if b, ok := at(list.Books, m.bookCursor); ok {
				next := nextStatus(b.Status)
				if _, err := m.collections.UpdateStatus(list.ID, b.ISBN, next); err != nil {
					m.setCollectionsError("update status", err)
				} else {
					m.reloadCollections()
					m.setStatus(b.Title+" → "+next.String(), false)
				}
			}
		}
	case key.Matches(msg, m.keys.ProgressUp):
		m.adjustProgress(list, hasList, 10)
	case key.Matches(msg, m.keys.ProgressDown):
		m.adjustProgress(list, hasList, -10)
	case key.Matches(msg, m.keys.Enter):
		if m.booksFocused && hasList {
			if b, ok := at(list.Books, m.bookCursor); ok {
				m.loading = true
				m.detailSeq++
				return m, loadBookDetailCmd(m.catalog, b.ISBN, m.detailSeq)
			}
		}
	}
	return m, nil
}

// adjustProgress shifts the selected book's progress by delta. The store
// clamps to [0,100].
func (m *Model) adjustProgress(list domain.ReadingList, hasList bool, delta int) {
	if !m.booksFocused || !hasList {
		return
	}
	b, ok := at(list.Books, m.bookCursor)
	if !ok {
		return
	}
	if _, err := m.collections.UpdateProgress(list.ID, b.ISBN, b.Progress+delta); err != nil {
		m.setCollectionsError("update progress", err)
		return
	}
	m.reloadCollections()
}

// toggleFavorite flips membership and refreshes local state
func (m *Model) toggleFavorite(isbn string) {
	favorites, err := m.collections.ToggleFavorite(isbn)
	if err != nil {
		m.setCollectionsError("toggle favorite", err)
		return
	}
	m.favorites = favorites
	m.setStatus("favorites updated", false)
}

// addToWantToRead tracks a catalog book in the default wishlist
func (m *Model) addToWantToRead(b domain.Book) {
	_, err := m.collections.AddBook(domain.ListIDWantToRead, domain.TrackedBook{
		ISBN:  b.ISBN13,
		Title: b.Title,
		Image: b.Image,
	})
	if err != nil {
		if errors.Is(err, domain.ErrDuplicateBook) {
			m.setStatus(b.Title+" is already tracked", false)
			return
		}
		m.setCollectionsError("add to list", err)
		return
	}
	m.reloadCollections()
	m.setStatus("added "+b.Title+" to Want to Read", false)
}

// refreshFavoriteBooks issues a catalog fetch for the favorite set
func (m *Model) refreshFavoriteBooks() tea.Cmd {
	m.reloadCollections()
	if len(m.favorites) == 0 {
		m.favBooks = nil
		return nil
	}
	m.loading = true
	m.favSeq++
	return loadFavoriteBooksCmd(m.catalog, m.favorites, m.favSeq)
}

// reloadCollections re-reads favorites and lists from the store and
// recomputes statistics. Store errors surface on the status line; the
// previous view state is kept.
func (m *Model) reloadCollections() {
	favorites, err := m.collections.Favorites()
	if err != nil {
		m.setCollectionsError("load favorites", err)
	} else {
		m.favorites = favorites
	}

	lists, err := m.collections.Lists()
	if err != nil {
		m.setCollectionsError("load lists", err)
	} else {
		m.lists = lists
	}

	m.stats = stats.Compute(m.lists, m.favorites)
	m.achievements = stats.Achievements(m.stats)
}

func (m *Model) setStatus(msg string, isErr bool) {
	m.statusMsg = msg
	m.statusIsErr = isErr
}

func (m *Model) setCollectionsError(op string, err error) {
	m.logger.Error("collections operation failed", "op", op, "error", err)
	m.setStatus(op+": "+err.Error(), true)
}

// isFavorite checks the in-memory favorite snapshot
func (m Model) isFavorite(isbn string) bool {
	for _, fav := range m.favorites {
		if fav == isbn {
			return true
		}
	}
	return false
}

// nextStatus cycles want-to-read → reading → completed → want-to-read
func nextStatus(s domain.ReadingStatus) domain.ReadingStatus {
	switch s {
	case domain.StatusWantToRead:
		return domain.StatusReading
	case domain.StatusReading:
		return domain.StatusCompleted
	default:
		return domain.StatusWantToRead
	}
}

func clampCursor(cursor, length int) int {
	if length == 0 {
		return 0
	}
	if cursor < 0 {
		return 0
	}
	if cursor >= length {
		return length - 1
	}
	return cursor
}

// at returns the element at i when i is in range
func at[T any](items []T, i int) (T, bool) {
	var zero T
	if i < 0 || i >= len(items) {
		return zero, false
	}
	return items[i], true
}
