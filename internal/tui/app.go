package tui

import (
	"errors"
	"fmt"
	"log/slog"
	"strconv"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/mmcdole/nador/internal/adapter"
	"github.com/mmcdole/nador/internal/catalog"
	"github.com/mmcdole/nador/internal/domain"
	"github.com/mmcdole/nador/internal/tui/components"
	"github.com/mmcdole/nador/internal/tui/styles"
)

// ApplicationState represents which part of the screen owns the keyboard
type ApplicationState int

const (
	StateBrowsing ApplicationState = iota
	StateSearching
	StatePicking
)

const (
	spinnerInterval = 100 * time.Millisecond
	statusDuration  = 4 * time.Second
)

// Options configure the initial presentation
type Options struct {
	View             adapter.ViewMode
	GridColumns      int
	DescriptionWidth int
}

// Model is the main Bubble Tea model for the application. It owns the
// catalog store; every store mutation happens inside Update.
type Model struct {
	// Application state
	State ApplicationState
	Ready bool

	// Store and services
	Catalog    *catalog.Store
	CatalogSvc *catalog.Service
	Opener     ImageOpener
	Logger     *slog.Logger

	// UI Components
	Categories     components.CategoryBar
	Search         components.SearchBox
	Table          components.ProductTable
	Grid           components.ProductGrid
	Inspector      components.Inspector
	CategoryPicker components.CategoryPicker
	Help           help.Model
	Keys           KeyMap

	// Dimensions
	Width  int
	Height int

	// UI state
	ViewMode      adapter.ViewMode
	StatusMsg     string
	StatusIsErr   bool
	SpinnerFrame  int
	ShowInspector bool
	spinning      bool
}

// NewModel creates a new application model around store. The store's filter
// may already be set (e.g. from command-line flags); the search box and the
// category bar start from it.
func NewModel(store *catalog.Store, svc *catalog.Service, opener ImageOpener, logger *slog.Logger, opts Options) Model {
	if logger == nil {
		logger = slog.Default()
	}
	if opts.View == "" {
		opts.View = adapter.ViewTable
	}

	m := Model{
		State:          StateBrowsing,
		Catalog:        store,
		CatalogSvc:     svc,
		Opener:         opener,
		Logger:         logger,
		Categories:     components.NewCategoryBar(),
		Search:         components.NewSearchBox(),
		Table:          components.NewProductTable(opts.DescriptionWidth),
		Grid:           components.NewProductGrid(opts.GridColumns),
		Inspector:      components.NewInspector(),
		CategoryPicker: components.NewCategoryPicker(),
		Help:           help.New(),
		Keys:           DefaultKeyMap(),
		ViewMode:       opts.View,
	}

	f := store.Filter()
	m.Categories.Select(f.Category)
	m.Search.SetValue(f.Search)
	m.syncCategories()
	m.syncProducts()
	return m
}

// Init starts both catalog fetches. They run independently and each result
// arrives as its own message.
func (m Model) Init() tea.Cmd {
	m.Catalog.BeginLoad()
	return tea.Batch(
		LoadCatalogCmd(m.CatalogSvc),
		TickCmd(spinnerInterval),
	)
}

// Update handles all messages
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.Width = msg.Width
		m.Height = msg.Height
		m.Ready = true
		m.updateLayout()
		return m, nil

	case tea.KeyMsg:
		return m.handleKeyMsg(msg)

	case TickMsg:
		if !m.Catalog.Loading() {
			m.spinning = false
			return m, nil
		}
		m.spinning = true
		m.SpinnerFrame++
		return m, TickCmd(spinnerInterval)

	case ProductsLoadedMsg:
		m.Catalog.ApplyProducts(msg.Products, msg.Err)
		m.syncProducts()
		m.updateLayout()
		if msg.Err != nil {
			cmd := m.setStatus(msg.Err.Error(), true)
			return m, cmd
		}
		return m, nil

	case CategoriesLoadedMsg:
		m.Catalog.ApplyCategories(msg.Categories, msg.Err)
		m.syncCategories()
		m.updateLayout()
		if msg.Err != nil {
			cmd := m.setStatus(msg.Err.Error(), true)
			return m, cmd
		}
		return m, nil

	case ImageOpenedMsg:
		if msg.Err != nil {
			m.Logger.Error("failed to open image", "product", msg.Product.ID, "error", msg.Err)
			cmd := m.setStatus(ErrMsg{Err: msg.Err, Context: "open image"}.Error(), true)
			return m, cmd
		}
		cmd := m.setStatus("Opened image for "+msg.Product.Title, false)
		return m, cmd

	case StatusMsg:
		cmd := m.setStatus(msg.Message, msg.IsError)
		return m, cmd

	case ClearStatusMsg:
		m.StatusMsg = ""
		m.StatusIsErr = false
		return m, nil
	}

	// Cursor blink and similar messages belong to the focused input
	var cmd tea.Cmd
	switch m.State {
	case StateSearching:
		m.Search, cmd, _ = m.Search.Update(msg)
	case StatePicking:
		m.CategoryPicker, cmd, _ = m.CategoryPicker.Update(msg)
	}
	return m, cmd
}

func (m *Model) setStatus(text string, isErr bool) tea.Cmd {
	m.StatusMsg = text
	m.StatusIsErr = isErr
	return ClearStatusCmd(statusDuration)
}

// handleKeyMsg routes keys to whichever part of the screen owns the keyboard
func (m Model) handleKeyMsg(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+c" {
		return m, tea.Quit
	}

	switch m.State {
	case StatePicking:
		return m.handlePickerKeys(msg)
	case StateSearching:
		return m.handleSearchKeys(msg)
	}
	return m.handleBrowseKeys(msg)
}

func (m Model) handleSearchKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.Keys.AcceptSearch) {
		m.Search.Blur()
		m.State = StateBrowsing
		return m, nil
	}

	var cmd tea.Cmd
	var changed bool
	m.Search, cmd, changed = m.Search.Update(msg)
	if changed {
		m.setSearchText(m.Search.Value())
	}
	return m, cmd
}

func (m Model) handlePickerKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	var selected bool
	m.CategoryPicker, cmd, selected = m.CategoryPicker.Update(msg)
	if selected {
		if c, ok := m.CategoryPicker.Selected(); ok {
			m.setCategory(c)
		}
	}
	if !m.CategoryPicker.IsVisible() {
		m.State = StateBrowsing
	}
	return m, cmd
}

func (m Model) handleBrowseKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.Keys.Quit):
		return m, tea.Quit

	case key.Matches(msg, m.Keys.Search):
		m.State = StateSearching
		cmd := m.Search.Focus()
		return m, cmd

	case key.Matches(msg, m.Keys.ClearSearch):
		if m.Search.Value() != "" {
			m.Search.SetValue("")
			m.setSearchText("")
		}
		return m, nil

	case key.Matches(msg, m.Keys.NextCategory):
		m.Categories.Next()
		m.setCategory(m.Categories.Selected())
		return m, nil

	case key.Matches(msg, m.Keys.PrevCategory):
		m.Categories.Prev()
		m.setCategory(m.Categories.Selected())
		return m, nil

	case key.Matches(msg, m.Keys.CategoryBySlot):
		slot, _ := strconv.Atoi(msg.String())
		if m.Categories.SelectIndex(slot) {
			m.setCategory(m.Categories.Selected())
		}
		return m, nil

	case key.Matches(msg, m.Keys.PickCategory):
		categories := m.Catalog.Categories()
		if len(categories) == 0 {
			cmd := m.setStatus("Categories are not loaded yet", false)
			return m, cmd
		}
		m.State = StatePicking
		cmd := m.CategoryPicker.Show(categories, m.Catalog.Filter().Category)
		return m, cmd

	case key.Matches(msg, m.Keys.ToggleView):
		if m.ViewMode == adapter.ViewGrid {
			m.ViewMode = adapter.ViewTable
		} else {
			m.ViewMode = adapter.ViewGrid
		}
		m.updateInspector()
		return m, nil

	case key.Matches(msg, m.Keys.ToggleInspector):
		m.ShowInspector = !m.ShowInspector
		m.updateLayout()
		return m, nil

	case key.Matches(msg, m.Keys.OpenImage):
		p, ok := m.selectedProduct()
		if !ok {
			return m, nil
		}
		if m.Opener == nil || p.Image == "" {
			cmd := m.setStatus("No image for this product", true)
			return m, cmd
		}
		return m, OpenImageCmd(m.Opener, p)

	case key.Matches(msg, m.Keys.Reload):
		cmd := m.reload()
		return m, cmd

	case key.Matches(msg, m.Keys.Help):
		m.Help.ShowAll = !m.Help.ShowAll
		m.updateLayout()
		return m, nil
	}

	var cmd tea.Cmd
	if m.ViewMode == adapter.ViewGrid {
		m.Grid, cmd = m.Grid.Update(msg)
	} else {
		m.Table, cmd = m.Table.Update(msg)
	}
	m.updateInspector()
	return m, cmd
}

// reload re-issues both fetches. Data already shown stays until replaced.
func (m *Model) reload() tea.Cmd {
	if m.Catalog.Loading() {
		return nil
	}
	m.Catalog.BeginLoad()
	m.StatusMsg = ""
	cmds := []tea.Cmd{LoadCatalogCmd(m.CatalogSvc)}
	if !m.spinning {
		m.spinning = true
		cmds = append(cmds, TickCmd(spinnerInterval))
	}
	return tea.Batch(cmds...)
}

func (m *Model) setCategory(category string) {
	m.Catalog.SetCategory(category)
	m.Categories.Select(category)
	m.syncProducts()
}

func (m *Model) setSearchText(text string) {
	m.Catalog.SetSearchText(text)
	m.syncProducts()
}

// syncProducts pushes the store's filtered view into the list components
func (m *Model) syncProducts() {
	filtered := m.Catalog.FilteredProducts()
	m.Table.SetProducts(filtered)
	m.Grid.SetProducts(filtered)
	m.Categories.SetCounts(nil)
	if m.Catalog.HasProducts() {
		m.Categories.SetCounts(m.Catalog.CategoryCounts())
	}
	m.updateInspector()
}

func (m *Model) syncCategories() {
	if categories := m.Catalog.Categories(); len(categories) > 0 {
		m.Categories.SetCategories(categories)
	}
	m.Categories.SetFailed(m.Catalog.CategoriesState() == catalog.LoadFailed)
}

func (m Model) selectedProduct() (domain.Product, bool) {
	if m.ViewMode == adapter.ViewGrid {
		return m.Grid.Selected()
	}
	return m.Table.Selected()
}

func (m *Model) updateInspector() {
	if p, ok := m.selectedProduct(); ok {
		m.Inspector.SetProduct(&p)
		return
	}
	m.Inspector.SetProduct(nil)
}

// loadErrorText describes a failed product load for the body
func loadErrorText(err error) string {
	switch {
	case errors.Is(err, domain.ErrParseFailed):
		return fmt.Sprintf("The catalog response could not be read (%v)", err)
	case errors.Is(err, domain.ErrFetchFailed):
		return fmt.Sprintf("The catalog could not be reached (%v)", err)
	case err != nil:
		return err.Error()
	}
	return "Unknown error"
}

// spinner returns the current spinner glyph
func (m Model) spinner() string {
	return styles.SpinnerStyle.Render(styles.SpinnerFrames[m.SpinnerFrame%len(styles.SpinnerFrames)])
}
