// Package ui provides the Bubble Tea storefront for IceCore: catalog
// browsing, the order builder, and the cart view. It only reads snapshots
// from the cache and the ledger and invokes their public operations; all
// catalog and cart semantics live below this package.
package ui

import (
	"context"
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/Thiagom05/IceCore/internal/cart"
	"github.com/Thiagom05/IceCore/internal/catalog"
	"github.com/Thiagom05/IceCore/internal/storage"
)

const keyTheme = "icecore_theme"

// View represents the current active view.
type View int

const (
	ViewCatalog View = iota
	ViewOrder
	ViewCart
)

// orderStep tracks progress through the order builder.
type orderStep int

const (
	stepProduct orderStep = iota
	stepFlavors
)

// Options configure the UI.
type Options struct {
	Context context.Context
	Cache   *catalog.Cache
	Ledger  *cart.Ledger
	Store   *storage.Store
}

// Model is the root application state for Bubble Tea.
type Model struct {
	ctx    context.Context
	cache  *catalog.Cache
	ledger *cart.Ledger
	store  *storage.Store
	keys   keyMap

	theme  Theme
	view   View
	width  int
	height int
	ready  bool

	snapshot catalog.Snapshot
	items    []cart.Item

	cursor       int
	flavorCursor int
	cartCursor   int

	step            orderStep
	selectedProduct catalog.Product
	selectedFlavors []catalog.Flavor

	showHelp   bool
	refreshing bool
	status     string
}

// New creates the root model. The catalog must already be initialized.
func New(opts Options) Model {
	ctx := opts.Context
	if ctx == nil {
		ctx = context.Background()
	}

	themeName := defaultThemeName
	if opts.Store != nil {
		if saved, ok := opts.Store.Get(keyTheme); ok {
			themeName = saved
		}
	}

	m := Model{
		ctx:    ctx,
		cache:  opts.Cache,
		ledger: opts.Ledger,
		store:  opts.Store,
		keys:   defaultKeyMap(),
		theme:  GetTheme(themeName),
		view:   ViewCatalog,
	}
	if opts.Cache != nil {
		m.snapshot = opts.Cache.Snapshot()
	}
	if opts.Ledger != nil {
		m.items = opts.Ledger.Items()
	}
	return m
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return tea.EnterAltScreen
}

// Messages

// catalogMsg carries a freshly published catalog snapshot.
type catalogMsg catalog.Snapshot

// refreshDoneMsg signals a forced refresh finished (successfully or not).
type refreshDoneMsg struct{ err error }

// statusExpireMsg clears the transient status line.
type statusExpireMsg struct{}

// Commands

func refreshCmd(ctx context.Context, cache *catalog.Cache) tea.Cmd {
	return func() tea.Msg {
		return refreshDoneMsg{err: cache.Refresh(ctx, true)}
	}
}

func expireStatusCmd() tea.Cmd {
	return tea.Tick(3*time.Second, func(time.Time) tea.Msg {
		return statusExpireMsg{}
	})
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.ready = true
		return m, nil

	case catalogMsg:
		m.snapshot = catalog.Snapshot(msg)
		// Reconciliation may have rewritten cart lines.
		m.items = m.ledger.Items()
		m.clampCursors()
		return m, nil

	case refreshDoneMsg:
		m.refreshing = false
		if msg.err != nil {
			m.status = "Sin conexión: mostrando catálogo guardado"
		} else {
			m.status = "Catálogo actualizado"
		}
		return m, expireStatusCmd()

	case statusExpireMsg:
		m.status = ""
		return m, nil
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.showHelp {
		// Any key closes help.
		m.showHelp = false
		return m, nil
	}

	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit

	case key.Matches(msg, m.keys.Help):
		m.showHelp = true
		return m, nil

	case key.Matches(msg, m.keys.CycleTheme):
		m.theme = GetTheme(NextTheme(m.theme.Name))
		if m.store != nil {
			m.store.Set(keyTheme, m.theme.Name)
		}
		return m, nil

	case key.Matches(msg, m.keys.Refresh):
		if m.refreshing {
			return m, nil
		}
		m.refreshing = true
		m.status = "Actualizando catálogo..."
		return m, refreshCmd(m.ctx, m.cache)

	case key.Matches(msg, m.keys.ViewCatalog):
		m.view = ViewCatalog
		return m, nil

	case key.Matches(msg, m.keys.ViewOrder):
		m.view = ViewOrder
		m.resetOrder()
		return m, nil

	case key.Matches(msg, m.keys.ViewCart):
		m.view = ViewCart
		m.clampCursors()
		return m, nil
	}

	switch m.view {
	case ViewOrder:
		return m.handleOrderKey(msg)
	case ViewCart:
		return m.handleCartKey(msg)
	default:
		return m.handleCatalogKey(msg)
	}
}

func (m Model) handleCatalogKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Up):
		m.cursor = clamp(m.cursor-1, 0, len(m.snapshot.Products)-1)
	case key.Matches(msg, m.keys.Down):
		m.cursor = clamp(m.cursor+1, 0, len(m.snapshot.Products)-1)
	case key.Matches(msg, m.keys.Select):
		m.view = ViewOrder
		m.resetOrder()
		m.cursor = clamp(m.cursor, 0, len(m.snapshot.Products)-1)
	}
	return m, nil
}

func (m Model) handleOrderKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch m.step {
	case stepFlavors:
		return m.handleFlavorKey(msg)
	default:
		return m.handleProductKey(msg)
	}
}

func (m Model) handleProductKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	products := m.snapshot.Products
	switch {
	case key.Matches(msg, m.keys.Up):
		m.cursor = clamp(m.cursor-1, 0, len(products)-1)
	case key.Matches(msg, m.keys.Down):
		m.cursor = clamp(m.cursor+1, 0, len(products)-1)
	case key.Matches(msg, m.keys.Back):
		m.view = ViewCatalog
	case key.Matches(msg, m.keys.Select):
		if len(products) == 0 {
			return m, nil
		}
		m.selectedProduct = products[m.cursor]
		if m.selectedProduct.EsPorPeso && m.selectedProduct.MaxGustos > 0 {
			m.step = stepFlavors
			m.flavorCursor = 0
			m.selectedFlavors = nil
			return m, nil
		}
		// Unit products go straight to the cart.
		return m.addSelectionToCart()
	}
	return m, nil
}

func (m Model) handleFlavorKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	flavors := m.snapshot.Flavors
	switch {
	case key.Matches(msg, m.keys.Up):
		m.flavorCursor = clamp(m.flavorCursor-1, 0, len(flavors)-1)
	case key.Matches(msg, m.keys.Down):
		m.flavorCursor = clamp(m.flavorCursor+1, 0, len(flavors)-1)
	case key.Matches(msg, m.keys.Back):
		m.step = stepProduct
		m.selectedFlavors = nil
	case key.Matches(msg, m.keys.Toggle):
		if len(flavors) == 0 {
			return m, nil
		}
		m.toggleFlavor(flavors[m.flavorCursor])
	case key.Matches(msg, m.keys.Select):
		return m.addSelectionToCart()
	}
	return m, nil
}

func (m Model) handleCartKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Up):
		m.cartCursor = clamp(m.cartCursor-1, 0, len(m.items)-1)
	case key.Matches(msg, m.keys.Down):
		m.cartCursor = clamp(m.cartCursor+1, 0, len(m.items)-1)
	case key.Matches(msg, m.keys.Back):
		m.view = ViewCatalog
	case key.Matches(msg, m.keys.RemoveItem):
		if len(m.items) == 0 {
			return m, nil
		}
		m.ledger.Remove(m.items[m.cartCursor].CartID)
		m.items = m.ledger.Items()
		m.clampCursors()
	case key.Matches(msg, m.keys.ClearCart):
		m.ledger.Clear()
		m.items = nil
		m.cartCursor = 0
	}
	return m, nil
}

// toggleFlavor adds or removes a flavor from the pending selection,
// honoring stock and the product's capacity.
func (m *Model) toggleFlavor(flavor catalog.Flavor) {
	if !flavor.HayStock {
		m.status = "Sin stock: " + flavor.Nombre
		return
	}
	for i, g := range m.selectedFlavors {
		if g.ID == flavor.ID {
			m.selectedFlavors = append(m.selectedFlavors[:i], m.selectedFlavors[i+1:]...)
			return
		}
	}
	if len(m.selectedFlavors) >= m.selectedProduct.MaxGustos {
		m.status = "Máximo de gustos alcanzado"
		return
	}
	m.selectedFlavors = append(m.selectedFlavors, flavor)
}

func (m Model) addSelectionToCart() (tea.Model, tea.Cmd) {
	if m.selectedProduct.Nombre == "" {
		return m, nil
	}
	m.ledger.Add(cart.Item{
		Product:  m.selectedProduct,
		Gustos:   m.selectedFlavors,
		Price:    m.selectedProduct.Precio,
		Quantity: 1,
	})
	m.items = m.ledger.Items()
	m.status = "Agregado: " + m.selectedProduct.Nombre
	m.resetOrder()
	return m, expireStatusCmd()
}

func (m *Model) resetOrder() {
	m.step = stepProduct
	m.selectedProduct = catalog.Product{}
	m.selectedFlavors = nil
	m.flavorCursor = 0
	m.clampCursors()
}

func (m *Model) clampCursors() {
	m.cursor = clamp(m.cursor, 0, max(0, len(m.snapshot.Products)-1))
	m.flavorCursor = clamp(m.flavorCursor, 0, max(0, len(m.snapshot.Flavors)-1))
	m.cartCursor = clamp(m.cartCursor, 0, max(0, len(m.items)-1))
}

// View implements tea.Model.
func (m Model) View() string {
	if !m.ready {
		return "Cargando..."
	}
	if m.showHelp {
		return m.renderHelp()
	}
	return m.renderMain()
}

// Run starts the Bubble Tea program and blocks until the user quits. Cache
// publications (background polls included) are forwarded into the program
// so the screen follows catalog updates.
func Run(opts Options) error {
	p := tea.NewProgram(New(opts), tea.WithAltScreen())

	var unsubscribe func()
	if opts.Cache != nil {
		unsubscribe = opts.Cache.Subscribe(func(snap catalog.Snapshot) {
			p.Send(catalogMsg(snap))
		})
	}
	if unsubscribe != nil {
		defer unsubscribe()
	}

	if opts.Context != nil {
		go func() {
			<-opts.Context.Done()
			p.Send(tea.Quit())
		}()
	}

	_, err := p.Run()
	return err
}
