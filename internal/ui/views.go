package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/Thiagom05/IceCore/internal/catalog"
)

func (m Model) renderMain() string {
	var b strings.Builder
	b.WriteString(m.renderHeader())
	b.WriteString("\n")
	b.WriteString(m.renderContent())
	if m.status != "" {
		b.WriteString("\n")
		b.WriteString(m.theme.Styles().Warning.Render(m.status))
	}
	return b.String()
}

func (m Model) renderContent() string {
	switch m.view {
	case ViewOrder:
		return m.renderOrder()
	case ViewCart:
		return m.renderCart()
	default:
		return m.renderCatalog()
	}
}

func (m Model) renderHeader() string {
	s := m.theme.Styles()

	title := s.Title.Render("IceCore Heladería")
	cartBadge := s.Accent.Render(fmt.Sprintf("🛒 %d · %s", m.ledger.Count(), formatPrice(m.ledger.Total())))

	var state string
	switch {
	case m.refreshing:
		state = s.Muted.Render("actualizando…")
	case m.snapshot.FetchedAt.IsZero():
		state = s.Muted.Render("catálogo local")
	default:
		state = s.Muted.Render("catálogo " + m.snapshot.FetchedAt.Format("15:04"))
	}

	bar := s.Muted.Render("[m] menú  [o] pedido  [c] carrito  [r] actualizar  [h] ayuda  [e] salir")
	return lipgloss.JoinVertical(lipgloss.Left,
		title+"  "+cartBadge+"  "+state,
		bar,
	)
}

func (m Model) renderCatalog() string {
	s := m.theme.Styles()
	var b strings.Builder

	b.WriteString(s.Accent.Render("Formatos"))
	b.WriteString("\n")
	for i, p := range m.snapshot.Products {
		line := fmt.Sprintf("%-28s %10s", truncate(p.Nombre, 28), formatPrice(p.Precio))
		if p.EsPorPeso {
			line += s.Muted.Render(fmt.Sprintf("  hasta %d gustos", p.MaxGustos))
		}
		if i == m.cursor {
			line = s.Selected.Render("> " + line)
		} else {
			line = "  " + line
		}
		b.WriteString(line)
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(s.Accent.Render("Gustos"))
	b.WriteString("\n")
	for _, categoria := range flavorCategories(m.snapshot.Flavors) {
		b.WriteString(s.Title.Render(categoria))
		b.WriteString("\n")
		for _, f := range m.snapshot.Flavors {
			if f.Categoria != categoria {
				continue
			}
			marker := s.Success.Render("●")
			name := f.Nombre
			if !f.HayStock {
				marker = s.Danger.Render("○")
				name += s.Muted.Render(" (sin stock)")
			}
			b.WriteString("  " + marker + " " + name + "\n")
		}
	}

	return s.Panel.Render(b.String())
}

func (m Model) renderOrder() string {
	if m.step == stepFlavors {
		return m.renderFlavorPicker()
	}
	return m.renderProductPicker()
}

func (m Model) renderProductPicker() string {
	s := m.theme.Styles()
	var b strings.Builder

	b.WriteString(s.Accent.Render("Arma tu pedido — elegí un formato"))
	b.WriteString("\n\n")
	for i, p := range m.snapshot.Products {
		line := fmt.Sprintf("%-28s %10s", truncate(p.Nombre, 28), formatPrice(p.Precio))
		if i == m.cursor {
			line = s.Selected.Render("> " + line)
		} else {
			line = "  " + line
		}
		b.WriteString(line)
		b.WriteString("\n")
	}
	b.WriteString("\n")
	b.WriteString(s.Muted.Render("enter elegir · esc volver"))

	return s.Panel.Render(b.String())
}

func (m Model) renderFlavorPicker() string {
	s := m.theme.Styles()
	var b strings.Builder

	b.WriteString(s.Accent.Render(fmt.Sprintf(
		"%s — gustos %d/%d", m.selectedProduct.Nombre, len(m.selectedFlavors), m.selectedProduct.MaxGustos)))
	b.WriteString("\n\n")

	for i, f := range m.snapshot.Flavors {
		mark := "[ ]"
		if m.flavorSelected(f.ID) {
			mark = s.Success.Render("[x]")
		}
		name := f.Nombre
		if !f.HayStock {
			name = s.Muted.Render(name + " (sin stock)")
		}
		line := mark + " " + name
		if i == m.flavorCursor {
			line = s.Selected.Render("> " + line)
		} else {
			line = "  " + line
		}
		b.WriteString(line)
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(s.Muted.Render("espacio marcar · enter agregar al carrito · esc volver"))
	return s.Panel.Render(b.String())
}

func (m Model) flavorSelected(id int64) bool {
	for _, g := range m.selectedFlavors {
		if g.ID == id {
			return true
		}
	}
	return false
}

func (m Model) renderCart() string {
	s := m.theme.Styles()
	var b strings.Builder

	b.WriteString(s.Accent.Render("Tu carrito"))
	b.WriteString("\n\n")

	if len(m.items) == 0 {
		b.WriteString(s.Muted.Render("Vacío. ¡Corre a elegir tus sabores favoritos!"))
		return s.Panel.Render(b.String())
	}

	for i, item := range m.items {
		names := make([]string, 0, len(item.Gustos))
		for _, g := range item.Gustos {
			names = append(names, g.Nombre)
		}
		line := fmt.Sprintf("%-28s %10s", truncate(item.Product.Nombre, 28), s.Price.Render(formatPrice(item.Price)))
		if item.Quantity > 1 {
			line += s.Muted.Render(fmt.Sprintf("  x%d", item.Quantity))
		}
		detail := "    " + s.Muted.Render(truncate(flavorNames(names), 60))
		if i == m.cartCursor {
			line = s.Selected.Render("> " + line)
		} else {
			line = "  " + line
		}
		b.WriteString(line + "\n" + detail + "\n")
	}

	b.WriteString("\n")
	b.WriteString(s.Title.Render("Total  " + formatPrice(m.ledger.Total())))
	b.WriteString("\n")
	b.WriteString(s.Muted.Render("d quitar · D vaciar · esc volver"))
	return s.Panel.Render(b.String())
}

func (m Model) renderHelp() string {
	s := m.theme.Styles()
	rows := []struct{ key, desc string }{
		{"m", "Ver el menú completo"},
		{"o", "Armar un pedido"},
		{"c", "Ver el carrito"},
		{"r", "Actualizar catálogo desde el servidor"},
		{"↑/↓, j/k", "Moverse"},
		{"enter", "Elegir / confirmar"},
		{"espacio", "Marcar gusto"},
		{"d / D", "Quitar ítem / vaciar carrito"},
		{"T", "Cambiar tema"},
		{"esc", "Volver"},
		{"e, Ctrl+C", "Salir"},
	}

	var b strings.Builder
	b.WriteString(s.Title.Render("Ayuda"))
	b.WriteString("\n\n")
	for _, r := range rows {
		keyCol := s.HelpKey.Render(fmt.Sprintf("%-10s", r.key))
		b.WriteString("  " + keyCol + " " + r.desc + "\n")
	}
	b.WriteString("\n")
	b.WriteString(s.Muted.Render("cualquier tecla para cerrar"))
	return s.Panel.Render(b.String())
}

// flavorCategories returns the distinct categories in first-seen order.
func flavorCategories(flavors []catalog.Flavor) []string {
	var order []string
	seen := make(map[string]bool)
	for _, f := range flavors {
		if !seen[f.Categoria] {
			seen[f.Categoria] = true
			order = append(order, f.Categoria)
		}
	}
	return order
}
