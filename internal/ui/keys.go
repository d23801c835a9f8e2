package ui

import "github.com/charmbracelet/bubbles/key"

// keyMap defines all keyboard bindings for the storefront.
type keyMap struct {
	// Global
	Quit       key.Binding
	Help       key.Binding
	CycleTheme key.Binding
	Refresh    key.Binding

	// View switching
	ViewCatalog key.Binding
	ViewOrder   key.Binding
	ViewCart    key.Binding

	// Navigation
	Up   key.Binding
	Down key.Binding

	// Order builder
	Select key.Binding
	Toggle key.Binding
	Back   key.Binding

	// Cart actions
	RemoveItem key.Binding
	ClearCart  key.Binding
}

// defaultKeyMap returns the default key bindings.
func defaultKeyMap() keyMap {
	return keyMap{
		Quit: key.NewBinding(
			key.WithKeys("ctrl+c", "e"),
			key.WithHelp("e", "Exit"),
		),
		Help: key.NewBinding(
			key.WithKeys("h", "?"),
			key.WithHelp("h/?", "Help"),
		),
		CycleTheme: key.NewBinding(
			key.WithKeys("T"),
			key.WithHelp("T", "Cycle theme"),
		),
		Refresh: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "Refresh catalog"),
		),
		ViewCatalog: key.NewBinding(
			key.WithKeys("m"),
			key.WithHelp("m", "Menu"),
		),
		ViewOrder: key.NewBinding(
			key.WithKeys("o"),
			key.WithHelp("o", "Build order"),
		),
		ViewCart: key.NewBinding(
			key.WithKeys("c"),
			key.WithHelp("c", "Cart"),
		),
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("↑/k", "Up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("↓/j", "Down"),
		),
		Select: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "Select/confirm"),
		),
		Toggle: key.NewBinding(
			key.WithKeys(" "),
			key.WithHelp("space", "Toggle flavor"),
		),
		Back: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "Back"),
		),
		RemoveItem: key.NewBinding(
			key.WithKeys("d"),
			key.WithHelp("d", "Remove item"),
		),
		ClearCart: key.NewBinding(
			key.WithKeys("D"),
			key.WithHelp("D", "Empty cart"),
		),
	}
}
