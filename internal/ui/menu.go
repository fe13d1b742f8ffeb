package ui

import "sync"

// Sections reachable from the navigation bar, in display order.
var Sections = []string{"home", "about", "skills", "projects", "contact"}

// ScrollLocker suppresses or restores background scrolling while the drawer is open.
type ScrollLocker interface {
	SetScrollLocked(locked bool)
}

type MobileMenu struct {
	mu     sync.Mutex
	open   bool
	scroll ScrollLocker
}

func NewMobileMenu(scroll ScrollLocker) *MobileMenu {
	return &MobileMenu{scroll: scroll}
}

func (m *MobileMenu) IsOpen() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.open
}

func (m *MobileMenu) Open() { m.set(true) }

func (m *MobileMenu) Close() { m.set(false) }

func (m *MobileMenu) Toggle() {
	m.mu.Lock()
	open := !m.open
	m.mu.Unlock()
	m.set(open)
}

// Navigate activates a navigation link: the drawer closes and the target
// section is returned. Unknown sections fall back to home.
func (m *MobileMenu) Navigate(section string) string {
	m.Close()
	for _, s := range Sections {
		if s == section {
			return s
		}
	}
	return Sections[0]
}

func (m *MobileMenu) set(open bool) {
	m.mu.Lock()
	m.open = open
	m.mu.Unlock()
	if m.scroll != nil {
		m.scroll.SetScrollLocked(open)
	}
}
