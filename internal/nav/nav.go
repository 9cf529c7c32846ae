// Package nav tracks which single screen is visible and resolves "back"
// through a static predecessor table. It is deliberately not a history
// stack: two consecutive backs from different entry points can land on
// the same configured predecessor.
package nav

// Screen identifies one of the fixed application screens.
type Screen string

const (
	ScreenLogin         Screen = "login"
	ScreenRegister      Screen = "register"
	ScreenMenu          Screen = "menu"
	ScreenProfile       Screen = "profile"
	ScreenPublish       Screen = "publish"
	ScreenExplore       Screen = "explore"
	ScreenOfferDetail   Screen = "offer-detail"
	ScreenChatList      Screen = "chat-list"
	ScreenChatThread    Screen = "chat-thread"
	ScreenNotifications Screen = "notifications"
)

// DefaultRoutes is the predecessor table of the stock screen set.
func DefaultRoutes() map[Screen]Screen {
	return map[Screen]Screen{
		ScreenRegister:      ScreenLogin,
		ScreenProfile:       ScreenMenu,
		ScreenPublish:       ScreenMenu,
		ScreenExplore:       ScreenMenu,
		ScreenOfferDetail:   ScreenExplore,
		ScreenChatList:      ScreenMenu,
		ScreenChatThread:    ScreenChatList,
		ScreenNotifications: ScreenMenu,
	}
}

// Machine holds the single active screen and the predecessor table.
type Machine struct {
	current Screen
	prev    map[Screen]Screen
}

// NewMachine starts at the given screen with the given predecessor table.
// A nil table means every back lands on the main menu.
func NewMachine(start Screen, prev map[Screen]Screen) *Machine {
	if prev == nil {
		prev = map[Screen]Screen{}
	}
	return &Machine{current: start, prev: prev}
}

// Current returns the active screen. Exactly one screen is active at any
// time.
func (m *Machine) Current() Screen {
	return m.current
}

// Go makes the given screen active.
func (m *Machine) Go(s Screen) {
	m.current = s
}

// Back transitions to the configured predecessor of the active screen,
// defaulting to the main menu when none is configured, and returns the
// new active screen.
func (m *Machine) Back() Screen {
	if p, ok := m.prev[m.current]; ok {
		m.current = p
	} else {
		m.current = ScreenMenu
	}
	return m.current
}
