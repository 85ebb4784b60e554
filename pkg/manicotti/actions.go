package manicotti

// Action is the mode a menu is operating in. Menus that cycle actions
// show a different title per mode and interpret selections differently;
// the menu core only tracks which mode is current.
type Action int

const (
	ActExecute Action = iota
	ActExamine
	ActMisc

	actCount = int(ActMisc) + 1
)

// ActionCycle controls what the cycle-mode command does.
type ActionCycle int

const (
	// CycleNone disables mode cycling.
	CycleNone ActionCycle = iota
	// CycleToggle flips between execute and examine.
	CycleToggle
	// CycleCycle steps through all actions in order.
	CycleCycle
)
