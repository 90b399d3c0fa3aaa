package config

// ActionID represents a logical game action
type ActionID int

const (
	ActionNone ActionID = iota
	ActionMoveLeft
	ActionMoveRight
	ActionJump
	ActionJab
	ActionPunch
	ActionKick
	ActionGrab
	ActionCount // Must be last - used for array sizing
)

// AttackActions pairs each attack input with its ground profile, in the
// priority order inputs are checked.
var AttackActions = []struct {
	Action  ActionID
	Profile AttackID
}{
	{ActionJab, AttackJab},
	{ActionPunch, AttackPunch},
	{ActionKick, AttackKick},
}
