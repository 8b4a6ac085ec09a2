package model

// Action is a human-friendly operating mode for a timestep.
// Keep these values stable; they are intended for CSV output.
type Action string

const (
	ActionCharging    Action = "CHARGING"
	ActionIdle        Action = "IDLE"
	ActionDischarging Action = "DISCHARGING"
)

// actionTolerance filters solver noise when labelling near-zero flows.
const actionTolerance = 1e-9

// ActionForFlows labels a timestep by its net battery flow.
// Simultaneous charge and discharge can occur in an LP solution; the label
// follows the larger of the two.
func ActionForFlows(chargeKW, dischargeKW float64) Action {
	net := chargeKW - dischargeKW
	switch {
	case net > actionTolerance:
		return ActionCharging
	case net < -actionTolerance:
		return ActionDischarging
	default:
		return ActionIdle
	}
}
