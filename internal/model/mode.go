package model

// Mode selects the metric the optimizer minimizes. The other metric is still
// computed for reporting but never enters the objective.
type Mode string

const (
	ModeCost   Mode = "cost"
	ModeCarbon Mode = "carbon"
)

func (m Mode) Validate() error {
	switch m {
	case ModeCost, ModeCarbon:
		return nil
	default:
		return invalid("mode", "must be %q or %q, got %q", ModeCost, ModeCarbon, m)
	}
}
