package sim

import "fmt"

// Phase is a discrete stage of flight. Phases advance in declaration order,
// with Reentry allowed to skip Parachute, until a reset returns to Ready.
type Phase int

const (
	Ready Phase = iota
	Launch
	CoastUp
	ZeroG
	Reentry
	Parachute
	Landed
)

var phaseNames = [...]string{
	"Ready",
	"Launch",
	"CoastUp",
	"ZeroG",
	"Reentry",
	"Parachute",
	"Landed",
}

func (p Phase) String() string {
	if p < Ready || p > Landed {
		return fmt.Sprintf("Phase(%d)", int(p))
	}
	return phaseNames[p]
}

// Active reports whether the integrator runs in this phase.
func (p Phase) Active() bool {
	return p > Ready && p < Landed
}

// ParsePhase is the inverse of Phase.String.
func ParsePhase(s string) (Phase, error) {
	for i, name := range phaseNames {
		if name == s {
			return Phase(i), nil
		}
	}
	return Ready, fmt.Errorf("unknown phase %q", s)
}

func (p Phase) MarshalText() ([]byte, error) {
	if p < Ready || p > Landed {
		return nil, fmt.Errorf("invalid phase %d", int(p))
	}
	return []byte(p.String()), nil
}

func (p *Phase) UnmarshalText(b []byte) error {
	v, err := ParsePhase(string(b))
	if err != nil {
		return err
	}
	*p = v
	return nil
}
