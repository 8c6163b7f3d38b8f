package domain

const (
	// DamageRollContext is the context type the host stamps on damage rolls
	DamageRollContext = "damage-roll"
	// DamageRollKind is the roll class name of a damage roll
	DamageRollKind = "DamageRoll"
	// DiceSound is the host's default dice rolling sound
	DiceSound = "sounds/dice.wav"
)

// ChatMessage is the subset of a chat message the cue engines read
type ChatMessage struct {
	ContentVisible bool
	ContextType    string
	ID             string
	IsDamageRoll   bool
	Outcome        OutcomeCategory
	Rolls          []Roll
	Sound          string
}

// Roll is a single roll attached to a message
type Roll struct {
	DegreeOfSuccess *int
	Dice            []Die
	Kind            string
	Total           int
}

// Die is a group of dice of the same size
type Die struct {
	Faces   int
	Results []DieResult
	Total   int
}

// DieResult is one face rolled
type DieResult struct {
	Active    bool
	Discarded bool
	Result    int
}

// IsDamage reports whether the message carries a damage roll
func (m *ChatMessage) IsDamage() bool {
	if m.ContextType == DamageRollContext || m.IsDamageRoll {
		return true
	}
	return len(m.Rolls) > 0 && m.Rolls[0].Kind == DamageRollKind
}

// FirstRoll returns the primary roll of the message
func (m *ChatMessage) FirstRoll() (*Roll, bool) {
	if len(m.Rolls) == 0 {
		return nil, false
	}
	return &m.Rolls[0], true
}

// Natural returns the kept face of the first die with the given size.
// Falls back to the die total when no kept result is recorded.
func (r *Roll) Natural(faces int) (int, bool) {
	for _, d := range r.Dice {
		if d.Faces != faces {
			continue
		}
		for _, res := range d.Results {
			if res.Active && !res.Discarded {
				return res.Result, true
			}
		}
		return d.Total, true
	}
	return 0, false
}
