package ingest

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/renato0307/maestro/internal/domain"
)

// Wire types of host notifications
const (
	TypeChatCreate   = "chat.create"
	TypeChatRender   = "chat.render"
	TypeCombatUpdate = "combat.update"
	TypeSoundUpdate  = "sound.update"
)

// ErrUnknownType is returned for a line whose type is not recognised
var ErrUnknownType = errors.New("unknown event type")

// Envelope is a decoded line: the event plus the id its answer must carry
type Envelope struct {
	Event domain.Event
	ID    string
}

// Response is the answer written back for a pre-update event
type Response struct {
	ID    string         `json:"id"`
	Patch map[string]any `json:"patch"`
}

type line struct {
	Combat     *combatPayload             `json:"combat"`
	ID         string                     `json:"id"`
	Message    *messagePayload            `json:"message"`
	Playing    *bool                      `json:"playing"`
	PlaylistID string                     `json:"playlist_id"`
	SoundID    string                     `json:"sound_id"`
	Type       string                     `json:"type"`
	Update     map[string]json.RawMessage `json:"update"`
}

type combatPayload struct {
	ActiveActorID string   `json:"active_actor_id"`
	ID            string   `json:"id"`
	Participants  []string `json:"participants"`
	Round         int      `json:"round"`
	Turn          int      `json:"turn"`
}

type messagePayload struct {
	ContentVisible *bool         `json:"content_visible"`
	ContextType    string        `json:"context_type"`
	ID             string        `json:"id"`
	IsDamageRoll   bool          `json:"is_damage_roll"`
	Outcome        string        `json:"outcome"`
	Rolls          []rollPayload `json:"rolls"`
	Sound          string        `json:"sound"`
}

type rollPayload struct {
	Class           string       `json:"class"`
	DegreeOfSuccess *int         `json:"degree_of_success"`
	Dice            []diePayload `json:"dice"`
	Total           int          `json:"total"`
}

type diePayload struct {
	Faces   int             `json:"faces"`
	Results []resultPayload `json:"results"`
	Total   int             `json:"total"`
}

type resultPayload struct {
	Active    bool `json:"active"`
	Discarded bool `json:"discarded"`
	Result    int  `json:"result"`
}

// Decode turns one JSON line into a typed event.
// Field presence only matters here; everything downstream matches on the variant.
func Decode(data []byte) (Envelope, error) {
	var l line
	if err := json.Unmarshal(data, &l); err != nil {
		return Envelope{}, fmt.Errorf("invalid event line: %w", err)
	}

	env := Envelope{ID: l.ID}
	switch l.Type {
	case TypeCombatUpdate:
		env.Event = decodeCombat(l)
	case TypeChatCreate:
		env.Event = domain.MessageCreating{Message: decodeMessage(l.Message)}
	case TypeChatRender:
		env.Event = domain.CheckResolved{Message: decodeMessage(l.Message)}
	case TypeSoundUpdate:
		if l.Playing == nil {
			return Envelope{}, fmt.Errorf("sound update without playing state: %w", ErrUnknownType)
		}
		if *l.Playing {
			env.Event = domain.SoundStarted{PlaylistID: l.PlaylistID, SoundID: l.SoundID}
		} else {
			env.Event = domain.SoundEnded{PlaylistID: l.PlaylistID, SoundID: l.SoundID}
		}
	default:
		return Envelope{}, fmt.Errorf("%q: %w", l.Type, ErrUnknownType)
	}
	return env, nil
}

func decodeCombat(l line) domain.Event {
	var enc domain.Encounter
	if l.Combat != nil {
		enc = domain.Encounter{
			ActiveEntityID: l.Combat.ActiveActorID,
			ID:             l.Combat.ID,
			Participants:   l.Combat.Participants,
			Round:          l.Combat.Round,
			Turn:           l.Combat.Turn,
		}
	}

	switch {
	case isNumber(l.Update["round"]):
		return domain.RoundChanged{Encounter: enc}
	case isNumber(l.Update["turn"]):
		return domain.TurnChanged{Encounter: enc}
	default:
		return domain.EncounterUpdated{Encounter: enc}
	}
}

func isNumber(raw json.RawMessage) bool {
	if len(raw) == 0 {
		return false
	}
	var n *float64
	return json.Unmarshal(raw, &n) == nil && n != nil
}

func decodeMessage(m *messagePayload) domain.ChatMessage {
	if m == nil {
		return domain.ChatMessage{}
	}

	msg := domain.ChatMessage{
		ContentVisible: m.ContentVisible == nil || *m.ContentVisible,
		ContextType:    m.ContextType,
		ID:             m.ID,
		IsDamageRoll:   m.IsDamageRoll,
		Outcome:        domain.OutcomeCategory(m.Outcome),
		Sound:          m.Sound,
	}
	for _, r := range m.Rolls {
		roll := domain.Roll{
			DegreeOfSuccess: r.DegreeOfSuccess,
			Kind:            r.Class,
			Total:           r.Total,
		}
		for _, d := range r.Dice {
			die := domain.Die{Faces: d.Faces, Total: d.Total}
			for _, res := range d.Results {
				die.Results = append(die.Results, domain.DieResult{
					Active:    res.Active,
					Discarded: res.Discarded,
					Result:    res.Result,
				})
			}
			roll.Dice = append(roll.Dice, die)
		}
		msg.Rolls = append(msg.Rolls, roll)
	}
	return msg
}
