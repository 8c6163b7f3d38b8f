package services

import (
	"context"
	"fmt"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/renato0307/maestro/internal/domain"
	"github.com/renato0307/maestro/internal/logging"
	"github.com/renato0307/maestro/internal/ports"
)

const tracerName = "github.com/renato0307/maestro/internal/services"

// Conductor routes host events to the engines
type Conductor struct {
	chat    *ChatSoundFilter
	hype    *HypeEngine
	loop    *LoopController
	outcome *OutcomeEngine
	tracer  trace.Tracer
}

var _ ports.EventDispatcher = (*Conductor)(nil)

// NewConductor creates a new Conductor
func NewConductor(
	hype *HypeEngine,
	outcome *OutcomeEngine,
	loop *LoopController,
	chat *ChatSoundFilter,
) *Conductor {
	return &Conductor{
		chat:    chat,
		hype:    hype,
		loop:    loop,
		outcome: outcome,
		tracer:  otel.Tracer(tracerName),
	}
}

// Dispatch implements ports.EventDispatcher
func (c *Conductor) Dispatch(ctx context.Context, event domain.Event) (domain.Verdict, error) {
	ctx, span := c.tracer.Start(ctx, "dispatch "+string(event.Kind()),
		trace.WithAttributes(eventAttributes(event)...))
	defer span.End()

	logging.Logger.Debug("Dispatching event", "event", string(event.Kind()))

	var (
		verdict domain.Verdict
		err     error
	)
	switch ev := event.(type) {
	case domain.TurnChanged, domain.RoundChanged, domain.EncounterUpdated:
		err = c.hype.OnCombatUpdate(ctx, ev)
	case domain.CheckResolved:
		err = c.outcome.OnCheckResolved(ctx, ev.Message)
	case domain.MessageCreating:
		verdict = c.chat.OnMessageCreating(ctx, ev.Message)
	case domain.SoundStarted, domain.SoundEnded:
		verdict, err = c.loop.OnSoundTransition(ctx, ev)
	default:
		err = fmt.Errorf("unhandled event %T", event)
	}

	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return domain.Verdict{}, err
	}
	span.SetAttributes(attribute.Bool("maestro.verdict", !verdict.Empty()))
	return verdict, nil
}

func eventAttributes(event domain.Event) []attribute.KeyValue {
	attrs := []attribute.KeyValue{attribute.String("maestro.event", string(event.Kind()))}
	switch ev := event.(type) {
	case domain.TurnChanged:
		attrs = append(attrs, encounterAttributes(ev.Encounter)...)
	case domain.RoundChanged:
		attrs = append(attrs, encounterAttributes(ev.Encounter)...)
	case domain.EncounterUpdated:
		attrs = append(attrs, encounterAttributes(ev.Encounter)...)
	case domain.CheckResolved:
		attrs = append(attrs, attribute.String("maestro.message_id", ev.Message.ID))
	case domain.MessageCreating:
		attrs = append(attrs, attribute.String("maestro.message_id", ev.Message.ID))
	case domain.SoundStarted:
		attrs = append(attrs, soundAttributes(ev.PlaylistID, ev.SoundID)...)
	case domain.SoundEnded:
		attrs = append(attrs, soundAttributes(ev.PlaylistID, ev.SoundID)...)
	}
	return attrs
}

func encounterAttributes(enc domain.Encounter) []attribute.KeyValue {
	return []attribute.KeyValue{
		attribute.String("maestro.encounter_id", enc.ID),
		attribute.String("maestro.active_entity_id", enc.ActiveEntityID),
		attribute.Int("maestro.round", enc.Round),
		attribute.Int("maestro.turn", enc.Turn),
	}
}

func soundAttributes(playlistID, soundID string) []attribute.KeyValue {
	return []attribute.KeyValue{
		attribute.String("maestro.playlist_id", playlistID),
		attribute.String("maestro.sound_id", soundID),
	}
}
