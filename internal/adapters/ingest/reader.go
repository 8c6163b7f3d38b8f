package ingest

import (
	"bufio"
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"sync"

	"github.com/renato0307/maestro/internal/logging"
	"github.com/renato0307/maestro/internal/ports"
)

const maxLineSize = 1 << 20

// Pump decodes lines, dispatches them and writes verdicts back
type Pump struct {
	dispatcher ports.EventDispatcher
	mu         sync.Mutex
	out        io.Writer
}

// NewPump creates a new Pump writing responses to out
func NewPump(dispatcher ports.EventDispatcher, out io.Writer) *Pump {
	return &Pump{dispatcher: dispatcher, out: out}
}

// Run reads r until EOF or ctx is done. Bad lines are logged and skipped.
func (p *Pump) Run(ctx context.Context, r io.Reader) error {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), maxLineSize)

	for scanner.Scan() {
		if err := ctx.Err(); err != nil {
			return err
		}
		p.Handle(ctx, scanner.Bytes())
	}
	if err := scanner.Err(); err != nil {
		return fmt.Errorf("failed to read events: %w", err)
	}
	return nil
}

// Handle processes one line
func (p *Pump) Handle(ctx context.Context, data []byte) {
	data = bytes.TrimSpace(data)
	if len(data) == 0 {
		return
	}

	env, err := Decode(data)
	if err != nil {
		logging.Logger.Warn("Skipping event line", "error", err)
		return
	}

	verdict, err := p.dispatcher.Dispatch(ctx, env.Event)
	if err != nil {
		logging.Logger.Error("Event dispatch failed", "id", env.ID, "type", string(env.Event.Kind()), "error", err)
		return
	}
	if verdict.Empty() || env.ID == "" {
		return
	}

	if err := p.write(Response{ID: env.ID, Patch: verdict.Patch}); err != nil {
		logging.Logger.Error("Failed to write verdict", "id", env.ID, "error", err)
	}
}

func (p *Pump) write(resp Response) error {
	data, err := json.Marshal(resp)
	if err != nil {
		return err
	}

	p.mu.Lock()
	defer p.mu.Unlock()
	_, err = p.out.Write(append(data, '\n'))
	return err
}
