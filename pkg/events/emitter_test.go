package events

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEmitterOrderAndTermination(t *testing.T) {
	e := NewEmitter()
	c := NewCollector()
	e.Subscribe(c.Handler())

	e.Emit(TypeInit, InitPayload{InvestigationID: "inv-1", Query: "q"})
	e.Emit(TypeThinking, ThinkingPayload{Content: "hmm"})
	e.Emit(TypeDone, DonePayload{})
	// Emissions after done are dropped.
	e.Emit(TypeThinking, ThinkingPayload{Content: "late"})

	assert.Equal(t, []string{TypeInit, TypeThinking, TypeDone}, c.Types())
	assert.True(t, e.Done())
}

func TestEmitterMultipleSubscribersSameOrder(t *testing.T) {
	e := NewEmitter()
	c1, c2 := NewCollector(), NewCollector()
	e.Subscribe(c1.Handler())
	e.Subscribe(c2.Handler())

	for i := 0; i < 5; i++ {
		e.Emit(TypeToolStart, ToolStartPayload{CallID: "c", Tool: "t"})
	}
	e.Emit(TypeDone, DonePayload{})

	assert.Equal(t, c1.Types(), c2.Types())
	assert.Len(t, c1.Events(), 6)
}

func TestEmitterNilHandlerIgnored(t *testing.T) {
	e := NewEmitter()
	e.Subscribe(nil)
	assert.NotPanics(t, func() { e.Emit(TypeInit, nil) })
}
