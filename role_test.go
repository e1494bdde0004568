package bollywood

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRole_HandlerForWithinRange(t *testing.T) {
	called := false
	r := &Role{
		NPrompts: 2,
		Prompts: []Handler{
			0: func(state *any, nbytes int, data any) { called = true },
			1: nil,
		},
	}

	h := r.handlerFor(Kind(0))
	assert.NotNil(t, h)
	h(nil, 0, nil)
	assert.True(t, called)

	assert.Nil(t, r.handlerFor(Kind(1)), "an unset slot inside range is a legal no-op")
}

func TestRole_HandlerForOutOfRange(t *testing.T) {
	r := &Role{NPrompts: 2, Prompts: make([]Handler, 2)}

	assert.Nil(t, r.handlerFor(Kind(2)), "kind == NPrompts is out of range")
	assert.Nil(t, r.handlerFor(Kind(-1)), "negative kind is out of range")
}

func TestRole_HandlerForZeroValueRole(t *testing.T) {
	r := &Role{}
	assert.Nil(t, r.handlerFor(Hello), "a zero-value role must treat every kind, including Hello, as a no-op")
}

func TestRole_HandlerForNPromptsExceedsSliceLength(t *testing.T) {
	// NPrompts wider than Prompts must not panic on index-out-of-range.
	r := &Role{NPrompts: 5, Prompts: make([]Handler, 2)}
	assert.Nil(t, r.handlerFor(Kind(3)))
}
