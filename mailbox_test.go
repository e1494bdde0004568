package bollywood

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMailbox_PushPopFIFO(t *testing.T) {
	m := newMailbox(4)

	assert.NoError(t, m.push(Message{Kind: 3, Data: "a"}))
	assert.NoError(t, m.push(Message{Kind: 3, Data: "b"}))
	assert.Equal(t, 2, m.len())

	assert.Equal(t, "a", m.pop().Data)
	assert.Equal(t, "b", m.pop().Data)
	assert.Equal(t, 0, m.len())
}

func TestMailbox_FullReturnsError(t *testing.T) {
	m := newMailbox(2)

	assert.NoError(t, m.push(Message{Kind: 3}))
	assert.NoError(t, m.push(Message{Kind: 3}))
	assert.ErrorIs(t, m.push(Message{Kind: 3}), errMailboxFull)
	assert.True(t, m.full())
}

func TestMailbox_WrapsAroundRingBuffer(t *testing.T) {
	m := newMailbox(3)

	assert.NoError(t, m.push(Message{Kind: 3, Data: 1}))
	assert.NoError(t, m.push(Message{Kind: 3, Data: 2}))
	assert.Equal(t, 1, m.pop().Data)
	assert.NoError(t, m.push(Message{Kind: 3, Data: 3}))
	assert.NoError(t, m.push(Message{Kind: 3, Data: 4}))

	assert.Equal(t, 2, m.pop().Data)
	assert.Equal(t, 3, m.pop().Data)
	assert.Equal(t, 4, m.pop().Data)
	assert.Equal(t, 0, m.len())
}
