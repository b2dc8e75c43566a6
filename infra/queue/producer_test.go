package queue

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewProducerWithoutBroker(t *testing.T) {
	p := NewProducer("", "alumni.events", "", "", nil)
	assert.Nil(t, p)

	// publishing on a nil producer is a no-op
	assert.NoError(t, p.PublishMessage([]byte("k"), []byte("v")))
}

func TestNewProducerSASL(t *testing.T) {
	plain := NewProducer("localhost:9092", "alumni.events", "", "", nil)
	require.NotNil(t, plain)
	assert.Nil(t, plain.writer.Transport)
	assert.Equal(t, "alumni.events", plain.writer.Topic)

	secured := NewProducer("broker:9093", "alumni.events", "user", "pass", nil)
	require.NotNil(t, secured)
	assert.NotNil(t, secured.writer.Transport)
}
