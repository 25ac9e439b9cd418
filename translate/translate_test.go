package translate

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFrom(t *testing.T) {
	assert := assert.New(t)

	assert.Equal("opcode 42 invalid", From("opcode %v invalid", 42))
	assert.Equal("input exhausted", From("input exhausted"))
	assert.NotNil(Printer())
	assert.Same(Printer(), Printer())
}
