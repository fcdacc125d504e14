package internal

import (
	"bytes"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRunSelfTest(t *testing.T) {
	prev := ColorEnabled()
	SetColorEnabled(false)
	t.Cleanup(func() { SetColorEnabled(prev) })

	var buf bytes.Buffer
	failed := RunSelfTest(&buf, rand.New(rand.NewSource(7)), 25, 40)
	assert.Equal(t, 0, failed)

	out := buf.String()
	assert.Contains(t, out, "Set 1:")
	assert.Contains(t, out, "Set 25:")
	assert.Contains(t, out, "Result: PASSED")
	assert.NotContains(t, out, "FAILED")
	assert.Contains(t, out, "Total sets: 25, Failed: 0")
}

func TestSelfTestCaseEmptyText(t *testing.T) {
	c := runSelfTestCase(rand.New(rand.NewSource(1)), 0)
	assert.True(t, c.Passed())
	assert.Empty(t, c.Text)
	assert.Empty(t, c.Cipher)
}
