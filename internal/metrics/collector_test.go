package metrics

import (
	"bytes"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"

	"proxyfmt/internal/codec"
)

func TestCollector(t *testing.T) {
	c := New()
	c.RecordSuccess("ss")
	c.RecordSuccess("ss")
	c.RecordSuccess("vmess")
	c.RecordDuplicate()
	c.RecordFailure(codec.Errorf(codec.MissingPort, "no port"))
	c.RecordFailure(codec.Errorf(codec.MissingPort, "no port"))
	c.RecordFailure(errors.New("plain"))

	assert.Equal(t, 3, c.Decoded())
	assert.Equal(t, 3, c.TotalFailures())
	assert.Equal(t, map[string]int{"missing port": 2, "unclassified": 1}, c.Failures())

	var buf bytes.Buffer
	c.PrintReport(&buf)
	out := buf.String()
	assert.Contains(t, out, "vmess:")
	assert.Contains(t, out, "Duplicates dropped:")
	assert.Contains(t, out, "missing port:")
	assert.Contains(t, out, "(66.7%)")
}

func TestFailuresIsACopy(t *testing.T) {
	c := New()
	c.RecordFailure(codec.ErrInvalidBase64)
	c.Failures()["invalid base64"] = 99
	assert.Equal(t, 1, c.Failures()["invalid base64"])
}
