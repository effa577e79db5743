package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMaskDatabaseURL(t *testing.T) {
	masked := maskDatabaseURL("postgres://hv:secret@db:5432/hvstat")
	assert.NotContains(t, masked, "secret")
	assert.Contains(t, masked, "@db:5432/hvstat")
	assert.Equal(t, "***", maskDatabaseURL("host=db user=hv"))
}
