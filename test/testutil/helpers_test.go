package testutil

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestMustParseDate(t *testing.T) {
	parsed := MustParseDate(t, "2018-05-10")

	assert.Equal(t, 2018, parsed.Year())
	assert.Equal(t, time.May, parsed.Month())
	assert.Equal(t, 10, parsed.Day())
	assert.Equal(t, time.UTC, parsed.Location())
}

func TestDate(t *testing.T) {
	d := Date(2018, time.May, 10)

	assert.Equal(t, MustParseDate(t, "2018-05-10"), d)
	assert.Zero(t, d.Hour())
}

func TestPtr(t *testing.T) {
	s := Ptr("hello")
	assert.Equal(t, "hello", *s)

	n := IntPtr(42)
	assert.Equal(t, 42, *n)
}
