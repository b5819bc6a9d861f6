package util

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEncodeToString(t *testing.T) {
	code, err := EncodeToString(6)
	require.NoError(t, err)
	assert.Len(t, code, 6)
	for _, c := range code {
		assert.True(t, c >= '0' && c <= '9')
	}
}

func TestNewID(t *testing.T) {
	a := NewID()
	b := NewID()
	assert.Len(t, a, 20)
	assert.NotEqual(t, a.String(), b.String())
	assert.NotContains(t, a.String(), "=")
}

func TestIsValidClockTime(t *testing.T) {
	valid := []string{"09:30 AM", "9:30 AM", "12:59 PM", "1:00 AM"}
	for _, v := range valid {
		assert.True(t, IsValidClockTime(v), v)
	}

	invalid := []string{"13:00 PM", "09:60 AM", "09:30", "09:30 am", "0:30 AM", "9:30AM"}
	for _, v := range invalid {
		assert.False(t, IsValidClockTime(v), v)
	}
}

func TestContains(t *testing.T) {
	assert.True(t, Contains([]string{"a", "b"}, "b"))
	assert.False(t, Contains([]string{"a", "b"}, "c"))
	assert.False(t, Contains(nil, "a"))
}

func TestSetResponse(t *testing.T) {
	res := SetResponse(map[string]int{"n": 1}, 1, "ok")
	assert.Equal(t, 1, res["status"])
	assert.Equal(t, "ok", res["message"])
	assert.NotNil(t, res["data"])

	res = SetResponse(nil, 0, "failed")
	assert.Nil(t, res["data"])
}

func TestSetPaginationResponse(t *testing.T) {
	res := SetPaginationResponse([]string{"x"}, 1, 1, "ok")
	data := res["data"].(map[string]interface{})
	assert.Equal(t, []string{"x"}, data["info"])
	assert.Equal(t, 1, data["total"])

	empty := SetPaginationResponse(nil, 0, 1, "ok")
	emptyData := empty["data"].(map[string]interface{})
	assert.Equal(t, 0, emptyData["total"])
}
