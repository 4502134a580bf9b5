package cli

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLocationFlag(t *testing.T) {
	var f locationFlag
	assert.Equal(t, "", f.String())
	assert.Equal(t, "timezone", f.Type())

	require.NoError(t, f.Set("UTC"))
	assert.Equal(t, "UTC", f.String())

	assert.Error(t, f.Set("Nowhere/Special"))
	assert.Equal(t, "UTC", f.String(), "failed Set keeps the previous value")
}

func TestOutputFormat(t *testing.T) {
	f := formatTable
	assert.Equal(t, "table", f.String())
	assert.Equal(t, "format", f.Type())

	require.NoError(t, f.Set("csv"))
	assert.Equal(t, formatCSV, f)

	err := f.Set("json")
	require.Error(t, err)
	assert.Equal(t, "expected table or csv", err.Error())
	assert.Equal(t, formatCSV, f)
}
