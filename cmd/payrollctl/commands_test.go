package main

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func runCmd(t *testing.T, args ...string) (string, error) {
	t.Helper()
	cmd := rootCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestBreakdownCmd_OvertimeShift(t *testing.T) {
	out, err := runCmd(t, "breakdown", "--salary", "3000", "--start", "08:00", "--end", "20:00")
	require.NoError(t, err)

	var resp map[string]interface{}
	require.NoError(t, json.Unmarshal([]byte(out), &resp))
	assert.Equal(t, "10", resp["regular_hours"])
	assert.Equal(t, "2", resp["overtime_hours"])
	assert.Equal(t, "130", resp["total_earnings"])
}

func TestBreakdownCmd_CustomSettings(t *testing.T) {
	out, err := runCmd(t, "breakdown", "--salary", "2600", "--start", "07:00", "--end", "17:00",
		"--days-in-month", "26", "--base-hours", "8")
	require.NoError(t, err)

	var resp map[string]interface{}
	require.NoError(t, json.Unmarshal([]byte(out), &resp))
	assert.Equal(t, "8", resp["regular_hours"])
	assert.Equal(t, "2", resp["overtime_hours"])
}

func TestBreakdownCmd_Rejects(t *testing.T) {
	_, err := runCmd(t, "breakdown", "--salary", "3000", "--start", "8am", "--end", "20:00")
	assert.Error(t, err)

	_, err = runCmd(t, "breakdown", "--start", "08:00", "--end", "20:00")
	assert.Error(t, err, "salary is required")
}

func TestRootCmd_RegistersCommands(t *testing.T) {
	names := map[string]bool{}
	for _, c := range rootCmd().Commands() {
		names[c.Name()] = true
	}
	for _, want := range []string{"statement", "overview", "sheet", "seed", "breakdown"} {
		assert.True(t, names[want], want)
	}
}
