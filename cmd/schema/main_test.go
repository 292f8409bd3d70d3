package main

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteSchema(t *testing.T) {
	path := filepath.Join(t.TempDir(), "schema.json")
	require.NoError(t, writeSchema(path))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	var schema struct {
		Defs map[string]struct {
			Properties map[string]any `json:"properties"`
		} `json:"$defs"`
	}
	require.NoError(t, json.Unmarshal(data, &schema))
	for _, name := range []string{"Config", "ServerConfig", "TelegramConfig", "StoreConfig", "ScheduleConfig", "RemindersConfig"} {
		assert.Contains(t, schema.Defs, name)
	}
	assert.Contains(t, schema.Defs["TelegramConfig"].Properties, "poll_timeout")
	assert.Contains(t, schema.Defs["Config"].Properties, "reminders")
}

func TestWriteSchema_BadPath(t *testing.T) {
	err := writeSchema(filepath.Join(t.TempDir(), "missing", "schema.json"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "write schema to")
}

func TestDefaultOutput(t *testing.T) {
	assert.Equal(t, "pkg/config/schema.json", defaultOutput)
}
