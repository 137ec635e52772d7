package bots

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

const greetIntent = `name: greet
contexts: [global]
utterances:
  en:
    - hello
    - hi there
  fr:
    - bonjour
`

const cityEntity = `name: city
type: list
fuzzy: 0.8
values:
  paris: [paname]
  lyon: []
`

func writeFile(t *testing.T, path string, content string) {
	t.Helper()

	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
}

// writeBot lays out <dir>/<id>/bot.toml with one intent and one entity.
func writeBot(t *testing.T, dir string, id string, languages string) string {
	t.Helper()

	botDir := filepath.Join(dir, id)
	writeFile(t, filepath.Join(botDir, "bot.toml"), "id = '"+id+"'\nlanguages = "+languages+"\n")
	writeFile(t, filepath.Join(botDir, "intents", "greet.yml"), greetIntent)
	writeFile(t, filepath.Join(botDir, "entities", "city.yaml"), cityEntity)
	return botDir
}
