package bots

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/bnema/nlu-trainer/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSourceListsBotConfigs(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	writeBot(t, dir, "support", `["en", "fr", "en"]`)
	writeBot(t, dir, "faq", `["en"]`)
	writeFile(t, filepath.Join(dir, "notes.txt"), "not a bot")
	writeFile(t, filepath.Join(dir, "empty", ".keep"), "")

	configs, err := Source{Dir: dir}.List(context.Background())
	require.NoError(t, err)
	require.Len(t, configs, 2)
	assert.Equal(t, domain.BotID("faq"), configs[0].ID)
	assert.Equal(t, domain.BotID("support"), configs[1].ID)
	assert.Equal(t, []string{"en", "fr"}, configs[1].Languages)
}

func TestSourceListMissingDirectory(t *testing.T) {
	t.Parallel()

	configs, err := Source{Dir: filepath.Join(t.TempDir(), "missing")}.List(context.Background())
	require.NoError(t, err)
	assert.Empty(t, configs)
}

func TestSourceGet(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "b1", "bot.toml"), "name = 'Support'\nlanguages = ['en']\ndisabled = true\n")
	writeFile(t, filepath.Join(dir, "b2", "bot.toml"), "id = 'other'\nlanguages = ['en']\n")
	writeFile(t, filepath.Join(dir, "b3", "bot.toml"), "languages = []\n")

	source := Source{Dir: dir}

	cfg, err := source.Get(context.Background(), "b1")
	require.NoError(t, err)
	assert.Equal(t, domain.BotConfig{ID: "b1", Name: "Support", Languages: []string{"en"}, Disabled: true}, cfg)

	_, err = source.Get(context.Background(), "b2")
	require.ErrorContains(t, err, "does not match directory")

	_, err = source.Get(context.Background(), "b3")
	require.ErrorContains(t, err, "at least one language")

	_, err = source.Get(context.Background(), "b4")
	require.ErrorIs(t, err, domain.ErrBotConfigNotFound)
}
