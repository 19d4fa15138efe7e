package tui

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDefaultKeyMap_NormalModeKeysAreUnique(t *testing.T) {
	k := DefaultKeyMap()
	bindings := map[string][]string{
		"up":       k.Up.Keys(),
		"down":     k.Down.Keys(),
		"new":      k.New.Keys(),
		"complete": k.Complete.Keys(),
		"archive":  k.Archive.Keys(),
		"delete":   k.Delete.Keys(),
		"next":     k.Next.Keys(),
		"refresh":  k.Refresh.Keys(),
		"filter":   k.Filter.Keys(),
		"help":     k.Help.Keys(),
		"quit":     k.Quit.Keys(),
	}

	owner := make(map[string]string)
	for name, keys := range bindings {
		assert.NotEmpty(t, keys, name)
		for _, key := range keys {
			if prev, ok := owner[key]; ok {
				t.Errorf("key %q bound to both %s and %s", key, prev, name)
			}
			owner[key] = name
		}
	}
}

func TestKeyMap_Help(t *testing.T) {
	k := DefaultKeyMap()
	assert.NotEmpty(t, k.ShortHelp())
	assert.Len(t, k.FullHelp(), 4)
	assert.Len(t, k.inputHelp(), 3)
}
