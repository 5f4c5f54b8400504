package gallery

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseFolderConfig(t *testing.T) {
	t.Parallel()

	t.Run("parses name and id pairs", func(t *testing.T) {
		folders := ParseFolderConfig("Holidays:abc123,Vacation:def456")

		assert.Equal(t, []FolderConfig{
			{Name: "Holidays", FolderID: "abc123"},
			{Name: "Vacation", FolderID: "def456"},
		}, folders)
	})

	t.Run("keeps full drive URLs intact across the first colon", func(t *testing.T) {
		folders := ParseFolderConfig("Holidays:https://drive.google.com/drive/folders/abc_12-3?usp=sharing")

		assert.Len(t, folders, 1)
		assert.Equal(t, "abc_12-3", folders[0].FolderID)
	})

	t.Run("skips malformed entries", func(t *testing.T) {
		folders := ParseFolderConfig("Holidays:abc123,,nameonly,:idonly, : ")

		assert.Equal(t, []FolderConfig{{Name: "Holidays", FolderID: "abc123"}}, folders)
	})

	t.Run("empty input yields no folders", func(t *testing.T) {
		assert.Empty(t, ParseFolderConfig(""))
	})
}

func TestExtractFolderID(t *testing.T) {
	t.Parallel()

	t.Run("bare id passes through", func(t *testing.T) {
		assert.Equal(t, "abc123", ExtractFolderID("abc123"))
	})

	t.Run("extracts id from folder URL", func(t *testing.T) {
		assert.Equal(t, "1AbC-d_E", ExtractFolderID("https://drive.google.com/drive/folders/1AbC-d_E?usp=sharing"))
	})

	t.Run("non-drive URL passes through unchanged", func(t *testing.T) {
		input := "https://example.com/folders/xyz"
		assert.Equal(t, input, ExtractFolderID(input))
	})
}
