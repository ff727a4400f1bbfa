package composer

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPatcher_Merge(t *testing.T) {
	p := NewPatcher()

	t.Run("empty file gets the generated block", func(t *testing.T) {
		got := p.Merge("", "from pkg import mod\n")
		assert.Equal(t, "from pkg import mod\n", got)
	})

	t.Run("doc preamble is preserved", func(t *testing.T) {
		existing := "#!/usr/bin/env python\n" +
			"# -*- coding: utf-8 -*-\n" +
			"\"\"\"Package docstring.\"\"\"\n" +
			"from __future__ import annotations\n" +
			"old_code = 1\n" +
			"more_old_code = 2\n"
		got := p.Merge(existing, "generated\n")
		want := "#!/usr/bin/env python\n" +
			"# -*- coding: utf-8 -*-\n" +
			"\"\"\"Package docstring.\"\"\"\n" +
			"from __future__ import annotations\n" +
			"generated\n"
		assert.Equal(t, want, got)
	})

	t.Run("multi-line docstring is preserved", func(t *testing.T) {
		existing := "\"\"\"\nLong docstring.\n\"\"\"\nold = 1\n"
		got := p.Merge(existing, "generated\n")
		assert.Equal(t, "\"\"\"\nLong docstring.\n\"\"\"\ngenerated\n", got)
	})

	t.Run("tagged region is replaced in place", func(t *testing.T) {
		existing := "manual = 1\n" +
			"# <AUTOGEN_INIT>\n" +
			"stale = 2\n" +
			"# </AUTOGEN_INIT>\n" +
			"trailing = 3\n"
		got := p.Merge(existing, "fresh\n")
		want := "manual = 1\n" +
			"# <AUTOGEN_INIT>\n" +
			"fresh\n" +
			"# </AUTOGEN_INIT>\n" +
			"trailing = 3\n"
		assert.Equal(t, want, got)
	})

	t.Run("start tag without end tag falls back to preamble merge", func(t *testing.T) {
		existing := "# <AUTOGEN_INIT>\nold = 1\n"
		got := p.Merge(existing, "generated\n")
		assert.Equal(t, "# <AUTOGEN_INIT>\ngenerated\n", got)
	})
}

func TestPatcher_Write(t *testing.T) {
	p := NewPatcher()
	dir := t.TempDir()
	path := filepath.Join(dir, "__init__.py")

	require.NoError(t, p.Write(path, "first\n"))
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "first\n", string(data))

	// Overwrites atomically and leaves no temp files behind.
	require.NoError(t, p.Write(path, "second\n"))
	data, err = os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "second\n", string(data))

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Len(t, entries, 1)
}
