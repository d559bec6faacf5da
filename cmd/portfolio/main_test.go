package main

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/eringen/portfolio"
)

func testContent(t *testing.T) portfolio.Content {
	t.Helper()
	c, err := portfolio.LoadContent("")
	require.NoError(t, err)
	return c
}

func TestRenderLayoutDesktop(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, renderLayout(&buf, testContent(t), 1280, "all", portfolio.AllCategories))

	out := buf.String()
	assert.Contains(t, out, "certifications: 6 items, 3 per page, 2 pages")
	assert.Contains(t, out, "projects (All): 5 items, 3 per page, 2 pages")
	assert.Equal(t, 1, strings.Count(out, "(placeholder)"))
}

func TestRenderLayoutMobileProjects(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, renderLayout(&buf, testContent(t), 375, portfolio.SectionProjects, "React"))

	out := buf.String()
	assert.NotContains(t, out, "certifications:")
	assert.Contains(t, out, "projects (React): 2 items, 1 per page, 2 pages")
	assert.NotContains(t, out, "(placeholder)")
}

func TestRenderLayoutRejectsBadInput(t *testing.T) {
	var buf bytes.Buffer
	assert.Error(t, renderLayout(&buf, testContent(t), -1, "all", portfolio.AllCategories))
	assert.Error(t, renderLayout(&buf, testContent(t), 800, "blog", portfolio.AllCategories))
}

func TestVersionCommand(t *testing.T) {
	var buf bytes.Buffer
	cmd := newRootCmd()
	cmd.SetOut(&buf)
	cmd.SetArgs([]string{"version"})
	require.NoError(t, cmd.Execute())
	assert.Equal(t, "portfolio dev\n", buf.String())
}
