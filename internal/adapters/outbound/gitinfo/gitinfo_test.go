package gitinfo_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/specforge/specforge/internal/adapters/outbound/gitinfo"
)

func TestRepoRoot_NotARepo(t *testing.T) {
	root, ok := gitinfo.New().RepoRoot(t.TempDir())
	assert.False(t, ok)
	assert.Empty(t, root)
}

func TestCommitHash_NotARepo(t *testing.T) {
	_, err := gitinfo.New().CommitHash(t.TempDir())
	assert.Error(t, err)
}
