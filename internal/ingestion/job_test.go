package ingestion

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadJob_FromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "job.txt")
	content := "Senior Go Engineer\nBuild kubernetes operators and grpc services\nContact hiring@example.com"
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))

	job, err := LoadJob(path, nil)
	require.NoError(t, err)

	assert.Equal(t, content, job.RawText)
	assert.NotEmpty(t, job.CleanedText)
	assert.NotContains(t, job.CleanedText, "hiring@example.com")
	assert.Contains(t, job.Keywords, "kubernetes")
	assert.Contains(t, job.Keywords, "grpc")
}

func TestLoadJob_FileNotFound(t *testing.T) {
	_, err := LoadJob(filepath.Join(t.TempDir(), "missing.txt"), nil)

	var loadErr *JobLoadError
	require.ErrorAs(t, err, &loadErr)
}

func TestFromText_CustomLexicon(t *testing.T) {
	lexiconPath := filepath.Join(t.TempDir(), "lexicon.txt")
	require.NoError(t, os.WriteFile(lexiconPath, []byte("erlang\n"), 0644))

	job, err := FromText("we write erlang services", &Options{LexiconPath: lexiconPath})
	require.NoError(t, err)
	assert.Equal(t, "erlang", job.Keywords[0])
}

func TestFromText_MissingLexiconFile(t *testing.T) {
	_, err := FromText("text", &Options{LexiconPath: filepath.Join(t.TempDir(), "nope.txt")})

	var loadErr *JobLoadError
	require.ErrorAs(t, err, &loadErr)
}

func TestFromText_NoisyInputNeverErrors(t *testing.T) {
	job, err := FromText("apply now\ncookie policy\nshare job", nil)
	require.NoError(t, err)
	assert.NotEmpty(t, job.CleanedText)
}
