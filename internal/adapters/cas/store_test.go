package cas_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/quill/internal/adapters/cas"
	"go.trai.ch/quill/internal/core/domain"
)

func TestStore_PutAndGet(t *testing.T) {
	store := cas.NewStore(t.TempDir())

	artifact := domain.StoredArtifact{
		Key:  "0123456789abcdef",
		Main: []byte("package main\n"),
		Inners: []domain.InnerArtifact{
			{Local: "box", Artifact: []byte("package main\n// box\n")},
		},
		Timestamp: time.Unix(1700000000, 0).UTC(),
	}
	require.NoError(t, store.Put(artifact))

	got, err := store.Get(artifact.Key)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, artifact.Main, got.Main)
	assert.Equal(t, artifact.Inners, got.Inners)
	assert.True(t, artifact.Timestamp.Equal(got.Timestamp))
}

func TestStore_Persistence(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, cas.NewStore(dir).Put(domain.StoredArtifact{Key: "abcabc", Main: []byte("x")}))

	got, err := cas.NewStore(dir).Get("abcabc")
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, []byte("x"), got.Main)

	_, err = os.Stat(filepath.Join(dir, "ab", "abcabc.json"))
	assert.NoError(t, err)
}

func TestStore_Miss(t *testing.T) {
	store := cas.NewStore(t.TempDir())

	got, err := store.Get("deadbeef")
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestStore_RejectsNonHexKeys(t *testing.T) {
	store := cas.NewStore(t.TempDir())

	got, err := store.Get("../escape")
	require.NoError(t, err)
	assert.Nil(t, got)

	err = store.Put(domain.StoredArtifact{Key: "../escape"})
	assert.True(t, domain.HasKind(err, domain.ErrStoreWriteFailed), "%v", err)
}

func TestStore_CorruptFile(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(dir, "ab"), 0o750))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "ab", "abcd.json"), []byte("{"), 0o600))

	_, err := cas.NewStore(dir).Get("abcd")
	assert.True(t, domain.HasKind(err, domain.ErrStoreUnmarshalFailed), "%v", err)
}

func TestStore_MismatchedKeyIsAMiss(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(dir, "ab"), 0o750))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "ab", "abcd.json"), []byte(`{"key":"ffff"}`), 0o600))

	got, err := cas.NewStore(dir).Get("abcd")
	require.NoError(t, err)
	assert.Nil(t, got)
}
