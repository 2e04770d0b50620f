package filex

import (
	"os"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/stretchr/testify/require"
)

func chdir(t *testing.T, dir string) func() {
	t.Helper()
	old, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	return func() { _ = os.Chdir(old) }
}

func TestResolveDataFile_RelativeToCWD(t *testing.T) {
	tmp, err := filepath.EvalSymlinks(t.TempDir())
	require.NoError(t, err)
	defer chdir(t, tmp)()

	got, err := ResolveDataFile(".authclient", "session.db")
	require.NoError(t, err)

	want := filepath.Join(tmp, ".authclient", "session.db")
	require.Equal(t, want, got)

	fi, err := os.Stat(filepath.Dir(want))
	require.NoError(t, err)
	require.True(t, fi.IsDir())

	if runtime.GOOS != "windows" {
		require.Equal(t, os.FileMode(0o700), fi.Mode().Perm()&0o700)
	}
}

func TestResolveDataFile_AbsoluteNameIgnoresDataDir(t *testing.T) {
	tmp := t.TempDir()
	name := filepath.Join(tmp, "nested", "s.db")

	got, err := ResolveDataFile("/does/not/matter", name)
	require.NoError(t, err)
	require.Equal(t, name, got)

	_, err = os.Stat(filepath.Join(tmp, "nested"))
	require.NoError(t, err)
}

func TestResolveDataFile_Idempotent(t *testing.T) {
	tmp := t.TempDir()

	first, err := ResolveDataFile(tmp, "session.db")
	require.NoError(t, err)
	second, err := ResolveDataFile(tmp, "session.db")
	require.NoError(t, err)
	require.Equal(t, first, second)
}

func TestResolveDataFile_ParentIsFile(t *testing.T) {
	tmp := t.TempDir()
	blocker := filepath.Join(tmp, "blocker")
	require.NoError(t, os.WriteFile(blocker, []byte("x"), 0o600))

	_, err := ResolveDataFile(blocker, "session.db")
	require.Error(t, err)
	require.Contains(t, err.Error(), "mkdir")
}
