package browser

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
)

func stubLaunch(t *testing.T, fn func(string) error) {
	t.Helper()
	prev := launch
	launch = fn
	t.Cleanup(func() { launch = prev })
}

func TestOpenLaunchesHTTPURL(t *testing.T) {
	var got []string
	stubLaunch(t, func(u string) error {
		got = append(got, u)
		return nil
	})
	const link = "https://www.umss.edu.bo/admision/"
	require.NoError(t, Open(context.Background(), link))
	require.Equal(t, []string{link}, got)
}

func TestOpenRejectsNonHTTP(t *testing.T) {
	stubLaunch(t, func(string) error {
		t.Fatal("launcher must not run")
		return nil
	})
	require.Error(t, Open(context.Background(), "file:///etc/passwd"))
	require.Error(t, Open(context.Background(), "%zz"))
}

func TestOpenCancelledContext(t *testing.T) {
	stubLaunch(t, func(string) error {
		t.Fatal("launcher must not run")
		return nil
	})
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	require.ErrorIs(t, Open(ctx, "https://www.umss.edu.bo/"), context.Canceled)
}

func TestOpenWrapsLauncherError(t *testing.T) {
	boom := errors.New("xdg-open: not found")
	stubLaunch(t, func(string) error { return boom })
	err := Open(context.Background(), "https://www.umss.edu.bo/")
	require.ErrorIs(t, err, boom)
	require.Contains(t, err.Error(), "open browser")
}
