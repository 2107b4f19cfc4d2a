package session_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/dasdy/uisnippets/session"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type counterUI struct {
	id     string
	clicks int
}

func newManager(opts ...session.Option[*counterUI]) *session.Manager[*counterUI] {
	return session.NewManager[*counterUI]("test-session", func(id string) *counterUI {
		return &counterUI{id: id}
	}, opts...)
}

// click performs one request, optionally with a cookie, and returns the UI it touched
// together with the cookie set in the response.
func click(m *session.Manager[*counterUI], cookie *http.Cookie) (*counterUI, *http.Cookie) {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	if cookie != nil {
		req.AddCookie(cookie)
	}

	recorder := httptest.NewRecorder()

	var touched *counterUI

	m.Access(recorder, req, func(_ context.Context, ui *counterUI) {
		ui.clicks++
		touched = ui
	})

	cookies := recorder.Result().Cookies()
	if len(cookies) == 0 {
		return touched, nil
	}

	return touched, cookies[0]
}

func TestAccessCreatesSession(t *testing.T) {
	m := newManager()

	ui, cookie := click(m, nil)

	require.NotNil(t, cookie)
	assert.Equal(t, "test-session", cookie.Name)
	assert.Equal(t, ui.id, cookie.Value)
	assert.Equal(t, 1, m.Len())
}

func TestAccessReusesSession(t *testing.T) {
	m := newManager()

	first, cookie := click(m, nil)
	second, newCookie := click(m, cookie)

	assert.Same(t, first, second)
	assert.Nil(t, newCookie)
	assert.Equal(t, 2, second.clicks)
	assert.Equal(t, 1, m.Len())
}

func TestSessionsAreIsolated(t *testing.T) {
	m := newManager()

	a, cookieA := click(m, nil)
	b, _ := click(m, nil)
	click(m, cookieA)

	assert.NotSame(t, a, b)
	assert.Equal(t, 2, a.clicks)
	assert.Equal(t, 1, b.clicks)
	assert.Equal(t, 2, m.Len())
}

func TestUnknownCookieStartsNewSession(t *testing.T) {
	m := newManager()

	ui, cookie := click(m, &http.Cookie{Name: "test-session", Value: "forged"})

	require.NotNil(t, cookie)
	assert.NotEqual(t, "forged", cookie.Value)
	assert.Equal(t, 1, ui.clicks)
}

func end(m *session.Manager[*counterUI], cookie *http.Cookie) *http.Cookie {
	req := httptest.NewRequest(http.MethodPost, "/reset", nil)
	if cookie != nil {
		req.AddCookie(cookie)
	}

	recorder := httptest.NewRecorder()
	m.End(recorder, req)

	cookies := recorder.Result().Cookies()
	if len(cookies) == 0 {
		return nil
	}

	return cookies[0]
}

func TestEndForgetsSession(t *testing.T) {
	sizes := []int{}
	m := newManager(session.WithSizeListener[*counterUI](func(n int) { sizes = append(sizes, n) }))

	first, cookie := click(m, nil)

	expired := end(m, cookie)
	require.NotNil(t, expired)
	assert.Equal(t, "test-session", expired.Name)
	assert.Empty(t, expired.Value)
	assert.Negative(t, expired.MaxAge)

	assert.Equal(t, 0, m.Len())
	assert.Equal(t, []int{1, 0}, sizes)

	// a stale cookie after the end is not resurrected
	second, newCookie := click(m, cookie)
	assert.NotSame(t, first, second)
	require.NotNil(t, newCookie)
	assert.NotEqual(t, cookie.Value, newCookie.Value)
}

func TestEndWithoutSession(t *testing.T) {
	sizes := []int{}
	m := newManager(session.WithSizeListener[*counterUI](func(n int) { sizes = append(sizes, n) }))

	assert.Nil(t, end(m, nil))

	expired := end(m, &http.Cookie{Name: "test-session", Value: "forged"})
	require.NotNil(t, expired)
	assert.Empty(t, sizes)
}

func TestSweepEvictsIdleSessions(t *testing.T) {
	now := time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)
	m := newManager(
		session.WithTTL[*counterUI](time.Minute),
		session.WithClock[*counterUI](func() time.Time { return now }),
	)

	first, cookie := click(m, nil)

	now = now.Add(30 * time.Second)
	assert.Zero(t, m.Sweep(now))

	now = now.Add(2 * time.Minute)
	second, _ := click(m, cookie)

	assert.NotSame(t, first, second)
	assert.Equal(t, 1, m.Len())
}
