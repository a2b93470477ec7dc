package web

import (
	"encoding/base64"
	"encoding/json"
	"net/http"

	"github.com/taibuivan/artistly/internal/platform/notice"
)

// flashCookie carries one notice across a redirect.
const flashCookie = "artistly_flash"

func writeFlash(writer http.ResponseWriter, n notice.Notice, secure bool) {
	if n.IsZero() {
		return
	}
	payload, err := json.Marshal(n)
	if err != nil {
		return
	}
	http.SetCookie(writer, &http.Cookie{
		Name:     flashCookie,
		Value:    base64.RawURLEncoding.EncodeToString(payload),
		Path:     "/",
		HttpOnly: true,
		Secure:   secure,
		SameSite: http.SameSiteLaxMode,
	})
}

// readFlash returns the pending notice, if any, and expires the cookie.
func readFlash(writer http.ResponseWriter, request *http.Request, secure bool) *notice.Notice {
	cookie, err := request.Cookie(flashCookie)
	if err != nil {
		return nil
	}
	http.SetCookie(writer, &http.Cookie{
		Name:     flashCookie,
		Path:     "/",
		HttpOnly: true,
		Secure:   secure,
		SameSite: http.SameSiteLaxMode,
		MaxAge:   -1,
	})

	decoded, err := base64.RawURLEncoding.DecodeString(cookie.Value)
	if err != nil {
		return nil
	}
	var n notice.Notice
	if err := json.Unmarshal(decoded, &n); err != nil || n.Title == "" {
		return nil
	}
	return &n
}
