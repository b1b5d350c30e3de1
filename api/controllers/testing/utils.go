package testing

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"

	"github.com/gin-gonic/gin"
)

// PerformRequest Helper for performing requests in tests.
func PerformRequest(router *gin.Engine, method, path string, body interface{}, headers map[string]string) *httptest.ResponseRecorder {
	return perform(router, newRequest(method, path, body, headers))
}

// Browser replays the cookies the router hands out, so consecutive requests share one device session.
type Browser struct {
	router  *gin.Engine
	cookies map[string]*http.Cookie
}

func NewBrowser(router *gin.Engine) *Browser {
	return &Browser{router: router, cookies: make(map[string]*http.Cookie)}
}

func (b *Browser) Do(method, path string, body interface{}, headers map[string]string) *httptest.ResponseRecorder {
	req := newRequest(method, path, body, headers)
	for _, c := range b.cookies {
		req.AddCookie(c)
	}
	res := perform(b.router, req)
	// a handler may save the session more than once; the last cookie wins
	for _, c := range res.Result().Cookies() {
		b.cookies[c.Name] = c
	}
	return res
}

// Forget drops every cookie, like clearing the browser's storage.
func (b *Browser) Forget() {
	b.cookies = make(map[string]*http.Cookie)
}

func newRequest(method, path string, body interface{}, headers map[string]string) *http.Request {
	var reqBody *bytes.Buffer
	if body != nil {
		jsonBytes, err := json.Marshal(body)
		if err != nil {
			panic("failed to marshal request body: " + err.Error())
		}
		reqBody = bytes.NewBuffer(jsonBytes)
	} else {
		reqBody = &bytes.Buffer{}
	}

	req := httptest.NewRequest(method, path, reqBody)
	req.Header.Set("Content-Type", "application/json")
	for k, v := range headers {
		req.Header.Set(k, v)
	}
	return req
}

func perform(router *gin.Engine, req *http.Request) *httptest.ResponseRecorder {
	res := httptest.NewRecorder()
	router.ServeHTTP(res, req)
	return res
}
