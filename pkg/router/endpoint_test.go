package router

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/nordicmagic/backend/pkg/errorx"
	"github.com/nordicmagic/backend/pkg/testutil"

	"github.com/stretchr/testify/require"
)

type echoRequest struct {
	Name string `json:"name"`
}

type echoResponse struct {
	Greeting string `json:"greeting"`
}

func newTestServer(t *testing.T) *httptest.Server {
	r := New(testutil.MockContext())

	POST(r, "/echo", func(ctx context.Context, req *echoRequest) (*echoResponse, error) {
		if req.Name == "" {
			return nil, errorx.New(errorx.BadRequest, "Solicitud inválida")
		}

		return &echoResponse{Greeting: "hola " + req.Name}, nil
	})

	POST(r, "/missing", func(ctx context.Context, req *echoRequest) (*echoResponse, error) {
		return nil, errorx.New(errorx.NotFound, "Código no encontrado.")
	})

	POST(r, "/boom", func(ctx context.Context, req *echoRequest) (*echoResponse, error) {
		return nil, errorx.Unknown
	})

	server := httptest.NewServer(r.Handler())
	t.Cleanup(server.Close)
	return server
}

func post(t *testing.T, url, body string) (*http.Response, map[string]any) {
	resp, err := http.Post(url, "application/json", strings.NewReader(body))
	require.NoError(t, err)
	t.Cleanup(func() { resp.Body.Close() })

	decoded := map[string]any{}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&decoded))
	return resp, decoded
}

func TestRouterStatusMapping(t *testing.T) {
	server := newTestServer(t)

	t.Run("success", func(t *testing.T) {
		resp, body := post(t, server.URL+"/echo", `{"name":"freyja"}`)
		require.Equal(t, http.StatusOK, resp.StatusCode)
		require.Equal(t, "hola freyja", body["greeting"])
	})

	t.Run("malformed body", func(t *testing.T) {
		resp, body := post(t, server.URL+"/echo", `{not json`)
		require.Equal(t, http.StatusBadRequest, resp.StatusCode)
		require.NotEmpty(t, body["message"])
	})

	t.Run("validation error", func(t *testing.T) {
		resp, _ := post(t, server.URL+"/echo", `{}`)
		require.Equal(t, http.StatusBadRequest, resp.StatusCode)
	})

	t.Run("not found", func(t *testing.T) {
		resp, body := post(t, server.URL+"/missing", `{}`)
		require.Equal(t, http.StatusNotFound, resp.StatusCode)
		require.Equal(t, "Código no encontrado.", body["message"])
	})

	t.Run("internal error stays opaque", func(t *testing.T) {
		resp, body := post(t, server.URL+"/boom", `{}`)
		require.Equal(t, http.StatusInternalServerError, resp.StatusCode)
		require.Equal(t, errorx.Unknown.Message, body["message"])
	})

	t.Run("method not allowed", func(t *testing.T) {
		resp, err := http.Get(server.URL + "/echo")
		require.NoError(t, err)
		defer resp.Body.Close()
		require.Equal(t, http.StatusMethodNotAllowed, resp.StatusCode)
	})
}
