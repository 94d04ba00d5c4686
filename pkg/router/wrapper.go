package router

import (
	"encoding/json"
	"io"
	"net/http"
	"time"

	"github.com/nordicmagic/backend/pkg/errorx"
	"github.com/nordicmagic/backend/pkg/xcontext"
)

func wrapHandler[Request, Response any](
	router *Router,
	method string,
	handler HandlerFunc[Request, Response],
) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if r.Method != method {
			http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
			return
		}

		ctx := xcontext.WithHTTPRequest(router.ctx, r)
		ctx = xcontext.WithStartTime(ctx, time.Now())
		ctx = xcontext.WithRequestState(ctx)

		defer func() {
			for _, closer := range router.closers {
				closer(ctx)
			}
		}()

		for _, middleware := range router.befores {
			next, err := middleware(ctx)
			if err != nil {
				xcontext.SetError(ctx, err)
				writeError(ctx, w, err)
				return
			}

			ctx = next
		}

		var req Request
		if err := bindRequest(r, method, &req); err != nil {
			err = errorx.New(errorx.BadRequest, "Solicitud inválida")
			xcontext.SetError(ctx, err)
			writeError(ctx, w, err)
			return
		}

		resp, err := handler(ctx, &req)
		if err != nil {
			xcontext.SetError(ctx, err)
			writeError(ctx, w, err)
			return
		}

		if err := WriteJSON(w, http.StatusOK, resp); err != nil {
			xcontext.Logger(ctx).Errorf("Cannot write the response: %v", err)
		}
	}
}

func bindRequest(r *http.Request, method string, req any) error {
	switch method {
	case http.MethodGet:
		return bindQuery(r.URL.Query(), req)

	case http.MethodPost, http.MethodPut, http.MethodPatch:
		body, err := io.ReadAll(r.Body)
		if err != nil {
			return err
		}

		if len(body) == 0 {
			return nil
		}

		return json.Unmarshal(body, req)
	}

	return nil
}
