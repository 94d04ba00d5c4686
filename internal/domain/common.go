package domain

import (
	"context"
	"net"
	"strings"

	"github.com/nordicmagic/backend/pkg/errorx"
	"github.com/nordicmagic/backend/pkg/xcontext"
)

// errInternal is the opaque message shown whenever the oracle fails for
// reasons the caller cannot fix. Details stay in the server log.
var errInternal = errorx.New(errorx.Internal, "Error interno del oráculo.")

// clientIP resolves the peer address from the server's own vantage point. A
// client-supplied IP is never trusted beyond the first forwarding hop.
func clientIP(ctx context.Context) string {
	r := xcontext.HTTPRequest(ctx)
	if r == nil {
		return "unknown"
	}

	if forwarded := r.Header.Get("X-Forwarded-For"); forwarded != "" {
		first, _, _ := strings.Cut(forwarded, ",")
		return strings.TrimSpace(first)
	}

	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}

	return host
}
