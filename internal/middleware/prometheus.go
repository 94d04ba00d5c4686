package middleware

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/nordicmagic/backend/internal/common"
	"github.com/nordicmagic/backend/pkg/errorx"
	"github.com/nordicmagic/backend/pkg/router"
	"github.com/nordicmagic/backend/pkg/xcontext"
)

func Prometheus() router.CloserFunc {
	return func(ctx context.Context) {
		startTime := xcontext.StartTime(ctx)
		req := xcontext.HTTPRequest(ctx)

		code := 0
		if err := xcontext.Error(ctx); err != nil {
			var errx errorx.Error
			if errors.As(err, &errx) {
				code = int(errx.Code)
			} else {
				code = -1
			}
		}

		labels := []string{req.URL.Path, fmt.Sprint(code)}
		common.PromCounters[common.HTTPRequestTotal].
			WithLabelValues(labels...).Inc()
		common.PromHistograms[common.HTTPRequestDurationSeconds].
			WithLabelValues(labels...).Observe(time.Since(startTime).Seconds())
	}
}
