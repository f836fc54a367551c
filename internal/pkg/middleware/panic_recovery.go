package middleware

import (
	"net/http"
	"runtime/debug"

	"github.com/labstack/echo/v4"

	"github.com/DipakAnap/cablink-backend/internal/pkg/logger"
	"github.com/DipakAnap/cablink-backend/internal/utils"
)

// PanicRecovery converts a handler panic into a 500 response so a single bad
// request cannot take the process down. The panic value and stack are logged
// with the request context.
func PanicRecovery(log *logger.ZapLogger) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) (err error) {
			defer func() {
				if r := recover(); r != nil {
					// net/http uses this sentinel to abort the connection
					if r == http.ErrAbortHandler {
						panic(r)
					}

					log.Error("Recovered from handler panic",
						logger.String("method", c.Request().Method),
						logger.String("path", c.Request().URL.Path),
						logger.String("request_id", c.Response().Header().Get(echo.HeaderXRequestID)),
						logger.Any("panic", r),
						logger.String("stack", string(debug.Stack())),
					)

					if !c.Response().Committed {
						err = utils.InternalServerErrorResponse(c, "")
					}
				}
			}()

			return next(c)
		}
	}
}
