package logger

import (
	"fmt"
	"log/slog"

	"github.com/solotto/draw-engine/pkg/logger/slogx"
)

// errorAttrReplacer expands error attributes with a verbose rendition so
// wrapped causes and stack traces survive structured output.
func errorAttrReplacer(groups []string, attr slog.Attr) slog.Attr {
	if len(groups) == 0 && attr.Key == slogx.ErrorKey {
		if err, ok := attr.Value.Any().(error); ok && err != nil {
			return slog.Group("",
				slog.String(slogx.ErrorKey, err.Error()),
				slog.String("error_verbose", fmt.Sprintf("%+v", err)),
			)
		}
	}
	return attr
}
