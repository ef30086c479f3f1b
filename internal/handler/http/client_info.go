package http

import (
	"net/http"
	"strings"

	"github.com/campushub/forum-server/internal/utils"
	"github.com/campushub/forum-server/models"
)

// sessionFrom returns the validated session attached by the session
// middleware, if the request carried one.
func sessionFrom(r *http.Request) (models.Session, bool) {
	return utils.GetSessionFromContext(r.Context())
}

// parseClientInfo extracts coarse platform and browser labels from a
// User-Agent value. The result is audit metadata only, so the sniffing is
// deliberately rough; unrecognized agents come back empty.
func parseClientInfo(userAgent string) models.ClientInfo {
	ua := strings.ToLower(userAgent)

	var info models.ClientInfo

	switch {
	case strings.Contains(ua, "android"):
		info.Platform = "Android"
	case strings.Contains(ua, "iphone"), strings.Contains(ua, "ipad"):
		info.Platform = "iOS"
	case strings.Contains(ua, "windows"):
		info.Platform = "Windows"
	case strings.Contains(ua, "mac os"), strings.Contains(ua, "macintosh"):
		info.Platform = "macOS"
	case strings.Contains(ua, "linux"):
		info.Platform = "Linux"
	}

	// Order matters: Chrome ships "safari" in its UA, Edge ships both.
	switch {
	case strings.Contains(ua, "edg/"):
		info.Browser = "Edge"
	case strings.Contains(ua, "firefox"):
		info.Browser = "Firefox"
	case strings.Contains(ua, "chrome"):
		info.Browser = "Chrome"
	case strings.Contains(ua, "safari"):
		info.Browser = "Safari"
	}

	return info
}
