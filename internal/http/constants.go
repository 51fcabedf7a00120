package httpx

// SessionCookieName is the cookie carrying the opaque session ID.
const SessionCookieName = "session_id"

// Route names, relative to the configured base path.
const (
	RouteHome            = ""
	RouteLogin           = "/login"
	RouteFirstAccess     = "/first-access"
	RouteRecoverPassword = "/recover-password"
	RouteNotFound        = "/not-found"
	RouteNotAuthorized   = "/not-authorized"
	RouteUser            = "/user"
	RouteAsset           = "/asset"
	RouteAdmin           = "/admin"
)

// Toast response headers. The UI shell reads these to show notifications
// triggered by the backend interceptor.
const (
	ToastLevelHeader   = "X-Toast-Level"
	ToastMessageHeader = "X-Toast-Message"
)
