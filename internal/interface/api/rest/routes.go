package rest

const (
	// api
	RouteApiV1 = "/api/v1"

	// auth
	RouteAuth  = RouteApiV1 + "/auth"
	RouteLogin = RouteAuth + "/login"

	// profile
	RouteProfile    = RouteApiV1 + "/profile"
	RouteAvatar     = RouteProfile + "/avatar"
	RouteSkill      = RouteProfile + "/skills/:skill_id"
	RouteSkillPhoto = RouteSkill + "/photo"

	// messages
	RouteMessages     = RouteApiV1 + "/messages"
	RouteMessagesRead = RouteMessages + "/read"

	// chat
	RouteChat        = RouteApiV1 + "/ai-chat"
	RouteChatHistory = RouteApiV1 + "/chat-history/:session_id"

	// ops
	RouteHealth  = RouteApiV1 + "/healthz"
	RouteMetrics = RouteApiV1 + "/metrics"
)
