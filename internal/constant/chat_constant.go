package constant

const (
	ChatMessageActorUser  = "user"
	ChatMessageActorBot   = "bot"
	ChatMessageActorAgent = "agent"

	ChatSessionStatusActive    = "active"
	ChatSessionStatusEscalated = "escalated"
	ChatSessionStatusClosed    = "closed"

	WelcomeMessage = "Hi! How may I help you?"

	EscalationFallbackMessage = "I'm not sure I understand. Let me connect you with a human agent who can help."

	IndexNotReadyMessage = "I'm still learning. Please contact a human agent for assistance."
)
