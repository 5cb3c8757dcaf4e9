package llmclient

// Role identifies the author of a conversation message.
type Role string

const (
	RoleSystem    Role = "system"
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
)

// Message is a single entry in a conversation. An ordered slice of Messages
// is the sole input to a completion call; the order is conversation order and
// is forwarded to the backend verbatim.
type Message struct {
	// Role is one of: "system", "user", "assistant".
	Role Role `json:"role"`

	// Content is the message text content.
	Content string `json:"content"`
}

// System returns a system message with the given content.
func System(content string) Message {
	return Message{Role: RoleSystem, Content: content}
}

// User returns a user message with the given content.
func User(content string) Message {
	return Message{Role: RoleUser, Content: content}
}

// Assistant returns an assistant message with the given content.
func Assistant(content string) Message {
	return Message{Role: RoleAssistant, Content: content}
}
