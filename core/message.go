package core

// Role tags a message with its speaker.
type Role string

const (
	// RoleUser marks a message written by the person talking to the clone.
	RoleUser Role = "user"

	// RoleAssistant marks a message written by the clone itself.
	RoleAssistant Role = "assistant"
)

// Message is a single turn in a conversation.
// Messages are immutable once created and owned by the history that holds them.
type Message struct {
	Role    Role
	Content string
}

// UserMessage creates a user-role message.
func UserMessage(content string) Message {
	return Message{Role: RoleUser, Content: content}
}

// AssistantMessage creates an assistant-role message.
func AssistantMessage(content string) Message {
	return Message{Role: RoleAssistant, Content: content}
}
