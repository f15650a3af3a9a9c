package prompts

import (
	"fmt"
	"strings"

	"github.com/becomeliminal/persona-go-sdk/core"
)

const personaInstructions = `You are playing the role of a real person. The retrieved context below describes that person: their background, experiences, opinions, and way of speaking. Answer every question in the first person, as that person would, staying consistent with the context. If the context does not contain the answer, say that you don't know rather than inventing details. Never mention that you are an AI or that you were given context.`

// ContextualizeSystem instructs the completion backend to rewrite the latest
// question into a standalone query using the chat history, without answering
// it. Used before retrieval on the history-aware path.
const ContextualizeSystem = `Given a chat history and the latest user question which might reference context in the chat history, formulate a standalone question which can be understood without the chat history. Do NOT answer the question, just reformulate it if needed and otherwise return it as is.`

// AnswerSystem assembles the system prompt for answer generation: persona
// instructions, the user profile (when present), and the retrieved context.
func AnswerSystem(profile string, contextDocs []core.Document) string {
	var b strings.Builder
	b.WriteString(personaInstructions)

	if profile != "" {
		b.WriteString("\n\nPROFILE OF THE PERSON YOU ARE PLAYING:\n")
		b.WriteString(profile)
	}

	b.WriteString("\n\nRETRIEVED CONTEXT:\n")
	b.WriteString(formatContext(contextDocs))

	return b.String()
}

func formatContext(docs []core.Document) string {
	if len(docs) == 0 {
		return "(no context retrieved)"
	}

	var b strings.Builder
	for i, doc := range docs {
		if i > 0 {
			b.WriteString("\n\n")
		}
		b.WriteString(fmt.Sprintf("[%d] %s", i+1, doc.Content))
	}
	return b.String()
}
