// Package persona builds conversational clones of real people on
// retrieval-augmented generation.
//
// A Clone is fitted on a document corpus describing a person, then answers
// prompts in that person's voice. With memory enabled, each Clone keeps a
// bounded conversation history per session and reformulates follow-up
// questions into standalone retrieval queries.
//
// Architecture:
//   - history.Store: session-keyed bounded message logs, shared across clones
//   - retrieval.Index: vector retrieval backend (chromem-go for local SDK)
//   - completion.Completer: chat completion backend (Claude or OpenAI)
//   - split.Splitter: document chunking for fit/update
//
// The Clone is opinionated about WHEN each collaborator is called (routing,
// session lifecycle, history truncation); the collaborators decide HOW.
// Concurrent requests for different session ids are independent; callers
// must single-flight requests within one session.
package persona
