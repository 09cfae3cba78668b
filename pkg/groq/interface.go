package groq

import "context"

// IGroq defines the interface for the Groq chat-completion client
type IGroq interface {
	CreateChatCompletion(ctx context.Context, req *Request) (*Response, error)
}
