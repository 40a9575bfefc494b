// Package chat implements fitcoach's conversation state and submission
// pipeline: an append-only transcript of messages, keyword classification of
// user text into generation requests, and the single-call-per-turn exchange
// with the plan generator.
package chat

import "time"

// Sender identifies which side of the conversation produced a message.
type Sender string

// Message senders.
const (
	SenderUser Sender = "user"
	SenderAI   Sender = "ai"
)

// Message is one turn in the transcript. Immutable once created; the
// transcript is append-only and messages have no identity beyond position.
type Message struct {
	Content   string    `json:"content"`
	Sender    Sender    `json:"sender"`
	Timestamp time.Time `json:"timestamp"`
}

// Greeting seeds a fresh transcript. Every new or reset chat starts with
// exactly this message from the AI side.
const Greeting = "Hi! I'm your AI fitness coach. Ask me for a workout, a meal plan, or anything else about training and nutrition."

// Apology is appended verbatim when generation fails. No retry is attempted.
const Apology = "I'm sorry, I encountered an error generating a response. Please try again."

// Transient notice texts emitted through the Notifier.
const (
	noticeReset       = "Started a new chat"
	noticeGenerateErr = "Failed to generate response"
)
