package chat

// Message is one chat event as it travels over the wire. Messages are
// ephemeral: they exist only for the duration of a fan-out and are never
// persisted.
type Message struct {
	Name    string `json:"name"`
	Message string `json:"message"`
}
