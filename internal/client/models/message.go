package models

// MessageKind distinguishes error and success notices.
type MessageKind string

const (
	MessageError   MessageKind = "error"
	MessageSuccess MessageKind = "success"
)

// Message is what the UI shows after an action. Each new action overwrites
// the previous one.
type Message struct {
	Text string
	Kind MessageKind
}

func ErrorMessage(text string) Message {
	return Message{Text: text, Kind: MessageError}
}

func SuccessMessage(text string) Message {
	return Message{Text: text, Kind: MessageSuccess}
}
