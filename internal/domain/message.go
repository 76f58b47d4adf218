package domain

type Button struct {
	Text string
	Data string
}

// MessageOptions controls how an outbound chat message is rendered.
type MessageOptions struct {
	ReplyTo  int
	Markdown bool
	Keyboard [][]Button
}

type SourceKind string

const (
	SourceRemote SourceKind = "remote"
	SourceLocal  SourceKind = "local"
)

// FileSource says where the bytes behind a chat file handle can be read from.
type FileSource struct {
	Kind     SourceKind
	Location string
}
