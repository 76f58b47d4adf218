package domain

// Event is one decoded webhook update. The concrete types are NewVideo,
// CallbackAction, TextReply and Other.
type Event interface {
	isEvent()
}

type NewVideo struct {
	FileID    string `validate:"required"`
	FileName  string `validate:"required"`
	MimeType  string
	Caption   string
	ChatID    int64 `validate:"required"`
	UserID    int64
	MessageID int
}

// CallbackAction carries the raw button data. It is decoded into an Action by
// the router so an undecodable payload can still be acknowledged.
type CallbackAction struct {
	QueryID   string `validate:"required"`
	Data      string
	ChatID    int64
	UserID    int64
	MessageID int
}

type TextReply struct {
	Text      string `validate:"required"`
	ChatID    int64  `validate:"required"`
	UserID    int64
	MessageID int
}

type Other struct{}

func (NewVideo) isEvent()       {}
func (CallbackAction) isEvent() {}
func (TextReply) isEvent()      {}
func (Other) isEvent()          {}

func (v NewVideo) Payload() VideoPayload {
	return VideoPayload{
		FileID:    v.FileID,
		FileName:  v.FileName,
		ChatID:    v.ChatID,
		UserID:    v.UserID,
		MessageID: v.MessageID,
		Caption:   v.Caption,
	}
}
