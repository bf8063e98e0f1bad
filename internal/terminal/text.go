package terminal

import "fmt"

const (
	logFieldMessage = "message"
)

var (
	textMessageFields = []string{logFieldMessage}
)

type textMessage string

func newTextMessage(format string, args ...interface{}) textMessage {
	return textMessage(fmt.Sprintf(format, args...))
}

func (t textMessage) Message() (string, error) {
	return string(t), nil
}

func (t textMessage) Payload() ([]string, map[string]interface{}, error) {
	return textMessageFields, map[string]interface{}{
		logFieldMessage: t,
	}, nil
}
