package terminal

const logFieldErr = "err"

// errorMessage surfaces an error value as a printable log payload
type errorMessage struct {
	err error
}

func (e errorMessage) Message() (string, error) {
	return e.err.Error(), nil
}

func (e errorMessage) Payload() ([]string, map[string]interface{}, error) {
	return []string{logFieldErr}, map[string]interface{}{
		logFieldErr: e.err.Error(),
	}, nil
}
