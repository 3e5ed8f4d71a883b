package app

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
)

const maxBodyBytes = 1 << 20

var errBodyTooLarge = errors.New("body exceeds size limit error")

// Read drains and closes reader. Bodies above one MiB are rejected.
func Read(reader io.ReadCloser) ([]byte, error) {
	var err error

	defer func() {
		err = reader.Close()
		if err != nil {
			slog.Error(fmt.Sprintf("Error occured: %s", err.Error()))
		}
	}()

	var content []byte
	content, err = io.ReadAll(io.LimitReader(reader, maxBodyBytes+1))

	if err != nil {
		return nil, err
	} else if len(content) > maxBodyBytes {
		return nil, errBodyTooLarge
	}

	return content, nil
}

func ReadJSON[T any](content []byte) (*T, error) {
	var t *T
	err := json.Unmarshal(content, &t)

	if err != nil {
		return nil, err
	} else if t == nil {
		return nil, errors.New("empty json content error")
	}

	return t, nil
}
