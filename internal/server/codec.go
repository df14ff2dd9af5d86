package server

import (
	"encoding/json"
	"fmt"
)

const codecNameJSON = "json"

// jsonCodec replaces connect's protobuf JSON codec so plain Go structs can be
// used as request and response messages
type jsonCodec struct{}

func (jsonCodec) Name() string {
	return codecNameJSON
}

func (jsonCodec) Marshal(message any) ([]byte, error) {
	data, err := json.Marshal(message)
	if err != nil {
		return nil, fmt.Errorf("json.Marshal() > %w", err)
	}
	return data, nil
}

func (jsonCodec) Unmarshal(data []byte, message any) error {
	if len(data) == 0 {
		return nil
	}
	if err := json.Unmarshal(data, message); err != nil {
		return fmt.Errorf("json.Unmarshal() > %w", err)
	}
	return nil
}
