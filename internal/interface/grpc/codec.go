package grpc

import (
	"encoding/json"

	"google.golang.org/grpc/encoding"
)

// CodecName 消息编码名称,对应content-type application/grpc+json
const CodecName = "json"

// jsonCodec 用JSON编码gRPC消息,消息类型是普通Go结构体,不需要protoc生成代码
type jsonCodec struct{}

func (jsonCodec) Marshal(v any) ([]byte, error) {
	return json.Marshal(v)
}

func (jsonCodec) Unmarshal(data []byte, v any) error {
	return json.Unmarshal(data, v)
}

func (jsonCodec) Name() string {
	return CodecName
}

func init() {
	encoding.RegisterCodec(jsonCodec{})
}
