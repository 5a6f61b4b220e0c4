// Package proto holds the transferbench wire messages described in
// api/proto/transferbench.proto together with their gRPC service descriptors.
//
// Messages encode themselves in the protobuf binary format using protowire.
// The codec serving them is registered as "transferbench" and leaves grpc's
// own "proto" codec alone. Servers and clients attach it with ServerCodec
// and ClientCodec; every other proto.Message (health checks, for instance)
// is handed to the protobuf runtime, so both kinds share one connection.
package proto

import (
	"fmt"

	"google.golang.org/grpc"
	"google.golang.org/grpc/encoding"
	protov2 "google.golang.org/protobuf/proto"
)

// CodecName is the content-subtype the codec is registered under.
const CodecName = "transferbench"

type wireMessage interface {
	appendWire(b []byte) []byte
	unmarshalWire(b []byte) error
}

type codec struct{}

func (codec) Marshal(v any) ([]byte, error) {
	switch m := v.(type) {
	case wireMessage:
		return m.appendWire(nil), nil
	case protov2.Message:
		return protov2.Marshal(m)
	default:
		return nil, fmt.Errorf("proto codec: cannot marshal %T", v)
	}
}

func (codec) Unmarshal(data []byte, v any) error {
	switch m := v.(type) {
	case wireMessage:
		return m.unmarshalWire(data)
	case protov2.Message:
		return protov2.Unmarshal(data, m)
	default:
		return fmt.Errorf("proto codec: cannot unmarshal into %T", v)
	}
}

func (codec) Name() string {
	return CodecName
}

func init() {
	encoding.RegisterCodec(codec{})
}

// ServerCodec makes a server decode every request with the transferbench
// codec, whatever content-subtype the caller sent.
func ServerCodec() grpc.ServerOption {
	return grpc.ForceServerCodec(codec{})
}

// ClientCodec makes every call on a connection use the transferbench codec.
func ClientCodec() grpc.DialOption {
	return grpc.WithDefaultCallOptions(grpc.ForceCodec(codec{}))
}

// Marshal encodes a transferbench message.
func Marshal(m wireMessage) []byte {
	return m.appendWire(nil)
}

// Unmarshal decodes data into a transferbench message.
func Unmarshal(data []byte, m wireMessage) error {
	return m.unmarshalWire(data)
}
