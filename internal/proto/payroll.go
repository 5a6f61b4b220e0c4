package proto

import "google.golang.org/protobuf/encoding/protowire"

// Chunk is one element of an upload stream. FileName is only set on the
// first element.
type Chunk struct {
	Content  []byte
	FileName string
}

func (x *Chunk) GetContent() []byte {
	if x != nil {
		return x.Content
	}
	return nil
}

func (x *Chunk) GetFileName() string {
	if x != nil {
		return x.FileName
	}
	return ""
}

func (x *Chunk) appendWire(b []byte) []byte {
	b = appendBytesField(b, 1, x.Content)
	b = appendStringField(b, 2, x.FileName)
	return b
}

func (x *Chunk) unmarshalWire(b []byte) error {
	*x = Chunk{}
	return unmarshalFields(b, func(num protowire.Number, typ protowire.Type, b []byte) (int, error) {
		switch {
		case num == 1 && typ == protowire.BytesType:
			return consumeBytes(b, &x.Content), nil
		case num == 2 && typ == protowire.BytesType:
			return consumeString(b, &x.FileName), nil
		}
		return 0, nil
	})
}

// UploadStatus is the single reply to an upload stream.
type UploadStatus struct {
	Success       bool
	Message       string
	BytesReceived int64
	Checksum      string
}

func (x *UploadStatus) GetSuccess() bool {
	if x != nil {
		return x.Success
	}
	return false
}

func (x *UploadStatus) GetMessage() string {
	if x != nil {
		return x.Message
	}
	return ""
}

func (x *UploadStatus) GetBytesReceived() int64 {
	if x != nil {
		return x.BytesReceived
	}
	return 0
}

func (x *UploadStatus) GetChecksum() string {
	if x != nil {
		return x.Checksum
	}
	return ""
}

func (x *UploadStatus) appendWire(b []byte) []byte {
	b = appendBoolField(b, 1, x.Success)
	b = appendStringField(b, 2, x.Message)
	b = appendVarintField(b, 3, uint64(x.BytesReceived))
	b = appendStringField(b, 4, x.Checksum)
	return b
}

func (x *UploadStatus) unmarshalWire(b []byte) error {
	*x = UploadStatus{}
	return unmarshalFields(b, func(num protowire.Number, typ protowire.Type, b []byte) (int, error) {
		switch {
		case num == 1 && typ == protowire.VarintType:
			return consumeBool(b, &x.Success), nil
		case num == 2 && typ == protowire.BytesType:
			return consumeString(b, &x.Message), nil
		case num == 3 && typ == protowire.VarintType:
			return consumeInt64(b, &x.BytesReceived), nil
		case num == 4 && typ == protowire.BytesType:
			return consumeString(b, &x.Checksum), nil
		}
		return 0, nil
	})
}

type DownloadRequest struct {
	FileName string
}

func (x *DownloadRequest) GetFileName() string {
	if x != nil {
		return x.FileName
	}
	return ""
}

func (x *DownloadRequest) appendWire(b []byte) []byte {
	return appendStringField(b, 1, x.FileName)
}

func (x *DownloadRequest) unmarshalWire(b []byte) error {
	*x = DownloadRequest{}
	return unmarshalFields(b, func(num protowire.Number, typ protowire.Type, b []byte) (int, error) {
		if num == 1 && typ == protowire.BytesType {
			return consumeString(b, &x.FileName), nil
		}
		return 0, nil
	})
}

// FileMetadata opens every download stream.
type FileMetadata struct {
	FileName string
	Size     int64
}

func (x *FileMetadata) GetFileName() string {
	if x != nil {
		return x.FileName
	}
	return ""
}

func (x *FileMetadata) GetSize() int64 {
	if x != nil {
		return x.Size
	}
	return 0
}

func (x *FileMetadata) appendWire(b []byte) []byte {
	b = appendStringField(b, 1, x.FileName)
	b = appendVarintField(b, 2, uint64(x.Size))
	return b
}

func (x *FileMetadata) unmarshalWire(b []byte) error {
	*x = FileMetadata{}
	return unmarshalFields(b, func(num protowire.Number, typ protowire.Type, b []byte) (int, error) {
		switch {
		case num == 1 && typ == protowire.BytesType:
			return consumeString(b, &x.FileName), nil
		case num == 2 && typ == protowire.VarintType:
			return consumeInt64(b, &x.Size), nil
		}
		return 0, nil
	})
}

// DownloadResponse carries either the file metadata or one data chunk.
// Payload is one of *DownloadResponse_Metadata or *DownloadResponse_Chunk.
type DownloadResponse struct {
	Payload isDownloadResponse_Payload
}

type isDownloadResponse_Payload interface {
	isDownloadResponse_Payload()
}

type DownloadResponse_Metadata struct {
	Metadata *FileMetadata
}

type DownloadResponse_Chunk struct {
	Chunk []byte
}

func (*DownloadResponse_Metadata) isDownloadResponse_Payload() {}

func (*DownloadResponse_Chunk) isDownloadResponse_Payload() {}

// NewMetadataResponse wraps file metadata into a download response.
func NewMetadataResponse(name string, size int64) *DownloadResponse {
	return &DownloadResponse{Payload: &DownloadResponse_Metadata{Metadata: &FileMetadata{FileName: name, Size: size}}}
}

// NewChunkResponse wraps a data chunk into a download response.
func NewChunkResponse(data []byte) *DownloadResponse {
	return &DownloadResponse{Payload: &DownloadResponse_Chunk{Chunk: data}}
}

func (x *DownloadResponse) GetPayload() isDownloadResponse_Payload {
	if x != nil {
		return x.Payload
	}
	return nil
}

func (x *DownloadResponse) GetMetadata() *FileMetadata {
	if p, ok := x.GetPayload().(*DownloadResponse_Metadata); ok {
		return p.Metadata
	}
	return nil
}

func (x *DownloadResponse) GetChunk() []byte {
	if p, ok := x.GetPayload().(*DownloadResponse_Chunk); ok {
		return p.Chunk
	}
	return nil
}

func (x *DownloadResponse) appendWire(b []byte) []byte {
	switch p := x.Payload.(type) {
	case *DownloadResponse_Metadata:
		md := p.Metadata
		if md == nil {
			md = &FileMetadata{}
		}
		b = appendMessageField(b, 1, md)
	case *DownloadResponse_Chunk:
		b = protowire.AppendTag(b, 2, protowire.BytesType)
		b = protowire.AppendBytes(b, p.Chunk)
	}
	return b
}

func (x *DownloadResponse) unmarshalWire(b []byte) error {
	*x = DownloadResponse{}
	return unmarshalFields(b, func(num protowire.Number, typ protowire.Type, b []byte) (int, error) {
		switch {
		case num == 1 && typ == protowire.BytesType:
			md := &FileMetadata{}
			n, err := consumeMessage(b, md)
			if err == nil && n > 0 {
				x.Payload = &DownloadResponse_Metadata{Metadata: md}
			}
			return n, err
		case num == 2 && typ == protowire.BytesType:
			var chunk []byte
			n := consumeBytes(b, &chunk)
			if n > 0 {
				if chunk == nil {
					chunk = []byte{}
				}
				x.Payload = &DownloadResponse_Chunk{Chunk: chunk}
			}
			return n, nil
		}
		return 0, nil
	})
}

// ChatMessage travels in both directions of the chat stream.
type ChatMessage struct {
	Sender         string
	Text           string
	SentAtUnixNano int64
}

func (x *ChatMessage) GetSender() string {
	if x != nil {
		return x.Sender
	}
	return ""
}

func (x *ChatMessage) GetText() string {
	if x != nil {
		return x.Text
	}
	return ""
}

func (x *ChatMessage) GetSentAtUnixNano() int64 {
	if x != nil {
		return x.SentAtUnixNano
	}
	return 0
}

func (x *ChatMessage) appendWire(b []byte) []byte {
	b = appendStringField(b, 1, x.Sender)
	b = appendStringField(b, 2, x.Text)
	b = appendVarintField(b, 3, uint64(x.SentAtUnixNano))
	return b
}

func (x *ChatMessage) unmarshalWire(b []byte) error {
	*x = ChatMessage{}
	return unmarshalFields(b, func(num protowire.Number, typ protowire.Type, b []byte) (int, error) {
		switch {
		case num == 1 && typ == protowire.BytesType:
			return consumeString(b, &x.Sender), nil
		case num == 2 && typ == protowire.BytesType:
			return consumeString(b, &x.Text), nil
		case num == 3 && typ == protowire.VarintType:
			return consumeInt64(b, &x.SentAtUnixNano), nil
		}
		return 0, nil
	})
}
