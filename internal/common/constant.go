// Package common contains shared constants and sentinel errors used across
// transferbench components.
package common

const (
	// AccessTokenHeaderName is the gRPC metadata key used to carry the
	// access token on payroll requests.
	AccessTokenHeaderName = "access_token"

	// ChunkSize is the payload size of a single payroll transfer chunk.
	ChunkSize = 64 * 1024

	// UploadsDir is where the server keeps received payroll files.
	UploadsDir = "Uploads"

	// DownloadsDir is where the client reconstructs downloaded files.
	DownloadsDir = "Downloads"
)

// Upload status messages reported back to the uploading client.
const (
	MsgUploadComplete  = "Upload complete"
	MsgNoDataReceived  = "No data received"
	MsgUploadCancelled = "Upload cancelled"
	MsgInvalidFileName = "Invalid file name"
	MsgServerError     = "Server error"
)
