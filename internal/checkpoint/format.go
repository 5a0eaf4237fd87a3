// Package checkpoint saves and restores model parameters in the .flint
// binary format.
//
// A .flint file is laid out as:
//
//	[magic "FLNT"] [version u32] [checksum 32B] [header len u32] [JSON header] [tensor data]
//
// The checksum is SHA-256 over the JSON header and the tensor data, so a
// truncated or corrupted file is rejected before any tensor is restored.
package checkpoint

import (
	"time"
)

// Format constants.
const (
	Magic         = "FLNT"
	FormatVersion = 1
	checksumSize  = 32
)

// Header is the JSON header of a .flint file.
type Header struct {
	FormatVersion int          `json:"format_version"`
	FlintVersion  string       `json:"flint_version"`
	CreatedAt     time.Time    `json:"created_at"`
	Tensors       []TensorMeta `json:"tensors"`
	Training      *Training    `json:"training,omitempty"`
}

// Training records the run state a checkpoint was taken at.
type Training struct {
	Epoch int     `json:"epoch"`
	Loss  float64 `json:"loss"`
	LR    float32 `json:"lr"`
}

// TensorMeta describes one tensor in the data section.
type TensorMeta struct {
	Name   string `json:"name"`
	Shape  []int  `json:"shape"`
	Offset int64  `json:"offset"` // Bytes from the start of the data section
	Size   int64  `json:"size"`   // Bytes
}
