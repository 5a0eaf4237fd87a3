package checkpoint

import (
	"bytes"
	"crypto/sha256"
	"encoding/binary"
	"encoding/json"
	"fmt"
	"math"
	"os"

	"github.com/flint-ml/flint/internal/nn"
	"github.com/flint-ml/flint/internal/tensor"
)

// Checkpoint is a loaded .flint file. Tensors are kept in the order
// they were saved; layer names repeat across a model, so restoration is
// positional.
type Checkpoint struct {
	Header  Header
	tensors []*tensor.Tensor[float32]
}

// Load reads and verifies a .flint file.
func Load(path string) (*Checkpoint, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("checkpoint: read %s: %w", path, err)
	}

	fixed := len(Magic) + 4 + checksumSize + 4
	if len(raw) < fixed {
		return nil, fmt.Errorf("checkpoint: %s: file too short", path)
	}
	if string(raw[:len(Magic)]) != Magic {
		return nil, fmt.Errorf("checkpoint: %s: %w", path, ErrInvalidMagic)
	}

	cursor := len(Magic)
	version := binary.LittleEndian.Uint32(raw[cursor:])
	cursor += 4
	if version != FormatVersion {
		return nil, fmt.Errorf("checkpoint: %s: version %d: %w", path, version, ErrUnsupportedVersion)
	}

	stored := raw[cursor : cursor+checksumSize]
	cursor += checksumSize

	headerLen := int(binary.LittleEndian.Uint32(raw[cursor:]))
	cursor += 4
	if len(raw) < cursor+headerLen {
		return nil, fmt.Errorf("checkpoint: %s: truncated header", path)
	}

	headerJSON := raw[cursor : cursor+headerLen]
	data := raw[cursor+headerLen:]

	sum := sha256.New()
	sum.Write(headerJSON)
	sum.Write(data)
	if !bytes.Equal(sum.Sum(nil), stored) {
		return nil, fmt.Errorf("checkpoint: %s: %w", path, ErrChecksumMismatch)
	}

	var header Header
	if err := json.Unmarshal(headerJSON, &header); err != nil {
		return nil, fmt.Errorf("checkpoint: %s: decode header: %w", path, err)
	}

	cp := &Checkpoint{Header: header}
	for _, meta := range header.Tensors {
		if meta.Offset < 0 || meta.Size < 0 || meta.Offset+meta.Size > int64(len(data)) || meta.Size%4 != 0 {
			return nil, fmt.Errorf("checkpoint: %s: tensor %s: bad data range", path, meta.Name)
		}
		values := make([]float32, meta.Size/4)
		for i := range values {
			bits := binary.LittleEndian.Uint32(data[meta.Offset+int64(i)*4:])
			values[i] = math.Float32frombits(bits)
		}
		t, err := tensor.FromSlice(values, tensor.Shape(meta.Shape))
		if err != nil {
			return nil, fmt.Errorf("checkpoint: %s: tensor %s: %w", path, meta.Name, err)
		}
		cp.tensors = append(cp.tensors, t)
	}
	return cp, nil
}

// NumTensors returns how many tensors the checkpoint holds.
func (c *Checkpoint) NumTensors() int {
	return len(c.tensors)
}

// Tensor returns the tensor with the given header name, or
// ErrTensorNotFound.
func (c *Checkpoint) Tensor(name string) (*tensor.Tensor[float32], error) {
	for i, meta := range c.Header.Tensors {
		if meta.Name == name {
			return c.tensors[i], nil
		}
	}
	return nil, fmt.Errorf("checkpoint: %q: %w", name, ErrTensorNotFound)
}

// Restore copies checkpoint values into the given parameters in saved
// order. The parameter count and every shape must match.
func (c *Checkpoint) Restore(params []*nn.Parameter) error {
	if len(params) != len(c.tensors) {
		return fmt.Errorf("checkpoint: holds %d tensors, model has %d parameters: %w",
			len(c.tensors), len(params), ErrTensorNotFound)
	}
	for i, p := range params {
		t := c.tensors[i]
		if !t.Shape().Equal(p.Value().Shape()) {
			return fmt.Errorf("checkpoint: tensor %d: shape %v does not match parameter shape %v: %w",
				i, t.Shape(), p.Value().Shape(), tensor.ErrShapeMismatch)
		}
		copy(p.Value().Data(), t.Data())
	}
	return nil
}
