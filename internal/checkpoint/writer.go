package checkpoint

import (
	"crypto/sha256"
	"encoding/binary"
	"encoding/json"
	"fmt"
	"math"
	"os"
	"time"

	"github.com/flint-ml/flint/internal/nn"
)

const flintVersion = "0.1.0"

// Save writes the parameters to path in the .flint format. training is
// optional run state recorded in the header.
func Save(path string, params []*nn.Parameter, training *Training) error {
	if len(params) == 0 {
		return fmt.Errorf("checkpoint: no parameters to save")
	}

	header := Header{
		FormatVersion: FormatVersion,
		FlintVersion:  flintVersion,
		CreatedAt:     time.Now().UTC(),
		Training:      training,
	}

	var data []byte
	for i, p := range params {
		values := p.Value().Data()
		size := int64(len(values) * 4)
		header.Tensors = append(header.Tensors, TensorMeta{
			Name:   fmt.Sprintf("%d.%s", i, p.Name()),
			Shape:  p.Value().Shape().Clone(),
			Offset: int64(len(data)),
			Size:   size,
		})
		buf := make([]byte, size)
		for i, v := range values {
			binary.LittleEndian.PutUint32(buf[i*4:], math.Float32bits(v))
		}
		data = append(data, buf...)
	}

	headerJSON, err := json.Marshal(header)
	if err != nil {
		return fmt.Errorf("checkpoint: encode header: %w", err)
	}

	sum := sha256.New()
	sum.Write(headerJSON)
	sum.Write(data)

	out := make([]byte, 0, len(Magic)+4+checksumSize+4+len(headerJSON)+len(data))
	out = append(out, Magic...)
	out = binary.LittleEndian.AppendUint32(out, FormatVersion)
	out = append(out, sum.Sum(nil)...)
	out = binary.LittleEndian.AppendUint32(out, uint32(len(headerJSON)))
	out = append(out, headerJSON...)
	out = append(out, data...)

	if err := os.WriteFile(path, out, 0o644); err != nil {
		return fmt.Errorf("checkpoint: write %s: %w", path, err)
	}
	return nil
}
