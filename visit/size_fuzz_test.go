//go:build fuzz

package visit_test

import (
	"testing"

	"github.com/arloliu/sbeview/internal/testschema"
	"github.com/arloliu/sbeview/visit"
)

func FuzzSizeBytesChecked(f *testing.F) {
	sample := make([]byte, 256)
	testschema.WriteSampleOrder(sample)
	f.Add(sample[:testschema.SampleOrderSize])
	f.Add([]byte{})
	f.Add([]byte{31, 0, 1, 0})

	f.Fuzz(func(t *testing.T, data []byte) {
		o := testschema.NewOrder(data)
		res := visit.SizeBytesChecked(o.Message, len(data))
		if res.Size < 0 || res.Size > len(data) {
			t.Fatalf("size %d outside [0, %d]", res.Size, len(data))
		}
		if res.Valid && o.SizeBytes() != res.Size {
			t.Fatalf("checked size %d, unchecked %d", res.Size, o.SizeBytes())
		}
	})
}
